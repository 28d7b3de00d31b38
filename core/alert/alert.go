// Package alert defines the maintenance alert handed to notification
// collaborators when an inspection finds a vehicle due for service.
package alert

import (
	"context"
	"sort"
	"time"
)

// Alert tells a collaborator that a vehicle needs service.
type Alert struct {
	ID           string    `json:"id"`
	InspectionID string    `json:"inspection_id"`
	VehicleID    string    `json:"vehicle_id"`
	Model        string    `json:"model"`
	Subsystems   []string  `json:"subsystems"`
	Time         time.Time `json:"time"`
}

// DueSubsystems returns the names of the subsystems whose verdict is true,
// sorted.
func DueSubsystems(verdicts map[string]bool) []string {
	var out []string
	for name, due := range verdicts {
		if due {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Publisher delivers alerts.
type Publisher interface {
	Publish(ctx context.Context, a Alert) error
}

// NopPublisher drops every alert.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Alert) error { return nil }
