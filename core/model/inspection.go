package model

import (
	"time"

	"github.com/kilianp07/servicing/core/rules"
)

// Measurements is the full set of readings for a vehicle at a point in time.
// TireWear is optional; nil means no tire readings were taken.
type Measurements struct {
	CurrentMileage     int
	LastServiceMileage int
	LastServiceDate    time.Time
	CurrentDate        time.Time
	WarningLightOn     bool
	TireWear           *rules.TireWear
}

// Inspection holds the verdict for every subsystem. Tire is nil when the
// vehicle has no tire rule or no wear readings were supplied.
type Inspection struct {
	Model   string `json:"model"`
	Engine  bool   `json:"engine"`
	Battery bool   `json:"battery"`
	Tire    *bool  `json:"tire,omitempty"`
}

// Due reports whether any subsystem needs service.
func (i Inspection) Due() bool {
	return i.Engine || i.Battery || (i.Tire != nil && *i.Tire)
}

// Subsystems returns the evaluated verdicts keyed by subsystem name.
func (i Inspection) Subsystems() map[string]bool {
	out := map[string]bool{"engine": i.Engine, "battery": i.Battery}
	if i.Tire != nil {
		out["tire"] = *i.Tire
	}
	return out
}

// Inspect evaluates every supported subsystem against the measurements.
func (v *Vehicle) Inspect(m Measurements) Inspection {
	res := Inspection{
		Model:   v.model,
		Engine:  v.NeedsEngineService(m.CurrentMileage, m.LastServiceMileage, m.WarningLightOn),
		Battery: v.NeedsBatteryService(m.LastServiceDate, m.CurrentDate),
	}
	if m.TireWear != nil && v.SupportsTireService() {
		due := v.tire.NeedsService(*m.TireWear)
		res.Tire = &due
	}
	return res
}
