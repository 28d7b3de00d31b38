// Package vehiclestatus keeps the latest maintenance status of every
// inspected vehicle.
package vehiclestatus

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// Status is the outcome of the most recent inspection of a vehicle.
type Status struct {
	VehicleID      string    `json:"vehicle_id"`
	Model          string    `json:"model"`
	InspectionID   string    `json:"inspection_id"`
	Due            bool      `json:"due"`
	Subsystems     []string  `json:"subsystems,omitempty"`
	LastInspection time.Time `json:"last_inspection"`
	DueSince       time.Time `json:"due_since,omitempty"`
}

// Filter selects statuses. Zero fields match everything.
type Filter struct {
	Model   string
	DueOnly bool
}

type Store interface {
	// Record stores st and reports whether the due flag changed. A vehicle
	// seen for the first time counts as changed only when it is due.
	Record(st Status) (prev Status, changed bool)
	Get(vehicleID string) (Status, bool)
	List(Filter) []Status
}

type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]Status
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string]Status{}}
}

func (s *MemoryStore) Record(st Status) (Status, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, seen := s.data[st.VehicleID]
	switch {
	case !st.Due:
		st.DueSince = time.Time{}
	case seen && prev.Due:
		st.DueSince = prev.DueSince
	default:
		st.DueSince = st.LastInspection
	}
	s.data[st.VehicleID] = st
	if !seen {
		return prev, st.Due
	}
	return prev, prev.Due != st.Due
}

func (s *MemoryStore) Get(id string) (Status, bool) {
	s.mu.RLock()
	st, ok := s.data[id]
	s.mu.RUnlock()
	return st, ok
}

func (s *MemoryStore) List(f Filter) []Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]Status, 0, len(s.data))
	for _, st := range s.data {
		if f.Model != "" && !strings.EqualFold(st.Model, f.Model) {
			continue
		}
		if f.DueOnly && !st.Due {
			continue
		}
		res = append(res, st)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].VehicleID < res[j].VehicleID })
	return res
}
