package vehiclestatus

import (
	"testing"
	"time"
)

var t0 = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func TestMemoryStore_Filter(t *testing.T) {
	s := NewMemoryStore()
	s.Record(Status{VehicleID: "v1", Model: "Calliope", Due: true})
	s.Record(Status{VehicleID: "v2", Model: "Thovex"})
	out := s.List(Filter{Model: "calliope"})
	if len(out) != 1 || out[0].VehicleID != "v1" {
		t.Fatalf("model filter failed: %#v", out)
	}
	out = s.List(Filter{DueOnly: true})
	if len(out) != 1 || out[0].VehicleID != "v1" {
		t.Fatalf("due filter failed: %#v", out)
	}
	if out := s.List(Filter{}); len(out) != 2 || out[1].VehicleID != "v2" {
		t.Fatalf("list not sorted: %#v", out)
	}
}

func TestMemoryStore_RecordTransitions(t *testing.T) {
	s := NewMemoryStore()
	if _, changed := s.Record(Status{VehicleID: "v1", LastInspection: t0}); changed {
		t.Fatalf("new healthy vehicle reported as changed")
	}
	if _, changed := s.Record(Status{VehicleID: "v1", Due: true, LastInspection: t0.Add(time.Hour)}); !changed {
		t.Fatalf("transition to due not reported")
	}
	prev, changed := s.Record(Status{VehicleID: "v1", Due: true, LastInspection: t0.Add(2 * time.Hour)})
	if changed || !prev.Due {
		t.Fatalf("repeated due reported as changed: %#v", prev)
	}
	st, _ := s.Get("v1")
	if !st.DueSince.Equal(t0.Add(time.Hour)) {
		t.Fatalf("due since not kept: %v", st.DueSince)
	}
	if _, changed := s.Record(Status{VehicleID: "v1", LastInspection: t0.Add(3 * time.Hour)}); !changed {
		t.Fatalf("cleared status not reported")
	}
	st, _ = s.Get("v1")
	if !st.DueSince.IsZero() {
		t.Fatalf("due since not reset")
	}
}

func TestMemoryStore_RecordNewDue(t *testing.T) {
	s := NewMemoryStore()
	if _, changed := s.Record(Status{VehicleID: "v3", Due: true, LastInspection: t0}); !changed {
		t.Fatalf("new due vehicle not reported")
	}
	if _, ok := s.Get("missing"); ok {
		t.Fatalf("unexpected status")
	}
}
