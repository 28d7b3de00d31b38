package metrics

import "time"

// InspectionEvent is the outcome of inspecting one vehicle.
type InspectionEvent struct {
	InspectionID string
	VehicleID    string
	Model        string
	// Verdicts maps each evaluated subsystem to whether it is due.
	Verdicts map[string]bool
	Due      bool
	Time     time.Time
}

// MetricsSink records inspection outcomes for observability purposes.
type MetricsSink interface {
	RecordInspection(ev InspectionEvent) error
}

// FleetSummary aggregates a batch inspection.
type FleetSummary struct {
	Inspected int
	Due       int
	Failed    int
	Time      time.Time
}

// FleetSummaryRecorder is implemented by sinks able to record fleet batches.
type FleetSummaryRecorder interface {
	RecordFleetSummary(s FleetSummary) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordInspection(InspectionEvent) error { return nil }

// Ensure NopSink implements FleetSummaryRecorder.
func (NopSink) RecordFleetSummary(FleetSummary) error { return nil }
