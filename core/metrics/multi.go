package metrics

// MultiSink fans out events to multiple sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordInspection forwards the event to all sinks, returning the first error encountered.
func (m *MultiSink) RecordInspection(ev InspectionEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordInspection(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordFleetSummary forwards summaries to sinks that support them.
func (m *MultiSink) RecordFleetSummary(sum FleetSummary) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(FleetSummaryRecorder); ok {
			if err := rec.RecordFleetSummary(sum); err != nil {
				return err
			}
		}
	}
	return nil
}
