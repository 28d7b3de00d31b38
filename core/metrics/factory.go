package metrics

import "github.com/kilianp07/servicing/core/factory"

var sinkRegistry = factory.NewRegistry[MetricsSink]()

// RegisterMetricsSink adds a metrics sink builder identified by name.
func RegisterMetricsSink(name string, b factory.Builder[MetricsSink]) error {
	return sinkRegistry.Register(name, b)
}

// NewMetricsSink creates a MetricsSink from the provided configuration.
func NewMetricsSink(specs []factory.Spec) (MetricsSink, error) {
	if len(specs) == 0 {
		return NopSink{}, nil
	}
	if len(specs) == 1 {
		return sinkRegistry.Create(specs[0])
	}
	sinks := make([]MetricsSink, len(specs))
	for i, s := range specs {
		sink, err := sinkRegistry.Create(s)
		if err != nil {
			return nil, err
		}
		sinks[i] = sink
	}
	return NewMultiSink(sinks...), nil
}

func init() {
	_ = RegisterMetricsSink("nop", func(map[string]any) (MetricsSink, error) {
		return NopSink{}, nil
	})
}
