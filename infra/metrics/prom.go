package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/servicing/core/metrics"
)

// PromSink records inspection outcomes in Prometheus metrics.
type PromSink struct {
	verdicts    *prometheus.CounterVec
	inspections *prometheus.CounterVec
	due         prometheus.Gauge
}

// NewPromSink registers inspection metrics on the default Prometheus registerer.
// The Prometheus server should be started separately with StartPromServer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	verdicts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "maintenance_verdicts_total",
		Help: "Total number of subsystem verdicts",
	}, []string{"model", "subsystem", "due"})
	inspections := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "maintenance_inspections_total",
		Help: "Total number of vehicle inspections",
	}, []string{"model", "due"})
	due := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "maintenance_inspections_due",
		Help: "Number of vehicles due for service in the last fleet inspection",
	})

	var err error
	if verdicts, err = register(reg, verdicts); err != nil {
		return nil, err
	}
	if inspections, err = register(reg, inspections); err != nil {
		return nil, err
	}
	if due, err = register(reg, due); err != nil {
		return nil, err
	}
	return &PromSink{verdicts: verdicts, inspections: inspections, due: due}, nil
}

// register reuses an already registered collector of the same shape.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordInspection increments the per-subsystem and per-vehicle counters.
func (s *PromSink) RecordInspection(ev coremetrics.InspectionEvent) error {
	for subsystem, due := range ev.Verdicts {
		s.verdicts.WithLabelValues(ev.Model, subsystem, strconv.FormatBool(due)).Inc()
	}
	s.inspections.WithLabelValues(ev.Model, strconv.FormatBool(ev.Due)).Inc()
	return nil
}

// RecordFleetSummary sets the gauge to the number of vehicles due.
func (s *PromSink) RecordFleetSummary(sum coremetrics.FleetSummary) error {
	s.due.Set(float64(sum.Due))
	return nil
}
