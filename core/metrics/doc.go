package metrics

// Package metrics defines interfaces for recording inspection outcomes.
// Sinks like PromSink and InfluxSink live in infra/metrics and register
// themselves with the sink factory; NewMetricsSink returns a MultiSink when
// several sinks are configured.
