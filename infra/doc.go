// Package infra holds the adapters behind the core interfaces: zerolog
// logging, Prometheus and InfluxDB metric sinks and the MQTT alert
// publisher. Core packages never import infra.
package infra
