package metrics

import "github.com/kilianp07/servicing/core/factory"

// Config defines settings for metrics sinks.
type Config struct {
	Sinks []factory.Spec `json:"sinks"`
	// ListenAddr is where the Prometheus handler is served, e.g. ":2112".
	ListenAddr string `json:"listen_addr"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = ":2112"
	}
}
