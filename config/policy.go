package config

import "github.com/kilianp07/servicing/core/catalog"

// PolicyConfig selects the generation of the built-in model table.
type PolicyConfig struct {
	// Version is "current" (tire rules, three year Spindler batteries) or
	// "legacy" (no tire rules, two year Spindler batteries).
	Version string `json:"version"`
}

// SetDefaults applies sane defaults.
func (c *PolicyConfig) SetDefaults() {
	if c.Version == "" {
		c.Version = string(catalog.Current)
	}
}

// Validate checks the version name.
func (c PolicyConfig) Validate() error {
	_, err := catalog.ParseVersion(c.Version)
	return err
}

// InspectionConfig tunes batch inspections.
type InspectionConfig struct {
	// Workers bounds the number of vehicles inspected concurrently.
	Workers int `json:"workers"`
	// AlertTimeoutSeconds bounds the delivery of a single alert.
	AlertTimeoutSeconds int `json:"alert_timeout_seconds"`
}

// SetDefaults applies sane defaults.
func (c *InspectionConfig) SetDefaults() {
	if c.Workers <= 0 {
		c.Workers = 4
	}
	if c.AlertTimeoutSeconds <= 0 {
		c.AlertTimeoutSeconds = 5
	}
}
