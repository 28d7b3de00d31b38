package model

import "errors"

var (
	// ErrTireServiceUnsupported is returned when a tire query targets a
	// policy bundle without a tire rule.
	ErrTireServiceUnsupported = errors.New("tire service not supported by this model")
	ErrMissingEngineRule      = errors.New("engine rule is required")
	ErrMissingBatteryRule     = errors.New("battery rule is required")
)
