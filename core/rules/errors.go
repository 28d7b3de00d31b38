package rules

import "errors"

// ErrTireCount is returned when a wear reading set does not cover every tire.
var ErrTireCount = errors.New("invalid tire wear reading count")
