// Package rules implements the maintenance rule variants. Each subsystem
// (engine, battery, tires) has a capability interface with a single
// NeedsService predicate and a small set of interchangeable threshold rules.
// Rules are immutable values and safe to share between goroutines.
package rules
