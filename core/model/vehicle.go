package model

import (
	"time"

	"github.com/kilianp07/servicing/core/rules"
)

// Vehicle binds one rule per subsystem to a named model. The bindings are
// fixed at construction; a Vehicle has no mutable state and is safe for
// concurrent use.
type Vehicle struct {
	model   string
	engine  rules.EngineRule
	battery rules.BatteryRule
	tire    rules.TireRule
}

// Option customises a Vehicle at construction time.
type Option func(*Vehicle)

// WithTireRule binds a tire rule. Vehicles built without one do not support
// tire service queries.
func WithTireRule(r rules.TireRule) Option {
	return func(v *Vehicle) { v.tire = r }
}

// NewVehicle binds the engine and battery rules, plus any optional
// capabilities, to the model name. Engine and battery rules are required.
func NewVehicle(model string, engine rules.EngineRule, battery rules.BatteryRule, opts ...Option) (*Vehicle, error) {
	if engine == nil {
		return nil, ErrMissingEngineRule
	}
	if battery == nil {
		return nil, ErrMissingBatteryRule
	}
	v := &Vehicle{model: model, engine: engine, battery: battery}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// Model returns the model name the policy bundle belongs to.
func (v *Vehicle) Model() string { return v.model }

// NeedsEngineService delegates to the bound engine rule. The rule reads only
// the inputs its policy uses, so warningLightOn is ignored by mileage rules
// and the mileage pair by warning light rules.
func (v *Vehicle) NeedsEngineService(currentMileage, lastServiceMileage int, warningLightOn bool) bool {
	return v.engine.NeedsService(rules.EngineReading{
		CurrentMileage:     currentMileage,
		LastServiceMileage: lastServiceMileage,
		WarningLightOn:     warningLightOn,
	})
}

// NeedsBatteryService delegates to the bound battery rule.
func (v *Vehicle) NeedsBatteryService(lastServiceDate, currentDate time.Time) bool {
	return v.battery.NeedsService(lastServiceDate, currentDate)
}

// SupportsTireService reports whether a tire rule is bound.
func (v *Vehicle) SupportsTireService() bool { return v.tire != nil }

// NeedsTireService delegates to the bound tire rule. It returns
// ErrTireServiceUnsupported when the policy bundle has no tire rule.
func (v *Vehicle) NeedsTireService(wear rules.TireWear) (bool, error) {
	if v.tire == nil {
		return false, ErrTireServiceUnsupported
	}
	return v.tire.NeedsService(wear), nil
}

// Policy describes the rules bound to the vehicle.
func (v *Vehicle) Policy() Policy {
	p := Policy{Engine: describe(v.engine), Battery: describe(v.battery)}
	if v.tire != nil {
		p.Tire = describe(v.tire)
	}
	return p
}

// Policy is a printable summary of a policy bundle.
type Policy struct {
	Engine  string `json:"engine"`
	Battery string `json:"battery"`
	Tire    string `json:"tire,omitempty"`
}

type kinded interface{ Kind() string }

func describe(r kinded) string {
	if s, ok := r.(interface{ String() string }); ok {
		return s.String()
	}
	return r.Kind()
}
