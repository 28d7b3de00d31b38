package rules

import (
	"fmt"

	"github.com/kilianp07/servicing/core/factory"
)

var (
	engineRegistry  = factory.NewRegistry[EngineRule]()
	batteryRegistry = factory.NewRegistry[BatteryRule]()
	tireRegistry    = factory.NewRegistry[TireRule]()
)

type limitParams struct {
	Limit float64 `json:"limit"`
}

type ageParams struct {
	LimitDays int `json:"limit_days"`
}

func init() {
	_ = engineRegistry.Register(KindMileage, func(params map[string]any) (EngineRule, error) {
		var p limitParams
		if err := factory.Decode(params, &p); err != nil {
			return nil, err
		}
		if p.Limit <= 0 {
			return nil, fmt.Errorf("mileage limit must be positive")
		}
		return MileageRule{Limit: int(p.Limit)}, nil
	})
	_ = engineRegistry.Register(KindWarningLight, func(map[string]any) (EngineRule, error) {
		return WarningLightRule{}, nil
	})

	_ = batteryRegistry.Register(KindAge, func(params map[string]any) (BatteryRule, error) {
		var p ageParams
		if err := factory.Decode(params, &p); err != nil {
			return nil, err
		}
		if p.LimitDays <= 0 {
			return nil, fmt.Errorf("age limit_days must be positive")
		}
		return AgeRule{LimitDays: p.LimitDays}, nil
	})

	_ = tireRegistry.Register(KindAnyWear, func(params map[string]any) (TireRule, error) {
		var p limitParams
		if err := factory.Decode(params, &p); err != nil {
			return nil, err
		}
		if p.Limit <= 0 {
			return nil, fmt.Errorf("any_wear limit must be positive")
		}
		return AnyWearRule{Limit: p.Limit}, nil
	})
	_ = tireRegistry.Register(KindSumWear, func(params map[string]any) (TireRule, error) {
		var p limitParams
		if err := factory.Decode(params, &p); err != nil {
			return nil, err
		}
		if p.Limit <= 0 {
			return nil, fmt.Errorf("sum_wear limit must be positive")
		}
		return SumWearRule{Limit: p.Limit}, nil
	})
}

// NewEngineRule builds an engine rule from its spec.
func NewEngineRule(spec factory.Spec) (EngineRule, error) {
	r, err := engineRegistry.Create(spec)
	if err != nil {
		return nil, fmt.Errorf("engine rule: %w", err)
	}
	return r, nil
}

// NewBatteryRule builds a battery rule from its spec.
func NewBatteryRule(spec factory.Spec) (BatteryRule, error) {
	r, err := batteryRegistry.Create(spec)
	if err != nil {
		return nil, fmt.Errorf("battery rule: %w", err)
	}
	return r, nil
}

// NewTireRule builds a tire rule from its spec.
func NewTireRule(spec factory.Spec) (TireRule, error) {
	r, err := tireRegistry.Create(spec)
	if err != nil {
		return nil, fmt.Errorf("tire rule: %w", err)
	}
	return r, nil
}

// Kinds lists the rule types available per subsystem.
func Kinds() map[string][]string {
	return map[string][]string{
		"engine":  engineRegistry.Types(),
		"battery": batteryRegistry.Types(),
		"tire":    tireRegistry.Types(),
	}
}
