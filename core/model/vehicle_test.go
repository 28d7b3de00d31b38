package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/servicing/core/rules"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewVehicle_RequiresRules(t *testing.T) {
	_, err := NewVehicle("x", nil, rules.AgeRule{LimitDays: 1})
	assert.True(t, errors.Is(err, ErrMissingEngineRule))
	_, err = NewVehicle("x", rules.WarningLightRule{}, nil)
	assert.True(t, errors.Is(err, ErrMissingBatteryRule))
}

func TestVehicle_EngineDispatch(t *testing.T) {
	mileage, err := NewVehicle("m", rules.MileageRule{Limit: 30000}, rules.AgeRule{LimitDays: 730})
	require.NoError(t, err)
	light, err := NewVehicle("w", rules.WarningLightRule{}, rules.AgeRule{LimitDays: 730})
	require.NoError(t, err)

	// mileage rules ignore the warning light
	assert.False(t, mileage.NeedsEngineService(20000, 10000, true))
	assert.True(t, mileage.NeedsEngineService(40000, 10000, false))
	// warning light rules ignore mileage
	assert.False(t, light.NeedsEngineService(900000, 0, false))
	assert.True(t, light.NeedsEngineService(0, 0, true))
}

func TestVehicle_BatteryDispatch(t *testing.T) {
	v, err := NewVehicle("m", rules.MileageRule{Limit: 30000}, rules.AgeRule{LimitDays: 1460})
	require.NoError(t, err)
	assert.True(t, v.NeedsBatteryService(day(2021, 1, 1), day(2025, 1, 1)))
	assert.False(t, v.NeedsBatteryService(day(2021, 1, 1), day(2023, 1, 1)))
}

func TestVehicle_TireCapability(t *testing.T) {
	without, err := NewVehicle("old", rules.MileageRule{Limit: 30000}, rules.AgeRule{LimitDays: 730})
	require.NoError(t, err)
	assert.False(t, without.SupportsTireService())
	_, err = without.NeedsTireService(rules.TireWear{1, 1, 1, 1})
	assert.True(t, errors.Is(err, ErrTireServiceUnsupported))

	with, err := NewVehicle("new", rules.MileageRule{Limit: 30000}, rules.AgeRule{LimitDays: 730},
		WithTireRule(rules.SumWearRule{Limit: 3}))
	require.NoError(t, err)
	assert.True(t, with.SupportsTireService())
	due, err := with.NeedsTireService(rules.TireWear{0.8, 0.8, 0.8, 0.8})
	require.NoError(t, err)
	assert.True(t, due)
	due, err = with.NeedsTireService(rules.TireWear{0.5, 0.5, 0.5, 0.5})
	require.NoError(t, err)
	assert.False(t, due)
}

func TestVehicle_Idempotent(t *testing.T) {
	v, err := NewVehicle("m", rules.MileageRule{Limit: 60000}, rules.AgeRule{LimitDays: 1095},
		WithTireRule(rules.AnyWearRule{Limit: 0.9}))
	require.NoError(t, err)
	wear := rules.TireWear{0.2, 0.9, 0.1, 0.1}
	for i := 0; i < 3; i++ {
		assert.True(t, v.NeedsEngineService(60000, 0, false))
		assert.False(t, v.NeedsBatteryService(day(2022, 1, 1), day(2023, 1, 1)))
		due, err := v.NeedsTireService(wear)
		require.NoError(t, err)
		assert.True(t, due)
	}
}

func TestVehicle_Policy(t *testing.T) {
	v, err := NewVehicle("m", rules.MileageRule{Limit: 60000}, rules.AgeRule{LimitDays: 1460},
		WithTireRule(rules.SumWearRule{Limit: 3}))
	require.NoError(t, err)
	assert.Equal(t, Policy{Engine: "mileage(60000)", Battery: "age(1460d)", Tire: "sum_wear(3)"}, v.Policy())
	assert.Equal(t, "m", v.Model())
}
