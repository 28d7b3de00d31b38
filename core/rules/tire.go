package rules

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// TireWear holds one wear fraction per tire. Values are expected in [0,1]
// but are not clamped.
type TireWear [4]float64

// TireRule decides whether the tires are due for service.
type TireRule interface {
	Kind() string
	NeedsService(TireWear) bool
}

const (
	KindAnyWear = "any_wear"
	KindSumWear = "sum_wear"
)

// AnyWearRule is due when a single tire reaches Limit.
type AnyWearRule struct {
	Limit float64
}

func (AnyWearRule) Kind() string { return KindAnyWear }

func (r AnyWearRule) NeedsService(w TireWear) bool {
	return floats.Max(w[:]) >= r.Limit
}

func (r AnyWearRule) String() string { return fmt.Sprintf("%s(%g)", KindAnyWear, r.Limit) }

// SumWearRule is due when the combined wear of all tires reaches Limit.
type SumWearRule struct {
	Limit float64
}

func (SumWearRule) Kind() string { return KindSumWear }

func (r SumWearRule) NeedsService(w TireWear) bool {
	return floats.Sum(w[:]) >= r.Limit
}

func (r SumWearRule) String() string { return fmt.Sprintf("%s(%g)", KindSumWear, r.Limit) }

// ParseTireWear converts a slice of readings into a TireWear. Exactly four
// readings are required.
func ParseTireWear(readings []float64) (TireWear, error) {
	var w TireWear
	if len(readings) != len(w) {
		return w, fmt.Errorf("%w: got %d readings, want %d", ErrTireCount, len(readings), len(w))
	}
	copy(w[:], readings)
	return w, nil
}
