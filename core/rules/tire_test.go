package rules

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnyWearRule_NeedsService(t *testing.T) {
	r := AnyWearRule{Limit: 0.9}
	assert.True(t, r.NeedsService(TireWear{0.5, 0.5, 0.5, 0.95}))
	assert.False(t, r.NeedsService(TireWear{0.5, 0.5, 0.5, 0.5}))
	assert.True(t, r.NeedsService(TireWear{0.9, 0, 0, 0}), "limit is inclusive")
	// order of readings does not matter
	assert.True(t, r.NeedsService(TireWear{0.95, 0.5, 0.5, 0.5}))
}

func TestSumWearRule_NeedsService(t *testing.T) {
	r := SumWearRule{Limit: 3.0}
	assert.True(t, r.NeedsService(TireWear{0.8, 0.8, 0.8, 0.8}))
	assert.False(t, r.NeedsService(TireWear{0.5, 0.5, 0.5, 0.5}))
	assert.True(t, r.NeedsService(TireWear{0.75, 0.75, 0.75, 0.75}), "limit is inclusive")
	assert.True(t, r.NeedsService(TireWear{1, 1, 1, 0}))
}

func TestParseTireWear(t *testing.T) {
	w, err := ParseTireWear([]float64{0.1, 0.2, 0.3, 0.4})
	require.NoError(t, err)
	assert.Equal(t, TireWear{0.1, 0.2, 0.3, 0.4}, w)

	_, err = ParseTireWear([]float64{0.1, 0.2})
	assert.True(t, errors.Is(err, ErrTireCount))
	_, err = ParseTireWear(nil)
	assert.Error(t, err)
}
