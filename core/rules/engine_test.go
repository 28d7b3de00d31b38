package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMileageRule_NeedsService(t *testing.T) {
	cases := []struct {
		name    string
		limit   int
		current int
		last    int
		want    bool
	}{
		{"30k below", 30000, 20000, 10000, false},
		{"30k exact", 30000, 30000, 0, true},
		{"30k above", 30000, 40000, 10000, true},
		{"30k one short", 30000, 29999, 0, false},
		{"60k below", 60000, 40000, 10000, false},
		{"60k exact", 60000, 60000, 0, true},
		{"60k above", 60000, 70000, 10000, true},
		{"negative delta", 30000, 10000, 50000, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := MileageRule{Limit: c.limit}
			got := r.NeedsService(EngineReading{CurrentMileage: c.current, LastServiceMileage: c.last})
			assert.Equal(t, c.want, got)
		})
	}
}

func TestMileageRule_IgnoresWarningLight(t *testing.T) {
	r := MileageRule{Limit: 30000}
	assert.False(t, r.NeedsService(EngineReading{CurrentMileage: 100, WarningLightOn: true}))
}

func TestWarningLightRule_NeedsService(t *testing.T) {
	r := WarningLightRule{}
	assert.False(t, r.NeedsService(EngineReading{}))
	assert.True(t, r.NeedsService(EngineReading{WarningLightOn: true}))
	// mileage is irrelevant to this policy
	assert.False(t, r.NeedsService(EngineReading{CurrentMileage: 1_000_000}))
}

func TestEngineRule_Kinds(t *testing.T) {
	assert.Equal(t, KindMileage, MileageRule{}.Kind())
	assert.Equal(t, KindWarningLight, WarningLightRule{}.Kind())
	assert.Equal(t, "mileage(30000)", MileageRule{Limit: 30000}.String())
}
