package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAgeRule_NeedsService(t *testing.T) {
	cases := []struct {
		name    string
		limit   int
		last    time.Time
		current time.Time
		want    bool
	}{
		{"two years elapsed", 730, date(2021, 1, 1), date(2023, 1, 1), true},
		{"one year elapsed", 730, date(2021, 1, 1), date(2022, 1, 1), false},
		{"one day short", 730, date(2021, 1, 1), date(2022, 12, 31), false},
		{"three years", 1095, date(2021, 1, 1), date(2024, 1, 1), true},
		{"four years with leap day", 1460, date(2021, 1, 1), date(2025, 1, 1), true},
		{"two of four years", 1460, date(2021, 1, 1), date(2023, 1, 1), false},
		{"current before last", 730, date(2023, 1, 1), date(2021, 1, 1), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, AgeRule{LimitDays: c.limit}.NeedsService(c.last, c.current))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 730, DaysBetween(date(2021, 1, 1), date(2023, 1, 1)))
	assert.Equal(t, 1461, DaysBetween(date(2021, 1, 1), date(2025, 1, 1)))
	assert.Equal(t, -365, DaysBetween(date(2022, 1, 1), date(2021, 1, 1)))

	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skipf("zoneinfo unavailable: %v", err)
	}
	// spans the March DST switch; clock time is ignored
	from := time.Date(2023, 3, 20, 23, 30, 0, 0, paris)
	to := time.Date(2023, 3, 27, 0, 15, 0, 0, paris)
	assert.Equal(t, 7, DaysBetween(from, to))
}
