package rules

import (
	"fmt"
	"time"
)

// BatteryRule decides whether a battery is due for service.
type BatteryRule interface {
	Kind() string
	NeedsService(lastServiceDate, currentDate time.Time) bool
}

const KindAge = "age"

// AgeRule is due once LimitDays calendar days have passed since the last
// service.
type AgeRule struct {
	LimitDays int
}

func (AgeRule) Kind() string { return KindAge }

// NeedsService is boundary-inclusive. A current date before the last service
// yields a negative age and is never due.
func (r AgeRule) NeedsService(lastServiceDate, currentDate time.Time) bool {
	return DaysBetween(lastServiceDate, currentDate) >= r.LimitDays
}

func (r AgeRule) String() string { return fmt.Sprintf("%s(%dd)", KindAge, r.LimitDays) }

// DaysBetween counts whole calendar days from 'from' to 'to'. Only the
// calendar date of each value matters; clock time and zone offsets are
// dropped so DST transitions never change the count.
func DaysBetween(from, to time.Time) int {
	return int(civilDate(to).Sub(civilDate(from)).Hours() / 24)
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
