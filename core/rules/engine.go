package rules

import "fmt"

// EngineReading bundles every input an engine rule may look at. Each rule
// reads only the fields its policy needs.
type EngineReading struct {
	CurrentMileage     int
	LastServiceMileage int
	WarningLightOn     bool
}

// Elapsed returns the distance driven since the last service. It is negative
// when the current mileage is below the last service mileage.
func (r EngineReading) Elapsed() int {
	return r.CurrentMileage - r.LastServiceMileage
}

// EngineRule decides whether an engine is due for service.
type EngineRule interface {
	Kind() string
	NeedsService(EngineReading) bool
}

const (
	KindMileage      = "mileage"
	KindWarningLight = "warning_light"
)

// MileageRule is due once the distance since the last service reaches Limit.
type MileageRule struct {
	Limit int
}

func (MileageRule) Kind() string { return KindMileage }

// NeedsService is boundary-inclusive: exactly Limit is due.
func (r MileageRule) NeedsService(in EngineReading) bool {
	return in.Elapsed() >= r.Limit
}

func (r MileageRule) String() string { return fmt.Sprintf("%s(%d)", KindMileage, r.Limit) }

// WarningLightRule follows the dashboard warning light and ignores mileage.
type WarningLightRule struct{}

func (WarningLightRule) Kind() string { return KindWarningLight }

func (WarningLightRule) NeedsService(in EngineReading) bool {
	return in.WarningLightOn
}

func (WarningLightRule) String() string { return KindWarningLight }
