package catalog

import (
	"fmt"
	"strings"

	"github.com/kilianp07/servicing/core/rules"
)

// Calibrations bound by the built-in models.
const (
	CapuletMileageLimit    = 30000
	WilloughbyMileageLimit = 60000

	SpindlerAgeDaysLegacy = 365 * 2
	SpindlerAgeDays       = 365 * 3
	NubbinAgeDays         = 365 * 4

	CarriganWearLimit     = 0.9
	OctoprimeWearSumLimit = 3.0
)

const (
	Calliope   = "Calliope"
	Glissade   = "Glissade"
	Palindrome = "Palindrome"
	Rorschach  = "Rorschach"
	Thovex     = "Thovex"
)

// Version selects a generation of the built-in policy table.
type Version string

const (
	Legacy  Version = "legacy"
	Current Version = "current"
)

// ParseVersion accepts a version name case-insensitively. An empty name
// selects Current.
func ParseVersion(s string) (Version, error) {
	switch Version(strings.ToLower(strings.TrimSpace(s))) {
	case "", Current:
		return Current, nil
	case Legacy:
		return Legacy, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownVersion, s)
	}
}

// Bundle is the set of rules bound to a model. Tire is nil for bundles
// without tire support.
type Bundle struct {
	Engine  rules.EngineRule
	Battery rules.BatteryRule
	Tire    rules.TireRule
}

func capulet() rules.EngineRule    { return rules.MileageRule{Limit: CapuletMileageLimit} }
func willoughby() rules.EngineRule { return rules.MileageRule{Limit: WilloughbyMileageLimit} }
func sternman() rules.EngineRule   { return rules.WarningLightRule{} }

func spindler(v Version) rules.BatteryRule {
	if v == Legacy {
		return rules.AgeRule{LimitDays: SpindlerAgeDaysLegacy}
	}
	return rules.AgeRule{LimitDays: SpindlerAgeDays}
}

func nubbin() rules.BatteryRule { return rules.AgeRule{LimitDays: NubbinAgeDays} }

func carrigan(v Version) rules.TireRule {
	if v == Legacy {
		return nil
	}
	return rules.AnyWearRule{Limit: CarriganWearLimit}
}

func octoprime(v Version) rules.TireRule {
	if v == Legacy {
		return nil
	}
	return rules.SumWearRule{Limit: OctoprimeWearSumLimit}
}

// builtins returns the fixed model table for a version.
func builtins(v Version) map[string]Bundle {
	return map[string]Bundle{
		Calliope:   {Engine: capulet(), Battery: spindler(v), Tire: carrigan(v)},
		Glissade:   {Engine: willoughby(), Battery: spindler(v), Tire: carrigan(v)},
		Palindrome: {Engine: sternman(), Battery: spindler(v), Tire: carrigan(v)},
		Rorschach:  {Engine: willoughby(), Battery: nubbin(), Tire: octoprime(v)},
		Thovex:     {Engine: capulet(), Battery: nubbin(), Tire: octoprime(v)},
	}
}
