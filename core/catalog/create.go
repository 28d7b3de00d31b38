package catalog

import (
	"time"

	"github.com/kilianp07/servicing/core/model"
)

// The Create functions build the built-in models with the Current policy.
// Dates and mileage are accepted to keep the established call shape; the
// model name alone selects the rules.

var current = New(Current)

func mustBuild(name string) *model.Vehicle {
	v, err := current.Build(name)
	if err != nil {
		// built-in table is static
		panic(err)
	}
	return v
}

func CreateCalliope(currentDate, lastServiceDate time.Time, currentMileage, lastServiceMileage int) *model.Vehicle {
	return mustBuild(Calliope)
}

func CreateGlissade(currentDate, lastServiceDate time.Time, currentMileage, lastServiceMileage int) *model.Vehicle {
	return mustBuild(Glissade)
}

func CreatePalindrome(currentDate, lastServiceDate time.Time, warningLightOn bool) *model.Vehicle {
	return mustBuild(Palindrome)
}

func CreateRorschach(currentDate, lastServiceDate time.Time, currentMileage, lastServiceMileage int) *model.Vehicle {
	return mustBuild(Rorschach)
}

func CreateThovex(currentDate, lastServiceDate time.Time, currentMileage, lastServiceMileage int) *model.Vehicle {
	return mustBuild(Thovex)
}
