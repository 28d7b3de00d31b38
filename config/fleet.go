package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/servicing/core/model"
	"github.com/kilianp07/servicing/core/rules"
)

// DateLayout is the calendar date format used in fleet files and flags.
const DateLayout = "2006-01-02"

// VehicleRecord is one vehicle entry of a fleet file.
type VehicleRecord struct {
	ID                 string    `json:"id"`
	Model              string    `json:"model"`
	CurrentMileage     int       `json:"current_mileage"`
	LastServiceMileage int       `json:"last_service_mileage"`
	LastServiceDate    string    `json:"last_service_date"`
	CurrentDate        string    `json:"current_date"`
	WarningLightOn     bool      `json:"warning_light_on"`
	TireWear           []float64 `json:"tire_wear"`
}

// Fleet lists the vehicles to inspect.
type Fleet struct {
	Vehicles []VehicleRecord `json:"vehicles"`
}

// LoadFleet reads a YAML or JSON fleet file.
func LoadFleet(path string) (*Fleet, error) {
	k := koanf.New(".")
	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	var f Fleet
	if err := k.UnmarshalWithConf("", &f, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	for i, v := range f.Vehicles {
		if strings.TrimSpace(v.Model) == "" {
			return nil, fmt.Errorf("vehicle %d: model is required", i)
		}
		if f.Vehicles[i].ID == "" {
			f.Vehicles[i].ID = fmt.Sprintf("%s-%d", strings.ToLower(v.Model), i)
		}
	}
	return &f, nil
}

// Measurements converts the record. An empty current date means today.
func (r VehicleRecord) Measurements(today time.Time) (model.Measurements, error) {
	m := model.Measurements{
		CurrentMileage:     r.CurrentMileage,
		LastServiceMileage: r.LastServiceMileage,
		WarningLightOn:     r.WarningLightOn,
		CurrentDate:        today,
	}
	var err error
	if m.LastServiceDate, err = ParseDate(r.LastServiceDate); err != nil {
		return m, fmt.Errorf("vehicle %s: last_service_date: %w", r.ID, err)
	}
	if r.CurrentDate != "" {
		if m.CurrentDate, err = ParseDate(r.CurrentDate); err != nil {
			return m, fmt.Errorf("vehicle %s: current_date: %w", r.ID, err)
		}
	}
	if len(r.TireWear) > 0 {
		w, err := rules.ParseTireWear(r.TireWear)
		if err != nil {
			return m, fmt.Errorf("vehicle %s: %w", r.ID, err)
		}
		m.TireWear = &w
	}
	return m, nil
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}
