package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kilianp07/servicing/app"
	"github.com/kilianp07/servicing/config"
	"github.com/kilianp07/servicing/core/model"
	"github.com/kilianp07/servicing/core/rules"
)

type checkFlags struct {
	vehicleID    string
	model        string
	date         string
	lastService  string
	mileage      int
	lastMileage  int
	warningLight bool
	tireWear     string
}

var checkOpts checkFlags

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Inspect a single vehicle",
	RunE:  runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.StringVar(&checkOpts.vehicleID, "id", "", "vehicle identifier (defaults to the model name)")
	f.StringVarP(&checkOpts.model, "model", "m", "", "vehicle model")
	f.StringVar(&checkOpts.date, "date", "", "current date YYYY-MM-DD (default today)")
	f.StringVar(&checkOpts.lastService, "last-service", "", "last service date YYYY-MM-DD")
	f.IntVar(&checkOpts.mileage, "mileage", 0, "current mileage")
	f.IntVar(&checkOpts.lastMileage, "last-mileage", 0, "mileage at last service")
	f.BoolVar(&checkOpts.warningLight, "warning-light", false, "engine warning light is on")
	f.StringVar(&checkOpts.tireWear, "tire-wear", "", "four comma separated tire wear fractions")
	_ = checkCmd.MarkFlagRequired("model")
	_ = checkCmd.MarkFlagRequired("last-service")
	rootCmd.AddCommand(checkCmd)
}

func (f checkFlags) measurements(today time.Time) (model.Measurements, error) {
	m := model.Measurements{
		CurrentMileage:     f.mileage,
		LastServiceMileage: f.lastMileage,
		WarningLightOn:     f.warningLight,
		CurrentDate:        today,
	}
	var err error
	if m.LastServiceDate, err = config.ParseDate(f.lastService); err != nil {
		return m, fmt.Errorf("--last-service: %w", err)
	}
	if f.date != "" {
		if m.CurrentDate, err = config.ParseDate(f.date); err != nil {
			return m, fmt.Errorf("--date: %w", err)
		}
	}
	if f.tireWear != "" {
		w, err := parseWear(f.tireWear)
		if err != nil {
			return m, fmt.Errorf("--tire-wear: %w", err)
		}
		m.TireWear = &w
	}
	return m, nil
}

func parseWear(s string) (rules.TireWear, error) {
	parts := strings.Split(s, ",")
	readings := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return rules.TireWear{}, err
		}
		readings = append(readings, v)
	}
	return rules.ParseTireWear(readings)
}

func runCheck(cmd *cobra.Command, args []string) error {
	m, err := checkOpts.measurements(time.Now())
	if err != nil {
		return err
	}
	svc, _, err := newService()
	if err != nil {
		return err
	}
	defer closeService(cmd, svc)

	id := checkOpts.vehicleID
	if id == "" {
		id = checkOpts.model
	}
	req := app.Request{VehicleID: id, Model: checkOpts.model, Measurements: m}
	rep, err := svc.Inspect(cmd.Context(), req)
	if err != nil {
		return err
	}
	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), rep)
	}
	return writeReports(cmd.OutOrStdout(), []app.Result{{Request: req, Report: rep}})
}
