package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kilianp07/servicing/app"
	"github.com/kilianp07/servicing/config"
)

var fleetPath string

var fleetCmd = &cobra.Command{
	Use:   "fleet",
	Short: "Fleet related commands",
}

var fleetCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Inspect every vehicle listed in a fleet file",
	RunE:  runFleetCheck,
}

func init() {
	fleetCheckCmd.Flags().StringVarP(&fleetPath, "file", "f", "fleet.yaml", "fleet file (YAML or JSON)")
	fleetCmd.AddCommand(fleetCheckCmd)
	rootCmd.AddCommand(fleetCmd)
}

func runFleetCheck(cmd *cobra.Command, args []string) error {
	reqs, err := fleetRequests(fleetPath, time.Now())
	if err != nil {
		return err
	}

	svc, _, err := newService()
	if err != nil {
		return err
	}
	defer closeService(cmd, svc)

	results, sum := svc.InspectFleet(cmd.Context(), reqs)
	if jsonOutput {
		reports := make([]app.Report, 0, len(results))
		for _, r := range results {
			if r.Err == nil {
				reports = append(reports, r.Report)
			}
		}
		if err := writeJSON(cmd.OutOrStdout(), reports); err != nil {
			return err
		}
	} else {
		if err := writeReports(cmd.OutOrStdout(), results); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d inspected, %d due, %d failed\n", sum.Inspected, sum.Due, sum.Failed)
	}
	if sum.Failed > 0 {
		return fmt.Errorf("%d vehicles could not be inspected", sum.Failed)
	}
	return nil
}

func fleetRequests(path string, today time.Time) ([]app.Request, error) {
	fleet, err := config.LoadFleet(path)
	if err != nil {
		return nil, fmt.Errorf("load fleet: %w", err)
	}
	reqs := make([]app.Request, 0, len(fleet.Vehicles))
	for _, v := range fleet.Vehicles {
		m, err := v.Measurements(today)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, app.Request{VehicleID: v.ID, Model: v.Model, Measurements: m})
	}
	return reqs, nil
}
