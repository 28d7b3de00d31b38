package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kilianp07/servicing/app"
	"github.com/kilianp07/servicing/config"
	"github.com/kilianp07/servicing/infra/logger"
	_ "github.com/kilianp07/servicing/infra/metrics" // registers metrics sinks
)

var (
	cfgPath    string
	policyFlag string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:           "servicing",
	Short:         "Vehicle maintenance verdicts",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "servicing.yaml", "configuration file")
	rootCmd.PersistentFlags().StringVar(&policyFlag, "policy", "", "policy version override (current|legacy)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print JSON instead of a table")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOptional(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if policyFlag != "" {
		cfg.Policy.Version = policyFlag
		if err := cfg.Policy.Validate(); err != nil {
			return nil, err
		}
	}
	logger.SetLevel(cfg.Logging.Level)
	return cfg, nil
}

func newService() (*app.Service, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	svc, err := app.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	return svc, cfg, nil
}

func closeService(cmd *cobra.Command, svc *app.Service) {
	if err := svc.Close(); err != nil {
		if _, ferr := fmt.Fprintf(cmd.ErrOrStderr(), "error while closing service: %v\n", err); ferr != nil {
			fmt.Println("failed to write to stderr:", ferr)
		}
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func verdict(due bool) string {
	if due {
		return "DUE"
	}
	return "ok"
}

func writeReports(w io.Writer, results []app.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VEHICLE\tMODEL\tENGINE\tBATTERY\tTIRE\tSTATUS")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(tw, "%s\t%s\t-\t-\t-\terror: %v\n", r.Request.VehicleID, r.Request.Model, r.Err)
			continue
		}
		rep := r.Report
		tire := "n/a"
		if due, ok := rep.Verdicts["tire"]; ok {
			tire = verdict(due)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", rep.VehicleID, rep.Model,
			verdict(rep.Verdicts["engine"]), verdict(rep.Verdicts["battery"]), tire, verdict(rep.Due))
	}
	return tw.Flush()
}
