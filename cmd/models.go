package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kilianp07/servicing/core/model"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List vehicle models and their maintenance rules",
	RunE:  runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

type modelEntry struct {
	Name   string       `json:"name"`
	Policy model.Policy `json:"policy"`
}

func runModels(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := cfg.Catalog()
	if err != nil {
		return err
	}
	entries := make([]modelEntry, 0, len(cat.Names()))
	for _, name := range cat.Names() {
		p, err := cat.Describe(name)
		if err != nil {
			return err
		}
		entries = append(entries, modelEntry{Name: name, Policy: p})
	}
	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), entries)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "policy: %s\n", cat.Version())
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MODEL\tENGINE\tBATTERY\tTIRE")
	for _, e := range entries {
		tire := e.Policy.Tire
		if tire == "" {
			tire = "unsupported"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Name, e.Policy.Engine, e.Policy.Battery, tire)
	}
	return tw.Flush()
}
