package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kilianp07/servicing/core/vehiclestatus"
	"github.com/kilianp07/servicing/infra/logger"
	"github.com/kilianp07/servicing/infra/metrics"
)

var (
	watchInterval time.Duration
	watchAddr     string
)

var fleetWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-inspect a fleet file periodically and expose Prometheus metrics",
	RunE:  runFleetWatch,
}

func init() {
	f := fleetWatchCmd.Flags()
	f.StringVarP(&fleetPath, "file", "f", "fleet.yaml", "fleet file (YAML or JSON)")
	f.DurationVar(&watchInterval, "interval", time.Hour, "time between inspections")
	f.StringVar(&watchAddr, "addr", "", "metrics listen address (default metrics.listen_addr)")
	fleetCmd.AddCommand(fleetWatchCmd)
}

func runFleetWatch(cmd *cobra.Command, args []string) error {
	if watchInterval <= 0 {
		return fmt.Errorf("interval must be positive")
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, cfg, err := newService()
	if err != nil {
		return err
	}
	defer closeService(cmd, svc)

	addr := watchAddr
	if addr == "" {
		addr = cfg.Metrics.ListenAddr
	}
	log := logger.New("watch")
	errCh := make(chan error, 1)
	go func() { errCh <- metrics.StartPromServer(ctx, addr) }()

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()
	for {
		// the file is reloaded each round so edits are picked up
		if reqs, err := fleetRequests(fleetPath, time.Now()); err != nil {
			log.Errorf("fleet inspection: %v", err)
		} else {
			svc.InspectFleet(ctx, reqs)
			for _, st := range svc.Statuses(vehiclestatus.Filter{DueOnly: true}) {
				log.Infof("%s (%s) due since %s: %s", st.VehicleID, st.Model,
					st.DueSince.Format(time.RFC3339), strings.Join(st.Subsystems, ","))
			}
		}
		select {
		case <-ctx.Done():
			return <-errCh
		case err := <-errCh:
			return err
		case <-ticker.C:
		}
	}
}
