package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/kilianp07/servicing/config"
	"github.com/kilianp07/servicing/core/alert"
	"github.com/kilianp07/servicing/core/catalog"
	coremetrics "github.com/kilianp07/servicing/core/metrics"
	"github.com/kilianp07/servicing/core/model"
	"github.com/kilianp07/servicing/core/vehiclestatus"
	"github.com/kilianp07/servicing/infra/logger"
	"github.com/kilianp07/servicing/infra/mqtt"
)

// Request asks for the inspection of one vehicle.
type Request struct {
	VehicleID    string
	Model        string
	Measurements model.Measurements
}

// Report is the outcome of an inspection.
type Report struct {
	ID          string          `json:"id"`
	VehicleID   string          `json:"vehicle_id"`
	Model       string          `json:"model"`
	Policy      model.Policy    `json:"policy"`
	Verdicts    map[string]bool `json:"verdicts"`
	Due         bool            `json:"due"`
	AlertSent   bool            `json:"alert_sent"`
	InspectedAt time.Time       `json:"inspected_at"`
}

// Result pairs a fleet request with its report or failure.
type Result struct {
	Request Request
	Report  Report
	Err     error
}

// Service orchestrates inspections: it builds vehicles from the catalog,
// records metrics and forwards alerts for vehicles due for service.
type Service struct {
	catalog      *catalog.Catalog
	sink         coremetrics.MetricsSink
	alerts       alert.Publisher
	status       vehiclestatus.Store
	log          logger.Logger
	workers      int
	alertTimeout time.Duration
	now          func() time.Time
	closers      []func() error
}

// Option customises a Service.
type Option func(*Service)

func WithMetricsSink(s coremetrics.MetricsSink) Option { return func(svc *Service) { svc.sink = s } }
func WithAlertPublisher(p alert.Publisher) Option      { return func(svc *Service) { svc.alerts = p } }
func WithLogger(l logger.Logger) Option                { return func(svc *Service) { svc.log = l } }
func WithClock(now func() time.Time) Option            { return func(svc *Service) { svc.now = now } }
func WithStatusStore(st vehiclestatus.Store) Option    { return func(svc *Service) { svc.status = st } }

// WithWorkers bounds concurrent inspections in InspectFleet.
func WithWorkers(n int) Option {
	return func(svc *Service) {
		if n > 0 {
			svc.workers = n
		}
	}
}

// WithAlertTimeout bounds the delivery of each alert.
func WithAlertTimeout(d time.Duration) Option {
	return func(svc *Service) {
		if d > 0 {
			svc.alertTimeout = d
		}
	}
}

// NewService creates a Service around a catalog. Without options metrics
// and alerts are discarded.
func NewService(cat *catalog.Catalog, opts ...Option) *Service {
	s := &Service{
		catalog:      cat,
		sink:         coremetrics.NopSink{},
		alerts:       alert.NopPublisher{},
		status:       vehiclestatus.NewMemoryStore(),
		log:          logger.NopLogger{},
		workers:      4,
		alertTimeout: 5 * time.Second,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("inspection")
	cat, err := cfg.Catalog()
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	opts := []Option{
		WithMetricsSink(sink),
		WithLogger(logg),
		WithWorkers(cfg.Inspection.Workers),
		WithAlertTimeout(time.Duration(cfg.Inspection.AlertTimeoutSeconds) * time.Second),
	}
	var closers []func() error
	if cfg.MQTT.Enabled {
		pub, err := mqtt.NewAlertPublisher(cfg.MQTT)
		if err != nil {
			return nil, fmt.Errorf("mqtt alerts: %w", err)
		}
		opts = append(opts, WithAlertPublisher(pub))
		closers = append(closers, pub.Close)
	}
	svc := NewService(cat, opts...)
	svc.closers = closers
	logg.Infof("inspection service ready: policy=%s models=%d", cat.Version(), len(cat.Names()))
	return svc, nil
}

// Catalog exposes the model catalog.
func (s *Service) Catalog() *catalog.Catalog { return s.catalog }

// Inspect evaluates one vehicle. Metrics and alert delivery failures are
// logged and do not fail the inspection.
func (s *Service) Inspect(ctx context.Context, req Request) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	v, err := s.catalog.Build(req.Model)
	if err != nil {
		return Report{}, err
	}
	insp := v.Inspect(req.Measurements)
	rep := Report{
		ID:          uuid.NewString(),
		VehicleID:   req.VehicleID,
		Model:       v.Model(),
		Policy:      v.Policy(),
		Verdicts:    insp.Subsystems(),
		Due:         insp.Due(),
		InspectedAt: s.now(),
	}
	s.log.Debugw("vehicle inspected", map[string]any{
		"inspection_id": rep.ID,
		"vehicle_id":    rep.VehicleID,
		"model":         rep.Model,
		"due":           rep.Due,
	})
	if err := s.sink.RecordInspection(coremetrics.InspectionEvent{
		InspectionID: rep.ID,
		VehicleID:    rep.VehicleID,
		Model:        rep.Model,
		Verdicts:     rep.Verdicts,
		Due:          rep.Due,
		Time:         rep.InspectedAt,
	}); err != nil {
		s.log.Warnf("record inspection %s: %v", rep.ID, err)
	}
	s.trackStatus(rep)
	if rep.Due {
		rep.AlertSent = s.sendAlert(ctx, rep)
	}
	return rep, nil
}

func (s *Service) trackStatus(rep Report) {
	prev, changed := s.status.Record(vehiclestatus.Status{
		VehicleID:      rep.VehicleID,
		Model:          rep.Model,
		InspectionID:   rep.ID,
		Due:            rep.Due,
		Subsystems:     alert.DueSubsystems(rep.Verdicts),
		LastInspection: rep.InspectedAt,
	})
	if !changed {
		return
	}
	if rep.Due {
		s.log.Infow("vehicle due for service", map[string]any{
			"vehicle_id": rep.VehicleID,
			"model":      rep.Model,
			"subsystems": alert.DueSubsystems(rep.Verdicts),
		})
		return
	}
	s.log.Infow("vehicle maintenance cleared", map[string]any{
		"vehicle_id": rep.VehicleID,
		"due_since":  prev.DueSince,
	})
}

// Statuses lists the latest status of every inspected vehicle.
func (s *Service) Statuses(f vehiclestatus.Filter) []vehiclestatus.Status {
	return s.status.List(f)
}

func (s *Service) sendAlert(ctx context.Context, rep Report) bool {
	ctx, cancel := context.WithTimeout(ctx, s.alertTimeout)
	defer cancel()
	a := alert.Alert{
		ID:           uuid.NewString(),
		InspectionID: rep.ID,
		VehicleID:    rep.VehicleID,
		Model:        rep.Model,
		Subsystems:   alert.DueSubsystems(rep.Verdicts),
		Time:         rep.InspectedAt,
	}
	if err := s.alerts.Publish(ctx, a); err != nil {
		s.log.Errorf("alert for vehicle %s: %v", rep.VehicleID, err)
		return false
	}
	return true
}

// InspectFleet inspects every request with at most the configured number of
// workers. Results keep the order of the requests. A cancelled context
// marks the remaining requests as failed.
func (s *Service) InspectFleet(ctx context.Context, reqs []Request) ([]Result, coremetrics.FleetSummary) {
	results := make([]Result, len(reqs))
	g := new(errgroup.Group)
	g.SetLimit(s.workers)
	for i, req := range reqs {
		i, req := i, req
		results[i].Request = req
		g.Go(func() error {
			results[i].Report, results[i].Err = s.Inspect(ctx, req)
			return nil
		})
	}
	_ = g.Wait()

	sum := coremetrics.FleetSummary{Time: s.now()}
	for _, r := range results {
		switch {
		case r.Err != nil:
			sum.Failed++
		case r.Report.Due:
			sum.Inspected++
			sum.Due++
		default:
			sum.Inspected++
		}
	}
	if rec, ok := s.sink.(coremetrics.FleetSummaryRecorder); ok {
		if err := rec.RecordFleetSummary(sum); err != nil {
			s.log.Warnf("record fleet summary: %v", err)
		}
	}
	s.log.Infof("fleet inspected: %d vehicles, %d due, %d failed", sum.Inspected, sum.Due, sum.Failed)
	return results, sum
}

// Close releases the alert publisher and other resources.
func (s *Service) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
