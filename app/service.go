// Package app assembles the planner, persistence, sinks and transports into
// a running service.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/timegridhq/timegrid/api/grid"
	"github.com/timegridhq/timegrid/config"
	"github.com/timegridhq/timegrid/core/events"
	"github.com/timegridhq/timegrid/core/history"
	coremqtt "github.com/timegridhq/timegrid/core/mqtt"
	"github.com/timegridhq/timegrid/core/timetable"
	"github.com/timegridhq/timegrid/infra/logger"
	"github.com/timegridhq/timegrid/infra/metrics"
	"github.com/timegridhq/timegrid/infra/mqtt"
	"github.com/timegridhq/timegrid/infra/storage"
	"github.com/timegridhq/timegrid/internal/eventbus"
)

// Service orchestrates the timetable planner and its connectors.
type Service struct {
	Planner *timetable.Planner

	cfg       *config.Config
	store     *storage.FileStore
	bus       *eventbus.Bus
	sub       <-chan eventbus.Event
	publisher coremqtt.Publisher
	log       logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	store, err := storage.NewFileStore(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("schedule store: %w", err)
	}
	schedules, err := store.Load(context.Background())
	if err != nil {
		return nil, fmt.Errorf("load schedules: %w", err)
	}

	sink, err := metrics.New(cfg.Metrics)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}

	var hist history.Store
	if cfg.History.Path != "" {
		hist, err = history.NewJSONLStore(cfg.History.Path)
		if err != nil {
			return nil, fmt.Errorf("history store: %w", err)
		}
	}

	bus := eventbus.New()
	planner, err := timetable.NewPlanner(cfg.Planner, schedules, logger.New("planner"), sink, bus, hist)
	if err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}

	svc := &Service{Planner: planner, cfg: cfg, store: store, bus: bus, sub: bus.Subscribe(), log: logg}
	if cfg.MQTT.Enabled {
		pub, err := mqtt.NewPahoPublisher(cfg.MQTT)
		if err != nil {
			return nil, fmt.Errorf("mqtt publisher: %w", err)
		}
		svc.publisher = pub
	}
	return svc, nil
}

// Run starts the service and blocks until the context is cancelled. Every
// bus event is persisted to the schedule store and, when MQTT is enabled,
// broadcast to external subscribers.
func (s *Service) Run(ctx context.Context) error {
	go s.forward(ctx, s.sub)

	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	if s.cfg.API.Enabled {
		go func() {
			if err := s.serveAPI(ctx); err != nil {
				s.log.Errorf("api server: %v", err)
			}
		}()
	}
	<-ctx.Done()
	return nil
}

// forward reacts to planner events: each one snapshots the collection to
// disk and is relayed over MQTT.
func (s *Service) forward(ctx context.Context, sub <-chan eventbus.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-sub:
			if !ok {
				return
			}
			if err := s.store.Save(ctx, s.Planner.Schedules()); err != nil {
				s.log.Errorf("persist schedules: %v", err)
			}
			s.broadcast(ev)
		}
	}
}

func (s *Service) broadcast(ev eventbus.Event) {
	if s.publisher == nil {
		return
	}
	var suffix string
	switch e := ev.(type) {
	case events.SlotPlaced:
		suffix = e.ScheduleID + "/slot_placed"
	case events.SlotRemoved:
		suffix = e.ScheduleID + "/slot_removed"
	case events.PeriodAdded:
		suffix = "periods/added"
	case events.PeriodUpdated:
		suffix = "periods/updated"
	case events.PeriodDeleted:
		suffix = "periods/deleted"
	case events.ScheduleAdded:
		suffix = e.ScheduleID + "/added"
	default:
		return
	}
	if err := s.publisher.PublishEvent(suffix, ev); err != nil {
		s.log.Errorf("broadcast %s: %v", suffix, err)
	}
}

func (s *Service) serveAPI(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/api/grid", grid.NewGridHandler(s.Planner))
	mux.Handle("/api/conflicts", grid.NewConflictHandler(s.Planner))
	mux.Handle("/api/load", grid.NewLoadHandler(s.Planner))

	srv := &http.Server{Addr: s.cfg.API.Addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("api shutdown: %v", err)
		}
	}()
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	if s.publisher != nil {
		s.publisher.Close()
	}
	s.bus.Close()
	return nil
}
