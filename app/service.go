package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/omerfdk/sunsizer/api/estimate"
	"github.com/omerfdk/sunsizer/api/initdata"
	"github.com/omerfdk/sunsizer/config"
	"github.com/omerfdk/sunsizer/core/catalog"
	"github.com/omerfdk/sunsizer/core/engine"
	coremetrics "github.com/omerfdk/sunsizer/core/metrics"
	"github.com/omerfdk/sunsizer/infra/logger"
	"github.com/omerfdk/sunsizer/infra/metrics"
	"github.com/omerfdk/sunsizer/internal/eventbus"
)

// Service wires the catalog store, engine, API handlers and metrics sinks.
type Service struct {
	Engine *engine.Engine
	Store  *catalog.Store

	cfg        *config.Config
	log        logger.Logger
	sink       coremetrics.MetricsSink
	events     *eventbus.TypedBus[coremetrics.EstimateEvent]
	rejections *eventbus.TypedBus[coremetrics.RejectionEvent]
}

// New creates a Service from the configuration. The catalog is loaded once
// here; a failed load aborts startup rather than serving an empty catalog.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	snap, err := catalog.Load(cfg.Catalog.Dir)
	if err != nil {
		return nil, fmt.Errorf("load catalogs: %w", err)
	}
	store := catalog.NewStore(snap)

	var sinks []coremetrics.MetricsSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.MetricsSink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	return &Service{
		Engine:     engine.New(store, cfg.Projection, logg),
		Store:      store,
		cfg:        cfg,
		log:        logg,
		sink:       sink,
		events:     eventbus.NewTyped[coremetrics.EstimateEvent](),
		rejections: eventbus.NewTyped[coremetrics.RejectionEvent](),
	}, nil
}

// Run starts the API server and blocks until the context is cancelled.
// SIGHUP reloads the catalogs: a fully-built replacement snapshot is
// published atomically, so in-flight requests keep their consistent view.
func (s *Service) Run(ctx context.Context) error {
	go s.recordEvents(ctx)
	go s.reloadOnHangup(ctx)
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	mux := http.NewServeMux()
	mux.Handle("/api/estimate", estimate.NewHandler(s.Engine, s.events, s.rejections, s.log))
	mux.Handle("/api/init", initdata.NewHandler(s.Store))

	srv := &http.Server{Addr: s.cfg.HTTP.Addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("server shutdown: %v", err)
		}
	}()

	s.log.Infof("listening on %s", s.cfg.HTTP.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Service) recordEvents(ctx context.Context) {
	events := s.events.Subscribe()
	rejections := s.rejections.Subscribe()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if err := s.sink.RecordEstimate(ev); err != nil {
				s.log.Warnf("record estimate: %v", err)
			}
		case ev, ok := <-rejections:
			if !ok {
				return
			}
			if rec, okRec := s.sink.(coremetrics.RejectionRecorder); okRec {
				if err := rec.RecordRejection(ev); err != nil {
					s.log.Warnf("record rejection: %v", err)
				}
			}
		}
	}
}

func (s *Service) reloadOnHangup(ctx context.Context) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			snap, err := catalog.Load(s.cfg.Catalog.Dir)
			if err != nil {
				s.log.Errorf("catalog reload failed, keeping current snapshot: %v", err)
				continue
			}
			s.Store.Swap(snap)
			s.log.Infof("catalogs reloaded from %s", s.cfg.Catalog.Dir)
		}
	}
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.events.Close()
	s.rejections.Close()
	return nil
}
