// Package poller runs the periodic matching-and-dispatch loop.
package poller

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"flatradar/config"
	"flatradar/internal/delivery"
	"flatradar/internal/usecase"

	"go.uber.org/fx"
)

type pollerServer struct {
	cfg     *config.PollerConfig
	logger  *slog.Logger
	alertUC usecase.AlertUsecase

	stop    chan struct{}
	running atomic.Bool
}

// ServerParams holds dependencies for the poller
type ServerParams struct {
	fx.In

	Lc      fx.Lifecycle
	Cfg     *config.Config
	Logger  *slog.Logger
	AlertUC usecase.AlertUsecase
}

// NewServer creates the polling loop delivery.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &pollerServer{
		cfg:     params.Cfg.Poller,
		logger:  params.Logger,
		alertUC: params.AlertUC,
		stop:    make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			close(srv.stop)

			return nil
		},
	})

	return srv, nil
}

// Serve runs one cycle immediately, then one per interval, until the context
// is cancelled or the application stops.
func (s *pollerServer) Serve(ctx context.Context) error {
	s.logger.Info("Starting poller",
		slog.Duration("interval", s.cfg.Interval),
		slog.Duration("recencyWindow", s.cfg.RecencyWindow),
	)

	go s.runCycle(ctx)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Poller stopped", slog.Any("reason", ctx.Err()))

			return nil
		case <-s.stop:
			s.logger.Info("Poller stopped")

			return nil
		case <-ticker.C:
			go s.runCycle(ctx)
		}
	}
}

// runCycle executes one cycle unless the previous one is still in flight.
// Overlapping cycles would only re-race on the dedup gate, but skipping them
// keeps slow cycles from piling up.
func (s *pollerServer) runCycle(ctx context.Context) {
	if !s.running.CompareAndSwap(false, true) {
		s.logger.Warn("Previous polling cycle still running, skipping tick")

		return
	}
	defer s.running.Store(false)

	if _, err := s.alertUC.RunCycle(ctx); err != nil {
		s.logger.Error("Polling cycle aborted", slog.Any("error", err))
	}
}
