package poller

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"flatradar/config"
	"flatradar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAlertUsecase struct {
	cycles atomic.Int32
	block  chan struct{}
}

func (s *stubAlertUsecase) RunCycle(ctx context.Context) (usecase.CycleStats, error) {
	s.cycles.Add(1)
	if s.block != nil {
		select {
		case <-s.block:
		case <-ctx.Done():
		}
	}

	return usecase.CycleStats{}, nil
}

func newTestPoller(t *testing.T, uc usecase.AlertUsecase, interval time.Duration) *pollerServer {
	t.Helper()

	return &pollerServer{
		cfg: &config.PollerConfig{
			Interval:      interval,
			RecencyWindow: 48 * time.Hour,
		},
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		alertUC: uc,
		stop:    make(chan struct{}),
	}
}

func TestPoller_RunsFirstCycleImmediately(t *testing.T) {
	uc := &stubAlertUsecase{}
	srv := newTestPoller(t, uc, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ctx)
	}()

	assert.Eventually(t, func() bool {
		return uc.cycles.Load() == 1
	}, time.Second, 5*time.Millisecond, "first cycle must not wait for the interval")

	cancel()
	require.NoError(t, <-done)
}

func TestPoller_TicksUntilStopped(t *testing.T) {
	uc := &stubAlertUsecase{}
	srv := newTestPoller(t, uc, 10*time.Millisecond)

	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(context.Background())
	}()

	assert.Eventually(t, func() bool {
		return uc.cycles.Load() >= 3
	}, time.Second, 5*time.Millisecond)

	close(srv.stop)
	require.NoError(t, <-done)
}

func TestPoller_SkipsTickWhileCycleInFlight(t *testing.T) {
	uc := &stubAlertUsecase{block: make(chan struct{})}
	srv := newTestPoller(t, uc, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ctx)
	}()

	assert.Eventually(t, func() bool {
		return uc.cycles.Load() == 1
	}, time.Second, 5*time.Millisecond)

	// The first cycle is stuck; several ticks pass without starting another.
	time.Sleep(50 * time.Millisecond)
	assert.EqualValues(t, 1, uc.cycles.Load())

	close(uc.block)
	cancel()
	require.NoError(t, <-done)
}
