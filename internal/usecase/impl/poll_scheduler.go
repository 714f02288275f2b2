package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"esimhub/internal/usecase"
	"esimhub/internal/util"
)

// Ticker abstracts time.Ticker so tests can drive the scheduler manually.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory builds a Ticker for the given interval.
type TickerFactory func(interval time.Duration) Ticker

type realTicker struct {
	ticker *time.Ticker
}

func (t *realTicker) C() <-chan time.Time {
	return t.ticker.C
}

func (t *realTicker) Stop() {
	t.ticker.Stop()
}

// NewRealTicker is the production TickerFactory.
func NewRealTicker(interval time.Duration) Ticker {
	return &realTicker{ticker: time.NewTicker(interval)}
}

// PollScheduler drives the pull flow on a fixed interval. It owns at most
// one timer: Start replaces any running timer and Stop is idempotent, so
// repeated lifecycle calls can never leave two polling loops running.
// Ticks run sequentially in a single goroutine; a slow pass delays the next
// tick instead of overlapping it.
type PollScheduler struct {
	logger    *slog.Logger
	syncUC    usecase.SyncUsecase
	interval  time.Duration
	newTicker TickerFactory

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewPollScheduler creates a scheduler. A nil newTicker selects the real
// time.Ticker implementation.
func NewPollScheduler(
	logger *slog.Logger,
	syncUC usecase.SyncUsecase,
	interval time.Duration,
	newTicker TickerFactory,
) *PollScheduler {
	if newTicker == nil {
		newTicker = NewRealTicker
	}

	return &PollScheduler{
		logger:    logger,
		syncUC:    syncUC,
		interval:  interval,
		newTicker: newTicker,
	}
}

// Start begins periodic polling. If the scheduler is already running, the
// existing timer is stopped first so only one loop ever exists.
func (s *PollScheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()

	pollCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done

	ticker := s.newTicker(s.interval)

	s.logger.Info("poll scheduler started",
		slog.Duration("interval", s.interval),
	)

	go func() {
		defer close(done)
		defer ticker.Stop()

		for {
			select {
			case <-pollCtx.Done():
				return
			case <-ticker.C():
				s.runOnce(pollCtx)
			}
		}
	}()
}

// Stop halts polling and waits for an in-flight pass to finish.
func (s *PollScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()
}

func (s *PollScheduler) stopLocked() {
	if s.cancel == nil {
		return
	}

	s.cancel()
	<-s.done

	s.cancel = nil
	s.done = nil

	s.logger.Info("poll scheduler stopped")
}

// Running reports whether a polling loop is active.
func (s *PollScheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cancel != nil
}

func (s *PollScheduler) runOnce(ctx context.Context) {
	started := time.Now()

	report, err := s.syncUC.SyncAll(ctx)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "scheduled sync pass failed",
			slog.String("error", err.Error()),
		)

		return
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "scheduled sync pass finished",
		slog.Int("total", report.Total),
		slog.Int("synced", report.Synced),
		slog.Int("failed", report.Failed),
		slog.String("elapsed", util.FormatDuration(time.Since(started))),
	)
}
