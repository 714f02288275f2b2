package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"esimhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTicker lets tests fire ticks deterministically.
type fakeTicker struct {
	ch chan time.Time

	mu      sync.Mutex
	stopped bool
}

func newFakeTicker() *fakeTicker {
	return &fakeTicker{ch: make(chan time.Time)}
}

func (t *fakeTicker) C() <-chan time.Time {
	return t.ch
}

func (t *fakeTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopped = true
}

func (t *fakeTicker) isStopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.stopped
}

// fakeSyncUsecase records SyncAll invocations and signals each one.
type fakeSyncUsecase struct {
	calls   chan struct{}
	syncErr error
}

func newFakeSyncUsecase() *fakeSyncUsecase {
	return &fakeSyncUsecase{calls: make(chan struct{}, 16)}
}

func (f *fakeSyncUsecase) SyncAll(_ context.Context) (*usecase.SyncReport, error) {
	f.calls <- struct{}{}
	if f.syncErr != nil {
		return nil, f.syncErr
	}

	return &usecase.SyncReport{}, nil
}

func (f *fakeSyncUsecase) SyncUserEsims(_ context.Context, _ uuid.UUID) (*usecase.SyncReport, error) {
	return &usecase.SyncReport{}, nil
}

func (f *fakeSyncUsecase) SyncEsim(_ context.Context, _ string) error {
	return nil
}

func (f *fakeSyncUsecase) waitForCall(t *testing.T) {
	t.Helper()

	select {
	case <-f.calls:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for a sync pass")
	}
}

func createTestScheduler(syncUC usecase.SyncUsecase) (*PollScheduler, func() *fakeTicker) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var mu sync.Mutex
	var current *fakeTicker
	factory := func(time.Duration) Ticker {
		mu.Lock()
		defer mu.Unlock()

		current = newFakeTicker()

		return current
	}
	latest := func() *fakeTicker {
		mu.Lock()
		defer mu.Unlock()

		return current
	}

	return NewPollScheduler(logger, syncUC, time.Minute, factory), latest
}

func TestPollScheduler_TickTriggersSync(t *testing.T) {
	syncUC := newFakeSyncUsecase()
	scheduler, latest := createTestScheduler(syncUC)

	scheduler.Start(context.Background())
	defer scheduler.Stop()

	require.True(t, scheduler.Running())

	latest().ch <- time.Now()
	syncUC.waitForCall(t)

	latest().ch <- time.Now()
	syncUC.waitForCall(t)
}

func TestPollScheduler_StartReplacesRunningLoop(t *testing.T) {
	syncUC := newFakeSyncUsecase()
	scheduler, latest := createTestScheduler(syncUC)

	scheduler.Start(context.Background())
	first := latest()

	scheduler.Start(context.Background())
	defer scheduler.Stop()
	second := latest()

	require.NotSame(t, first, second)
	assert.True(t, first.isStopped())

	// Only the replacement loop consumes ticks.
	second.ch <- time.Now()
	syncUC.waitForCall(t)
	assert.Empty(t, syncUC.calls)
}

func TestPollScheduler_StopIsIdempotent(t *testing.T) {
	syncUC := newFakeSyncUsecase()
	scheduler, latest := createTestScheduler(syncUC)

	scheduler.Start(context.Background())
	require.True(t, scheduler.Running())

	scheduler.Stop()
	assert.False(t, scheduler.Running())
	assert.True(t, latest().isStopped())

	scheduler.Stop()
	assert.False(t, scheduler.Running())
}

func TestPollScheduler_StopBeforeStart(t *testing.T) {
	syncUC := newFakeSyncUsecase()
	scheduler, _ := createTestScheduler(syncUC)

	scheduler.Stop()
	assert.False(t, scheduler.Running())
}

func TestPollScheduler_SyncErrorKeepsLoopAlive(t *testing.T) {
	syncUC := newFakeSyncUsecase()
	syncUC.syncErr = assert.AnError
	scheduler, latest := createTestScheduler(syncUC)

	scheduler.Start(context.Background())
	defer scheduler.Stop()

	latest().ch <- time.Now()
	syncUC.waitForCall(t)

	// A failed pass must not kill the loop.
	latest().ch <- time.Now()
	syncUC.waitForCall(t)
	assert.True(t, scheduler.Running())
}

func TestPollScheduler_ParentContextCancelStopsLoop(t *testing.T) {
	syncUC := newFakeSyncUsecase()
	scheduler, latest := createTestScheduler(syncUC)

	ctx, cancel := context.WithCancel(context.Background())
	scheduler.Start(ctx)

	latest().ch <- time.Now()
	syncUC.waitForCall(t)

	cancel()

	// The loop exits on its own; Stop afterwards must not deadlock.
	scheduler.Stop()
	assert.False(t, scheduler.Running())
}
