package poll

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/16mdiqbal/cronjobctl/internal/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(logger.Config{Level: "error", Format: "text", Output: "stderr"})
	require.NoError(t, err)
	return log
}

func TestPollerImmediateFirstFetch(t *testing.T) {
	var calls atomic.Int32
	p := New("jobs", time.Hour, func(ctx context.Context) error {
		calls.Add(1)
		return nil
	}, testLogger(t), nil)

	p.Start()
	defer p.Stop()

	require.Eventually(t, func() bool {
		return calls.Load() == 1
	}, 2*time.Second, 5*time.Millisecond)
}

func TestPollerTicks(t *testing.T) {
	var calls atomic.Int32
	p := New("jobs", 20*time.Millisecond, func(ctx context.Context) error {
		calls.Add(1)
		return nil
	}, testLogger(t), nil)

	p.Start()
	defer p.Stop()

	require.Eventually(t, func() bool {
		return calls.Load() >= 3
	}, 2*time.Second, 5*time.Millisecond)
}

func TestPollerSkipsWhileInFlight(t *testing.T) {
	release := make(chan struct{})
	var calls atomic.Int32
	p := New("jobs", 10*time.Millisecond, func(ctx context.Context) error {
		calls.Add(1)
		select {
		case <-release:
		case <-ctx.Done():
		}
		return nil
	}, testLogger(t), nil)

	p.Start()

	// several intervals elapse while the first fetch is stuck
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load(), "overlapping polls suppressed")

	close(release)
	p.Stop()
}

func TestPollerWakeTriggersImmediatePoll(t *testing.T) {
	var calls atomic.Int32
	p := New("notifications", time.Hour, func(ctx context.Context) error {
		calls.Add(1)
		return nil
	}, testLogger(t), nil)

	p.Start()
	defer p.Stop()

	require.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 5*time.Millisecond)

	p.Wake()
	require.Eventually(t, func() bool { return calls.Load() == 2 }, 2*time.Second, 5*time.Millisecond)
}

func TestPollerStopIsIdempotent(t *testing.T) {
	p := New("jobs", time.Hour, func(ctx context.Context) error { return nil }, testLogger(t), nil)

	p.Start()
	p.Start() // no-op
	p.Stop()
	p.Stop() // no-op
}
