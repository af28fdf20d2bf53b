package cronexpr

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeValidator scripts validate/preview responses per expression and
// can hold a response until released, to simulate slow networks.
type fakeValidator struct {
	mu           sync.Mutex
	results      map[string]ValidationResult
	transportErr map[string]error
	hold         map[string]chan struct{}
	validated    []string
	previewed    []string
}

func newFakeValidator() *fakeValidator {
	return &fakeValidator{
		results:      make(map[string]ValidationResult),
		transportErr: make(map[string]error),
		hold:         make(map[string]chan struct{}),
	}
}

func (f *fakeValidator) ValidateCron(ctx context.Context, expr string) (ValidationResult, error) {
	f.mu.Lock()
	gate := f.hold[expr]
	f.validated = append(f.validated, expr)
	res, ok := f.results[expr]
	terr := f.transportErr[expr]
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return ValidationResult{}, ctx.Err()
		}
	}
	if terr != nil {
		return ValidationResult{}, terr
	}
	if !ok {
		res = ValidationResult{Valid: true}
	}
	return res, nil
}

func (f *fakeValidator) PreviewCron(ctx context.Context, expr string, count int) (Preview, error) {
	f.mu.Lock()
	f.previewed = append(f.previewed, expr)
	f.mu.Unlock()

	runs := make([]string, count)
	for i := range runs {
		runs[i] = "2026-09-01T00:0" + string(rune('0'+i)) + ":00Z"
	}
	return Preview{Timezone: "Asia/Tokyo", NextRuns: runs}, nil
}

func (f *fakeValidator) previewCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.previewed...)
}

func waitForState(t *testing.T, c *Coordinator, want State) Snapshot {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		snap := c.Snapshot()
		if snap.State == want {
			return snap
		}
		select {
		case <-deadline:
			require.Failf(t, "timeout", "state %v never reached, stuck at %v", want, snap.State)
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestCoordinatorIdleOnEmptyExpression(t *testing.T) {
	c := New(newFakeValidator(), WithDebounce(time.Millisecond))
	defer c.Close()

	assert.Equal(t, StateIdle, c.Snapshot().State)

	c.SetExpression("* * * * *")
	c.SetExpression("")
	assert.Equal(t, StateIdle, c.Snapshot().State)
}

func TestCoordinatorValidExpression(t *testing.T) {
	fake := newFakeValidator()
	c := New(fake, WithDebounce(time.Millisecond))
	defer c.Close()

	c.SetExpression("0 9 * * *")
	snap := waitForState(t, c, StateValid)
	assert.Equal(t, "0 9 * * *", snap.Expression)

	// the single next-run fetch lands shortly after validation
	require.Eventually(t, func() bool {
		return c.Snapshot().NextRun != ""
	}, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, "Asia/Tokyo", c.Snapshot().Timezone)
}

func TestCoordinatorInvalidUsesServerReason(t *testing.T) {
	fake := newFakeValidator()
	fake.results["bad"] = ValidationResult{Valid: false, Message: "too many fields"}
	c := New(fake, WithDebounce(time.Millisecond))
	defer c.Close()

	c.SetExpression("bad")
	snap := waitForState(t, c, StateInvalid)
	assert.Equal(t, "too many fields", snap.Message)
	assert.Empty(t, fake.previewCalls(), "no preview call for an invalid expression")
}

func TestCoordinatorInvalidFallbackMessage(t *testing.T) {
	fake := newFakeValidator()
	fake.results["bad"] = ValidationResult{Valid: false}
	c := New(fake, WithDebounce(time.Millisecond))
	defer c.Close()

	c.SetExpression("bad")
	snap := waitForState(t, c, StateInvalid)
	assert.Equal(t, fallbackInvalidMessage, snap.Message)
}

func TestCoordinatorTransportFailureIsDistinct(t *testing.T) {
	fake := newFakeValidator()
	fake.transportErr["x"] = errors.New("connection refused")
	c := New(fake, WithDebounce(time.Millisecond))
	defer c.Close()

	c.SetExpression("x")
	snap := waitForState(t, c, StateFailed)
	assert.Error(t, snap.Err)
	assert.NotEqual(t, StateInvalid, snap.State)
}

// The staleness property from the round-trip contract: a response for
// expr1 arriving after expr2 superseded it must never be applied.
func TestCoordinatorStaleResponseDiscarded(t *testing.T) {
	fake := newFakeValidator()
	release := make(chan struct{})
	fake.hold["expr1"] = release
	fake.results["expr1"] = ValidationResult{Valid: false, Message: "stale verdict"}
	fake.results["expr2"] = ValidationResult{Valid: true}

	c := New(fake, WithDebounce(time.Millisecond))
	defer c.Close()

	c.SetExpression("expr1")
	require.Eventually(t, func() bool {
		fake.mu.Lock()
		defer fake.mu.Unlock()
		return len(fake.validated) == 1
	}, 2*time.Second, time.Millisecond, "expr1 validation should be in flight")

	c.SetExpression("expr2")
	waitForState(t, c, StateValid)

	// now let expr1's slow response arrive
	close(release)
	time.Sleep(50 * time.Millisecond)

	snap := c.Snapshot()
	assert.Equal(t, StateValid, snap.State)
	assert.Equal(t, "expr2", snap.Expression)
	assert.NotEqual(t, "stale verdict", snap.Message)
}

func TestCoordinatorDebounceCollapsesKeystrokes(t *testing.T) {
	fake := newFakeValidator()
	c := New(fake, WithDebounce(40*time.Millisecond))
	defer c.Close()

	// rapid keystrokes inside the settling window
	c.SetExpression("0")
	c.SetExpression("0 9")
	c.SetExpression("0 9 * * *")

	waitForState(t, c, StateValid)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.Equal(t, []string{"0 9 * * *"}, fake.validated, "only the trailing input validates")
}

func TestCoordinatorPreviewOnlyWhenToggled(t *testing.T) {
	fake := newFakeValidator()
	c := New(fake, WithDebounce(time.Millisecond))
	defer c.Close()

	c.SetExpression("0 9 * * *")
	waitForState(t, c, StateValid)
	require.Eventually(t, func() bool {
		return c.Snapshot().NextRun != ""
	}, 2*time.Second, 5*time.Millisecond)

	// only the count=1 next-run fetch so far
	assert.Len(t, fake.previewCalls(), 1)

	c.SetShowPreview(true)
	require.Eventually(t, func() bool {
		return len(c.Snapshot().Preview) == previewCount
	}, 2*time.Second, 5*time.Millisecond)
}

func TestCoordinatorCloseStopsPendingDebounce(t *testing.T) {
	fake := newFakeValidator()
	c := New(fake, WithDebounce(20*time.Millisecond))

	c.SetExpression("0 9 * * *")
	c.Close()
	time.Sleep(60 * time.Millisecond)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.Empty(t, fake.validated, "no validation fires after teardown")
}
