// Package cronexpr coordinates the validate/preview round trip for a
// cron expression input. Input settles through a debounce window before
// any network call fires, and responses are committed only while the
// expression that triggered them is still current: the latest input wins
// by cancellation, not by arrival order.
package cronexpr

import (
	"context"
	"sync"
	"time"

	"github.com/16mdiqbal/cronjobctl/internal/latest"
)

// DefaultDebounce is the input-settling window before validation fires.
const DefaultDebounce = 350 * time.Millisecond

// previewCount is how many occurrences the long preview fetches.
const previewCount = 5

// fallbackInvalidMessage is shown when the server rejects an expression
// without a reason.
const fallbackInvalidMessage = "Invalid cron expression"

// State is the coordinator's position in the validate/preview round trip.
type State int

const (
	// StateIdle means no expression is present.
	StateIdle State = iota
	// StateDebouncing means an expression is present and the settling
	// window is still open.
	StateDebouncing
	// StateValidating means the validate call is in flight.
	StateValidating
	// StateValid means the server accepted the expression.
	StateValid
	// StateInvalid means the server rejected the expression.
	StateInvalid
	// StateFailed means transport failed; distinct from StateInvalid so
	// an unreachable server is never mistaken for a bad cron string.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDebouncing:
		return "debouncing"
	case StateValidating:
		return "validating"
	case StateValid:
		return "valid"
	case StateInvalid:
		return "invalid"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ValidationResult is the server's verdict on an expression.
type ValidationResult struct {
	Valid   bool
	Message string
}

// Preview is a batch of upcoming run times for a valid expression.
type Preview struct {
	Timezone string
	NextRuns []string
}

// Validator is the remote validate/preview endpoint pair.
type Validator interface {
	ValidateCron(ctx context.Context, expression string) (ValidationResult, error)
	PreviewCron(ctx context.Context, expression string, count int) (Preview, error)
}

// Snapshot is an immutable view of coordinator state for rendering.
type Snapshot struct {
	State      State
	Expression string
	Message    string
	NextRun    string
	Timezone   string
	Preview    []string
	Err        error
}

// Coordinator drives the state machine for one cron-expression input.
type Coordinator struct {
	validator Validator
	debounce  time.Duration

	mu          sync.Mutex
	snap        Snapshot
	showPreview bool
	timer       *time.Timer
	gate        latest.Gate
	onUpdate    func(Snapshot)

	ctx    context.Context
	cancel context.CancelFunc
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithDebounce overrides the settling window, mainly for tests.
func WithDebounce(d time.Duration) Option {
	return func(c *Coordinator) { c.debounce = d }
}

// WithOnUpdate registers a callback invoked after every committed state
// change. The callback runs with the coordinator unlocked.
func WithOnUpdate(fn func(Snapshot)) Option {
	return func(c *Coordinator) { c.onUpdate = fn }
}

// New creates a coordinator in StateIdle.
func New(v Validator, opts ...Option) *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Coordinator{
		validator: v,
		debounce:  DefaultDebounce,
		ctx:       ctx,
		cancel:    cancel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetExpression registers a keystroke. An empty expression returns to
// idle; anything else restarts the debounce window so only the trailing
// input after inactivity fires network calls.
func (c *Coordinator) SetExpression(expr string) {
	c.mu.Lock()
	c.stopTimerLocked()
	ticket := c.gate.Next()

	if expr == "" {
		c.snap = Snapshot{State: StateIdle}
		c.notifyLocked()
		c.mu.Unlock()
		return
	}

	c.snap = Snapshot{State: StateDebouncing, Expression: expr}
	c.timer = time.AfterFunc(c.debounce, func() {
		c.fire(expr, ticket)
	})
	c.notifyLocked()
	c.mu.Unlock()
}

// SetShowPreview toggles the 5-occurrence preview. Turning it on while
// the current expression is already valid fetches the preview
// immediately.
func (c *Coordinator) SetShowPreview(show bool) {
	c.mu.Lock()
	if c.showPreview == show {
		c.mu.Unlock()
		return
	}
	c.showPreview = show

	needsFetch := show && c.snap.State == StateValid && len(c.snap.Preview) == 0
	expr := c.snap.Expression
	c.mu.Unlock()

	if needsFetch {
		// A fresh ticket is safe here: StateValid means no validation is
		// in flight for this expression anymore.
		ticket := c.gate.Next()
		go c.fetchPreview(expr, ticket)
	}
}

// Snapshot returns the current state for rendering.
func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

// Close clears the pending debounce timer, cancels in-flight calls, and
// invalidates their tickets so late responses are discarded. The
// coordinator must not be used afterwards.
func (c *Coordinator) Close() {
	c.mu.Lock()
	c.stopTimerLocked()
	c.gate.Invalidate()
	c.mu.Unlock()

	c.cancel()
}

// fire runs after the debounce window closes. It validates the
// expression and, on success, fetches the next run plus (when toggled)
// the longer preview. Every commit point rechecks the ticket so a
// response for superseded input is discarded instead of applied.
func (c *Coordinator) fire(expr string, ticket uint64) {
	c.mu.Lock()
	if !c.gate.Current(ticket) {
		c.mu.Unlock()
		return
	}
	c.snap = Snapshot{State: StateValidating, Expression: expr}
	c.notifyLocked()
	c.mu.Unlock()

	result, err := c.validator.ValidateCron(c.ctx, expr)

	c.mu.Lock()
	if !c.gate.Current(ticket) {
		c.mu.Unlock()
		return
	}
	if err != nil {
		c.snap = Snapshot{State: StateFailed, Expression: expr, Err: err}
		c.notifyLocked()
		c.mu.Unlock()
		return
	}
	if !result.Valid {
		msg := result.Message
		if msg == "" {
			msg = fallbackInvalidMessage
		}
		c.snap = Snapshot{State: StateInvalid, Expression: expr, Message: msg}
		c.notifyLocked()
		c.mu.Unlock()
		return
	}
	c.snap = Snapshot{State: StateValid, Expression: expr, Message: result.Message}
	c.notifyLocked()
	wantPreview := c.showPreview
	c.mu.Unlock()

	// A valid expression always gets its single next-run timestamp.
	next, err := c.validator.PreviewCron(c.ctx, expr, 1)

	c.mu.Lock()
	if !c.gate.Current(ticket) {
		c.mu.Unlock()
		return
	}
	if err == nil && len(next.NextRuns) > 0 {
		c.snap.NextRun = next.NextRuns[0]
		c.snap.Timezone = next.Timezone
		c.notifyLocked()
	}
	c.mu.Unlock()

	if wantPreview {
		c.fetchPreview(expr, ticket)
	}
}

func (c *Coordinator) fetchPreview(expr string, ticket uint64) {
	preview, err := c.validator.PreviewCron(c.ctx, expr, previewCount)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.gate.Current(ticket) || c.snap.State != StateValid {
		return
	}
	if err != nil {
		// The expression is still valid; only the preview is missing.
		return
	}
	c.snap.Preview = preview.NextRuns
	c.snap.Timezone = preview.Timezone
	c.notifyLocked()
}

func (c *Coordinator) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Coordinator) notifyLocked() {
	if c.onUpdate == nil {
		return
	}
	snap := c.snap
	go c.onUpdate(snap)
}
