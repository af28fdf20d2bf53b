// Package poll drives the periodic re-fetching behind the job,
// notification and execution views. A poller runs its fetch on a fixed
// interval and on demand via Wake; a tick that lands while the previous
// fetch is still running is skipped, so slow backends never cause
// request pile-up.
package poll

import (
	"context"
	"sync"
	"time"

	"github.com/16mdiqbal/cronjobctl/internal/logger"
)

// Fetch is one refresh of a view. Errors are logged and counted; the
// poller keeps going.
type Fetch func(ctx context.Context) error

// Poller periodically runs a fetch with in-flight suppression.
type Poller struct {
	name     string
	interval time.Duration
	fetch    Fetch
	log      *logger.Logger
	metrics  *Metrics

	wake chan struct{}

	mu       sync.Mutex
	started  bool
	inFlight bool
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
	fetches  sync.WaitGroup
}

// New creates a poller. name labels log lines and metrics.
func New(name string, interval time.Duration, fetch Fetch, log *logger.Logger, metrics *Metrics) *Poller {
	return &Poller{
		name:     name,
		interval: interval,
		fetch:    fetch,
		log:      log,
		metrics:  metrics,
		wake:     make(chan struct{}, 1),
	}
}

// Start begins the poll loop with an immediate first fetch. Starting a
// started poller is a no-op.
func (p *Poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return
	}
	p.ctx, p.cancel = context.WithCancel(context.Background())
	p.done = make(chan struct{})
	p.started = true

	p.log.Info("poller started",
		logger.Field{Key: "name", Value: p.name},
		logger.Field{Key: "interval", Value: p.interval})

	go p.run()
}

// Stop halts the loop and waits for it to exit. An in-flight fetch is
// cancelled through its context.
func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return
	}
	p.started = false
	p.cancel()
	done := p.done
	p.mu.Unlock()

	<-done
	p.fetches.Wait()
	p.log.Info("poller stopped", logger.Field{Key: "name", Value: p.name})
}

// Wake requests an immediate out-of-cycle poll. The
// signal coalesces: waking a poller that already has a pending wake is
// a no-op.
func (p *Poller) Wake() {
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

func (p *Poller) run() {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll()
	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.poll()
		case <-p.wake:
			p.poll()
		}
	}
}

// poll dispatches one fetch unless the previous one is still in flight.
func (p *Poller) poll() {
	p.mu.Lock()
	if p.inFlight {
		p.mu.Unlock()
		if p.metrics != nil {
			p.metrics.skipped.WithLabelValues(p.name).Inc()
		}
		p.log.Debug("poll skipped, previous fetch still running",
			logger.Field{Key: "name", Value: p.name})
		return
	}
	p.inFlight = true
	ctx := p.ctx
	p.mu.Unlock()

	p.fetches.Add(1)
	go func() {
		defer p.fetches.Done()

		start := time.Now()
		err := p.fetch(ctx)

		p.mu.Lock()
		p.inFlight = false
		p.mu.Unlock()

		if p.metrics != nil {
			p.metrics.cycles.WithLabelValues(p.name).Inc()
			p.metrics.duration.WithLabelValues(p.name).Observe(time.Since(start).Seconds())
			if err != nil {
				p.metrics.errors.WithLabelValues(p.name).Inc()
			}
		}
		if err != nil && ctx.Err() == nil {
			p.log.Error("poll failed", err, logger.Field{Key: "name", Value: p.name})
		}
	}()
}
