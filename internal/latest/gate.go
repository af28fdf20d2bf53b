// Package latest implements the "latest request wins" rule shared by
// every asynchronous call site: cron validation, preview fetches, and
// quick-action job search. Each operation takes a ticket before it
// starts; a result is committed only while its ticket is still the most
// recent one, so a slow stale response can never overwrite state
// produced for newer input.
package latest

import "sync"

// Gate hands out monotonically increasing tickets. Taking a new ticket
// invalidates every outstanding one.
type Gate struct {
	mu  sync.Mutex
	gen uint64
}

// Next invalidates all outstanding tickets and returns a fresh one.
func (g *Gate) Next() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gen++
	return g.gen
}

// Current reports whether the ticket is still the most recent one.
// Results guarded by a stale ticket must be discarded, not applied.
func (g *Gate) Current(ticket uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gen == ticket
}

// Invalidate cancels all outstanding tickets without issuing a new one,
// used on teardown.
func (g *Gate) Invalidate() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gen++
}
