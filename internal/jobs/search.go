package jobs

import (
	"context"

	"github.com/16mdiqbal/cronjobctl/internal/latest"
)

// SearchFunc looks a query up against the backend.
type SearchFunc func(ctx context.Context, query string) ([]Job, error)

// Searcher runs quick-action job searches with the same staleness rule
// as the cron coordinator: results are delivered only while their query
// is still the most recent one, so a slow response for an old query can
// never clobber the results of a newer one.
type Searcher struct {
	fetch SearchFunc
	gate  latest.Gate
}

func NewSearcher(fetch SearchFunc) *Searcher {
	return &Searcher{fetch: fetch}
}

// Search runs the lookup and hands the results to apply, unless a newer
// Search started in the meantime. Callers typically invoke it from a
// goroutine per keystroke.
func (s *Searcher) Search(ctx context.Context, query string, apply func(query string, results []Job, err error)) {
	ticket := s.gate.Next()

	results, err := s.fetch(ctx, query)
	if !s.gate.Current(ticket) {
		return
	}
	apply(query, results, err)
}

// Cancel discards any in-flight search, used on teardown.
func (s *Searcher) Cancel() {
	s.gate.Invalidate()
}
