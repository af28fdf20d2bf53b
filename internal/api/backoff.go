package api

import (
	"context"
	"math/rand"
	"strconv"
	"time"
)

const (
	defaultMaxRetries     = 3
	defaultInitialBackoff = 300 * time.Millisecond
	defaultMaxBackoff     = 3 * time.Second
)

// nextBackoff doubles the delay up to the cap.
func nextBackoff(current, max time.Duration) time.Duration {
	next := current * 2
	if next > max {
		return max
	}
	return next
}

// sleepWithJitter waits for the delay plus up to 25% jitter, or until
// the context is done.
func sleepWithJitter(ctx context.Context, delay time.Duration) error {
	jitter := time.Duration(rand.Int63n(int64(delay)/4 + 1))
	select {
	case <-time.After(delay + jitter):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// parseRetryAfter reads a Retry-After header value in seconds. Zero
// means absent or unparseable.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	secs, err := strconv.Atoi(value)
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
