package cronexpr

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// parser accepts standard five-field expressions plus descriptors like
// @daily, matching what the backend's scheduler accepts.
var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// CheckSyntax parses the expression locally. The server stays
// authoritative; this only lets the CLI preview offline and fail fast
// on obviously broken input.
func CheckSyntax(expression string) error {
	if _, err := parser.Parse(expression); err != nil {
		return fmt.Errorf("invalid cron expression: %w", err)
	}
	return nil
}

// NextRuns computes the next count run times after from, in from's
// location.
func NextRuns(expression string, from time.Time, count int) ([]time.Time, error) {
	sched, err := parser.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid cron expression: %w", err)
	}

	out := make([]time.Time, 0, count)
	t := from
	for i := 0; i < count; i++ {
		t = sched.Next(t)
		if t.IsZero() {
			break
		}
		out = append(out, t)
	}
	return out, nil
}

// LocalValidator serves the Validator interface from the local parser,
// used by `cron preview --offline` and as a fallback when no API base
// URL is configured.
type LocalValidator struct {
	// Location defaults to time.Local.
	Location *time.Location

	// Now defaults to time.Now, overridable in tests.
	Now func() time.Time
}

func (v LocalValidator) ValidateCron(_ context.Context, expression string) (ValidationResult, error) {
	if err := CheckSyntax(expression); err != nil {
		return ValidationResult{Valid: false, Message: err.Error()}, nil
	}
	return ValidationResult{Valid: true}, nil
}

func (v LocalValidator) PreviewCron(_ context.Context, expression string, count int) (Preview, error) {
	loc := v.Location
	if loc == nil {
		loc = time.Local
	}
	now := time.Now
	if v.Now != nil {
		now = v.Now
	}

	runs, err := NextRuns(expression, now().In(loc), count)
	if err != nil {
		return Preview{}, err
	}

	p := Preview{Timezone: loc.String(), NextRuns: make([]string, len(runs))}
	for i, r := range runs {
		p.NextRuns[i] = r.Format(time.RFC3339)
	}
	return p, nil
}
