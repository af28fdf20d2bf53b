// Package jobs holds the client-side read model for cron jobs: the Job
// record as returned by the backend, the default display ordering, and
// a store that mirrors server state with optimistic local mutations.
package jobs

import "time"

// Job is a cron job as consumed from the backend. The backend owns the
// record; this is a read view.
type Job struct {
	ID              string `json:"id" yaml:"id"`
	Name            string `json:"name" yaml:"name"`
	CronExpression  string `json:"cron_expression,omitempty" yaml:"cron_expression,omitempty"`
	EndDate         string `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	PicTeamSlug     string `json:"pic_team_slug,omitempty" yaml:"pic_team_slug,omitempty"`
	TargetURL       string `json:"target_url,omitempty" yaml:"target_url,omitempty"`
	GithubRepo      string `json:"github_repo,omitempty" yaml:"github_repo,omitempty"`
	WorkflowName    string `json:"workflow_name,omitempty" yaml:"workflow_name,omitempty"`
	IsActive        bool   `json:"is_active" yaml:"is_active"`
	NextExecutionAt string `json:"next_execution_at,omitempty" yaml:"next_execution_at,omitempty"`
	CreatedAt       string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt       string `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// NextExecution parses the next-run timestamp. An absent timestamp and a
// syntactically invalid one both report false; the default ordering
// deliberately does not distinguish "malformed data" from "legitimately
// unscheduled". Callers that need that distinction must add their own
// signal.
func (j Job) NextExecution() (time.Time, bool) {
	if j.NextExecutionAt == "" {
		return time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339, j.NextExecutionAt)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}
