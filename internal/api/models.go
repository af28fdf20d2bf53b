package api

import (
	"github.com/16mdiqbal/cronjobctl/internal/bulkupload"
	"github.com/16mdiqbal/cronjobctl/internal/jobs"
)

// JobInput is the request body for creating or updating a job.
type JobInput struct {
	Name           string `json:"name"`
	CronExpression string `json:"cron_expression"`
	EndDate        string `json:"end_date"`
	PicTeamSlug    string `json:"pic_team_slug"`
	TargetURL      string `json:"target_url,omitempty"`
	GithubRepo     string `json:"github_repo,omitempty"`
	WorkflowName   string `json:"workflow_name,omitempty"`
	IsActive       *bool  `json:"is_active,omitempty"`
}

// BulkUploadResult is the response of POST /jobs/bulk-upload. Partial
// success is normal: some rows create jobs while others land in Errors.
type BulkUploadResult struct {
	CreatedCount int                `json:"created_count"`
	ErrorCount   int                `json:"error_count"`
	Errors       []bulkupload.Error `json:"errors"`
	Jobs         []jobs.Job         `json:"jobs"`
}

// Execution is one historical run of a job.
type Execution struct {
	ID         string `json:"id" yaml:"id"`
	JobID      string `json:"job_id" yaml:"job_id"`
	Status     string `json:"status" yaml:"status"`
	StartedAt  string `json:"started_at" yaml:"started_at"`
	FinishedAt string `json:"finished_at,omitempty" yaml:"finished_at,omitempty"`
	Message    string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Notification is an inbox entry.
type Notification struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Message   string `json:"message,omitempty" yaml:"message,omitempty"`
	IsRead    bool   `json:"is_read" yaml:"is_read"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
}

type jobsResponse struct {
	Jobs []jobs.Job `json:"jobs"`
}

type jobResponse struct {
	Job jobs.Job `json:"job"`
}

type picTeamsResponse struct {
	PicTeams []bulkupload.PicTeam `json:"pic_teams"`
}

type executionsResponse struct {
	Executions []Execution `json:"executions"`
}

type notificationsResponse struct {
	Notifications []Notification `json:"notifications"`
}

type cronValidateRequest struct {
	Expression string `json:"expression"`
}

type cronValidateResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

type cronPreviewResponse struct {
	Timezone string   `json:"timezone"`
	NextRuns []string `json:"next_runs"`
}
