package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/16mdiqbal/cronjobctl/internal/jobs"
)

// ListJobs fetches all jobs.
func (c *Client) ListJobs(ctx context.Context) ([]jobs.Job, error) {
	var res jobsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/jobs", nil, nil, &res); err != nil {
		return nil, err
	}
	return res.Jobs, nil
}

// GetJob fetches a single job by id.
func (c *Client) GetJob(ctx context.Context, id string) (jobs.Job, error) {
	var res jobResponse
	if err := c.doJSON(ctx, http.MethodGet, "/jobs/"+url.PathEscape(id), nil, nil, &res); err != nil {
		return jobs.Job{}, err
	}
	return res.Job, nil
}

// CreateJob creates a job and returns the server's record.
func (c *Client) CreateJob(ctx context.Context, in JobInput) (jobs.Job, error) {
	var res jobResponse
	if err := c.doJSON(ctx, http.MethodPost, "/jobs", nil, in, &res); err != nil {
		return jobs.Job{}, err
	}
	return res.Job, nil
}

// UpdateJob replaces a job's fields and returns the updated record.
func (c *Client) UpdateJob(ctx context.Context, id string, in JobInput) (jobs.Job, error) {
	var res jobResponse
	if err := c.doJSON(ctx, http.MethodPut, "/jobs/"+url.PathEscape(id), nil, in, &res); err != nil {
		return jobs.Job{}, err
	}
	return res.Job, nil
}

// DeleteJob removes a job.
func (c *Client) DeleteJob(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/jobs/"+url.PathEscape(id), nil, nil, nil)
}

// ToggleJob flips a job's active flag and returns the updated record.
func (c *Client) ToggleJob(ctx context.Context, id string) (jobs.Job, error) {
	var res jobResponse
	if err := c.doJSON(ctx, http.MethodPost, "/jobs/"+url.PathEscape(id)+"/toggle", nil, nil, &res); err != nil {
		return jobs.Job{}, err
	}
	return res.Job, nil
}

// SearchJobs runs the quick-action job search.
func (c *Client) SearchJobs(ctx context.Context, query string) ([]jobs.Job, error) {
	q := url.Values{"q": {query}}
	var res jobsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/jobs/search", q, nil, &res); err != nil {
		return nil, err
	}
	return res.Jobs, nil
}
