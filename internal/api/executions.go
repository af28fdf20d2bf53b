package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListExecutions fetches recent execution history, optionally scoped to
// one job.
func (c *Client) ListExecutions(ctx context.Context, jobID string, limit int) ([]Execution, error) {
	q := url.Values{}
	if jobID != "" {
		q.Set("job_id", jobID)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var res executionsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/executions", q, nil, &res); err != nil {
		return nil, err
	}
	return res.Executions, nil
}
