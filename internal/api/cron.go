package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/16mdiqbal/cronjobctl/internal/cronexpr"
)

// ValidateCron asks the backend whether the expression is acceptable.
// Together with PreviewCron this satisfies cronexpr.Validator.
func (c *Client) ValidateCron(ctx context.Context, expression string) (cronexpr.ValidationResult, error) {
	var res cronValidateResponse
	err := c.doJSON(ctx, http.MethodPost, "/jobs/validate-cron", nil, cronValidateRequest{Expression: expression}, &res)
	if err != nil {
		return cronexpr.ValidationResult{}, err
	}
	return cronexpr.ValidationResult{Valid: res.Valid, Message: res.Message}, nil
}

// PreviewCron fetches the next count run times for a valid expression.
func (c *Client) PreviewCron(ctx context.Context, expression string, count int) (cronexpr.Preview, error) {
	q := url.Values{
		"expression": {expression},
		"count":      {strconv.Itoa(count)},
	}
	var res cronPreviewResponse
	if err := c.doJSON(ctx, http.MethodGet, "/jobs/cron-preview", q, nil, &res); err != nil {
		return cronexpr.Preview{}, err
	}
	return cronexpr.Preview{Timezone: res.Timezone, NextRuns: res.NextRuns}, nil
}
