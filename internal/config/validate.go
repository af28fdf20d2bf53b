package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// Validate checks the configuration and returns all problems found, so
// a user can fix everything in one pass.
func (c *Config) Validate() []error {
	var errors []error

	if c.API.BaseURL == "" {
		errors = append(errors, fmt.Errorf("api.base_url is required"))
	} else if u, err := url.Parse(c.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errors = append(errors, fmt.Errorf("invalid api.base_url: %s (expected an absolute http(s) URL)", c.API.BaseURL))
	}
	if c.API.TimeoutSeconds < 1 {
		errors = append(errors, fmt.Errorf("api.timeout_seconds must be at least 1, got %d", c.API.TimeoutSeconds))
	}
	if c.API.MaxRetries < 0 {
		errors = append(errors, fmt.Errorf("api.max_retries must not be negative, got %d", c.API.MaxRetries))
	}

	if c.Polling.JobsIntervalSeconds < 5 {
		errors = append(errors, fmt.Errorf("polling.jobs_interval_seconds must be at least 5, got %d", c.Polling.JobsIntervalSeconds))
	}
	if c.Polling.NotificationsIntervalSeconds < 5 {
		errors = append(errors, fmt.Errorf("polling.notifications_interval_seconds must be at least 5, got %d", c.Polling.NotificationsIntervalSeconds))
	}
	if c.Polling.ExecutionsIntervalSeconds < 5 {
		errors = append(errors, fmt.Errorf("polling.executions_interval_seconds must be at least 5, got %d", c.Polling.ExecutionsIntervalSeconds))
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errors = append(errors, fmt.Errorf("invalid logging.level: %s (expected: debug, info, warn, error)", c.Logging.Level))
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errors = append(errors, fmt.Errorf("invalid logging.format: %s (expected: json, text)", c.Logging.Format))
	}
	if c.Logging.Output == "" {
		errors = append(errors, fmt.Errorf("logging.output is required"))
	}

	if c.Metrics.Enabled {
		if _, _, err := net.SplitHostPort(c.Metrics.ListenAddr); err != nil {
			errors = append(errors, fmt.Errorf("invalid metrics.listen_addr: %s", c.Metrics.ListenAddr))
		}
	}

	if c.State.Path == "" {
		errors = append(errors, fmt.Errorf("state.path is required"))
	}

	return errors
}
