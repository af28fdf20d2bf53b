package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/16mdiqbal/cronjobctl/internal/logger"
	"github.com/16mdiqbal/cronjobctl/internal/state"
)

// httpResult is one completed HTTP exchange.
type httpResult struct {
	status     int
	body       []byte
	requestID  string
	retryAfter time.Duration
}

// doJSON sends a JSON request and decodes a JSON response.
//
// 401/422 triggers a single silent token refresh followed by a retry of
// the original request; a failed refresh clears the session and returns
// ErrSessionExpired. 429 and 5xx retry with jittered backoff honoring
// Retry-After. Anything else non-2xx becomes an *APIError.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var payload []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		payload = b
	}

	refreshed := false
	backoff := c.initialBackoff
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		res, err := c.send(ctx, method, path, query, payload)
		if err != nil {
			lastErr = fmt.Errorf("%s %s: %w", method, path, err)
			if attempt >= c.maxRetries {
				return lastErr
			}
			if serr := sleepWithJitter(ctx, backoff); serr != nil {
				return serr
			}
			backoff = nextBackoff(backoff, c.maxBackoff)
			continue
		}

		switch {
		case res.status/100 == 2:
			if out == nil || len(res.body) == 0 {
				return nil
			}
			if err := json.Unmarshal(res.body, out); err != nil {
				return fmt.Errorf("decode response: %w", err)
			}
			return nil

		case res.status == http.StatusUnauthorized || res.status == http.StatusUnprocessableEntity:
			if refreshed || c.session == nil || c.session.RefreshToken() == "" {
				return apiErrorFrom(res)
			}
			if err := c.refreshSession(ctx); err != nil {
				_ = c.session.Clear()
				return fmt.Errorf("%w: %v", ErrSessionExpired, err)
			}
			refreshed = true
			// retry the original request immediately with the new token;
			// the refresh round does not consume a retry attempt
			attempt--

		case retryable(res.status):
			lastErr = apiErrorFrom(res)
			if attempt >= c.maxRetries {
				return lastErr
			}
			delay := backoff
			if res.retryAfter > delay {
				delay = res.retryAfter
			}
			if serr := sleepWithJitter(ctx, delay); serr != nil {
				return serr
			}
			backoff = nextBackoff(backoff, c.maxBackoff)

		default:
			return apiErrorFrom(res)
		}
	}
	return lastErr
}

// send performs one HTTP exchange.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, payload []byte) (*httpResult, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if err := c.authorize(req); err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(method, path, 0, time.Since(start))
		return nil, err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	c.observe(method, path, res.StatusCode, time.Since(start))
	if c.log != nil {
		c.log.Debug("api request",
			logger.Field{Key: "method", Value: method},
			logger.Field{Key: "path", Value: path},
			logger.Field{Key: "status", Value: res.StatusCode},
			logger.Field{Key: "request_id", Value: requestID},
		)
	}
	if err != nil {
		return nil, err
	}

	return &httpResult{
		status:     res.StatusCode,
		body:       raw,
		requestID:  requestID,
		retryAfter: parseRetryAfter(res.Header.Get("Retry-After")),
	}, nil
}

func (c *Client) authorize(req *http.Request) error {
	if c.session == nil {
		return nil
	}
	token, err := c.session.AccessToken()
	if err != nil {
		if errors.Is(err, state.ErrNoToken) {
			return nil
		}
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return nil
}

func (c *Client) observe(method, path string, status int, elapsed time.Duration) {
	if c.metrics == nil {
		return
	}
	c.metrics.observe(method, path, strconv.Itoa(status), elapsed)
}

// errorBody is the backend's error envelope.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func apiErrorFrom(res *httpResult) *APIError {
	var eb errorBody
	_ = json.Unmarshal(res.body, &eb)
	msg := eb.Message
	if msg == "" {
		msg = eb.Error
	}
	return &APIError{StatusCode: res.status, Message: msg, RequestID: res.requestID}
}
