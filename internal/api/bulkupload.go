package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"
)

// BulkUpload submits normalized CSV text as a multipart POST. The call
// is made once, never retried on 5xx: the server may have created some
// rows before failing, and a blind retry could duplicate jobs. The
// refresh-once path on 401/422 still applies.
func (c *Client) BulkUpload(ctx context.Context, csvText, defaultGithubOwner string) (*BulkUploadResult, error) {
	refreshed := false
	for {
		body, contentType, err := bulkUploadBody(csvText, defaultGithubOwner)
		if err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/jobs/bulk-upload", body)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("X-Request-ID", uuid.NewString())
		if err := c.authorize(req); err != nil {
			return nil, err
		}

		res, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("bulk upload: %w", err)
		}
		raw, readErr := io.ReadAll(res.Body)
		res.Body.Close()
		if readErr != nil {
			return nil, fmt.Errorf("bulk upload: %w", readErr)
		}

		switch {
		case res.StatusCode/100 == 2:
			var result BulkUploadResult
			if err := json.Unmarshal(raw, &result); err != nil {
				return nil, fmt.Errorf("decode bulk upload response: %w", err)
			}
			return &result, nil

		case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusUnprocessableEntity:
			if refreshed || c.session == nil || c.session.RefreshToken() == "" {
				return nil, apiErrorFrom(&httpResult{status: res.StatusCode, body: raw})
			}
			if err := c.refreshSession(ctx); err != nil {
				_ = c.session.Clear()
				return nil, fmt.Errorf("%w: %v", ErrSessionExpired, err)
			}
			refreshed = true

		default:
			return nil, apiErrorFrom(&httpResult{status: res.StatusCode, body: raw})
		}
	}
}

func bulkUploadBody(csvText, defaultGithubOwner string) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", "jobs.csv")
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write([]byte(csvText)); err != nil {
		return nil, "", err
	}
	if defaultGithubOwner != "" {
		if err := w.WriteField("default_github_owner", defaultGithubOwner); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
