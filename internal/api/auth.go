package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type refreshResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// refreshSession exchanges the stored refresh token for a new token
// pair. It deliberately bypasses doJSON so a 401 from the refresh
// endpoint itself can never recurse into another refresh.
func (c *Client) refreshSession(ctx context.Context) error {
	payload, err := json.Marshal(refreshRequest{RefreshToken: c.session.RefreshToken()})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/refresh", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("refresh token: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("refresh token: %w", err)
	}
	if res.StatusCode/100 != 2 {
		return &APIError{StatusCode: res.StatusCode, Message: "token refresh rejected"}
	}

	var rr refreshResponse
	if err := json.Unmarshal(body, &rr); err != nil {
		return fmt.Errorf("decode refresh response: %w", err)
	}
	if rr.Token == "" {
		return fmt.Errorf("refresh response carried no token")
	}
	return c.session.SetTokens(rr.Token, rr.RefreshToken)
}
