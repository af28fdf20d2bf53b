package state

import "errors"

const (
	keyAccessToken  = "auth.access_token"
	keyRefreshToken = "auth.refresh_token"
)

// ErrNoToken is returned when no access token has been stored yet.
var ErrNoToken = errors.New("state: no access token")

// Session holds the auth tokens behind the KV port. Constructed once
// and injected into the API client.
type Session struct {
	kv KV
}

func NewSession(kv KV) *Session {
	return &Session{kv: kv}
}

// AccessToken returns the current bearer token.
func (s *Session) AccessToken() (string, error) {
	v, err := s.kv.Get(keyAccessToken)
	if errors.Is(err, ErrNotFound) {
		return "", ErrNoToken
	}
	return v, err
}

// RefreshToken returns the stored refresh token, or "" when absent.
func (s *Session) RefreshToken() string {
	v, err := s.kv.Get(keyRefreshToken)
	if err != nil {
		return ""
	}
	return v
}

// SetTokens stores a new token pair after login or refresh. An empty
// refresh token leaves the stored one untouched.
func (s *Session) SetTokens(access, refresh string) error {
	if err := s.kv.Set(keyAccessToken, access); err != nil {
		return err
	}
	if refresh == "" {
		return nil
	}
	return s.kv.Set(keyRefreshToken, refresh)
}

// Clear drops both tokens, the forced-logout path.
func (s *Session) Clear() error {
	if err := s.kv.Delete(keyAccessToken); err != nil {
		return err
	}
	return s.kv.Delete(keyRefreshToken)
}
