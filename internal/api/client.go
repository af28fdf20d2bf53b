// Package api implements the typed client for the Cron Job Manager REST
// backend. It wraps HTTP transport, bearer authentication with a single
// silent refresh-and-retry on 401/422, jittered backoff on 429/5xx, and
// response decoding into the domain types.
package api

import (
	"net"
	"net/http"
	"time"

	"github.com/16mdiqbal/cronjobctl/internal/logger"
	"github.com/16mdiqbal/cronjobctl/internal/state"
	"github.com/16mdiqbal/cronjobctl/internal/version"
)

// Client is the shared configuration and HTTP plumbing for all
// endpoint calls.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string

	// session supplies the bearer token and absorbs refreshed token
	// pairs. A nil session sends unauthenticated requests.
	session *state.Session

	log     *logger.Logger
	metrics *Metrics

	maxRetries     int
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the tuned default transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout overrides the overall per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithSession injects the auth session container.
func WithSession(s *state.Session) Option {
	return func(c *Client) { c.session = s }
}

// WithLogger enables request/response debug logging.
func WithLogger(log *logger.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithMetrics records request counts and latencies.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithRetry overrides the backoff configuration.
func WithRetry(maxRetries int, initial, max time.Duration) Option {
	return func(c *Client) {
		c.maxRetries = maxRetries
		c.initialBackoff = initial
		c.maxBackoff = max
	}
}

// New constructs a client for the given API origin with safe defaults.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 10 * time.Second,
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent:      "cronjobctl/" + clientVersion(),
		maxRetries:     defaultMaxRetries,
		initialBackoff: defaultInitialBackoff,
		maxBackoff:     defaultMaxBackoff,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func clientVersion() string {
	return version.Version
}
