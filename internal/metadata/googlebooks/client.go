// Package googlebooks searches the Google Books volumes API for
// bibliographic candidates.
package googlebooks

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/nextreadapp/nextread-server/internal/errors"
	"github.com/nextreadapp/nextread-server/internal/ratelimit"
)

const (
	// Unauthenticated quota is tight; 250ms spacing between sequential
	// search queries keeps a multi-query run under it.
	defaultRPS   = 4.0
	defaultBurst = 2

	defaultTimeout = 15 * time.Second

	limiterKey = "googlebooks"
)

// Client is a rate-limited Google Books API client. An API key is optional;
// unauthenticated requests work with a lower quota.
type Client struct {
	http    *http.Client
	limiter *ratelimit.KeyedRateLimiter
	logger  *slog.Logger
	baseURL string
	apiKey  string
}

// New creates a Google Books client.
func New(baseURL, apiKey string, logger *slog.Logger) *Client {
	return &Client{
		http:    &http.Client{Timeout: defaultTimeout},
		limiter: ratelimit.New(defaultRPS, defaultBurst),
		logger:  logger,
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// WithRate overrides the default query pacing. Invalid values keep the
// defaults.
func (c *Client) WithRate(rps float64, burst int) *Client {
	if rps > 0 && burst > 0 {
		c.limiter = ratelimit.New(rps, burst)
	}
	return c
}

// WithTimeout overrides the per-request HTTP timeout.
func (c *Client) WithTimeout(d time.Duration) *Client {
	if d > 0 {
		c.http.Timeout = d
	}
	return c
}

func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx, limiterKey); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	if c.apiKey != "" {
		query.Set("key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("google books request", "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Upstream("google books unreachable").WithCause(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return body, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, errors.Config("google books key rejected")
	case http.StatusTooManyRequests:
		return nil, errors.Upstream("google books rate limited")
	default:
		if resp.StatusCode >= 500 {
			return nil, errors.Upstreamf("google books server error: status %d", resp.StatusCode)
		}
		return nil, errors.Upstreamf("google books unexpected status %d", resp.StatusCode)
	}
}
