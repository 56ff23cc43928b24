// Package readwise reads a reader's book history and highlights from the
// Readwise API.
package readwise

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
	// Readwise allows 240 requests/minute; stay well under it.
	defaultRPS   = 2.0
	defaultBurst = 3

	defaultTimeout = 15 * time.Second

	// pageSize is the Readwise maximum.
	pageSize = 100

	limiterKey = "readwise"
)

// Client is a rate-limited Readwise API client.
type Client struct {
	http    *http.Client
	limiter *ratelimit.KeyedRateLimiter
	logger  *slog.Logger
	baseURL string
	token   string
}

// New creates a Readwise client. token may be empty; calls then fail with a
// CONFIG error so the caller can tell a deployment problem from an upstream
// outage.
func New(baseURL, token string, logger *slog.Logger) *Client {
	return &Client{
		http:    &http.Client{Timeout: defaultTimeout},
		limiter: ratelimit.New(defaultRPS, defaultBurst),
		logger:  logger,
		baseURL: baseURL,
		token:   token,
	}
}

// WithTimeout overrides the per-request HTTP timeout.
func (c *Client) WithTimeout(d time.Duration) *Client {
	if d > 0 {
		c.http.Timeout = d
	}
	return c
}

// Configured reports whether a token is present.
func (c *Client) Configured() bool {
	return c.token != ""
}

// doRequest executes a rate-limited authenticated GET and returns the body.
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if c.token == "" {
		return nil, errors.Config("readwise token not configured")
	}

	if err := c.limiter.Wait(ctx, limiterKey); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Token "+c.token)

	c.logger.Debug("readwise request", "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Upstream("readwise unreachable").WithCause(err)
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
		return nil, errors.Config("readwise token rejected")
	case http.StatusTooManyRequests:
		return nil, errors.Upstream("readwise rate limited")
	default:
		if resp.StatusCode >= 500 {
			return nil, errors.Upstreamf("readwise server error: status %d", resp.StatusCode)
		}
		return nil, errors.Upstreamf("readwise unexpected status %d", resp.StatusCode)
	}
}
