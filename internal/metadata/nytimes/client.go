// Package nytimes reads the New York Times bestseller list feeds.
package nytimes

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
	// The books API allows 5 requests/minute on the free tier. The limiter
	// spaces bursts; callers should also keep list fan-out small.
	defaultRPS   = 0.5
	defaultBurst = 3

	defaultTimeout = 15 * time.Second

	limiterKey = "nytimes"
)

// Client is a rate-limited NYT books API client.
type Client struct {
	http    *http.Client
	limiter *ratelimit.KeyedRateLimiter
	logger  *slog.Logger
	baseURL string
	apiKey  string
}

// New creates a NYT books client. apiKey may be empty; calls then fail with
// a CONFIG error.
func New(baseURL, apiKey string, logger *slog.Logger) *Client {
	return &Client{
		http:    &http.Client{Timeout: defaultTimeout},
		limiter: ratelimit.New(defaultRPS, defaultBurst),
		logger:  logger,
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// WithTimeout overrides the per-request HTTP timeout.
func (c *Client) WithTimeout(d time.Duration) *Client {
	if d > 0 {
		c.http.Timeout = d
	}
	return c
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if c.apiKey == "" {
		return nil, errors.Config("nyt api key not configured")
	}

	if err := c.limiter.Wait(ctx, limiterKey); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	query.Set("api-key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("nyt request", "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Upstream("nyt unreachable").WithCause(err)
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
		return nil, errors.Config("nyt api key rejected")
	case http.StatusTooManyRequests:
		return nil, errors.Upstream("nyt rate limited")
	case http.StatusNotFound:
		return nil, errors.NotFoundf("nyt list not found")
	default:
		if resp.StatusCode >= 500 {
			return nil, errors.Upstreamf("nyt server error: status %d", resp.StatusCode)
		}
		return nil, errors.Upstreamf("nyt unexpected status %d", resp.StatusCode)
	}
}
