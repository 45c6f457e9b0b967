// Package sparql is a minimal SPARQL 1.1 protocol client returning JSON result sets.
package sparql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const acceptResults = "application/sparql-results+json"

// Client executes SELECT queries against SPARQL endpoints.
type Client struct {
	httpClient *http.Client
	maxRetries int
	baseDelay  time.Duration
	log        *slog.Logger
}

// Options tunes a Client. Zero values fall back to defaults.
type Options struct {
	Timeout    time.Duration
	MaxRetries int
	BaseDelay  time.Duration
}

// NewClient creates a Client.
func NewClient(opts Options, logger *slog.Logger) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 3
	}
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		maxRetries: opts.MaxRetries,
		baseDelay:  opts.BaseDelay,
		log:        logger.With("adapter", "sparql"),
	}
}

// StatusError is returned for non-200 endpoint responses.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("sparql: unexpected status %d: %s", e.StatusCode, e.Body)
}

// Select runs query against endpoint and decodes the JSON result set.
// 502, 503 and 504 responses are retried with exponential backoff.
func (c *Client) Select(ctx context.Context, endpoint, query string) (*Results, error) {
	form := url.Values{"query": {query}}.Encode()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.baseDelay
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(c.maxRetries-1)), ctx)

	attempts := 0
	res, err := backoff.RetryNotifyWithData(func() (*Results, error) {
		attempts++
		res, err := c.do(ctx, endpoint, form)
		if err != nil && !retryable(err) {
			return nil, backoff.Permanent(err)
		}
		return res, err
	}, policy, func(err error, delay time.Duration) {
		c.log.WarnContext(ctx, "sparql retry",
			slog.String("endpoint", endpoint),
			slog.Int("attempt", attempts+1),
			slog.Duration("delay", delay),
			slog.String("reason", err.Error()),
		)
	})
	switch {
	case err == nil:
		return res, nil
	case ctx.Err() != nil:
		return nil, fmt.Errorf("sparql: %w", ctx.Err())
	case !retryable(err):
		return nil, err
	}

	c.log.ErrorContext(ctx, "sparql request failed",
		slog.String("endpoint", endpoint),
		slog.Int("attempts", attempts),
		slog.String("error", err.Error()),
	)
	return nil, fmt.Errorf("sparql: giving up after %d attempts: %w", attempts, err)
}

func (c *Client) do(ctx context.Context, endpoint, form string) (*Results, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form))
	if err != nil {
		return nil, fmt.Errorf("sparql: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", acceptResults)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sparql: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var res Results
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("sparql: decode json: %w", err)
	}

	c.log.DebugContext(ctx, "sparql response",
		slog.String("endpoint", endpoint),
		slog.Int("rows", len(res.Results.Bindings)),
		slog.Duration("took", time.Since(start)),
	)
	return &res, nil
}

func retryable(err error) bool {
	var se *StatusError
	if !errors.As(err, &se) {
		return false
	}
	switch se.StatusCode {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}
