// Package feed retrieves the WHO ICTRP trial export and the country
// reference file and decodes them into rows for the normalizer.
package feed

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"trialsync/internal/config"
)

// ErrUnexpectedStatusCode indicates an HTTP response with unexpected status.
var ErrUnexpectedStatusCode = errors.New("unexpected status code")

// Client fetches feed files over HTTP with config-driven retry logic.
type Client struct {
	http        *http.Client
	retryPolicy *config.RetryPolicy
}

// NewClient creates a new feed client with default retry policy.
func NewClient() *Client {
	return NewClientWithRetry(&config.RetryPolicy{
		MaxAttempts:       3,
		InitialDelayMs:    500,
		MaxDelayMs:        30000,
		BackoffMultiplier: 2.0,
		TimeoutSec:        60,
	})
}

// NewClientWithRetry creates a new feed client with a custom retry policy.
func NewClientWithRetry(retryPolicy *config.RetryPolicy) *Client {
	return &Client{
		http:        &http.Client{Timeout: retryPolicy.GetTimeout()},
		retryPolicy: retryPolicy,
	}
}

// Fetch downloads a feed file, retrying transient failures with
// exponential backoff.
func (c *Client) Fetch(url string) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= c.retryPolicy.MaxAttempts; attempt++ {
		body, err := c.fetchOnce(url)
		if err == nil {
			return body, nil
		}

		lastErr = fmt.Errorf("fetch failed (attempt %d/%d): %w",
			attempt, c.retryPolicy.MaxAttempts, err)

		if attempt < c.retryPolicy.MaxAttempts {
			if delay := c.retryPolicy.GetRetryDelay(attempt + 1); delay > 0 {
				time.Sleep(delay)
			}
		}
	}

	return nil, lastErr
}

func (c *Client) fetchOnce(url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "text/csv,application/json;q=0.9,*/*;q=0.8")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}

// Open returns the feed content from a local file when path is set,
// otherwise from the URL.
func (c *Client) Open(path, url string) ([]byte, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read feed file: %w", err)
		}

		return data, nil
	}

	return c.Fetch(url)
}
