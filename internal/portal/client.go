// Package portal fetches flight data from inflight WiFi portal endpoints
// and decides, per refresh cycle, whether the UI sees live, cached, demo,
// or error data.
package portal

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/five82/inflight/internal/payload"
)

const (
	defaultUserAgent = "inflight/0.1"
	// Portals on an aircraft LAN either answer fast or not at all; a
	// bounded timeout keeps one dead endpoint from starving the rest of
	// the candidate list.
	defaultRequestTimeout = 8 * time.Second
)

// Client issues GET requests against portal endpoints.
type Client struct {
	http      *http.Client
	userAgent string
}

// NewClient builds a Client with the given per-attempt timeout; zero uses
// the default.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Client{
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}
}

// FetchJSON requests rawURL and decodes the body. The only success
// condition is a 2xx status with a parseable JSON object; anything else
// is an attempt failure for the caller to recover from.
func (c *Client) FetchJSON(ctx context.Context, rawURL string) (payload.Raw, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("endpoint returned status %d", resp.StatusCode)
	}
	doc, err := payload.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return doc, nil
}
