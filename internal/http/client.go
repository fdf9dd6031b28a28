package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultUserAgent is sent with every request unless overridden.
const DefaultUserAgent = "TravelDiscovery"

// Client wraps HTTP operations with travel API configuration.
//
// Client provides:
//   - Configured User-Agent header
//   - Optional timeout (zero means no timeout)
//   - The status policy shared by every screen: any status >= 400 is an error
//     and the body is never read
//
// Example usage:
//
//	client := NewClient()
//
//	// Fetch a JSON document
//	body, err := client.Get(ctx, "https://travel.letsbuildthatapp.com/travel_discovery/category?name=art")
//	var statusErr *StatusError
//	if errors.As(err, &statusErr) {
//	    fmt.Println("server said", statusErr.Code)
//	}
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets an overall request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithHTTPClient replaces the underlying *http.Client.
//
// Useful in tests to point the client at an httptest server transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a new HTTP client for the travel API.
//
// The client is configured with:
//   - no timeout (the loader contract does not bound the call)
//   - "TravelDiscovery" User-Agent header
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		userAgent:  DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StatusError is returned when the server answers with a status >= 400.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Code, e.Status)
}

// Get performs a GET request and returns the response body as bytes.
//
// The request includes the configured User-Agent header.
//
// Returns an error if:
//   - The request cannot be built or sent (transport failure)
//   - The response status is >= 400, as a *StatusError; the body is discarded unread
//   - Reading the body fails
//
// Statuses below 400 other than 200 are treated as success; whatever body they
// carry is returned for the caller to decode.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	return io.ReadAll(resp.Body)
}

// DownloadBytes downloads a file and returns the bytes in memory.
//
// Use this for small files like thumbnails and destination photos.
//
// Example:
//
//	imageData, err := client.DownloadBytes(ctx, place.ThumbnailURL)
func (c *Client) DownloadBytes(ctx context.Context, url string) ([]byte, error) {
	return c.Get(ctx, url)
}
