package fetch

import (
	"context"
	"io"
	"net/http"
	"time"
	"unicode/utf8"
)

// Fetcher fetches the raw markup of a page.
//
// Design decision: The crawl loop depends on this one-method interface
// rather than *Client because:
//  1. Tests can return canned HTML without a network
//  2. The loop has no use for client configuration details
//  3. Accept interfaces, return structs
type Fetcher interface {
	// Fetch returns the page body as a UTF-8 string, or a *Error.
	Fetch(ctx context.Context, pageURL string) (string, error)
}

// Client is the production Fetcher backed by net/http.
type Client struct {
	// httpClient performs the requests. Injected so tests and callers
	// can supply transport-level configuration.
	httpClient *http.Client

	// userAgent is the User-Agent header to send.
	userAgent string

	// maxBodySize caps the number of response bytes read.
	maxBodySize int64
}

// Option configures a Client.
type Option func(*Client)

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithMaxBodySize sets the maximum response body size in bytes.
func WithMaxBodySize(size int64) Option {
	return func(c *Client) {
		c.maxBodySize = size
	}
}

// WithHTTPClient replaces the underlying *http.Client entirely.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a Client whose requests time out after the given
// duration. The timeout covers the whole fetch; expiry surfaces as a
// transport error.
func NewClient(timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: timeout},
		userAgent:   "wikicrawl/1.0",
		maxBodySize: 10 * 1024 * 1024,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Fetch retrieves pageURL and returns its body as a string.
// The body must be valid UTF-8; invalid byte sequences fail with
// KindDecode rather than being substituted.
func (c *Client) Fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", &Error{Kind: KindTransport, URL: pageURL, Err: err}
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "tr,en;q=0.5")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &Error{Kind: KindTransport, URL: pageURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused, then report.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return "", &Error{Kind: KindHTTPStatus, URL: pageURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize))
	if err != nil {
		return "", &Error{Kind: KindTransport, URL: pageURL, Err: err}
	}

	if !utf8.Valid(body) {
		return "", &Error{Kind: KindDecode, URL: pageURL}
	}

	return string(body), nil
}
