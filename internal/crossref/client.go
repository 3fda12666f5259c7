// Package crossref provides a client for the Crossref works API.
package crossref

import (
	"net/http"
	"strings"

	"github.com/lepinkainen/doinote/internal/ratelimit"
)

const (
	defaultBaseURL   = "https://api.crossref.org"
	defaultUserAgent = "doinote"
)

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is a Crossref API client. It performs exactly one request per lookup.
type Client struct {
	baseURL     string
	userAgent   string
	mailto      string
	httpClient  HTTPDoer
	rateLimiter *ratelimit.Limiter
}

// NewClient creates a new Crossref API client.
// The default HTTP client has no timeout; cancellation comes from the caller's context.
func NewClient(opts ...Option) *Client {
	client := &Client{
		baseURL:    defaultBaseURL,
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c HTTPDoer) Option {
	return func(client *Client) {
		if c != nil {
			client.httpClient = c
		}
	}
}

// WithBaseURL sets a custom base URL for the Crossref API.
func WithBaseURL(base string) Option {
	return func(client *Client) {
		if base != "" {
			client.baseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithMailto sets the contact address sent in the User-Agent header.
func WithMailto(addr string) Option {
	return func(client *Client) {
		client.mailto = strings.TrimSpace(addr)
	}
}

// WithUserAgent sets the product token sent in the User-Agent header, e.g. "doinote/1.2.0".
func WithUserAgent(ua string) Option {
	return func(client *Client) {
		if ua != "" {
			client.userAgent = ua
		}
	}
}

// WithRateLimiter sets a rate limiter used to pace requests.
func WithRateLimiter(limiter *ratelimit.Limiter) Option {
	return func(client *Client) {
		if limiter != nil {
			client.rateLimiter = limiter
		}
	}
}

// BaseURL returns the API base URL used by the client.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) userAgentHeader() string {
	if c.mailto == "" {
		return c.userAgent
	}
	return c.userAgent + " (mailto:" + c.mailto + ")"
}
