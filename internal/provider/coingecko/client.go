// Package coingecko fetches cryptocurrency quotes and short price histories
// from the CoinGecko public API.
package coingecko

import (
	"net/http"
	"net/url"

	"quotelookup/internal/logging"
)

const baseURL = "https://api.coingecko.com/api/v3"

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=coingecko_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a client for the CoinGecko API.
type Client struct {
	// baseURL is the base URL for the API.
	baseURL string
	// httpClient performs the requests.
	httpClient HTTPClient
	// header contains additional headers to be sent with each request.
	header http.Header
	// query contains additional query parameters to be sent with each request.
	query url.Values
	log   *logging.Logger
}

// Option is a configuration option for the CoinGecko client.
type Option func(*Client)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithHTTPClient sets the HTTP client for the API.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithHeader sets additional headers to be sent with each request.
func WithHeader(header http.Header) Option {
	return func(c *Client) {
		for key, values := range header {
			for _, value := range values {
				c.header.Add(key, value)
			}
		}
	}
}

// WithLogger sets the logger used for non-fatal failures.
func WithLogger(log *logging.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a new CoinGecko client. key is optional; the public API
// works without one at a lower rate limit.
func NewClient(key string, options ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		header:     http.Header{},
		query:      url.Values{},
		log:        logging.NewSilent(),
	}
	if key != "" {
		// https://docs.coingecko.com/reference/authentication
		c.header.Set("x-cg-demo-api-key", key)
	}
	for _, option := range options {
		option(c)
	}
	return c
}
