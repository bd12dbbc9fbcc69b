// Package api provides a GraphQL client for the business-process metrics API.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/machinebox/graphql"
	"go.uber.org/zap"
)

// DefaultTimeout bounds a single metrics fetch.
const DefaultTimeout = 15 * time.Second

// ErrNoEndpoint indicates the client was created without an API endpoint.
var ErrNoEndpoint = errors.New("no API endpoint configured")

// Client is a metrics API client. It implements metrics.Source.
type Client struct {
	gql      *graphql.Client
	endpoint string
	token    string
	timeout  time.Duration
	logger   *zap.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.gql = graphql.NewClient(c.endpoint, graphql.WithHTTPClient(hc))
	}
}

// WithTimeout sets the per-fetch timeout. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l.Named("api")
		}
	}
}

// New creates a client for endpoint. The token may be empty for
// unauthenticated endpoints.
func New(endpoint, token string, opts ...Option) (*Client, error) {
	if endpoint == "" {
		return nil, ErrNoEndpoint
	}

	c := &Client{
		gql:      graphql.NewClient(endpoint),
		endpoint: endpoint,
		token:    token,
		timeout:  DefaultTimeout,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// makeRequest executes a GraphQL request with authentication and the fetch timeout.
func (c *Client) makeRequest(ctx context.Context, req *graphql.Request, resp interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return c.gql.Run(ctx, req, resp)
}
