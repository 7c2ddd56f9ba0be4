package financeflow

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const defaultUserAgent = "fflow"

// Client wraps the FinanceFlow REST API
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new FinanceFlow client. The token may be empty for
// unauthenticated calls such as Login and Register; set it afterwards with
// SetToken.
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	}

	// Ensure baseURL doesn't have trailing slash
	baseURL = strings.TrimRight(baseURL, "/")

	client := &Client{
		baseURL:    baseURL,
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// SetToken replaces the bearer token used for subsequent calls. Passing an
// empty string reverts the client to unauthenticated requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the bearer token currently in use.
func (c *Client) Token() string {
	return c.token
}

// BaseURL returns the backend base URL the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// TestConnection verifies the backend is reachable and, when a token is set,
// that it is accepted.
func (c *Client) TestConnection(ctx context.Context) error {
	var req apiRequest
	if c.token != "" {
		req = apiRequest{method: http.MethodGet, path: epProfile}
	} else {
		req = apiRequest{method: http.MethodGet, path: epCurrencies}
	}
	if err := c.do(ctx, req); err != nil {
		return fmt.Errorf("%w: %v", ErrNoConnection, err)
	}
	return nil
}
