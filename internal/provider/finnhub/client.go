package finnhub

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

const baseURL = "https://finnhub.io"

var (
	// ErrMissingAPIKey is returned when the client is created without a key.
	ErrMissingAPIKey = errors.New("missing API key")
	// ErrUnauthorized is returned when Finnhub rejects the key.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrRateLimited is returned on HTTP 429.
	ErrRateLimited = errors.New("rate limited")
	// ErrUnexpectedStatus is returned for any other non-200 status.
	ErrUnexpectedStatus = errors.New("unexpected status code")
)

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=finnhub_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a client for the Finnhub REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient HTTPClient
}

// ClientOption is a configuration option for the Finnhub client.
type ClientOption func(*Client)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets the HTTP client for the API.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new Finnhub client.
func NewClient(apiKey string, options ...ClientOption) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	var client = &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
	}
	for _, option := range options {
		option(client)
	}
	return client, nil
}

// CompanyNews returns the news about symbol published between from and to,
// newest first.
func (c *Client) CompanyNews(ctx context.Context, symbol string, from, to time.Time) ([]map[string]any, error) {
	params := url.Values{
		"symbol": []string{symbol},
		"from":   []string{from.Format(time.DateOnly)},
		"to":     []string{to.Format(time.DateOnly)},
	}
	return c.getArticles(ctx, "/api/v1/company-news", params)
}

// MarketNews returns the latest news of a category such as "general",
// "forex", "crypto" or "merger".
func (c *Client) MarketNews(ctx context.Context, category string) ([]map[string]any, error) {
	return c.getArticles(ctx, "/api/v1/news", url.Values{"category": []string{category}})
}

func (c *Client) getArticles(ctx context.Context, path string, params url.Values) ([]map[string]any, error) {
	params.Set("token", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		break

	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("%s: %w", path, ErrUnauthorized)

	case http.StatusTooManyRequests:
		return nil, fmt.Errorf("%s: %w", path, ErrRateLimited)

	default:
		return nil, fmt.Errorf("%s: %w: %d", path, ErrUnexpectedStatus, res.StatusCode)
	}

	var articles []map[string]any
	if err := sonic.ConfigStd.NewDecoder(res.Body).Decode(&articles); err != nil {
		return nil, fmt.Errorf("decoding %s response: %w", path, err)
	}
	return articles, nil
}
