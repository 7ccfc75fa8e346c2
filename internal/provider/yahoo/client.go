package yahoo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bytedance/sonic"
)

const baseURL = "https://query2.finance.yahoo.com"

var (
	// ErrNotFound is returned when Yahoo has no data for the requested symbol
	// or screener.
	ErrNotFound = errors.New("not found")
	// ErrBadRequest is returned when Yahoo rejects the request parameters.
	ErrBadRequest = errors.New("bad request")
	// ErrUnauthorized is returned when Yahoo refuses the session.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrRateLimited is returned on HTTP 429.
	ErrRateLimited = errors.New("rate limited")
	// ErrUnexpectedStatus is returned for any other non-200 status.
	ErrUnexpectedStatus = errors.New("unexpected status code")
)

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=yahoo_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a client for the Yahoo finance query API.
type Client struct {
	// baseURL is the base URL for the API.
	baseURL string
	// httpClient performs the requests.
	httpClient HTTPClient
	// header contains additional headers to be sent with each request.
	header http.Header
	// query contains additional query parameters to be sent with each request.
	query url.Values
}

// ClientOption is a configuration option for the Yahoo client.
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

// WithHeader sets additional headers to be sent with each request.
func WithHeader(header http.Header) ClientOption {
	return func(c *Client) {
		for key, values := range header {
			for _, value := range values {
				c.header.Add(key, value)
			}
		}
	}
}

// WithQuery sets additional query parameters to be sent with each request,
// e.g. a region or language.
func WithQuery(query url.Values) ClientOption {
	return func(c *Client) {
		for key, values := range query {
			for _, value := range values {
				c.query.Add(key, value)
			}
		}
	}
}

// NewClient creates a new Yahoo finance client.
func NewClient(options ...ClientOption) *Client {
	var client = &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		header:     http.Header{"Accept": []string{"application/json"}},
		query:      url.Values{},
	}
	for _, option := range options {
		option(client)
	}
	return client
}

// get performs a GET against path and decodes a 200 response into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	query := url.Values{}
	for key, values := range c.query {
		query[key] = append([]string(nil), values...)
	}
	for key, values := range params {
		for _, value := range values {
			query.Add(key, value)
		}
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header = c.header.Clone()

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		break

	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", path, ErrNotFound)

	case http.StatusBadRequest:
		return fmt.Errorf("%s: %w: %s", path, ErrBadRequest, snippet(res.Body))

	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%s: %w", path, ErrUnauthorized)

	case http.StatusTooManyRequests:
		return fmt.Errorf("%s: %w", path, ErrRateLimited)

	default:
		return fmt.Errorf("%s: %w: %d", path, ErrUnexpectedStatus, res.StatusCode)
	}

	if err := sonic.ConfigStd.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

// apiError is the error object Yahoo embeds in otherwise successful bodies.
type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (e *apiError) err() error {
	if e == nil {
		return nil
	}
	if strings.EqualFold(e.Code, "Not Found") {
		return fmt.Errorf("%w: %s", ErrNotFound, e.Description)
	}
	if strings.EqualFold(e.Code, "Bad Request") {
		return fmt.Errorf("%w: %s", ErrBadRequest, e.Description)
	}
	return fmt.Errorf("yahoo error %s: %s", e.Code, e.Description)
}

func snippet(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 512))
	return strings.TrimSpace(string(b))
}
