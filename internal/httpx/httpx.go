package httpx

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"quotegateway/internal/metrics"
)

// ErrBreakerOpen is returned without contacting the upstream while the
// circuit is open.
var ErrBreakerOpen = errors.New("circuit breaker open")

// BreakerConfig controls when the outbound circuit trips.
type BreakerConfig struct {
	Name string
	// MaxRequests is the number of probes allowed while half-open.
	MaxRequests uint32
	// Interval clears the closed-state counts; Timeout is how long the
	// circuit stays open.
	Interval time.Duration
	Timeout  time.Duration
	// FailureThreshold is the failure ratio that trips the circuit once at
	// least MinRequests were seen.
	FailureThreshold float64
	MinRequests      uint32
}

// DefaultBreakerConfig trips at 60% failures over at least 5 requests.
func DefaultBreakerConfig(name string) BreakerConfig {
	return BreakerConfig{
		Name:             name,
		MaxRequests:      3,
		Interval:         30 * time.Second,
		Timeout:          30 * time.Second,
		FailureThreshold: 0.6,
		MinRequests:      5,
	}
}

// Client is a small wrapper around http.Client with sane defaults, a
// circuit breaker and upstream metrics. It satisfies the provider clients'
// HTTPClient interface.
type Client struct {
	HTTP      *http.Client
	UserAgent string
	Headers   map[string]string

	breaker *gobreaker.CircuitBreaker
}

func New(timeout time.Duration, bc BreakerConfig) *Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 3 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:          200,
		MaxIdleConnsPerHost:   100,
		MaxConnsPerHost:       100,
		ForceAttemptHTTP2:     true,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   3 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: 5 * time.Second,
	}
	return &Client{
		HTTP:      &http.Client{Timeout: timeout, Transport: transport},
		UserAgent: "quote-gateway/1.0",
		breaker:   newBreaker(bc),
	}
}

func newBreaker(bc BreakerConfig) *gobreaker.CircuitBreaker {
	if bc.Name == "" {
		bc = DefaultBreakerConfig("upstream")
	}
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        bc.Name,
		MaxRequests: bc.MaxRequests,
		Interval:    bc.Interval,
		Timeout:     bc.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < bc.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= bc.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			zap.L().Warn("circuit breaker state changed",
				zap.String("circuit", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})
}

// statusError makes a 5xx or 429 response count as a breaker failure while
// still handing the response back to the caller.
type statusError struct{ code int }

func (e statusError) Error() string { return fmt.Sprintf("upstream status %d", e.code) }

// Do sends req through the breaker. Responses with 5xx or 429 status are
// returned as-is but count against the circuit.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.UserAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	for k, v := range c.Headers {
		if req.Header.Get(k) == "" {
			req.Header.Set(k, v)
		}
	}

	host := req.URL.Host
	start := time.Now()
	var resp *http.Response
	_, err := c.breaker.Execute(func() (interface{}, error) {
		r, err := c.HTTP.Do(req)
		if err != nil {
			return nil, err
		}
		resp = r
		if r.StatusCode >= 500 || r.StatusCode == http.StatusTooManyRequests {
			return nil, statusError{code: r.StatusCode}
		}
		return nil, nil
	})
	elapsed := time.Since(start)

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.RecordUpstream(host, "breaker_open", 0)
		return nil, fmt.Errorf("%s: %w", host, ErrBreakerOpen)
	case resp != nil:
		metrics.RecordUpstream(host, outcome(resp.StatusCode), elapsed)
		return resp, nil
	default:
		metrics.RecordUpstream(host, "error", elapsed)
		return nil, err
	}
}

// Name is the breaker name, one per upstream.
func (c *Client) Name() string { return c.breaker.Name() }

// State exposes the breaker state for health reporting.
func (c *Client) State() string { return c.breaker.State().String() }

func outcome(code int) string {
	switch {
	case code >= 500:
		return "status_5xx"
	case code >= 400:
		return "status_4xx"
	}
	return "ok"
}
