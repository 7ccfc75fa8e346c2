// Package metrics holds the gateway's prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	upstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_upstream_requests_total",
			Help: "Outbound requests to market-data providers by outcome",
		},
		[]string{"host", "outcome"},
	)

	upstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_upstream_request_duration_seconds",
			Help:    "Outbound request latency in seconds",
			Buckets: prometheus.ExponentialBuckets(0.025, 2, 10),
		},
		[]string{"host"},
	)

	recordsDroppedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_records_dropped_total",
			Help: "Upstream values removed by the eligibility filter",
		},
		[]string{"flow"},
	)

	cacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_cache_lookups_total",
			Help: "Per-symbol quote cache lookups",
		},
		[]string{"result"},
	)
)

// RecordHTTPRequest records one served request. path should be the route
// template, not the raw URL, to keep label cardinality bounded.
func RecordHTTPRequest(method, path, status string, d time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// RecordUpstream records one outbound request. outcome is "ok", "error",
// "status_4xx", "status_5xx" or "breaker_open".
func RecordUpstream(host, outcome string, d time.Duration) {
	upstreamRequestsTotal.WithLabelValues(host, outcome).Inc()
	if d > 0 {
		upstreamRequestDuration.WithLabelValues(host).Observe(d.Seconds())
	}
}

// RecordDropped counts values the projector filtered out of a flow.
func RecordDropped(flow string, n int) {
	if n > 0 {
		recordsDroppedTotal.WithLabelValues(flow).Add(float64(n))
	}
}

// RecordCacheLookups counts per-symbol cache hits and misses.
func RecordCacheLookups(hits, misses int) {
	if hits > 0 {
		cacheLookupsTotal.WithLabelValues("hit").Add(float64(hits))
	}
	if misses > 0 {
		cacheLookupsTotal.WithLabelValues("miss").Add(float64(misses))
	}
}
