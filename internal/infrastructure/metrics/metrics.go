// Package metrics registers the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Config version metrics
	ConfigVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "lumen_config_version",
			Help: "Last config version observed by this process",
		},
	)

	VersionBumps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lumen_version_bumps_total",
			Help: "Total number of config version bumps by action",
		},
		[]string{"action"},
	)

	VersionBumpFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lumen_version_bump_failures_total",
			Help: "Total number of mutations whose activity log or version bump failed",
		},
	)

	// Mirror liveness metrics
	MirrorOnline = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "lumen_mirror_online",
			Help: "Whether the display is considered online (1) or offline (0)",
		},
	)

	MirrorLastPing = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "lumen_mirror_last_ping_timestamp_seconds",
			Help: "Unix time of the last display heartbeat",
		},
	)

	// External adapter metrics
	AdapterRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lumen_adapter_requests_total",
			Help: "Total number of adapter fetches by outcome (live, cache, fallback)",
		},
		[]string{"adapter", "outcome"},
	)

	AdapterFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lumen_adapter_fallbacks_total",
			Help: "Total number of adapter fetches answered with fallback data",
		},
		[]string{"adapter"},
	)

	AdapterDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lumen_adapter_fetch_duration_seconds",
			Help:    "Duration of live adapter fetches in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		},
		[]string{"adapter"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "lumen_circuit_breaker_state",
			Help: "Circuit breaker state per adapter: 0=closed, 1=half-open, 2=open",
		},
		[]string{"adapter"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lumen_circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"adapter", "from", "to"},
	)

	// HTTP metrics
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lumen_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lumen_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	StreamSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "lumen_version_stream_subscribers",
			Help: "Current number of websocket subscribers to the config version stream",
		},
	)

	// Scheduler metrics
	JobRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lumen_scheduler_job_runs_total",
			Help: "Total number of scheduled job runs by result",
		},
		[]string{"job", "result"},
	)
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// BoolGauge converts b to the 0/1 value used by boolean gauges.
func BoolGauge(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
