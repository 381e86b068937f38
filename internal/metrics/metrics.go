// Package metrics defines and registers the Prometheus metrics of the
// career-guide server. It is the single source of truth for metric names,
// labels and help strings.
//
// Metrics are registered with the default registry on package load and
// exposed on GET /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "career"

// ── HTTP metrics ──────────────────────────────────────────────────────────────

// HTTPRequestsTotal counts handled requests.
// Labels:
//   - route: the chi route pattern (e.g. "/profile"), never the raw path
//   - method: HTTP method
//   - status: response status code
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests handled, by route, method and status.",
	},
	[]string{"route", "method", "status"},
)

// HTTPRequestDuration measures request handling time.
// Labels:
//   - route: the chi route pattern
//   - method: HTTP method
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP request handling.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"route", "method"},
)

// ── Oracle metrics ────────────────────────────────────────────────────────────

// OracleCallsTotal counts generative model calls.
// Label:
//   - outcome: "ok", "unavailable" or "invalid_output"
var OracleCallsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "oracle_calls_total",
		Help:      "Total number of generative model calls, by outcome.",
	},
	[]string{"outcome"},
)

// OracleCallDuration measures the latency of generative model calls.
var OracleCallDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "oracle_call_duration_seconds",
		Help:      "Duration of generative model calls.",
		Buckets:   []float64{.25, .5, 1, 2.5, 5, 10, 20, 30, 60},
	},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignInsTotal counts sign-in attempts.
// Labels:
//   - method: "password" or "federated"
//   - result: "success" or "failure"
var SignInsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sign_ins_total",
		Help:      "Total number of sign-in attempts, by method and result.",
	},
	[]string{"method", "result"},
)

// Oracle call outcomes.
const (
	OutcomeOK            = "ok"
	OutcomeUnavailable   = "unavailable"
	OutcomeInvalidOutput = "invalid_output"
)

// ObserveOracleCall records one generative model call.
func ObserveOracleCall(outcome string, started time.Time) {
	OracleCallsTotal.WithLabelValues(outcome).Inc()
	OracleCallDuration.Observe(time.Since(started).Seconds())
}

// ObserveSignIn records one sign-in attempt.
func ObserveSignIn(method string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	SignInsTotal.WithLabelValues(method, result).Inc()
}
