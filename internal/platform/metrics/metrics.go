package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gateway"

// StatusTransportError is the status label used when no HTTP response was received.
const StatusTransportError = "transport_error"

// Recorder groups the collectors used across the gateway.
type Recorder struct {
	upstreamRequests   *prometheus.CounterVec
	upstreamDuration   *prometheus.HistogramVec
	reconciledAccounts *prometheus.CounterVec
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
}

// New registers the gateway collectors with reg and returns a Recorder.
// Passing prometheus.DefaultRegisterer exposes them through promhttp.Handler.
func New(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		upstreamRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Outbound backend calls by backend, method and response status.",
		}, []string{"backend", "method", "status"}),
		upstreamDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Outbound backend call latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"backend", "method"}),
		reconciledAccounts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reconciliation",
			Name:      "accounts_total",
			Help:      "Remote accounts processed by reconciliation, by result.",
		}, []string{"result"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Inbound HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Inbound HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// ObserveUpstream records one outbound call. status is 0 for transport failures.
func (r *Recorder) ObserveUpstream(backend, method string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.upstreamRequests.WithLabelValues(backend, method, statusLabel(status)).Inc()
	r.upstreamDuration.WithLabelValues(backend, method).Observe(elapsed.Seconds())
}

// AddReconciled records n reconciliation outcomes with the given result.
func (r *Recorder) AddReconciled(result string, n int) {
	if r == nil || n == 0 {
		return
	}
	r.reconciledAccounts.WithLabelValues(result).Add(float64(n))
}

// ObserveHTTP records one inbound request against its route pattern.
func (r *Recorder) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(method, route, statusLabel(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func statusLabel(status int) string {
	if status == 0 {
		return StatusTransportError
	}
	return strconv.Itoa(status)
}
