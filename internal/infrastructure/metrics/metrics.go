package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the client-side request collectors. Each instance owns its
// registry so several clients (and tests) never collide on registration.
type Metrics struct {
	Registry *prometheus.Registry

	inFlight prometheus.Gauge
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	failures *prometheus.CounterVec
}

// New creates metrics on a private registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "admin_console",
			Subsystem: "api",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight API requests.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "admin_console",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of API requests by resource and status.",
		}, []string{"method", "resource", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "admin_console",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "Duration of API requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12),
		}, []string{"method", "resource"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "admin_console",
			Subsystem: "api",
			Name:      "failures_total",
			Help:      "API requests that failed, by error code.",
		}, []string{"resource", "code"}),
	}
	m.Registry.MustRegister(m.inFlight, m.requests, m.duration, m.failures)
	return m
}

// Begin records the start of a request and returns the function that records its end.
func (m *Metrics) Begin(method, resource string) func(status int) {
	if m == nil {
		return func(int) {}
	}
	start := time.Now()
	m.inFlight.Inc()
	return func(status int) {
		m.inFlight.Dec()
		label := "error"
		if status > 0 {
			label = strconv.Itoa(status)
		}
		m.requests.WithLabelValues(method, resource, label).Inc()
		m.duration.WithLabelValues(method, resource).Observe(time.Since(start).Seconds())
	}
}

// Failure counts a failed request by resource and error code.
func (m *Metrics) Failure(resource, code string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(resource, code).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
