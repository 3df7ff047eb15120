package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "london_crypto_directory"

// Metrics holds the service collectors. Each instance owns its registry so
// servers built in tests do not collide.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	companiesLoaded  prometheus.Gauge
	snapshotFailures prometheus.Counter
	submissionsTotal *prometheus.CounterVec
	relayFailures    *prometheus.CounterVec
	duplicateSubmits prometheus.Counter
}

// NewMetrics creates and registers the collectors, plus the Go runtime and
// process collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by route, method and status code.",
			},
			[]string{"route", "method", "code"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Latency of HTTP request handling in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		companiesLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "companies_loaded",
			Help:      "Number of companies in the most recently loaded snapshot.",
		}),
		snapshotFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_failures_total",
			Help:      "Company snapshot fetches that failed and rendered an empty directory.",
		}),
		submissionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "submissions_total",
				Help:      "Form and endpoint submissions by kind and outcome.",
			},
			[]string{"kind", "outcome"},
		),
		relayFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "relay_failures_total",
				Help:      "Email relay failures by error kind.",
			},
			[]string{"kind"},
		),
		duplicateSubmits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "duplicate_submits_total",
			Help:      "Submits rejected because the same form was already submitting.",
		}),
	}

	m.registry = prometheus.NewRegistry()
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m.registry.MustRegister(m.Collectors()...)
	return m
}

// Collectors returns the service collectors, excluding runtime ones.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.requestsTotal,
		m.requestDuration,
		m.companiesLoaded,
		m.snapshotFailures,
		m.submissionsTotal,
		m.relayFailures,
		m.duplicateSubmits,
	}
}

// Registry exposes the underlying registry for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records one finished HTTP request. route is the matched mux
// pattern, or "unmatched".
func (m *Metrics) ObserveRequest(route, method string, code int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.requestsTotal.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	m.requestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// SnapshotLoaded records the size of a loaded snapshot, or a failure.
func (m *Metrics) SnapshotLoaded(count int, err error) {
	if err != nil {
		m.snapshotFailures.Inc()
	}
	m.companiesLoaded.Set(float64(count))
}

// Submission records the outcome of a submission of the given kind.
func (m *Metrics) Submission(kind, outcome string) {
	m.submissionsTotal.WithLabelValues(kind, outcome).Inc()
}

// RelayFailure records a relay error by kind.
func (m *Metrics) RelayFailure(kind string) {
	m.relayFailures.WithLabelValues(kind).Inc()
}

// DuplicateSubmit records a rejected concurrent submit.
func (m *Metrics) DuplicateSubmit() {
	m.duplicateSubmits.Inc()
}
