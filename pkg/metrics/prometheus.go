// Package metrics provides Prometheus metrics for the Taqyim evaluation service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Evaluation flow metrics
	ratingsRecorded    prometheus.Counter
	ratingsRejected    prometheus.Counter
	scoreRecomputes    prometheus.Counter
	submits            *prometheus.CounterVec
	validationFailures prometheus.Counter

	// Notification metrics
	notificationsSent   prometheus.Counter
	notificationsFailed prometheus.Counter
	notificationLatency prometheus.Histogram

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "taqyim",
		subsystem:        "evaluation",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.ratingsRecorded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ratings_recorded_total",
		Help:      "Total number of ratings recorded across both namespaces",
	})

	m.ratingsRejected = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ratings_rejected_total",
		Help:      "Total number of rating writes rejected as out of range",
	})

	m.scoreRecomputes = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "score_recomputes_total",
		Help:      "Total number of full score recomputations",
	})

	m.submits = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "submits_total",
			Help:      "Total number of submit attempts by outcome",
		},
		[]string{"outcome"},
	)

	m.validationFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "validation_failures_total",
		Help:      "Total number of submit attempts blocked by validation",
	})

	m.notificationsSent = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "notifications_sent_total",
		Help:      "Total number of notifications delivered",
	})

	m.notificationsFailed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "notifications_failed_total",
		Help:      "Total number of notification deliveries that failed",
	})

	m.notificationLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "notification_latency_milliseconds",
		Help:      "Histogram of outbound notification latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)
}

// GetRegistry returns the registry metrics are collected on, for serving
// via promhttp.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers against the global manager.

// RecordRatingSet counts a successfully recorded rating.
func RecordRatingSet() { globalManager.ratingsRecorded.Inc() }

// RecordRatingRejected counts a rating write rejected as invalid.
func RecordRatingRejected() { globalManager.ratingsRejected.Inc() }

// RecordScoreRecompute counts a full score recomputation.
func RecordScoreRecompute() { globalManager.scoreRecomputes.Inc() }

// RecordSubmit counts a submit attempt by outcome
// ("success", "validation_failed", "transport_failed", "busy").
func RecordSubmit(outcome string) { globalManager.submits.WithLabelValues(outcome).Inc() }

// RecordValidationFailure counts a submit blocked by validation.
func RecordValidationFailure() { globalManager.validationFailures.Inc() }

// RecordNotificationSent counts a delivered notification and its latency.
func RecordNotificationSent(latencyMs float64) {
	globalManager.notificationsSent.Inc()
	globalManager.notificationLatency.Observe(latencyMs)
}

// RecordNotificationFailed counts a failed delivery and its latency.
func RecordNotificationFailed(latencyMs float64) {
	globalManager.notificationsFailed.Inc()
	globalManager.notificationLatency.Observe(latencyMs)
}

// RecordHTTPRequest counts an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records an HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}
