// Package metrics provides Prometheus metrics for the warboard service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the warboard service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      map[string]string
	registry         prometheus.Registerer

	// Ingest metrics
	recordsKept    *prometheus.CounterVec
	recordsDropped *prometheus.CounterVec

	// Snapshot metrics
	careersTotal          prometheus.Gauge
	seasonsTotal          prometheus.Gauge
	rostersTotal          prometheus.Gauge
	snapshotBuildDuration prometheus.Histogram
	snapshotLastUnix      prometheus.Gauge
	snapshotBuilds        prometheus.Counter

	// Source cache metrics
	cacheHits        *prometheus.CounterVec
	cacheMisses      *prometheus.CounterVec
	cacheFetchErrors *prometheus.CounterVec
	fetchDuration    prometheus.Histogram

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Report metrics
	reportsWritten *prometheus.CounterVec

	errorsByComponent *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "warboard",
		subsystem:        "core",
		histogramBuckets: prometheus.DefBuckets,
		constLabels:      map[string]string{},
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // one block per metric
	auto := promauto.With(m.registry)

	m.recordsKept = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "records_kept_total",
		Help:        "Performance records retained after filtering",
		ConstLabels: m.constLabels,
	}, []string{"discipline"})

	m.recordsDropped = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "records_dropped_total",
		Help:        "Performance records dropped by filtering, by reason",
		ConstLabels: m.constLabels,
	}, []string{"discipline", "reason"})

	m.careersTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "careers",
		Help:        "Careers in the current snapshot",
		ConstLabels: m.constLabels,
	})

	m.seasonsTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "seasons",
		Help:        "Player seasons in the current snapshot",
		ConstLabels: m.constLabels,
	})

	m.rostersTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "rosters",
		Help:        "Team rosters in the current snapshot",
		ConstLabels: m.constLabels,
	})

	m.snapshotBuildDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "snapshot_build_duration_seconds",
		Help:        "Time spent deriving careers, seasons and rosters",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	})

	m.snapshotLastUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "snapshot_last_build_unix",
		Help:        "Unix time of the last completed snapshot build",
		ConstLabels: m.constLabels,
	})

	m.snapshotBuilds = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "snapshot_builds_total",
		Help:        "Completed snapshot builds",
		ConstLabels: m.constLabels,
	})

	m.cacheHits = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "source_cache_hits_total",
		Help:        "Source loads served from a fresh cache file",
		ConstLabels: m.constLabels,
	}, []string{"key"})

	m.cacheMisses = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "source_cache_misses_total",
		Help:        "Source loads that required a fetch, by cause (absent, expired)",
		ConstLabels: m.constLabels,
	}, []string{"key", "cause"})

	m.cacheFetchErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "source_fetch_errors_total",
		Help:        "Failed upstream fetches",
		ConstLabels: m.constLabels,
	}, []string{"key"})

	m.fetchDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "source_fetch_duration_seconds",
		Help:        "Upstream fetch duration",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_requests_total",
		Help:        "Total number of HTTP requests by endpoint and method",
		ConstLabels: m.constLabels,
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_request_duration_milliseconds",
		Help:        "HTTP request duration in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	}, []string{"endpoint", "method", "status_code"})

	m.reportsWritten = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "reports_written_total",
		Help:        "Report files written, by format",
		ConstLabels: m.constLabels,
	}, []string{"format"})

	m.errorsByComponent = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "errors_total",
		Help:        "Errors by component and type",
		ConstLabels: m.constLabels,
	}, []string{"component", "error_type"})
}

// Ingest Metrics Functions.

// RecordRecordsKept adds n retained records for a discipline.
func RecordRecordsKept(discipline string, n int) {
	globalManager.recordsKept.WithLabelValues(discipline).Add(float64(n))
}

// RecordRecordsDropped adds n dropped records for a discipline and reason.
func RecordRecordsDropped(discipline, reason string, n int) {
	globalManager.recordsDropped.WithLabelValues(discipline, reason).Add(float64(n))
}

// Snapshot Metrics Functions.

// UpdateSnapshotSize sets the career, season and roster gauges.
func UpdateSnapshotSize(careers, seasons, rosters int) {
	globalManager.careersTotal.Set(float64(careers))
	globalManager.seasonsTotal.Set(float64(seasons))
	globalManager.rostersTotal.Set(float64(rosters))
}

// RecordSnapshotBuild records a completed build and its duration.
func RecordSnapshotBuild(took time.Duration) {
	globalManager.snapshotBuildDuration.Observe(took.Seconds())
	globalManager.snapshotLastUnix.Set(float64(time.Now().Unix()))
	globalManager.snapshotBuilds.Inc()
}

// Source Cache Metrics Functions.

// RecordCacheHit increments the cache hit counter for key.
func RecordCacheHit(key string) {
	globalManager.cacheHits.WithLabelValues(key).Inc()
}

// RecordCacheMiss increments the cache miss counter for key and cause.
func RecordCacheMiss(key, cause string) {
	globalManager.cacheMisses.WithLabelValues(key, cause).Inc()
}

// RecordFetchError increments the fetch error counter for key.
func RecordFetchError(key string) {
	globalManager.cacheFetchErrors.WithLabelValues(key).Inc()
}

// RecordFetchDuration observes an upstream fetch duration.
func RecordFetchDuration(took time.Duration) {
	globalManager.fetchDuration.Observe(took.Seconds())
}

// HTTP Metrics Functions.

// RecordHTTPRequest increments the HTTP request counter.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordReportWritten increments the report counter for format.
func RecordReportWritten(format string) {
	globalManager.reportsWritten.WithLabelValues(format).Inc()
}

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorsByComponent.WithLabelValues(component, errorType).Inc()
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
