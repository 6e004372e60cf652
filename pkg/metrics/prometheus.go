// Package metrics provides Prometheus metrics for the Quantum Tech dashboard.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultNamespace       = "quantumtech"
	defaultSubsystem       = "dashboard"
	defaultRefreshInterval = 10 * time.Second
)

// defaultLatencyBuckets spans sub-millisecond renders to slow rasterizations, in milliseconds.
var defaultLatencyBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 1000}

// Render outcomes used as label values.
const (
	OutcomeOK                = "ok"
	OutcomeInvalidMode       = "invalid_mode"
	OutcomeSelectionNotFound = "selection_not_found"
	OutcomeError             = "error"
)

// Manager manages all Prometheus metrics for the dashboard.
type Manager struct {
	namespace        string
	subsystem        string
	latencyBuckets   []float64
	sizeBuckets      []float64
	constLabels      prometheus.Labels
	refreshInterval  time.Duration
	registry         prometheus.Registerer

	// Domain
	renders            *prometheus.CounterVec
	renderLatency      *prometheus.HistogramVec
	chartImages        *prometheus.CounterVec
	chartBytes         *prometheus.HistogramVec
	chartCache         *prometheus.CounterVec
	selectionsNotFound *prometheus.CounterVec
	exports            *prometheus.CounterVec
	datasetRows        *prometheus.GaugeVec
	unresolvedRefs     prometheus.Gauge
	averageLagYears    prometheus.Gauge

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Errors
	errorRateByComponent *prometheus.CounterVec
	errorRateByEndpoint  *prometheus.CounterVec

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        defaultNamespace,
		subsystem:        defaultSubsystem,
		latencyBuckets:   defaultLatencyBuckets,
		sizeBuckets:      prometheus.ExponentialBuckets(1024, 2, 10),
		constLabels:      prometheus.Labels{},
		refreshInterval:  defaultRefreshInterval,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

// RefreshInterval is how often periodic gauges should be refreshed.
func (m *Manager) RefreshInterval() time.Duration { return m.refreshInterval }

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels}
}

func (m *Manager) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, Buckets: buckets, ConstLabels: m.constLabels}
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.renders = auto.NewCounterVec(
		m.counterOpts("renders_total", "Total number of view renders by view and outcome"),
		[]string{"view", "outcome"},
	)
	m.renderLatency = auto.NewHistogramVec(
		m.histogramOpts("render_latency_milliseconds", "View render latency in milliseconds", m.latencyBuckets),
		[]string{"view"},
	)
	m.chartImages = auto.NewCounterVec(
		m.counterOpts("chart_images_total", "Total number of chart images rendered by view and format"),
		[]string{"view", "format"},
	)
	m.chartBytes = auto.NewHistogramVec(
		m.histogramOpts("chart_image_bytes", "Size of rendered chart images in bytes", m.sizeBuckets),
		[]string{"format"},
	)
	m.chartCache = auto.NewCounterVec(
		m.counterOpts("chart_cache_lookups_total", "Chart image cache lookups by format and result"),
		[]string{"format", "result"},
	)
	m.selectionsNotFound = auto.NewCounterVec(
		m.counterOpts("selection_not_found_total", "Secondary selections outside their domain, by view"),
		[]string{"view"},
	)
	m.exports = auto.NewCounterVec(
		m.counterOpts("dataset_exports_total", "Total number of dataset exports by format and table"),
		[]string{"format", "table"},
	)
	m.datasetRows = auto.NewGaugeVec(
		m.gaugeOpts("dataset_rows", "Rows per dataset table"),
		[]string{"table"},
	)
	m.unresolvedRefs = auto.NewGauge(m.gaugeOpts("unresolved_references", "Soft references that do not resolve by exact name"))
	m.averageLagYears = auto.NewGauge(m.gaugeOpts("average_lag_years", "Average years between discovery and technology"))

	m.httpRequests = auto.NewCounterVec(
		m.counterOpts("http_requests_total", "Total number of HTTP requests by endpoint and method"),
		[]string{"endpoint", "method", "status_code"},
	)
	m.httpRequestDuration = auto.NewHistogramVec(
		m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds", m.latencyBuckets),
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorRateByComponent = auto.NewCounterVec(
		m.counterOpts("errors_by_component_total", "Total number of errors by component and type"),
		[]string{"component", "error_type"},
	)
	m.errorRateByEndpoint = auto.NewCounterVec(
		m.counterOpts("errors_by_endpoint_total", "Total number of errors by endpoint, method and type"),
		[]string{"endpoint", "method", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(m.gaugeOpts("system_memory_bytes", "Heap memory in use in bytes"))
	m.systemGoroutineCount = auto.NewGauge(m.gaugeOpts("system_goroutines", "Current number of goroutines"))
}

// Domain Metrics Functions.

// RecordRender counts a render of view with the given outcome.
func RecordRender(view, outcome string) {
	globalManager.renders.WithLabelValues(view, outcome).Inc()
}

// RecordRenderLatency observes how long a render of view took.
func RecordRenderLatency(view string, latencyMs float64) {
	globalManager.renderLatency.WithLabelValues(view).Observe(latencyMs)
}

// RecordChartImage counts a chart image and observes its size.
func RecordChartImage(view, format string, size int) {
	globalManager.chartImages.WithLabelValues(view, format).Inc()
	globalManager.chartBytes.WithLabelValues(format).Observe(float64(size))
}

// RecordChartCache counts a chart cache lookup; hit selects the result label.
func RecordChartCache(format string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	globalManager.chartCache.WithLabelValues(format, result).Inc()
}

// RecordSelectionNotFound counts a secondary selection outside its domain.
func RecordSelectionNotFound(view string) {
	globalManager.selectionsNotFound.WithLabelValues(view).Inc()
}

// RecordExport counts a dataset export. table is "all" when unfiltered.
func RecordExport(format, table string) {
	if table == "" {
		table = "all"
	}
	globalManager.exports.WithLabelValues(format, table).Inc()
}

// UpdateDatasetRows sets the row count of table.
func UpdateDatasetRows(table string, rows int) {
	globalManager.datasetRows.WithLabelValues(table).Set(float64(rows))
}

// UpdateUnresolvedReferences sets the number of flagged soft references.
func UpdateUnresolvedReferences(count int) {
	globalManager.unresolvedRefs.Set(float64(count))
}

// UpdateAverageLag sets the average discovery-to-technology lag.
func UpdateAverageLag(years float64) {
	globalManager.averageLagYears.Set(years)
}

// HTTP Metrics Functions.

// RecordHTTPRequest records an HTTP request with endpoint, method, and status code labels.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records the duration of an HTTP request.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// Error Metrics Functions.

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// System Metrics Functions.

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RefreshInterval returns the refresh interval of the global manager.
func RefreshInterval() time.Duration {
	return globalManager.RefreshInterval()
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
