package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"parkpulse/internal/structures"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncSyncsTotal(slug string, success bool)
	ObserveSyncDuration(slug string, duration time.Duration)
	IncFetchErrors(parkID string)
	IncStoreErrors(op string)
	SetAttractionsTotal(slug string, count int)
}

type MetricsProvider struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	cacheHits        prometheus.Counter
	cacheMisses      prometheus.Counter
	syncsTotal       *prometheus.CounterVec
	syncDuration     *prometheus.HistogramVec
	fetchErrors      *prometheus.CounterVec
	storeErrors      *prometheus.CounterVec
	attractionsTotal *prometheus.GaugeVec
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) IncSyncsTotal(slug string, success bool) {
	outcome := "ok"
	if !success {
		outcome = "error"
	}
	m.syncsTotal.WithLabelValues(slug, outcome).Inc()
}

func (m *MetricsProvider) ObserveSyncDuration(slug string, duration time.Duration) {
	m.syncDuration.WithLabelValues(slug).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncFetchErrors(parkID string) {
	m.fetchErrors.WithLabelValues(parkID).Inc()
}

func (m *MetricsProvider) IncStoreErrors(op string) {
	m.storeErrors.WithLabelValues(op).Inc()
}

func (m *MetricsProvider) SetAttractionsTotal(slug string, count int) {
	m.attractionsTotal.WithLabelValues(slug).Set(float64(count))
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "parkpulse_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "parkpulse_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "parkpulse_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "parkpulse_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		syncsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "parkpulse_syncs_total",
			Help: "Total number of destination sync runs by outcome",
		}, []string{"destination", "outcome"}),

		syncDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "parkpulse_sync_duration_seconds",
			Help:    "Duration of destination sync runs in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"destination"}),

		fetchErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "parkpulse_fetch_errors_total",
			Help: "Total number of failed live-data fetches per park",
		}, []string{"park"}),

		storeErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "parkpulse_store_errors_total",
			Help: "Total number of object-store failures by operation",
		}, []string{"op"}),

		attractionsTotal: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "parkpulse_attractions_total",
			Help: "Number of attraction records per destination snapshot",
		}, []string{"destination"}),
	}

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "parkpulse_destinations_total",
		Help: "Number of configured destinations",
	}, func() float64 {
		return float64(len(conf.Destinations))
	})

	return m
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) IncSyncsTotal(_ string, _ bool)                   {}
func (n *noopMetrics) ObserveSyncDuration(_ string, _ time.Duration)    {}
func (n *noopMetrics) IncFetchErrors(_ string)                          {}
func (n *noopMetrics) IncStoreErrors(_ string)                          {}
func (n *noopMetrics) SetAttractionsTotal(_ string, _ int)              {}
