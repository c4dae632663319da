package infrastructure

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics owns the service registry and every collector registered on it.
// It implements the ForecastMetrics and ProviderMetrics ports and hands out
// per-backend cache metrics.
type PrometheusMetrics struct {
	registry *prometheus.Registry

	degradedTimestamps prometheus.Counter
	overviews          *prometheus.CounterVec

	providerCalls   *prometheus.CounterVec
	providerLatency *prometheus.HistogramVec

	cache *cacheCollectors
}

type cacheCollectors struct {
	hits     *prometheus.CounterVec
	misses   *prometheus.CounterVec
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	hitRatio *prometheus.GaugeVec
}

// NewPrometheusMetrics creates a registry with runtime collectors and the service metrics
func NewPrometheusMetrics() *PrometheusMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &PrometheusMetrics{
		registry: registry,
		degradedTimestamps: factory.NewCounter(prometheus.CounterOpts{
			Name: "forecast_degraded_timestamps_total",
			Help: "Forecast samples rendered from their raw date text because the timestamp could not be resolved",
		}),
		overviews: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "forecast_overviews_total",
			Help: "Forecast views built, by display unit and forecast availability",
		}, []string{"unit", "forecast_available"}),
		providerCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "weather_provider_requests_total",
			Help: "Upstream weather provider calls by provider, operation and outcome",
		}, []string{"provider", "operation", "outcome"}),
		providerLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "weather_provider_duration_seconds",
			Help:    "Upstream weather provider call duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider", "operation"}),
		cache: &cacheCollectors{
			hits: factory.NewCounterVec(prometheus.CounterOpts{
				Name: "weather_cache_hits_total",
				Help: "The total number of cache hits",
			}, []string{"cache_type"}),
			misses: factory.NewCounterVec(prometheus.CounterOpts{
				Name: "weather_cache_misses_total",
				Help: "The total number of cache misses",
			}, []string{"cache_type"}),
			requests: factory.NewCounterVec(prometheus.CounterOpts{
				Name: "weather_cache_requests_total",
				Help: "The total number of cache requests",
			}, []string{"cache_type"}),
			latency: factory.NewHistogramVec(prometheus.HistogramOpts{
				Name:    "weather_cache_duration_seconds",
				Help:    "Cache operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			}, []string{"cache_type", "operation"}),
			hitRatio: factory.NewGaugeVec(prometheus.GaugeOpts{
				Name: "weather_cache_hit_ratio",
				Help: "Cache hit ratio (hits/total requests)",
			}, []string{"cache_type"}),
		},
	}
}

// Registry exposes the registry for the /metrics handler
func (m *PrometheusMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordDegradedTimestamp counts a sample shown with its raw date text
func (m *PrometheusMetrics) RecordDegradedTimestamp() {
	m.degradedTimestamps.Inc()
}

// RecordOverview counts a built view
func (m *PrometheusMetrics) RecordOverview(unit string, forecastAvailable bool) {
	m.overviews.WithLabelValues(unit, strconv.FormatBool(forecastAvailable)).Inc()
}

// RecordProviderCall records the outcome and latency of one upstream call
func (m *PrometheusMetrics) RecordProviderCall(provider, operation string, success bool, duration time.Duration) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.providerCalls.WithLabelValues(provider, operation, outcome).Inc()
	m.providerLatency.WithLabelValues(provider, operation).Observe(duration.Seconds())
}

// NewCacheMetrics creates cache metrics for one backend, exported through this registry
func (m *PrometheusMetrics) NewCacheMetrics(cacheType string) *CacheMetricsAdapter {
	return &CacheMetricsAdapter{
		cacheType:  cacheType,
		collectors: m.cache,
	}
}
