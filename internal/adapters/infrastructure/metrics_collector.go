package infrastructure

import (
	"context"
	"time"

	"forecastapi.app/internal/ports"
)

// MetricsCollectorAdapter aggregates provider and cache state for the JSON metrics endpoint
type MetricsCollectorAdapter struct {
	weatherMetrics ports.WeatherMetrics
	startedAt      time.Time
}

// MetricsCollectorConfig holds configuration for creating the metrics collector
type MetricsCollectorConfig struct {
	WeatherMetrics ports.WeatherMetrics
	StartedAt      time.Time
}

// NewMetricsCollectorAdapter creates a new metrics collector adapter
func NewMetricsCollectorAdapter(config MetricsCollectorConfig) *MetricsCollectorAdapter {
	startedAt := config.StartedAt
	if startedAt.IsZero() {
		startedAt = time.Now()
	}
	return &MetricsCollectorAdapter{
		weatherMetrics: config.WeatherMetrics,
		startedAt:      startedAt,
	}
}

// GetMetrics returns aggregated metrics from all monitored services
func (m *MetricsCollectorAdapter) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	metrics := map[string]interface{}{
		"uptime_seconds": int64(time.Since(m.startedAt).Seconds()),
	}
	if m.weatherMetrics == nil {
		return metrics, nil
	}

	metrics["weather"] = m.weatherMetrics.GetProviderInfo()

	cacheStats, err := m.weatherMetrics.GetCacheMetrics()
	if err != nil {
		return nil, err
	}
	metrics["cache"] = map[string]interface{}{
		"hits":      cacheStats.Hits,
		"misses":    cacheStats.Misses,
		"total_ops": cacheStats.TotalOps,
		"hit_ratio": cacheStats.HitRatio,
		"updated":   cacheStats.LastUpdated,
	}

	return metrics, nil
}
