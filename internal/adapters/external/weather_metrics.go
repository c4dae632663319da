package external

import (
	"time"

	"forecastapi.app/internal/ports"
)

// WeatherMetricsAdapter implements WeatherMetrics port
type WeatherMetricsAdapter struct {
	cacheMetrics    ports.CacheMetrics
	providerManager ports.WeatherProviderManager
	cacheEnabled    bool
}

// NewWeatherMetricsAdapter creates a new weather metrics adapter. cacheMetrics may be nil
// when caching is disabled.
func NewWeatherMetricsAdapter(cacheMetrics ports.CacheMetrics, manager ports.WeatherProviderManager, cacheEnabled bool) *WeatherMetricsAdapter {
	return &WeatherMetricsAdapter{
		cacheMetrics:    cacheMetrics,
		providerManager: manager,
		cacheEnabled:    cacheEnabled,
	}
}

// GetProviderInfo returns provider chain information plus cache status
func (m *WeatherMetricsAdapter) GetProviderInfo() map[string]interface{} {
	result := map[string]interface{}{
		"status":        "active",
		"cache_enabled": m.cacheEnabled,
	}

	for key, value := range m.providerManager.GetProviderInfo() {
		result[key] = value
	}

	if order, ok := result["provider_order"].([]string); ok && len(order) > 0 {
		result["primary_provider"] = order[0]
	}

	return result
}

// GetCacheMetrics returns cache performance metrics
func (m *WeatherMetricsAdapter) GetCacheMetrics() (ports.CacheStats, error) {
	if m.cacheMetrics == nil {
		return ports.CacheStats{LastUpdated: time.Now()}, nil
	}
	return m.cacheMetrics.GetStats(), nil
}
