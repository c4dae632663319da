package infrastructure

import (
	"context"

	"forecastapi.app/internal/ports"
)

// CacheHealthChecker reports the configured cache backend and pings it when it is remote
type CacheHealthChecker struct {
	cacheType string
	cache     ports.CacheProvider
}

// NewCacheHealthChecker creates a new cache health checker
func NewCacheHealthChecker(cacheType string, cache ports.CacheProvider) *CacheHealthChecker {
	return &CacheHealthChecker{cacheType: cacheType, cache: cache}
}

// Check verifies cache connectivity
func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Status:    "healthy",
		Details: map[string]interface{}{
			"type": c.cacheType,
		},
	}

	if c.cache == nil {
		status.Status = "unhealthy"
		status.Error = "cache provider is not available"
		return status
	}

	if pinger, ok := c.cache.(ports.CachePinger); ok {
		if err := pinger.Ping(ctx); err != nil {
			status.Status = "unhealthy"
			status.Error = err.Error()
		}
	}

	return status
}

// WeatherAPIHealthChecker reports whether a provider chain is configured
type WeatherAPIHealthChecker struct {
	weatherProvider ports.WeatherProviderManager
}

// NewWeatherAPIHealthChecker creates a new weather API health checker
func NewWeatherAPIHealthChecker(weatherProvider ports.WeatherProviderManager) *WeatherAPIHealthChecker {
	return &WeatherAPIHealthChecker{weatherProvider: weatherProvider}
}

// Check verifies a weather provider is wired. It does not call upstream, so quota is
// not spent on health probes.
func (w *WeatherAPIHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weatherAPI",
		Status:    "healthy",
		Details: map[string]interface{}{
			"connected": true,
		},
	}

	if w.weatherProvider == nil {
		status.Status = "unhealthy"
		status.Error = "weather provider is not available"
		status.Details["connected"] = false
		return status
	}

	info := w.weatherProvider.GetProviderInfo()
	if order, ok := info["provider_order"]; ok {
		status.Details["provider_order"] = order
	}
	if count, ok := info["total_providers"].(int); ok && count == 0 {
		status.Status = "unhealthy"
		status.Error = "no weather providers configured"
		status.Details["connected"] = false
	}

	return status
}
