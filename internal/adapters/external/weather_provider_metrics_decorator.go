package external

import (
	"context"
	"time"

	"forecastapi.app/internal/ports"
)

// WeatherProviderMetricsDecorator records call outcomes and latency per provider
type WeatherProviderMetricsDecorator struct {
	provider ports.WeatherProvider
	metrics  ports.ProviderMetrics
}

// NewWeatherProviderMetricsDecorator creates a metrics decorator for a weather provider
func NewWeatherProviderMetricsDecorator(provider ports.WeatherProvider, metrics ports.ProviderMetrics) *WeatherProviderMetricsDecorator {
	return &WeatherProviderMetricsDecorator{provider: provider, metrics: metrics}
}

// GetCurrentWeather forwards the call and records its outcome
func (d *WeatherProviderMetricsDecorator) GetCurrentWeather(ctx context.Context, city string) (*ports.CurrentWeatherData, error) {
	start := time.Now()
	data, err := d.provider.GetCurrentWeather(ctx, city)
	d.metrics.RecordProviderCall(d.provider.GetProviderName(), "current", err == nil, time.Since(start))
	return data, err
}

// GetForecast forwards the call and records its outcome
func (d *WeatherProviderMetricsDecorator) GetForecast(ctx context.Context, city string) (*ports.ForecastData, error) {
	start := time.Now()
	data, err := d.provider.GetForecast(ctx, city)
	d.metrics.RecordProviderCall(d.provider.GetProviderName(), "forecast", err == nil, time.Since(start))
	return data, err
}

// GetProviderName returns the wrapped provider name
func (d *WeatherProviderMetricsDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}
