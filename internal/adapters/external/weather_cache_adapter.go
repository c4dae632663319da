package external

import (
	"context"
	"encoding/json"
	"time"

	"forecastapi.app/internal/ports"
	"forecastapi.app/pkg/errors"
)

// WeatherCacheAdapter bridges generic CacheProvider to weather-specific WeatherCache
type WeatherCacheAdapter struct {
	cacheProvider ports.CacheProvider
}

// NewWeatherCacheAdapter creates a weather cache adapter using generic cache provider
func NewWeatherCacheAdapter(cacheProvider ports.CacheProvider) *WeatherCacheAdapter {
	return &WeatherCacheAdapter{
		cacheProvider: cacheProvider,
	}
}

// GetCurrent retrieves a current conditions snapshot from cache
func (w *WeatherCacheAdapter) GetCurrent(ctx context.Context, key string) (*ports.CurrentWeatherData, error) {
	var data ports.CurrentWeatherData
	if err := w.get(ctx, key, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// SetCurrent stores a current conditions snapshot
func (w *WeatherCacheAdapter) SetCurrent(ctx context.Context, key string, data *ports.CurrentWeatherData, ttl time.Duration) error {
	if data == nil {
		return errors.NewValidationError("weather data cannot be nil")
	}
	return w.set(ctx, key, data, ttl)
}

// GetForecast retrieves a forecast series from cache
func (w *WeatherCacheAdapter) GetForecast(ctx context.Context, key string) (*ports.ForecastData, error) {
	var data ports.ForecastData
	if err := w.get(ctx, key, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// SetForecast stores a forecast series
func (w *WeatherCacheAdapter) SetForecast(ctx context.Context, key string, data *ports.ForecastData, ttl time.Duration) error {
	if data == nil {
		return errors.NewValidationError("forecast data cannot be nil")
	}
	return w.set(ctx, key, data, ttl)
}

func (w *WeatherCacheAdapter) get(ctx context.Context, key string, out interface{}) error {
	raw, err := w.cacheProvider.Get(ctx, key)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errors.NewCacheError("failed to deserialize cached weather data", err)
	}
	return nil
}

func (w *WeatherCacheAdapter) set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.NewCacheError("failed to serialize weather data", err)
	}
	return w.cacheProvider.Set(ctx, key, raw, ttl)
}
