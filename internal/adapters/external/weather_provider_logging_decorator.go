package external

import (
	"context"
	"time"

	"forecastapi.app/internal/ports"
)

// WeatherProviderLoggingDecorator decorates weather providers with structured logging
type WeatherProviderLoggingDecorator struct {
	provider ports.WeatherProvider
	logger   ports.Logger
}

// NewWeatherProviderLoggingDecorator creates a new logging decorator for weather providers
func NewWeatherProviderLoggingDecorator(provider ports.WeatherProvider, logger ports.Logger) *WeatherProviderLoggingDecorator {
	return &WeatherProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// GetCurrentWeather wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) GetCurrentWeather(ctx context.Context, city string) (*ports.CurrentWeatherData, error) {
	providerName := d.provider.GetProviderName()
	d.logRequest(providerName, "current", city)

	startTime := time.Now()
	weatherData, err := d.provider.GetCurrentWeather(ctx, city)
	duration := time.Since(startTime)

	if err != nil {
		d.logFailure(providerName, "current", city, duration, err)
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("provider", providerName),
		ports.F("city", city),
		ports.F("event", "response"),
		ports.F("operation", "current"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("temperature", weatherData.Temperature),
		ports.F("humidity", weatherData.Humidity),
		ports.F("description", weatherData.Description))

	return weatherData, nil
}

// GetForecast wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) GetForecast(ctx context.Context, city string) (*ports.ForecastData, error) {
	providerName := d.provider.GetProviderName()
	d.logRequest(providerName, "forecast", city)

	startTime := time.Now()
	forecastData, err := d.provider.GetForecast(ctx, city)
	duration := time.Since(startTime)

	if err != nil {
		d.logFailure(providerName, "forecast", city, duration, err)
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("provider", providerName),
		ports.F("city", city),
		ports.F("event", "response"),
		ports.F("operation", "forecast"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("samples", len(forecastData.Samples)),
		ports.F("timezone_offset", forecastData.TimezoneOffset))

	return forecastData, nil
}

// GetProviderName returns the name of the wrapped provider
func (d *WeatherProviderLoggingDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}

func (d *WeatherProviderLoggingDecorator) logRequest(providerName, operation, city string) {
	d.logger.Info("Weather API request started",
		ports.F("provider", providerName),
		ports.F("city", city),
		ports.F("event", "request"),
		ports.F("operation", operation))
}

func (d *WeatherProviderLoggingDecorator) logFailure(providerName, operation, city string, duration time.Duration, err error) {
	d.logger.Error("Weather API request failed",
		ports.F("provider", providerName),
		ports.F("city", city),
		ports.F("event", "error"),
		ports.F("operation", operation),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("error", err.Error()))
}

// WeatherProviderManagerLoggingDecorator decorates the provider manager with logging
type WeatherProviderManagerLoggingDecorator struct {
	manager ports.WeatherProviderManager
	logger  ports.Logger
}

// NewWeatherProviderManagerLoggingDecorator creates a new logging decorator for weather provider manager
func NewWeatherProviderManagerLoggingDecorator(manager ports.WeatherProviderManager, logger ports.Logger) *WeatherProviderManagerLoggingDecorator {
	return &WeatherProviderManagerLoggingDecorator{
		manager: manager,
		logger:  logger,
	}
}

// GetCurrentWeather wraps the chain call with structured logging
func (d *WeatherProviderManagerLoggingDecorator) GetCurrentWeather(ctx context.Context, city string) (*ports.CurrentWeatherData, error) {
	d.logStart("current", city)

	startTime := time.Now()
	weatherData, err := d.manager.GetCurrentWeather(ctx, city)
	duration := time.Since(startTime)

	if err != nil {
		d.logFailure("current", city, duration, err)
		return nil, err
	}

	d.logger.Info("Weather provider chain completed",
		ports.F("city", city),
		ports.F("event", "chain_success"),
		ports.F("operation", "current"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("temperature", weatherData.Temperature))

	return weatherData, nil
}

// GetForecast wraps the chain call with structured logging
func (d *WeatherProviderManagerLoggingDecorator) GetForecast(ctx context.Context, city string) (*ports.ForecastData, error) {
	d.logStart("forecast", city)

	startTime := time.Now()
	forecastData, err := d.manager.GetForecast(ctx, city)
	duration := time.Since(startTime)

	if err != nil {
		d.logFailure("forecast", city, duration, err)
		return nil, err
	}

	d.logger.Info("Weather provider chain completed",
		ports.F("city", city),
		ports.F("event", "chain_success"),
		ports.F("operation", "forecast"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("provider", forecastData.Provider))

	return forecastData, nil
}

// GetProviderInfo delegates to the wrapped manager
func (d *WeatherProviderManagerLoggingDecorator) GetProviderInfo() map[string]interface{} {
	info := d.manager.GetProviderInfo()
	info["logging_enabled"] = true
	return info
}

func (d *WeatherProviderManagerLoggingDecorator) logStart(operation, city string) {
	d.logger.Info("Weather provider chain started",
		ports.F("city", city),
		ports.F("event", "chain_start"),
		ports.F("operation", operation))
}

func (d *WeatherProviderManagerLoggingDecorator) logFailure(operation, city string, duration time.Duration, err error) {
	d.logger.Error("Weather provider chain failed",
		ports.F("city", city),
		ports.F("event", "chain_error"),
		ports.F("operation", operation),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("error", err.Error()))
}
