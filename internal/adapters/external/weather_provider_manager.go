package external

import (
	"context"
	"fmt"
	"time"

	"forecastapi.app/internal/ports"
	"forecastapi.app/pkg/errors"
)

// WeatherProviderManagerAdapter implements Chain of Responsibility pattern for weather providers.
// Providers are tried in order until one succeeds; a NotFound answer ends the chain
// because another provider will not know the city either.
type WeatherProviderManagerAdapter struct {
	providers []ports.WeatherProvider
	logger    ports.Logger
}

// ProviderManagerConfig holds configuration for creating the provider manager
type ProviderManagerConfig struct {
	WeatherAPIKey     string
	WeatherAPIBaseURL string
	OpenWeatherKey    string
	OpenWeatherURL    string
	ForecastDays      int
	RequestTimeout    time.Duration
	ProviderOrder     []string
	Logger            ports.Logger

	// Optional per-provider decorators, applied innermost first
	TrafficLogger  ports.Logger
	Metrics        ports.ProviderMetrics
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewWeatherProviderManagerAdapter builds the configured providers, decorates them and
// chains them in the configured order
func NewWeatherProviderManagerAdapter(config ProviderManagerConfig) *WeatherProviderManagerAdapter {
	available := createProviderMap(config)

	var providers []ports.WeatherProvider
	for _, providerName := range config.ProviderOrder {
		if provider, exists := available[providerName]; exists {
			providers = append(providers, decorateProvider(provider, config))
			delete(available, providerName)
		}
	}

	// Keyed providers missing from the order still serve as a last resort
	for _, providerName := range []string{"openweathermap", "weatherapi"} {
		if provider, exists := available[providerName]; exists {
			providers = append(providers, decorateProvider(provider, config))
		}
	}

	return NewWeatherProviderChain(providers, config.Logger)
}

// NewWeatherProviderChain chains already constructed providers
func NewWeatherProviderChain(providers []ports.WeatherProvider, logger ports.Logger) *WeatherProviderManagerAdapter {
	return &WeatherProviderManagerAdapter{
		providers: providers,
		logger:    logger,
	}
}

func createProviderMap(config ProviderManagerConfig) map[string]ports.WeatherProvider {
	providers := make(map[string]ports.WeatherProvider)

	if config.WeatherAPIKey != "" {
		providers["weatherapi"] = NewWeatherAPIProviderAdapter(WeatherAPIProviderParams{
			APIKey:       config.WeatherAPIKey,
			BaseURL:      config.WeatherAPIBaseURL,
			ForecastDays: config.ForecastDays,
			Timeout:      config.RequestTimeout,
			Logger:       config.Logger,
		})
	}

	if config.OpenWeatherKey != "" {
		providers["openweathermap"] = NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
			APIKey:  config.OpenWeatherKey,
			BaseURL: config.OpenWeatherURL,
			Timeout: config.RequestTimeout,
			Logger:  config.Logger,
		})
	}

	if config.Logger != nil {
		for name := range providers {
			config.Logger.Debug("Created weather provider", ports.F("provider", name))
		}
	}

	return providers
}

func decorateProvider(provider ports.WeatherProvider, config ProviderManagerConfig) ports.WeatherProvider {
	if config.TrafficLogger != nil {
		provider = NewWeatherProviderLoggingDecorator(provider, config.TrafficLogger)
	}
	if config.Metrics != nil {
		provider = NewWeatherProviderMetricsDecorator(provider, config.Metrics)
	}
	if config.RateLimitRPS > 0 {
		provider = NewRateLimitedWeatherProvider(provider, config.RateLimitRPS, config.RateLimitBurst)
	}
	return provider
}

// GetCurrentWeather tries each provider until one returns current conditions
func (m *WeatherProviderManagerAdapter) GetCurrentWeather(ctx context.Context, city string) (*ports.CurrentWeatherData, error) {
	return tryProviders(ctx, m, city, "current", func(p ports.WeatherProvider) (*ports.CurrentWeatherData, error) {
		return p.GetCurrentWeather(ctx, city)
	})
}

// GetForecast tries each provider until one returns a forecast series
func (m *WeatherProviderManagerAdapter) GetForecast(ctx context.Context, city string) (*ports.ForecastData, error) {
	return tryProviders(ctx, m, city, "forecast", func(p ports.WeatherProvider) (*ports.ForecastData, error) {
		return p.GetForecast(ctx, city)
	})
}

func tryProviders[T any](ctx context.Context, m *WeatherProviderManagerAdapter, city, operation string, call func(ports.WeatherProvider) (*T, error)) (*T, error) {
	if len(m.providers) == 0 {
		return nil, errors.NewExternalAPIError("no weather providers configured", nil)
	}

	var lastErr error
	for i, provider := range m.providers {
		providerName := provider.GetProviderName()

		m.debug("Trying weather provider",
			ports.F("provider", providerName),
			ports.F("operation", operation),
			ports.F("attempt", i+1),
			ports.F("city", city))

		result, err := call(provider)
		if err == nil {
			return result, nil
		}

		if errors.IsNotFoundError(err) {
			return nil, err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.NewExternalAPIError("weather request canceled", ctxErr)
		}

		lastErr = err
		if m.logger != nil {
			m.logger.Warn("Weather provider failed, trying next",
				ports.F("provider", providerName),
				ports.F("operation", operation),
				ports.F("error", err.Error()),
				ports.F("city", city))
		}
	}

	if m.logger != nil {
		m.logger.Error("All weather providers failed",
			ports.F("city", city),
			ports.F("operation", operation),
			ports.F("providers_tried", len(m.providers)),
			ports.F("last_error", lastErr.Error()))
	}

	return nil, fmt.Errorf("all weather providers failed (tried %d providers): %w", len(m.providers), lastErr)
}

func (m *WeatherProviderManagerAdapter) debug(msg string, fields ...ports.Field) {
	if m.logger != nil {
		m.logger.Debug(msg, fields...)
	}
}

// GetProviderInfo returns information about configured providers
func (m *WeatherProviderManagerAdapter) GetProviderInfo() map[string]interface{} {
	providerNames := make([]string, len(m.providers))
	for i, provider := range m.providers {
		providerNames[i] = provider.GetProviderName()
	}

	return map[string]interface{}{
		"total_providers":  len(m.providers),
		"provider_order":   providerNames,
		"chain_enabled":    true,
		"fallback_enabled": len(m.providers) > 1,
	}
}
