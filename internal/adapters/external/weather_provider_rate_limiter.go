package external

import (
	"context"

	"golang.org/x/time/rate"

	"forecastapi.app/internal/ports"
	"forecastapi.app/pkg/errors"
)

// RateLimitedWeatherProvider wraps a WeatherProvider with rate limiting.
// One limiter covers both operations since provider quotas are per API key.
type RateLimitedWeatherProvider struct {
	provider ports.WeatherProvider
	limiter  *rate.Limiter
}

// NewRateLimitedWeatherProvider creates a new rate limited weather provider.
// rps may be fractional; burst below 1 is raised to 1 so a request can ever pass.
func NewRateLimitedWeatherProvider(provider ports.WeatherProvider, rps float64, burst int) *RateLimitedWeatherProvider {
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedWeatherProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// GetCurrentWeather waits for a token and forwards the call
func (r *RateLimitedWeatherProvider) GetCurrentWeather(ctx context.Context, city string) (*ports.CurrentWeatherData, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.provider.GetCurrentWeather(ctx, city)
}

// GetForecast waits for a token and forwards the call
func (r *RateLimitedWeatherProvider) GetForecast(ctx context.Context, city string) (*ports.ForecastData, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.provider.GetForecast(ctx, city)
}

// GetProviderName returns the wrapped provider name
func (r *RateLimitedWeatherProvider) GetProviderName() string {
	return r.provider.GetProviderName()
}

func (r *RateLimitedWeatherProvider) wait(ctx context.Context) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return errors.NewExternalAPIError("rate limit wait canceled for "+r.provider.GetProviderName(), err)
	}
	return nil
}
