package external

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"forecastapi.app/internal/mocks"
	"forecastapi.app/internal/ports"
	"forecastapi.app/pkg/errors"
)

func TestWeatherProviderLoggingDecorator_Current(t *testing.T) {
	provider := &testWeatherProvider{
		name:    "test-provider",
		current: &ports.CurrentWeatherData{Temperature: 22.0, Humidity: 55, Description: "Test weather"},
	}
	logger := &testLogger{}

	decorator := NewWeatherProviderLoggingDecorator(provider, logger)
	result, err := decorator.GetCurrentWeather(context.Background(), "TestCity")

	require.NoError(t, err)
	assert.Equal(t, 22.0, result.Temperature)
	require.Len(t, logger.entries, 2)

	requestLog := logger.entries[0]
	assert.Equal(t, "INFO", requestLog.level)
	assert.Equal(t, "Weather API request started", requestLog.message)
	assert.Equal(t, "test-provider", requestLog.fields["provider"])
	assert.Equal(t, "current", requestLog.fields["operation"])

	responseLog := logger.entries[1]
	assert.Equal(t, "Weather API request completed", responseLog.message)
	assert.Equal(t, "response", responseLog.fields["event"])
	assert.Equal(t, 22.0, responseLog.fields["temperature"])
	assert.Equal(t, 55, responseLog.fields["humidity"])
	assert.Contains(t, responseLog.fields, "duration_ms")

	assert.Equal(t, "test-provider", decorator.GetProviderName())
}

func TestWeatherProviderLoggingDecorator_Forecast(t *testing.T) {
	provider := &testWeatherProvider{
		name:     "test-provider",
		forecast: &ports.ForecastData{Samples: make([]ports.ForecastSample, 40), TimezoneOffset: 3600},
	}
	logger := &testLogger{}

	decorator := NewWeatherProviderLoggingDecorator(provider, logger)
	_, err := decorator.GetForecast(context.Background(), "Berlin")

	require.NoError(t, err)
	require.Len(t, logger.entries, 2)
	assert.Equal(t, 40, logger.entries[1].fields["samples"])
	assert.Equal(t, 3600, logger.entries[1].fields["timezone_offset"])
}

func TestWeatherProviderLoggingDecorator_Error(t *testing.T) {
	provider := &testWeatherProvider{name: "error-provider", err: stderrors.New("API rate limit exceeded")}
	logger := &testLogger{}

	decorator := NewWeatherProviderLoggingDecorator(provider, logger)
	result, err := decorator.GetForecast(context.Background(), "InvalidCity")

	assert.EqualError(t, err, "API rate limit exceeded")
	assert.Nil(t, result)

	errorLogs := logger.levelEntries("ERROR")
	require.Len(t, errorLogs, 1)
	assert.Equal(t, "Weather API request failed", errorLogs[0].message)
	assert.Equal(t, "API rate limit exceeded", errorLogs[0].fields["error"])
}

func TestWeatherProviderManagerLoggingDecorator(t *testing.T) {
	manager := mocks.NewWeatherProviderManager(t)
	manager.EXPECT().GetCurrentWeather(mock.Anything, "Rome").Return(&ports.CurrentWeatherData{City: "Rome", Temperature: 20}, nil).Once()
	manager.EXPECT().GetForecast(mock.Anything, "Rome").Return(nil, errors.NewExternalAPIError("down", nil)).Once()
	manager.EXPECT().GetProviderInfo().Return(map[string]interface{}{"total_providers": 1}).Once()

	logger := &testLogger{}
	decorator := NewWeatherProviderManagerLoggingDecorator(manager, logger)

	current, err := decorator.GetCurrentWeather(context.Background(), "Rome")
	require.NoError(t, err)
	assert.Equal(t, "Rome", current.City)

	_, err = decorator.GetForecast(context.Background(), "Rome")
	assert.True(t, errors.IsExternalAPIError(err))

	info := decorator.GetProviderInfo()
	assert.Equal(t, true, info["logging_enabled"])

	assert.Len(t, logger.levelEntries("INFO"), 3)
	failures := logger.levelEntries("ERROR")
	require.Len(t, failures, 1)
	assert.Equal(t, "chain_error", failures[0].fields["event"])
}

func TestRateLimitedWeatherProvider(t *testing.T) {
	t.Run("forwards within budget", func(t *testing.T) {
		provider := &testWeatherProvider{name: "limited", current: &ports.CurrentWeatherData{City: "Oslo"}}
		limited := NewRateLimitedWeatherProvider(provider, 1, 2)

		for i := 0; i < 2; i++ {
			_, err := limited.GetCurrentWeather(context.Background(), "Oslo")
			require.NoError(t, err)
		}
		assert.Equal(t, 2, provider.Calls())
		assert.Equal(t, "limited", limited.GetProviderName())
	})

	t.Run("gives up when context expires", func(t *testing.T) {
		provider := &testWeatherProvider{name: "limited", forecast: &ports.ForecastData{}}
		limited := NewRateLimitedWeatherProvider(provider, 0.1, 1)

		_, err := limited.GetForecast(context.Background(), "Oslo")
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err = limited.GetForecast(ctx, "Oslo")

		require.Error(t, err)
		assert.True(t, errors.IsExternalAPIError(err))
		assert.Equal(t, 1, provider.Calls())
	})

	t.Run("zero burst still admits requests", func(t *testing.T) {
		provider := &testWeatherProvider{name: "limited", current: &ports.CurrentWeatherData{}}
		limited := NewRateLimitedWeatherProvider(provider, 10, 0)

		_, err := limited.GetCurrentWeather(context.Background(), "Oslo")

		assert.NoError(t, err)
	})
}

func TestWeatherProviderMetricsDecorator(t *testing.T) {
	metrics := mocks.NewProviderMetrics(t)
	metrics.EXPECT().RecordProviderCall("owm", "current", true, mock.AnythingOfType("time.Duration")).Return().Once()
	metrics.EXPECT().RecordProviderCall("owm", "forecast", false, mock.AnythingOfType("time.Duration")).Return().Once()

	provider := &testWeatherProvider{name: "owm", current: &ports.CurrentWeatherData{}}
	decorator := NewWeatherProviderMetricsDecorator(provider, metrics)

	_, err := decorator.GetCurrentWeather(context.Background(), "Lima")
	require.NoError(t, err)

	provider.err = stderrors.New("boom")
	_, err = decorator.GetForecast(context.Background(), "Lima")
	assert.Error(t, err)

	assert.Equal(t, "owm", decorator.GetProviderName())
}
