package external

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"forecastapi.app/internal/adapters/infrastructure"
	"forecastapi.app/internal/mocks"
	"forecastapi.app/internal/ports"
	"forecastapi.app/pkg/errors"
)

func TestWeatherProviderManager_ChainOfResponsibility(t *testing.T) {
	failing := &testWeatherProvider{name: "primary", err: errors.NewExternalAPIError("primary down", nil)}
	healthy := &testWeatherProvider{
		name:     "secondary",
		current:  &ports.CurrentWeatherData{City: "London", Temperature: 12},
		forecast: &ports.ForecastData{City: "London", Provider: "secondary"},
	}

	tests := []struct {
		name          string
		providers     []ports.WeatherProvider
		expectError   bool
		expectedCalls map[*testWeatherProvider]int
	}{
		{
			name:          "first provider succeeds",
			providers:     []ports.WeatherProvider{healthy},
			expectedCalls: map[*testWeatherProvider]int{healthy: 2},
		},
		{
			name:          "falls back to next provider",
			providers:     []ports.WeatherProvider{failing, healthy},
			expectedCalls: map[*testWeatherProvider]int{failing: 2, healthy: 2},
		},
		{
			name:        "all providers fail",
			providers:   []ports.WeatherProvider{failing},
			expectError: true,
		},
		{
			name:        "no providers configured",
			providers:   nil,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			failing.calls, healthy.calls = 0, 0
			manager := NewWeatherProviderChain(tt.providers, &testLogger{})

			current, currentErr := manager.GetCurrentWeather(context.Background(), "London")
			forecast, forecastErr := manager.GetForecast(context.Background(), "London")

			if tt.expectError {
				assert.Error(t, currentErr)
				assert.Error(t, forecastErr)
				assert.Nil(t, current)
				assert.Nil(t, forecast)
				return
			}

			require.NoError(t, currentErr)
			require.NoError(t, forecastErr)
			assert.Equal(t, 12.0, current.Temperature)
			assert.Equal(t, "secondary", forecast.Provider)
			for provider, calls := range tt.expectedCalls {
				assert.Equal(t, calls, provider.Calls(), provider.name)
			}
		})
	}
}

func TestWeatherProviderManager_NotFoundStopsChain(t *testing.T) {
	unknown := &testWeatherProvider{name: "primary", err: errors.NewNotFoundError("city not found")}
	fallback := &testWeatherProvider{name: "secondary", current: &ports.CurrentWeatherData{City: "Atlantis"}}

	manager := NewWeatherProviderChain([]ports.WeatherProvider{unknown, fallback}, &testLogger{})

	_, err := manager.GetCurrentWeather(context.Background(), "Atlantis")

	assert.True(t, errors.IsNotFoundError(err))
	assert.Equal(t, 0, fallback.Calls())
}

func TestWeatherProviderManager_CanceledContextStopsChain(t *testing.T) {
	slow := &testWeatherProvider{name: "slow", delay: time.Second}
	fallback := &testWeatherProvider{name: "fallback", current: &ports.CurrentWeatherData{City: "London"}}

	manager := NewWeatherProviderChain([]ports.WeatherProvider{slow, fallback}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := manager.GetCurrentWeather(ctx, "London")

	require.Error(t, err)
	assert.True(t, stderrors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, 0, fallback.Calls())
}

func TestWeatherProviderManager_LogsFallback(t *testing.T) {
	mockLogger := mocks.NewLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return().Times(2)
	mockLogger.EXPECT().Warn("Weather provider failed, trying next", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return().Once()

	manager := NewWeatherProviderChain([]ports.WeatherProvider{
		&testWeatherProvider{name: "primary", err: stderrors.New("timeout")},
		&testWeatherProvider{name: "secondary", forecast: &ports.ForecastData{City: "Paris"}},
	}, mockLogger)

	forecast, err := manager.GetForecast(context.Background(), "Paris")

	require.NoError(t, err)
	assert.Equal(t, "Paris", forecast.City)
}

func TestWeatherProviderManager_AllFailedLogsError(t *testing.T) {
	logger := &testLogger{}
	manager := NewWeatherProviderChain([]ports.WeatherProvider{
		&testWeatherProvider{name: "a", err: stderrors.New("boom a")},
		&testWeatherProvider{name: "b", err: stderrors.New("boom b")},
	}, logger)

	_, err := manager.GetForecast(context.Background(), "Paris")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "tried 2 providers")
	assert.Contains(t, err.Error(), "boom b")
	errorsLogged := logger.levelEntries("ERROR")
	require.Len(t, errorsLogged, 1)
	assert.Equal(t, "forecast", errorsLogged[0].fields["operation"])
}

func TestWeatherProviderManager_FromConfig(t *testing.T) {
	owm := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer owm.Close()

	weatherAPI := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(weatherAPICurrentPayload))
		assert.NoError(t, err)
	}))
	defer weatherAPI.Close()

	metrics := infrastructure.NewPrometheusMetrics()
	trafficLogger := &testLogger{}

	manager := NewWeatherProviderManagerAdapter(ProviderManagerConfig{
		WeatherAPIKey:     "wa-key",
		WeatherAPIBaseURL: weatherAPI.URL,
		OpenWeatherKey:    "owm-key",
		OpenWeatherURL:    owm.URL,
		ProviderOrder:     []string{"openweathermap", "weatherapi"},
		Logger:            &infrastructure.SlogLoggerAdapter{},
		TrafficLogger:     trafficLogger,
		Metrics:           metrics,
		RateLimitRPS:      100,
		RateLimitBurst:    10,
	})

	info := manager.GetProviderInfo()
	assert.Equal(t, []string{"openweathermap", "weatherapi"}, info["provider_order"])
	assert.Equal(t, true, info["fallback_enabled"])

	weather, err := manager.GetCurrentWeather(context.Background(), "Tokyo")

	require.NoError(t, err)
	assert.Equal(t, "Tokyo", weather.City)
	assert.Len(t, trafficLogger.levelEntries("ERROR"), 1, "openweathermap failure is logged")

	families, err := metrics.Registry().Gather()
	require.NoError(t, err)
	var calls float64
	for _, family := range families {
		if family.GetName() == "weather_provider_requests_total" {
			for _, metric := range family.GetMetric() {
				calls += metric.GetCounter().GetValue()
			}
		}
	}
	assert.Equal(t, 2.0, calls)
}

func TestWeatherProviderManager_OrderFallsBackToKeyedProviders(t *testing.T) {
	manager := NewWeatherProviderManagerAdapter(ProviderManagerConfig{
		WeatherAPIKey:  "wa-key",
		OpenWeatherKey: "owm-key",
		ProviderOrder:  []string{"weatherapi"},
	})

	info := manager.GetProviderInfo()

	assert.Equal(t, []string{"weatherapi", "openweathermap"}, info["provider_order"])
	assert.Equal(t, 2, info["total_providers"])
}
