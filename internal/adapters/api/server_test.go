package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"forecastapi.app/internal/core/forecast"
	"forecastapi.app/internal/core/location"
	"forecastapi.app/internal/core/weather"
	"forecastapi.app/internal/mocks"
	"forecastapi.app/internal/ports"
)

type stubWeatherUseCase struct{}

func (stubWeatherUseCase) GetOverview(context.Context, weather.OverviewRequest) (*forecast.View, error) {
	return &forecast.View{}, nil
}

func (stubWeatherUseCase) Retarget(view forecast.View, _ forecast.Unit) forecast.View {
	return view
}

func TestNewHTTPServerAdapter_Validation(t *testing.T) {
	locationUseCase, err := location.NewUseCase(location.UseCaseDependencies{
		UserRepo:      mocks.NewUserRepository(t),
		FavoriteRepo:  mocks.NewFavoriteCityRepository(t),
		CityValidator: mocks.NewCityValidator(t),
		Logger:        mocks.NewLogger(t),
	})
	require.NoError(t, err)

	valid := ServerOptions{
		WeatherUseCase:   stubWeatherUseCase{},
		LocationUseCase:  locationUseCase,
		MetricsCollector: metricsCollectorFunc{mocks.NewWeatherMetrics(t)},
		HealthChecker:    mocks.NewSystemHealthChecker(t),
	}

	tests := []struct {
		name   string
		modify func(opts *ServerOptions)
	}{
		{"MissingWeatherUseCase", func(opts *ServerOptions) { opts.WeatherUseCase = nil }},
		{"MissingLocationUseCase", func(opts *ServerOptions) { opts.LocationUseCase = nil }},
		{"MissingMetricsCollector", func(opts *ServerOptions) { opts.MetricsCollector = nil }},
		{"MissingHealthChecker", func(opts *ServerOptions) { opts.HealthChecker = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := valid
			tt.modify(&opts)

			server, err := NewHTTPServerAdapter(opts)

			assert.Error(t, err)
			assert.Nil(t, server)
		})
	}

	server, err := NewHTTPServerAdapter(valid)
	require.NoError(t, err)
	assert.NotNil(t, server.GetRouter())
}

func TestRequestIDMiddleware(t *testing.T) {
	ts := newTestServer(t)

	t.Run("AssignsID", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/api/cities/suggest?q=ly", nil)

		assert.Len(t, w.Header().Get(requestIDHeader), 36)
	})

	t.Run("KeepsValidID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/cities/suggest?q=ly", nil)
		req.Header.Set(requestIDHeader, "1b4e28ba-2fa1-11d2-883f-0016d3cca427")
		w := httptest.NewRecorder()

		ts.router.ServeHTTP(w, req)

		assert.Equal(t, "1b4e28ba-2fa1-11d2-883f-0016d3cca427", w.Header().Get(requestIDHeader))
	})

	t.Run("ReplacesGarbage", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/cities/suggest?q=ly", nil)
		req.Header.Set(requestIDHeader, "not a uuid")
		w := httptest.NewRecorder()

		ts.router.ServeHTTP(w, req)

		assert.NotEqual(t, "not a uuid", w.Header().Get(requestIDHeader))
	})
}

func TestHealthEndpoint(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		ts := newTestServer(t)
		ts.health.EXPECT().CheckAll(mock.Anything).Return(map[string]ports.HealthStatus{
			"database": {Component: "database", Status: "healthy"},
			"cache":    {Component: "cache", Status: "healthy"},
		}).Once()

		w := ts.do(t, http.MethodGet, "/health", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var response HealthResponse
		decode(t, w, &response)
		assert.Equal(t, "healthy", response.Status)
		assert.Len(t, response.Components, 2)
	})

	t.Run("Degraded", func(t *testing.T) {
		ts := newTestServer(t)
		ts.health.EXPECT().CheckAll(mock.Anything).Return(map[string]ports.HealthStatus{
			"database": {Component: "database", Status: "healthy"},
			"cache":    {Component: "cache", Status: "unhealthy", Error: "connection refused"},
		}).Once()

		w := ts.do(t, http.MethodGet, "/health", nil)

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		var response HealthResponse
		decode(t, w, &response)
		assert.Equal(t, "unhealthy", response.Status)
		assert.Equal(t, "connection refused", response.Components["cache"].Error)
	})
}

func TestMetricsEndpoints(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		ts := newTestServer(t)
		ts.weatherInfo.EXPECT().GetCacheMetrics().Return(ports.CacheStats{Hits: 3, Misses: 1}, nil).Once()
		ts.weatherInfo.EXPECT().GetProviderInfo().Return(map[string]interface{}{"total_providers": 2}).Once()

		w := ts.do(t, http.MethodGet, "/api/metrics", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var response map[string]map[string]interface{}
		decode(t, w, &response)
		assert.Equal(t, float64(3), response["cache"]["hits"])
		assert.Equal(t, float64(2), response["weather"]["total_providers"])
	})

	t.Run("Prometheus", func(t *testing.T) {
		registry := prometheus.NewRegistry()
		counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "forecast_test_total", Help: "test"})
		registry.MustRegister(counter)
		counter.Inc()

		locationUseCase, err := location.NewUseCase(location.UseCaseDependencies{
			UserRepo:      mocks.NewUserRepository(t),
			FavoriteRepo:  mocks.NewFavoriteCityRepository(t),
			CityValidator: mocks.NewCityValidator(t),
			Logger:        mocks.NewLogger(t),
		})
		require.NoError(t, err)

		server, err := NewHTTPServerAdapter(ServerOptions{
			WeatherUseCase:   stubWeatherUseCase{},
			LocationUseCase:  locationUseCase,
			MetricsCollector: metricsCollectorFunc{mocks.NewWeatherMetrics(t)},
			HealthChecker:    mocks.NewSystemHealthChecker(t),
			Gatherer:         registry,
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		w := httptest.NewRecorder()
		server.GetRouter().ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "forecast_test_total 1")
	})
}
