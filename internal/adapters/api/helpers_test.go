package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"forecastapi.app/internal/core/location"
	"forecastapi.app/internal/core/weather"
	"forecastapi.app/internal/mocks"
	"forecastapi.app/internal/ports"
)

type testServer struct {
	router        *gin.Engine
	provider      *mocks.WeatherProviderManager
	cityValidator *mocks.CityValidator
	users         *mocks.UserRepository
	favorites     *mocks.FavoriteCityRepository
	metrics       *mocks.ForecastMetrics
	weatherInfo   *mocks.WeatherMetrics
	health        *mocks.SystemHealthChecker
}

// allowLogging accepts log calls with up to three fields
func allowLogging(logger *mocks.Logger) {
	var fields []interface{}
	for i := 0; i < 4; i++ {
		logger.EXPECT().Debug(mock.Anything, fields...).Maybe()
		logger.EXPECT().Info(mock.Anything, fields...).Maybe()
		logger.EXPECT().Warn(mock.Anything, fields...).Maybe()
		logger.EXPECT().Error(mock.Anything, fields...).Maybe()
		fields = append(fields, mock.Anything)
	}
}

// newTestServer wires real use cases over mocked ports, with caching disabled
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ts := &testServer{
		provider:      mocks.NewWeatherProviderManager(t),
		cityValidator: mocks.NewCityValidator(t),
		users:         mocks.NewUserRepository(t),
		favorites:     mocks.NewFavoriteCityRepository(t),
		metrics:       mocks.NewForecastMetrics(t),
		weatherInfo:   mocks.NewWeatherMetrics(t),
		health:        mocks.NewSystemHealthChecker(t),
	}

	logger := mocks.NewLogger(t)
	allowLogging(logger)

	config := mocks.NewConfigProvider(t)
	config.EXPECT().GetWeatherConfig().Return(ports.WeatherConfig{EnableCache: false, CacheTTL: time.Minute}).Maybe()
	config.EXPECT().GetForecastConfig().Return(ports.ForecastConfig{
		DefaultHours: 8,
		MaxHours:     40,
		DefaultDays:  5,
		MaxDays:      7,
	}).Maybe()

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		WeatherProvider: ts.provider,
		Cache:           mocks.NewWeatherCache(t),
		Config:          config,
		Logger:          logger,
		Metrics:         ts.weatherInfo,
		ForecastMetrics: ts.metrics,
	})
	require.NoError(t, err)

	locationUseCase, err := location.NewUseCase(location.UseCaseDependencies{
		UserRepo:      ts.users,
		FavoriteRepo:  ts.favorites,
		CityValidator: ts.cityValidator,
		Catalog:       location.NewCatalog([]string{"London", "Londrina", "Lviv", "Lyon", "Kyiv"}, []string{"Kyiv", "Lviv"}),
		Logger:        logger,
	})
	require.NoError(t, err)

	server, err := NewHTTPServerAdapter(ServerOptions{
		Config:           ServerConfig{Port: 8080},
		WeatherUseCase:   weatherUseCase,
		LocationUseCase:  locationUseCase,
		MetricsCollector: metricsCollectorFunc{ts.weatherInfo},
		HealthChecker:    ts.health,
		Gatherer:         prometheus.NewRegistry(),
	})
	require.NoError(t, err)

	ts.router = server.GetRouter()
	return ts
}

// metricsCollectorFunc exposes WeatherMetrics the way the infrastructure collector does
type metricsCollectorFunc struct{ m ports.WeatherMetrics }

func (f metricsCollectorFunc) GetMetrics(_ context.Context) (map[string]interface{}, error) {
	stats, err := f.m.GetCacheMetrics()
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"weather": f.m.GetProviderInfo(),
		"cache": map[string]interface{}{
			"hits":   stats.Hits,
			"misses": stats.Misses,
		},
	}, nil
}

func (ts *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
