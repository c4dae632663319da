package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forecastapi.app/internal/adapters/database"
	"forecastapi.app/internal/config"
	"forecastapi.app/internal/core/forecast"
	"forecastapi.app/internal/ports"
)

type fakeOpenWeatherMap struct {
	server        *httptest.Server
	currentCalls  atomic.Int32
	forecastCalls atomic.Int32
}

func newFakeOpenWeatherMap(t *testing.T) *fakeOpenWeatherMap {
	t.Helper()

	fake := &fakeOpenWeatherMap{}
	fake.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.EqualFold(r.URL.Query().Get("q"), "kyiv") {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/weather"):
			fake.currentCalls.Add(1)
			_, _ = w.Write([]byte(`{
				"coord": {"lat": 50.45, "lon": 30.52},
				"weather": [{"main": "Clouds", "description": "broken clouds", "icon": "04d"}],
				"main": {"temp": 20.4, "feels_like": 19.6, "temp_min": 18.0, "temp_max": 22.5, "pressure": 1012, "humidity": 55},
				"visibility": 10000,
				"wind": {"speed": 4.1},
				"clouds": {"all": 75},
				"dt": 1717056000,
				"sys": {"country": "UA", "sunrise": 1717034400, "sunset": 1717092000},
				"timezone": 10800,
				"name": "Kyiv"
			}`))
		case strings.HasSuffix(r.URL.Path, "/forecast"):
			fake.forecastCalls.Add(1)
			_, _ = w.Write(forecastPayload(t, 16))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(fake.server.Close)

	return fake
}

func forecastPayload(t *testing.T, n int) []byte {
	t.Helper()

	start := time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC)
	items := make([]map[string]interface{}, 0, n)
	for i := 0; i < n; i++ {
		ts := start.Add(time.Duration(i*3) * time.Hour)
		items = append(items, map[string]interface{}{
			"dt":      ts.Unix(),
			"dt_txt":  ts.Format("2006-01-02 15:04:05"),
			"main":    map[string]interface{}{"temp": 15 + i, "feels_like": 14 + i, "temp_min": 14 + i, "temp_max": 16 + i, "pressure": 1010, "humidity": 60},
			"weather": []map[string]string{{"main": "Rain", "description": "light rain", "icon": "10d"}},
			"pop":     0.4,
		})
	}

	raw, err := json.Marshal(map[string]interface{}{
		"list": items,
		"city": map[string]interface{}{
			"name":     "Kyiv",
			"country":  "UA",
			"coord":    map[string]float64{"lat": 50.45, "lon": 30.52},
			"timezone": 10800,
		},
	})
	require.NoError(t, err)
	return raw
}

func newTestApplication(t *testing.T, upstreamURL string) *Application {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8080},
		Database: config.DatabaseConfig{
			Driver:     "sqlite",
			SQLitePath: ":memory:",
		},
		Weather: config.WeatherConfig{
			OpenWeatherMapKey:     "test-key",
			OpenWeatherMapBaseURL: upstreamURL,
			ProviderOrder:         []string{"openweathermap"},
			EnableCache:           true,
			EnableLogging:         true,
			CacheTTLMinutes:       10,
			LogFilePath:           filepath.Join(t.TempDir(), "providers.log"),
			RateLimitRPS:          100,
			RateLimitBurst:        10,
			RequestTimeoutSeconds: 5,
			ForecastDays:          5,
		},
		Cache: config.CacheConfig{Type: config.CacheTypeMemory},
		Forecast: config.ForecastConfig{
			DefaultHours: 8,
			MaxHours:     40,
			DefaultDays:  5,
			MaxDays:      7,
		},
		Log: config.LogConfig{Level: "info"},
	}

	db, err := database.Open(ports.DatabaseConfig{Driver: "sqlite", SQLitePath: ":memory:"})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every pooled connection to :memory: would otherwise see its own empty database
	sqlDB.SetMaxOpenConns(1)

	deps, err := NewDependencyContainerWithDB(cfg, db)
	require.NoError(t, err)

	app, err := NewApplicationWithDependencies(cfg, deps)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Shutdown() })

	return app
}

func request(t *testing.T, app *Application, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		payload = raw
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	app.GetRouter().ServeHTTP(w, req)
	return w
}

func TestApplication_ProfileOverviewAndFavorites(t *testing.T) {
	upstream := newFakeOpenWeatherMap(t)
	app := newTestApplication(t, upstream.server.URL)

	w := request(t, app, http.MethodPost, "/api/users", map[string]string{
		"username":     "olena",
		"email":        "olena@example.com",
		"default_city": "Kyiv",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = request(t, app, http.MethodGet, "/api/users/olena/weather?unit=fahrenheit&days=2", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var view forecast.View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "Kyiv", view.City)
	assert.True(t, view.ForecastAvailable)
	assert.Equal(t, "69°F", view.Current.Temperature.Formatted)
	require.Len(t, view.Hourly, 8)
	assert.Equal(t, "03:00", view.Hourly[0].Time)
	assert.Len(t, view.Daily, 2)

	// served from cache
	w = request(t, app, http.MethodGet, "/api/weather?city=kyiv", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int32(1), upstream.currentCalls.Load())
	assert.Equal(t, int32(1), upstream.forecastCalls.Load())

	w = request(t, app, http.MethodPost, "/api/users/olena/cities", map[string]string{"city": "kyiv"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = request(t, app, http.MethodPost, "/api/users/olena/cities", map[string]string{"city": "KYIV"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = request(t, app, http.MethodPost, "/api/users/olena/cities", map[string]string{"city": "Atlantis"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = request(t, app, http.MethodGet, "/api/users/olena/cities", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var favorites []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &favorites))
	require.Len(t, favorites, 1)
	assert.Equal(t, "Kyiv", favorites[0]["name"])

	w = request(t, app, http.MethodDelete, fmt.Sprintf("/api/users/olena/cities/%v", favorites[0]["id"]), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestApplication_HealthAndMetrics(t *testing.T) {
	upstream := newFakeOpenWeatherMap(t)
	app := newTestApplication(t, upstream.server.URL)

	w := request(t, app, http.MethodGet, "/api/weather?city=Kyiv", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = request(t, app, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var health map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health["status"])

	w = request(t, app, http.MethodGet, "/api/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "uptime_seconds")

	w = request(t, app, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `forecast_overviews_total{forecast_available="true",unit="celsius"} 1`)
	assert.Contains(t, body, `weather_provider_requests_total{operation="current",outcome="success",provider="openweathermap"} 1`)
	assert.Contains(t, body, `weather_cache_misses_total{cache_type="memory"} 2`)
}
