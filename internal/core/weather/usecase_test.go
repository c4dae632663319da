package weather

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"forecastapi.app/internal/core/forecast"
	mocks "forecastapi.app/internal/mocks"
	"forecastapi.app/internal/ports"
	"forecastapi.app/pkg/errors"
)

type useCaseMocks struct {
	provider        *mocks.WeatherProviderManager
	cache           *mocks.WeatherCache
	config          *mocks.ConfigProvider
	logger          *mocks.Logger
	metrics         *mocks.WeatherMetrics
	forecastMetrics *mocks.ForecastMetrics
}

func newUseCaseMocks(t *testing.T) useCaseMocks {
	return useCaseMocks{
		provider:        mocks.NewWeatherProviderManager(t),
		cache:           mocks.NewWeatherCache(t),
		config:          mocks.NewConfigProvider(t),
		logger:          mocks.NewLogger(t),
		metrics:         mocks.NewWeatherMetrics(t),
		forecastMetrics: mocks.NewForecastMetrics(t),
	}
}

func (m useCaseMocks) deps() UseCaseDependencies {
	return UseCaseDependencies{
		WeatherProvider: m.provider,
		Cache:           m.cache,
		Config:          m.config,
		Logger:          m.logger,
		Metrics:         m.metrics,
		ForecastMetrics: m.forecastMetrics,
	}
}

// allowLogging accepts log calls with up to three fields
func (m useCaseMocks) allowLogging() {
	m.logger.EXPECT().Debug(mock.Anything).Maybe()
	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Debug(mock.Anything, mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything, mock.Anything).Maybe()
}

func (m useCaseMocks) withConfig(enableCache bool) {
	m.config.EXPECT().GetWeatherConfig().Return(ports.WeatherConfig{
		EnableCache: enableCache,
		CacheTTL:    10 * time.Minute,
	}).Maybe()
	m.config.EXPECT().GetForecastConfig().Return(ports.ForecastConfig{
		DefaultHours: 8,
		MaxHours:     40,
		DefaultDays:  5,
		MaxDays:      5,
	}).Maybe()
}

func londonCurrent() *ports.CurrentWeatherData {
	return &ports.CurrentWeatherData{
		City:        "London",
		Country:     "GB",
		Latitude:    51.5085,
		Longitude:   -0.1257,
		Temperature: 21.7,
		FeelsLike:   21.2,
		TempMin:     19.1,
		TempMax:     23.4,
		Humidity:    60,
		Pressure:    1015,
		Visibility:  10000,
		WindSpeed:   3.6,
		Condition:   "Clear",
		Description: "clear sky",
		Icon:        "01d",
	}
}

func londonForecast(n int) *ports.ForecastData {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	samples := make([]ports.ForecastSample, 0, n)
	for i := 0; i < n; i++ {
		ts := start.Add(time.Duration(i*3) * time.Hour)
		samples = append(samples, ports.ForecastSample{
			Timestamp:   ts.Unix(),
			DateText:    ts.Format("2006-01-02 15:04:05"),
			Temperature: 10 + float64(i),
			TempMin:     9 + float64(i),
			TempMax:     11 + float64(i),
			Condition:   "Clouds",
			Icon:        "04d",
		})
	}
	return &ports.ForecastData{City: "London", Country: "GB", Provider: "openweathermap", Samples: samples}
}

func TestUseCase_GetOverview_Success(t *testing.T) {
	m := newUseCaseMocks(t)
	m.allowLogging()
	m.withConfig(false)

	m.provider.EXPECT().GetCurrentWeather(mock.Anything, "London").Return(londonCurrent(), nil).Once()
	m.provider.EXPECT().GetForecast(mock.Anything, "London").Return(londonForecast(16), nil).Once()
	m.forecastMetrics.EXPECT().RecordOverview("fahrenheit", true).Return().Once()

	uc, err := NewUseCase(m.deps())
	require.NoError(t, err)

	view, err := uc.GetOverview(context.Background(), OverviewRequest{City: " London ", Unit: forecast.UnitFahrenheit})

	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, "London", view.City)
	assert.Equal(t, forecast.UnitFahrenheit, view.Unit)
	assert.True(t, view.ForecastAvailable)
	require.NotNil(t, view.Current)
	assert.Equal(t, "71°F", view.Current.Temperature.Formatted)
	assert.Len(t, view.Hourly, 8)
	assert.Equal(t, "50°F", view.Hourly[0].Temperature.Formatted)
	require.Len(t, view.Daily, 2)
	assert.Equal(t, "2024-03-01", view.Daily[0].Date)
	assert.Equal(t, "48°F", view.Daily[0].Min.Formatted)
}

func TestUseCase_GetOverview_ForecastFailure(t *testing.T) {
	m := newUseCaseMocks(t)
	m.allowLogging()
	m.withConfig(false)

	m.provider.EXPECT().GetCurrentWeather(mock.Anything, "London").Return(londonCurrent(), nil).Once()
	m.provider.EXPECT().GetForecast(mock.Anything, "London").Return((*ports.ForecastData)(nil), errors.NewExternalAPIError("timeout", nil)).Once()
	m.forecastMetrics.EXPECT().RecordOverview("celsius", false).Return().Once()

	uc, err := NewUseCase(m.deps())
	require.NoError(t, err)

	view, err := uc.GetOverview(context.Background(), OverviewRequest{City: "London", Unit: forecast.UnitCelsius})

	require.NoError(t, err)
	assert.False(t, view.ForecastAvailable)
	assert.Empty(t, view.Hourly)
	assert.Empty(t, view.Daily)
	require.NotNil(t, view.Current)
	assert.Equal(t, "22°C", view.Current.Temperature.Formatted)
}

func TestUseCase_GetOverview_CurrentFailure(t *testing.T) {
	m := newUseCaseMocks(t)
	m.allowLogging()
	m.withConfig(false)

	m.provider.EXPECT().GetCurrentWeather(mock.Anything, "London").Return((*ports.CurrentWeatherData)(nil), errors.NewExternalAPIError("connection refused", nil)).Once()
	m.provider.EXPECT().GetForecast(mock.Anything, "London").Return(londonForecast(8), nil).Maybe()

	uc, err := NewUseCase(m.deps())
	require.NoError(t, err)

	view, err := uc.GetOverview(context.Background(), OverviewRequest{City: "London"})

	assert.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, errors.IsExternalAPIError(err))
}

func TestUseCase_GetOverview_CityNotFound(t *testing.T) {
	m := newUseCaseMocks(t)
	m.allowLogging()
	m.withConfig(false)

	m.provider.EXPECT().GetCurrentWeather(mock.Anything, "Atlantis").Return((*ports.CurrentWeatherData)(nil), errors.NewNotFoundError("city not found")).Once()
	m.provider.EXPECT().GetForecast(mock.Anything, "Atlantis").Return((*ports.ForecastData)(nil), errors.NewNotFoundError("city not found")).Maybe()

	uc, err := NewUseCase(m.deps())
	require.NoError(t, err)

	_, err = uc.GetOverview(context.Background(), OverviewRequest{City: "Atlantis"})

	assert.True(t, errors.IsNotFoundError(err))
}

func TestUseCase_GetOverview_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request OverviewRequest
	}{
		{"empty city", OverviewRequest{City: ""}},
		{"whitespace city", OverviewRequest{City: "   "}},
		{"too many hours", OverviewRequest{City: "London", Hours: 41}},
		{"negative days", OverviewRequest{City: "London", Days: -1}},
		{"too many days", OverviewRequest{City: "London", Days: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newUseCaseMocks(t)
			m.allowLogging()
			m.withConfig(false)

			uc, err := NewUseCase(m.deps())
			require.NoError(t, err)

			view, err := uc.GetOverview(context.Background(), tt.request)

			assert.Nil(t, view)
			var appErr *errors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, errors.ValidationError, appErr.Type)
		})
	}
}

func TestUseCase_GetOverview_FromCache(t *testing.T) {
	m := newUseCaseMocks(t)
	m.allowLogging()
	m.withConfig(true)

	m.cache.EXPECT().GetCurrent(mock.Anything, "current:london").Return(londonCurrent(), nil).Once()
	m.cache.EXPECT().GetForecast(mock.Anything, "forecast:london").Return(londonForecast(40), nil).Once()
	m.forecastMetrics.EXPECT().RecordOverview("celsius", true).Return().Once()

	uc, err := NewUseCase(m.deps())
	require.NoError(t, err)

	view, err := uc.GetOverview(context.Background(), OverviewRequest{City: "LONDON", Hours: 4, Days: 3})

	require.NoError(t, err)
	assert.Len(t, view.Hourly, 4)
	assert.Len(t, view.Daily, 3)
}

func TestUseCase_GetCurrent_CacheMissStoresResult(t *testing.T) {
	m := newUseCaseMocks(t)
	m.allowLogging()
	m.withConfig(true)

	expected := londonCurrent()
	m.cache.EXPECT().GetCurrent(mock.Anything, "current:london").Return((*ports.CurrentWeatherData)(nil), errors.NewNotFoundError("cache miss")).Once()
	m.provider.EXPECT().GetCurrentWeather(mock.Anything, "London").Return(expected, nil).Once()
	m.cache.EXPECT().SetCurrent(mock.Anything, "current:london", expected, 10*time.Minute).Return(nil).Once()

	uc, err := NewUseCase(m.deps())
	require.NoError(t, err)

	result, err := uc.GetCurrent(context.Background(), WeatherRequest{City: "London"})

	require.NoError(t, err)
	assert.Equal(t, expected.Temperature, result.Temperature)
	assert.Equal(t, expected.City, result.City)
}

func TestUseCase_GetCurrent_CacheWriteFailureIsIgnored(t *testing.T) {
	m := newUseCaseMocks(t)
	m.allowLogging()
	m.withConfig(true)

	m.cache.EXPECT().GetCurrent(mock.Anything, "current:paris").Return((*ports.CurrentWeatherData)(nil), errors.NewNotFoundError("cache miss")).Once()
	m.provider.EXPECT().GetCurrentWeather(mock.Anything, "Paris").Return(&ports.CurrentWeatherData{City: "Paris", Temperature: 15}, nil).Once()
	m.cache.EXPECT().SetCurrent(mock.Anything, "current:paris", mock.Anything, mock.Anything).Return(errors.NewCacheError("redis down", nil)).Once()

	uc, err := NewUseCase(m.deps())
	require.NoError(t, err)

	result, err := uc.GetCurrent(context.Background(), WeatherRequest{City: "Paris"})

	require.NoError(t, err)
	assert.Equal(t, "Paris", result.City)
}

func TestUseCase_GetCurrent_InvalidProviderData(t *testing.T) {
	m := newUseCaseMocks(t)
	m.allowLogging()
	m.withConfig(false)

	m.provider.EXPECT().GetCurrentWeather(mock.Anything, "Oslo").Return(&ports.CurrentWeatherData{City: "Oslo", Humidity: 140}, nil).Once()

	uc, err := NewUseCase(m.deps())
	require.NoError(t, err)

	_, err = uc.GetCurrent(context.Background(), WeatherRequest{City: "Oslo"})

	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_ForecastReadThroughCache(t *testing.T) {
	m := newUseCaseMocks(t)
	m.allowLogging()
	m.withConfig(true)

	data := londonForecast(3)
	m.cache.EXPECT().GetForecast(mock.Anything, "forecast:london").Return((*ports.ForecastData)(nil), errors.NewNotFoundError("cache miss")).Once()
	m.provider.EXPECT().GetForecast(mock.Anything, "London").Return(data, nil).Once()
	m.cache.EXPECT().SetForecast(mock.Anything, "forecast:london", mock.Anything, 10*time.Minute).
		Run(func(_ context.Context, _ string, stored *ports.ForecastData, _ time.Duration) {
			assert.Len(t, stored.Samples, 3)
			assert.Equal(t, data.Samples[2].TempMax, stored.Samples[2].TempMax)
		}).
		Return(nil).Once()

	uc, err := NewUseCase(m.deps())
	require.NoError(t, err)

	series, err := uc.getForecastWithCache(context.Background(), "London")

	require.NoError(t, err)
	require.Len(t, series.Samples, 3)
	assert.Equal(t, data.Samples[0].TempMin, series.Samples[0].MinTemperature)
	assert.Equal(t, "openweathermap", series.Provider)
}

func TestUseCase_ValidateCity(t *testing.T) {
	m := newUseCaseMocks(t)
	m.allowLogging()
	m.withConfig(false)

	m.provider.EXPECT().GetCurrentWeather(mock.Anything, "london").Return(londonCurrent(), nil).Once()

	uc, err := NewUseCase(m.deps())
	require.NoError(t, err)

	info, err := uc.ValidateCity(context.Background(), "london")

	require.NoError(t, err)
	assert.Equal(t, "London", info.Name)
	assert.Equal(t, "GB", info.Country)
	assert.Equal(t, 51.5085, info.Latitude)
}

func TestUseCase_Retarget(t *testing.T) {
	m := newUseCaseMocks(t)
	uc, err := NewUseCase(m.deps())
	require.NoError(t, err)

	view := forecast.View{
		Unit:   forecast.UnitCelsius,
		Hourly: []forecast.HourlyEntry{{Temperature: forecast.Convert(0, forecast.UnitCelsius)}},
	}

	out := uc.Retarget(view, forecast.UnitFahrenheit)

	assert.Equal(t, forecast.UnitFahrenheit, out.Unit)
	assert.Equal(t, "32°F", out.Hourly[0].Temperature.Formatted)
}

func TestUseCase_GetCacheMetrics(t *testing.T) {
	m := newUseCaseMocks(t)
	m.metrics.EXPECT().GetCacheMetrics().Return(ports.CacheStats{Hits: 3, Misses: 1, TotalOps: 4, HitRatio: 0.75}, nil).Once()
	m.metrics.EXPECT().GetProviderInfo().Return(map[string]interface{}{"provider_order": []string{"openweathermap"}}).Once()

	uc, err := NewUseCase(m.deps())
	require.NoError(t, err)

	stats, err := uc.GetCacheMetrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.75, stats.HitRatio)
	assert.Contains(t, uc.GetProviderInfo(context.Background()), "provider_order")
}

func TestUseCase_Constructor_Validation(t *testing.T) {
	valid := newUseCaseMocks(t).deps()

	tests := []struct {
		name    string
		mutate  func(d *UseCaseDependencies)
		wantErr bool
		errMsg  string
	}{
		{"missing_weather_provider", func(d *UseCaseDependencies) { d.WeatherProvider = nil }, true, "weather provider is required"},
		{"missing_cache", func(d *UseCaseDependencies) { d.Cache = nil }, true, "cache is required"},
		{"missing_config", func(d *UseCaseDependencies) { d.Config = nil }, true, "config is required"},
		{"missing_logger", func(d *UseCaseDependencies) { d.Logger = nil }, true, "logger is required"},
		{"missing_metrics", func(d *UseCaseDependencies) { d.Metrics = nil }, true, "metrics is required"},
		{"missing_forecast_metrics", func(d *UseCaseDependencies) { d.ForecastMetrics = nil }, true, "forecast metrics is required"},
		{"valid_dependencies", func(d *UseCaseDependencies) {}, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := valid
			tt.mutate(&deps)

			uc, err := NewUseCase(deps)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, uc)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, uc)
			}
		})
	}
}
