package weather

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"forecastapi.app/internal/core/forecast"
	"forecastapi.app/internal/ports"
	"forecastapi.app/pkg/errors"
)

type UseCase struct {
	weatherProvider ports.WeatherProviderManager
	cache           ports.WeatherCache
	config          ports.ConfigProvider
	logger          ports.Logger
	metrics         ports.WeatherMetrics
	forecastMetrics ports.ForecastMetrics
	aggregator      *forecast.Aggregator
}

type UseCaseDependencies struct {
	WeatherProvider ports.WeatherProviderManager
	Cache           ports.WeatherCache
	Config          ports.ConfigProvider
	Logger          ports.Logger
	Metrics         ports.WeatherMetrics
	ForecastMetrics ports.ForecastMetrics
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.WeatherProvider == nil {
		return nil, errors.NewValidationError("weather provider is required")
	}
	if deps.Cache == nil {
		return nil, errors.NewValidationError("cache is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}
	if deps.ForecastMetrics == nil {
		return nil, errors.NewValidationError("forecast metrics is required")
	}

	return &UseCase{
		weatherProvider: deps.WeatherProvider,
		cache:           deps.Cache,
		config:          deps.Config,
		logger:          deps.Logger,
		metrics:         deps.Metrics,
		forecastMetrics: deps.ForecastMetrics,
		aggregator: forecast.NewAggregator(forecast.AggregatorDependencies{
			Logger:  deps.Logger,
			Metrics: deps.ForecastMetrics,
		}),
	}, nil
}

// GetOverview fetches current conditions and the forecast concurrently and renders both.
// A failed current-conditions fetch fails the overview; a failed forecast fetch only
// marks the forecast as unavailable.
func (uc *UseCase) GetOverview(ctx context.Context, request OverviewRequest) (*forecast.View, error) {
	weatherRequest := WeatherRequest{City: request.City}
	if err := weatherRequest.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid weather request: " + err.Error())
	}
	weatherRequest.NormalizeCity()
	city := weatherRequest.City

	hours, days, err := uc.resolveLimits(request.Hours, request.Days)
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("Building weather overview",
		ports.F("city", city),
		ports.F("unit", request.Unit.String()))

	var (
		current     *Weather
		series      *Forecast
		forecastErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		w, err := uc.getCurrentWithCache(gctx, city)
		if err != nil {
			return err
		}
		current = w
		return nil
	})
	g.Go(func() error {
		f, err := uc.getForecastWithCache(gctx, city)
		if err != nil {
			forecastErr = err
			return nil
		}
		series = f
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("Failed to get current weather",
			ports.F("city", city),
			ports.F("error", err))
		return nil, fmt.Errorf("get overview for city %s: %w", city, err)
	}

	if forecastErr != nil {
		uc.logger.Warn("Forecast unavailable, returning current conditions only",
			ports.F("city", city),
			ports.F("error", forecastErr))
	}

	params := forecast.ViewParams{
		City:     current.City,
		Location: current.Location(),
		Hours:    hours,
		Days:     days,
		Unit:     request.Unit,
	}
	snapshot := current.Snapshot()
	params.Current = &snapshot
	if series != nil {
		params.Samples = series.Samples
		params.ForecastAvailable = true
		if series.TimezoneOffset != 0 {
			params.Location = series.Location()
		}
	}

	view := uc.aggregator.BuildView(params)
	uc.forecastMetrics.RecordOverview(request.Unit.String(), view.ForecastAvailable)

	return &view, nil
}

// GetCurrent returns current conditions for a city
func (uc *UseCase) GetCurrent(ctx context.Context, request WeatherRequest) (*Weather, error) {
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid weather request: " + err.Error())
	}

	request.NormalizeCity()
	normalizedCity := request.City
	uc.logger.Debug("Getting weather for city", ports.F("city", normalizedCity))

	weather, err := uc.getCurrentWithCache(ctx, normalizedCity)
	if err != nil {
		uc.logger.Error("Failed to get weather",
			ports.F("city", normalizedCity),
			ports.F("error", err))
		return nil, fmt.Errorf("get weather for city %s: %w", normalizedCity, err)
	}

	uc.logger.Debug("Weather retrieved successfully",
		ports.F("city", normalizedCity),
		ports.F("temperature", weather.Temperature))
	return weather, nil
}

// Retarget re-renders a previously built view in another unit without refetching
func (uc *UseCase) Retarget(view forecast.View, unit forecast.Unit) forecast.View {
	return forecast.Retarget(view, unit)
}

// ValidateCity resolves free-form input to the provider's canonical city
func (uc *UseCase) ValidateCity(ctx context.Context, city string) (*ports.CityInfo, error) {
	weather, err := uc.GetCurrent(ctx, WeatherRequest{City: city})
	if err != nil {
		return nil, err
	}

	return &ports.CityInfo{
		Name:      weather.City,
		Country:   weather.Country,
		Latitude:  weather.Latitude,
		Longitude: weather.Longitude,
	}, nil
}

func (uc *UseCase) resolveLimits(hours, days int) (int, int, error) {
	cfg := uc.config.GetForecastConfig()

	if hours < 0 || (cfg.MaxHours > 0 && hours > cfg.MaxHours) {
		return 0, 0, errors.NewValidationError(fmt.Sprintf("hours must be between 1 and %d", cfg.MaxHours))
	}
	if days < 0 || (cfg.MaxDays > 0 && days > cfg.MaxDays) {
		return 0, 0, errors.NewValidationError(fmt.Sprintf("days must be between 1 and %d", cfg.MaxDays))
	}

	if hours == 0 {
		hours = cfg.DefaultHours
	}
	if days == 0 {
		days = cfg.DefaultDays
	}
	return hours, days, nil
}

func cacheKey(kind, city string) string {
	return fmt.Sprintf("%s:%s", kind, strings.ToLower(city))
}

func (uc *UseCase) getCurrentWithCache(ctx context.Context, city string) (*Weather, error) {
	weatherConfig := uc.config.GetWeatherConfig()
	if !weatherConfig.EnableCache {
		return uc.getCurrentFromProvider(ctx, city)
	}

	key := cacheKey("current", city)
	cached, err := uc.cache.GetCurrent(ctx, key)
	if err == nil && cached != nil {
		uc.logger.Debug("Weather found in cache", ports.F("city", city))
		return uc.convertFromPortsWeather(cached), nil
	}

	weather, err := uc.getCurrentFromProvider(ctx, city)
	if err != nil {
		return nil, err
	}

	if cacheErr := uc.cache.SetCurrent(ctx, key, uc.convertToPortsWeather(weather), weatherConfig.CacheTTL); cacheErr != nil {
		uc.logger.Warn("Failed to cache weather data",
			ports.F("city", city),
			ports.F("error", cacheErr))
	}

	return weather, nil
}

func (uc *UseCase) getForecastWithCache(ctx context.Context, city string) (*Forecast, error) {
	weatherConfig := uc.config.GetWeatherConfig()
	if !weatherConfig.EnableCache {
		return uc.getForecastFromProvider(ctx, city)
	}

	key := cacheKey("forecast", city)
	cached, err := uc.cache.GetForecast(ctx, key)
	if err == nil && cached != nil {
		uc.logger.Debug("Forecast found in cache", ports.F("city", city))
		return uc.convertFromPortsForecast(cached), nil
	}

	series, err := uc.getForecastFromProvider(ctx, city)
	if err != nil {
		return nil, err
	}

	if cacheErr := uc.cache.SetForecast(ctx, key, uc.convertToPortsForecast(series), weatherConfig.CacheTTL); cacheErr != nil {
		uc.logger.Warn("Failed to cache forecast data",
			ports.F("city", city),
			ports.F("error", cacheErr))
	}

	return series, nil
}

func (uc *UseCase) getCurrentFromProvider(ctx context.Context, city string) (*Weather, error) {
	providerWeather, err := uc.weatherProvider.GetCurrentWeather(ctx, city)
	if err != nil {
		// Preserve NotFoundError from providers
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, errors.NewExternalAPIError("weather provider failed", err)
	}

	domainWeather := uc.convertFromPortsWeather(providerWeather)
	if err := domainWeather.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid weather data from provider: " + err.Error())
	}

	return domainWeather, nil
}

func (uc *UseCase) getForecastFromProvider(ctx context.Context, city string) (*Forecast, error) {
	providerForecast, err := uc.weatherProvider.GetForecast(ctx, city)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, errors.NewExternalAPIError("forecast provider failed", err)
	}

	return uc.convertFromPortsForecast(providerForecast), nil
}

func (uc *UseCase) convertToPortsWeather(weather *Weather) *ports.CurrentWeatherData {
	return &ports.CurrentWeatherData{
		City:           weather.City,
		Country:        weather.Country,
		Latitude:       weather.Latitude,
		Longitude:      weather.Longitude,
		Temperature:    weather.Temperature,
		FeelsLike:      weather.FeelsLike,
		TempMin:        weather.TempMin,
		TempMax:        weather.TempMax,
		Humidity:       weather.Humidity,
		Pressure:       weather.Pressure,
		Cloudiness:     weather.Cloudiness,
		Visibility:     weather.Visibility,
		WindSpeed:      weather.WindSpeed,
		WindGust:       weather.WindGust,
		Condition:      weather.Condition,
		Description:    weather.Description,
		Icon:           weather.Icon,
		Sunrise:        weather.Sunrise,
		Sunset:         weather.Sunset,
		TimezoneOffset: weather.TimezoneOffset,
		Timestamp:      weather.Timestamp,
	}
}

func (uc *UseCase) convertFromPortsWeather(data *ports.CurrentWeatherData) *Weather {
	return &Weather{
		City:           data.City,
		Country:        data.Country,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		Temperature:    data.Temperature,
		FeelsLike:      data.FeelsLike,
		TempMin:        data.TempMin,
		TempMax:        data.TempMax,
		Humidity:       data.Humidity,
		Pressure:       data.Pressure,
		Cloudiness:     data.Cloudiness,
		Visibility:     data.Visibility,
		WindSpeed:      data.WindSpeed,
		WindGust:       data.WindGust,
		Condition:      data.Condition,
		Description:    data.Description,
		Icon:           data.Icon,
		Sunrise:        data.Sunrise,
		Sunset:         data.Sunset,
		TimezoneOffset: data.TimezoneOffset,
		Timestamp:      data.Timestamp,
	}
}

func (uc *UseCase) convertToPortsForecast(series *Forecast) *ports.ForecastData {
	samples := make([]ports.ForecastSample, 0, len(series.Samples))
	for _, s := range series.Samples {
		samples = append(samples, ports.ForecastSample{
			Timestamp:           s.Timestamp,
			DateText:            s.DateText,
			Temperature:         s.Temperature,
			FeelsLike:           s.FeelsLike,
			TempMin:             s.MinTemperature,
			TempMax:             s.MaxTemperature,
			Humidity:            s.Humidity,
			Pressure:            s.Pressure,
			WindSpeed:           s.WindSpeed,
			Cloudiness:          s.Cloudiness,
			PrecipitationChance: s.PrecipitationChance,
			Condition:           s.Condition,
			Description:         s.Description,
			Icon:                s.Icon,
		})
	}

	return &ports.ForecastData{
		City:           series.City,
		Country:        series.Country,
		TimezoneOffset: series.TimezoneOffset,
		Provider:       series.Provider,
		Samples:        samples,
		FetchedAt:      series.FetchedAt,
	}
}

func (uc *UseCase) convertFromPortsForecast(data *ports.ForecastData) *Forecast {
	samples := make([]forecast.WeatherSample, 0, len(data.Samples))
	for _, s := range data.Samples {
		samples = append(samples, forecast.WeatherSample{
			Timestamp:           s.Timestamp,
			DateText:            s.DateText,
			Temperature:         s.Temperature,
			FeelsLike:           s.FeelsLike,
			MinTemperature:      s.TempMin,
			MaxTemperature:      s.TempMax,
			Humidity:            s.Humidity,
			Pressure:            s.Pressure,
			WindSpeed:           s.WindSpeed,
			Cloudiness:          s.Cloudiness,
			PrecipitationChance: s.PrecipitationChance,
			Condition:           s.Condition,
			Description:         s.Description,
			Icon:                s.Icon,
		})
	}

	return &Forecast{
		City:           data.City,
		Country:        data.Country,
		TimezoneOffset: data.TimezoneOffset,
		Provider:       data.Provider,
		Samples:        samples,
		FetchedAt:      data.FetchedAt,
	}
}

func (uc *UseCase) GetProviderInfo(ctx context.Context) map[string]interface{} {
	return uc.metrics.GetProviderInfo()
}

func (uc *UseCase) GetCacheMetrics(ctx context.Context) (ports.CacheStats, error) {
	metrics, err := uc.metrics.GetCacheMetrics()
	if err != nil {
		return ports.CacheStats{}, fmt.Errorf("get cache metrics: %w", err)
	}
	return metrics, nil
}
