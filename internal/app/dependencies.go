package app

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"forecastapi.app/internal/adapters/database"
	"forecastapi.app/internal/adapters/external"
	"forecastapi.app/internal/adapters/infrastructure"
	"forecastapi.app/internal/config"
	"forecastapi.app/internal/ports"
)

type DependencyContainer struct {
	config     *config.Config
	db         *gorm.DB
	ports      *ports.ApplicationPorts
	prometheus *infrastructure.PrometheusMetrics
	closers    []io.Closer
}

func NewDependencyContainer(cfg *config.Config) (*DependencyContainer, error) {
	return newDependencyContainer(cfg, nil)
}

// NewDependencyContainerWithDB wires the ports around an already opened database
func NewDependencyContainerWithDB(cfg *config.Config, db *gorm.DB) (*DependencyContainer, error) {
	return newDependencyContainer(cfg, db)
}

func newDependencyContainer(cfg *config.Config, db *gorm.DB) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config: cfg,
		db:     db,
	}

	if err := container.initializeDatabase(); err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	if err := container.initializePorts(); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializeDatabase() error {
	if c.db == nil {
		slog.Info("Initializing database connection...", "driver", c.config.Database.Driver)

		configProvider := infrastructure.NewConfigProviderAdapter(c.config)
		db, err := database.Open(configProvider.GetDatabaseConfig())
		if err != nil {
			return err
		}
		c.db = db
	}

	slog.Info("Running database migrations...")
	if err := database.Migrate(c.db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	slog.Info("Database connection established successfully")
	return nil
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	weatherConfig := c.config.Weather

	userRepo := database.NewUserRepositoryAdapter(c.db)
	favoriteRepo := database.NewFavoriteCityRepositoryAdapter(c.db)

	var logger ports.Logger = infrastructure.NewSlogLoggerAdapter(slog.Default())

	// Provider traffic goes to its own file so it can be inspected separately
	var trafficLogger ports.Logger
	if weatherConfig.EnableLogging && weatherConfig.LogFilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(weatherConfig.LogFilePath)
		if err != nil {
			slog.Warn("Failed to create file logger, provider traffic goes to the main log", "error", err)
			trafficLogger = logger
		} else {
			c.closers = append(c.closers, fileLogger)
			trafficLogger = fileLogger
			slog.Info("File logging enabled", "path", weatherConfig.LogFilePath)
		}
	}
	if weatherConfig.EnableLogging && trafficLogger == nil {
		trafficLogger = logger
	}

	c.prometheus = infrastructure.NewPrometheusMetrics()

	var providerManager ports.WeatherProviderManager = external.NewWeatherProviderManagerAdapter(external.ProviderManagerConfig{
		WeatherAPIKey:     weatherConfig.APIKey,
		WeatherAPIBaseURL: weatherConfig.BaseURL,
		OpenWeatherKey:    weatherConfig.OpenWeatherMapKey,
		OpenWeatherURL:    weatherConfig.OpenWeatherMapBaseURL,
		ForecastDays:      weatherConfig.ForecastDays,
		RequestTimeout:    time.Duration(weatherConfig.RequestTimeoutSeconds) * time.Second,
		ProviderOrder:     weatherConfig.ProviderOrder,
		Logger:            logger,
		TrafficLogger:     trafficLogger,
		Metrics:           c.prometheus,
		RateLimitRPS:      weatherConfig.RateLimitRPS,
		RateLimitBurst:    weatherConfig.RateLimitBurst,
	})

	if weatherConfig.EnableLogging {
		providerManager = external.NewWeatherProviderManagerLoggingDecorator(providerManager, trafficLogger)
		slog.Info("Weather provider logging enabled")
	}

	cacheMetrics := c.prometheus.NewCacheMetrics(c.config.Cache.Type.String())
	genericCacheProvider, err := external.NewCacheProviderFactory().CreateCacheProvider(&c.config.Cache, cacheMetrics)
	if err != nil {
		slog.Error("Failed to create cache provider", "error", err)
		return fmt.Errorf("create cache provider: %w", err)
	}
	if closer, ok := genericCacheProvider.(io.Closer); ok {
		c.closers = append(c.closers, closer)
	}

	slog.Info("Cache provider initialized",
		"type", c.config.Cache.Type.String(),
		"enabled", weatherConfig.EnableCache)

	weatherMetrics := external.NewWeatherMetricsAdapter(cacheMetrics, providerManager, weatherConfig.EnableCache)

	c.ports = &ports.ApplicationPorts{
		WeatherProvider: providerManager,
		WeatherCache:    external.NewWeatherCacheAdapter(genericCacheProvider),
		WeatherMetrics:  weatherMetrics,

		UserRepository:         userRepo,
		FavoriteCityRepository: favoriteRepo,

		CacheProvider: genericCacheProvider,
		CacheMetrics:  cacheMetrics,

		ForecastMetrics: c.prometheus,
		ProviderMetrics: c.prometheus,

		ConfigProvider: infrastructure.NewConfigProviderAdapter(c.config),
		Logger:         logger,
		Database:       c.db,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Database() *gorm.DB {
	return c.db
}

// Prometheus returns the metrics registry owner
func (c *DependencyContainer) Prometheus() *infrastructure.PrometheusMetrics {
	return c.prometheus
}

// Cleanup releases the cache client, log file and database connection
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil

	if c.db != nil {
		if err := database.Close(c.db); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
