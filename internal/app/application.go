package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"forecastapi.app/internal/adapters/api"
	"forecastapi.app/internal/adapters/infrastructure"
	"forecastapi.app/internal/config"
	"forecastapi.app/internal/core/location"
	"forecastapi.app/internal/core/weather"
	"forecastapi.app/internal/ports"
)

type Application struct {
	config *config.Config
	deps   *DependencyContainer

	// Use Cases
	weatherUseCase  *weather.UseCase
	locationUseCase *location.UseCase

	// Adapters
	httpAdapter *api.HTTPServerAdapter

	// Infrastructure
	ports     *ports.ApplicationPorts
	startedAt time.Time
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	deps, err := NewDependencyContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, deps)
	if err != nil {
		_ = deps.Cleanup()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies creates an application with provided dependencies (for testing)
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config:    cfg,
		deps:      deps,
		ports:     deps.ApplicationPorts(),
		startedAt: time.Now(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		WeatherProvider: a.ports.WeatherProvider,
		Cache:           a.ports.WeatherCache,
		Config:          a.ports.ConfigProvider,
		Logger:          a.ports.Logger,
		Metrics:         a.ports.WeatherMetrics,
		ForecastMetrics: a.ports.ForecastMetrics,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase

	// Favorites are validated against the same provider chain that serves the overview
	locationUseCase, err := location.NewUseCase(location.UseCaseDependencies{
		UserRepo:      a.ports.UserRepository,
		FavoriteRepo:  a.ports.FavoriteCityRepository,
		CityValidator: weatherUseCase,
		Logger:        a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create location use case: %w", err)
	}
	a.locationUseCase = locationUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	metricsCollector := infrastructure.NewMetricsCollectorAdapter(infrastructure.MetricsCollectorConfig{
		WeatherMetrics: a.ports.WeatherMetrics,
		StartedAt:      a.startedAt,
	})

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		DatabaseChecker:   infrastructure.NewDatabaseHealthChecker(a.deps.Database()),
		CacheChecker:      infrastructure.NewCacheHealthChecker(a.config.Cache.Type.String(), a.ports.CacheProvider),
		WeatherAPIChecker: infrastructure.NewWeatherAPIHealthChecker(a.ports.WeatherProvider),
		ConfigProvider:    a.ports.ConfigProvider,
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port:            a.config.Server.Port,
			ShutdownTimeout: 30 * time.Second,
		},
		WeatherUseCase:   a.weatherUseCase,
		LocationUseCase:  a.locationUseCase,
		MetricsCollector: metricsCollector,
		HealthChecker:    systemHealthChecker,
		Gatherer:         a.deps.Prometheus().Registry(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}
	a.httpAdapter = httpAdapter

	slog.Info("Adapters initialized successfully")
	return nil
}

// Start serves HTTP until ctx is canceled, then releases every resource
func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...",
		"port", a.config.Server.Port,
		"providers", a.config.Weather.ProviderOrder,
		"cache", a.config.Cache.Type.String())

	serveErr := a.httpAdapter.Start(ctx)

	if err := a.Shutdown(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	if serveErr != nil {
		return fmt.Errorf("HTTP server error: %w", serveErr)
	}
	return nil
}

// Shutdown closes the cache client, provider log file and database
func (a *Application) Shutdown() error {
	slog.Info("Shutting down application...")

	if err := a.deps.Cleanup(); err != nil {
		return fmt.Errorf("cleanup dependencies: %w", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.httpAdapter.GetRouter()
}

// GetWeatherUseCase returns the weather use case for testing
func (a *Application) GetWeatherUseCase() *weather.UseCase {
	return a.weatherUseCase
}

// GetLocationUseCase returns the location use case for testing
func (a *Application) GetLocationUseCase() *location.UseCase {
	return a.locationUseCase
}
