// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"forecastapi.app/internal/core/forecast"
	"forecastapi.app/internal/core/location"
	"forecastapi.app/internal/core/weather"
	"forecastapi.app/internal/ports"
	"forecastapi.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port            int
	ShutdownTimeout time.Duration
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router           *gin.Engine
	httpServer       *http.Server
	config           ServerConfig
	weatherUseCase   WeatherUseCase
	locationUseCase  LocationUseCase
	metricsCollector MetricsCollector
	healthChecker    ports.SystemHealthChecker
}

// Use case interfaces that the HTTP adapter depends on
type WeatherUseCase interface {
	GetOverview(ctx context.Context, request weather.OverviewRequest) (*forecast.View, error)
	Retarget(view forecast.View, unit forecast.Unit) forecast.View
}

type LocationUseCase interface {
	CreateProfile(ctx context.Context, params location.CreateProfileParams) (*location.Profile, error)
	GetProfile(ctx context.Context, username string) (*location.Profile, error)
	SetDefaultCity(ctx context.Context, username, city string) (*location.Profile, error)
	DefaultCity(ctx context.Context, username string) (string, error)
	AddFavorite(ctx context.Context, params location.AddFavoriteParams) (*location.FavoriteCity, error)
	ListFavorites(ctx context.Context, username string) ([]*location.FavoriteCity, error)
	RemoveFavorite(ctx context.Context, username string, id uint) error
	Suggest(prefix string, limit int) []string
}

type MetricsCollector interface {
	GetMetrics(ctx context.Context) (map[string]interface{}, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config           ServerConfig
	WeatherUseCase   WeatherUseCase
	LocationUseCase  LocationUseCase
	MetricsCollector MetricsCollector
	HealthChecker    ports.SystemHealthChecker
	// Gatherer backs GET /metrics; prometheus.DefaultGatherer when nil
	Gatherer prometheus.Gatherer
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestIDMiddleware(), requestLogger())

	server := &HTTPServerAdapter{
		router:           router,
		config:           opts.Config,
		weatherUseCase:   opts.WeatherUseCase,
		locationUseCase:  opts.LocationUseCase,
		metricsCollector: opts.MetricsCollector,
		healthChecker:    opts.HealthChecker,
	}

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	server.setupRoutes(gatherer)
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.WeatherUseCase == nil {
		return errors.NewValidationError("weather use case is required")
	}
	if opts.LocationUseCase == nil {
		return errors.NewValidationError("location use case is required")
	}
	if opts.MetricsCollector == nil {
		return errors.NewValidationError("metrics collector is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes(gatherer prometheus.Gatherer) {
	api := s.router.Group("/api")
	{
		api.GET("/weather", s.getWeather)
		api.POST("/views/retarget", s.retargetView)
		api.GET("/cities/suggest", s.suggestCities)
		api.GET("/metrics", s.getMetrics)

		users := api.Group("/users")
		users.POST("", s.createProfile)
		users.GET("/:username", s.getProfile)
		users.PUT("/:username/default-city", s.setDefaultCity)
		users.GET("/:username/weather", s.getUserWeather)
		users.GET("/:username/cities", s.listFavorites)
		users.POST("/:username/cities", s.addFavorite)
		users.DELETE("/:username/cities/:id", s.removeFavorite)
	}

	s.router.GET("/health", s.getHealth)
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

// Start serves HTTP until ctx is canceled, then drains in-flight requests
func (s *HTTPServerAdapter) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", s.config.Port)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	timeout := s.config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	slog.Info("Shutting down HTTP server")
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
