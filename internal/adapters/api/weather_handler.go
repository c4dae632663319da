package api

import (
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"

	"forecastapi.app/internal/core/forecast"
	"forecastapi.app/internal/core/weather"
	"forecastapi.app/pkg/errors"
)

// ViewOptions are the query parameters shared by every overview endpoint
type ViewOptions struct {
	Unit  string `form:"unit" binding:"omitempty,unit"`
	Hours int    `form:"hours" binding:"omitempty,min=1"`
	Days  int    `form:"days" binding:"omitempty,min=1"`
}

// WeatherQuery represents the query of GET /api/weather
type WeatherQuery struct {
	City string `form:"city" binding:"required"`
	ViewOptions
}

// RetargetRequest represents the body of POST /api/views/retarget
type RetargetRequest struct {
	View *forecast.View `json:"view" binding:"required"`
	Unit string         `json:"unit" binding:"required,unit"`
}

// getWeather handles GET /api/weather requests
func (s *HTTPServerAdapter) getWeather(c *gin.Context) {
	var query WeatherQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		slog.Debug("Weather query binding error", "error", err)
		if c.Query("city") == "" {
			s.handleError(c, errors.NewValidationError("city parameter is required"))
			return
		}
		s.handleError(c, errors.NewValidationError("invalid unit, hours or days parameter"))
		return
	}

	slog.Debug("Getting weather overview", "city", query.City, "unit", query.Unit)
	s.renderOverview(c, query.City, query.ViewOptions)
}

// getUserWeather handles GET /api/users/:username/weather requests
func (s *HTTPServerAdapter) getUserWeather(c *gin.Context) {
	var opts ViewOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		s.handleError(c, errors.NewValidationError("invalid unit, hours or days parameter"))
		return
	}

	username := c.Param("username")
	city, err := s.locationUseCase.DefaultCity(c.Request.Context(), username)
	if err != nil {
		s.handleError(c, err)
		return
	}

	slog.Debug("Getting weather overview for default city", "username", username, "city", city)
	s.renderOverview(c, city, opts)
}

func (s *HTTPServerAdapter) renderOverview(c *gin.Context, city string, opts ViewOptions) {
	unit, err := forecast.ParseUnit(opts.Unit)
	if err != nil {
		s.handleError(c, errors.NewValidationError(err.Error()))
		return
	}

	view, err := s.weatherUseCase.GetOverview(c.Request.Context(), weather.OverviewRequest{
		City:  city,
		Unit:  unit,
		Hours: opts.Hours,
		Days:  opts.Days,
	})
	if err != nil {
		slog.Error("Weather use case error", "error", err, "city", city)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// retargetView handles POST /api/views/retarget requests
func (s *HTTPServerAdapter) retargetView(c *gin.Context) {
	var req RetargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Debug("Retarget binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	unit, err := forecast.ParseUnit(req.Unit)
	if err != nil {
		s.handleError(c, errors.NewValidationError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, s.weatherUseCase.Retarget(*req.View, unit))
}
