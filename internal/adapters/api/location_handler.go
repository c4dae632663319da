package api

import (
	"net/http"
	"strconv"
	"time"

	"log/slog"

	"github.com/gin-gonic/gin"

	"forecastapi.app/internal/core/location"
	"forecastapi.app/pkg/errors"
)

const (
	defaultSuggestLimit = 10
	maxSuggestLimit     = 50
)

// CreateProfileRequest represents the body of POST /api/users
type CreateProfileRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=32"`
	Email       string `json:"email" binding:"required,email"`
	DefaultCity string `json:"default_city" binding:"required"`
}

// DefaultCityRequest represents the body of PUT /api/users/:username/default-city
type DefaultCityRequest struct {
	City string `json:"city" binding:"required"`
}

// AddFavoriteRequest represents the body of POST /api/users/:username/cities
type AddFavoriteRequest struct {
	City string `json:"city" binding:"required"`
}

// ProfileResponse represents a user profile
type ProfileResponse struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	DefaultCity string `json:"default_city"`
	CreatedAt   string `json:"created_at"`
}

// FavoriteCityResponse represents a saved city
type FavoriteCityResponse struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	AddedAt   string  `json:"added_at"`
}

// SuggestResponse represents the body of GET /api/cities/suggest
type SuggestResponse struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
}

// createProfile handles POST /api/users requests
func (s *HTTPServerAdapter) createProfile(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Debug("Profile binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	profile, err := s.locationUseCase.CreateProfile(c.Request.Context(), location.CreateProfileParams{
		Username:    req.Username,
		Email:       req.Email,
		DefaultCity: req.DefaultCity,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toProfileResponse(profile))
}

// getProfile handles GET /api/users/:username requests
func (s *HTTPServerAdapter) getProfile(c *gin.Context) {
	profile, err := s.locationUseCase.GetProfile(c.Request.Context(), c.Param("username"))
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProfileResponse(profile))
}

// setDefaultCity handles PUT /api/users/:username/default-city requests
func (s *HTTPServerAdapter) setDefaultCity(c *gin.Context) {
	var req DefaultCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, errors.NewValidationError("city is required"))
		return
	}

	profile, err := s.locationUseCase.SetDefaultCity(c.Request.Context(), c.Param("username"), req.City)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProfileResponse(profile))
}

// listFavorites handles GET /api/users/:username/cities requests
func (s *HTTPServerAdapter) listFavorites(c *gin.Context) {
	favorites, err := s.locationUseCase.ListFavorites(c.Request.Context(), c.Param("username"))
	if err != nil {
		s.handleError(c, err)
		return
	}

	response := make([]FavoriteCityResponse, 0, len(favorites))
	for _, f := range favorites {
		response = append(response, toFavoriteResponse(f))
	}
	c.JSON(http.StatusOK, response)
}

// addFavorite handles POST /api/users/:username/cities requests
func (s *HTTPServerAdapter) addFavorite(c *gin.Context) {
	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, errors.NewValidationError("city name cannot be empty"))
		return
	}

	favorite, err := s.locationUseCase.AddFavorite(c.Request.Context(), location.AddFavoriteParams{
		Username: c.Param("username"),
		City:     req.City,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	slog.Debug("Favorite city added", "username", favorite.Username, "city", favorite.Name)
	c.JSON(http.StatusCreated, toFavoriteResponse(favorite))
}

// removeFavorite handles DELETE /api/users/:username/cities/:id requests
func (s *HTTPServerAdapter) removeFavorite(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		s.handleError(c, errors.NewValidationError("invalid city ID"))
		return
	}

	if err := s.locationUseCase.RemoveFavorite(c.Request.Context(), c.Param("username"), uint(id)); err != nil {
		s.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// suggestCities handles GET /api/cities/suggest requests
func (s *HTTPServerAdapter) suggestCities(c *gin.Context) {
	limit := defaultSuggestLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxSuggestLimit {
			s.handleError(c, errors.NewValidationError("limit must be between 1 and 50"))
			return
		}
		limit = parsed
	}

	query := c.Query("q")
	c.JSON(http.StatusOK, SuggestResponse{
		Query:       query,
		Suggestions: s.locationUseCase.Suggest(query, limit),
	})
}

func toProfileResponse(p *location.Profile) ProfileResponse {
	return ProfileResponse{
		Username:    p.Username,
		Email:       p.Email,
		DefaultCity: p.DefaultCity,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toFavoriteResponse(f *location.FavoriteCity) FavoriteCityResponse {
	return FavoriteCityResponse{
		ID:        f.ID,
		Name:      f.Name,
		Latitude:  f.Latitude,
		Longitude: f.Longitude,
		AddedAt:   f.AddedAt.UTC().Format(time.RFC3339),
	}
}
