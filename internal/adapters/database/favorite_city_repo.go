package database

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"forecastapi.app/internal/ports"
	"forecastapi.app/pkg/errors"
)

// FavoriteCityModel represents the database model for saved cities
type FavoriteCityModel struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"index;size:32;not null"`
	CityName  string `gorm:"not null"`
	Latitude  float64
	Longitude float64
	AddedAt   time.Time `gorm:"index;not null"`
}

func (FavoriteCityModel) TableName() string {
	return "favorite_cities"
}

// FavoriteCityRepositoryAdapter implements the FavoriteCityRepository port using GORM
type FavoriteCityRepositoryAdapter struct {
	db *gorm.DB
}

// NewFavoriteCityRepositoryAdapter creates a new favorite city repository adapter
func NewFavoriteCityRepositoryAdapter(db *gorm.DB) ports.FavoriteCityRepository {
	return &FavoriteCityRepositoryAdapter{db: db}
}

// Add stores a new favorite city
func (r *FavoriteCityRepositoryAdapter) Add(ctx context.Context, city *ports.FavoriteCityData) error {
	if city == nil {
		return errors.NewValidationError("favorite city cannot be nil")
	}
	if city.Username == "" || city.CityName == "" {
		return errors.NewValidationError("username and city name are required")
	}

	model := r.dataToModel(city)
	if model.AddedAt.IsZero() {
		model.AddedAt = time.Now()
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return errors.NewAlreadyExistsError("city is already in favorites")
		}
		return errors.NewDatabaseError("failed to add favorite city", err)
	}

	city.ID = model.ID
	city.AddedAt = model.AddedAt
	return nil
}

// ListByUsername returns the user's saved cities, newest first
func (r *FavoriteCityRepositoryAdapter) ListByUsername(ctx context.Context, username string) ([]*ports.FavoriteCityData, error) {
	if username == "" {
		return nil, errors.NewValidationError("username cannot be empty")
	}

	var models []FavoriteCityModel
	result := r.db.WithContext(ctx).
		Where("username = ?", username).
		Order("added_at DESC").
		Order("id DESC").
		Find(&models)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to list favorite cities", result.Error)
	}

	cities := make([]*ports.FavoriteCityData, len(models))
	for i := range models {
		cities[i] = r.modelToData(&models[i])
	}

	return cities, nil
}

// FindByName looks a saved city up by name, ignoring case
func (r *FavoriteCityRepositoryAdapter) FindByName(ctx context.Context, username, cityName string) (*ports.FavoriteCityData, error) {
	if username == "" {
		return nil, errors.NewValidationError("username cannot be empty")
	}
	if cityName == "" {
		return nil, errors.NewValidationError("city name cannot be empty")
	}

	var model FavoriteCityModel
	result := r.db.WithContext(ctx).
		Where("username = ? AND LOWER(city_name) = ?", username, strings.ToLower(cityName)).
		First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("favorite city not found")
		}
		return nil, errors.NewDatabaseError("failed to find favorite city", result.Error)
	}

	return r.modelToData(&model), nil
}

// Delete removes one of the user's saved cities. Another user's city is reported as not found.
func (r *FavoriteCityRepositoryAdapter) Delete(ctx context.Context, username string, id uint) error {
	if username == "" {
		return errors.NewValidationError("username cannot be empty")
	}
	if id == 0 {
		return errors.NewValidationError("favorite city ID cannot be zero")
	}

	result := r.db.WithContext(ctx).
		Where("username = ?", username).
		Delete(&FavoriteCityModel{}, id)
	if result.Error != nil {
		return errors.NewDatabaseError("failed to delete favorite city", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("favorite city not found")
	}

	return nil
}

func (r *FavoriteCityRepositoryAdapter) dataToModel(data *ports.FavoriteCityData) *FavoriteCityModel {
	return &FavoriteCityModel{
		ID:        data.ID,
		Username:  data.Username,
		CityName:  data.CityName,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		AddedAt:   data.AddedAt,
	}
}

func (r *FavoriteCityRepositoryAdapter) modelToData(model *FavoriteCityModel) *ports.FavoriteCityData {
	return &ports.FavoriteCityData{
		ID:        model.ID,
		Username:  model.Username,
		CityName:  model.CityName,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		AddedAt:   model.AddedAt,
	}
}
