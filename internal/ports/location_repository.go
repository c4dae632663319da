package ports

import (
	"context"
	"time"
)

// UserData represents a user profile for persistence
type UserData struct {
	ID          uint
	Username    string
	Email       string
	DefaultCity string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FavoriteCityData represents a saved city for persistence
type FavoriteCityData struct {
	ID        uint
	Username  string
	CityName  string
	Latitude  float64
	Longitude float64
	AddedAt   time.Time
}

// UserRepository defines the contract for user profile persistence
type UserRepository interface {
	Save(ctx context.Context, user *UserData) error
	FindByUsername(ctx context.Context, username string) (*UserData, error)
	UpdateDefaultCity(ctx context.Context, username, city string) error
}

// FavoriteCityRepository defines the contract for favorite city persistence
type FavoriteCityRepository interface {
	Add(ctx context.Context, city *FavoriteCityData) error
	ListByUsername(ctx context.Context, username string) ([]*FavoriteCityData, error)
	FindByName(ctx context.Context, username, cityName string) (*FavoriteCityData, error)
	Delete(ctx context.Context, username string, id uint) error
}
