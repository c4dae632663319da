// Package location manages user profiles and their saved cities.
package location

import (
	"strings"
	"time"
)

// Profile represents a user and the city their overview defaults to
type Profile struct {
	ID          uint
	Username    string
	Email       string
	DefaultCity string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FavoriteCity represents a city saved by a user
type FavoriteCity struct {
	ID        uint
	Username  string
	Name      string
	Latitude  float64
	Longitude float64
	AddedAt   time.Time
}

type CreateProfileParams struct {
	Username    string
	Email       string
	DefaultCity string
}

type AddFavoriteParams struct {
	Username string
	City     string
}

// HasDefaultCity reports whether the profile can drive an implicit weather fetch
func (p *Profile) HasDefaultCity() bool {
	return strings.TrimSpace(p.DefaultCity) != ""
}
