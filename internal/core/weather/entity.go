package weather

import (
	"fmt"
	"strings"
	"time"

	"forecastapi.app/internal/core/forecast"
)

// Weather represents current conditions for a specific location
type Weather struct {
	City           string
	Country        string
	Latitude       float64
	Longitude      float64
	Temperature    float64
	FeelsLike      float64
	TempMin        float64
	TempMax        float64
	Humidity       int
	Pressure       int
	Cloudiness     int
	Visibility     int
	WindSpeed      float64
	WindGust       float64
	Condition      string
	Description    string
	Icon           string
	Sunrise        int64
	Sunset         int64
	TimezoneOffset int
	Timestamp      time.Time
}

// Forecast is a time-ordered series of samples for one location
type Forecast struct {
	City           string
	Country        string
	TimezoneOffset int
	Provider       string
	Samples        []forecast.WeatherSample
	FetchedAt      time.Time
}

// WeatherRequest represents a request for weather information
type WeatherRequest struct {
	City string
}

// OverviewRequest represents a request for the combined current + forecast view
type OverviewRequest struct {
	City  string
	Unit  forecast.Unit
	Hours int
	Days  int
}

// IsValid validates weather data
func (w *Weather) IsValid() error {
	if strings.TrimSpace(w.City) == "" {
		return fmt.Errorf("city cannot be empty")
	}
	if w.Temperature < -273.15 {
		return fmt.Errorf("temperature cannot be below absolute zero")
	}
	if w.Humidity < 0 || w.Humidity > 100 {
		return fmt.Errorf("humidity must be between 0 and 100")
	}
	return nil
}

// IsValid validates weather request
func (wr *WeatherRequest) IsValid() error {
	if strings.TrimSpace(wr.City) == "" {
		return fmt.Errorf("city cannot be empty")
	}
	return nil
}

// NormalizeCity normalizes city name for consistent processing
func (wr *WeatherRequest) NormalizeCity() {
	wr.City = strings.TrimSpace(wr.City)
}

// Location returns the fixed zone of the city
func (w *Weather) Location() *time.Location {
	return zoneFor(w.TimezoneOffset)
}

// Snapshot converts current conditions into aggregator input
func (w *Weather) Snapshot() forecast.CurrentSnapshot {
	return forecast.CurrentSnapshot{
		City:        w.City,
		Country:     w.Country,
		Latitude:    w.Latitude,
		Longitude:   w.Longitude,
		Temperature: w.Temperature,
		FeelsLike:   w.FeelsLike,
		TempMin:     w.TempMin,
		TempMax:     w.TempMax,
		Humidity:    w.Humidity,
		Pressure:    w.Pressure,
		Cloudiness:  w.Cloudiness,
		Visibility:  w.Visibility,
		WindSpeed:   w.WindSpeed,
		WindGust:    w.WindGust,
		Condition:   w.Condition,
		Description: w.Description,
		Icon:        w.Icon,
		Sunrise:     w.Sunrise,
		Sunset:      w.Sunset,
		ObservedAt:  w.Timestamp,
	}
}

// Location returns the fixed zone of the forecast city
func (f *Forecast) Location() *time.Location {
	return zoneFor(f.TimezoneOffset)
}

func zoneFor(offsetSeconds int) *time.Location {
	if offsetSeconds == 0 {
		return time.UTC
	}
	return time.FixedZone(formatOffset(offsetSeconds), offsetSeconds)
}

func formatOffset(offsetSeconds int) string {
	sign := "+"
	if offsetSeconds < 0 {
		sign = "-"
		offsetSeconds = -offsetSeconds
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, offsetSeconds/3600, (offsetSeconds%3600)/60)
}
