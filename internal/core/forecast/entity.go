// Package forecast turns raw forecast series and current-conditions snapshots into
// hourly and daily view data in either temperature unit. Everything here is a pure
// function of its inputs: no I/O, no shared state, no errors.
package forecast

import "time"

// WeatherSample is a single forecast point at provider granularity (usually 3 hours)
type WeatherSample struct {
	Timestamp           int64
	DateText            string
	Temperature         float64
	FeelsLike           float64
	MinTemperature      float64
	MaxTemperature      float64
	Humidity            int
	Pressure            int
	WindSpeed           float64
	Cloudiness          int
	PrecipitationChance float64
	Condition           string
	Description         string
	Icon                string
}

// CurrentSnapshot is the current-conditions payload for one location
type CurrentSnapshot struct {
	City        string
	Country     string
	Latitude    float64
	Longitude   float64
	Temperature float64
	FeelsLike   float64
	TempMin     float64
	TempMax     float64
	Humidity    int
	Pressure    int
	Cloudiness  int
	Visibility  int
	WindSpeed   float64
	WindGust    float64
	Condition   string
	Description string
	Icon        string
	Sunrise     int64
	Sunset      int64
	ObservedAt  time.Time
}

// HourlyEntry is one sample of the hourly view
type HourlyEntry struct {
	Time                string             `json:"time"`
	Timestamp           int64              `json:"timestamp"`
	DateText            string             `json:"date_text,omitempty"`
	Temperature         DisplayTemperature `json:"temperature"`
	FeelsLike           DisplayTemperature `json:"feels_like"`
	Humidity            int                `json:"humidity"`
	WindSpeed           float64            `json:"wind_speed"`
	Cloudiness          int                `json:"cloudiness"`
	PrecipitationChance float64            `json:"precipitation_chance"`
	Condition           string             `json:"condition"`
	Description         string             `json:"description"`
	Icon                string             `json:"icon"`
	IconInfo            IconInfo           `json:"icon_info"`
	Degraded            bool               `json:"degraded,omitempty"`
}

// DailySummary collapses all samples of one calendar date
type DailySummary struct {
	Date        string             `json:"date"`
	Weekday     string             `json:"weekday"`
	Min         DisplayTemperature `json:"min"`
	Max         DisplayTemperature `json:"max"`
	Condition   string             `json:"condition"`
	Description string             `json:"description"`
	Icon        string             `json:"icon"`
	IconInfo    IconInfo           `json:"icon_info"`
	SampleCount int                `json:"sample_count"`
}

// CurrentView is the display form of a CurrentSnapshot
type CurrentView struct {
	City          string             `json:"city"`
	Country       string             `json:"country,omitempty"`
	Temperature   DisplayTemperature `json:"temperature"`
	FeelsLike     DisplayTemperature `json:"feels_like"`
	Min           DisplayTemperature `json:"min"`
	Max           DisplayTemperature `json:"max"`
	Condition     string             `json:"condition"`
	Description   string             `json:"description"`
	Icon          string             `json:"icon"`
	IconInfo      IconInfo           `json:"icon_info"`
	Humidity      string             `json:"humidity"`
	HumidityLabel string             `json:"humidity_label"`
	Wind          string             `json:"wind"`
	Visibility    string             `json:"visibility"`
	Pressure      string             `json:"pressure"`
	Cloudiness    string             `json:"cloudiness"`
	Sunrise       string             `json:"sunrise"`
	Sunset        string             `json:"sunset"`
}

// View is everything a screen needs to render one city
type View struct {
	City              string         `json:"city"`
	Unit              Unit           `json:"unit"`
	Current           *CurrentView   `json:"current,omitempty"`
	Hourly            []HourlyEntry  `json:"hourly"`
	Daily             []DailySummary `json:"daily"`
	ForecastAvailable bool           `json:"forecast_available"`
}

// DayGroup is the set of samples sharing one local calendar date, in input order
type DayGroup struct {
	Date    string
	Samples []WeatherSample
}
