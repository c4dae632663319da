package ports

import (
	"context"
	"time"
)

// CurrentWeatherData represents the current conditions snapshot for a city
type CurrentWeatherData struct {
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

// ForecastSample is a single point of a forecast series as returned by a provider
type ForecastSample struct {
	Timestamp           int64
	DateText            string
	Temperature         float64
	FeelsLike           float64
	TempMin             float64
	TempMax             float64
	Humidity            int
	Pressure            int
	WindSpeed           float64
	Cloudiness          int
	PrecipitationChance float64
	Condition           string
	Description         string
	Icon                string
}

// ForecastData represents a time-ordered forecast series plus location metadata
type ForecastData struct {
	City           string
	Country        string
	Latitude       float64
	Longitude      float64
	TimezoneOffset int
	Sunrise        int64
	Sunset         int64
	Provider       string
	Samples        []ForecastSample
	FetchedAt      time.Time
}

// CacheStats represents cache performance metrics
type CacheStats struct {
	Hits        int64
	Misses      int64
	TotalOps    int64
	HitRatio    float64
	LastUpdated time.Time
}

// WeatherProvider defines the contract for weather data providers
type WeatherProvider interface {
	GetCurrentWeather(ctx context.Context, city string) (*CurrentWeatherData, error)
	GetForecast(ctx context.Context, city string) (*ForecastData, error)
	GetProviderName() string
}

// WeatherProviderManager defines the contract for managing multiple weather providers
type WeatherProviderManager interface {
	GetCurrentWeather(ctx context.Context, city string) (*CurrentWeatherData, error)
	GetForecast(ctx context.Context, city string) (*ForecastData, error)
	GetProviderInfo() map[string]interface{}
}

// WeatherCache defines the contract for caching fetched weather payloads
type WeatherCache interface {
	GetCurrent(ctx context.Context, key string) (*CurrentWeatherData, error)
	SetCurrent(ctx context.Context, key string, data *CurrentWeatherData, ttl time.Duration) error
	GetForecast(ctx context.Context, key string) (*ForecastData, error)
	SetForecast(ctx context.Context, key string, data *ForecastData, ttl time.Duration) error
}

// WeatherMetrics defines the contract for weather provider metrics
type WeatherMetrics interface {
	GetProviderInfo() map[string]interface{}
	GetCacheMetrics() (CacheStats, error)
}

// CityInfo is the canonical identity of a city as resolved by a provider
type CityInfo struct {
	Name      string
	Country   string
	Latitude  float64
	Longitude float64
}

// CityValidator resolves user input to a known city
type CityValidator interface {
	ValidateCity(ctx context.Context, city string) (*CityInfo, error)
}
