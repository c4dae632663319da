// Package external provides adapters for external services
// These adapters implement ports for weather providers and caches.
package external

import (
	"context"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"forecastapi.app/internal/ports"
	"forecastapi.app/pkg/errors"
)

const (
	weatherAPIDefaultURL  = "https://api.weatherapi.com/v1"
	weatherAPIDefaultDays = 5
	kphToMetersPerSecond  = 1 / 3.6
)

// WeatherAPIProviderAdapter implements WeatherProvider port for WeatherAPI.com
type WeatherAPIProviderAdapter struct {
	apiKey       string
	baseURL      string
	forecastDays int
	client       HTTPClient
	logger       ports.Logger
}

// WeatherAPIProviderParams holds parameters for creating WeatherAPI provider
type WeatherAPIProviderParams struct {
	APIKey       string
	BaseURL      string
	ForecastDays int
	Timeout      time.Duration
	Client       HTTPClient
	Logger       ports.Logger
}

type weatherAPICondition struct {
	Text string `json:"text"`
	Code int    `json:"code"`
}

type weatherAPILocation struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	TzID    string  `json:"tz_id"`
}

type weatherAPICurrent struct {
	LastUpdatedEpoch int64               `json:"last_updated_epoch"`
	TempC            float64             `json:"temp_c"`
	FeelsLikeC       float64             `json:"feelslike_c"`
	IsDay            int                 `json:"is_day"`
	Condition        weatherAPICondition `json:"condition"`
	WindKph          float64             `json:"wind_kph"`
	GustKph          float64             `json:"gust_kph"`
	PressureMb       float64             `json:"pressure_mb"`
	Humidity         int                 `json:"humidity"`
	Cloud            int                 `json:"cloud"`
	VisKm            float64             `json:"vis_km"`
}

type weatherAPIHour struct {
	TimeEpoch    int64               `json:"time_epoch"`
	Time         string              `json:"time"`
	TempC        float64             `json:"temp_c"`
	FeelsLikeC   float64             `json:"feelslike_c"`
	IsDay        int                 `json:"is_day"`
	Condition    weatherAPICondition `json:"condition"`
	WindKph      float64             `json:"wind_kph"`
	PressureMb   float64             `json:"pressure_mb"`
	Humidity     int                 `json:"humidity"`
	Cloud        int                 `json:"cloud"`
	ChanceOfRain int                 `json:"chance_of_rain"`
	ChanceOfSnow int                 `json:"chance_of_snow"`
}

type weatherAPIForecastDay struct {
	Date string `json:"date"`
	Day  struct {
		MaxTempC float64 `json:"maxtemp_c"`
		MinTempC float64 `json:"mintemp_c"`
	} `json:"day"`
	Astro struct {
		Sunrise string `json:"sunrise"`
		Sunset  string `json:"sunset"`
	} `json:"astro"`
	Hour []weatherAPIHour `json:"hour"`
}

// WeatherAPIResponse represents the current.json and forecast.json payloads
type WeatherAPIResponse struct {
	Location weatherAPILocation `json:"location"`
	Current  weatherAPICurrent  `json:"current"`
	Forecast struct {
		ForecastDay []weatherAPIForecastDay `json:"forecastday"`
	} `json:"forecast"`
}

// NewWeatherAPIProviderAdapter creates a new WeatherAPI provider adapter
func NewWeatherAPIProviderAdapter(params WeatherAPIProviderParams) *WeatherAPIProviderAdapter {
	baseURL := strings.TrimRight(params.BaseURL, "/")
	if baseURL == "" {
		baseURL = weatherAPIDefaultURL
	}

	days := params.ForecastDays
	if days <= 0 {
		days = weatherAPIDefaultDays
	}

	client := params.Client
	if client == nil {
		client = newHTTPClient(params.Timeout)
	}

	return &WeatherAPIProviderAdapter{
		apiKey:       params.APIKey,
		baseURL:      baseURL,
		forecastDays: days,
		client:       client,
		logger:       params.Logger,
	}
}

// GetCurrentWeather retrieves current conditions from WeatherAPI.com
func (p *WeatherAPIProviderAdapter) GetCurrentWeather(ctx context.Context, city string) (*ports.CurrentWeatherData, error) {
	if city == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}

	params := url.Values{}
	params.Set("key", p.apiKey)
	params.Set("q", city)

	var apiResp WeatherAPIResponse
	if err := getJSON(ctx, p.client, p.logger, "WeatherAPI", p.baseURL+"/current.json?"+params.Encode(), &apiResp); err != nil {
		return nil, err
	}

	current := apiResp.Current
	condition, icon := weatherAPIConditionToOWM(current.Condition.Code, current.IsDay == 1)

	observedAt := time.Now()
	if current.LastUpdatedEpoch > 0 {
		observedAt = time.Unix(current.LastUpdatedEpoch, 0)
	}

	return &ports.CurrentWeatherData{
		City:           nameOr(apiResp.Location.Name, city),
		Country:        apiResp.Location.Country,
		Latitude:       apiResp.Location.Lat,
		Longitude:      apiResp.Location.Lon,
		Temperature:    current.TempC,
		FeelsLike:      current.FeelsLikeC,
		TempMin:        current.TempC,
		TempMax:        current.TempC,
		Humidity:       current.Humidity,
		Pressure:       int(math.Round(current.PressureMb)),
		Cloudiness:     current.Cloud,
		Visibility:     int(math.Round(current.VisKm * 1000)),
		WindSpeed:      current.WindKph * kphToMetersPerSecond,
		WindGust:       current.GustKph * kphToMetersPerSecond,
		Condition:      condition,
		Description:    strings.ToLower(current.Condition.Text),
		Icon:           icon,
		TimezoneOffset: zoneOffset(apiResp.Location.TzID, observedAt),
		Timestamp:      observedAt,
	}, nil
}

// GetForecast retrieves the hourly forecast series from WeatherAPI.com.
// Hours that ended before the latest observation are dropped.
func (p *WeatherAPIProviderAdapter) GetForecast(ctx context.Context, city string) (*ports.ForecastData, error) {
	if city == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}

	params := url.Values{}
	params.Set("key", p.apiKey)
	params.Set("q", city)
	params.Set("days", strconv.Itoa(p.forecastDays))
	params.Set("aqi", "no")
	params.Set("alerts", "no")

	var apiResp WeatherAPIResponse
	if err := getJSON(ctx, p.client, p.logger, "WeatherAPI", p.baseURL+"/forecast.json?"+params.Encode(), &apiResp); err != nil {
		return nil, err
	}

	observedAt := apiResp.Current.LastUpdatedEpoch
	zone := zoneLocation(apiResp.Location.TzID)
	offset := zoneOffset(apiResp.Location.TzID, time.Now())

	var samples []ports.ForecastSample
	for _, day := range apiResp.Forecast.ForecastDay {
		for _, hour := range day.Hour {
			start, known := weatherAPIHourStart(hour, zone)
			if known && observedAt > 0 && start.Unix()+3600 <= observedAt {
				continue
			}
			timestamp, dateText := int64(0), hour.Time
			if known {
				timestamp, dateText = start.Unix(), start.UTC().Format(sampleDateTextLayout)
			}

			condition, icon := weatherAPIConditionToOWM(hour.Condition.Code, hour.IsDay == 1)
			samples = append(samples, ports.ForecastSample{
				Timestamp:           timestamp,
				DateText:            dateText,
				Temperature:         hour.TempC,
				FeelsLike:           hour.FeelsLikeC,
				TempMin:             hour.TempC,
				TempMax:             hour.TempC,
				Humidity:            hour.Humidity,
				Pressure:            int(math.Round(hour.PressureMb)),
				WindSpeed:           hour.WindKph * kphToMetersPerSecond,
				Cloudiness:          hour.Cloud,
				PrecipitationChance: float64(max(hour.ChanceOfRain, hour.ChanceOfSnow)) / 100,
				Condition:           condition,
				Description:         strings.ToLower(hour.Condition.Text),
				Icon:                icon,
			})
		}
	}

	return &ports.ForecastData{
		City:           nameOr(apiResp.Location.Name, city),
		Country:        apiResp.Location.Country,
		Latitude:       apiResp.Location.Lat,
		Longitude:      apiResp.Location.Lon,
		TimezoneOffset: offset,
		Provider:       p.GetProviderName(),
		Samples:        samples,
		FetchedAt:      time.Now(),
	}, nil
}

// GetProviderName returns the name of this weather provider
func (p *WeatherAPIProviderAdapter) GetProviderName() string {
	return "weatherapi"
}

// weatherAPIConditionToOWM maps a WeatherAPI.com condition code onto an OpenWeatherMap
// condition group and icon code so both providers render through one icon table.
func weatherAPIConditionToOWM(code int, isDay bool) (string, string) {
	var condition, icon string
	switch {
	case code == 1000:
		condition, icon = "Clear", "01"
	case code == 1003:
		condition, icon = "Clouds", "02"
	case code == 1006:
		condition, icon = "Clouds", "03"
	case code == 1009:
		condition, icon = "Clouds", "04"
	case code == 1030:
		condition, icon = "Mist", "50"
	case code == 1135 || code == 1147:
		condition, icon = "Fog", "50"
	case code == 1087 || (code >= 1273 && code <= 1282):
		condition, icon = "Thunderstorm", "11"
	case code == 1150 || code == 1153 || code == 1168 || code == 1171:
		condition, icon = "Drizzle", "09"
	case code == 1063 || (code >= 1180 && code <= 1201) || (code >= 1240 && code <= 1246):
		condition, icon = "Rain", "10"
	case code == 1066 || code == 1069 || code == 1072 || code == 1114 || code == 1117 ||
		(code >= 1204 && code <= 1237) || (code >= 1249 && code <= 1264):
		condition, icon = "Snow", "13"
	default:
		condition, icon = "Clouds", "03"
	}

	if isDay {
		return condition, icon + "d"
	}
	return condition, icon + "n"
}

// sampleDateTextLayout is the UTC date-time text carried by forecast samples
const sampleDateTextLayout = "2006-01-02 15:04:05"

// weatherAPIHourStart returns the start of an hourly entry. The "time" field is the
// city's local wall clock, so it is only used when time_epoch is missing.
func weatherAPIHourStart(hour weatherAPIHour, zone *time.Location) (time.Time, bool) {
	if hour.TimeEpoch > 0 {
		return time.Unix(hour.TimeEpoch, 0), true
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", strings.TrimSpace(hour.Time), zone)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// zoneLocation loads an IANA zone, falling back to UTC
func zoneLocation(tzID string) *time.Location {
	if tzID == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tzID)
	if err != nil {
		return time.UTC
	}
	return loc
}

// zoneOffset resolves an IANA zone to its UTC offset in seconds at the given instant
func zoneOffset(tzID string, at time.Time) int {
	_, offset := at.In(zoneLocation(tzID)).Zone()
	return offset
}

func nameOr(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}

