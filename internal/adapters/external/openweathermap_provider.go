package external

import (
	"context"
	"net/url"
	"strings"
	"time"

	"forecastapi.app/internal/ports"
	"forecastapi.app/pkg/errors"
)

const openWeatherMapDefaultURL = "https://api.openweathermap.org/data/2.5"

// OpenWeatherMapProviderAdapter implements WeatherProvider port for OpenWeatherMap
type OpenWeatherMapProviderAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// OpenWeatherMapProviderParams holds parameters for creating OpenWeatherMap provider
type OpenWeatherMapProviderParams struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Client  HTTPClient
	Logger  ports.Logger
}

type owmCondition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type owmMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

type owmCoord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// OpenWeatherMapCurrentResponse is the /weather payload
type OpenWeatherMapCurrentResponse struct {
	Coord      owmCoord       `json:"coord"`
	Weather    []owmCondition `json:"weather"`
	Main       owmMain        `json:"main"`
	Visibility int            `json:"visibility"`
	Wind       struct {
		Speed float64 `json:"speed"`
		Gust  float64 `json:"gust"`
	} `json:"wind"`
	Clouds struct {
		All int `json:"all"`
	} `json:"clouds"`
	Dt  int64 `json:"dt"`
	Sys struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Timezone int    `json:"timezone"`
	Name     string `json:"name"`
}

// OpenWeatherMapForecastResponse is the 5 day / 3 hour /forecast payload
type OpenWeatherMapForecastResponse struct {
	List []struct {
		Dt      int64          `json:"dt"`
		Main    owmMain        `json:"main"`
		Weather []owmCondition `json:"weather"`
		Clouds  struct {
			All int `json:"all"`
		} `json:"clouds"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Pop   float64 `json:"pop"`
		DtTxt string  `json:"dt_txt"`
	} `json:"list"`
	City struct {
		Name     string   `json:"name"`
		Country  string   `json:"country"`
		Coord    owmCoord `json:"coord"`
		Timezone int      `json:"timezone"`
		Sunrise  int64    `json:"sunrise"`
		Sunset   int64    `json:"sunset"`
	} `json:"city"`
}

// NewOpenWeatherMapProviderAdapter creates a new OpenWeatherMap provider adapter
func NewOpenWeatherMapProviderAdapter(params OpenWeatherMapProviderParams) *OpenWeatherMapProviderAdapter {
	baseURL := strings.TrimRight(params.BaseURL, "/")
	if baseURL == "" {
		baseURL = openWeatherMapDefaultURL
	}

	client := params.Client
	if client == nil {
		client = newHTTPClient(params.Timeout)
	}

	return &OpenWeatherMapProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: baseURL,
		client:  client,
		logger:  params.Logger,
	}
}

// GetCurrentWeather retrieves current conditions from OpenWeatherMap
func (p *OpenWeatherMapProviderAdapter) GetCurrentWeather(ctx context.Context, city string) (*ports.CurrentWeatherData, error) {
	if city == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}

	var apiResp OpenWeatherMapCurrentResponse
	if err := getJSON(ctx, p.client, p.logger, "OpenWeatherMap", p.endpoint("weather", city), &apiResp); err != nil {
		return nil, err
	}

	condition := firstCondition(apiResp.Weather)
	name := apiResp.Name
	if name == "" {
		name = city
	}

	observedAt := time.Now()
	if apiResp.Dt > 0 {
		observedAt = time.Unix(apiResp.Dt, 0)
	}

	return &ports.CurrentWeatherData{
		City:           name,
		Country:        apiResp.Sys.Country,
		Latitude:       apiResp.Coord.Lat,
		Longitude:      apiResp.Coord.Lon,
		Temperature:    apiResp.Main.Temp,
		FeelsLike:      apiResp.Main.FeelsLike,
		TempMin:        apiResp.Main.TempMin,
		TempMax:        apiResp.Main.TempMax,
		Humidity:       apiResp.Main.Humidity,
		Pressure:       apiResp.Main.Pressure,
		Cloudiness:     apiResp.Clouds.All,
		Visibility:     apiResp.Visibility,
		WindSpeed:      apiResp.Wind.Speed,
		WindGust:       apiResp.Wind.Gust,
		Condition:      condition.Main,
		Description:    condition.Description,
		Icon:           condition.Icon,
		Sunrise:        apiResp.Sys.Sunrise,
		Sunset:         apiResp.Sys.Sunset,
		TimezoneOffset: apiResp.Timezone,
		Timestamp:      observedAt,
	}, nil
}

// GetForecast retrieves the 3-hourly forecast series from OpenWeatherMap
func (p *OpenWeatherMapProviderAdapter) GetForecast(ctx context.Context, city string) (*ports.ForecastData, error) {
	if city == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}

	var apiResp OpenWeatherMapForecastResponse
	if err := getJSON(ctx, p.client, p.logger, "OpenWeatherMap", p.endpoint("forecast", city), &apiResp); err != nil {
		return nil, err
	}

	samples := make([]ports.ForecastSample, 0, len(apiResp.List))
	for _, item := range apiResp.List {
		condition := firstCondition(item.Weather)
		samples = append(samples, ports.ForecastSample{
			Timestamp:           item.Dt,
			DateText:            item.DtTxt,
			Temperature:         item.Main.Temp,
			FeelsLike:           item.Main.FeelsLike,
			TempMin:             item.Main.TempMin,
			TempMax:             item.Main.TempMax,
			Humidity:            item.Main.Humidity,
			Pressure:            item.Main.Pressure,
			WindSpeed:           item.Wind.Speed,
			Cloudiness:          item.Clouds.All,
			PrecipitationChance: item.Pop,
			Condition:           condition.Main,
			Description:         condition.Description,
			Icon:                condition.Icon,
		})
	}

	name := apiResp.City.Name
	if name == "" {
		name = city
	}

	return &ports.ForecastData{
		City:           name,
		Country:        apiResp.City.Country,
		Latitude:       apiResp.City.Coord.Lat,
		Longitude:      apiResp.City.Coord.Lon,
		TimezoneOffset: apiResp.City.Timezone,
		Sunrise:        apiResp.City.Sunrise,
		Sunset:         apiResp.City.Sunset,
		Provider:       p.GetProviderName(),
		Samples:        samples,
		FetchedAt:      time.Now(),
	}, nil
}

// GetProviderName returns the name of this weather provider
func (p *OpenWeatherMapProviderAdapter) GetProviderName() string {
	return "openweathermap"
}

func (p *OpenWeatherMapProviderAdapter) endpoint(resource, city string) string {
	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", p.apiKey)
	params.Set("units", "metric")
	return p.baseURL + "/" + resource + "?" + params.Encode()
}

func firstCondition(conditions []owmCondition) owmCondition {
	if len(conditions) == 0 {
		return owmCondition{Main: "Clear", Description: "clear sky", Icon: "01d"}
	}
	return conditions[0]
}
