package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Weather
	WeatherProvider WeatherProviderManager
	WeatherCache    WeatherCache
	WeatherMetrics  WeatherMetrics

	// Profiles
	UserRepository         UserRepository
	FavoriteCityRepository FavoriteCityRepository

	// Cache
	CacheProvider CacheProvider
	CacheMetrics  CacheMetrics

	// Observability
	ForecastMetrics ForecastMetrics
	ProviderMetrics ProviderMetrics

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Database       interface{}
}
