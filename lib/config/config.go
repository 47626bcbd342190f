package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rmrobinson/weatherdash/services/weather"
	"github.com/rmrobinson/weatherdash/services/weather/geolocate"
	"github.com/rmrobinson/weatherdash/services/weather/weatherapi"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	envPrefix = "WDASH"

	keyWeatherAPI    = "weather_api"
	keyWeatherAPIKey = "weather_api_key"
	keyLatitude      = "latitude"
	keyLongitude     = "longitude"
	keyGeoIPURL      = "geoip_url"
	keyLocale        = "locale"
	keyRateLimit     = "rate_limit"
	keyEnvFile       = "env_file"
)

// Names used by the browser dashboard's env files; honoured when the WDASH_ variants are unset.
var legacyEnvVars = map[string]string{
	keyWeatherAPI:    "VITE_WEATHER_API",
	keyWeatherAPIKey: "VITE_WEATHER_API_KEY",
}

// Config holds the settings shared by the dashboard commands.
type Config struct {
	WeatherAPI    string
	WeatherAPIKey string

	// HasPosition is set if both a latitude and longitude were configured.
	HasPosition bool
	Latitude    float64
	Longitude   float64

	GeoIPURL  string
	Locale    string
	RateLimit float64
}

// Load builds the configuration from, in increasing priority, defaults, an optional .env file, the environment and flags.
// The flag set may be extended by the caller before calling Load.
func Load(flags *pflag.FlagSet, args []string) (*Config, error) {
	v := viper.New()

	flags.String(keyWeatherAPI, weatherapi.DefaultBaseURL, "weatherapi.com base URL")
	flags.String(keyWeatherAPIKey, "", "weatherapi.com API key")
	flags.Float64(keyLatitude, 0, "fixed latitude; skips the IP lookup when set with --longitude")
	flags.Float64(keyLongitude, 0, "fixed longitude; skips the IP lookup when set with --latitude")
	flags.String(keyGeoIPURL, geolocate.DefaultLookupURL, "ip-api compatible lookup URL")
	flags.String(keyLocale, "en-US", "locale used to format chart labels")
	flags.Float64(keyRateLimit, 0, "maximum weather API requests per second; 0 is unlimited")
	flags.String(keyEnvFile, ".env", "optional env file to load")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	envFile, _ := flags.GetString(keyEnvFile)
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("unable to load %s: %w", envFile, err)
	}

	v.SetEnvPrefix(envPrefix)
	for _, key := range []string{keyWeatherAPI, keyWeatherAPIKey, keyLatitude, keyLongitude, keyGeoIPURL, keyLocale, keyRateLimit} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}

	for key, envVar := range legacyEnvVars {
		if val, ok := os.LookupEnv(envVar); ok && !v.IsSet(key) {
			v.Set(key, val)
		}
	}

	return &Config{
		WeatherAPI:    v.GetString(keyWeatherAPI),
		WeatherAPIKey: v.GetString(keyWeatherAPIKey),
		HasPosition:   v.IsSet(keyLatitude) && v.IsSet(keyLongitude),
		Latitude:      v.GetFloat64(keyLatitude),
		Longitude:     v.GetFloat64(keyLongitude),
		GeoIPURL:      v.GetString(keyGeoIPURL),
		Locale:        v.GetString(keyLocale),
		RateLimit:     v.GetFloat64(keyRateLimit),
	}, nil
}

// NewDashboard wires the location resolvers, the weather feed and the labeler described by the config.
func (c *Config) NewDashboard(logger *zap.Logger) *weather.Dashboard {
	var resolvers []weather.Resolver
	if c.HasPosition {
		resolvers = append(resolvers, geolocate.NewStatic(c.Latitude, c.Longitude))
	}
	resolvers = append(resolvers, geolocate.NewIPLookup(logger.Named("geolocate"), c.GeoIPURL))

	feed := weatherapi.NewService(logger.Named("weatherapi"), c.WeatherAPI, c.WeatherAPIKey)
	feed.SetRateLimit(c.RateLimit)

	return weather.NewDashboard(logger,
		geolocate.NewChain(logger, resolvers...),
		feed,
		weather.NewLabeler(c.Locale),
		nil,
	)
}
