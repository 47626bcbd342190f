package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newFlags() *pflag.FlagSet {
	return pflag.NewFlagSet("test", pflag.ContinueOnError)
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newFlags(), []string{"--env_file", missingEnvFile(t)})
	require.NoError(t, err)

	assert.Equal(t, "https://api.weatherapi.com/v1/", cfg.WeatherAPI)
	assert.Equal(t, "http://ip-api.com/json/", cfg.GeoIPURL)
	assert.Equal(t, "en-US", cfg.Locale)
	assert.False(t, cfg.HasPosition)
	assert.Zero(t, cfg.RateLimit)
}

func TestLoadFlags(t *testing.T) {
	cfg, err := Load(newFlags(), []string{
		"--env_file", missingEnvFile(t),
		"--weather_api_key", "abc",
		"--latitude", "43.45",
		"--longitude", "-80.49",
		"--locale", "de-DE",
		"--rate_limit", "2",
	})
	require.NoError(t, err)

	assert.Equal(t, "abc", cfg.WeatherAPIKey)
	assert.True(t, cfg.HasPosition)
	assert.Equal(t, 43.45, cfg.Latitude)
	assert.Equal(t, -80.49, cfg.Longitude)
	assert.Equal(t, "de-DE", cfg.Locale)
	assert.Equal(t, 2.0, cfg.RateLimit)
}

func TestLoadLatitudeOnly(t *testing.T) {
	cfg, err := Load(newFlags(), []string{"--env_file", missingEnvFile(t), "--latitude", "1"})
	require.NoError(t, err)
	assert.False(t, cfg.HasPosition)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("WDASH_WEATHER_API_KEY", "from-env")
	t.Setenv("WDASH_LATITUDE", "10")
	t.Setenv("WDASH_LONGITUDE", "20")

	cfg, err := Load(newFlags(), []string{"--env_file", missingEnvFile(t)})
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.WeatherAPIKey)
	assert.True(t, cfg.HasPosition)
	assert.Equal(t, 10.0, cfg.Latitude)

	cfg, err = Load(newFlags(), []string{"--env_file", missingEnvFile(t), "--weather_api_key", "from-flag"})
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.WeatherAPIKey)
}

func TestLoadEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("VITE_WEATHER_API=http://localhost:9999/v1/\nVITE_WEATHER_API_KEY=legacy\n"), 0600))
	defer os.Unsetenv("VITE_WEATHER_API")
	defer os.Unsetenv("VITE_WEATHER_API_KEY")

	cfg, err := Load(newFlags(), []string{"--env_file", envFile})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/v1/", cfg.WeatherAPI)
	assert.Equal(t, "legacy", cfg.WeatherAPIKey)
}

func TestLoadBadFlag(t *testing.T) {
	_, err := Load(newFlags(), []string{"--latitude", "north"})
	assert.Error(t, err)
}

func TestNewDashboard(t *testing.T) {
	cfg := &Config{
		WeatherAPI:  "http://127.0.0.1:1/",
		HasPosition: true,
		Locale:      "en-US",
	}
	assert.NotNil(t, cfg.NewDashboard(zap.NewNop()))
}
