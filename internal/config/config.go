package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the map generator.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - FrontendBase: Base URL used to build listing detail links in popups.
// - BackendBase: Base URL used to complete relative image paths.
// - OutputPath: Path the map artifact is written to.
// - Port: The port for the monitoring server.
// - ProviderType: The type of geocoding provider to use (nominatim, google).
// - APIKey: The API key for the provider (required for Google).
// - GeocodeInterval: Minimum spacing between live geocode calls.
// - RefreshInterval: Regeneration interval; zero means generate once and exit.
// - Database: Configuration settings for the PostgreSQL database.
type Config struct {
	Env             string
	FrontendBase    string
	BackendBase     string
	OutputPath      string
	Port            int
	ProviderType    string
	APIKey          string
	GeocodeInterval time.Duration
	RefreshInterval time.Duration
	Database        PostgresConfig
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string // Host is the database server address.
	Port     string // Port is the database server port.
	User     string // User is the database user.
	Password string // Password is the database user's password.
	Name     string // Name is the name of the database.
}

// MustLoad reads configuration from the environment (and a .env file when
// present), applying the documented defaults. It panics on malformed
// values, since the generator cannot run with a broken configuration.
func MustLoad() *Config {
	_ = godotenv.Load()

	vpr := viper.New()
	vpr.AutomaticEnv()
	vpr.SetDefault("MAPGEN_ENV", "production")
	vpr.SetDefault("MAPGEN_FRONTEND_BASE", "http://localhost:5173")
	vpr.SetDefault("MAPGEN_BACKEND_BASE", "http://localhost:3000")
	vpr.SetDefault("MAPGEN_OUTPUT", "map.html")
	vpr.SetDefault("MAPGEN_HEALTH_PORT", 8080)
	vpr.SetDefault("MAPGEN_PROVIDER_TYPE", "nominatim")
	vpr.SetDefault("MAPGEN_GEOCODE_INTERVAL", "1s")
	vpr.SetDefault("MAPGEN_REFRESH_INTERVAL", "0")
	vpr.SetDefault("DB_PORT", "5432")

	geocodeInterval, err := time.ParseDuration(vpr.GetString("MAPGEN_GEOCODE_INTERVAL"))
	if err != nil {
		panic("failed to parse geocode interval from configuration")
	}

	refreshInterval, err := time.ParseDuration(vpr.GetString("MAPGEN_REFRESH_INTERVAL"))
	if err != nil {
		panic("failed to parse refresh interval from configuration")
	}

	port := vpr.GetInt("MAPGEN_HEALTH_PORT")
	if port <= 0 {
		panic("failed to parse port for monitoring server from configuration")
	}

	return &Config{
		Env:             vpr.GetString("MAPGEN_ENV"),
		FrontendBase:    vpr.GetString("MAPGEN_FRONTEND_BASE"),
		BackendBase:     vpr.GetString("MAPGEN_BACKEND_BASE"),
		OutputPath:      vpr.GetString("MAPGEN_OUTPUT"),
		Port:            port,
		ProviderType:    vpr.GetString("MAPGEN_PROVIDER_TYPE"),
		APIKey:          vpr.GetString("MAPGEN_PROVIDER_KEY"),
		GeocodeInterval: geocodeInterval,
		RefreshInterval: refreshInterval,
		Database: PostgresConfig{
			Host:     vpr.GetString("DB_HOST"),
			Port:     vpr.GetString("DB_PORT"),
			User:     vpr.GetString("DB_USERNAME"),
			Password: vpr.GetString("DB_PASSWORD"),
			Name:     vpr.GetString("DB_NAME"),
		},
	}
}
