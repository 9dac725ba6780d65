package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the runtime configuration, loaded from environment
// variables with sensible local-development defaults.
type Config struct {
	AppPort  string
	Database DatabaseConfig
	// RabbitMQURL is the broker address for order lifecycle events.
	// Empty disables event publishing.
	RabbitMQURL string
	// APIBaseURL is where the tool-call adapter reaches the REST API.
	APIBaseURL string
	// ReleaseOnCancel controls whether cancelling an order returns its
	// reserved pets to inventory. The reference behavior keeps them
	// withdrawn, so this defaults to false.
	ReleaseOnCancel bool
	LogLevel        string
}

// DatabaseConfig selects the storage driver and its DSN.
type DatabaseConfig struct {
	Driver string // "sqlite" or "postgres"
	DSN    string
}

// Load reads configuration from the environment via viper.
func Load() (*Config, error) {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_DSN", "petshop.db")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("API_BASE_URL", "http://localhost:8080")
	viper.SetDefault("RELEASE_ON_CANCEL", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.AutomaticEnv()

	cfg := &Config{
		AppPort: viper.GetString("APP_PORT"),
		Database: DatabaseConfig{
			Driver: viper.GetString("DB_DRIVER"),
			DSN:    viper.GetString("DB_DSN"),
		},
		RabbitMQURL:     viper.GetString("RABBITMQ_URL"),
		APIBaseURL:      viper.GetString("API_BASE_URL"),
		ReleaseOnCancel: viper.GetBool("RELEASE_ON_CANCEL"),
		LogLevel:        viper.GetString("LOG_LEVEL"),
	}

	if cfg.Database.Driver != "sqlite" && cfg.Database.Driver != "postgres" {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (expected sqlite or postgres)", cfg.Database.Driver)
	}

	return cfg, nil
}
