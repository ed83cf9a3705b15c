package config

import (
	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Storage
	DataFile    string `env:"WALLET_DATA_FILE"    envDefault:"wallets.json"`
	SaveRetries int    `env:"WALLET_SAVE_RETRIES" envDefault:"3"`

	// Display
	Currency string `env:"WALLET_CURRENCY" envDefault:"USD"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	// Metrics (empty disables the textfile export)
	MetricsTextfile string `env:"WALLET_METRICS_TEXTFILE" envDefault:""`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
