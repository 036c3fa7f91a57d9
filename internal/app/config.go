package app

import (
	"errors"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv    string `envconfig:"APP_ENV" default:"development"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// DataDir is the directory holding the CSV tables. It is created on
	// first use when absent.
	DataDir string `envconfig:"DATA_DIR" default:"data"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.DataDir) == "" {
		return nil, errors.New("data dir must be provided")
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
