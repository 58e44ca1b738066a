package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"campaign-insights/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. See the individual types in the configs package
// for default values and options. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is attached
	// to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server (HTTP_ prefix).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_ prefix).
	Log configs.Logger `envPrefix:"LOG_"`

	// Storage picks the dashboard repository (STORAGE_ prefix).
	Storage configs.Storage `envPrefix:"STORAGE_"`

	// Psql configures the PostgreSQL connection (PSQL_ prefix).
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Dashboard tunes refresh and table behaviour (DASHBOARD_ prefix).
	Dashboard configs.Dashboard `envPrefix:"DASHBOARD_"`
}

// Load reads configuration from environment variables into a Config. All
// fields are loaded with their specified defaults when no environment
// variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
