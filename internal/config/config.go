package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime settings. Everything has a default so the
// binary runs with an empty environment; there is no config file.
type Config struct {
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`
	ClinicName     string        `envconfig:"CLINIC_NAME" default:"Aurora Skin Care Clinic"`
	Seed           bool          `envconfig:"SEED" default:"true"`
	RenderCacheTTL time.Duration `envconfig:"RENDER_CACHE_TTL" default:"5m"`
}

// Load reads configuration from CLINIC_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("clinic", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	return &cfg, nil
}
