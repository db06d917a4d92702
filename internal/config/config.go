package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime configuration for the server, parsed from environment variables.
type Config struct {
	Port string `env:"PORT" envDefault:"4000"`
	// PublicBaseURL is the absolute base used by clients to build data fetch links.
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:4000"`
	// DataDir optionally overrides the bundled datasets with {DataDir}/{name}.json files.
	DataDir string `env:"DATA_DIR"`

	Images   ImagesConfig
	Optimize OptimizeConfig
	Log      LogConfig
	Metrics  MetricsConfig
	Tracing  TracingConfig
}

// ImagesConfig controls stadium image URL sanitization.
type ImagesConfig struct {
	AllowedPrefix string `env:"STADIUM_IMAGE_ALLOWED_PREFIX" envDefault:"https://upload.wikimedia.org/"`
	Fallback      string `env:"STADIUM_IMAGE_FALLBACK" envDefault:"/basketball-logo.svg"`
}

// OptimizeConfig sizes the illustrative sort timed by /optimize.
type OptimizeConfig struct {
	SortSize int `env:"OPTIMIZE_SORT_SIZE" envDefault:"100000"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.PublicBaseURL = strings.TrimSuffix(cfg.PublicBaseURL, "/")
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot start with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if c.Images.Fallback == "" {
		return fmt.Errorf("STADIUM_IMAGE_FALLBACK must not be empty")
	}
	if c.Optimize.SortSize <= 0 {
		return fmt.Errorf("OPTIMIZE_SORT_SIZE must be positive, got %d", c.Optimize.SortSize)
	}
	return nil
}
