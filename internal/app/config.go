package app

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds everything an App instance needs to run.
type Config struct {
	// GraphPath points at a single .hcl graph file or a directory of them.
	GraphPath string `env:"SEEDGRID_GRAPH"`

	// Runs is how many times the whole graph is executed in one process.
	Runs int `env:"SEEDGRID_RUNS"`

	LogFormat string `env:"SEEDGRID_LOG_FORMAT"`
	LogLevel  string `env:"SEEDGRID_LOG_LEVEL"`
}

// ConfigFromEnv returns the built-in defaults overlaid with any SEEDGRID_*
// environment variables. CLI flags are layered on top by the cli package.
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		Runs:      1,
		LogFormat: "text",
		LogLevel:  "info",
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse environment config: %w", err)
	}
	return cfg, nil
}

// NewConfig validates cfg and returns it ready for use.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.GraphPath == "" {
		return nil, errors.New("GraphPath is a required configuration field and cannot be empty")
	}
	if cfg.Runs < 1 {
		return nil, fmt.Errorf("Runs must be at least 1, got %d", cfg.Runs)
	}
	return &cfg, nil
}
