// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/samdwyer/pursuit/internal/entity"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible starting
	// positions and computer moves. A seed of 0 means a random seed will be
	// generated.
	Seed int64 `env:"PURSUIT_SEED" envDefault:"0"`

	// Headless logs events instead of drawing the terminal UI.
	Headless bool `env:"PURSUIT_HEADLESS" envDefault:"false"`

	// Human is the participant played from the keyboard: empty for none,
	// "quarry", or a pursuer colour name.
	Human string `env:"PURSUIT_HUMAN"`

	LogLevel string `env:"PURSUIT_LOG_LEVEL" envDefault:"info"`

	Telemetry        bool   `env:"PURSUIT_TELEMETRY" envDefault:"false"`
	HoneycombAPIKey  string `env:"HONEYCOMB_PURSUIT_API_KEY"`
	HoneycombDataset string `env:"HONEYCOMB_PURSUIT_DATASET" envDefault:"pursuit"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	if _, _, err := cfg.HumanColour(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Level returns the parsed log level.
func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("parse log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// HumanColour returns the colour played from the keyboard, if any.
func (c Config) HumanColour() (entity.Colour, bool, error) {
	switch name := strings.TrimSpace(c.Human); name {
	case "":
		return 0, false, nil
	case "quarry":
		return entity.QuarryColour, true, nil
	default:
		colour, ok := entity.ParseColour(name)
		if !ok {
			return 0, false, fmt.Errorf("unknown human colour %q", name)
		}
		return colour, true, nil
	}
}
