// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/trinoise/digits"
)

var errInvalidConfig = errors.New("trinoise: invalid configuration")

// Output formats.
const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

// Config holds every CLI setting. It can be loaded from YAML and is
// overridden field by field by explicitly set flags.
type Config struct {
	// Base is N; the max tag mirrors digits.MaxBase.
	Base int `yaml:"base" validate:"min=2,max=15"`
	// Format selects text, yaml or json output.
	Format string `yaml:"format" validate:"oneof=text yaml json"`
	// Table answers per-index commands from a precomputed period table
	// instead of walking neighborhoods on demand.
	Table bool `yaml:"table"`
	// Workers is the table build parallelism; 0 means GOMAXPROCS.
	Workers int `yaml:"workers" validate:"gte=0,lte=1024"`
	// MaxPeriod overrides the table size limit; 0 keeps the default. The
	// lte tag mirrors segment.HardMaxPeriod.
	MaxPeriod uint64 `yaml:"max_period" validate:"lte=17179869184"`
	// LogLevel is debug, info, warn or error.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// defaultConfig returns the built-in settings.
func defaultConfig() Config {
	return Config{
		Base:     3,
		Format:   formatText,
		LogLevel: "warn",
	}
}

// loadConfigFile overlays the YAML file at path onto cfg. Keys absent from
// the file keep their current values.
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %v: %w", path, err, errInvalidConfig)
	}

	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateConfig checks cfg and translates base violations into the
// library's error kinds.
func validateConfig(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return fmt.Errorf("config: %v: %w", err, errInvalidConfig)
	}
	for _, fe := range fields {
		if fe.Field() != "Base" {
			continue
		}
		if fe.Tag() == "max" {
			return fmt.Errorf("config: base %d above %d: %w", cfg.Base, digits.MaxBase, digits.ErrOverflow)
		}

		return fmt.Errorf("config: base %d: %w", cfg.Base, digits.ErrInvalidBase)
	}

	return fmt.Errorf("config: %v: %w", fields, errInvalidConfig)
}

// logLevel converts the validated level name.
func (c Config) logLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
