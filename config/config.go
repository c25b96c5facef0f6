// Package config loads mazewalk's startup settings.
//
// Sources, later ones winning:
//  1. Default values.
//  2. A YAML file; a missing file is not an error.
//  3. Environment variables MAZEWALK_DELAY, MAZEWALK_SHOW_STATS and
//     MAZEWALK_LOG_LEVEL.
//
// Load validates the result, so a returned Config is always usable.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazewalk/grid"
	"github.com/katalvlaran/mazewalk/search"
	"github.com/katalvlaran/mazewalk/settings"
)

// Environment variable names.
const (
	EnvDelay     = "MAZEWALK_DELAY"
	EnvShowStats = "MAZEWALK_SHOW_STATS"
	EnvLogLevel  = "MAZEWALK_LOG_LEVEL"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the file and environment layout.
type Config struct {
	Delay     float64  `yaml:"delay" validate:"gte=0.1,lte=2"`
	ShowStats bool     `yaml:"show_stats"`
	Grid      []string `yaml:"grid,omitempty" validate:"omitempty,min=1,dive,min=1"`
	Algorithm string   `yaml:"algorithm" validate:"oneof=bfs dfs"`
	LogLevel  string   `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFile   string   `yaml:"log_file,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Delay:     settings.DefaultDelay,
		ShowStats: true,
		Algorithm: "bfs",
		LogLevel:  "info",
	}
}

// Load reads path over the defaults, applies the environment and validates.
// An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvDelay); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalid, EnvDelay, v)
		}
		c.Delay = f
	}
	if v, ok := lookup(EnvShowStats); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalid, EnvShowStats, v)
		}
		c.ShowStats = b
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	return nil
}

// Validate checks field ranges and that the grid, if any, parses.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fields validator.ValidationErrors
		if errors.As(err, &fields) && len(fields) > 0 {
			f := fields[0]
			return fmt.Errorf("%w: %s fails %q (got %v)", ErrInvalid, f.Field(), f.Tag(), f.Value())
		}
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if len(c.Grid) > 0 {
		if _, err := grid.Parse(c.Grid); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	return nil
}

// BuildGrid returns the configured grid or the canonical maze.
func (c Config) BuildGrid() (*grid.Grid, error) {
	if len(c.Grid) == 0 {
		return grid.Canonical(), nil
	}
	return grid.Parse(c.Grid)
}

// BuildSettings returns settings seeded from c.
func (c Config) BuildSettings() (*settings.Settings, error) {
	return settings.FromValues(c.Delay, c.ShowStats)
}

// DefaultAlgorithm parses the configured algorithm name.
func (c Config) DefaultAlgorithm() (search.Algorithm, error) {
	return search.ParseAlgorithm(c.Algorithm)
}

// Level maps LogLevel to a slog level.
func (c Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}
