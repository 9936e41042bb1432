package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/conlog/console"
	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/formatter"
	"github.com/philipp01105/conlog/logger"
)

// Environment variables that override file settings.
const (
	EnvLevel = "CONLOG_LEVEL"
	EnvAsync = "CONLOG_ASYNC"
	EnvColor = "CONLOG_COLOR"
)

// Config holds the settings used to build a logger.Core.
type Config struct {
	Level           core.Level        `yaml:"level"`
	Async           bool              `yaml:"async"`
	Color           console.ColorMode `yaml:"color"`
	Timestamps      bool              `yaml:"timestamps"`
	TimestampFormat string            `yaml:"timestamp_format"`
	LevelTags       bool              `yaml:"level_tags"`
	// LevelColors maps level names to color names for the convenience
	// methods. Levels not listed keep their default color.
	LevelColors map[string]string `yaml:"level_colors"`
}

// Default returns the settings of logger.NewBuilder.
func Default() Config {
	return Config{
		Level: core.InfoLevel,
		Async: true,
		Color: console.ColorAuto,
	}
}

// Load reads path, applies the environment overrides and validates the
// result. An empty path or a missing file yields the defaults plus the
// environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if cfg, err = Parse(data); err != nil {
				return Config{}, fmt.Errorf("config: %s: %w", path, err)
			}
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes YAML data over the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the environment variables found by
// lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	var err error
	if v, ok := lookup(EnvLevel); ok {
		lvl, perr := core.ParseLevel(v)
		if perr != nil {
			multierr.AppendInto(&err, fmt.Errorf("config: %s: %w", EnvLevel, perr))
		} else {
			c.Level = lvl
		}
	}
	if v, ok := lookup(EnvAsync); ok {
		async, perr := strconv.ParseBool(v)
		if perr != nil {
			multierr.AppendInto(&err, fmt.Errorf("config: %s: %w", EnvAsync, perr))
		} else {
			c.Async = async
		}
	}
	if v, ok := lookup(EnvColor); ok {
		mode, perr := console.ParseColorMode(v)
		if perr != nil {
			multierr.AppendInto(&err, fmt.Errorf("config: %s: %w", EnvColor, perr))
		} else {
			c.Color = mode
		}
	}
	return err
}

// Validate checks every field and returns all problems found.
func (c Config) Validate() error {
	var err error
	if !c.Level.Valid() {
		multierr.AppendInto(&err, fmt.Errorf("config: invalid level %d", c.Level))
	}
	for name, col := range c.LevelColors {
		if _, perr := core.ParseLevel(name); perr != nil {
			multierr.AppendInto(&err, fmt.Errorf("config: level_colors: %w", perr))
		}
		if _, perr := core.ParseColor(col); perr != nil {
			multierr.AppendInto(&err, fmt.Errorf("config: level_colors.%s: %w", name, perr))
		}
	}
	return err
}

// Builder returns a logger.Builder carrying c. Diagnostics and the
// output writer are left to the caller.
func (c Config) Builder() (*logger.Builder, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	b := logger.NewBuilder().
		WithLevel(c.Level).
		WithAsync(c.Async).
		WithColor(c.Color).
		WithFormatter(formatter.NewTextFormatter(formatter.Config{
			Timestamps:      c.Timestamps,
			TimestampFormat: c.TimestampFormat,
			LevelTags:       c.LevelTags,
		}))
	for name, col := range c.LevelColors {
		lvl, _ := core.ParseLevel(name)
		cc, _ := core.ParseColor(col)
		b.WithLevelColor(lvl, cc)
	}
	return b, nil
}
