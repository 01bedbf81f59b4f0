// Package config provides configuration loading for the nxcube CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config represents the nxcube CLI configuration.
// Loaded from ~/.nxcube/config.yaml, overridden by NXCUBE_* environment
// variables and command-line flags.
type Config struct {
	// Size is the default cube size.
	// Env: NXCUBE_SIZE, Default: 3
	Size int `mapstructure:"size" yaml:"size"`

	// ScrambleLength is the default number of scramble moves.
	// Env: NXCUBE_SCRAMBLE_LENGTH, Default: 20
	ScrambleLength int `mapstructure:"scramble_length" yaml:"scramble_length"`

	// DBPath is the session database.
	// Env: NXCUBE_DB_PATH, Default: ~/.nxcube/nxcube.db
	DBPath string `mapstructure:"db_path" yaml:"db_path"`

	// LogLevel is one of debug, info, warn, error.
	// Env: NXCUBE_LOG_LEVEL, Default: info
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`

	// History keeps applied moves on the cube.
	// Env: NXCUBE_HISTORY, Default: true
	History bool `mapstructure:"history" yaml:"history"`

	// Seed makes scrambles reproducible. 0 uses the clock.
	// Env: NXCUBE_SEED
	Seed int64 `mapstructure:"seed" yaml:"seed"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `nxcube config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Size:           3,
		ScrambleLength: 20,
		DBPath:         "~/.nxcube/nxcube.db",
		LogLevel:       "info",
		History:        true,
	}
}

// Validate checks the values a cube and logger can be built from.
func (c *Config) Validate() error {
	if c.Size < 2 {
		return fmt.Errorf("%w: size %d must be at least 2", ErrInvalidConfig, c.Size)
	}
	if c.ScrambleLength < 0 {
		return fmt.Errorf("%w: scramble_length %d must not be negative", ErrInvalidConfig, c.ScrambleLength)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// WriteDefault writes the default configuration as YAML. An existing file
// is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	if !force {
		if _, err := os.Stat(expanded); err == nil {
			return fmt.Errorf("config file %s already exists", expanded)
		}
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	header := []byte("# nxcube configuration\n")
	if err := os.WriteFile(expanded, append(header, data...), 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
