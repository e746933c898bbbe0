// Package config holds the runtime settings of the pipeloop CLI and loads
// them from an optional YAML file.
//
//	walls: mutual      # or "loop"
//	color: true
//	log_level: debug   # debug, info, warn, error
package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pipeloop/solver"
)

var (
	// ErrInvalidWalls indicates an unknown wall mode.
	ErrInvalidWalls = errors.New("config: invalid walls mode")
	// ErrInvalidLogLevel indicates an unknown log level.
	ErrInvalidLogLevel = errors.New("config: invalid log level")
)

// Config holds runtime options for a pipeloop run.
type Config struct {
	Walls    string `yaml:"walls"`     // flood wall rule: "mutual" or "loop"
	Color    bool   `yaml:"color"`     // colored backgrounds when rendering
	LogLevel string `yaml:"log_level"` // zap level name
}

// Default returns mutual walls, no color and warn-level logging.
func Default() Config {
	return Config{
		Walls:    string(solver.WallsMutual),
		Color:    false,
		LogLevel: "warn",
	}
}

// Load reads a YAML file over the defaults. Keys absent from the file
// keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the wall mode and log level.
func (c Config) Validate() error {
	if _, err := solver.ParseWalls(c.Walls); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidWalls, c.Walls)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the zap level named by LogLevel.
func (c Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return lvl, nil
}
