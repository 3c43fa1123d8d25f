// Package config reads the server's YAML configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the server settings.
type Config struct {
	// Addr is the listen address, host:port.
	Addr string `yaml:"addr"`
	// Mode is the gin mode: debug, release, or test.
	Mode string `yaml:"mode"`
	// LogLevel is a zerolog level name.
	LogLevel string `yaml:"log_level"`
	// Sessions caps the number of live solving sessions.
	Sessions int `yaml:"sessions"`
	// SolveLimit caps the solutions returned per solve request.
	SolveLimit int `yaml:"solve_limit"`
}

// Default returns the configuration used when nothing else is
// given.
func Default() Config {
	return Config{
		Addr:       ":8080",
		Mode:       "release",
		LogLevel:   "info",
		Sessions:   1000,
		SolveLimit: 100,
	}
}

// Load reads the configuration file at path, if path is
// non-empty, and applies environment overrides on top of the
// defaults.  SUDOKU_ADDR overrides the listen address.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if addr := os.Getenv("SUDOKU_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if cfg.Sessions <= 0 {
		cfg.Sessions = Default().Sessions
	}
	if cfg.SolveLimit <= 0 {
		cfg.SolveLimit = Default().SolveLimit
	}
	return cfg, nil
}
