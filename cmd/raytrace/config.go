// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/photon/geodesic"
)

// Config is the optional YAML configuration file. Flags override it.
//
//	solver:
//	  tolerance: 1.0e-12
//	  min_samples: 1
//	batch:
//	  workers: 8
//	log_level: info
type Config struct {
	Solver   SolverConfig `yaml:"solver"`
	Batch    BatchConfig  `yaml:"batch"`
	LogLevel string       `yaml:"log_level" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
}

// SolverConfig maps onto geodesic options.
type SolverConfig struct {
	Tolerance  float64 `yaml:"tolerance" validate:"gte=0"`
	MinSamples int     `yaml:"min_samples" validate:"gte=1"`
}

// BatchConfig configures the batch command. Workers 0 means GOMAXPROCS.
type BatchConfig struct {
	Workers int `yaml:"workers" validate:"gte=0"`
}

func defaultConfig() Config {
	return Config{
		Solver: SolverConfig{
			Tolerance:  geodesic.DefaultTolerance,
			MinSamples: geodesic.DefaultMinSamples,
		},
		LogLevel: "info",
	}
}

var configValidate = validator.New()

// loadConfig reads path on top of the defaults; an empty path yields the
// defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := configValidate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// solverOptions turns the solver section into geodesic options.
func (c Config) solverOptions() []geodesic.Option {
	return []geodesic.Option{
		geodesic.WithTolerance(c.Solver.Tolerance),
		geodesic.WithMinSamples(c.Solver.MinSamples),
	}
}

// parseLevel accepts the slog level names, case-insensitively.
func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}

	return lvl, nil
}
