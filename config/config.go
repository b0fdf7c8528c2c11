// Package config carries the CLI's tunable defaults, loaded from an
// optional YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for the pdcsample CLI.
type Config struct {
	Framework FrameworkConfig `yaml:"framework"`
	Sampling  SamplingConfig  `yaml:"sampling"`
}

// FrameworkConfig holds logging settings.
type FrameworkConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// SamplingConfig holds the default tuning knobs passed into
// bct.Options/latinsquare.Options.
type SamplingConfig struct {
	MaxRetries        int `yaml:"max_retries"`
	MaxColumnRepeats  int `yaml:"max_column_repeats"`
	InnerRejectionCap int `yaml:"inner_rejection_cap"`
}

// Default returns the built-in configuration, matching the sampler
// packages' own zero-value defaults.
func Default() *Config {
	return &Config{
		Framework: FrameworkConfig{
			LogLevel:  "info",
			LogFormat: "text",
		},
		Sampling: SamplingConfig{
			MaxRetries:        100_000,
			MaxColumnRepeats:  1000,
			InnerRejectionCap: 1_000_000,
		},
	}
}

// Load reads path as YAML, falling back to Default() when path is empty or
// does not exist.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
