package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds a ratefit run configuration. All fields are optional; flags
// override file values.
type Config struct {
	Input struct {
		CSV        string `yaml:"csv,omitempty"`         // CSV input path; empty means interactive prompt
		TimeColumn string `yaml:"time_column,omitempty"` // CSV time column name
		ConcColumn string `yaml:"conc_column,omitempty"` // CSV concentration column name
	} `yaml:"input"`
	Output struct {
		JSON string `yaml:"json,omitempty"` // Analysis JSON output path
		Plot string `yaml:"plot,omitempty"` // Plot output path (.svg/.png/.pdf)
	} `yaml:"output"`
	Verbose bool `yaml:"verbose,omitempty"`
}

// DefaultConfig returns an empty configuration: interactive prompt input,
// console output only.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads a run configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}
