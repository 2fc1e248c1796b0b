// Package config loads optional default settings from a YAML file.
//
// Values from the file fill in defaults only; explicit CLI flags always win.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds defaults that CLI flags may override.
type Config struct {
	Days    int    `yaml:"days"`    // Dormancy window in days
	Output  string `yaml:"output"`  // Report destination path
	Format  string `yaml:"format"`  // Report format: text, json, csv
	Exclude string `yaml:"exclude"` // Path to a gitignore-style pattern file
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}

	if cfg.Days < 0 {
		return nil, fmt.Errorf("config %q: days must be positive, got %d", path, cfg.Days)
	}
	return &cfg, nil
}
