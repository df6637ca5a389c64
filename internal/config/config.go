package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file written by `vypis init`.
const FileName = "vypis.yaml"

// Config represents the top-level vypis.yaml configuration. All fields
// have defaults; the file is optional.
type Config struct {
	Currency  string `yaml:"currency"`   // label used in reports, e.g. "Kč"
	RulesPath string `yaml:"rules_path"` // default rules file
	ChartPath string `yaml:"chart_path"` // default pie chart output
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Currency:  "Kč",
		RulesPath: "rules.json",
		ChartPath: "expenses.png",
	}
}

// Load reads a vypis.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault reads the config if it exists, falling back to
// defaults when the file is absent.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
