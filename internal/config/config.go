// Package config loads tool settings from a YAML file and applies CLI
// overrides on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Valid output formats
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
)

// DefaultMaxDepth is the parse-time nesting bound applied when the config
// does not set one.
const DefaultMaxDepth = 10000

// Config represents the complete configuration for jsoncompare
type Config struct {
	Format         string `yaml:"format"`
	Color          bool   `yaml:"color"`
	StrictNumbers  bool   `yaml:"strict_numbers"`
	OnlyMismatches bool   `yaml:"only_mismatches"`
	Stats          bool   `yaml:"stats"`
	MaxDepth       int    `yaml:"max_depth"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Format:   FormatText,
		MaxDepth: DefaultMaxDepth,
	}
}

// Validate checks that config values are usable
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatTable, FormatJSON:
	default:
		return fmt.Errorf("invalid output format %q: must be one of %s, %s, %s", c.Format, FormatText, FormatTable, FormatJSON)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive, got %d", c.MaxDepth)
	}
	return nil
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".jsoncompare.yml", ".jsoncompare.yaml", "jsoncompare.yml", "jsoncompare.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}
