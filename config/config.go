package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "prototags.yaml"

// Config holds all configuration for the prototags tool.
type Config struct {
	Scan   ScanConfig   `yaml:"scan"`
	Output OutputConfig `yaml:"output"`
	Index  IndexConfig  `yaml:"index"`
}

// ScanConfig controls which files are scanned and which tag kinds are kept.
type ScanConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
	// Kinds is a string of kind letters, e.g. "pmfegsr" for everything.
	// Empty means the built-in defaults (everything except RPC methods).
	Kinds string `yaml:"kinds"`
}

// OutputConfig controls how tags are printed.
type OutputConfig struct {
	Format string `yaml:"format"` // "tags", "pretty" or "json"
}

// IndexConfig controls the persistent tag index.
type IndexConfig struct {
	Path string `yaml:"path"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			Includes: []string{"**/*.proto"},
			Excludes: []string{"**/node_modules/**", "**/vendor/**", "**/.git/**"},
			Kinds:    "",
		},
		Output: OutputConfig{
			Format: "pretty",
		},
		Index: IndexConfig{
			Path: ".prototags.db",
		},
	}
}

// Load loads configuration from a YAML file, applying defaults for any
// field the file does not set.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// LoadFromDir loads prototags.yaml from dir if present, otherwise returns
// the defaults.
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, configFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return Load(path)
}
