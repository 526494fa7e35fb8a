package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads and parses the configuration from a YAML file.
func LoadFile(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses configuration YAML, applies defaults, and validates.
func Parse(data []byte) (*Config, error) {
	var rawConfig map[string]any
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	// Set defaults
	if cfg.StorageClass.NameSuffix == "" {
		cfg.StorageClass.NameSuffix = DefaultNameSuffix
	}
	if cfg.StorageClass.Parameters.Repl == 0 {
		cfg.StorageClass.Parameters.Repl = DefaultRepl
	}

	// Default the StorageClass to enabled unless explicitly disabled.
	if !cfg.StorageClass.Enabled {
		cfg.StorageClass.Enabled = shouldEnableByDefault(rawConfig)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// shouldEnableByDefault determines if the StorageClass should be enabled when
// not explicitly configured. Returns true unless the enabled field was
// explicitly set to false in the raw config.
func shouldEnableByDefault(rawConfig map[string]any) bool {
	scMap, ok := rawConfig["storage_class"].(map[string]any)
	if !ok {
		return true // No storage_class section, default to enabled
	}

	_, explicitlySet := scMap["enabled"]
	return !explicitlySet
}
