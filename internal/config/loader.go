package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "merge.yaml"

// LoadMerge loads the merge game configuration.
// Search order: customPath -> ~/.mergeballs/configs/merge.yaml -> ./configs/merge.yaml -> embedded default
//
// Only a custom path that cannot be read or parsed is an error; broken files
// on the implicit search path are skipped. The result is not validated.
func LoadMerge(customPath string) (MergeConfig, error) {
	// Try custom path first
	if customPath != "" {
		return LoadFile(customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if cfg, err := LoadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := LoadFile(filepath.Join("configs", ConfigFile)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultMergeYAML)
	if err != nil {
		return DefaultMergeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads and parses a single YAML config file.
func LoadFile(path string) (MergeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MergeConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return MergeConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hardcoded defaults, so a file only needs
// to list the sections it changes. A file that lists tiers replaces the
// whole tier table.
func Parse(data []byte) (MergeConfig, error) {
	cfg := DefaultMergeConfig()
	cfg.Tiers = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MergeConfig{}, err
	}
	if cfg.Tiers == nil {
		cfg.Tiers = DefaultMergeConfig().Tiers
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mergeballs", "configs", filename)
}
