package config

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Relative paths searched for a user config.
const (
	xdgConfigFile   = "tui-tetris/tetris.yaml"
	localConfigFile = "configs/tetris.yaml"
)

// SourceEmbedded names the built-in defaults in LoadWithSource results.
const SourceEmbedded = "embedded"

// Load loads and validates the game configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/tui-tetris/tetris.yaml ->
// ./configs/tetris.yaml -> embedded default.
func Load(customPath string) (Config, error) {
	cfg, _, err := LoadWithSource(customPath)
	return cfg, err
}

// LoadWithSource is Load that also reports which file was used.
// Values missing from a file keep their defaults.
func LoadWithSource(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath, err := xdg.SearchConfigFile(xdgConfigFile); err == nil {
		if cfg, ok := tryFile(userCfgPath); ok {
			return cfg, userCfgPath, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryFile(localConfigFile); ok {
		return cfg, localConfigFile, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// tryFile loads an optional config file. Unreadable or invalid files are
// skipped so the next location in the search order is tried.
func tryFile(path string) (Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, false
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, false
	}
	return cfg, true
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// UserConfigPath returns where a user config file would be written.
func UserConfigPath() (string, error) {
	return xdg.ConfigFile(xdgConfigFile)
}
