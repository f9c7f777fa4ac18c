package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSimon loads Simon configuration.
// Search order: customPath -> ~/.simon/configs/simon.yaml -> ./configs/simon.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes. A custom path that cannot be read, parsed or validated is an
// error; the other locations are skipped when unusable.
func LoadSimon(customPath string) (SimonConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("simon.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(filepath.Join("configs", "simon.yaml")); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultSimonConfig()
	if err := yaml.Unmarshal(defaultSimonYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultSimonConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func loadFile(path string) (SimonConfig, error) {
	cfg := DefaultSimonConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".simon", "configs", filename)
}
