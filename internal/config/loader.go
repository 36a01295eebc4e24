package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCrossing loads the road crossing configuration.
// Search order: customPath -> ~/.arcade/configs/crossing.yaml -> ./configs/crossing.yaml -> embedded default.
// Files are layered over the defaults, so a partial file only overrides the
// keys it names.
func LoadCrossing(customPath string) (CrossingConfig, error) {
	cfg := DefaultCrossingConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("%w (in %s)", err, customPath)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("crossing.yaml"), filepath.Join("configs", "crossing.yaml")} {
		if path == "" {
			continue
		}
		if parsed, ok := tryLoad(path); ok {
			return parsed, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultCrossingYAML, &cfg); err != nil {
		return DefaultCrossingConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing, unparsable or invalid
// files are skipped so the next search location gets a chance.
func tryLoad(path string) (CrossingConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CrossingConfig{}, false
	}
	cfg := DefaultCrossingConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CrossingConfig{}, false
	}
	if err := cfg.Validate(); err != nil {
		return CrossingConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
