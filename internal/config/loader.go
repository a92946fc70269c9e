package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the user and local directories.
const FileName = "logroll.yaml"

// Parse decodes a YAML document over the defaults, so partial files only
// override the keys they name.
func Parse(data []byte) (LogrollConfig, error) {
	cfg := DefaultLogrollConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Load loads the log roll configuration.
// Search order: customPath -> ~/.logroll/configs/logroll.yaml -> ./configs/logroll.yaml -> embedded default
func Load(customPath string) (LogrollConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultLogrollConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultLogrollConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return DefaultLogrollConfig(), fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local one
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		if cfg, ok := tryLoad(path); ok {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultLogrollYAML)
	if err != nil {
		return DefaultLogrollConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing, unparsable or invalid
// files are skipped.
func tryLoad(path string) (LogrollConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LogrollConfig{}, false
	}
	cfg, err := Parse(data)
	if err != nil || cfg.Validate() != nil {
		return LogrollConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".logroll", "configs", filename)
}
