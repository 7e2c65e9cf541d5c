package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the file name looked up in the user and local directories.
const configFile = "blokus.yaml"

// Load loads the Blokus configuration.
// Search order: customPath -> ~/.blokus/configs/blokus.yaml -> ./configs/blokus.yaml -> embedded default
//
// A custom path must exist and be valid. Unreadable or invalid user and
// local files are skipped.
func Load(customPath string) (BlokusConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BlokusConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return BlokusConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultBlokusYAML)
	if err != nil {
		return DefaultBlokusConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the defaults and validates the result, so a file
// may override only the fields it names.
func parse(data []byte) (BlokusConfig, error) {
	cfg := DefaultBlokusConfig()
	var file BlokusConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return BlokusConfig{}, err
	}
	mergeBoard(&cfg.Board, file.Board)
	if len(file.Pieces) > 0 {
		cfg.Pieces = file.Pieces
	}
	if err := cfg.Validate(); err != nil {
		return BlokusConfig{}, err
	}
	return cfg, nil
}

// mergeBoard copies the non-zero fields of src onto dst.
func mergeBoard(dst *BoardConfig, src BoardConfig) {
	if src.Width != 0 {
		dst.Width = src.Width
	}
	if src.Height != 0 {
		dst.Height = src.Height
	}
	if src.Marker != "" {
		dst.Marker = src.Marker
	}
	if src.PreviewMarker != "" {
		dst.PreviewMarker = src.PreviewMarker
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blokus", "configs", filename)
}
