// Package project locates and persists editor preferences.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"

	"github.com/piwi3910/sketchboard/internal/model"
)

// EnvPrefix prefixes every environment override, e.g.
// SKETCHBOARD_CORNER_RADIUS.
const EnvPrefix = "SKETCHBOARD"

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.sketchboard/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".sketchboard")
}

// DefaultConfigPath returns the default path for the editor config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveEditorConfig persists an EditorConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveEditorConfig(path string, config model.EditorConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadEditorConfig reads an EditorConfig from the given path and applies
// SKETCHBOARD_* environment overrides on top. A missing file yields the
// defaults; keys absent from the file keep their default values.
func LoadEditorConfig(path string) (model.EditorConfig, error) {
	config := model.DefaultEditorConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &config); err != nil {
			return model.EditorConfig{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return model.EditorConfig{}, err
	}

	if err := envconfig.Process(EnvPrefix, &config); err != nil {
		return model.EditorConfig{}, fmt.Errorf("environment overrides: %w", err)
	}
	if config.CornerRadius <= 0 {
		config.CornerRadius = model.DefaultCornerRadius
	}
	return config, nil
}
