package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/sketchboard/internal/model"
)

func TestSaveAndLoadEditorConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := model.DefaultEditorConfig()
	cfg.CornerRadius = 10
	cfg.Theme = "dark"
	cfg.ChromeColor = model.MustHex("#ff0000")
	cfg.DefaultLineCap = "round"

	if err := SaveEditorConfig(path, cfg); err != nil {
		t.Fatalf("SaveEditorConfig failed: %v", err)
	}

	loaded, err := LoadEditorConfig(path)
	if err != nil {
		t.Fatalf("LoadEditorConfig failed: %v", err)
	}

	if loaded.CornerRadius != 10 {
		t.Errorf("expected CornerRadius=10, got %f", loaded.CornerRadius)
	}
	if loaded.Theme != "dark" {
		t.Errorf("expected Theme=dark, got %s", loaded.Theme)
	}
	if loaded.ChromeColor.String() != "#ff0000" {
		t.Errorf("expected ChromeColor=#ff0000, got %s", loaded.ChromeColor)
	}
	if loaded.DefaultLineCap != "round" {
		t.Errorf("expected DefaultLineCap=round, got %s", loaded.DefaultLineCap)
	}
}

func TestLoadEditorConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadEditorConfig(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}

	defaults := model.DefaultEditorConfig()
	if cfg.CornerRadius != defaults.CornerRadius {
		t.Errorf("expected default corner radius %f, got %f", defaults.CornerRadius, cfg.CornerRadius)
	}
	if cfg.Theme != "system" {
		t.Errorf("expected theme=system, got %s", cfg.Theme)
	}
}

func TestLoadEditorConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"theme": "light"}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadEditorConfig(path)
	if err != nil {
		t.Fatalf("LoadEditorConfig failed: %v", err)
	}
	if cfg.Theme != "light" {
		t.Errorf("expected theme=light, got %s", cfg.Theme)
	}
	if cfg.HandleRadius != 5 {
		t.Errorf("expected default handle radius 5, got %f", cfg.HandleRadius)
	}
	if cfg.ChromeColor.String() != "#4086f7" {
		t.Errorf("expected default chrome color, got %s", cfg.ChromeColor)
	}
}

func TestLoadEditorConfigInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	if err := os.WriteFile(path, []byte("not valid json{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadEditorConfig(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestLoadEditorConfigEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := SaveEditorConfig(path, model.DefaultEditorConfig()); err != nil {
		t.Fatal(err)
	}

	t.Setenv("SKETCHBOARD_CORNER_RADIUS", "8")
	t.Setenv("SKETCHBOARD_LOG_LEVEL", "debug")
	t.Setenv("SKETCHBOARD_CHROME_COLOR", "#0f0")

	cfg, err := LoadEditorConfig(path)
	if err != nil {
		t.Fatalf("LoadEditorConfig failed: %v", err)
	}
	if cfg.CornerRadius != 8 {
		t.Errorf("expected env CornerRadius=8, got %f", cfg.CornerRadius)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected env LogLevel=debug, got %s", cfg.LogLevel)
	}
	if cfg.ChromeColor.String() != "#00ff00" {
		t.Errorf("expected env ChromeColor=#00ff00, got %s", cfg.ChromeColor)
	}
	if cfg.Theme != "system" {
		t.Errorf("unset variables must not change the file value, got theme=%s", cfg.Theme)
	}
}

func TestLoadEditorConfigBadEnvValue(t *testing.T) {
	t.Setenv("SKETCHBOARD_CHROME_WIDTH", "wide")

	_, err := LoadEditorConfig(filepath.Join(t.TempDir(), "config.json"))
	if err == nil {
		t.Fatal("expected error for unparsable override, got nil")
	}
}

func TestLoadEditorConfigNonPositiveRadius(t *testing.T) {
	t.Setenv("SKETCHBOARD_CORNER_RADIUS", "0")

	cfg, err := LoadEditorConfig(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("LoadEditorConfig failed: %v", err)
	}
	if cfg.CornerRadius != model.DefaultCornerRadius {
		t.Errorf("expected fallback radius, got %f", cfg.CornerRadius)
	}
}

func TestSaveEditorConfigCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "dir", "config.json")

	if err := SaveEditorConfig(path, model.DefaultEditorConfig()); err != nil {
		t.Fatalf("SaveEditorConfig failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	if filepath.Base(DefaultConfigPath()) != "config.json" {
		t.Errorf("unexpected config file name: %s", DefaultConfigPath())
	}
	if filepath.Base(DefaultConfigDir()) != ".sketchboard" {
		t.Errorf("unexpected config dir: %s", DefaultConfigDir())
	}
}
