package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleConfig = `
defaults:
  max_attempts: 4
  detection_ttl: 2m
  probe_timeout: 1s
  quick_exit_threshold: 5s
  log_level: INFO
tools:
  - name: claude
    enabled: false
  - name: mytool
    binary: mytool
    setup_exit_codes: [12]
`

func TestParseFileConfig(t *testing.T) {
	fc, err := ParseFileConfig([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("ParseFileConfig() failed: %v", err)
	}

	if fc.Defaults == nil || fc.Defaults.MaxAttempts != 4 {
		t.Fatalf("defaults not parsed: %+v", fc.Defaults)
	}
	if len(fc.Tools) != 2 {
		t.Fatalf("tools = %d entries, want 2", len(fc.Tools))
	}
	if fc.Tools[0].Enabled == nil || *fc.Tools[0].Enabled {
		t.Error("claude overlay should disable the tool")
	}

	overlay := fc.ToolsOverlay()
	if overlay == nil || len(overlay.Tools) != 2 {
		t.Errorf("ToolsOverlay() = %+v, want both entries", overlay)
	}
}

func TestParseFileConfigRejectsBadYAML(t *testing.T) {
	if _, err := ParseFileConfig([]byte("defaults: [not a map")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestApplyFileConfig(t *testing.T) {
	fc, err := ParseFileConfig([]byte(sampleConfig))
	if err != nil {
		t.Fatal(err)
	}

	cfg := baseConfig()
	cfg.ApplyFileConfig(fc)

	if cfg.MaxAttempts != 4 {
		t.Errorf("MaxAttempts = %d, want 4", cfg.MaxAttempts)
	}
	if cfg.DetectionTTL != 2*time.Minute {
		t.Errorf("DetectionTTL = %v, want 2m", cfg.DetectionTTL)
	}
	if cfg.QuickExitThreshold != 5*time.Second {
		t.Errorf("QuickExitThreshold = %v, want 5s", cfg.QuickExitThreshold)
	}
	if cfg.LogLevel != "INFO" {
		t.Errorf("LogLevel = %q, want INFO", cfg.LogLevel)
	}
}

func TestApplyFileConfigSkipsInvalidDurations(t *testing.T) {
	cfg := baseConfig()
	want := cfg.DetectionTTL
	cfg.ApplyFileConfig(&FileConfig{Defaults: &DefaultsConfig{DetectionTTL: "sometimes"}})
	if cfg.DetectionTTL != want {
		t.Errorf("invalid duration applied: %v", cfg.DetectionTTL)
	}
}

func TestApplyFileConfigNilSafe(t *testing.T) {
	cfg := baseConfig()
	cfg.ApplyFileConfig(nil)
	cfg.ApplyFileConfig(&FileConfig{})
	if cfg.MaxAttempts != baseConfig().MaxAttempts {
		t.Error("empty file config must not change settings")
	}
}

func TestLoadConfigFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		t.Fatal(err)
	}

	fc, err := loadConfigFromPath(path)
	if err != nil {
		t.Fatalf("loadConfigFromPath() failed: %v", err)
	}
	if fc.Defaults.DetectionTTL != "2m" {
		t.Errorf("DetectionTTL = %q, want 2m", fc.Defaults.DetectionTTL)
	}

	if _, err := loadConfigFromPath(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for a missing explicit path")
	}
}

func TestGetConfigPathsOrder(t *testing.T) {
	paths := GetConfigPaths()
	if len(paths) == 0 {
		t.Fatal("no config paths")
	}
	if paths[0] != filepath.Join(".", ".termpilot", ConfigFileName) {
		t.Errorf("first path = %q, want project-local config", paths[0])
	}
}
