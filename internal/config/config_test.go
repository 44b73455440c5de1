package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/minhvu92/termpilot/internal/constants"
)

func baseConfig() *Config {
	return &Config{
		MaxAttempts:        constants.DefaultMaxAttempts,
		DetectionTTL:       constants.DefaultDetectionTTL,
		ProbeTimeout:       constants.DefaultProbeTimeout,
		QuickExitThreshold: constants.QuickExitThreshold,
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvMaxAttempts, "5")
	t.Setenv(EnvDetectionTTL, "90s")
	t.Setenv(EnvProbeTimeout, "500ms")
	t.Setenv(constants.EnvLogLevel, "DEBUG")

	cfg := baseConfig()
	cfg.applyEnv()

	if cfg.MaxAttempts != 5 {
		t.Errorf("MaxAttempts = %d, want 5", cfg.MaxAttempts)
	}
	if cfg.DetectionTTL != 90*time.Second {
		t.Errorf("DetectionTTL = %v, want 90s", cfg.DetectionTTL)
	}
	if cfg.ProbeTimeout != 500*time.Millisecond {
		t.Errorf("ProbeTimeout = %v, want 500ms", cfg.ProbeTimeout)
	}
	if cfg.LogLevel != "DEBUG" {
		t.Errorf("LogLevel = %q, want DEBUG", cfg.LogLevel)
	}
}

func TestApplyEnvIgnoresMalformedValues(t *testing.T) {
	t.Setenv(EnvMaxAttempts, "zero")
	t.Setenv(EnvDetectionTTL, "-10s")
	t.Setenv(EnvProbeTimeout, "soon")

	cfg := baseConfig()
	cfg.applyEnv()

	if cfg.MaxAttempts != constants.DefaultMaxAttempts {
		t.Errorf("MaxAttempts = %d, want default", cfg.MaxAttempts)
	}
	if cfg.DetectionTTL != constants.DefaultDetectionTTL {
		t.Errorf("DetectionTTL = %v, want default", cfg.DetectionTTL)
	}
	if cfg.ProbeTimeout != constants.DefaultProbeTimeout {
		t.Errorf("ProbeTimeout = %v, want default", cfg.ProbeTimeout)
	}
}

func TestLoadDotEnvDoesNotOverwrite(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("TERMPILOT_TEST_A=from-file\nTERMPILOT_TEST_B=from-file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	t.Setenv("TERMPILOT_TEST_A", "from-env")
	os.Unsetenv("TERMPILOT_TEST_B")
	t.Cleanup(func() { os.Unsetenv("TERMPILOT_TEST_B") })

	LoadDotEnv()

	if got := os.Getenv("TERMPILOT_TEST_A"); got != "from-env" {
		t.Errorf("pre-set variable overwritten: %q", got)
	}
	if got := os.Getenv("TERMPILOT_TEST_B"); got != "from-file" {
		t.Errorf("unset variable not loaded: %q", got)
	}
}
