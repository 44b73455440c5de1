// Package config resolves runtime settings from defaults, the config file,
// and environment variables. Precedence from lowest to highest: built-in
// defaults, config file, environment, CLI flags.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/minhvu92/termpilot/internal/constants"
	"github.com/minhvu92/termpilot/internal/logging"
)

// Environment variable names
const (
	EnvMaxAttempts  = "TERMPILOT_MAX_ATTEMPTS"
	EnvDetectionTTL = "TERMPILOT_DETECTION_TTL"
	EnvProbeTimeout = "TERMPILOT_PROBE_TIMEOUT"
)

// Config holds the resolved runtime settings.
type Config struct {
	// MaxAttempts caps automatic relaunches within one session
	MaxAttempts int
	// DetectionTTL is how long a detection result is trusted
	DetectionTTL time.Duration
	// ProbeTimeout bounds a single detection probe
	ProbeTimeout time.Duration
	// QuickExitThreshold separates aborted launches from real sessions
	QuickExitThreshold time.Duration
	// LogLevel is the logger level name ("DEBUG", "INFO", ...)
	LogLevel string
}

// NewConfig builds a config from defaults, the config file, and the
// environment, in that order.
func NewConfig() (*Config, error) {
	fc, err := LoadConfigFile()
	if err != nil {
		return nil, err
	}
	return Resolve(fc), nil
}

// Resolve builds a config from defaults, an already-loaded file config, and
// the environment. Callers that also need the file's tools overlay load the
// file once and pass it here.
func Resolve(fc *FileConfig) *Config {
	cfg := &Config{
		MaxAttempts:        constants.DefaultMaxAttempts,
		DetectionTTL:       constants.DefaultDetectionTTL,
		ProbeTimeout:       constants.DefaultProbeTimeout,
		QuickExitThreshold: constants.QuickExitThreshold,
	}
	cfg.ApplyFileConfig(fc)
	cfg.applyEnv()
	return cfg
}

// applyEnv overrides settings from environment variables. Malformed values
// are logged and skipped rather than failing startup.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvMaxAttempts); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.MaxAttempts = n
		} else {
			logging.Warn("ignoring invalid max attempts", logging.Fields{"value": v})
		}
	}
	if v := os.Getenv(EnvDetectionTTL); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.DetectionTTL = d
		} else {
			logging.Warn("ignoring invalid detection TTL", logging.Fields{"value": v})
		}
	}
	if v := os.Getenv(EnvProbeTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.ProbeTimeout = d
		} else {
			logging.Warn("ignoring invalid probe timeout", logging.Fields{"value": v})
		}
	}
	if v := os.Getenv(constants.EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// LoadDotEnv loads .env files from the working directory. Existing
// environment variables always win over file entries.
func LoadDotEnv() {
	for _, f := range []string{".env", ".env.local"} {
		// godotenv.Load does not overwrite variables that are already set
		_ = godotenv.Load(f)
	}
}
