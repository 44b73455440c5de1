package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/minhvu92/termpilot/internal/logging"
	"github.com/minhvu92/termpilot/internal/registry"
)

// ConfigFileName is the name of the config file
const ConfigFileName = "config.yaml"

// FileConfig represents the configuration file structure
type FileConfig struct {
	// Default runtime settings
	Defaults *DefaultsConfig `yaml:"defaults,omitempty"`

	// Tools overlays or adds tool profiles
	Tools []registry.ToolEntry `yaml:"tools,omitempty"`
}

// DefaultsConfig holds the tunable session and detection settings. Durations
// are Go duration strings ("90s", "2m").
type DefaultsConfig struct {
	MaxAttempts        int    `yaml:"max_attempts,omitempty"`
	DetectionTTL       string `yaml:"detection_ttl,omitempty"`
	ProbeTimeout       string `yaml:"probe_timeout,omitempty"`
	QuickExitThreshold string `yaml:"quick_exit_threshold,omitempty"`
	LogLevel           string `yaml:"log_level,omitempty"`
}

// GetConfigPaths returns the paths to check for config files (in order of priority)
func GetConfigPaths() []string {
	var paths []string

	// 1. Current directory
	paths = append(paths, filepath.Join(".", ".termpilot", ConfigFileName))

	// 2. User config directory
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, "termpilot", ConfigFileName))
	}

	// 3. Home directory
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".config", "termpilot", ConfigFileName))
	}

	return paths
}

// LoadConfigFile attempts to load configuration from the first path that
// exists. No config file yields an empty config, not an error.
func LoadConfigFile() (*FileConfig, error) {
	for _, path := range GetConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			return loadConfigFromPath(path)
		}
	}
	return &FileConfig{}, nil
}

// loadConfigFromPath loads config from a specific path
func loadConfigFromPath(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return ParseFileConfig(data)
}

// ParseFileConfig parses the YAML config body.
func ParseFileConfig(data []byte) (*FileConfig, error) {
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &fc, nil
}

// ApplyFileConfig applies file configuration to the main Config. Malformed
// durations are logged and skipped.
func (c *Config) ApplyFileConfig(fc *FileConfig) {
	if fc == nil || fc.Defaults == nil {
		return
	}
	d := fc.Defaults

	if d.MaxAttempts > 0 {
		c.MaxAttempts = d.MaxAttempts
	}
	if v, ok := parseDuration(d.DetectionTTL, "detection_ttl"); ok {
		c.DetectionTTL = v
	}
	if v, ok := parseDuration(d.ProbeTimeout, "probe_timeout"); ok {
		c.ProbeTimeout = v
	}
	if v, ok := parseDuration(d.QuickExitThreshold, "quick_exit_threshold"); ok {
		c.QuickExitThreshold = v
	}
	if d.LogLevel != "" {
		c.LogLevel = d.LogLevel
	}
}

// ToolsOverlay exposes the file's tool entries in the registry's overlay form.
func (fc *FileConfig) ToolsOverlay() *registry.ToolsFile {
	if fc == nil || len(fc.Tools) == 0 {
		return nil
	}
	return &registry.ToolsFile{Tools: fc.Tools}
}

func parseDuration(value, key string) (time.Duration, bool) {
	if value == "" {
		return 0, false
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		logging.Warn("ignoring invalid duration in config file", logging.Fields{
			"key":   key,
			"value": value,
		})
		return 0, false
	}
	return d, true
}
