package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ToolsFile is the user-facing tools overlay parsed from the config file.
// Entries either override a builtin profile by name or define a new tool.
type ToolsFile struct {
	Tools []ToolEntry `yaml:"tools,omitempty"`
}

// ToolEntry mirrors ToolProfile with optional fields so an overlay can change
// one setting without restating the whole profile.
type ToolEntry struct {
	Name           string       `yaml:"name"`
	Binary         string       `yaml:"binary,omitempty"`
	Description    string       `yaml:"description,omitempty"`
	Homepage       string       `yaml:"homepage,omitempty"`
	DocsURL        string       `yaml:"docs_url,omitempty"`
	AuthEnvVars    []string     `yaml:"auth_env_vars,omitempty"`
	SetupURL       string       `yaml:"setup_url,omitempty"`
	Guidance       []string     `yaml:"guidance,omitempty"`
	SetupExitCodes []int        `yaml:"setup_exit_codes,omitempty"`
	QuitExitCodes  []int        `yaml:"quit_exit_codes,omitempty"`
	Quirks         LaunchQuirks `yaml:"quirks,omitempty"`
	Enabled        *bool        `yaml:"enabled,omitempty"`
}

// ParseToolsFile parses a YAML tools overlay.
func ParseToolsFile(data []byte) (*ToolsFile, error) {
	var tf ToolsFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("failed to parse tools file: %w", err)
	}
	return &tf, nil
}

// LoadToolsFile reads and parses an overlay from a path. A missing file is not
// an error; it yields an empty overlay.
func LoadToolsFile(path string) (*ToolsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &ToolsFile{}, nil
		}
		return nil, fmt.Errorf("failed to read tools file %s: %w", path, err)
	}
	return ParseToolsFile(data)
}

// Merge applies the overlay on top of base profiles. Matching names override
// field-by-field; unknown names append as new tools.
func Merge(base []ToolProfile, tf *ToolsFile) []ToolProfile {
	if tf == nil || len(tf.Tools) == 0 {
		return base
	}

	index := make(map[string]int, len(base))
	merged := make([]ToolProfile, len(base))
	copy(merged, base)
	for i, p := range merged {
		index[p.Name] = i
	}

	for _, entry := range tf.Tools {
		if i, ok := index[entry.Name]; ok {
			merged[i] = applyEntry(merged[i], entry)
			continue
		}
		p := applyEntry(ToolProfile{Name: entry.Name, Enabled: true}, entry)
		index[p.Name] = len(merged)
		merged = append(merged, p)
	}
	return merged
}

// applyEntry overlays the set fields of entry onto p.
func applyEntry(p ToolProfile, entry ToolEntry) ToolProfile {
	if entry.Binary != "" {
		p.Binary = entry.Binary
	}
	if entry.Description != "" {
		p.Description = entry.Description
	}
	if entry.Homepage != "" {
		p.Homepage = entry.Homepage
	}
	if entry.DocsURL != "" {
		p.DocsURL = entry.DocsURL
	}
	if len(entry.AuthEnvVars) > 0 {
		p.AuthEnvVars = entry.AuthEnvVars
	}
	if entry.SetupURL != "" {
		p.SetupURL = entry.SetupURL
	}
	if len(entry.Guidance) > 0 {
		p.Guidance = entry.Guidance
	}
	if len(entry.SetupExitCodes) > 0 {
		p.SetupExitCodes = entry.SetupExitCodes
	}
	if len(entry.QuitExitCodes) > 0 {
		p.QuitExitCodes = entry.QuitExitCodes
	}
	if entry.Quirks != (LaunchQuirks{}) {
		p.Quirks = entry.Quirks
	}
	if entry.Enabled != nil {
		p.Enabled = *entry.Enabled
	}
	return p
}
