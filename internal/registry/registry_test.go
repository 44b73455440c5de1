package registry

import (
	"errors"
	"testing"
	"time"
)

func TestNewRejectsInvalidProfiles(t *testing.T) {
	tests := []struct {
		name     string
		profiles []ToolProfile
		wantErr  error
	}{
		{
			name:     "empty profile list",
			profiles: nil,
			wantErr:  ErrNoProfiles,
		},
		{
			name: "duplicate names",
			profiles: []ToolProfile{
				{Name: "alpha", Binary: "alpha"},
				{Name: "alpha", Binary: "alpha2"},
			},
			wantErr: ErrDuplicateName,
		},
		{
			name: "empty binary",
			profiles: []ToolProfile{
				{Name: "alpha", Binary: ""},
			},
			wantErr: ErrEmptyBinary,
		},
		{
			name: "empty name",
			profiles: []ToolProfile{
				{Name: "", Binary: "alpha"},
			},
			wantErr: ErrEmptyName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.profiles)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	r, err := New([]ToolProfile{
		{Name: "alpha", Binary: "alpha-cli", Enabled: true},
		{Name: "beta", Binary: "beta-cli"},
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	p, err := r.Resolve("alpha")
	if err != nil {
		t.Fatalf("Resolve(alpha) failed: %v", err)
	}
	if p.Binary != "alpha-cli" {
		t.Errorf("Resolve(alpha).Binary = %q, want %q", p.Binary, "alpha-cli")
	}

	if _, err := r.Resolve("gamma"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Resolve(gamma) error = %v, want ErrNotFound", err)
	}
}

func TestEnabledNames(t *testing.T) {
	r, err := New([]ToolProfile{
		{Name: "alpha", Binary: "a", Enabled: true},
		{Name: "beta", Binary: "b", Enabled: false},
		{Name: "gamma", Binary: "c", Enabled: true},
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	got := r.EnabledNames()
	want := []string{"alpha", "gamma"}
	if len(got) != len(want) {
		t.Fatalf("EnabledNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("EnabledNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDetectionDefaults(t *testing.T) {
	p := ToolProfile{Name: "alpha", Binary: "a"}
	chain := p.Detection()
	if len(chain) != 3 || chain[0] != DetectPath {
		t.Errorf("Detection() = %v, want default chain starting with path lookup", chain)
	}

	p.DetectionMethods = []DetectionMethod{DetectVersionProbe}
	chain = p.Detection()
	if len(chain) != 1 || chain[0] != DetectVersionProbe {
		t.Errorf("Detection() = %v, want declared chain", chain)
	}
}

func TestBuiltinProfilesValid(t *testing.T) {
	r, err := New(BuiltinProfiles())
	if err != nil {
		t.Fatalf("builtin profiles failed validation: %v", err)
	}

	for _, name := range []string{"claude", "gemini", "opencode", "codex"} {
		if _, err := r.Resolve(name); err != nil {
			t.Errorf("builtin registry missing %q: %v", name, err)
		}
	}

	// OpenCode carries the terminal quirks the engine depends on
	oc, _ := r.Resolve("opencode")
	if !oc.Quirks.TerminalPriming {
		t.Error("opencode profile should request terminal priming")
	}
	if oc.Quirks.InitDelay == 0 {
		t.Error("opencode profile should request an init delay")
	}
}

func TestMergeOverlay(t *testing.T) {
	base := []ToolProfile{
		{Name: "alpha", Binary: "alpha", Enabled: true},
		{Name: "beta", Binary: "beta", Enabled: true},
	}

	disabled := false
	tf := &ToolsFile{Tools: []ToolEntry{
		{Name: "beta", Enabled: &disabled, Quirks: LaunchQuirks{InitDelay: 100 * time.Millisecond}},
		{Name: "custom", Binary: "custom-cli", AuthEnvVars: []string{"CUSTOM_API_KEY"}},
	}}

	merged := Merge(base, tf)
	if len(merged) != 3 {
		t.Fatalf("Merge() produced %d profiles, want 3", len(merged))
	}

	r, err := New(merged)
	if err != nil {
		t.Fatalf("merged profiles failed validation: %v", err)
	}

	beta, _ := r.Resolve("beta")
	if beta.Enabled {
		t.Error("overlay should have disabled beta")
	}
	if beta.Quirks.InitDelay != 100*time.Millisecond {
		t.Errorf("beta InitDelay = %v, want 100ms", beta.Quirks.InitDelay)
	}
	if beta.Binary != "beta" {
		t.Errorf("overlay without binary should keep base binary, got %q", beta.Binary)
	}

	custom, err := r.Resolve("custom")
	if err != nil {
		t.Fatalf("Resolve(custom) failed: %v", err)
	}
	if custom.Binary != "custom-cli" || !custom.Enabled {
		t.Errorf("custom profile = %+v, want enabled with binary custom-cli", custom)
	}
}

func TestParseToolsFile(t *testing.T) {
	data := []byte(`
tools:
  - name: mytool
    binary: mytool-cli
    auth_env_vars: [MYTOOL_API_KEY]
    setup_exit_codes: [41]
    quirks:
      terminal_priming: true
`)
	tf, err := ParseToolsFile(data)
	if err != nil {
		t.Fatalf("ParseToolsFile() failed: %v", err)
	}
	if len(tf.Tools) != 1 {
		t.Fatalf("parsed %d tools, want 1", len(tf.Tools))
	}
	entry := tf.Tools[0]
	if entry.Name != "mytool" || entry.Binary != "mytool-cli" {
		t.Errorf("entry = %+v", entry)
	}
	if !entry.Quirks.TerminalPriming {
		t.Error("quirks.terminal_priming should parse as true")
	}

	if _, err := ParseToolsFile([]byte("tools: [")); err == nil {
		t.Error("ParseToolsFile() should fail on malformed YAML")
	}
}
