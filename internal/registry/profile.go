// Package registry holds the static tool profile table: which binary a tool
// launches, how its installation is detected, and the launch quirks the
// execution engine has to honor.
package registry

import "time"

// DetectionMethod is one strategy for verifying that a tool is installed.
type DetectionMethod int

const (
	// DetectPath checks that the binary resolves against PATH
	DetectPath DetectionMethod = iota
	// DetectVersionProbe runs `<binary> --version` and expects exit 0
	DetectVersionProbe
	// DetectHelpProbe runs `<binary> --help` and expects exit 0
	DetectHelpProbe
)

// String returns the probe name used in logs.
func (m DetectionMethod) String() string {
	switch m {
	case DetectPath:
		return "path"
	case DetectVersionProbe:
		return "version-probe"
	case DetectHelpProbe:
		return "help-probe"
	default:
		return "unknown"
	}
}

// LaunchQuirks captures per-tool launch behavior so the execution session
// never has to compare tool names.
type LaunchQuirks struct {
	// InitDelay pauses before the spawn so the child's first paint does not
	// race our own output flush. Zero means no delay.
	InitDelay time.Duration `yaml:"init_delay,omitempty"`
	// TerminalPriming emits a minimal cursor-home + clear sequence before the
	// spawn. Richer sequences corrupt some tools' own redraw logic.
	TerminalPriming bool `yaml:"terminal_priming,omitempty"`
	// BackgroundCapable marks tools that tolerate running without a controlling
	// terminal (informational; the engine always inherits stdio).
	BackgroundCapable bool `yaml:"background_capable,omitempty"`
	// NoBrowserVar is a tool-specific variable the auth guard sets to "1" when
	// browser opening must be suppressed.
	NoBrowserVar string `yaml:"no_browser_var,omitempty"`
}

// ToolProfile describes one managed AI coding tool. Profiles are immutable
// after registry construction.
type ToolProfile struct {
	// Name is the unique logical identifier ("claude", "opencode", ...)
	Name string `yaml:"name"`
	// Binary is the executable resolved against PATH
	Binary string `yaml:"binary"`
	// Description is a one-line summary shown in list/info views
	Description string `yaml:"description,omitempty"`
	// Homepage and DocsURL feed the info view and guidance banners
	Homepage string `yaml:"homepage,omitempty"`
	DocsURL  string `yaml:"docs_url,omitempty"`

	// DetectionMethods are tried in order; the first success marks the tool
	// installed. Empty means the default chain (path, version, help).
	DetectionMethods []DetectionMethod `yaml:"-"`

	// Quirks are honored by the execution session
	Quirks LaunchQuirks `yaml:"quirks,omitempty"`

	// AuthEnvVars are the variables the tool consults for credentials. If any
	// is already set the auth guard trusts the explicit configuration.
	AuthEnvVars []string `yaml:"auth_env_vars,omitempty"`

	// SetupURL points at the credential signup page, shown in guidance
	SetupURL string `yaml:"setup_url,omitempty"`

	// Guidance lines are printed in the advisory box before handoff
	Guidance []string `yaml:"guidance,omitempty"`

	// SetupExitCodes are the tool's documented "needs setup/auth/config" exit
	// codes; a match classifies the exit as a session continuation.
	SetupExitCodes []int `yaml:"setup_exit_codes,omitempty"`

	// QuitExitCodes are additional codes the tool documents for a deliberate
	// quit, merged with the platform's explicit-exit set.
	QuitExitCodes []int `yaml:"quit_exit_codes,omitempty"`

	// Enabled tools show up in the menu; disabled ones are hidden but still
	// resolvable by explicit name.
	Enabled bool `yaml:"enabled,omitempty"`
}

// DefaultDetectionChain is used when a profile declares no methods.
var DefaultDetectionChain = []DetectionMethod{DetectPath, DetectVersionProbe, DetectHelpProbe}

// Detection returns the profile's detection methods, falling back to the
// default chain.
func (p ToolProfile) Detection() []DetectionMethod {
	if len(p.DetectionMethods) > 0 {
		return p.DetectionMethods
	}
	return DefaultDetectionChain
}

// HasAuthEnv reports whether the tool declares any credential variables.
func (p ToolProfile) HasAuthEnv() bool {
	return len(p.AuthEnvVars) > 0
}
