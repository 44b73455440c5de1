package authguard

import (
	"os"

	"github.com/minhvu92/termpilot/internal/constants"
	"github.com/minhvu92/termpilot/internal/logging"
	"github.com/minhvu92/termpilot/internal/registry"
)

// prior records the value a variable held before injection so restoration is
// exact: a previously absent variable is removed, not set to "".
type prior struct {
	value   string
	present bool
}

// Override is the set of environment variables injected for one launch,
// together with their prior values. The owning session must call Restore on
// every exit path before returning control.
type Override struct {
	guard    *Guard
	applied  map[string]prior
	restored bool
}

// Empty reports whether the override injected nothing.
func (o *Override) Empty() bool {
	return o == nil || len(o.applied) == 0
}

// Injected returns the names of injected variables (for logging and tests).
func (o *Override) Injected() []string {
	if o == nil {
		return nil
	}
	names := make([]string, 0, len(o.applied))
	for name := range o.applied {
		names = append(names, name)
	}
	return names
}

// Restore reapplies every recorded prior value, removing variables that were
// previously absent. Idempotent: a second call is a no-op.
func (o *Override) Restore() {
	if o == nil || o.restored {
		return
	}
	o.restored = true

	for name, p := range o.applied {
		if p.present {
			o.guard.setenv(name, p.value)
		} else {
			o.guard.unsetenv(name)
		}
	}
	if len(o.applied) > 0 {
		logging.Debug("environment restored", logging.Fields{"vars": len(o.applied)})
	}
}

// Guard computes and applies environment overrides that suppress
// browser-based login flows for headless launches. Environment mutation is
// process-wide, so at most one session may hold an outstanding override.
type Guard struct {
	detector  *ContextDetector
	getenv    func(string) string
	lookupenv func(string) (string, bool)
	setenv    func(string, string) error
	unsetenv  func(string) error
}

// New returns a guard backed by the real process environment.
func New() *Guard {
	return &Guard{
		detector:  NewContextDetector(),
		getenv:    os.Getenv,
		lookupenv: os.LookupEnv,
		setenv:    os.Setenv,
		unsetenv:  os.Unsetenv,
	}
}

// Prepare computes and applies the minimal override set for launching the
// given tool. In a browser-safe context, or when the user has already
// configured one of the tool's credential variables, nothing is injected.
func (g *Guard) Prepare(tool registry.ToolProfile) *Override {
	o := &Override{guard: g, applied: make(map[string]prior)}

	if !g.detector.IsHeadless() {
		return o
	}

	// An explicitly configured API key means the tool will not need a browser
	// round-trip. Trust the user's configuration and leave the environment
	// alone.
	if tool.HasAuthEnv() {
		for _, name := range tool.AuthEnvVars {
			if g.getenv(name) != "" {
				logging.Debug("auth env preconfigured, skipping no-browser injection", logging.Fields{
					"tool": tool.Name,
					"var":  name,
				})
				return o
			}
		}
	}

	g.inject(o, constants.EnvNoBrowser, "1")
	// "true" is a no-op launcher and avoids shell quoting issues when a tool
	// invokes $BROWSER via sh -c.
	g.inject(o, constants.EnvBrowser, "true")
	if tool.Quirks.NoBrowserVar != "" {
		g.inject(o, tool.Quirks.NoBrowserVar, "1")
	}

	logging.Debug("no-browser environment injected", logging.Fields{
		"tool": tool.Name,
		"vars": len(o.applied),
	})
	return o
}

// inject sets a variable after recording its prior state exactly once.
func (g *Guard) inject(o *Override, name, value string) {
	if _, seen := o.applied[name]; !seen {
		v, present := g.lookupenv(name)
		o.applied[name] = prior{value: v, present: present}
	}
	_ = g.setenv(name, value)
}
