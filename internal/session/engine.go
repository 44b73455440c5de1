package session

import (
	"fmt"

	"github.com/minhvu92/termpilot/internal/authguard"
	"github.com/minhvu92/termpilot/internal/detect"
	"github.com/minhvu92/termpilot/internal/logging"
	"github.com/minhvu92/termpilot/internal/registry"
)

// Engine is the single entry point the menu and CLI commands use to run a
// tool. It ties together the profile registry, the detection cache, the auth
// guard, and a fresh Session per request.
type Engine struct {
	registry   *registry.Registry
	cache      *detect.Cache
	guard      *authguard.Guard
	launcher   Launcher
	classifier *Classifier

	maxAttempts int
	guidance    func(registry.ToolProfile)
}

// EngineOptions configures an Engine. Registry and Cache are required; the
// rest default to production implementations.
type EngineOptions struct {
	Registry    *registry.Registry
	Cache       *detect.Cache
	Guard       *authguard.Guard
	Launcher    Launcher
	Classifier  *Classifier
	MaxAttempts int
	Guidance    func(registry.ToolProfile)
}

// NewEngine creates an engine.
func NewEngine(opts EngineOptions) *Engine {
	e := &Engine{
		registry:    opts.Registry,
		cache:       opts.Cache,
		guard:       opts.Guard,
		launcher:    opts.Launcher,
		classifier:  opts.Classifier,
		maxAttempts: opts.MaxAttempts,
		guidance:    opts.Guidance,
	}
	if e.guard == nil {
		e.guard = authguard.New()
	}
	if e.launcher == nil {
		e.launcher = NewProcessLauncher()
	}
	if e.classifier == nil {
		e.classifier = NewClassifier(0)
	}
	return e
}

// Run executes one logical tool session and reports its outcome. No spawn is
// attempted for tools that detection reports as missing.
func (e *Engine) Run(toolName string, args []string) Outcome {
	tool, err := e.registry.Resolve(toolName)
	if err != nil {
		return Outcome{Kind: OutcomeLaunchFailed, Err: err}
	}

	if !e.cache.IsAvailable(tool) {
		logging.Info("tool not installed", logging.Fields{"tool": tool.Name})
		return Outcome{
			Kind: OutcomeNotInstalled,
			Err:  fmt.Errorf("tool %q is not installed (binary %q not found)", tool.Name, tool.Binary),
		}
	}

	s := NewSession(Options{
		Tool:        tool,
		Guard:       e.guard,
		Launcher:    e.launcher,
		Classifier:  e.classifier,
		MaxAttempts: e.maxAttempts,
		Guidance:    e.guidance,
	})
	return s.Run(args)
}

// WithMaxAttempts returns a copy of the engine with a different relaunch
// ceiling.
func (e *Engine) WithMaxAttempts(n int) *Engine {
	clone := *e
	clone.maxAttempts = n
	return &clone
}

// IsAvailable exposes detection to list/menu renderers.
func (e *Engine) IsAvailable(toolName string) bool {
	tool, err := e.registry.Resolve(toolName)
	if err != nil {
		return false
	}
	return e.cache.IsAvailable(tool)
}

// Registry returns the engine's shared tool registry.
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}
