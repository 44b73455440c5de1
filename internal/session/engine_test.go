package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/minhvu92/termpilot/internal/detect"
	"github.com/minhvu92/termpilot/internal/registry"
)

// newTestEngine wires an engine over a fake PATH and a scripted launcher.
func newTestEngine(t *testing.T, installed map[string]bool, launcher Launcher) *Engine {
	t.Helper()

	reg, err := registry.New([]registry.ToolProfile{
		{Name: "alpha", Binary: "alpha", Enabled: true},
		{Name: "beta", Binary: "beta", SetupExitCodes: []int{41}, Enabled: true},
	})
	if err != nil {
		t.Fatalf("registry.New() failed: %v", err)
	}

	cache := detect.NewCache(detect.Options{
		TTL: time.Minute,
		LookPath: func(binary string) (string, error) {
			if installed[binary] {
				return "/usr/bin/" + binary, nil
			}
			return "", errors.New("not found")
		},
		RunProbe: func(ctx context.Context, binary, flag string) error {
			if installed[binary] {
				return nil
			}
			return errors.New("exit status 127")
		},
	})

	return NewEngine(EngineOptions{
		Registry:    reg,
		Cache:       cache,
		Launcher:    launcher,
		MaxAttempts: 3,
	})
}

func TestEngineNotInstalled(t *testing.T) {
	// Scenario: tool exists in the registry but its binary is missing; no
	// spawn may be attempted.
	launcher := &scriptedLauncher{exits: []ExitInfo{{Code: 0}}}
	e := newTestEngine(t, map[string]bool{}, launcher)

	outcome := e.Run("alpha", nil)
	if outcome.Kind != OutcomeNotInstalled {
		t.Fatalf("outcome = %+v, want NotInstalled", outcome)
	}
	if launcher.calls != 0 {
		t.Errorf("launcher called %d times for a missing tool", launcher.calls)
	}
}

func TestEngineUnknownTool(t *testing.T) {
	e := newTestEngine(t, map[string]bool{}, &scriptedLauncher{})

	outcome := e.Run("no-such-tool", nil)
	if outcome.Kind != OutcomeLaunchFailed {
		t.Fatalf("outcome = %+v, want LaunchFailed for unknown tool", outcome)
	}
	if !errors.Is(outcome.Err, registry.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", outcome.Err)
	}
}

func TestEngineRunsInstalledTool(t *testing.T) {
	launcher := &scriptedLauncher{exits: []ExitInfo{{Code: 0, Elapsed: time.Minute}}}
	e := newTestEngine(t, map[string]bool{"alpha": true}, launcher)

	outcome := e.Run("alpha", []string{"--flag"})
	if outcome.Kind != OutcomeCompleted {
		t.Fatalf("outcome = %+v, want Completed", outcome)
	}
	if launcher.calls != 1 {
		t.Errorf("launches = %d, want 1", launcher.calls)
	}
}

func TestEngineIsAvailable(t *testing.T) {
	e := newTestEngine(t, map[string]bool{"alpha": true}, &scriptedLauncher{})

	if !e.IsAvailable("alpha") {
		t.Error("alpha should be available")
	}
	if e.IsAvailable("beta") {
		t.Error("beta should not be available")
	}
	if e.IsAvailable("no-such-tool") {
		t.Error("unknown tools are never available")
	}
}
