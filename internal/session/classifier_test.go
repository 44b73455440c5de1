package session

import (
	"testing"
	"time"

	"github.com/minhvu92/termpilot/internal/registry"
)

func TestClassifyExplicitExitAlwaysWins(t *testing.T) {
	c := NewClassifier(3 * time.Second)
	tool := registry.ToolProfile{
		Name:           "gamma",
		Binary:         "gamma",
		SetupExitCodes: []int{130}, // deliberately conflicting with the explicit set
	}

	// Explicit user intent to quit must never be overridden, whatever the
	// timing suggests.
	elapsedValues := []time.Duration{
		500 * time.Millisecond,
		5 * time.Second,
		120 * time.Second,
	}
	for _, code := range []int{130, 131, 143} {
		for _, elapsed := range elapsedValues {
			if got := c.Classify(code, elapsed, tool); got != DecisionEnd {
				t.Errorf("Classify(%d, %v) = %v, want end", code, elapsed, got)
			}
		}
	}
}

func TestClassifyToolDeclaredQuitCodes(t *testing.T) {
	c := NewClassifier(3 * time.Second)
	tool := registry.ToolProfile{
		Name:          "delta",
		Binary:        "delta",
		QuitExitCodes: []int{7},
	}

	if got := c.Classify(7, time.Minute, tool); got != DecisionEnd {
		t.Errorf("documented quit code should classify end, got %v", got)
	}
}

func TestClassifyQuickCompletion(t *testing.T) {
	c := NewClassifier(3 * time.Second)
	tool := registry.ToolProfile{
		Name:           "beta",
		Binary:         "beta",
		SetupExitCodes: []int{41},
	}

	// A quick exit is too brief to mean anything, even with a setup code
	if got := c.Classify(41, 1*time.Second, tool); got != DecisionReturnToMenu {
		t.Errorf("quick setup-code exit = %v, want return-to-menu", got)
	}
	if got := c.Classify(1, 2*time.Second, tool); got != DecisionReturnToMenu {
		t.Errorf("quick unknown exit = %v, want return-to-menu", got)
	}
}

func TestClassifySetupConvention(t *testing.T) {
	c := NewClassifier(3 * time.Second)
	tool := registry.ToolProfile{
		Name:           "beta",
		Binary:         "beta",
		SetupExitCodes: []int{41, 42},
	}

	if got := c.Classify(41, 5*time.Second, tool); got != DecisionContinue {
		t.Errorf("setup code after 5s = %v, want continue", got)
	}
	if got := c.Classify(42, time.Minute, tool); got != DecisionContinue {
		t.Errorf("setup code after 1m = %v, want continue", got)
	}
}

func TestClassifyDefaultsToReturnToMenu(t *testing.T) {
	c := NewClassifier(3 * time.Second)
	tool := registry.ToolProfile{Name: "beta", Binary: "beta"}

	tests := []struct {
		code    int
		elapsed time.Duration
	}{
		{0, 10 * time.Second},
		{1, 10 * time.Second},
		{99, time.Hour},
	}
	for _, tt := range tests {
		if got := c.Classify(tt.code, tt.elapsed, tool); got != DecisionReturnToMenu {
			t.Errorf("Classify(%d, %v) = %v, want return-to-menu", tt.code, tt.elapsed, got)
		}
	}
}

func TestDecisionString(t *testing.T) {
	if DecisionContinue.String() != "continue" ||
		DecisionEnd.String() != "end" ||
		DecisionReturnToMenu.String() != "return-to-menu" {
		t.Error("decision names changed; logs depend on them")
	}
}
