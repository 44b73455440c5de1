// Package session owns one logical tool run: it spawns the chosen tool as an
// interactive child process, classifies how the child exited, and decides
// whether to relaunch transparently or hand control back to the menu.
package session

import (
	"time"

	"github.com/minhvu92/termpilot/internal/constants"
	"github.com/minhvu92/termpilot/internal/registry"
)

// Decision is the classifier's verdict on one child exit. The set is closed
// so call sites can exhaustive-match; new rules add values here.
type Decision int

const (
	// DecisionReturnToMenu surfaces control back to the orchestrator
	DecisionReturnToMenu Decision = iota
	// DecisionContinue relaunches the tool to continue the logical session
	DecisionContinue
	// DecisionEnd terminates the session; the user deliberately quit
	DecisionEnd
)

// String returns the decision name used in logs.
func (d Decision) String() string {
	switch d {
	case DecisionContinue:
		return "continue"
	case DecisionEnd:
		return "end"
	case DecisionReturnToMenu:
		return "return-to-menu"
	default:
		return "unknown"
	}
}

// explicitExitCodes are the platform's conventional deliberate-quit statuses:
// 128+SIGINT, 128+SIGQUIT, 128+SIGTERM.
var explicitExitCodes = map[int]bool{
	130: true,
	131: true,
	143: true,
}

// Classifier maps {exit code, elapsed time, tool} to a Decision. It is a
// table-driven heuristic over exit status and timing only; the engine never
// inspects the child's terminal content.
type Classifier struct {
	quickThreshold time.Duration
}

// NewClassifier creates a classifier. A zero threshold falls back to the
// default quick-completion window.
func NewClassifier(quickThreshold time.Duration) *Classifier {
	if quickThreshold == 0 {
		quickThreshold = constants.QuickExitThreshold
	}
	return &Classifier{quickThreshold: quickThreshold}
}

// Classify decides what a child exit means.
//
// Rule order matters: an explicit quit always wins, even when the timing or
// exit code would otherwise suggest a continuation. Misreading a deliberate
// Ctrl-C as an auth hiccup is how relaunch loops happen.
func (c *Classifier) Classify(exitCode int, elapsed time.Duration, tool registry.ToolProfile) Decision {
	if explicitExitCodes[exitCode] {
		return DecisionEnd
	}
	for _, code := range tool.QuitExitCodes {
		if exitCode == code {
			return DecisionEnd
		}
	}

	// Too fast to have been a meaningful session; treat as accidental or
	// trivial rather than triggering a restart.
	if elapsed < c.quickThreshold {
		return DecisionReturnToMenu
	}

	for _, code := range tool.SetupExitCodes {
		if exitCode == code {
			return DecisionContinue
		}
	}

	// Do not guess: surface control rather than risk looping.
	return DecisionReturnToMenu
}
