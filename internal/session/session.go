package session

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/minhvu92/termpilot/internal/authguard"
	"github.com/minhvu92/termpilot/internal/constants"
	"github.com/minhvu92/termpilot/internal/logging"
	"github.com/minhvu92/termpilot/internal/registry"
)

// State is the session's position in its lifecycle.
type State int

const (
	StatePreparing State = iota
	StateRunning
	StateClassifying
	StateRelaunching
	StateTerminated
)

// String returns the state name used in logs.
func (s State) String() string {
	switch s {
	case StatePreparing:
		return "preparing"
	case StateRunning:
		return "running"
	case StateClassifying:
		return "classifying"
	case StateRelaunching:
		return "relaunching"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// ExitInfo captures how a child process ended.
type ExitInfo struct {
	Code    int
	Elapsed time.Duration
}

// Launcher spawns a tool as a child process with inherited stdio and blocks
// until it exits. Implementations return an error only when the spawn itself
// failed; a non-zero child exit is a normal ExitInfo.
type Launcher interface {
	Launch(tool registry.ToolProfile, args []string) (ExitInfo, error)
}

// OutcomeKind is the terminal result of a session, reported to the caller.
type OutcomeKind int

const (
	// OutcomeCompleted means the tool ran and ended without any relaunch
	OutcomeCompleted OutcomeKind = iota
	// OutcomeCompletedAfterRestart means the session relaunched at least once
	OutcomeCompletedAfterRestart
	// OutcomeNotInstalled means detection found no runnable binary
	OutcomeNotInstalled
	// OutcomeLaunchFailed means the spawn itself failed
	OutcomeLaunchFailed
)

// Outcome is what a session reports back to the orchestrator. Internal state
// transitions are not part of the contract.
type Outcome struct {
	Kind     OutcomeKind
	Restarts int
	Err      error
}

// Options configures a Session.
type Options struct {
	Tool        registry.ToolProfile
	Guard       *authguard.Guard
	Launcher    Launcher
	Classifier  *Classifier
	MaxAttempts int

	// Out receives terminal priming sequences; defaults to os.Stdout
	Out io.Writer
	// Sleep is injectable for tests; defaults to time.Sleep
	Sleep func(time.Duration)
	// Guidance, when set, is invoked before each spawn to print the tool's
	// startup advisory
	Guidance func(registry.ToolProfile)
}

// Session drives one logical tool run through the
// Preparing -> Running -> Classifying -> {Relaunching, Terminated} loop.
// A session owns at most one outstanding environment override at a time and
// guarantees its restoration on every exit path.
type Session struct {
	id         string
	tool       registry.ToolProfile
	guard      *authguard.Guard
	launcher   Launcher
	classifier *Classifier

	maxAttempts int
	attempts    int
	state       State
	lastExit    ExitInfo

	out      io.Writer
	sleep    func(time.Duration)
	guidance func(registry.ToolProfile)
}

// NewSession creates a session for one logical "run tool X" request.
func NewSession(opts Options) *Session {
	s := &Session{
		id:          uuid.NewString(),
		tool:        opts.Tool,
		guard:       opts.Guard,
		launcher:    opts.Launcher,
		classifier:  opts.Classifier,
		maxAttempts: opts.MaxAttempts,
		state:       StatePreparing,
		out:         opts.Out,
		sleep:       opts.Sleep,
		guidance:    opts.Guidance,
	}
	if s.guard == nil {
		s.guard = authguard.New()
	}
	if s.classifier == nil {
		s.classifier = NewClassifier(0)
	}
	if s.maxAttempts <= 0 {
		s.maxAttempts = constants.DefaultMaxAttempts
	}
	if s.out == nil {
		s.out = os.Stdout
	}
	if s.sleep == nil {
		s.sleep = time.Sleep
	}
	return s
}

// State returns the current lifecycle state (exposed for tests).
func (s *Session) State() State {
	return s.state
}

// LastExit returns the most recent child exit information.
func (s *Session) LastExit() ExitInfo {
	return s.lastExit
}

// Run executes the session loop until a terminal classification is reached.
// The first launch passes the caller's arguments; relaunches start the tool
// bare so it resumes its own interactive flow.
func (s *Session) Run(args []string) Outcome {
	log := logging.DefaultLogger

	for {
		outcome, done := s.attempt(args)
		if done {
			log.Debug("session terminated", logging.Fields{
				"session":  s.id,
				"tool":     s.tool.Name,
				"kind":     int(outcome.Kind),
				"restarts": outcome.Restarts,
			})
			return outcome
		}

		s.state = StateRelaunching
		log.Info("continuing tool session after setup exit", logging.Fields{
			"session": s.id,
			"tool":    s.tool.Name,
			"attempt": s.attempts,
		})
		fmt.Fprintf(s.out, "Setup step completed - continuing %s session...\n", s.tool.Name)
		s.sleep(constants.RelaunchDelay)
		args = nil
	}
}

// attempt performs one Preparing -> Running -> Classifying pass. The returned
// bool is false only when the session should relaunch. The environment
// override acquired here is restored on every path out of this function.
func (s *Session) attempt(args []string) (Outcome, bool) {
	s.state = StatePreparing

	override := s.guard.Prepare(s.tool)
	defer override.Restore()

	if s.guidance != nil {
		s.guidance(s.tool)
	}
	if s.tool.Quirks.TerminalPriming {
		// Cursor home + clear only. Richer sequences corrupt some tools'
		// own redraw logic.
		fmt.Fprint(s.out, "\x1b[H\x1b[2J")
	}
	if d := s.tool.Quirks.InitDelay; d > 0 {
		s.sleep(d)
	}

	s.state = StateRunning
	exit, err := s.launcher.Launch(s.tool, args)
	if err != nil {
		s.state = StateTerminated
		return Outcome{
			Kind:     OutcomeLaunchFailed,
			Restarts: s.attempts,
			Err:      fmt.Errorf("failed to launch %s: %w", s.tool.Name, err),
		}, true
	}
	s.lastExit = exit

	s.state = StateClassifying
	decision := s.classifier.Classify(exit.Code, exit.Elapsed, s.tool)
	logging.Debug("exit classified", logging.Fields{
		"session":  s.id,
		"tool":     s.tool.Name,
		"code":     exit.Code,
		"elapsed":  exit.Elapsed.String(),
		"decision": decision.String(),
	})

	if decision == DecisionContinue {
		s.attempts++
		// The relaunch ceiling takes priority over any classification.
		if s.attempts >= s.maxAttempts {
			s.state = StateTerminated
			return Outcome{Kind: OutcomeCompletedAfterRestart, Restarts: s.attempts}, true
		}
		return Outcome{}, false
	}

	s.state = StateTerminated
	if s.attempts > 0 {
		return Outcome{Kind: OutcomeCompletedAfterRestart, Restarts: s.attempts}, true
	}
	return Outcome{Kind: OutcomeCompleted}, true
}
