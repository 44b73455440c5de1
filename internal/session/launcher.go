package session

import (
	"errors"
	"os"
	"os/exec"
	"time"

	"github.com/minhvu92/termpilot/internal/registry"
)

// ProcessLauncher spawns tools as real child processes with inherited stdio,
// so the user interacts with the tool exactly as if launched manually.
type ProcessLauncher struct{}

// NewProcessLauncher returns the production launcher.
func NewProcessLauncher() *ProcessLauncher {
	return &ProcessLauncher{}
}

// Launch runs the tool binary and blocks until it exits. The child gets its
// own process group on Unix so a Ctrl-C aimed at it does not take the
// launcher down with it.
func (l *ProcessLauncher) Launch(tool registry.ToolProfile, args []string) (ExitInfo, error) {
	cmd := exec.Command(tool.Binary, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	isolateProcessGroup(cmd)

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return ExitInfo{Code: exitCode(exitErr), Elapsed: elapsed}, nil
		}
		// The binary vanished between detection and spawn, permission was
		// denied, or the spawn failed outright.
		return ExitInfo{}, err
	}
	return ExitInfo{Code: 0, Elapsed: elapsed}, nil
}
