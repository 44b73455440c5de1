//go:build windows

package session

import "os/exec"

// isolateProcessGroup is a no-op on Windows; console control events are
// handled by the default process group behavior.
func isolateProcessGroup(cmd *exec.Cmd) {}

// exitCode returns the child's exit status.
func exitCode(exitErr *exec.ExitError) int {
	return exitErr.ExitCode()
}
