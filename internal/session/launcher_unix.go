//go:build unix

package session

import (
	"os/exec"
	"syscall"
)

// isolateProcessGroup starts the child in its own process group so terminal
// signals aimed at the child do not propagate to the launcher.
func isolateProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// exitCode maps a finished child to its shell-convention exit status:
// signal terminations report 128+signal, matching the codes the classifier's
// explicit-exit table is written against.
func exitCode(exitErr *exec.ExitError) int {
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return exitErr.ExitCode()
}
