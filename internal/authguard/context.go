// Package authguard decides when a child tool must be stopped from opening a
// browser for OAuth, and scopes the environment overrides that enforce it to
// a single launch.
package authguard

import (
	"os"
	"runtime"
	"strings"
)

// ciVars are indicators of a CI environment.
var ciVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "TRAVIS", "CIRCLECI", "JENKINS_URL"}

// cloudVars mark remote-container and cloud-IDE workspaces.
var cloudVars = []string{"CODESPACES", "GITPOD_WORKSPACE_ID", "CLOUD_SHELL"}

// sshVars mark remote shell sessions.
var sshVars = []string{"SSH_CONNECTION", "SSH_CLIENT"}

// ContextDetector classifies the current execution context. The environment
// and filesystem probes are injectable for tests.
type ContextDetector struct {
	getenv     func(string) string
	fileExists func(string) bool
}

// NewContextDetector returns a detector backed by the real process
// environment.
func NewContextDetector() *ContextDetector {
	return &ContextDetector{
		getenv: os.Getenv,
		fileExists: func(path string) bool {
			_, err := os.Stat(path)
			return err == nil
		},
	}
}

// IsHeadless reports whether opening a graphical browser is impossible or
// undesirable in the current context.
func (d *ContextDetector) IsHeadless() bool {
	if d.IsCI() {
		return true
	}
	// macOS has no X11 display convention; a missing DISPLAY means nothing there
	if runtime.GOOS != "darwin" && d.getenv("DISPLAY") == "" && d.getenv("WAYLAND_DISPLAY") == "" {
		return true
	}
	if d.IsCloudWorkspace() {
		return true
	}
	if term := d.getenv("TERM"); term == "dumb" || strings.Contains(term, "screen") {
		return true
	}
	if d.IsSSH() {
		return true
	}
	if d.IsContainer() {
		return true
	}
	return false
}

// IsCI reports whether a recognized CI indicator variable is set.
func (d *ContextDetector) IsCI() bool {
	return d.anySet(ciVars)
}

// IsCloudWorkspace reports whether a cloud-IDE marker is present.
func (d *ContextDetector) IsCloudWorkspace() bool {
	return d.anySet(cloudVars)
}

// IsSSH reports whether the process runs inside an SSH session.
func (d *ContextDetector) IsSSH() bool {
	return d.anySet(sshVars)
}

// IsContainer reports whether the process runs inside a container.
func (d *ContextDetector) IsContainer() bool {
	return d.fileExists("/.dockerenv")
}

func (d *ContextDetector) anySet(vars []string) bool {
	for _, v := range vars {
		if d.getenv(v) != "" {
			return true
		}
	}
	return false
}
