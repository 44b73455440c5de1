// Package constants provides shared constants used across the application
// to avoid circular dependencies between packages.
package constants

import "time"

// Timeout constants used across the application
const (
	// DefaultProbeTimeout bounds a single detection probe (--version/--help run)
	DefaultProbeTimeout = 2 * time.Second
	// DefaultDetectionTTL is how long a detection result is trusted before re-probing
	DefaultDetectionTTL = 60 * time.Second
	// QuickExitThreshold is the elapsed time below which a child exit is treated
	// as too brief to have been a meaningful interactive session
	QuickExitThreshold = 3 * time.Second
	// DefaultInitDelay is the pause before handing the terminal to tools that
	// race against our own output flush
	DefaultInitDelay = 50 * time.Millisecond
	// RelaunchDelay is the pause between a continuation decision and the respawn
	RelaunchDelay = 1 * time.Second
)

// Session limits
const (
	// DefaultMaxAttempts caps automatic relaunches of a tool within one session
	DefaultMaxAttempts = 3
)

// Environment variable names
const (
	// EnvLogLevel selects the logger level (DEBUG, INFO, WARN, ERROR, NONE)
	EnvLogLevel = "TERMPILOT_LOG_LEVEL"
	// EnvNoBrowser is the generic no-browser signal injected for headless launches
	EnvNoBrowser = "NO_BROWSER"
	// EnvBrowser is the conventional browser-launcher override variable
	EnvBrowser = "BROWSER"
)
