package authguard

import (
	"os"

	"github.com/minhvu92/termpilot/internal/registry"
)

// AuthConfigured reports whether any of the tool's declared credential
// variables is non-empty in the current environment. Tools that declare no
// variables have nothing to preflight and report true.
func AuthConfigured(tool registry.ToolProfile) bool {
	if !tool.HasAuthEnv() {
		return true
	}
	for _, name := range tool.AuthEnvVars {
		if os.Getenv(name) != "" {
			return true
		}
	}
	return false
}
