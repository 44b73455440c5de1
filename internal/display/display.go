// Package display renders the launcher's user-facing output: advisory boxes
// shown before a tool handoff, status lines, and the tool info view.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/minhvu92/termpilot/internal/registry"
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1)

	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// Guidance prints the pre-handoff advisory box for a tool. Tools without
// guidance lines, auth variables, or a setup URL print nothing.
func Guidance(w io.Writer, tool registry.ToolProfile) {
	var lines []string
	lines = append(lines, tool.Guidance...)

	if tool.HasAuthEnv() {
		lines = append(lines, fmt.Sprintf("Set: export %s=\"your-api-key\"", tool.AuthEnvVars[0]))
	}
	if tool.SetupURL != "" {
		lines = append(lines, "Get your credentials: "+tool.SetupURL)
	}
	if len(lines) == 0 {
		return
	}

	title := titleStyle.Render(strings.ToUpper(tool.Name) + " ADVISORY")
	body := strings.Join(lines, "\n")
	fmt.Fprintln(w, boxStyle.Render(title+"\n"+body))
	fmt.Fprintln(w)
}

// Error prints a styled error line to w.
func Error(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, errorStyle.Render("Error: ")+fmt.Sprintf(format, args...))
}

// Warning prints a styled warning line to w.
func Warning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, warnStyle.Render("Warning: ")+fmt.Sprintf(format, args...))
}

// Success prints a styled confirmation line to w.
func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, successStyle.Render(fmt.Sprintf(format, args...)))
}

// Hint prints a dimmed auxiliary line to w.
func Hint(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, hintStyle.Render(fmt.Sprintf(format, args...)))
}

// Errorf is the stderr shorthand the command layer uses.
func Errorf(format string, args ...any) {
	Error(os.Stderr, format, args...)
}
