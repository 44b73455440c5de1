package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/minhvu92/termpilot/internal/registry"
)

// ToolInfoMarkdown builds the markdown body for a tool's info view.
func ToolInfoMarkdown(tool registry.ToolProfile, installed bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", tool.Name)
	if tool.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", tool.Description)
	}

	status := "not installed"
	if installed {
		status = "installed"
	}
	fmt.Fprintf(&b, "- **Binary**: `%s` (%s)\n", tool.Binary, status)
	if tool.Homepage != "" {
		fmt.Fprintf(&b, "- **Homepage**: %s\n", tool.Homepage)
	}
	if tool.DocsURL != "" {
		fmt.Fprintf(&b, "- **Docs**: %s\n", tool.DocsURL)
	}
	if tool.HasAuthEnv() {
		fmt.Fprintf(&b, "- **Auth variables**: `%s`\n", strings.Join(tool.AuthEnvVars, "`, `"))
	}
	if tool.SetupURL != "" {
		fmt.Fprintf(&b, "- **Credentials**: %s\n", tool.SetupURL)
	}

	if len(tool.Guidance) > 0 {
		b.WriteString("\n## Before you start\n\n")
		for _, line := range tool.Guidance {
			fmt.Fprintf(&b, "- %s\n", line)
		}
	}
	return b.String()
}

// RenderToolInfo renders a tool's info view as terminal-styled markdown.
func RenderToolInfo(tool registry.ToolProfile, installed bool) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := r.Render(ToolInfoMarkdown(tool, installed))
	if err != nil {
		return "", fmt.Errorf("failed to render tool info: %w", err)
	}
	return out, nil
}
