package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minhvu92/termpilot/internal/authguard"
	"github.com/minhvu92/termpilot/internal/display"
)

// NewInfoCmd creates the info command.
func NewInfoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:           "info <tool>",
		Short:         "Show details, auth setup, and guidance for one tool",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.applyLogging()
			return app.runInfo(args[0])
		},
	}
}

func (app *App) runInfo(toolName string) error {
	tool, err := app.engine.Registry().Resolve(toolName)
	if err != nil {
		display.Errorf("unknown tool %q", toolName)
		display.Hint(os.Stderr, "Run 'termpilot list' to see managed tools.")
		return err
	}

	out, err := display.RenderToolInfo(tool, app.engine.IsAvailable(tool.Name))
	if err != nil {
		return err
	}
	fmt.Print(out)

	if tool.HasAuthEnv() && !authguard.AuthConfigured(tool) {
		display.Warning(os.Stdout, "No credential variable is set (%s)", strings.Join(tool.AuthEnvVars, ", "))
		if tool.SetupURL != "" {
			display.Hint(os.Stdout, "Get credentials at %s", tool.SetupURL)
		}
	}
	return nil
}
