package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/minhvu92/termpilot/internal/display"
	"github.com/minhvu92/termpilot/internal/session"
)

// exitChoice is the menu entry that leaves the launcher.
const exitChoice = "exit"

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// runMenu shows the tool selection menu in a loop. A tool session that ends
// returns here; picking Exit (or Ctrl-C) leaves the launcher.
func (app *App) runMenu() {
	for {
		choice, err := app.selectTool()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return
			}
			display.Errorf("%v", err)
			return
		}
		if choice == exitChoice {
			return
		}

		outcome := app.engine.Run(choice, nil)
		app.reportMenuOutcome(choice, outcome)
	}
}

// selectTool prompts for a tool. Installed tools are marked; missing ones stay
// selectable so their info is one step away.
func (app *App) selectTool() (string, error) {
	names := app.engine.Registry().EnabledNames()

	var opts []huh.Option[string]
	for _, name := range names {
		label := name
		if app.engine.IsAvailable(name) {
			label = name + " ✓"
		} else {
			label = name + " (not installed)"
		}
		opts = append(opts, huh.NewOption(label, name))
	}
	opts = append(opts, huh.NewOption("Exit", exitChoice))

	var choice string
	err := huh.NewSelect[string]().
		Title("Select a tool to launch").
		Options(opts...).
		Value(&choice).
		Run()
	if err != nil {
		return "", err
	}
	return choice, nil
}

// reportMenuOutcome prints a short status line between sessions.
func (app *App) reportMenuOutcome(toolName string, outcome session.Outcome) {
	switch outcome.Kind {
	case session.OutcomeNotInstalled:
		display.Warning(os.Stdout, "%s is not installed", toolName)
		if tool, err := app.engine.Registry().Resolve(toolName); err == nil && tool.Homepage != "" {
			display.Hint(os.Stdout, "Install instructions: %s", tool.Homepage)
		}
	case session.OutcomeLaunchFailed:
		display.Error(os.Stdout, "%v", outcome.Err)
	case session.OutcomeCompletedAfterRestart:
		display.Success(os.Stdout, "%s session finished after %d setup restart(s)", toolName, outcome.Restarts)
	default:
		fmt.Println()
	}
}
