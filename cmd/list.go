package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/minhvu92/termpilot/internal/authguard"
	"github.com/minhvu92/termpilot/internal/display"
)

// NewListCmd creates the list command.
func NewListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List managed tools and their install status",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			app.applyLogging()
			app.runList()
		},
	}
}

func (app *App) runList() {
	progress := display.NewProgress(os.Stderr, "Checking tool availability")
	type row struct {
		name, auth, description string
		installed               bool
	}
	var rows []row
	for _, tool := range app.engine.Registry().Profiles() {
		if !tool.Enabled {
			continue
		}
		progress.Update(fmt.Sprintf("Checking %s availability", tool.Name))

		auth := "-"
		if tool.HasAuthEnv() {
			if authguard.AuthConfigured(tool) {
				auth = "configured"
			} else {
				auth = "needs setup"
			}
		}
		rows = append(rows, row{
			name:        tool.Name,
			auth:        auth,
			description: tool.Description,
			installed:   app.engine.IsAvailable(tool.Name),
		})
	}
	progress.Clear()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TOOL\tSTATUS\tAUTH\tDESCRIPTION")
	for _, r := range rows {
		status := "not installed"
		if r.installed {
			status = "installed"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.name, status, r.auth, r.description)
	}
	w.Flush()
}
