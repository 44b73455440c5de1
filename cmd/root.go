package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/minhvu92/termpilot/internal/config"
	"github.com/minhvu92/termpilot/internal/detect"
	"github.com/minhvu92/termpilot/internal/display"
	"github.com/minhvu92/termpilot/internal/logging"
	"github.com/minhvu92/termpilot/internal/registry"
	"github.com/minhvu92/termpilot/internal/session"
)

// App holds the application state
type App struct {
	cfg    *config.Config
	engine *session.Engine

	verbose     bool
	maxAttempts int
}

// NewApp loads configuration and wires the execution engine.
func NewApp() (*App, error) {
	config.LoadDotEnv()

	fc, err := config.LoadConfigFile()
	if err != nil {
		return nil, err
	}
	cfg := config.Resolve(fc)

	profiles := registry.Merge(registry.BuiltinProfiles(), fc.ToolsOverlay())
	reg, err := registry.New(profiles)
	if err != nil {
		return nil, err
	}

	cache := detect.NewCache(detect.Options{
		TTL:          cfg.DetectionTTL,
		ProbeTimeout: cfg.ProbeTimeout,
	})

	engine := session.NewEngine(session.EngineOptions{
		Registry:    reg,
		Cache:       cache,
		Classifier:  session.NewClassifier(cfg.QuickExitThreshold),
		MaxAttempts: cfg.MaxAttempts,
		Guidance: func(tool registry.ToolProfile) {
			display.Guidance(os.Stdout, tool)
		},
	})

	return &App{cfg: cfg, engine: engine}, nil
}

// Execute runs the root command
func Execute() {
	app, err := NewApp()
	if err != nil {
		display.Errorf("%v", err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "termpilot [tool] [args...]",
		Short: "A launcher for AI coding assistant CLIs",
		Long: `Termpilot launches and supervises interactive AI coding tools
(claude, gemini, opencode, aider, ...) from one place.

It checks which tools are installed, keeps browser-based auth flows from
hanging in headless environments, and restarts a tool once it finishes an
in-tool setup step.

Examples:
  termpilot                    # Interactive tool menu
  termpilot claude             # Launch claude directly
  termpilot claude --resume    # Launch claude with its own flags
  termpilot list               # Show tools and install status
  termpilot info opencode      # Show one tool's details`,
		Args: cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			app.run(cmd, args)
		},
	}

	// Flags after the tool name belong to the tool, not to us
	rootCmd.Flags().SetInterspersed(false)
	rootCmd.Flags().BoolVarP(&app.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().IntVar(&app.maxAttempts, "max-attempts", 0, "Override the relaunch ceiling per session")

	rootCmd.AddCommand(NewListCmd(app))
	rootCmd.AddCommand(NewInfoCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func (app *App) run(cmd *cobra.Command, args []string) {
	app.applyLogging()
	if app.maxAttempts > 0 {
		app.engine = app.engine.WithMaxAttempts(app.maxAttempts)
	}

	if len(args) == 0 {
		if !stdinIsTerminal() {
			_ = cmd.Help()
			return
		}
		app.runMenu()
		return
	}

	outcome := app.engine.Run(args[0], args[1:])
	os.Exit(app.reportOutcome(args[0], outcome))
}

// applyLogging sets the logger level from the flag, the environment, or the
// config file, in that priority order.
func (app *App) applyLogging() {
	switch {
	case app.verbose:
		logging.SetLevel(logging.LevelDebug)
	case app.cfg.LogLevel != "":
		logging.SetLevel(logging.ParseLevel(app.cfg.LogLevel))
	}
}

// reportOutcome prints the outcome of a direct (non-menu) run and returns the
// process exit code.
func (app *App) reportOutcome(toolName string, outcome session.Outcome) int {
	switch outcome.Kind {
	case session.OutcomeNotInstalled:
		display.Errorf("%s is not installed", toolName)
		display.Hint(os.Stderr, "Run 'termpilot info %s' for install and setup pointers.", toolName)
		return 1
	case session.OutcomeLaunchFailed:
		display.Errorf("%v", outcome.Err)
		return 1
	case session.OutcomeCompletedAfterRestart:
		logging.Info("session completed after setup restarts", logging.Fields{
			"tool":     toolName,
			"restarts": outcome.Restarts,
		})
		return 0
	default:
		return 0
	}
}
