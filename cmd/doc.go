// Package cmd implements the CLI commands for the termpilot launcher.
//
// # Architecture
//
// This package is organized into the following logical groups:
//
// ## Core CLI
//
//   - root.go: Main entry point, App struct, cobra command setup, and flags
//   - list.go: Tool inventory with install status
//   - info.go: Per-tool detail view (auth variables, setup URL, guidance)
//
// ## Interactive Mode
//
//   - menu.go: Tool selection menu shown when termpilot runs with no
//     arguments on a terminal; loops until Exit is chosen
//
// # Key Components
//
// ## App
//
// The App struct holds application state: the resolved config and the
// execution engine. It's created in Execute() and passed to command
// constructors.
//
// ## Engine
//
// The session.Engine behind every command resolves a tool profile, checks
// the detection cache, and runs one supervised session per launch. Direct
// runs (termpilot claude) report the outcome through the process exit code;
// menu runs report inline and return to the menu.
//
// # Usage
//
//	// Main entry point
//	func main() {
//	    cmd.Execute()
//	}
package cmd
