// Package main is the entry point for the pipup CLI application.
//
// This file bootstraps the application by invoking the command execution
// logic defined in the cmd package. The pipup tool upgrades installed pip
// packages listed in a requirements file while honoring a skip list.
package main

import "github.com/ajxudir/pipup/cmd"

// main initializes and runs the pipup CLI application.
//
// It delegates all command parsing and execution to the cmd package,
// which handles the upgrade, list, and version subcommands.
func main() {
	cmd.Execute()
}
