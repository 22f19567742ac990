// Package cmd implements the command-line interface for pipup.
// It provides commands for upgrading packages from a requirements manifest,
// listing manifest entries against the installed snapshot, and showing
// version information.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ajxudir/pipup/pkg/errors"
	"github.com/ajxudir/pipup/pkg/verbose"
)

var exitFunc = os.Exit
var verboseFlag bool
var quietFlag bool

var rootCmd = &cobra.Command{
	Use:   "pipup",
	Short: "Upgrade pip packages listed in a requirements file",
	Long: `Upgrade installed Python packages listed in a requirements manifest,
honoring a skip list, backing the manifest up first, and isolating
per-package failures.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			verbose.Enable()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute runs the root command and exits with appropriate code:
//   - 0: Success (including dry runs and all-skipped runs)
//   - 1: Any package failed, the backup failed, or the manifest is missing
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		code := errors.GetExitCode(err)
		verbose.Infof("Exit code %d: %v", code, err)
		exitFunc(code)
	}
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
//
// Unlike Execute(), this function returns the error directly without calling
// os.Exit, making it suitable for use in test suites.
//
// Returns:
//   - error: Command execution error, or nil on success
func ExecuteTest() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress per-package output, print the summary only")

	// Commands ordered logically: info → workflow (list → upgrade)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(upgradeCmd)
}
