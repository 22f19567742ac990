package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/pipup/pkg/errors"
	"github.com/ajxudir/pipup/pkg/testutil"
	"github.com/ajxudir/pipup/pkg/verbose"
)

// TestPersistentPreRunVerbose tests the behavior of PersistentPreRun with the
// verbose flag.
//
// It verifies:
//   - Verbose mode is enabled when verboseFlag is set to true
//   - Verbose mode stays disabled otherwise
func TestPersistentPreRunVerbose(t *testing.T) {
	resetCommandState(t)
	defer verbose.Disable()

	verboseFlag = true
	rootCmd.PersistentPreRun(rootCmd, []string{})
	assert.True(t, verbose.IsEnabled())

	verbose.Disable()
	verboseFlag = false
	rootCmd.PersistentPreRun(rootCmd, []string{})
	assert.False(t, verbose.IsEnabled())
}

// TestRootCommandShowsHelp tests that running without a subcommand prints help.
func TestRootCommandShowsHelp(t *testing.T) {
	resetCommandState(t)

	stdout, _, err := executeCommand(t)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Usage:")
	assert.Contains(t, stdout, "upgrade")
	assert.Contains(t, stdout, "list")
	assert.Contains(t, stdout, "version")
}

// TestExecuteWithExitCodes tests the behavior of Execute with different exit codes.
//
// It verifies:
//   - Successful commands never call exitFunc
//   - Errors call exitFunc with the failure exit code
func TestExecuteWithExitCodes(t *testing.T) {
	resetCommandState(t)
	oldExit := exitFunc
	defer func() { exitFunc = oldExit }()

	t.Run("success does not exit", func(t *testing.T) {
		exitCode := -1
		exitFunc = func(code int) { exitCode = code }

		out := testutil.CaptureStdout(t, func() {
			rootCmd.SetArgs([]string{"--help"})
			Execute()
			rootCmd.SetArgs(nil)
		})

		assert.Equal(t, -1, exitCode)
		assert.Contains(t, out, "Usage:")
	})

	t.Run("unknown command exits with failure", func(t *testing.T) {
		exitCode := -1
		exitFunc = func(code int) { exitCode = code }

		errOut := testutil.CaptureStderr(t, func() {
			rootCmd.SetArgs([]string{"nonexistent-subcommand-xyz"})
			Execute()
			rootCmd.SetArgs(nil)
		})

		assert.Equal(t, errors.ExitFailure, exitCode)
		assert.Contains(t, errOut, "nonexistent-subcommand-xyz")
	})
}
