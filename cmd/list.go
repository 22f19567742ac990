package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ajxudir/pipup/pkg/config"
	"github.com/ajxudir/pipup/pkg/display"
	"github.com/ajxudir/pipup/pkg/errors"
	"github.com/ajxudir/pipup/pkg/manifest"
	"github.com/ajxudir/pipup/pkg/output"
	"github.com/ajxudir/pipup/pkg/pipexec"
	"github.com/ajxudir/pipup/pkg/warnings"
)

// CLI flags
var (
	listRequirementsFlag string
	listConfigFlag       string
	listOutputFlag       string
)

// listInstalledFunc snapshots installed packages. Variable for test injection.
var listInstalledFunc = func(ctx context.Context, cfg *config.Config) (map[string]string, error) {
	return pipexec.New(cfg).Installed(ctx)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List requirements entries with installed versions",
	Long: `List the packages in the requirements file alongside their pinned and
installed versions. Read-only: nothing is installed or modified.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listRequirementsFlag, "requirements", "r", "requirements.txt", "Requirements file path")
	listCmd.Flags().StringVarP(&listConfigFlag, "config", "c", "", "Config file path")
	listCmd.Flags().StringVarP(&listOutputFlag, "output", "o", "", "Output format: json, csv (default: table)")
}

// runList executes the list command.
//
// Joins manifest entries with the pip freeze snapshot. A failing snapshot is
// downgraded to a warning since the manifest content alone is still useful;
// only a missing manifest fails the command.
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Unused
//
// Returns:
//   - error: ExitError with code 1 when the manifest cannot be read
func runList(cmd *cobra.Command, args []string) error {
	workDir, err := getwdFunc()
	if err != nil {
		return errors.NewExitError(errors.ExitFailure, err)
	}

	cfg, err := config.Load(listConfigFlag, workDir)
	if err != nil {
		return errors.NewExitError(errors.ExitFailure, err)
	}
	if cmd.Flags().Changed("requirements") {
		cfg.Requirements = listRequirementsFlag
	}

	reqPath, err := config.ResolvePath(cfg, cfg.Requirements)
	if err != nil {
		return errors.NewExitError(errors.ExitFailure, err)
	}

	mf, err := manifest.Parse(reqPath)
	if err != nil {
		return errors.NewExitError(errors.ExitFailure, err)
	}

	installed, err := listInstalledFunc(cmd.Context(), cfg)
	if err != nil {
		warnings.Warnf("could not read installed versions: %v\n", err)
		installed = map[string]string{}
	}

	entries := make([]output.ListEntry, 0, mf.Len())
	for _, e := range mf.Entries() {
		entries = append(entries, output.ListEntry{
			Name:      e.Name,
			Pinned:    e.Pinned,
			Installed: installed[e.Normalized],
		})
	}

	format := output.ParseFormat(listOutputFlag)
	if output.IsStructuredFormat(format) {
		if writeErr := output.WriteListResult(cmd.OutOrStdout(), format, entries); writeErr != nil {
			return errors.NewExitError(errors.ExitFailure, writeErr)
		}
		return nil
	}

	if printErr := display.PrintList(cmd.OutOrStdout(), entries); printErr != nil {
		return errors.NewExitError(errors.ExitFailure, printErr)
	}
	return nil
}
