package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajxudir/pipup/pkg/config"
	"github.com/ajxudir/pipup/pkg/display"
	"github.com/ajxudir/pipup/pkg/errors"
	"github.com/ajxudir/pipup/pkg/manifest"
	"github.com/ajxudir/pipup/pkg/output"
	"github.com/ajxudir/pipup/pkg/pipexec"
	"github.com/ajxudir/pipup/pkg/skiplist"
	"github.com/ajxudir/pipup/pkg/upgrade"
)

// CLI flags
var (
	upgradeRequirementsFlag string
	upgradeSkipFileFlag     string
	upgradeConfigFlag       string
	upgradeBackupDirFlag    string
	upgradeOutputFlag       string
	upgradeSkipPipFlag      bool
	upgradeDryRunFlag       bool
	upgradeRewritePinsFlag  bool
	upgradeNoTimeoutFlag    bool
)

// pipRunner is the runner surface the command needs: the upgrade driver
// interface plus the availability preflight.
type pipRunner interface {
	upgrade.PipRunner
	CheckAvailable(ctx context.Context) error
}

// Testable function variables
var newRunnerFunc = func(cfg *config.Config) pipRunner { return pipexec.New(cfg) }
var runUpgradeFunc = upgrade.Run
var getwdFunc = os.Getwd

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade packages from the requirements file",
	Long: `Upgrade every package listed in the requirements file to its latest
version, skipping packages named in the skip file. The requirements file is
backed up before anything is installed. One failed package never aborts the
run; failures are collected and reported at the end.`,
	RunE: runUpgrade,
}

func init() {
	upgradeCmd.Flags().StringVarP(&upgradeRequirementsFlag, "requirements", "r", "requirements.txt", "Requirements file path")
	upgradeCmd.Flags().StringVarP(&upgradeSkipFileFlag, "skip-file", "s", "skip_packages.txt", "Skip list file path")
	upgradeCmd.Flags().StringVarP(&upgradeConfigFlag, "config", "c", "", "Config file path")
	upgradeCmd.Flags().StringVar(&upgradeBackupDirFlag, "backup-dir", "", "Directory for manifest backups (default: alongside the requirements file)")
	upgradeCmd.Flags().StringVarP(&upgradeOutputFlag, "output", "o", "", "Output format: json, csv (default: table)")
	upgradeCmd.Flags().BoolVar(&upgradeSkipPipFlag, "skip-pip", false, "Skip the pip self-upgrade step")
	upgradeCmd.Flags().BoolVar(&upgradeDryRunFlag, "dry-run", false, "Report what would be upgraded without installing anything")
	upgradeCmd.Flags().BoolVar(&upgradeRewritePinsFlag, "rewrite-pins", false, "Rewrite == pins to >= for upgraded packages after the run")
	upgradeCmd.Flags().BoolVar(&upgradeNoTimeoutFlag, "no-timeout", false, "Disable pip command timeouts")
}

// runUpgrade executes the upgrade command.
//
// Loads configuration, applies flag overrides, verifies pip responds, parses
// the manifest and skip list, runs the upgrade workflow and renders the
// report. Dry runs always return nil; any failed package yields an ExitError
// wrapping a PartialFailureError.
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Unused
//
// Returns:
//   - error: ExitError with code 1 on any fatal or per-package failure
func runUpgrade(cmd *cobra.Command, args []string) error {
	cfg, err := loadUpgradeConfig(cmd)
	if err != nil {
		return errors.NewExitError(errors.ExitFailure, err)
	}

	reqPath, err := config.ResolvePath(cfg, cfg.Requirements)
	if err != nil {
		return errors.NewExitError(errors.ExitFailure, err)
	}
	skipPath, err := config.ResolvePath(cfg, cfg.SkipFile)
	if err != nil {
		return errors.NewExitError(errors.ExitFailure, err)
	}
	backupDir := cfg.BackupDir
	if backupDir != "" {
		if backupDir, err = config.ResolvePath(cfg, backupDir); err != nil {
			return errors.NewExitError(errors.ExitFailure, err)
		}
	}

	ctx := cmd.Context()
	runner := newRunnerFunc(cfg)
	if err := runner.CheckAvailable(ctx); err != nil {
		return errors.NewExitErrorf(errors.ExitFailure, "%s", errors.EnhanceErrorWithHint(err))
	}

	mf, err := manifest.Parse(reqPath)
	if err != nil {
		return errors.NewExitError(errors.ExitFailure, err)
	}

	skip := skiplist.Load(skipPath)
	format := output.ParseFormat(upgradeOutputFlag)

	if upgradeDryRunFlag && !output.IsStructuredFormat(format) && !quietFlag {
		display.PrintDryRunNotice(cmd.OutOrStdout())
	}

	report, err := runUpgradeFunc(ctx, mf, skip, runner, upgrade.Options{
		DryRun:      upgradeDryRunFlag,
		SkipPip:     upgradeSkipPipFlag,
		RewritePins: cfg.RewritePins,
		BackupDir:   backupDir,
	})
	if err != nil {
		return errors.NewExitErrorf(errors.ExitFailure, "%s", errors.EnhanceErrorWithHint(err))
	}

	if renderErr := renderUpgradeReport(cmd, format, report); renderErr != nil {
		return errors.NewExitError(errors.ExitFailure, renderErr)
	}
	display.PrintRunWarnings(cmd.ErrOrStderr(), report)

	// Dry runs report projected changes only and always succeed.
	if report.DryRun {
		return nil
	}

	if report.Failed() {
		upgraded, skipped, failed, unchanged, _ := report.Counts()
		succeeded := upgraded + skipped + unchanged
		errs := report.Errors()
		errors.PrintErrorWithHints(cmd.ErrOrStderr(), errs, verboseFlag)
		return errors.NewExitError(errors.ExitFailure, errors.NewPartialFailureError(succeeded, failed, errs))
	}

	return nil
}

// loadUpgradeConfig loads the effective configuration and applies flag overrides.
//
// A flag only overrides the config file value when it was set explicitly on
// the command line.
func loadUpgradeConfig(cmd *cobra.Command) (*config.Config, error) {
	workDir, err := getwdFunc()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(upgradeConfigFlag, workDir)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("requirements") {
		cfg.Requirements = upgradeRequirementsFlag
	}
	if cmd.Flags().Changed("skip-file") {
		cfg.SkipFile = upgradeSkipFileFlag
	}
	if cmd.Flags().Changed("backup-dir") {
		cfg.BackupDir = upgradeBackupDirFlag
	}
	if cmd.Flags().Changed("rewrite-pins") {
		cfg.RewritePins = upgradeRewritePinsFlag
	}
	if upgradeNoTimeoutFlag {
		cfg.TimeoutSeconds = 0
	}

	return cfg, nil
}

// renderUpgradeReport writes the report in the selected format.
//
// Structured formats replace the human-oriented table and summary entirely;
// quiet mode reduces table output to the summary line.
func renderUpgradeReport(cmd *cobra.Command, format output.Format, report *upgrade.Report) error {
	if output.IsStructuredFormat(format) {
		return output.WriteUpgradeReport(cmd.OutOrStdout(), format, report)
	}

	out := cmd.OutOrStdout()
	if !quietFlag {
		if err := display.PrintReport(out, report); err != nil {
			return err
		}
		display.PrintBackup(out, report)
	}
	display.PrintSummary(out, report)
	return nil
}
