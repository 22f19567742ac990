// Package upgrade implements the manifest-diff-and-selective-upgrade workflow.
//
// The driver walks the manifest in order, skipping excluded packages,
// invoking pip once per remaining entry and recording an outcome for every
// entry. One failed package never aborts the run; the manifest on disk is
// only touched after all upgrades finish, and restored from backup if that
// final write fails.
package upgrade

import (
	"context"
	"fmt"

	"github.com/ajxudir/pipup/pkg/backup"
	"github.com/ajxudir/pipup/pkg/constants"
	"github.com/ajxudir/pipup/pkg/manifest"
	"github.com/ajxudir/pipup/pkg/pipver"
	"github.com/ajxudir/pipup/pkg/skiplist"
	"github.com/ajxudir/pipup/pkg/verbose"
	"github.com/ajxudir/pipup/pkg/warnings"
)

// PipRunner is the narrow pip surface the driver depends on.
//
// The real implementation shells out to pip (pkg/pipexec.Runner); tests use
// a double returning deterministic version strings.
type PipRunner interface {
	// Installed returns a snapshot of installed packages, keyed by
	// normalized name.
	Installed(ctx context.Context) (map[string]string, error)

	// Latest returns the newest available version without installing.
	Latest(ctx context.Context, name string) (string, error)

	// InstallLatest installs the newest version and returns it; empty means
	// the requirement was already satisfied.
	InstallLatest(ctx context.Context, name string) (string, error)

	// SelfUpgrade upgrades pip itself.
	SelfUpgrade(ctx context.Context) error
}

// Options configures a single upgrade run.
//
// Fields:
//   - DryRun: Compute and report changes without installing anything
//   - SkipPip: Omit the pip self-upgrade step
//   - RewritePins: Rewrite == pins to >= after a successful run
//   - BackupDir: Directory for the manifest backup (empty = alongside manifest)
type Options struct {
	DryRun      bool
	SkipPip     bool
	RewritePins bool
	BackupDir   string
}

// createBackupFunc creates the manifest backup. Variable for test injection.
var createBackupFunc = backup.Create

// restoreBackupFunc restores the manifest from backup. Variable for test injection.
var restoreBackupFunc = backup.Restore

// Run executes the upgrade workflow over a parsed manifest.
//
// The sequence is: snapshot installed versions, back up the manifest (real
// runs only), process each entry in manifest order, self-upgrade pip, then
// rewrite pins if requested. Per-package failures are recorded and the loop
// continues; only a missing snapshot or failed backup aborts the run.
//
// Parameters:
//   - ctx: Context for cancellation of pip invocations
//   - mf: Parsed manifest to process
//   - skip: Packages excluded from upgrade
//   - runner: Pip interface implementation
//   - opts: Run options
//
// Returns:
//   - *Report: Outcome with exactly one result per manifest entry
//   - error: Fatal errors only (snapshot or backup failure); per-package
//     failures live on the report
func Run(ctx context.Context, mf *manifest.File, skip skiplist.Set, runner PipRunner, opts Options) (*Report, error) {
	installed, err := runner.Installed(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{DryRun: opts.DryRun}

	if !opts.DryRun {
		backupPath, backupErr := createBackupFunc(mf.Path, opts.BackupDir)
		if backupErr != nil {
			return nil, backupErr
		}
		report.BackupPath = backupPath
	}

	for _, entry := range mf.Entries() {
		report.Results = append(report.Results, processEntry(ctx, entry, installed, skip, runner, opts))
	}

	if !opts.DryRun && !opts.SkipPip {
		if selfErr := runner.SelfUpgrade(ctx); selfErr != nil {
			// Recorded on the report only; never affects the exit code.
			report.SelfUpgradeErr = selfErr
		}
	}

	if !opts.DryRun && opts.RewritePins {
		rewritePins(mf, report, skip)
	}

	return report, nil
}

// processEntry produces the result for one manifest entry.
func processEntry(ctx context.Context, entry *manifest.Entry, installed map[string]string, skip skiplist.Set, runner PipRunner, opts Options) Result {
	old := installed[entry.Normalized]
	if old == "" && entry.Pinned != "" {
		// Not installed: the manifest pin is the best known current version.
		old = entry.Pinned
	}

	if skip.Contains(entry.Name) {
		verbose.Infof("skipping %s (skip list)", entry.Name)
		return Result{Name: entry.Name, OldVersion: old, NewVersion: old, Status: constants.StatusSkipped}
	}

	if opts.DryRun {
		return planEntry(ctx, entry, old, runner)
	}

	newVersion, err := runner.InstallLatest(ctx, entry.Name)
	if err != nil {
		verbose.Infof("install failed for %s: %v", entry.Name, err)
		return Result{Name: entry.Name, OldVersion: old, Status: constants.StatusFailed, Err: err}
	}

	if newVersion == "" {
		// Requirement already satisfied.
		newVersion = old
	}

	status := constants.StatusUpgraded
	if old != "" && pipver.Equal(old, newVersion) {
		status = constants.StatusUnchanged
	}
	return Result{Name: entry.Name, OldVersion: old, NewVersion: newVersion, Status: status}
}

// planEntry produces the dry-run result for one entry: the projected latest
// version is looked up but nothing is installed.
func planEntry(ctx context.Context, entry *manifest.Entry, old string, runner PipRunner) Result {
	latest, err := runner.Latest(ctx, entry.Name)
	if err != nil {
		return Result{Name: entry.Name, OldVersion: old, Status: constants.StatusFailed, Err: err}
	}

	if pipver.IsNewer(latest, old) {
		return Result{Name: entry.Name, OldVersion: old, NewVersion: latest, Status: constants.StatusPlanned}
	}
	return Result{Name: entry.Name, OldVersion: old, NewVersion: old, Status: constants.StatusUnchanged}
}

// rewritePins rewrites == pins to >= for entries that were neither skipped
// nor failed, restoring the manifest from backup when the write fails.
func rewritePins(mf *manifest.File, report *Report, skip skiplist.Set) {
	if mf.IsPyproject() {
		report.RewriteErr = fmt.Errorf("pin rewrite is not supported for pyproject.toml manifests")
		return
	}

	failed := make(map[string]bool)
	for _, res := range report.Results {
		if res.Status == constants.StatusFailed {
			failed[manifest.NormalizeName(res.Name)] = true
		}
	}

	err := mf.WriteRewrite(func(normalized string) bool {
		return !failed[normalized] && !skip.Contains(normalized)
	})
	if err == nil {
		return
	}

	report.RewriteErr = err
	if report.BackupPath != "" {
		if restoreErr := restoreBackupFunc(report.BackupPath, mf.Path); restoreErr != nil {
			warnings.Warnf("failed to restore manifest after rewrite error: %v\n", restoreErr)
		} else {
			report.ManifestRestored = true
		}
	}
}
