package upgrade

import (
	"fmt"

	"github.com/ajxudir/pipup/pkg/constants"
)

// Result records the outcome for a single manifest entry.
//
// Fields:
//   - Name: Package name as written in the manifest
//   - OldVersion: Installed version before the run (empty if not installed)
//   - NewVersion: Installed (or projected, in dry-run) version after the run
//   - Status: One of the constants.Status* values
//   - Err: The per-package error when Status is Failed
type Result struct {
	Name       string
	OldVersion string
	NewVersion string
	Status     string
	Err        error
}

// Report aggregates the outcome of an upgrade run.
//
// Results appear in manifest order, exactly one per manifest entry.
//
// Fields:
//   - Results: Per-package outcomes in manifest order
//   - BackupPath: Backup file written before mutation (empty in dry-run)
//   - DryRun: Whether the run was a dry run
//   - SelfUpgradeErr: Error from the pip self-upgrade step, if it ran and failed
//   - RewriteErr: Error from the manifest pin rewrite, if it ran and failed
//   - ManifestRestored: Whether the manifest was restored from backup after a failed rewrite
type Report struct {
	Results          []Result
	BackupPath       string
	DryRun           bool
	SelfUpgradeErr   error
	RewriteErr       error
	ManifestRestored bool
}

// Counts tallies results by status.
//
// Returns:
//   - upgraded, skipped, failed, unchanged, planned: Result counts per status
func (r *Report) Counts() (upgraded, skipped, failed, unchanged, planned int) {
	for _, res := range r.Results {
		switch res.Status {
		case constants.StatusUpgraded:
			upgraded++
		case constants.StatusSkipped:
			skipped++
		case constants.StatusFailed:
			failed++
		case constants.StatusUnchanged:
			unchanged++
		case constants.StatusPlanned:
			planned++
		}
	}
	return
}

// Failed reports whether any package failed.
//
// Returns:
//   - bool: true when at least one result has Failed status
func (r *Report) Failed() bool {
	for _, res := range r.Results {
		if res.Status == constants.StatusFailed {
			return true
		}
	}
	return false
}

// Errors collects the per-package errors of failed results.
//
// Returns:
//   - []error: One error per failed package, in manifest order
func (r *Report) Errors() []error {
	var errs []error
	for _, res := range r.Results {
		if res.Status != constants.StatusFailed {
			continue
		}
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", res.Name, res.Err))
		} else {
			errs = append(errs, fmt.Errorf("%s: upgrade failed", res.Name))
		}
	}
	return errs
}
