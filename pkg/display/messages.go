package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/ajxudir/pipup/pkg/constants"
	"github.com/ajxudir/pipup/pkg/output"
	"github.com/ajxudir/pipup/pkg/upgrade"
)

// Color printers for the summary line. fatih/color disables itself when the
// destination is not a terminal or NO_COLOR is set.
var (
	greenSprint  = color.New(color.FgGreen).SprintFunc()
	redSprint    = color.New(color.FgRed).SprintFunc()
	yellowSprint = color.New(color.FgYellow).SprintFunc()
	cyanSprint   = color.New(color.FgCyan).SprintFunc()
)

// PrintReport renders the per-package result table for an upgrade run.
//
// Results appear in manifest order with a status icon, the package name and
// the old and new versions. Unknown versions render as the N/A placeholder.
//
// Parameters:
//   - w: Writer to output to (typically os.Stdout)
//   - report: The upgrade report to render
//
// Returns:
//   - error: When a write fails
func PrintReport(w io.Writer, report *upgrade.Report) error {
	tbl := output.NewTable("STATUS", "PACKAGE", "OLD", "NEW")
	for _, res := range report.Results {
		tbl.AddRow(FormatStatus(res.Status), res.Name, FormatVersion(res.OldVersion), FormatVersion(res.NewVersion))
	}
	return tbl.Write(w)
}

// PrintSummary prints the one-line run summary with colored counts.
//
// Zero counts are omitted except when everything is zero, in which case a
// "nothing to do" message is printed instead.
//
// Parameters:
//   - w: Writer to output to
//   - report: The upgrade report to summarize
//
// Example output:
//
//	Summary: 3 upgraded, 1 skipped, 1 failed, 2 unchanged
func PrintSummary(w io.Writer, report *upgrade.Report) {
	upgraded, skipped, failed, unchanged, planned := report.Counts()

	var parts []string
	if upgraded > 0 {
		parts = append(parts, greenSprint(fmt.Sprintf("%d upgraded", upgraded)))
	}
	if planned > 0 {
		parts = append(parts, yellowSprint(fmt.Sprintf("%d planned", planned)))
	}
	if skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", skipped))
	}
	if failed > 0 {
		parts = append(parts, redSprint(fmt.Sprintf("%d failed", failed)))
	}
	if unchanged > 0 {
		parts = append(parts, cyanSprint(fmt.Sprintf("%d unchanged", unchanged)))
	}

	if len(parts) == 0 {
		_, _ = fmt.Fprintln(w, "Summary: nothing to do")
		return
	}
	_, _ = fmt.Fprintf(w, "Summary: %s\n", strings.Join(parts, ", "))
}

// PrintBackup prints the backup file location.
//
// Does nothing when no backup was taken (dry runs).
func PrintBackup(w io.Writer, report *upgrade.Report) {
	if report.BackupPath == "" {
		return
	}
	_, _ = fmt.Fprintf(w, "Backup: %s\n", report.BackupPath)
}

// PrintDryRunNotice prints the dry-run banner.
func PrintDryRunNotice(w io.Writer) {
	_, _ = fmt.Fprintf(w, "%s Dry run: no packages will be installed\n", constants.IconPending)
}

// PrintRunWarnings prints the non-fatal problems of a run: a failed pip
// self-upgrade and a failed pin rewrite.
//
// These never change the exit code but the user should see them.
//
// Parameters:
//   - w: Writer to output to (typically os.Stderr)
//   - report: The upgrade report to inspect
func PrintRunWarnings(w io.Writer, report *upgrade.Report) {
	if report.SelfUpgradeErr != nil {
		_, _ = fmt.Fprintf(w, "%s pip self-upgrade failed: %v\n", constants.IconWarn, report.SelfUpgradeErr)
	}
	if report.RewriteErr != nil {
		_, _ = fmt.Fprintf(w, "%s pin rewrite failed: %v\n", constants.IconWarn, report.RewriteErr)
		if report.ManifestRestored {
			_, _ = fmt.Fprintf(w, "%s manifest restored from backup\n", constants.IconInfo)
		}
	}
}

// PrintList renders the list command table: manifest entries joined with the
// installed snapshot.
//
// Parameters:
//   - w: Writer to output to
//   - entries: List entries in manifest order
//
// Returns:
//   - error: When a write fails
func PrintList(w io.Writer, entries []output.ListEntry) error {
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(w, "No packages found")
		return nil
	}

	tbl := output.NewTable("PACKAGE", "PINNED", "INSTALLED")
	for _, e := range entries {
		tbl.AddRow(e.Name, FormatVersion(e.Pinned), FormatVersion(e.Installed))
	}
	return tbl.Write(w)
}
