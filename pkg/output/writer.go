package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/iancoleman/orderedmap"

	"github.com/ajxudir/pipup/pkg/upgrade"
)

// ListEntry is one row of the list command output.
//
// Fields:
//   - Name: Package name as written in the manifest
//   - Pinned: Pinned version from the manifest, empty when unpinned
//   - Installed: Installed version from pip freeze, empty when not installed
type ListEntry struct {
	Name      string
	Pinned    string
	Installed string
}

// WriteUpgradeReport writes an upgrade report in the specified format.
//
// JSON keeps results in manifest order via an ordered document; CSV writes
// a header plus one row per result.
//
// Parameters:
//   - w: Destination writer for the output
//   - format: Output format (FormatJSON or FormatCSV)
//   - report: Upgrade report to write
//
// Returns:
//   - error: When format is unsupported or the write fails
func WriteUpgradeReport(w io.Writer, format Format, report *upgrade.Report) error {
	switch format {
	case FormatJSON:
		return writeUpgradeJSON(w, report)
	case FormatCSV:
		return writeUpgradeCSV(w, report)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// writeUpgradeJSON writes the report as an ordered JSON document.
func writeUpgradeJSON(w io.Writer, report *upgrade.Report) error {
	upgraded, skipped, failed, unchanged, planned := report.Counts()

	doc := orderedmap.New()
	doc.Set("dry_run", report.DryRun)
	doc.Set("backup", report.BackupPath)

	results := make([]*orderedmap.OrderedMap, 0, len(report.Results))
	for _, res := range report.Results {
		entry := orderedmap.New()
		entry.Set("name", res.Name)
		entry.Set("old_version", res.OldVersion)
		entry.Set("new_version", res.NewVersion)
		entry.Set("status", res.Status)
		if res.Err != nil {
			entry.Set("error", res.Err.Error())
		}
		results = append(results, entry)
	}
	doc.Set("results", results)

	summary := orderedmap.New()
	summary.Set("upgraded", upgraded)
	summary.Set("skipped", skipped)
	summary.Set("failed", failed)
	summary.Set("unchanged", unchanged)
	summary.Set("planned", planned)
	doc.Set("summary", summary)

	if report.SelfUpgradeErr != nil {
		doc.Set("self_upgrade_error", report.SelfUpgradeErr.Error())
	}
	if report.RewriteErr != nil {
		doc.Set("rewrite_error", report.RewriteErr.Error())
		doc.Set("manifest_restored", report.ManifestRestored)
	}

	return marshalJSON(w, doc)
}

// writeUpgradeCSV writes the report rows as CSV.
func writeUpgradeCSV(w io.Writer, report *upgrade.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"NAME", "OLD", "NEW", "STATUS", "ERROR"}); err != nil {
		return err
	}
	for _, res := range report.Results {
		errMsg := ""
		if res.Err != nil {
			errMsg = res.Err.Error()
		}
		if err := cw.Write([]string{res.Name, res.OldVersion, res.NewVersion, res.Status, errMsg}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteListResult writes list entries in the specified format.
//
// Parameters:
//   - w: Destination writer for the output
//   - format: Output format (FormatJSON or FormatCSV)
//   - entries: List entries in manifest order
//
// Returns:
//   - error: When format is unsupported or the write fails
func WriteListResult(w io.Writer, format Format, entries []ListEntry) error {
	switch format {
	case FormatJSON:
		return writeListJSON(w, entries)
	case FormatCSV:
		return writeListCSV(w, entries)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// writeListJSON writes list entries as an ordered JSON document.
func writeListJSON(w io.Writer, entries []ListEntry) error {
	doc := orderedmap.New()
	packages := make([]*orderedmap.OrderedMap, 0, len(entries))
	for _, e := range entries {
		entry := orderedmap.New()
		entry.Set("name", e.Name)
		entry.Set("pinned", e.Pinned)
		entry.Set("installed", e.Installed)
		packages = append(packages, entry)
	}
	doc.Set("packages", packages)
	return marshalJSON(w, doc)
}

// writeListCSV writes list entries as CSV.
func writeListCSV(w io.Writer, entries []ListEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"NAME", "PINNED", "INSTALLED"}); err != nil {
		return err
	}
	for _, e := range entries {
		if err := cw.Write([]string{e.Name, e.Pinned, e.Installed}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// marshalJSON encodes a document with indentation and without HTML escaping.
func marshalJSON(w io.Writer, doc *orderedmap.OrderedMap) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}
