package manifest

import (
	"fmt"
	"os"
	"strings"
)

// Content renders the manifest back to its file representation.
//
// Non-entry lines are reproduced verbatim; entry lines come from their raw
// text, so an unmodified manifest round-trips byte-for-byte.
//
// Returns:
//   - []byte: The rendered file content including trailing newline
func (f *File) Content() []byte {
	var sb strings.Builder
	for _, line := range f.lines {
		sb.WriteString(line.raw)
		sb.WriteString("\n")
	}
	return []byte(sb.String())
}

// WriteRewrite rewrites == pins to >= for eligible entries and writes the file.
//
// Only entries for which eligible returns true are rewritten; skipped and
// failed packages keep their exact pin. Comments, blanks and malformed lines
// are preserved verbatim. The write replaces the file in one operation so a
// partial manifest is never left on disk.
//
// Parameters:
//   - eligible: Predicate over the normalized package name
//
// Returns:
//   - error: When the manifest is a pyproject.toml or the write fails
func (f *File) WriteRewrite(eligible func(normalized string) bool) error {
	if f.pyproject {
		return fmt.Errorf("pin rewrite is not supported for pyproject.toml manifests")
	}

	var sb strings.Builder
	for _, line := range f.lines {
		raw := line.raw
		if line.entry != nil && line.entry.Pinned != "" && eligible(line.entry.Normalized) {
			raw = strings.Replace(raw, "==", ">=", 1)
		}
		sb.WriteString(raw)
		sb.WriteString("\n")
	}

	mode := f.Mode
	if mode == 0 {
		mode = 0o644
	}
	if err := os.WriteFile(f.Path, []byte(sb.String()), mode); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", f.Path, err)
	}
	return nil
}
