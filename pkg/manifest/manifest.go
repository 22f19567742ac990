// Package manifest reads and rewrites pip requirements manifests.
//
// Two manifest grammars are supported: requirements.txt-style line files and
// the [project].dependencies table of a pyproject.toml. Parsing is
// deliberately permissive: lines that cannot be understood are warned about
// and carried through verbatim, never upgraded and never dropped.
package manifest

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/iancoleman/orderedmap"

	"github.com/ajxudir/pipup/pkg/errors"
	"github.com/ajxudir/pipup/pkg/verbose"
	"github.com/ajxudir/pipup/pkg/warnings"
)

var (
	// nameRegex matches a valid PEP 508 project name at the start of a
	// requirement line.
	nameRegex = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?`)

	// normalizeRegex collapses runs of separator characters for PEP 503
	// name normalization.
	normalizeRegex = regexp.MustCompile(`[-_.]+`)
)

// NormalizeName normalizes a package name per PEP 503.
//
// Pip treats names case-insensitively and considers `-`, `_` and `.` runs
// equivalent, so "Flask_Login" and "flask-login" identify the same package.
//
// Parameters:
//   - name: Package name as written in a manifest or skip list
//
// Returns:
//   - string: The normalized name used for matching
func NormalizeName(name string) string {
	return normalizeRegex.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}

// Entry represents one package requirement parsed from a manifest.
//
// Fields:
//   - Name: Package name as written in the manifest
//   - Normalized: PEP 503-normalized name used for matching
//   - Pinned: Version pinned with ==, or empty when the entry is unpinned
//   - Raw: The full original line, including extras, markers and comments
//   - Line: 1-based line number in the source file (0 for pyproject entries)
type Entry struct {
	Name       string
	Normalized string
	Pinned     string
	Raw        string
	Line       int
}

// fileLine is one physical line of a requirements file. Non-entry lines
// (comments, blanks, pip options, malformed lines) keep entry nil and are
// reproduced verbatim on rewrite.
type fileLine struct {
	raw   string
	entry *Entry
}

// File is a parsed manifest with entry order preserved.
//
// Fields:
//   - Path: Source path the manifest was read from
//   - Mode: File mode of the source, reused when rewriting
type File struct {
	Path string
	Mode os.FileMode

	lines     []fileLine
	entries   *orderedmap.OrderedMap
	pyproject bool
}

// Entries returns the package entries in manifest order.
//
// Returns:
//   - []*Entry: Entries in the order they appear in the file
func (f *File) Entries() []*Entry {
	keys := f.entries.Keys()
	out := make([]*Entry, 0, len(keys))
	for _, k := range keys {
		if v, ok := f.entries.Get(k); ok {
			out = append(out, v.(*Entry))
		}
	}
	return out
}

// Len returns the number of package entries in the manifest.
func (f *File) Len() int {
	return len(f.entries.Keys())
}

// Lookup finds an entry by package name, applying name normalization.
//
// Parameters:
//   - name: Package name in any casing/separator style
//
// Returns:
//   - *Entry: The matching entry, or nil
//   - bool: true when the entry exists
func (f *File) Lookup(name string) (*Entry, bool) {
	if v, ok := f.entries.Get(NormalizeName(name)); ok {
		return v.(*Entry), true
	}
	return nil, false
}

// IsPyproject reports whether the manifest came from a pyproject.toml.
// Pyproject manifests are read-only: pin rewriting is not supported.
func (f *File) IsPyproject() bool {
	return f.pyproject
}

// Parse reads and parses a manifest file.
//
// The grammar is chosen by filename: paths ending in pyproject.toml are read
// as TOML, everything else as requirements lines. A missing file yields a
// ManifestNotFoundError.
//
// Parameters:
//   - path: Path to the manifest file
//
// Returns:
//   - *File: The parsed manifest
//   - error: ManifestNotFoundError when the file does not exist, or a read/parse error
func Parse(path string) (*File, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, &errors.ManifestNotFoundError{Path: path}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	if strings.HasSuffix(path, "pyproject.toml") {
		return parsePyproject(path, info.Mode(), content)
	}
	return parseRequirements(path, info.Mode(), content)
}

// parseRequirements parses requirements.txt-style content line by line.
//
// Duplicate names keep the first entry; later duplicates are warned about
// and carried verbatim so the file round-trips unchanged.
func parseRequirements(path string, mode os.FileMode, content []byte) (*File, error) {
	f := &File{
		Path:    path,
		Mode:    mode,
		entries: orderedmap.New(),
	}

	normalized := strings.ReplaceAll(string(content), "\r\n", "\n")
	skipped := 0
	for i, raw := range strings.Split(normalized, "\n") {
		lineNo := i + 1
		entry, ok := parseLine(raw, lineNo)
		if !ok {
			f.lines = append(f.lines, fileLine{raw: raw})
			continue
		}
		if entry == nil {
			// Looked like a requirement but did not parse.
			skipped++
			f.lines = append(f.lines, fileLine{raw: raw})
			continue
		}
		if _, dup := f.entries.Get(entry.Normalized); dup {
			warnings.Warnf("%s:%d: duplicate entry for %s, keeping first\n", path, lineNo, entry.Name)
			f.lines = append(f.lines, fileLine{raw: raw})
			continue
		}
		f.entries.Set(entry.Normalized, entry)
		f.lines = append(f.lines, fileLine{raw: raw, entry: entry})
	}

	// Drop the phantom line produced by a trailing newline.
	if n := len(f.lines); n > 0 && f.lines[n-1].raw == "" && f.lines[n-1].entry == nil {
		f.lines = f.lines[:n-1]
	}

	verbose.ManifestParsed(path, f.Len(), skipped)
	return f, nil
}

// parseLine parses a single requirements line.
//
// Returns (nil, false) for lines that are not requirements at all (blank,
// comments, pip options) and (nil, true) for lines that should have been
// requirements but are malformed. Malformed lines emit a warning.
func parseLine(raw string, lineNo int) (*Entry, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, false
	}
	// Pip option lines: -r other.txt, --index-url, -e ./local
	if strings.HasPrefix(trimmed, "-") {
		return nil, false
	}

	name := nameRegex.FindString(trimmed)
	if name == "" {
		warnings.Warnf("line %d: skipping unparsable requirement: %s\n", lineNo, trimmed)
		return nil, true
	}

	rest := trimmed[len(name):]
	// Drop extras before looking for the version specifier.
	if strings.HasPrefix(rest, "[") {
		if end := strings.Index(rest, "]"); end >= 0 {
			rest = rest[end+1:]
		} else {
			warnings.Warnf("line %d: skipping unparsable requirement: %s\n", lineNo, trimmed)
			return nil, true
		}
	}

	return &Entry{
		Name:       name,
		Normalized: NormalizeName(name),
		Pinned:     extractPin(rest),
		Raw:        raw,
		Line:       lineNo,
	}, true
}

// extractPin returns the version of a simple == pin, or empty.
//
// Only `==` counts as a pin; ranges and other operators leave the entry
// unpinned for upgrade purposes while the raw line is preserved.
func extractPin(spec string) string {
	spec = strings.TrimSpace(spec)
	if !strings.HasPrefix(spec, "==") {
		return ""
	}
	version := spec[2:]
	for _, stop := range []string{",", ";", "#", " "} {
		if idx := strings.Index(version, stop); idx >= 0 {
			version = version[:idx]
		}
	}
	return strings.TrimSpace(version)
}
