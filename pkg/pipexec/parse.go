package pipexec

import (
	"strings"

	"github.com/ajxudir/pipup/pkg/manifest"
)

// ParseFreeze parses `pip freeze` output into a version map.
//
// Only plain `name==version` lines are kept. Editable installs and direct
// URL references carry no comparable version and are ignored.
//
// Parameters:
//   - out: Raw stdout from `pip freeze`
//
// Returns:
//   - map[string]string: Normalized package name to installed version
func ParseFreeze(out []byte) map[string]string {
	installed := make(map[string]string)
	for _, line := range strings.Split(string(out), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "-") {
			continue
		}
		name, version, found := strings.Cut(trimmed, "==")
		if !found || strings.Contains(name, " ") {
			continue
		}
		installed[manifest.NormalizeName(name)] = strings.TrimSpace(version)
	}
	return installed
}

// ParseIndexVersions extracts the latest version from `pip index versions` output.
//
// Output looks like:
//
//	flask (3.0.0)
//	Available versions: 3.0.0, 2.3.3, 2.3.2
//	  INSTALLED: 2.3.3
//	  LATEST:    3.0.0
//
// The LATEST line wins when present; otherwise the first entry of the
// available list, then the parenthesized header version.
//
// Parameters:
//   - out: Raw stdout from `pip index versions <name>`
//
// Returns:
//   - string: The latest version, or empty when none could be parsed
func ParseIndexVersions(out []byte) string {
	header := ""
	available := ""

	for _, line := range strings.Split(string(out), "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "LATEST:"):
			if v := strings.TrimSpace(strings.TrimPrefix(trimmed, "LATEST:")); v != "" {
				return v
			}
		case strings.HasPrefix(trimmed, "Available versions:"):
			list := strings.TrimSpace(strings.TrimPrefix(trimmed, "Available versions:"))
			if first, _, _ := strings.Cut(list, ","); strings.TrimSpace(first) != "" {
				available = strings.TrimSpace(first)
			}
		case header == "" && strings.Contains(trimmed, "(") && strings.HasSuffix(trimmed, ")"):
			open := strings.LastIndex(trimmed, "(")
			header = strings.TrimSuffix(trimmed[open+1:], ")")
		}
	}

	if available != "" {
		return available
	}
	return header
}

// ParseInstalledVersion extracts a package's version from `pip install` output.
//
// Pip prints `Successfully installed name-version ...` listing every
// distribution it touched. The token matching the requested package (after
// name normalization) yields the version; an already-satisfied requirement
// prints no such line and yields empty.
//
// Parameters:
//   - out: Raw stdout from `pip install --upgrade <name>`
//   - name: The package that was requested
//
// Returns:
//   - string: The installed version, or empty when pip made no change
func ParseInstalledVersion(out []byte, name string) string {
	target := manifest.NormalizeName(name)

	for _, line := range strings.Split(string(out), "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "Successfully installed ") {
			continue
		}
		for _, token := range strings.Fields(strings.TrimPrefix(trimmed, "Successfully installed ")) {
			idx := strings.LastIndex(token, "-")
			if idx <= 0 || idx == len(token)-1 {
				continue
			}
			if manifest.NormalizeName(token[:idx]) == target {
				return token[idx+1:]
			}
		}
	}
	return ""
}
