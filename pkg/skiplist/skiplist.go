// Package skiplist reads the list of packages excluded from upgrades.
//
// The skip file is optional: a missing or unreadable file simply yields an
// empty set, so runs never fail because nothing was excluded.
package skiplist

import (
	"os"
	"strings"

	"github.com/ajxudir/pipup/pkg/manifest"
	"github.com/ajxudir/pipup/pkg/verbose"
	"github.com/ajxudir/pipup/pkg/warnings"
)

// Set is a set of normalized package names to exclude from upgrade.
type Set map[string]struct{}

// Contains reports whether the named package is in the skip set.
//
// The name is normalized before matching, so "Flask_Login" matches a skip
// entry written as "flask-login".
//
// Parameters:
//   - name: Package name in any casing/separator style
//
// Returns:
//   - bool: true when the package should be skipped
func (s Set) Contains(name string) bool {
	_, ok := s[manifest.NormalizeName(name)]
	return ok
}

// Names returns the normalized names in the set, for logging.
//
// Returns:
//   - []string: Normalized package names in unspecified order
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	return names
}

// Load reads a skip file into a Set.
//
// Blank lines and # comments are ignored; remaining lines are trimmed and
// normalized. A missing file is not an error. Other read errors are warned
// about and likewise produce an empty set, matching the contract that the
// skip list is advisory.
//
// Parameters:
//   - path: Path to the skip file; empty path yields an empty set
//
// Returns:
//   - Set: The parsed skip set (possibly empty, never nil)
func Load(path string) Set {
	set := make(Set)
	if strings.TrimSpace(path) == "" {
		return set
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			warnings.Warnf("failed to read skip file %s: %v\n", path, err)
		}
		return set
	}

	for _, line := range strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		set[manifest.NormalizeName(trimmed)] = struct{}{}
	}

	verbose.Infof("skip list %s: %d packages", path, len(set))
	return set
}
