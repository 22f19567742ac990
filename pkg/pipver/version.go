// Package pipver normalizes and compares pip-reported version strings.
//
// Pip versions are close enough to semver that most comparisons can be
// delegated to golang.org/x/mod/semver once the string is canonicalized.
// Versions that do not parse numerically fall back to string comparison so
// the caller always gets a stable ordering.
package pipver

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

var versionRegex = regexp.MustCompile(`^v?(\d+)(?:\.(\d+))?(?:\.(\d+))?(.*)$`)

// parsedVersion represents a parsed and normalized version string.
//
// Fields:
//   - raw: The normalized raw version string
//   - canonical: The canonical semver representation (e.g., "v1.2.3")
//   - post: Whether the suffix marks a post-release (sorts after the release)
//   - hasNumbers: Whether numeric parts were successfully extracted
type parsedVersion struct {
	raw        string
	canonical  string
	post       bool
	hasNumbers bool
}

// Normalize trims and lowercases a version string and strips a leading "v".
//
// Parameters:
//   - raw: Version string as reported by pip or read from a manifest
//
// Returns:
//   - string: The normalized version string
func Normalize(raw string) string {
	v := strings.ToLower(strings.TrimSpace(raw))
	return strings.TrimPrefix(v, "v")
}

// parse extracts numeric components and builds a canonical semver string.
//
// Missing minor/patch components default to zero so "1.0" and "1.0.0"
// canonicalize identically. A non-empty suffix becomes a semver prerelease
// identifier, except pip post-releases which sort after the plain release.
func parse(raw string) parsedVersion {
	normalized := Normalize(raw)
	p := parsedVersion{raw: normalized}

	m := versionRegex.FindStringSubmatch(normalized)
	if m == nil || m[1] == "" {
		return p
	}

	major, _ := strconv.Atoi(m[1])
	minor := 0
	if m[2] != "" {
		minor, _ = strconv.Atoi(m[2])
	}
	patch := 0
	if m[3] != "" {
		patch, _ = strconv.Atoi(m[3])
	}

	p.hasNumbers = true
	p.canonical = "v" + strconv.Itoa(major) + "." + strconv.Itoa(minor) + "." + strconv.Itoa(patch)

	suffix := strings.TrimLeft(m[4], ".-_")
	if suffix != "" {
		if strings.HasPrefix(suffix, "post") {
			// PEP 440 post-releases sort after the release, unlike
			// semver prerelease identifiers.
			p.post = true
		} else {
			p.canonical += "-" + suffix
		}
	}

	return p
}

// Compare compares two pip version strings.
//
// Numeric versions are compared through semver on their canonical forms,
// with post-releases ordered after the plain release. When either side has
// no numeric components, comparison falls back to the normalized strings.
//
// Parameters:
//   - a: First version string
//   - b: Second version string
//
// Returns:
//   - int: -1 if a < b, 0 if equal, +1 if a > b
func Compare(a, b string) int {
	pa := parse(a)
	pb := parse(b)

	if !pa.hasNumbers || !pb.hasNumbers {
		return strings.Compare(pa.raw, pb.raw)
	}

	if c := semver.Compare(pa.canonical, pb.canonical); c != 0 {
		return c
	}

	switch {
	case pa.post == pb.post:
		return 0
	case pa.post:
		return 1
	default:
		return -1
	}
}

// Equal reports whether two version strings denote the same version.
//
// Parameters:
//   - a: First version string
//   - b: Second version string
//
// Returns:
//   - bool: true when the versions compare equal
func Equal(a, b string) bool {
	return Compare(a, b) == 0
}

// IsNewer reports whether candidate is strictly newer than current.
//
// An empty current version (package not installed) makes any non-empty
// candidate newer.
//
// Parameters:
//   - candidate: Version string under consideration
//   - current: Currently installed version string
//
// Returns:
//   - bool: true when candidate sorts after current
func IsNewer(candidate, current string) bool {
	if strings.TrimSpace(candidate) == "" {
		return false
	}
	if strings.TrimSpace(current) == "" {
		return true
	}
	return Compare(candidate, current) > 0
}

// Latest returns the newest version from a list of version strings.
//
// Parameters:
//   - versions: Candidate version strings, in any order
//
// Returns:
//   - string: The newest version, or empty string for an empty list
func Latest(versions []string) string {
	latest := ""
	for _, v := range versions {
		if strings.TrimSpace(v) == "" {
			continue
		}
		if latest == "" || Compare(v, latest) > 0 {
			latest = v
		}
	}
	return latest
}
