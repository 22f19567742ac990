package errors

import (
	"strings"
)

// ErrorHint provides actionable resolution hints for common errors.
//
// Fields:
//   - Pattern: Substring to match in error message (case-insensitive)
//   - Hint: Brief description of the issue
//   - Resolution: Command or action to resolve the issue
type ErrorHint struct {
	// Pattern is a substring to match in error messages (case-insensitive).
	Pattern string

	// Hint is a brief description of the problem.
	Hint string

	// Resolution is a command or action to fix the problem.
	Resolution string
}

// CommonErrorHints maps error patterns to actionable hints.
// These are used by EnhanceErrorWithHint to add context to errors.
var CommonErrorHints = []ErrorHint{
	{
		Pattern:    "pip is not installed",
		Hint:       "pip was not found",
		Resolution: "Install Python with pip: https://python.org/downloads/ or run python -m ensurepip",
	},
	{
		Pattern:    "no module named pip",
		Hint:       "The configured python has no pip module",
		Resolution: "Run python -m ensurepip, or set the python command in .pipup.yml",
	},
	{
		Pattern:    "requirements file not found",
		Hint:       "The manifest path does not exist",
		Resolution: "Check the --requirements path or create a requirements.txt",
	},
	{
		Pattern:    "failed to create backup",
		Hint:       "The backup copy could not be written",
		Resolution: "Check free space and write permissions, or set backup_dir in .pipup.yml",
	},
	{
		Pattern:    "command timed out",
		Hint:       "The pip command took too long",
		Resolution: "Use --no-timeout or increase timeout_seconds in .pipup.yml",
	},
	{
		Pattern:    "could not find a version",
		Hint:       "No installable version matched",
		Resolution: "Verify the package name and index availability (pip index versions <name>)",
	},
	{
		Pattern:    "no such file or directory",
		Hint:       "File or directory not found",
		Resolution: "Verify the path exists and you have read permissions",
	},
	{
		Pattern:    "permission denied",
		Hint:       "Insufficient permissions",
		Resolution: "Check file permissions, or install into a virtualenv instead of the system environment",
	},
	{
		Pattern:    "network",
		Hint:       "Network connectivity issue",
		Resolution: "Check internet connection and proxy settings",
	},
	{
		Pattern:    "connection refused",
		Hint:       "Connection refused by the package index",
		Resolution: "Check that the index URL is reachable and not blocked",
	},
	{
		Pattern:    "failed to load config",
		Hint:       "Configuration file is invalid or not found",
		Resolution: "Validate the YAML syntax of .pipup.yml or remove the file to use defaults",
	},
}

// GetHint returns an actionable hint for the given error.
//
// It searches the error message for known patterns in CommonErrorHints
// and returns a formatted hint if one matches.
//
// Parameters:
//   - err: The error to get a hint for
//
// Returns:
//   - string: The hint with resolution, or empty string if no hint found
func GetHint(err error) string {
	if err == nil {
		return ""
	}

	errStr := strings.ToLower(err.Error())
	for _, hint := range CommonErrorHints {
		if strings.Contains(errStr, strings.ToLower(hint.Pattern)) {
			return hint.Hint + ": " + hint.Resolution
		}
	}

	return ""
}

// RegisterHint adds a custom hint to the registry.
//
// This allows extending the hint system with project-specific patterns.
//
// Parameters:
//   - pattern: Lowercase substring to match in error messages
//   - hint: Brief description of the issue
//   - resolution: Actionable suggestion for fixing the error
func RegisterHint(pattern, hint, resolution string) {
	CommonErrorHints = append(CommonErrorHints, ErrorHint{
		Pattern:    pattern,
		Hint:       hint,
		Resolution: resolution,
	})
}

// EnhanceErrorWithHint adds actionable hints to an error message if a matching pattern is found.
//
// Parameters:
//   - err: The error to enhance
//
// Returns:
//   - string: Error message with hint appended if found, otherwise just the error message
func EnhanceErrorWithHint(err error) string {
	if err == nil {
		return ""
	}

	errStr := err.Error()
	for _, hint := range CommonErrorHints {
		if strings.Contains(strings.ToLower(errStr), strings.ToLower(hint.Pattern)) {
			return errStr + "\n  \U0001F4A1 " + hint.Hint + ": " + hint.Resolution
		}
	}

	return errStr
}
