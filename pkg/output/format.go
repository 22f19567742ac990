// Package output provides table and structured formatters for command results.
// It supports JSON and CSV output as alternatives to the default table display.
package output

import (
	"strings"
)

// Format represents the output format type.
type Format string

const (
	// FormatTable is the default terminal table output.
	FormatTable Format = "table"
	// FormatJSON outputs data as JSON.
	FormatJSON Format = "json"
	// FormatCSV outputs data as comma-separated values.
	FormatCSV Format = "csv"
)

// ParseFormat parses a format string into a Format type.
//
// The parsing is case-insensitive. Valid values are "json" and "csv".
// Any unrecognized format returns FormatTable as the default.
//
// Parameters:
//   - s: Format string to parse (e.g., "csv", "JSON")
//
// Returns:
//   - Format: The parsed format, or FormatTable if unrecognized
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON
	case "csv":
		return FormatCSV
	default:
		return FormatTable
	}
}

// IsStructuredFormat returns true if the format requires structured output (not table).
//
// Structured formats (JSON, CSV) are meant for machine consumption and
// suppress the human-oriented per-entry lines and summary.
//
// Parameters:
//   - f: The format to check
//
// Returns:
//   - bool: true if format is JSON or CSV; false for table format
func IsStructuredFormat(f Format) bool {
	return f == FormatJSON || f == FormatCSV
}
