// Package constants provides centralized string constants used throughout the application.
// This eliminates magic strings and provides a single source of truth for status values.
package constants

// Upgrade status constants represent the state of a package after an upgrade run.
const (
	// StatusUpgraded indicates the package was installed at a newer version.
	StatusUpgraded = "Upgraded"

	// StatusUnchanged indicates the package was already at the latest version.
	StatusUnchanged = "Unchanged"

	// StatusSkipped indicates the package was excluded via the skip list.
	StatusSkipped = "Skipped"

	// StatusFailed indicates the install command failed for the package.
	StatusFailed = "Failed"

	// StatusPlanned indicates a newer version was found in dry-run mode.
	StatusPlanned = "Planned"
)

// Placeholder values for display when data is not available.
const (
	// PlaceholderNA is used when a version is not known.
	PlaceholderNA = "#N/A"
)

// Icon constants for status display.
// These provide visual indicators for package states in CLI output.
const (
	// IconSuccess indicates a successful upgrade (green circle).
	IconSuccess = "🟢"

	// IconError indicates a failed upgrade (red X).
	IconError = "❌"

	// IconInfo indicates an unchanged package (blue circle).
	IconInfo = "🔵"

	// IconPending indicates a planned upgrade in dry-run mode (yellow circle).
	IconPending = "🟡"

	// IconIgnored indicates a package excluded via the skip list (no entry).
	IconIgnored = "🚫"

	// IconWarn is the warning prefix for messages.
	IconWarn = "⚠️"
)
