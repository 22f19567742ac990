package display

import (
	"fmt"

	"github.com/ajxudir/pipup/pkg/constants"
)

// StatusIcon returns the icon for a given status.
//
// Parameters:
//   - status: The status string
//
// Returns:
//   - string: The icon for this status, or empty string if unknown
//
// Example:
//
//	display.StatusIcon("Upgraded")  // Returns "🟢"
//	display.StatusIcon("Failed")    // Returns "❌"
func StatusIcon(status string) string {
	switch status {
	case constants.StatusUpgraded:
		return constants.IconSuccess
	case constants.StatusUnchanged:
		return constants.IconInfo
	case constants.StatusPlanned:
		return constants.IconPending
	case constants.StatusSkipped:
		return constants.IconIgnored
	case constants.StatusFailed:
		return constants.IconError
	default:
		return ""
	}
}

// FormatStatus formats a status string with the appropriate icon prefix.
//
// Parameters:
//   - status: The status string (e.g., "Upgraded", "Failed", "Planned")
//
// Returns:
//   - string: Formatted status with icon prefix (e.g., "🟢 Upgraded"), or the
//     bare status when no icon is mapped
func FormatStatus(status string) string {
	icon := StatusIcon(status)
	if icon == "" {
		return status
	}
	return fmt.Sprintf("%s %s", icon, status)
}

// FormatVersion substitutes the N/A placeholder for unknown versions.
func FormatVersion(version string) string {
	if version == "" {
		return constants.PlaceholderNA
	}
	return version
}
