package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusConstantsAreDistinct(t *testing.T) {
	statuses := []string{
		StatusUpgraded,
		StatusUnchanged,
		StatusSkipped,
		StatusFailed,
		StatusPlanned,
	}

	seen := make(map[string]bool)
	for _, s := range statuses {
		assert.NotEmpty(t, s)
		assert.False(t, seen[s], "duplicate status constant: %s", s)
		seen[s] = true
	}
}

func TestIconConstantsAreNonEmpty(t *testing.T) {
	icons := []string{
		IconSuccess,
		IconError,
		IconInfo,
		IconPending,
		IconIgnored,
		IconWarn,
	}

	for _, icon := range icons {
		assert.NotEmpty(t, icon)
	}
}
