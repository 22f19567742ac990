package pipver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "1.2.3", Normalize("  1.2.3 "))
	assert.Equal(t, "1.2.3", Normalize("v1.2.3"))
	assert.Equal(t, "1.0.0b1", Normalize("1.0.0B1"))
}

func TestCompareNumeric(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0", "1.0.0", 0},
		{"2.10.0", "2.9.9", 1},
		{"2.9.9", "2.10.0", -1},
		{"1.0.1", "1.0.0", 1},
		{"0.9", "1.0", -1},
		{"2024.1.1", "2023.12.31", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Compare(tt.a, tt.b), "Compare(%q, %q)", tt.a, tt.b)
	}
}

func TestComparePrereleaseAndPost(t *testing.T) {
	// Prereleases sort before the release.
	assert.Equal(t, -1, Compare("1.0.0b1", "1.0.0"))
	assert.Equal(t, -1, Compare("1.0.0rc1", "1.0.0"))

	// Post-releases sort after the release.
	assert.Equal(t, 1, Compare("1.0.0.post1", "1.0.0"))
	assert.Equal(t, -1, Compare("1.0.0", "1.0.0.post1"))
}

func TestCompareNonNumericFallback(t *testing.T) {
	assert.Equal(t, 0, Compare("abc", "abc"))
	assert.NotEqual(t, 0, Compare("abc", "abd"))

	// Mixed numeric and non-numeric still produces a stable ordering.
	assert.NotPanics(t, func() { Compare("1.2.3", "unknown") })
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal("1.0", "1.0.0"))
	assert.False(t, Equal("1.0.1", "1.0.0"))
}

func TestIsNewer(t *testing.T) {
	assert.True(t, IsNewer("2.0.0", "1.9.9"))
	assert.False(t, IsNewer("1.9.9", "2.0.0"))
	assert.False(t, IsNewer("1.0.0", "1.0.0"))

	// Uninstalled package: any candidate is newer.
	assert.True(t, IsNewer("1.0.0", ""))
	assert.False(t, IsNewer("", "1.0.0"))
}

func TestLatest(t *testing.T) {
	assert.Equal(t, "2.10.0", Latest([]string{"2.9.9", "2.10.0", "1.0.0"}))
	assert.Equal(t, "1.0.0", Latest([]string{"", "1.0.0"}))
	assert.Equal(t, "", Latest(nil))
}
