package manifest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/pipup/pkg/errors"
	"github.com/ajxudir/pipup/pkg/warnings"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "requirements.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "flask-login", NormalizeName("Flask_Login"))
	assert.Equal(t, "flask-login", NormalizeName("flask.login"))
	assert.Equal(t, "flask-login", NormalizeName("FLASK--LOGIN"))
	assert.Equal(t, "requests", NormalizeName("  requests "))
}

func TestParseBasicManifest(t *testing.T) {
	path := writeManifest(t, "flask==1.0\nrequests\n")

	f, err := Parse(path)
	require.NoError(t, err)

	entries := f.Entries()
	require.Len(t, entries, 2)

	assert.Equal(t, "flask", entries[0].Name)
	assert.Equal(t, "1.0", entries[0].Pinned)
	assert.Equal(t, 1, entries[0].Line)

	assert.Equal(t, "requests", entries[1].Name)
	assert.Empty(t, entries[1].Pinned)
}

func TestParsePreservesOrder(t *testing.T) {
	path := writeManifest(t, "zope==1.0\nalpha==2.0\nmiddle==3.0\n")

	f, err := Parse(path)
	require.NoError(t, err)

	names := []string{}
	for _, e := range f.Entries() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"zope", "alpha", "middle"}, names)
}

func TestParseIgnoresCommentsBlanksAndOptions(t *testing.T) {
	path := writeManifest(t, "# comment\n\nflask==1.0\n-r other.txt\n--index-url https://example.invalid/simple\n")

	f, err := Parse(path)
	require.NoError(t, err)

	assert.Equal(t, 1, f.Len())
}

func TestParseMalformedLineSkippedWithWarning(t *testing.T) {
	path := writeManifest(t, "==1.0\nflask==1.0\n")

	var buf bytes.Buffer
	restore := warnings.SetWarningWriter(&buf)
	defer restore()

	f, err := Parse(path)
	require.NoError(t, err)

	assert.Equal(t, 1, f.Len())
	assert.Contains(t, buf.String(), "unparsable requirement")
}

func TestParseExtrasAndMarkers(t *testing.T) {
	path := writeManifest(t, "requests[security]==2.31.0 ; python_version < \"3.12\"\ncelery[redis,msgpack]>=5.0\n")

	f, err := Parse(path)
	require.NoError(t, err)

	entry, ok := f.Lookup("requests")
	require.True(t, ok)
	assert.Equal(t, "2.31.0", entry.Pinned)

	celery, ok := f.Lookup("celery")
	require.True(t, ok)
	assert.Empty(t, celery.Pinned, "range constraints are not pins")
}

func TestParsePinWithCompoundSpecifier(t *testing.T) {
	path := writeManifest(t, "flask==1.0,<2.0\n")

	f, err := Parse(path)
	require.NoError(t, err)

	entry, ok := f.Lookup("flask")
	require.True(t, ok)
	assert.Equal(t, "1.0", entry.Pinned)
}

func TestParseDuplicateKeepsFirst(t *testing.T) {
	path := writeManifest(t, "flask==1.0\nFlask==2.0\n")

	var buf bytes.Buffer
	restore := warnings.SetWarningWriter(&buf)
	defer restore()

	f, err := Parse(path)
	require.NoError(t, err)

	require.Equal(t, 1, f.Len())
	entry, _ := f.Lookup("flask")
	assert.Equal(t, "1.0", entry.Pinned)
	assert.Contains(t, buf.String(), "duplicate entry")
}

func TestParseMissingManifest(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "requirements.txt"))

	require.Error(t, err)
	_, ok := errors.IsManifestNotFound(err)
	assert.True(t, ok)
}

func TestLookupNormalizes(t *testing.T) {
	path := writeManifest(t, "Flask_Login==0.6.3\n")

	f, err := Parse(path)
	require.NoError(t, err)

	_, ok := f.Lookup("flask-login")
	assert.True(t, ok)
}

func TestContentRoundTrips(t *testing.T) {
	content := "# pinned deps\nflask==1.0\n\nrequests  # inline comment\n"
	path := writeManifest(t, content)

	f, err := Parse(path)
	require.NoError(t, err)

	assert.Equal(t, content, string(f.Content()))
}

func TestWriteRewrite(t *testing.T) {
	content := "# deps\nflask==1.0\nrequests==2.31.0\nuntouched\n"
	path := writeManifest(t, content)

	f, err := Parse(path)
	require.NoError(t, err)

	err = f.WriteRewrite(func(name string) bool { return name != "flask" })
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# deps\nflask==1.0\nrequests>=2.31.0\nuntouched\n", string(got))
}

func TestWriteRewriteRejectedForPyproject(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pyproject.toml")
	require.NoError(t, os.WriteFile(path, []byte("[project]\ndependencies = [\"flask==1.0\"]\n"), 0o644))

	f, err := Parse(path)
	require.NoError(t, err)

	err = f.WriteRewrite(func(string) bool { return true })
	assert.Error(t, err)
}

func TestParsePyproject(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pyproject.toml")
	content := `[project]
name = "demo"
dependencies = [
  "flask==1.0",
  "requests>=2.0",
  "celery[redis]==5.3.4",
]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	f, err := Parse(path)
	require.NoError(t, err)

	assert.True(t, f.IsPyproject())
	require.Equal(t, 3, f.Len())

	flask, _ := f.Lookup("flask")
	assert.Equal(t, "1.0", flask.Pinned)

	celery, _ := f.Lookup("celery")
	assert.Equal(t, "5.3.4", celery.Pinned)
}

func TestParsePyprojectInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pyproject.toml")
	require.NoError(t, os.WriteFile(path, []byte("[project\n"), 0o644))

	_, err := Parse(path)
	assert.Error(t, err)
}
