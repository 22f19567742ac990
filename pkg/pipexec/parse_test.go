package pipexec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFreeze(t *testing.T) {
	out := []byte(`Flask==3.0.0
requests==2.31.0
-e git+https://example.invalid/repo.git#egg=local
# comment line
celery @ file:///tmp/celery.whl
`)

	installed := ParseFreeze(out)

	assert.Len(t, installed, 2)
	assert.Equal(t, "3.0.0", installed["flask"])
	assert.Equal(t, "2.31.0", installed["requests"])
}

func TestParseFreezeNormalizesNames(t *testing.T) {
	installed := ParseFreeze([]byte("Flask_Login==0.6.3\n"))

	assert.Equal(t, "0.6.3", installed["flask-login"])
}

func TestParseFreezeEmpty(t *testing.T) {
	assert.Empty(t, ParseFreeze(nil))
	assert.Empty(t, ParseFreeze([]byte("\n\n")))
}

func TestParseIndexVersionsLatestLine(t *testing.T) {
	out := []byte(`flask (3.0.0)
Available versions: 3.0.0, 2.3.3, 2.3.2
  INSTALLED: 2.3.3
  LATEST:    3.0.0
`)

	assert.Equal(t, "3.0.0", ParseIndexVersions(out))
}

func TestParseIndexVersionsAvailableFallback(t *testing.T) {
	out := []byte(`flask (3.0.0)
Available versions: 2.9.1, 2.9.0
`)

	assert.Equal(t, "2.9.1", ParseIndexVersions(out))
}

func TestParseIndexVersionsHeaderFallback(t *testing.T) {
	assert.Equal(t, "3.0.0", ParseIndexVersions([]byte("flask (3.0.0)\n")))
}

func TestParseIndexVersionsNoMatch(t *testing.T) {
	assert.Empty(t, ParseIndexVersions([]byte("nothing useful here\n")))
}

func TestParseInstalledVersion(t *testing.T) {
	out := []byte(`Collecting flask
Installing collected packages: werkzeug, flask
Successfully installed flask-3.0.0 werkzeug-3.0.1
`)

	assert.Equal(t, "3.0.0", ParseInstalledVersion(out, "flask"))
	assert.Equal(t, "3.0.1", ParseInstalledVersion(out, "werkzeug"))
}

func TestParseInstalledVersionDashedName(t *testing.T) {
	out := []byte("Successfully installed flask-login-0.6.3\n")

	assert.Equal(t, "0.6.3", ParseInstalledVersion(out, "Flask_Login"))
}

func TestParseInstalledVersionAlreadySatisfied(t *testing.T) {
	out := []byte("Requirement already satisfied: flask in ./venv/lib\n")

	assert.Empty(t, ParseInstalledVersion(out, "flask"))
}
