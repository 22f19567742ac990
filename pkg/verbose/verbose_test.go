package verbose

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnableDisable(t *testing.T) {
	defer Disable()

	Disable()
	assert.False(t, IsEnabled())

	Enable()
	assert.True(t, IsEnabled())

	Disable()
	assert.False(t, IsEnabled())
}

func TestPrintfWhenEnabled(t *testing.T) {
	defer Disable()
	defer SetWriter(nil)

	var buf bytes.Buffer
	SetWriter(&buf)
	Enable()

	Printf("upgrading %s", "flask")

	assert.Contains(t, buf.String(), "[DEBUG] upgrading flask")
}

func TestPrintfWhenDisabled(t *testing.T) {
	defer SetWriter(nil)

	var buf bytes.Buffer
	SetWriter(&buf)
	Disable()

	Printf("should not appear")
	Info("also hidden")

	assert.Empty(t, buf.String())
}

func TestSetWriterNilKeepsCurrent(t *testing.T) {
	defer Disable()

	var buf bytes.Buffer
	SetWriter(&buf)
	SetWriter(nil)
	Enable()

	Info("still captured")

	assert.Contains(t, buf.String(), "still captured")
}

func TestPipCommand(t *testing.T) {
	defer Disable()

	var buf bytes.Buffer
	SetWriter(&buf)
	Enable()

	PipCommand([]string{"python3", "-m", "pip", "freeze"})

	assert.Contains(t, buf.String(), "exec: python3 -m pip freeze")
}

func TestManifestParsed(t *testing.T) {
	defer Disable()

	var buf bytes.Buffer
	SetWriter(&buf)
	Enable()

	ManifestParsed("requirements.txt", 4, 1)

	assert.Contains(t, buf.String(), "parsed requirements.txt: 4 entries, 1 unparsable lines")
}

func TestConfigLoaded(t *testing.T) {
	defer Disable()

	var buf bytes.Buffer
	SetWriter(&buf)
	Enable()

	ConfigLoaded("")
	assert.Contains(t, buf.String(), "built-in default configuration")

	buf.Reset()
	ConfigLoaded(".pipup.yml")
	assert.Contains(t, buf.String(), "loaded config: .pipup.yml")
}
