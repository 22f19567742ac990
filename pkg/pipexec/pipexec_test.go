package pipexec

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteEmptyPython(t *testing.T) {
	_, err := Execute(context.Background(), "", []string{"-m", "pip", "freeze"}, "", 0)

	assert.Error(t, err)
}

func TestExecuteRunsCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on a unix echo binary")
	}

	out, err := Execute(context.Background(), "echo", []string{"flask==1.0"}, "", 0)

	require.NoError(t, err)
	assert.Contains(t, string(out), "flask==1.0")
}

func TestExecuteCommandFailureIncludesStderr(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on a unix shell")
	}

	_, err := Execute(context.Background(), "sh", []string{"-c", "echo boom >&2; exit 3"}, "", 0)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestExecuteCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Execute(ctx, "sleep", []string{"5"}, "", 0)

	assert.Error(t, err)
}

func TestExecuteTimeout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on a unix sleep binary")
	}

	_, err := Execute(context.Background(), "sleep", []string{"5"}, "", 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "command timed out after 1 seconds")
}
