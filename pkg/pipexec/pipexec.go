// Package pipexec drives pip as a subprocess.
//
// All pip interaction goes through the Execute function variable so tests
// can swap in a fake returning deterministic output. Commands run with a
// per-invocation timeout and support context cancellation; invocations are
// strictly sequential since concurrent pip runs on a shared environment are
// unsafe.
package pipexec

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/ajxudir/pipup/pkg/verbose"
)

// ExecuteFunc is the function signature for pip command execution.
//
// Parameters:
//   - ctx: Context for cancellation and timeout control
//   - python: Python interpreter command (e.g., "python3")
//   - args: Arguments after the interpreter (e.g., "-m", "pip", "freeze")
//   - dir: Working directory for the command
//   - timeoutSeconds: Maximum execution time in seconds (0 for no timeout)
//
// Returns:
//   - []byte: Stdout from the command
//   - error: Any error that occurred, including timeout and cancellation
type ExecuteFunc func(ctx context.Context, python string, args []string, dir string, timeoutSeconds int) ([]byte, error)

// Execute is the default pip execution function.
//
// It can be replaced with a mock implementation for testing; callers never
// invoke os/exec directly.
var Execute ExecuteFunc = executePip

// executePip runs the interpreter with the given arguments.
//
// Stdout is returned on success. On failure the trimmed stderr (or stdout
// when stderr is empty) is folded into the returned error so callers get
// pip's actual complaint, not just an exit status.
func executePip(ctx context.Context, python string, args []string, dir string, timeoutSeconds int) ([]byte, error) {
	if strings.TrimSpace(python) == "" {
		return nil, fmt.Errorf("no python command configured")
	}

	if timeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeoutSeconds)*time.Second)
		defer cancel()
	}

	verbose.PipCommand(append([]string{python}, args...))

	cmd := exec.CommandContext(ctx, python, args...)
	if dir != "" {
		cmd.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded && timeoutSeconds > 0 {
			return nil, fmt.Errorf("command timed out after %d seconds: %w", timeoutSeconds, err)
		}

		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = strings.TrimSpace(stdout.String())
		}
		if errMsg != "" {
			return nil, fmt.Errorf("%w: %s", err, errMsg)
		}
		return nil, err
	}

	return stdout.Bytes(), nil
}
