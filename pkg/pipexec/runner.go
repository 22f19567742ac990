package pipexec

import (
	"context"
	"fmt"

	"github.com/ajxudir/pipup/pkg/config"
)

// Runner invokes pip through the configured python interpreter.
//
// It implements the narrow surface the upgrade driver needs: snapshot the
// installed versions, look up the latest available version, install the
// latest version, and self-upgrade pip. Pip itself is treated as an opaque
// collaborator returning version strings and exit statuses.
//
// Fields:
//   - Python: Interpreter command used for `-m pip` invocations
//   - Dir: Working directory for pip commands
//   - TimeoutSeconds: Per-command timeout (0 disables timeouts)
type Runner struct {
	Python         string
	Dir            string
	TimeoutSeconds int
}

// New creates a Runner from the effective configuration.
//
// Parameters:
//   - cfg: Configuration providing interpreter, working dir and timeout
//
// Returns:
//   - *Runner: Runner ready for pip invocations
func New(cfg *config.Config) *Runner {
	return &Runner{
		Python:         cfg.Python,
		Dir:            cfg.WorkingDir,
		TimeoutSeconds: cfg.TimeoutSeconds,
	}
}

// CheckAvailable verifies that pip responds before any work starts.
//
// Parameters:
//   - ctx: Context for cancellation
//
// Returns:
//   - error: When `python -m pip --version` fails
func (r *Runner) CheckAvailable(ctx context.Context) error {
	if _, err := Execute(ctx, r.Python, []string{"-m", "pip", "--version"}, r.Dir, r.TimeoutSeconds); err != nil {
		return fmt.Errorf("pip is not installed or not responding (%s -m pip --version): %w", r.Python, err)
	}
	return nil
}

// Installed returns a snapshot of installed packages and their versions.
//
// The snapshot comes from `pip freeze`; names are normalized so lookups
// match manifest entries regardless of casing or separators.
//
// Parameters:
//   - ctx: Context for cancellation
//
// Returns:
//   - map[string]string: Normalized package name to installed version
//   - error: When the freeze command fails
func (r *Runner) Installed(ctx context.Context) (map[string]string, error) {
	out, err := Execute(ctx, r.Python, []string{"-m", "pip", "freeze"}, r.Dir, r.TimeoutSeconds)
	if err != nil {
		return nil, fmt.Errorf("pip freeze failed: %w", err)
	}
	return ParseFreeze(out), nil
}

// Latest returns the newest available version of a package.
//
// Uses `pip index versions`, which queries the index without installing
// anything, making it safe for dry runs.
//
// Parameters:
//   - ctx: Context for cancellation
//   - name: Package name as written in the manifest
//
// Returns:
//   - string: The latest available version
//   - error: When the index query fails or reports no versions
func (r *Runner) Latest(ctx context.Context, name string) (string, error) {
	out, err := Execute(ctx, r.Python, []string{"-m", "pip", "index", "versions", name}, r.Dir, r.TimeoutSeconds)
	if err != nil {
		return "", err
	}

	version := ParseIndexVersions(out)
	if version == "" {
		return "", fmt.Errorf("could not find a version for %s in index output", name)
	}
	return version, nil
}

// InstallLatest installs the newest version of a package.
//
// Parameters:
//   - ctx: Context for cancellation
//   - name: Package name as written in the manifest
//
// Returns:
//   - string: The installed version parsed from pip's output, or empty when
//     pip reported the requirement already satisfied
//   - error: When the install command fails
func (r *Runner) InstallLatest(ctx context.Context, name string) (string, error) {
	out, err := Execute(ctx, r.Python, []string{"-m", "pip", "install", "--upgrade", name}, r.Dir, r.TimeoutSeconds)
	if err != nil {
		return "", err
	}
	return ParseInstalledVersion(out, name), nil
}

// SelfUpgrade upgrades pip itself.
//
// Parameters:
//   - ctx: Context for cancellation
//
// Returns:
//   - error: When the self-upgrade command fails
func (r *Runner) SelfUpgrade(ctx context.Context) error {
	_, err := Execute(ctx, r.Python, []string{"-m", "pip", "install", "--upgrade", "pip"}, r.Dir, r.TimeoutSeconds)
	return err
}
