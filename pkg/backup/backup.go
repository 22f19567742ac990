// Package backup creates and restores timestamped copies of the manifest.
//
// A backup is taken before any mutation; when it cannot be written the whole
// run aborts, since there is no safe rollback without one.
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ajxudir/pipup/pkg/errors"
	"github.com/ajxudir/pipup/pkg/verbose"
)

// timestampFormat matches the backup suffix layout <base>.bak.YYYYMMDD_HHMMSS.
const timestampFormat = "20060102_150405"

// nowFunc returns the current time. Variable for deterministic tests.
var nowFunc = time.Now

// Path computes the backup destination for a manifest.
//
// Parameters:
//   - manifestPath: Path of the manifest being backed up
//   - backupDir: Destination directory; empty means alongside the manifest
//
// Returns:
//   - string: The timestamped backup path
func Path(manifestPath, backupDir string) string {
	dir := backupDir
	if dir == "" {
		dir = filepath.Dir(manifestPath)
	}
	base := filepath.Base(manifestPath)
	return filepath.Join(dir, fmt.Sprintf("%s.bak.%s", base, nowFunc().Format(timestampFormat)))
}

// Create copies the manifest to a timestamped backup path.
//
// The copy preserves the manifest's file mode. Failure is returned as a
// BackupError, which callers treat as fatal before any upgrade runs.
//
// Parameters:
//   - manifestPath: Path of the manifest to back up
//   - backupDir: Destination directory; empty means alongside the manifest
//
// Returns:
//   - string: The backup path that was written
//   - error: BackupError when the copy cannot be written
func Create(manifestPath, backupDir string) (string, error) {
	dest := Path(manifestPath, backupDir)

	content, err := os.ReadFile(manifestPath)
	if err != nil {
		return "", &errors.BackupError{Path: dest, Err: err}
	}

	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(manifestPath); statErr == nil {
		mode = info.Mode()
	}

	if backupDir != "" {
		if err := os.MkdirAll(backupDir, 0o755); err != nil {
			return "", &errors.BackupError{Path: dest, Err: err}
		}
	}

	if err := os.WriteFile(dest, content, mode); err != nil {
		return "", &errors.BackupError{Path: dest, Err: err}
	}

	verbose.Infof("created backup: %s", dest)
	return dest, nil
}

// Restore copies a backup over the manifest.
//
// Used when the post-run manifest rewrite fails, so the manifest on disk is
// always either the original or the fully updated version.
//
// Parameters:
//   - backupPath: Backup file written by Create
//   - manifestPath: Manifest destination to restore
//
// Returns:
//   - error: When the backup cannot be read or the manifest cannot be written
func Restore(backupPath, manifestPath string) error {
	content, err := os.ReadFile(backupPath)
	if err != nil {
		return fmt.Errorf("failed to read backup %s: %w", backupPath, err)
	}

	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(manifestPath); statErr == nil {
		mode = info.Mode()
	}

	if err := os.WriteFile(manifestPath, content, mode); err != nil {
		return fmt.Errorf("failed to restore %s from backup: %w", manifestPath, err)
	}

	verbose.Infof("restored %s from %s", manifestPath, backupPath)
	return nil
}
