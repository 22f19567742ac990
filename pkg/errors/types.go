package errors

import (
	"errors"
	"fmt"
)

// Exit codes for scripting integration.
// Dry runs always exit with ExitSuccess regardless of projected changes.
const (
	// ExitSuccess indicates the run completed with no failed packages.
	// This includes dry runs and runs where every package was skipped.
	ExitSuccess = 0

	// ExitFailure indicates at least one package failed to upgrade, the
	// backup could not be written, or the manifest was not found.
	ExitFailure = 1
)

// ExitError represents a command termination with a specific exit code.
//
// Use this error when a command needs to exit with a non-zero status
// while providing context about what went wrong.
//
// Fields:
//   - Code: Exit code (ExitSuccess or ExitFailure)
//   - Message: Human-readable error message
//   - Err: Underlying error that caused this exit, may be nil
type ExitError struct {
	// Code is the exit code for the command.
	Code int

	// Message is a human-readable description of why the command failed.
	Message string

	// Err is the underlying error that caused this exit.
	// May be nil if no underlying error exists.
	Err error
}

// Error implements the error interface.
//
// Returns the Message field if set, otherwise returns the underlying error's
// message, or a default message with the exit code.
func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given code and underlying error.
//
// Parameters:
//   - code: Exit code (ExitSuccess or ExitFailure)
//   - err: Underlying error, may be nil
//
// Returns:
//   - *ExitError: New exit error
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// NewExitErrorf creates an ExitError with the given code and formatted message.
//
// Parameters:
//   - code: Exit code
//   - format: Printf-style format string
//   - args: Format arguments
//
// Returns:
//   - *ExitError: New exit error with formatted message
func NewExitErrorf(code int, format string, args ...interface{}) *ExitError {
	return &ExitError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// GetExitCode extracts the exit code from an error.
//
// If err is nil, returns ExitSuccess.
// If err is an ExitError, returns its code.
// Otherwise returns ExitFailure.
//
// Parameters:
//   - err: The error to extract code from
//
// Returns:
//   - int: Exit code
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitFailure
}

// ManifestNotFoundError indicates the requirements manifest does not exist.
//
// This is fatal: the run aborts before any backup or upgrade is attempted.
//
// Fields:
//   - Path: Path that was checked
type ManifestNotFoundError struct {
	// Path is the manifest path that does not exist.
	Path string
}

// Error implements the error interface.
func (e *ManifestNotFoundError) Error() string {
	return fmt.Sprintf("requirements file not found: %s", e.Path)
}

// IsManifestNotFound checks if err is a ManifestNotFoundError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *ManifestNotFoundError: The error if err is one, nil otherwise
//   - bool: true if err is a ManifestNotFoundError
func IsManifestNotFound(err error) (*ManifestNotFoundError, bool) {
	var mnf *ManifestNotFoundError
	if errors.As(err, &mnf) {
		return mnf, true
	}
	return nil, false
}

// BackupError indicates the manifest backup could not be written.
//
// This is fatal: no upgrade is attempted without a safety net, since there
// is no safe rollback without a backup.
//
// Fields:
//   - Path: Backup path that could not be written
//   - Err: Underlying filesystem error
type BackupError struct {
	// Path is the backup destination that failed.
	Path string

	// Err is the underlying filesystem error.
	Err error
}

// Error implements the error interface.
func (e *BackupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to create backup %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("failed to create backup %s", e.Path)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *BackupError) Unwrap() error {
	return e.Err
}

// IsBackupError checks if err is a BackupError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *BackupError: The error if err is one, nil otherwise
//   - bool: true if err is a BackupError
func IsBackupError(err error) (*BackupError, bool) {
	var be *BackupError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

// PartialFailureError indicates that some packages upgraded while others failed.
//
// One failed package never blocks the rest of the run; failures are collected
// and surfaced through this error after every entry has been processed.
//
// Fields:
//   - Succeeded: Count of packages that upgraded or were already current
//   - Failed: Count of packages whose install command failed
//   - Errors: Slice of per-package errors
type PartialFailureError struct {
	// Succeeded is the number of packages processed without error.
	Succeeded int

	// Failed is the number of packages whose upgrade failed.
	Failed int

	// Errors contains the per-package errors.
	Errors []error
}

// Error implements the error interface.
//
// Returns a summary message in the format "X succeeded, Y failed".
func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("%d succeeded, %d failed", e.Succeeded, e.Failed)
}

// NewPartialFailureError creates a PartialFailureError with the given counts and errors.
//
// Parameters:
//   - succeeded: Number of packages processed without error
//   - failed: Number of failed packages
//   - errs: Slice of per-package errors
//
// Returns:
//   - *PartialFailureError: New partial failure error
func NewPartialFailureError(succeeded, failed int, errs []error) *PartialFailureError {
	return &PartialFailureError{
		Succeeded: succeeded,
		Failed:    failed,
		Errors:    errs,
	}
}

// IsPartialFailure checks if err is a PartialFailureError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *PartialFailureError: The error if err is one, nil otherwise
//   - bool: true if err is a PartialFailureError
func IsPartialFailure(err error) (*PartialFailureError, bool) {
	var pfe *PartialFailureError
	if errors.As(err, &pfe) {
		return pfe, true
	}
	return nil, false
}
