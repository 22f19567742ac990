// Package errors provides error types and exit-code handling for pipup.
//
// The package defines the process exit-code contract (0 success, 1 failure),
// typed errors for the fatal conditions (missing manifest, failed backup),
// the aggregate error for partially failed runs, and hint lookup so common
// pip failures surface an actionable next step to the user.
package errors
