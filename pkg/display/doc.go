// Package display renders human-oriented terminal output for upgrade runs:
// per-package status lines, the colored summary, and warning blocks.
//
// Machine-oriented output (JSON, CSV) lives in pkg/output; this package only
// deals with what a person reads in a terminal.
package display
