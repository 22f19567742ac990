// Package verbose provides debug logging for troubleshooting upgrade runs.
package verbose

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

var (
	mu      sync.RWMutex
	enabled bool
	writer  io.Writer = os.Stderr
)

// Enable turns on verbose logging and allows debug messages to be printed.
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

// Disable turns off verbose logging and prevents debug messages from being printed.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// IsEnabled returns whether verbose logging is currently enabled.
//
// Returns:
//   - bool: true if verbose logging is enabled, false otherwise
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetWriter sets the output writer for verbose messages.
//
// Parameters:
//   - w: The io.Writer to use for output; if nil, the writer remains unchanged
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w != nil {
		writer = w
	}
}

// getWriter returns the current writer with proper locking for internal use.
func getWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return writer
}

// Printf prints a formatted verbose message if enabled.
//
// Messages are prefixed with [DEBUG] and written to the configured writer.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
func Printf(format string, args ...any) {
	if IsEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] "+format+"\n", args...)
	}
}

// Info prints an informational verbose message if enabled.
//
// Parameters:
//   - msg: The message string to print
func Info(msg string) {
	if IsEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] %s\n", msg)
	}
}

// Infof prints a formatted informational verbose message if enabled.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
func Infof(format string, args ...any) {
	Printf(format, args...)
}

// PipCommand logs a pip invocation before it runs.
//
// Parameters:
//   - args: The full argument vector passed to the subprocess
func PipCommand(args []string) {
	if IsEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] exec: %s\n", strings.Join(args, " "))
	}
}

// ManifestParsed logs the outcome of reading a manifest file.
//
// Parameters:
//   - path: Path of the manifest that was read
//   - entries: Number of package entries parsed
//   - skippedLines: Number of malformed lines that were skipped
func ManifestParsed(path string, entries, skippedLines int) {
	if IsEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] parsed %s: %d entries, %d unparsable lines\n", path, entries, skippedLines)
	}
}

// ConfigLoaded logs which configuration file was applied.
//
// Parameters:
//   - path: Path of the config file, or empty when built-in defaults are used
func ConfigLoaded(path string) {
	if !IsEnabled() {
		return
	}
	if path == "" {
		_, _ = fmt.Fprintln(getWriter(), "[DEBUG] using built-in default configuration")
		return
	}
	_, _ = fmt.Fprintf(getWriter(), "[DEBUG] loaded config: %s\n", path)
}
