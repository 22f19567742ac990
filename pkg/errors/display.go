package errors

import (
	"fmt"
	"io"
)

// PrintErrorWithHints prints errors with actionable hints to the writer.
//
// This is the single implementation for error display across all commands.
// It formats errors consistently and looks up hints for each error.
//
// Parameters:
//   - w: Writer to output to (typically os.Stderr)
//   - errs: Slice of errors to display
//   - verbose: If true, includes per-package details for partial failures
func PrintErrorWithHints(w io.Writer, errs []error, verbose bool) {
	if len(errs) == 0 {
		return
	}

	for _, err := range errs {
		printSingleError(w, err, verbose)
	}
}

// printSingleError prints a single error with appropriate formatting.
//
// Partial failures get a summary plus, in verbose mode, the individual
// package errors. Everything else goes through hint enhancement.
func printSingleError(w io.Writer, err error, verbose bool) {
	if err == nil {
		return
	}

	if pfe, ok := IsPartialFailure(err); ok {
		printPartialFailureError(w, pfe, verbose)
		return
	}

	enhanced := EnhanceErrorWithHint(err)
	_, _ = fmt.Fprintf(w, "Error: %s\n", enhanced)
}

// printPartialFailureError prints partial failure details.
//
// Prints a summary of succeeded and failed packages. In verbose mode,
// also prints each failed package's error with hints.
func printPartialFailureError(w io.Writer, err *PartialFailureError, verbose bool) {
	_, _ = fmt.Fprintf(w, "Partial Failure: %s\n", err.Error())
	if verbose && len(err.Errors) > 0 {
		_, _ = fmt.Fprintf(w, "  Failed packages:\n")
		for _, e := range err.Errors {
			_, _ = fmt.Fprintf(w, "    - %s\n", EnhanceErrorWithHint(e))
		}
	}
}
