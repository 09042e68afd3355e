package cli

import "github.com/handleui/winnow/diag"

// Exit codes for winnow.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitDiagnostics indicates the parse succeeded and error-severity
	// diagnostics were found while --fail-on-error was set.
	ExitDiagnostics = 1
)

// ExitCodeFromCollection determines the exit code for parse results.
func ExitCodeFromCollection(coll *diag.Collection, failOnError bool) int {
	if coll == nil {
		return ExitSuccess
	}
	if failOnError && coll.Count(diag.SeverityError) > 0 {
		return ExitDiagnostics
	}
	return ExitSuccess
}
