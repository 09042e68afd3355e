// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"
	FieldFiles = "files"

	// Extraction fields.
	FieldMatchers    = "matchers"
	FieldDiagnostics = "diagnostics"
	FieldLines       = "lines"
	FieldSkipped     = "skipped"
	FieldProgress    = "progress"
	FieldErrors      = "errors"
	FieldWarnings    = "warnings"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
