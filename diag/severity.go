package diag

import "strings"

// Severity classifies a diagnostic. Values are the lowercase strings used on
// every output surface.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// ParseSeverity normalizes a severity word captured from tool output.
// Unrecognized words map to SeverityError: over-reporting beats hiding a
// failure behind a label we don't know.
func ParseSeverity(s string) Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error", "fatal error", "fatal":
		return SeverityError
	case "warning", "warn":
		return SeverityWarning
	case "note", "info", "hint", "remark":
		return SeverityInfo
	default:
		return SeverityError
	}
}
