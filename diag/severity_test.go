package diag

import "testing"

// TestParseSeverity verifies the normalization of severity words as tools
// actually print them.
func TestParseSeverity(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Severity
	}{
		{name: "plain error", input: "error", expected: SeverityError},
		{name: "uppercase error", input: "ERROR", expected: SeverityError},
		{name: "fatal error", input: "fatal error", expected: SeverityError},
		{name: "fatal alone", input: "fatal", expected: SeverityError},
		{name: "warning", input: "warning", expected: SeverityWarning},
		{name: "warn", input: "warn", expected: SeverityWarning},
		{name: "mixed case warning", input: "Warning", expected: SeverityWarning},
		{name: "note", input: "note", expected: SeverityInfo},
		{name: "info", input: "info", expected: SeverityInfo},
		{name: "hint", input: "hint", expected: SeverityInfo},
		{name: "remark", input: "remark", expected: SeverityInfo},
		{name: "surrounding whitespace", input: "  error  ", expected: SeverityError},
		{name: "unknown word defaults to error", input: "catastrophe", expected: SeverityError},
		{name: "empty defaults to error", input: "", expected: SeverityError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseSeverity(tt.input); got != tt.expected {
				t.Errorf("ParseSeverity(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
