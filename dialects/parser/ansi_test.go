package parser

import "testing"

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no escapes",
			input:    "main.c:10:5: error: something",
			expected: "main.c:10:5: error: something",
		},
		{
			name:     "colored severity",
			input:    "main.c:10:5: \x1b[31merror:\x1b[0m something",
			expected: "main.c:10:5: error: something",
		},
		{
			name:     "bold compound sequence",
			input:    "\x1b[1;31;40mfatal error\x1b[0m",
			expected: "fatal error",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.expected {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
