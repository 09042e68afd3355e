package parser

import (
	"regexp"
)

// ansiEscapePattern matches ANSI escape sequences for colored terminal output.
// Pattern: ESC[ followed by numeric parameters separated by semicolons, ending with 'm'.
// Examples: \x1b[0m (reset), \x1b[31m (red), \x1b[1;31;40m (bold red on black)
var ansiEscapePattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes ANSI escape sequences from a string.
// Compilers and build drivers emit colored text under -fdiagnostics-color
// or when they detect a TTY; dialects match against the cleaned line while
// Diagnostic.Raw keeps the original.
func StripANSI(s string) string {
	return ansiEscapePattern.ReplaceAllString(s, "")
}
