package parser

import "strconv"

// OneLess converts a 1-based captured number to a 0-based index. Build tools
// report 1-based lines and columns; diagnostics carry 0-based positions.
// An empty capture defaults to "1" (yielding 0), a non-numeric capture
// yields 0, and values below 1 clamp to 0.
func OneLess(capture string) int {
	if capture == "" {
		capture = "1"
	}
	n, err := strconv.Atoi(capture)
	if err != nil || n < 1 {
		return 0
	}
	return n - 1
}
