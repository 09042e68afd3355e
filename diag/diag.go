// Package diag defines the structured diagnostic records produced by build
// output parsing and the sink contract that collects them.
package diag

// EndOfLine is the sentinel end column used when a dialect reports no usable
// column: a range ending at column 999 means "the whole rest of the line".
const EndOfLine = 999

// Position is a zero-based line/column location inside a file.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Range spans from Start to End, both zero-based. Start.Line never exceeds
// End.Line; End.Column is EndOfLine whenever the source dialect did not
// report a real end column.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// WholeLine returns the sentinel range covering all of the given zero-based
// line: column 0 through EndOfLine.
func WholeLine(line int) Range {
	return Range{
		Start: Position{Line: line},
		End:   Position{Line: line, Column: EndOfLine},
	}
}

// FromColumn returns the range from the given zero-based line/column to the
// sentinel end of the same line.
func FromColumn(line, column int) Range {
	return Range{
		Start: Position{Line: line, Column: column},
		End:   Position{Line: line, Column: EndOfLine},
	}
}

// Related is a secondary location attached to a diagnostic, such as a
// compiler "note:" or an include-stack entry.
type Related struct {
	File    string `json:"file,omitempty"`
	Range   Range  `json:"range"`
	Message string `json:"message"`
}

// Diagnostic represents a single problem extracted from build output.
type Diagnostic struct {
	// Raw is the full captured span of text, possibly multi-line, that
	// produced this diagnostic. Kept for debugging and deduplication by
	// consumers; never re-parsed.
	Raw      string    `json:"raw,omitempty"`
	File     string    `json:"file,omitempty"`
	Range    Range     `json:"range"`
	Severity Severity  `json:"severity"`
	Message  string    `json:"message"`
	Code     string    `json:"code,omitempty"`
	Related  []Related `json:"related,omitempty"`
}
