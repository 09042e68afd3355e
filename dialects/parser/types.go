// Package parser defines the line-feed contract that every output dialect
// implements, plus the small text helpers the dialects share.
package parser

import (
	"github.com/handleui/winnow/diag"
)

// Status reports what a parser did with a line.
type Status int

const (
	// NotMine means the line carried no information for this parser and
	// its internal state is unchanged by the call.
	NotMine Status = iota

	// Consumed means the parser used the line: either a diagnostic
	// completed (returned alongside) or the line joined an in-progress
	// multi-line accumulation.
	Consumed
)

func (s Status) String() string {
	switch s {
	case NotMine:
		return "NotMine"
	case Consumed:
		return "Consumed"
	}
	return "Unknown"
}

// LineParser is the contract every output dialect implements: one line of
// build output in, at most one completed diagnostic out.
//
// FeedLine returns (nil, NotMine) when the line carries nothing for this
// parser, (nil, Consumed) when the line joined an in-progress accumulation
// with no diagnostic ready yet, and (d, Consumed) when a diagnostic
// completed. A diagnostic return always also resets the parser's
// accumulation state, so the next line starts fresh.
//
// Thread Safety: parsers maintain internal state for multi-line formats and
// are not safe for concurrent use. Each build session constructs its own
// parser instances (via dialects.Default or the dialect's New function);
// sessions running in parallel must not share them.
type LineParser interface {
	// Name returns the identifier for this parser (e.g. "gcc", "iwyu").
	Name() string

	// FeedLine consumes one line of build output.
	FeedLine(line string) (*diag.Diagnostic, Status)

	// Reset clears any accumulated multi-line state, returning the parser
	// to its initial mode. Called between parsing runs.
	Reset()
}
