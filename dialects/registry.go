// Package dialects wires the individual output parsers into an ordered
// registry that dispatches build-output lines to all of them.
package dialects

import (
	"github.com/handleui/winnow/diag"
	"github.com/handleui/winnow/dialects/cmake"
	"github.com/handleui/winnow/dialects/gcc"
	"github.com/handleui/winnow/dialects/gnuld"
	"github.com/handleui/winnow/dialects/iwyu"
	"github.com/handleui/winnow/dialects/matcher"
	"github.com/handleui/winnow/dialects/msvc"
	"github.com/handleui/winnow/dialects/parser"
)

// LineParser is re-exported from the parser package for convenience.
type LineParser = parser.LineParser

// Registry holds the parsers active for one build session and dispatches
// every output line to every one of them, in registration order.
//
// Dialects are orthogonal: dispatch never stops at the first match, and
// diagnostics from several parsers on the same line are all kept. A custom
// matcher may legitimately duplicate a built-in dialect's match; suppressing
// either would second-guess the user's configuration.
//
// Thread Safety: a Registry belongs to exactly one build session and is not
// safe for concurrent use. Sessions running in parallel each construct
// their own via Default or New.
type Registry struct {
	parsers []LineParser
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// Default creates the standard registry for a build session: the built-in
// dialects in fixed order, then one matcher per user configuration in the
// order given. Matchers with uncompilable patterns still register; they are
// permanently inert and never match.
func Default(matchers ...matcher.Config) *Registry {
	r := New()
	r.Register(gcc.New())
	r.Register(gnuld.New())
	r.Register(msvc.New())
	r.Register(cmake.New())
	r.Register(iwyu.New())
	for _, cfg := range matchers {
		r.Register(matcher.New(cfg))
	}
	return r
}

// Register appends p to the dispatch order.
func (r *Registry) Register(p LineParser) {
	r.parsers = append(r.parsers, p)
}

// Parsers returns the registered parsers in dispatch order.
func (r *Registry) Parsers() []LineParser {
	return r.parsers
}

// FeedLine dispatches one line to every registered parser and forwards each
// completed diagnostic to sink. It returns the number of diagnostics
// emitted for this line.
func (r *Registry) FeedLine(line string, sink diag.Sink) int {
	emitted := 0
	for _, p := range r.parsers {
		d, _ := p.FeedLine(line)
		if d != nil {
			sink.Add(d)
			emitted++
		}
	}
	return emitted
}

// ResetAll returns every parser to its initial state.
func (r *Registry) ResetAll() {
	for _, p := range r.parsers {
		p.Reset()
	}
}
