// Package gcc parses GCC and Clang compile diagnostics, including include
// stacks, template instantiation context, and trailing notes.
package gcc

import (
	"github.com/handleui/winnow/diag"
	"github.com/handleui/winnow/dialects/parser"
)

const parserName = "gcc"

// includedFromMessage annotates include-stack related entries.
const includedFromMessage = "included from here"

// Parser implements parser.LineParser for GCC-style compiler output.
//
// Beyond the one-line diagnostic it understands three kinds of context:
// "In file included from" stacks and "required from" template context
// accumulate as related information for the NEXT diagnostic, while a
// "note:" line attaches to the PREVIOUS one (notes elaborate on the
// diagnostic the compiler just printed).
//
// Thread Safety: Parser carries context state across lines and is NOT
// thread-safe. Create a new instance per build session.
type Parser struct {
	pending []diag.Related
	prev    *diag.Diagnostic
}

// New creates a new GCC parser instance.
func New() *Parser {
	return &Parser{}
}

var _ parser.LineParser = (*Parser)(nil)

// Name implements parser.LineParser.
func (p *Parser) Name() string {
	return parserName
}

// Reset implements parser.LineParser.
func (p *Parser) Reset() {
	p.pending = nil
	p.prev = nil
}

// FeedLine implements parser.LineParser.
func (p *Parser) FeedLine(line string) (*diag.Diagnostic, parser.Status) {
	stripped := parser.StripANSI(line)

	if m := includeFromPattern.FindStringSubmatch(stripped); m != nil {
		p.appendPending(m[1], diag.WholeLine(parser.OneLess(m[2])), includedFromMessage)
		return nil, parser.Consumed
	}
	if m := includeContPattern.FindStringSubmatch(stripped); m != nil {
		p.appendPending(m[1], diag.WholeLine(parser.OneLess(m[2])), includedFromMessage)
		return nil, parser.Consumed
	}
	if m := contextPattern.FindStringSubmatch(stripped); m != nil {
		rng := diag.FromColumn(parser.OneLess(m[2]), parser.OneLess(m[3]))
		p.appendPending(m[1], rng, m[4])
		return nil, parser.Consumed
	}

	m := diagPattern.FindStringSubmatch(stripped)
	if m == nil {
		return nil, parser.NotMine
	}

	severity := diag.ParseSeverity(m[4])
	rng := diag.FromColumn(parser.OneLess(m[2]), parser.OneLess(m[3]))

	// A note elaborates on the diagnostic that precedes it.
	if severity == diag.SeverityInfo && p.prev != nil {
		p.prev.Related = append(p.prev.Related, diag.Related{
			File:    m[1],
			Range:   rng,
			Message: m[5],
		})
		return nil, parser.Consumed
	}

	d := &diag.Diagnostic{
		Raw:      stripped,
		File:     m[1],
		Range:    rng,
		Severity: severity,
		Message:  m[5],
		Related:  p.pending,
	}
	p.pending = nil
	p.prev = d
	return d, parser.Consumed
}

func (p *Parser) appendPending(file string, rng diag.Range, message string) {
	p.pending = append(p.pending, diag.Related{
		File:    file,
		Range:   rng,
		Message: message,
	})
}
