// Package msvc parses Visual Studio compiler and linker diagnostics.
package msvc

import (
	"strings"

	"github.com/handleui/winnow/diag"
	"github.com/handleui/winnow/dialects/parser"
)

const parserName = "msvc"

// Parser implements parser.LineParser for MSVC output. The dialect is
// strictly single-line; the only wrinkle is the parenthesized location
// field, which carries one, two, or four numbers depending on how much the
// compiler knows about the span.
type Parser struct{}

// New creates a new MSVC parser instance.
func New() *Parser {
	return &Parser{}
}

var _ parser.LineParser = (*Parser)(nil)

// Name implements parser.LineParser.
func (p *Parser) Name() string {
	return parserName
}

// Reset implements parser.LineParser. The MSVC dialect keeps no state.
func (p *Parser) Reset() {}

// FeedLine implements parser.LineParser.
func (p *Parser) FeedLine(line string) (*diag.Diagnostic, parser.Status) {
	stripped := parser.StripANSI(line)

	m := diagPattern.FindStringSubmatch(stripped)
	if m == nil {
		return nil, parser.NotMine
	}

	rng, ok := parseLocation(m[2])
	if !ok {
		return nil, parser.NotMine
	}

	d := &diag.Diagnostic{
		Raw:      m[0],
		File:     m[1],
		Range:    rng,
		Severity: diag.ParseSeverity(m[3]),
		Message:  m[5],
		Code:     m[4],
	}
	return d, parser.Consumed
}

// parseLocation expands the location field. One number is a bare line, two
// are line and column, four are a full start/end span; three is not a shape
// MSVC prints.
func parseLocation(loc string) (diag.Range, bool) {
	parts := strings.Split(loc, ",")
	switch len(parts) {
	case 1:
		return diag.WholeLine(parser.OneLess(parts[0])), true
	case 2:
		return diag.FromColumn(parser.OneLess(parts[0]), parser.OneLess(parts[1])), true
	case 4:
		return diag.Range{
			Start: diag.Position{Line: parser.OneLess(parts[0]), Column: parser.OneLess(parts[1])},
			End:   diag.Position{Line: parser.OneLess(parts[2]), Column: parser.OneLess(parts[3])},
		}, true
	}
	return diag.Range{}, false
}
