// Package gnuld parses GNU ld link errors of the "file:line: message"
// shape.
package gnuld

import (
	"regexp"
	"strings"

	"github.com/handleui/winnow/diag"
	"github.com/handleui/winnow/dialects/parser"
)

const parserName = "gnuld"

// diagPattern matches linker diagnostics.
// Example: "/src/main.c:42: undefined reference to `foo'"
// Group 1: file path
// Group 2: line number (1-based)
// Group 3: message (a trailing ']' is excluded to keep progress-suffixed
// lines out)
var diagPattern = regexp.MustCompile(`^(.+?):(\d+)\s?:\s+(.*[^\]])$`)

// Parser implements parser.LineParser for GNU ld output. The shape is loose
// enough that two classic false positives need turning away up front: make
// recursion banners and the template context lines compilers print.
type Parser struct{}

// New creates a new GNU ld parser instance.
func New() *Parser {
	return &Parser{}
}

var _ parser.LineParser = (*Parser)(nil)

// Name implements parser.LineParser.
func (p *Parser) Name() string {
	return parserName
}

// Reset implements parser.LineParser. The linker dialect keeps no state.
func (p *Parser) Reset() {}

// FeedLine implements parser.LineParser.
func (p *Parser) FeedLine(line string) (*diag.Diagnostic, parser.Status) {
	stripped := parser.StripANSI(line)

	// Make prints its own "file:line:" shaped messages while recursing.
	if strings.HasPrefix(stripped, "make") {
		return nil, parser.NotMine
	}

	m := diagPattern.FindStringSubmatch(stripped)
	if m == nil {
		return nil, parser.NotMine
	}

	// Compiler template context looks exactly like a linker error.
	if strings.HasSuffix(stripped, "required from here") {
		return nil, parser.NotMine
	}

	severity := diag.SeverityError
	message := m[3]
	if rest, ok := strings.CutPrefix(message, "warning: "); ok {
		severity = diag.SeverityWarning
		message = rest
	}

	d := &diag.Diagnostic{
		Raw:      m[0],
		File:     m[1],
		Range:    diag.WholeLine(parser.OneLess(m[2])),
		Severity: severity,
		Message:  message,
	}
	return d, parser.Consumed
}
