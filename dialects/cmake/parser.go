// Package cmake parses the block diagnostics CMake prints during a
// configure run.
package cmake

import (
	"strings"

	"github.com/handleui/winnow/diag"
	"github.com/handleui/winnow/dialects/parser"
)

const parserName = "cmake"

// blockState holds the header fields and body lines of the block in
// progress.
type blockState struct {
	active   bool
	file     string
	line     int
	severity diag.Severity
	code     string
	raw      []string
	body     []string
}

func (s *blockState) reset() {
	*s = blockState{}
}

// Parser implements parser.LineParser for CMake configure output. A located
// diagnostic spans a header line plus an indented explanation that runs
// until the first blank line.
//
// Thread Safety: Parser accumulates block state and is NOT thread-safe.
// Create a new instance per build session.
type Parser struct {
	state blockState
}

// New creates a new CMake parser instance.
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
	p.state.reset()
}

// FeedLine implements parser.LineParser.
func (p *Parser) FeedLine(line string) (*diag.Diagnostic, parser.Status) {
	stripped := parser.StripANSI(line)

	if p.state.active {
		return p.feedBody(stripped)
	}

	if m := blockHeaderPattern.FindStringSubmatch(stripped); m != nil {
		p.state = blockState{
			active:   true,
			file:     m[3],
			line:     parser.OneLess(m[4]),
			severity: kindSeverity(m[1]),
			code:     m[5],
			raw:      []string{stripped},
		}
		return nil, parser.Consumed
	}

	if m := bareDiagPattern.FindStringSubmatch(stripped); m != nil {
		d := &diag.Diagnostic{
			Raw:      stripped,
			Severity: kindSeverity(m[1]),
			Message:  m[2],
			Range:    diag.WholeLine(0),
		}
		return d, parser.Consumed
	}

	return nil, parser.NotMine
}

// feedBody accumulates explanation lines until the blank line that closes
// the block.
func (p *Parser) feedBody(line string) (*diag.Diagnostic, parser.Status) {
	if strings.TrimSpace(line) != "" {
		p.state.raw = append(p.state.raw, line)
		p.state.body = append(p.state.body, strings.TrimSpace(line))
		return nil, parser.Consumed
	}

	// Header with nothing after it still reports; CMake always indents at
	// least the raising command, but an empty body is not an error.
	d := &diag.Diagnostic{
		Raw:      strings.Join(p.state.raw, "\n"),
		File:     p.state.file,
		Range:    diag.WholeLine(p.state.line),
		Severity: p.state.severity,
		Message:  strings.Join(p.state.body, "\n"),
		Code:     p.state.code,
	}
	p.state.reset()
	return d, parser.Consumed
}

// kindSeverity maps the header kind to a severity. Deprecation and dev
// warnings are still warnings.
func kindSeverity(kind string) diag.Severity {
	if kind == "Error" {
		return diag.SeverityError
	}
	return diag.SeverityWarning
}
