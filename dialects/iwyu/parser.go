// Package iwyu parses include-what-you-use suggestion reports, the
// multi-line "should add/remove these lines" format emitted after a build
// wired through the iwyu tool.
package iwyu

import (
	"strings"

	"github.com/handleui/winnow/diag"
	"github.com/handleui/winnow/dialects/parser"
)

const parserName = "iwyu"

// fullListPrefix heads the message of a diagnostic built from a full
// include-list block.
const fullListPrefix = "The full include-list:"

type mode int

const (
	awaitingHeader mode = iota
	collectingAdditions
	collectingRemovals
)

// reportState holds multi-line state for the suggestion report in progress.
type reportState struct {
	mode      mode
	file      string
	prefix    string
	severity  diag.Severity
	fullText  []string
	fragments []string
}

func (s *reportState) reset() {
	*s = reportState{}
}

// Parser implements parser.LineParser for include-what-you-use reports.
//
// Thread Safety: Parser accumulates multi-line state and is NOT thread-safe.
// Create a new instance per build session.
type Parser struct {
	state reportState
}

// New creates a new include-what-you-use parser instance.
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

	switch p.state.mode {
	case collectingRemovals:
		return p.feedRemoval(stripped)
	case collectingAdditions:
		return p.feedAddition(stripped)
	default:
		return p.feedHeader(stripped)
	}
}

// feedHeader looks for one of the two block headers. Anything else is not
// this dialect's business.
func (p *Parser) feedHeader(line string) (*diag.Diagnostic, parser.Status) {
	if m := inlineHeaderPattern.FindStringSubmatch(line); m != nil {
		p.state = reportState{
			mode:     collectingAdditions,
			file:     m[1],
			prefix:   "should " + m[2] + " these lines:",
			severity: diag.SeverityWarning,
			fullText: []string{line},
		}
		if m[2] == "remove" {
			p.state.mode = collectingRemovals
		}
		return nil, parser.Consumed
	}

	if m := fullListHeaderPattern.FindStringSubmatch(line); m != nil {
		p.state = reportState{
			mode:     collectingAdditions,
			file:     m[1],
			prefix:   fullListPrefix,
			severity: diag.SeverityInfo,
			fullText: []string{line},
		}
		return nil, parser.Consumed
	}

	return nil, parser.NotMine
}

// feedRemoval handles the one-shot removal record: a match emits
// immediately, anything else is the natural end of the removal list.
func (p *Parser) feedRemoval(line string) (*diag.Diagnostic, parser.Status) {
	m := removalPattern.FindStringSubmatch(line)
	if m == nil {
		p.state.reset()
		return nil, parser.Consumed
	}

	d := &diag.Diagnostic{
		Raw:      p.state.fullText[0] + "\n" + line,
		File:     p.state.file,
		Severity: p.state.severity,
		Message:  m[1],
		Range: diag.Range{
			Start: diag.Position{Line: parser.OneLess(m[2])},
			End:   diag.Position{Line: parser.OneLess(m[3]), Column: diag.EndOfLine},
		},
	}
	p.state.reset()
	return d, parser.Consumed
}

// feedAddition accumulates suggestion lines until a blank line or dashed
// rule ends the block.
func (p *Parser) feedAddition(line string) (*diag.Diagnostic, parser.Status) {
	if strings.TrimSpace(line) != "" && !terminatorPattern.MatchString(line) {
		p.state.fullText = append(p.state.fullText, line)
		p.state.fragments = append(p.state.fragments, line)
		return nil, parser.Consumed
	}

	// Block ended. Zero accumulated fragments means an empty suggestion
	// list; that is a normal empty result, not a diagnostic.
	if len(p.state.fragments) == 0 {
		p.state.reset()
		return nil, parser.Consumed
	}

	d := &diag.Diagnostic{
		Raw:      strings.Join(p.state.fullText, "\n"),
		File:     p.state.file,
		Severity: p.state.severity,
		Message:  p.state.prefix + "\n" + strings.Join(p.state.fragments, "\n"),
		Range:    diag.WholeLine(0),
	}
	p.state.reset()
	return d, parser.Consumed
}
