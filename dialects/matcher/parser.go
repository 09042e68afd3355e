// Package matcher builds single-line diagnostic parsers at runtime from
// user-supplied pattern configurations.
package matcher

import (
	"fmt"
	"regexp"

	"github.com/handleui/winnow/diag"
	"github.com/handleui/winnow/dialects/parser"
)

// Parser implements parser.LineParser for one user-configured pattern.
//
// Construction is infallible: a pattern that fails to compile leaves the
// parser permanently inert, reporting NotMine for every line, so one broken
// config entry never takes down the pipeline. Parsers are immutable after
// construction and keep no per-line state.
type Parser struct {
	cfg Config
	re  *regexp.Regexp // nil when the pattern failed to compile
	err error
	sev severityPlan
}

// New creates a parser from cfg. It never fails; check Err for a pattern
// compile problem when validating configs.
func New(cfg Config) *Parser {
	cfg = cfg.withDefaults()
	p := &Parser{cfg: cfg, sev: planSeverity(cfg.Severity)}

	re, err := regexp.Compile(cfg.Regexp)
	if err != nil {
		p.err = fmt.Errorf("matcher %q: compiling pattern: %w", cfg.Name, err)
		return p
	}
	p.re = re
	return p
}

var _ parser.LineParser = (*Parser)(nil)

// Name implements parser.LineParser.
func (p *Parser) Name() string {
	return p.cfg.Name
}

// Err reports the pattern compile failure, if any. An inert parser keeps
// its place in the registry and simply never matches.
func (p *Parser) Err() error {
	return p.err
}

// Reset implements parser.LineParser. The matcher has no multi-line state.
func (p *Parser) Reset() {}

// FeedLine implements parser.LineParser.
func (p *Parser) FeedLine(line string) (*diag.Diagnostic, parser.Status) {
	if p.re == nil {
		return nil, parser.NotMine
	}

	m := p.re.FindStringSubmatch(parser.StripANSI(line))
	if m == nil {
		return nil, parser.NotMine
	}

	lineNum := parser.OneLess(group(m, p.cfg.Line))

	rng := diag.WholeLine(lineNum)
	if p.cfg.Column > 0 {
		rng = diag.FromColumn(lineNum, parser.OneLess(group(m, p.cfg.Column)))
	}

	d := &diag.Diagnostic{
		Raw:      m[0],
		File:     group(m, p.cfg.File),
		Range:    rng,
		Severity: p.severity(m),
		Message:  group(m, p.cfg.Message),
	}
	if p.cfg.Code > 0 {
		d.Code = group(m, p.cfg.Code)
	}
	return d, parser.Consumed
}

func (p *Parser) severity(m []string) diag.Severity {
	if p.sev.group > 0 {
		text := group(m, p.sev.group)
		if text == "" {
			return diag.SeverityWarning
		}
		return diag.ParseSeverity(text)
	}
	return p.sev.literal
}

// group returns the capture at idx, or "" when the group is out of range or
// did not participate in the match.
func group(m []string, idx int) string {
	if idx < 0 || idx >= len(m) {
		return ""
	}
	return m[idx]
}
