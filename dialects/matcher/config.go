package matcher

import (
	"strconv"
	"strings"

	"github.com/handleui/winnow/diag"
)

// Default capture-group mapping for configs that leave the indices out.
const (
	defaultFileGroup    = 1
	defaultLineGroup    = 2
	defaultMessageGroup = 3
)

// Config describes one user-defined single-line diagnostic pattern: a
// regular expression plus the capture-group indices that map matched text
// into diagnostic fields.
//
// Group indices are 1-based capture groups. Zero means "not configured":
// optional fields (Column, Code) are then left off the emitted diagnostic,
// the required ones fall back to their defaults. Indices are never checked
// against the pattern's actual group count; an unsatisfied index simply
// captures the empty string.
type Config struct {
	// Name identifies the matcher and becomes the parser name.
	Name string `yaml:"name" json:"name"`

	// Regexp is the user-supplied pattern, compiled once at construction.
	Regexp string `yaml:"regexp" json:"regexp"`

	// File is the capture group holding the file path. Default 1.
	File int `yaml:"file,omitempty" json:"file,omitempty"`

	// Line is the capture group holding the 1-based line number. Default 2.
	Line int `yaml:"line,omitempty" json:"line,omitempty"`

	// Column is the capture group holding the 1-based column number.
	// Without it the emitted range spans the whole line.
	Column int `yaml:"column,omitempty" json:"column,omitempty"`

	// Severity is either a capture group index (number or digit string)
	// whose text classifies each match, or a literal severity word applied
	// to every match. Default "warning".
	Severity any `yaml:"severity,omitempty" json:"severity,omitempty"`

	// Message is the capture group holding the message text. Default 3.
	Message int `yaml:"message,omitempty" json:"message,omitempty"`

	// Code is the capture group holding a tool-specific code. Optional.
	Code int `yaml:"code,omitempty" json:"code,omitempty"`
}

// withDefaults fills in the default group mapping for left-out indices.
func (c Config) withDefaults() Config {
	if c.File == 0 {
		c.File = defaultFileGroup
	}
	if c.Line == 0 {
		c.Line = defaultLineGroup
	}
	if c.Message == 0 {
		c.Message = defaultMessageGroup
	}
	return c
}

// severityPlan is the Severity field resolved once at construction: either
// a capture group to classify from, or a fixed severity.
type severityPlan struct {
	group   int
	literal diag.Severity
}

// planSeverity handles the polymorphic Severity value. YAML and JSON
// decoders hand numbers over as different concrete types, so all integer
// kinds plus digit strings count as group indices; any other string is a
// literal severity word.
func planSeverity(v any) severityPlan {
	switch s := v.(type) {
	case nil:
		return severityPlan{literal: diag.SeverityWarning}
	case int:
		return groupPlan(s)
	case int64:
		return groupPlan(int(s))
	case uint64:
		return groupPlan(int(s))
	case float64:
		return groupPlan(int(s))
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return groupPlan(n)
		}
		return severityPlan{literal: diag.ParseSeverity(s)}
	default:
		return severityPlan{literal: diag.SeverityWarning}
	}
}

func groupPlan(n int) severityPlan {
	if n < 1 {
		return severityPlan{literal: diag.SeverityWarning}
	}
	return severityPlan{group: n}
}
