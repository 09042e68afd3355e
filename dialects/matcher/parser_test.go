package matcher

import (
	"testing"

	"github.com/handleui/winnow/diag"
	"github.com/handleui/winnow/dialects/parser"
)

func TestParser_DefaultMapping(t *testing.T) {
	p := New(Config{
		Name:   "generic",
		Regexp: `(.*):(\d+): (.*)`,
	})
	if err := p.Err(); err != nil {
		t.Fatalf("Err() = %v, want nil", err)
	}

	d, status := p.FeedLine("foo.c:10: bad thing")
	if status != parser.Consumed {
		t.Fatalf("status = %v, want Consumed", status)
	}
	if d == nil {
		t.Fatal("expected a diagnostic, got nil")
	}

	if d.File != "foo.c" {
		t.Errorf("File = %q, want %q", d.File, "foo.c")
	}
	if d.Message != "bad thing" {
		t.Errorf("Message = %q, want %q", d.Message, "bad thing")
	}
	if d.Severity != diag.SeverityWarning {
		t.Errorf("Severity = %q, want %q", d.Severity, diag.SeverityWarning)
	}
	if d.Raw != "foo.c:10: bad thing" {
		t.Errorf("Raw = %q, want the whole matched line", d.Raw)
	}

	want := diag.Range{
		Start: diag.Position{Line: 9, Column: 0},
		End:   diag.Position{Line: 9, Column: diag.EndOfLine},
	}
	if d.Range != want {
		t.Errorf("Range = %+v, want %+v", d.Range, want)
	}
}

func TestParser_BadPatternIsInert(t *testing.T) {
	p := New(Config{
		Name:   "broken",
		Regexp: `(unbalanced`,
	})
	if p.Err() == nil {
		t.Error("Err() = nil, want compile error")
	}

	// Inert forever: never a match, never a panic.
	for _, line := range []string{"foo.c:10: bad thing", "(unbalanced", ""} {
		d, status := p.FeedLine(line)
		if d != nil || status != parser.NotMine {
			t.Errorf("FeedLine(%q) = (%v, %v), want (nil, NotMine)", line, d, status)
		}
	}
}

func TestParser_NoMatch(t *testing.T) {
	p := New(Config{Name: "generic", Regexp: `(.*):(\d+): (.*)`})

	d, status := p.FeedLine("completely unrelated")
	if d != nil || status != parser.NotMine {
		t.Errorf("FeedLine = (%v, %v), want (nil, NotMine)", d, status)
	}
}

func TestParser_ColumnGroup(t *testing.T) {
	p := New(Config{
		Name:    "with-column",
		Regexp:  `(.*):(\d+):(\d+): (.*)`,
		File:    1,
		Line:    2,
		Column:  3,
		Message: 4,
	})

	d, _ := p.FeedLine("foo.c:10:7: bad thing")
	if d == nil {
		t.Fatal("expected a diagnostic, got nil")
	}

	want := diag.Range{
		Start: diag.Position{Line: 9, Column: 6},
		End:   diag.Position{Line: 9, Column: diag.EndOfLine},
	}
	if d.Range != want {
		t.Errorf("Range = %+v, want %+v", d.Range, want)
	}
}

func TestParser_SeverityLiteral(t *testing.T) {
	tests := []struct {
		name     string
		severity any
		expected diag.Severity
	}{
		{name: "literal error", severity: "error", expected: diag.SeverityError},
		{name: "uppercase literal", severity: "ERROR", expected: diag.SeverityError},
		{name: "literal note maps to info", severity: "note", expected: diag.SeverityInfo},
		{name: "unset defaults to warning", severity: nil, expected: diag.SeverityWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(Config{
				Name:     "lit",
				Regexp:   `(.*):(\d+): (.*)`,
				Severity: tt.severity,
			})
			d, _ := p.FeedLine("foo.c:10: bad thing")
			if d == nil {
				t.Fatal("expected a diagnostic, got nil")
			}
			if d.Severity != tt.expected {
				t.Errorf("Severity = %q, want %q", d.Severity, tt.expected)
			}
		})
	}
}

func TestParser_SeverityFromGroup(t *testing.T) {
	cfg := Config{
		Name:     "classified",
		Regexp:   `(.*):(\d+): (?:(error|warning|note): )?(.*)`,
		Message:  4,
		Severity: 3,
	}

	tests := []struct {
		name     string
		severity any
		line     string
		expected diag.Severity
	}{
		{name: "int index, error text", severity: 3, line: "foo.c:10: error: boom", expected: diag.SeverityError},
		{name: "int index, note text", severity: 3, line: "foo.c:10: note: fyi", expected: diag.SeverityInfo},
		{name: "int index, group unsatisfied", severity: 3, line: "foo.c:10: plain message", expected: diag.SeverityWarning},
		{name: "digit string index", severity: "3", line: "foo.c:10: error: boom", expected: diag.SeverityError},
		{name: "float index from JSON decoding", severity: float64(3), line: "foo.c:10: error: boom", expected: diag.SeverityError},
		{name: "uint index from YAML decoding", severity: uint64(3), line: "foo.c:10: error: boom", expected: diag.SeverityError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cfg
			c.Severity = tt.severity
			d, _ := New(c).FeedLine(tt.line)
			if d == nil {
				t.Fatal("expected a diagnostic, got nil")
			}
			if d.Severity != tt.expected {
				t.Errorf("Severity = %q, want %q", d.Severity, tt.expected)
			}
		})
	}
}

func TestParser_OutOfRangeGroups(t *testing.T) {
	// file points past the last group; the value passes through empty
	// rather than failing.
	p := New(Config{
		Name:   "overreach",
		Regexp: `(.*):(\d+): (.*)`,
		File:   7,
	})

	d, status := p.FeedLine("foo.c:10: bad thing")
	if status != parser.Consumed {
		t.Fatalf("status = %v, want Consumed", status)
	}
	if d.File != "" {
		t.Errorf("File = %q, want empty for out-of-range group", d.File)
	}
}

func TestParser_CodeGroup(t *testing.T) {
	p := New(Config{
		Name:    "coded",
		Regexp:  `(.*)\((\d+)\): ([A-Z]+\d+): (.*)`,
		Code:    3,
		Message: 4,
	})

	d, _ := p.FeedLine("main.cpp(42): C2065: undeclared identifier")
	if d == nil {
		t.Fatal("expected a diagnostic, got nil")
	}
	if d.Code != "C2065" {
		t.Errorf("Code = %q, want %q", d.Code, "C2065")
	}
	if d.Message != "undeclared identifier" {
		t.Errorf("Message = %q, want %q", d.Message, "undeclared identifier")
	}
}

func TestParser_StripsColorCodes(t *testing.T) {
	p := New(Config{Name: "generic", Regexp: `^(.*):(\d+): (.*)$`})

	d, status := p.FeedLine("\x1b[1mfoo.c\x1b[0m:10: \x1b[31mbad thing\x1b[0m")
	if status != parser.Consumed {
		t.Fatalf("status = %v, want Consumed", status)
	}
	if d.File != "foo.c" {
		t.Errorf("File = %q, want %q", d.File, "foo.c")
	}
	if d.Message != "bad thing" {
		t.Errorf("Message = %q, want %q", d.Message, "bad thing")
	}
}

func TestParser_MissingLineCapture(t *testing.T) {
	// A pattern with no numeric capture at the line index: the missing
	// capture defaults like "1", landing on line 0.
	p := New(Config{
		Name:    "no-line",
		Regexp:  `^ERROR in (\S+): (.*)$`,
		File:    1,
		Line:    9,
		Message: 2,
	})

	d, _ := p.FeedLine("ERROR in foo.c: something broke")
	if d == nil {
		t.Fatal("expected a diagnostic, got nil")
	}
	if d.Range.Start.Line != 0 {
		t.Errorf("Start.Line = %d, want 0", d.Range.Start.Line)
	}
}
