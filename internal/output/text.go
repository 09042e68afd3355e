package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/handleui/winnow/diag"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorGreen  = "\033[32m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// dividerWidth is the standard width for section dividers
const dividerWidth = 60

// palette holds the escape codes used by the text formatter. The zero
// value renders plain text.
type palette struct {
	reset  string
	red    string
	yellow string
	green  string
	cyan   string
	gray   string
	bold   string
}

func newPalette(colored bool) palette {
	if !colored {
		return palette{}
	}
	return palette{
		reset:  colorReset,
		red:    colorRed,
		yellow: colorYellow,
		green:  colorGreen,
		cyan:   colorCyan,
		gray:   colorGray,
		bold:   colorBold,
	}
}

// divider returns a horizontal line of the specified width
func divider(width int) string {
	return strings.Repeat("─", width)
}

// FormatText formats a diagnostic collection as human-readable text.
// It displays diagnostics grouped by file with colored severity
// indicators and summary statistics at the top.
func FormatText(w io.Writer, coll *diag.Collection, colored bool) {
	p := newPalette(colored)
	counts := coll.Severities()
	errorCount := counts[diag.SeverityError]
	warningCount := counts[diag.SeverityWarning]
	noteCount := counts[diag.SeverityInfo]

	_, _ = fmt.Fprintln(w)

	if coll.Total > 0 {
		problemText := fmt.Sprintf("Found %d problem%s", coll.Total, plural(coll.Total))
		detailText := fmt.Sprintf("(%s%d error%s, %d warning%s, %d note%s)%s",
			p.red, errorCount, plural(errorCount), warningCount, plural(warningCount),
			noteCount, plural(noteCount), p.reset)

		fileCount := len(coll.ByFile)
		if fileCount > 0 {
			_, _ = fmt.Fprintf(w, "%s> %s✖ %s %s across %d file%s%s\n",
				p.bold, p.red, problemText, detailText, fileCount, plural(fileCount), p.reset)
		} else {
			_, _ = fmt.Fprintf(w, "%s> %s✖ %s %s%s\n", p.bold, p.red, problemText, detailText, p.reset)
		}
		_, _ = fmt.Fprintf(w, "\n%s%s%s\n\n", p.gray, divider(dividerWidth), p.reset)
	}

	for _, file := range coll.Files() {
		diags := coll.ByFile[file]
		fileErrors := countBySeverity(diags, diag.SeverityError)
		fileWarnings := countBySeverity(diags, diag.SeverityWarning)

		_, _ = fmt.Fprintf(w, "%s%s%s%s ", p.bold, p.cyan, file, p.reset)
		_, _ = fmt.Fprintf(w, "%s(%d error%s, %d warning%s)%s\n",
			p.gray, fileErrors, plural(fileErrors), fileWarnings, plural(fileWarnings), p.reset)

		for _, d := range diags {
			formatDiagnostic(w, p, d)
		}
		_, _ = fmt.Fprintln(w)
	}

	if len(coll.NoFile) > 0 {
		_, _ = fmt.Fprintf(w, "%s%sOther Issues:%s\n\n", p.bold, p.yellow, p.reset)
		for _, d := range coll.NoFile {
			color := severityColor(p, d.Severity)
			_, _ = fmt.Fprintf(w, "  %s%s%s %s\n", color, severitySymbol(d.Severity), p.reset, indentMessage(d.Message))
		}
		_, _ = fmt.Fprintln(w)
	}

	if coll.Total == 0 {
		_, _ = fmt.Fprintf(w, "%s> %s✓ No problems found%s\n", p.bold, p.green, p.reset)
	}
}

// formatDiagnostic writes a single diagnostic with location to w.
func formatDiagnostic(w io.Writer, p palette, d *diag.Diagnostic) {
	color := severityColor(p, d.Severity)
	location := formatLocation(d.Range)

	message := indentMessage(d.Message)
	if d.Code != "" {
		message = fmt.Sprintf("%s [%s]", message, d.Code)
	}

	_, _ = fmt.Fprintf(w, "  %s%s:%s%s %s%s %s%s%s\n",
		p.gray, location, p.reset,
		color, severitySymbol(d.Severity), p.reset,
		p.gray, message, p.reset)

	for _, rel := range d.Related {
		loc := rel.File
		if l := formatLocation(rel.Range); l != "" {
			loc += ":" + l
		}
		_, _ = fmt.Fprintf(w, "      %s↳ %s %s%s\n", p.gray, loc, rel.Message, p.reset)
	}
}

// formatLocation formats the line:column part for display. Positions are
// stored zero-based; humans and editors count from one.
func formatLocation(r diag.Range) string {
	if r.Start.Column > 0 && r.Start.Column != diag.EndOfLine {
		return fmt.Sprintf("%d:%d", r.Start.Line+1, r.Start.Column+1)
	}
	return fmt.Sprintf("%d", r.Start.Line+1)
}

// indentMessage aligns continuation lines of multi-line messages with the
// first line.
func indentMessage(message string) string {
	return strings.ReplaceAll(message, "\n", "\n      ")
}

// severityColor returns the color for a severity level
func severityColor(p palette, severity diag.Severity) string {
	switch severity {
	case diag.SeverityError:
		return p.red
	case diag.SeverityWarning:
		return p.yellow
	default:
		return p.gray
	}
}

// severitySymbol returns a symbol for a severity level
func severitySymbol(severity diag.Severity) string {
	switch severity {
	case diag.SeverityError:
		return "✖"
	case diag.SeverityWarning:
		return "⚠"
	default:
		return "●"
	}
}

// plural returns "s" if count != 1
func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}

// countBySeverity counts diagnostics with the given severity in a list
func countBySeverity(diags []*diag.Diagnostic, severity diag.Severity) int {
	count := 0
	for _, d := range diags {
		if d.Severity == severity {
			count++
		}
	}
	return count
}
