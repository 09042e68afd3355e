// Package extract runs one build session's output stream through the
// dialect registry and collects the resulting diagnostics.
package extract

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/handleui/winnow/diag"
	"github.com/handleui/winnow/dialects"
	"github.com/handleui/winnow/dialects/matcher"
	"github.com/handleui/winnow/progress"
)

const (
	// maxLineLength caps one line at 64KB - prevents ReDoS on extremely long lines
	maxLineLength = 65536
	// maxScanBuffer is the scanner ceiling; a single line past this aborts the scan
	maxScanBuffer = 1024 * 1024
)

// Session consumes one build invocation's output. It owns a freshly
// constructed parser registry, so no multi-line state ever leaks between
// builds: discard the Session when its build ends and construct a new one
// for the next.
//
// Thread Safety: a Session is single-threaded by design. Output lines
// depend on stream order, so they must be fed in order by one goroutine.
// Parallel builds get one Session each.
type Session struct {
	registry   *dialects.Registry
	collection *diag.Collection
	tracker    *progress.Tracker

	linesFed     int
	linesSkipped int
}

// NewSession creates a session over the default dialect set plus one custom
// matcher per config.
func NewSession(matchers ...matcher.Config) *Session {
	return NewSessionWithRegistry(dialects.Default(matchers...))
}

// NewSessionWithRegistry creates a session over a caller-built registry,
// for hosts that assemble their own dialect set. The registry must not be
// shared with another session.
func NewSessionWithRegistry(r *dialects.Registry) *Session {
	return &Session{
		registry:   r,
		collection: diag.NewCollection(),
		tracker:    progress.NewTracker(),
	}
}

// FeedLine feeds one line of output through every parser and returns the
// number of diagnostics it produced. A trailing carriage return is dropped
// so CRLF streams behave like LF streams; splitting the stream into lines
// is the caller's job (or Consume's).
func (s *Session) FeedLine(line string) int {
	line = strings.TrimSuffix(line, "\r")
	s.linesFed++
	s.tracker.Observe(line)
	return s.registry.FeedLine(line, s.collection)
}

// Consume reads r line by line until EOF. Lines longer than 64KB are
// counted and skipped rather than parsed; a line past the 1MB scanner
// ceiling, or any read failure, aborts with a wrapped error. Diagnostics
// collected before the failure remain available.
func (s *Session) Consume(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxScanBuffer)

	for scanner.Scan() {
		line := scanner.Text()
		if len(line) > maxLineLength {
			s.linesSkipped++
			continue
		}
		s.FeedLine(line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanning build output: %w", err)
	}
	return nil
}

// Diagnostics returns the session's collection, grouped by file. The
// collection keeps filling as more lines are fed.
func (s *Session) Diagnostics() *diag.Collection {
	return s.collection
}

// Progress returns the build progress percentage, judged from make/ninja
// progress prefixes seen so far. Zero when the stream carries none.
func (s *Session) Progress() int {
	return s.tracker.Percent()
}

// LinesFed returns how many lines reached the parsers.
func (s *Session) LinesFed() int {
	return s.linesFed
}

// LinesSkipped returns how many oversized lines Consume dropped.
func (s *Session) LinesSkipped() int {
	return s.linesSkipped
}
