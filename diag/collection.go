package diag

import "sort"

// Sink receives completed diagnostics as parsers emit them. Implementations
// decide how diagnostics are stored or forwarded; parsers assume nothing
// beyond Add.
type Sink interface {
	Add(d *Diagnostic)
}

// Collection is the standard Sink: it groups diagnostics by file path for
// organized output, preserving per-file emission order.
type Collection struct {
	ByFile map[string][]*Diagnostic `json:"by_file"`
	NoFile []*Diagnostic            `json:"no_file"`
	Total  int                      `json:"total"`
}

// NewCollection returns an empty Collection ready to receive diagnostics.
func NewCollection() *Collection {
	return &Collection{ByFile: make(map[string][]*Diagnostic)}
}

// Add files d under its file path, or under NoFile when the diagnostic
// carries no file association at all.
func (c *Collection) Add(d *Diagnostic) {
	if d == nil {
		return
	}
	if c.ByFile == nil {
		c.ByFile = make(map[string][]*Diagnostic)
	}
	if d.File != "" {
		c.ByFile[d.File] = append(c.ByFile[d.File], d)
	} else {
		c.NoFile = append(c.NoFile, d)
	}
	c.Total++
}

// Files returns the file paths present in the collection, sorted.
func (c *Collection) Files() []string {
	files := make([]string, 0, len(c.ByFile))
	for f := range c.ByFile {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

// Severities counts diagnostics per severity across the whole collection.
func (c *Collection) Severities() map[Severity]int {
	counts := make(map[Severity]int)
	for _, ds := range c.ByFile {
		for _, d := range ds {
			counts[d.Severity]++
		}
	}
	for _, d := range c.NoFile {
		counts[d.Severity]++
	}
	return counts
}

// Count returns the number of diagnostics with the given severity.
func (c *Collection) Count(sev Severity) int {
	return c.Severities()[sev]
}
