// Package config loads custom matcher definitions from YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/handleui/winnow/dialects/matcher"
)

const (
	// maxConfigSizeBytes is the maximum allowed size for a matcher file (1MB)
	// This prevents resource exhaustion from maliciously large files
	maxConfigSizeBytes = 1 * 1024 * 1024
)

// ErrTooLarge reports a matcher file over the size cap.
var ErrTooLarge = errors.New("matcher file exceeds maximum size")

// File is the top-level layout of a matcher configuration file.
type File struct {
	Matchers []matcher.Config `yaml:"matchers"`
}

// Load reads and parses a matcher configuration file.
//
// Structural problems (unreadable file, bad YAML, entries missing a name
// or pattern) are errors; an entry whose regular expression fails to
// compile is NOT — that stays fail-soft in the matcher itself, which
// registers inert. Use Lint to surface compile failures to humans.
func Load(path string) ([]matcher.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the user's own flag
	if err != nil {
		return nil, fmt.Errorf("reading matcher file: %w", err)
	}
	configs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return configs, nil
}

// Parse parses matcher configuration YAML.
func Parse(data []byte) ([]matcher.Config, error) {
	if err := validateContent(data); err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing matcher YAML: %w", err)
	}

	for i, cfg := range f.Matchers {
		if cfg.Name == "" {
			return nil, fmt.Errorf("matcher %d: missing name", i)
		}
		if cfg.Regexp == "" {
			return nil, fmt.Errorf("matcher %q: missing regexp", cfg.Name)
		}
	}
	return f.Matchers, nil
}

// validateContent checks for malformed or disguised-binary content before
// the YAML parser sees it.
func validateContent(data []byte) error {
	if len(data) > maxConfigSizeBytes {
		return fmt.Errorf("%w (%d bytes, limit %d)", ErrTooLarge, len(data), maxConfigSizeBytes)
	}

	if bytes.Contains(data, []byte{0x00}) {
		return fmt.Errorf("matcher file contains null bytes (binary content not allowed)")
	}

	controlCount := 0
	for _, b := range data {
		if b < 32 && b != '\n' && b != '\r' && b != '\t' {
			controlCount++
		}
	}
	if controlCount > 10 {
		return fmt.Errorf("matcher file contains excessive control characters (%d found)", controlCount)
	}

	return nil
}

// LintResult describes one configured matcher after a validation pass.
type LintResult struct {
	Name string
	Err  error // nil when the pattern compiled
}

// Lint compiles every configured pattern the way a session would and
// reports which entries came out inert. The pipeline itself never fails on
// these; Lint exists so config authors find out before a build does.
func Lint(configs []matcher.Config) []LintResult {
	results := make([]LintResult, 0, len(configs))
	for _, cfg := range configs {
		results = append(results, LintResult{
			Name: cfg.Name,
			Err:  matcher.New(cfg).Err(),
		})
	}
	return results
}
