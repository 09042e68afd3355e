package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/handleui/winnow/diag"
)

func TestFormatJSON(t *testing.T) {
	tests := []struct {
		name     string
		coll     *diag.Collection
		validate func(t *testing.T, output string)
	}{
		{
			name: "empty collection",
			coll: collect(),
			validate: func(t *testing.T, output string) {
				var result diag.Collection
				if err := json.Unmarshal([]byte(output), &result); err != nil {
					t.Fatalf("failed to unmarshal JSON: %v", err)
				}
				if result.Total != 0 {
					t.Errorf("Total = %d, want 0", result.Total)
				}
			},
		},
		{
			name: "single diagnostic with file",
			coll: collect(&diag.Diagnostic{
				File:     "main.c",
				Range:    diag.FromColumn(9, 4),
				Severity: diag.SeverityError,
				Message:  "undefined: foo",
			}),
			validate: func(t *testing.T, output string) {
				var result diag.Collection
				if err := json.Unmarshal([]byte(output), &result); err != nil {
					t.Fatalf("failed to unmarshal JSON: %v", err)
				}
				if result.Total != 1 {
					t.Errorf("Total = %d, want 1", result.Total)
				}
				diags, ok := result.ByFile["main.c"]
				if !ok {
					t.Fatal("expected main.c in ByFile")
				}
				if len(diags) != 1 {
					t.Fatalf("main.c diagnostics length = %d, want 1", len(diags))
				}
				if diags[0].Message != "undefined: foo" {
					t.Errorf("Message = %q, want %q", diags[0].Message, "undefined: foo")
				}
				if diags[0].Range.Start.Line != 9 {
					t.Errorf("Start.Line = %d, want 9 (zero-based on the wire)", diags[0].Range.Start.Line)
				}
			},
		},
		{
			name: "diagnostics without file location",
			coll: collect(
				&diag.Diagnostic{Message: "generic error", Severity: diag.SeverityError},
				&diag.Diagnostic{Message: "generic warning", Severity: diag.SeverityWarning},
			),
			validate: func(t *testing.T, output string) {
				var result diag.Collection
				if err := json.Unmarshal([]byte(output), &result); err != nil {
					t.Fatalf("failed to unmarshal JSON: %v", err)
				}
				if len(result.NoFile) != 2 {
					t.Errorf("NoFile length = %d, want 2", len(result.NoFile))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := FormatJSON(&buf, tt.coll); err != nil {
				t.Fatalf("FormatJSON() failed: %v", err)
			}
			tt.validate(t, buf.String())
		})
	}
}

func TestFormatJSON_Indented(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatJSON(&buf, collect(&diag.Diagnostic{Message: "x", Severity: diag.SeverityError})); err != nil {
		t.Fatalf("FormatJSON() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Error("expected indented output")
	}
}

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	if !IsColorEnabled("always", &buf) {
		t.Error("always mode should enable color")
	}
	if IsColorEnabled("never", &buf) {
		t.Error("never mode should disable color")
	}
	// A plain buffer is not a TTY.
	if IsColorEnabled("auto", &buf) {
		t.Error("auto mode should disable color for non-TTY writers")
	}
}
