package dialects

import (
	"testing"

	"github.com/handleui/winnow/diag"
	"github.com/handleui/winnow/dialects/matcher"
)

func TestRegistry_FeedLineDispatchesToAll(t *testing.T) {
	// A gcc-shaped line that a custom matcher also covers. Dispatch feeds
	// every parser: gcc fires, the loose gnuld shape fires (reading the
	// file as "main.c:10"), and the matcher fires. All three are kept.
	r := Default(matcher.Config{
		Name:     "generic",
		Regexp:   `^(.*):(\d+):\d+: error: (.*)$`,
		Severity: "error",
	})

	sink := diag.NewCollection()
	n := r.FeedLine("main.c:10:5: error: something broke", sink)

	if n != 3 {
		t.Fatalf("emitted = %d, want 3 (gcc, gnuld, custom matcher)", n)
	}

	ds := sink.ByFile["main.c"]
	if len(ds) != 2 {
		t.Fatalf("len(ByFile[main.c]) = %d, want 2 (gcc and the matcher)", len(ds))
	}

	// Built-ins register before matchers, so the gcc parse comes first.
	if ds[0].Range.Start.Column != 4 {
		t.Errorf("first diagnostic Start.Column = %d, want 4 (gcc parsed)", ds[0].Range.Start.Column)
	}
	if ds[1].Range.Start.Column != 0 {
		t.Errorf("second diagnostic Start.Column = %d, want 0 (matcher has no column group)", ds[1].Range.Start.Column)
	}

	if len(sink.ByFile["main.c:10"]) != 1 {
		t.Errorf("expected the gnuld duplicate under %q, got %+v", "main.c:10", sink.Files())
	}
}

func TestRegistry_UnmatchedLineEmitsNothing(t *testing.T) {
	r := Default()
	sink := diag.NewCollection()

	for _, line := range []string{
		"gcc -c -o main.o main.c",
		"Scanning dependencies of target app",
		"",
	} {
		if n := r.FeedLine(line, sink); n != 0 {
			t.Errorf("FeedLine(%q) emitted %d diagnostics, want 0", line, n)
		}
	}
	if sink.Total != 0 {
		t.Errorf("Total = %d, want 0", sink.Total)
	}
}

func TestRegistry_RegistrationOrderPreserved(t *testing.T) {
	// Two matchers over the same shape: output order follows registration
	// order, not specificity.
	r := New()
	r.Register(matcher.New(matcher.Config{Name: "first", Regexp: `(.*):(\d+): (.*)`, Severity: "error"}))
	r.Register(matcher.New(matcher.Config{Name: "second", Regexp: `(.*):(\d+): (.*)`}))

	sink := diag.NewCollection()
	r.FeedLine("foo.c:10: broken", sink)

	ds := sink.ByFile["foo.c"]
	if len(ds) != 2 {
		t.Fatalf("len(ByFile[foo.c]) = %d, want 2", len(ds))
	}
	if ds[0].Severity != diag.SeverityError {
		t.Errorf("ds[0].Severity = %q, want %q (the first-registered matcher)", ds[0].Severity, diag.SeverityError)
	}
	if ds[1].Severity != diag.SeverityWarning {
		t.Errorf("ds[1].Severity = %q, want %q (the second-registered matcher)", ds[1].Severity, diag.SeverityWarning)
	}
}

func TestRegistry_InertMatcherNeverDisrupts(t *testing.T) {
	r := Default(matcher.Config{Name: "broken", Regexp: `(unbalanced`})
	sink := diag.NewCollection()

	n := r.FeedLine("main.c:10:5: error: something broke", sink)
	if n == 0 {
		t.Error("built-in dialects should still fire alongside an inert matcher")
	}
}

func TestRegistry_ResetAll(t *testing.T) {
	r := Default()
	sink := diag.NewCollection()

	// Leave the iwyu parser mid-accumulation, then reset.
	r.FeedLine("The full include-list for /src/main.cc:", sink)
	r.FeedLine("#include <string>", sink)
	r.ResetAll()

	if n := r.FeedLine("---", sink); n != 0 {
		t.Errorf("terminator after ResetAll emitted %d diagnostics, want 0", n)
	}
	if sink.Total != 0 {
		t.Errorf("Total = %d, want 0", sink.Total)
	}
}

func TestRegistry_DefaultParsers(t *testing.T) {
	r := Default(matcher.Config{Name: "extra", Regexp: `x`})

	names := make([]string, 0, len(r.Parsers()))
	for _, p := range r.Parsers() {
		names = append(names, p.Name())
	}

	want := []string{"gcc", "gnuld", "msvc", "cmake", "iwyu", "extra"}
	if len(names) != len(want) {
		t.Fatalf("parser count = %d, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("parser[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
