package progress

import "testing"

func TestTracker_Observe(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantPercent int
		wantUpdated bool
	}{
		{
			name:        "make percent",
			line:        "[ 42%] Building CXX object CMakeFiles/app.dir/main.cpp.o",
			wantPercent: 42,
			wantUpdated: true,
		},
		{
			name:        "make single digit",
			line:        "[  7%] Building C object foo.c.o",
			wantPercent: 7,
			wantUpdated: true,
		},
		{
			name:        "make complete",
			line:        "[100%] Linking CXX executable app",
			wantPercent: 100,
			wantUpdated: true,
		},
		{
			name:        "ninja counter",
			line:        "[12/345] Building CXX object main.cpp.o",
			wantPercent: 3,
			wantUpdated: true,
		},
		{
			name:        "ninja complete",
			line:        "[345/345] Linking CXX executable app",
			wantPercent: 100,
			wantUpdated: true,
		},
		{
			name:        "ninja zero total ignored",
			line:        "[0/0] nothing",
			wantPercent: 0,
			wantUpdated: false,
		},
		{
			name:        "plain compiler line",
			line:        "main.cpp:14:10: error: something",
			wantPercent: 0,
			wantUpdated: false,
		},
		{
			name:        "empty line",
			line:        "",
			wantPercent: 0,
			wantUpdated: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker()
			got, updated := tr.Observe(tt.line)
			if got != tt.wantPercent {
				t.Errorf("Observe(%q) percent = %d, want %d", tt.line, got, tt.wantPercent)
			}
			if updated != tt.wantUpdated {
				t.Errorf("Observe(%q) updated = %v, want %v", tt.line, updated, tt.wantUpdated)
			}
		})
	}
}

func TestTracker_KeepsLastValue(t *testing.T) {
	tr := NewTracker()

	tr.Observe("[ 10%] compiling a")
	tr.Observe("some unrelated output")
	if tr.Percent() != 10 {
		t.Errorf("Percent() = %d, want 10 after unrelated line", tr.Percent())
	}

	tr.Observe("[ 60%] compiling b")
	if tr.Percent() != 60 {
		t.Errorf("Percent() = %d, want 60", tr.Percent())
	}

	tr.Reset()
	if tr.Percent() != 0 {
		t.Errorf("Percent() = %d after Reset, want 0", tr.Percent())
	}
}

func TestTracker_NinjaOvershoot(t *testing.T) {
	tr := NewTracker()
	// Restarted ninja builds can report more finished steps than the
	// total; clamp instead of exceeding 100.
	got, updated := tr.Observe("[400/345] re-checking dirty targets")
	if !updated {
		t.Fatal("expected an update")
	}
	if got != 100 {
		t.Errorf("percent = %d, want 100", got)
	}
}
