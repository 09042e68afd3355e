// Package progress recognizes build-driver progress prefixes in output
// lines.
package progress

import (
	"regexp"
	"strconv"
)

var (
	// makePattern matches the percent prefix of Make-driven builds.
	// Example: "[ 42%] Building CXX object CMakeFiles/app.dir/main.cpp.o"
	// Group 1: percentage
	makePattern = regexp.MustCompile(`^\[\s*(\d+)%\]`)

	// ninjaPattern matches the step counter Ninja prints.
	// Example: "[12/345] Building CXX object main.cpp.o"
	// Group 1: finished steps
	// Group 2: total steps
	ninjaPattern = regexp.MustCompile(`^\[(\d+)/(\d+)\]`)
)

// Tracker reports how far along a build is, judged by the progress prefixes
// the build driver prints. Observation is passive: the observed lines still
// go to every diagnostic parser unchanged.
type Tracker struct {
	percent int
}

// NewTracker creates a tracker with no progress observed yet.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Observe inspects one line. It returns the current percentage and whether
// this line updated it.
func (t *Tracker) Observe(line string) (int, bool) {
	if m := makePattern.FindStringSubmatch(line); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil || n > 100 {
			return t.percent, false
		}
		t.percent = n
		return t.percent, true
	}

	if m := ninjaPattern.FindStringSubmatch(line); m != nil {
		done, err1 := strconv.Atoi(m[1])
		total, err2 := strconv.Atoi(m[2])
		if err1 != nil || err2 != nil || total <= 0 {
			return t.percent, false
		}
		if done > total {
			done = total
		}
		t.percent = done * 100 / total
		return t.percent, true
	}

	return t.percent, false
}

// Percent returns the last observed value, zero before any observation.
func (t *Tracker) Percent() int {
	return t.percent
}

// Reset clears the tracker for a new build.
func (t *Tracker) Reset() {
	t.percent = 0
}
