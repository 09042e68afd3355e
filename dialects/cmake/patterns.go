package cmake

import (
	"regexp"
)

var (
	// blockHeaderPattern matches the header of a located configure-run
	// block; the indented explanation follows on the next lines.
	// Example: "CMake Error at CMakeLists.txt:13 (message):"
	// Group 1: kind ("Error", "Warning", "Deprecation Warning")
	// Group 2: "(dev)" marker, when present
	// Group 3: file path
	// Group 4: line number (1-based)
	// Group 5: the command that raised it, when present
	blockHeaderPattern = regexp.MustCompile(`^CMake (Error|Warning|Deprecation Warning)( \(dev\))? at (.+?):(\d+)(?: \((.+)\))?:$`)

	// bareDiagPattern matches diagnostics with no source location.
	// Example: "CMake Error: The source directory does not exist."
	// Group 1: kind
	// Group 2: message
	bareDiagPattern = regexp.MustCompile(`^CMake (Error|Warning): (.+)$`)
)
