package gcc

import (
	"regexp"
)

// GCC/Clang diagnostic patterns. The severity word is matched against the
// closed set the compilers actually print; a free \w+ there would swallow
// arbitrary "tag: text" lines.
var (
	// diagPattern matches the classic one-line diagnostic.
	// Example: "main.cpp:14:10: error: use of undeclared identifier 'foo'"
	// Group 1: file path
	// Group 2: line number (1-based)
	// Group 3: column number (1-based)
	// Group 4: severity word
	// Group 5: message
	diagPattern = regexp.MustCompile(`^(.+?):(\d+):(\d+):\s+(?:fatal\s+)?(error|warning|note|info|remark|hint):\s+(.+)$`)

	// includeFromPattern matches the first line of an include stack.
	// Example: "In file included from /src/foo.h:3,"
	// Group 1: file path
	// Group 2: line number (1-based)
	includeFromPattern = regexp.MustCompile(`^In file included from (.+?):(\d+)[,:]$`)

	// includeContPattern matches include stack continuation lines.
	// Example: "                 from /src/bar.h:7:"
	includeContPattern = regexp.MustCompile(`^\s+from (.+?):(\d+)[,:]$`)

	// contextPattern matches template instantiation context.
	// Example: "main.cpp:10:5:   required from 'void f(T) [with T = int]'"
	// Group 4: the whole context phrase, used as the related message
	contextPattern = regexp.MustCompile(`^(.+?):(\d+):(\d+):\s+((?:required|instantiated) from .+)$`)
)
