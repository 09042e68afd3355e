package iwyu

import (
	"regexp"
)

// include-what-you-use report patterns.
// A report is a sequence of blocks: inline "should add/remove these lines:"
// suggestions, then a closing "full include-list" block ended by a dashed
// rule. Patterns use lazy quantifiers (.+?) where possible to prevent ReDoS.
var (
	// inlineHeaderPattern matches the inline suggestion header.
	// Example: "/src/main.cc should add these lines:"
	// Group 1: file path
	// Group 2: directionality keyword ("add" or "remove")
	inlineHeaderPattern = regexp.MustCompile(`^(.+?) should (add|remove) these lines:$`)

	// fullListHeaderPattern matches the full include-list header.
	// The tool reports it as a note; it always lists additions.
	// Example: "The full include-list for /src/main.cc:"
	// Group 1: file path
	fullListHeaderPattern = regexp.MustCompile(`^The full include-list for (.+?):$`)

	// removalPattern matches one removal record with its source span.
	// Example: "- #include <vector>  // lines 11-11"
	// Group 1: suggestion text
	// Group 2: start line (1-based)
	// Group 3: end line (1-based)
	removalPattern = regexp.MustCompile(`^- (.+?)\s+// lines (\d+)-(\d+)$`)

	// terminatorPattern matches the dashed rule that ends a report.
	terminatorPattern = regexp.MustCompile(`^-+$`)
)
