package output

import (
	"encoding/json"
	"io"

	"github.com/handleui/winnow/diag"
)

// FormatJSON formats a diagnostic collection as indented JSON.
// Returns error if JSON marshaling or writing fails.
func FormatJSON(w io.Writer, coll *diag.Collection) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(coll)
}
