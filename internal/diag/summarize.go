package diag

import (
	"fmt"
	"strings"

	"github.com/sunholo/vhdlelab/internal/design"
)

// SummarizeGenmap pretty-prints a genmap for the lowering hint described in
// spec.md §7: "a pretty-printed summary of each generic actual (literals
// verbatim; refs by name; aggregates expanded to (…); unknown kinds
// rendered as ...)".
func SummarizeGenmap(genmap []*design.Param) string {
	parts := make([]string, len(genmap))
	for i, p := range genmap {
		parts[i] = summarizeValue(p.Value)
	}
	return strings.Join(parts, ", ")
}

func summarizeValue(v design.Object) string {
	switch n := v.(type) {
	case *design.Literal:
		return n.String()
	case *design.Ref:
		return n.Name.String()
	case *design.Aggregate:
		inner := make([]string, len(n.Elements))
		for i, e := range n.Elements {
			inner[i] = summarizeValue(e)
		}
		return "(" + strings.Join(inner, ", ") + ")"
	case *design.Open:
		return "open"
	case nil:
		return "..."
	default:
		return "..."
	}
}

// FormatHintChain joins a hint stack into the multi-line form attached to a
// Diagnostic.
func FormatHintChain(hints []string) string {
	return fmt.Sprintf("while elaborating:\n  %s", strings.Join(hints, "\n  "))
}
