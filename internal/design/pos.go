package design

import "fmt"

// Pos is a source location, supplied by the tree builder and threaded
// through every node elaboration creates or copies.
type Pos struct {
	File string
	Line int
	Col  int
}

func (p Pos) String() string {
	if p.File == "" {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Col)
}

// Before reports whether p has a strictly smaller line number than q,
// used by the architecture chooser's same-timestamp tie-break
// (spec.md §4.1: "greater-or-equal first line number wins").
func (p Pos) Before(q Pos) bool { return p.Line < q.Line }
