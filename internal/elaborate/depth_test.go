package elaborate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sunholo/vhdlelab/internal/design"
	"github.com/sunholo/vhdlelab/internal/library"
)

// spec.md §8 scenario 6: a self-referential architecture (an instance
// whose Resolved names its own architecture) recurses until the depth
// limit of 127 fires exactly once, and the driver returns a null tree.
func TestElaborateRootDepthGuardStopsRecursion(t *testing.T) {
	collab := newTestCollab()
	idents := collab.Idents

	ent := &design.Entity{Name: idents.Intern("top")}
	arch := &design.Arch{Name: idents.Intern("rtl"), Primary: ent.Name, Entity: ent}
	inst := &design.Instance{Label: idents.Intern("u0"), RefName: arch.Name, Resolved: arch}
	arch.Stmts = []design.Object{inst}

	lib := collab.Library.(*library.InMemory)
	lib.Add(&library.Unit{Library: "work", Name: "top-rtl", Kind: design.KArch, MTime: 1, Obj: arch})

	block := ElaborateRoot(collab, ent)
	require.Nil(t, block, "expected a nil elaboration tree once the depth limit fires")

	var depthDiags []string
	for _, d := range collab.Diag.Diags {
		if d.Code == "STR002" {
			depthDiags = append(depthDiags, d.Message)
		}
	}
	require.Len(t, depthDiags, 1, "expected exactly one STR002 diagnostic")
}

// Collab.DepthCap lowers the effective limit below MaxDepth, so the same
// self-referential shape trips the guard after only a handful of levels.
func TestElaborateRootDepthCapOverride(t *testing.T) {
	collab := newTestCollab()
	collab.DepthCap = 2
	idents := collab.Idents

	ent := &design.Entity{Name: idents.Intern("top")}
	arch := &design.Arch{Name: idents.Intern("rtl"), Primary: ent.Name, Entity: ent}
	inst := &design.Instance{Label: idents.Intern("u0"), RefName: arch.Name, Resolved: arch}
	arch.Stmts = []design.Object{inst}

	lib := collab.Library.(*library.InMemory)
	lib.Add(&library.Unit{Library: "work", Name: "top-rtl", Kind: design.KArch, MTime: 1, Obj: arch})

	block := ElaborateRoot(collab, ent)
	require.Nil(t, block, "expected a nil elaboration tree once the lowered cap fires")
	require.Len(t, collab.Diag.Diags, 1)
	require.Equal(t, "STR002", collab.Diag.Diags[0].Code)
}
