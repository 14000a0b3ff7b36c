package elaborate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sunholo/vhdlelab/internal/design"
	"github.com/sunholo/vhdlelab/internal/library"
)

// spec.md §8 scenario 5: top-level entity top with one generic
// WIDTH:integer:=8, override WIDTH=16 consumed into the root block's
// genmap, and an unrelated override UNUSED=7 that is never consumed and
// so produces exactly one GEX003 warning naming it.
func TestElaborateRootConsumesTopLevelOverride(t *testing.T) {
	collab := newTestCollab()
	idents := collab.Idents
	integer := &design.Scalar{Name: "integer", Fam: design.FamilyInteger}

	width := &design.Generic{Name: idents.Intern("WIDTH"), Typ: integer, Default: &design.Literal{LKind: design.LInt, Int: 8, Typ: integer}}
	ent := &design.Entity{Name: idents.Intern("top"), Generics: []*design.Generic{width}}
	arch := &design.Arch{Name: idents.Intern("rtl"), Primary: ent.Name, Entity: ent}

	lib := collab.Library.(*library.InMemory)
	lib.Add(&library.Unit{Library: "work", Name: "top-rtl", Kind: design.KArch, MTime: 1, Obj: arch})

	collab.Overrides.Set(".WIDTH", "16")
	collab.Overrides.Set("UNUSED", "7")

	block := ElaborateRoot(collab, ent)
	require.NotNil(t, block, "expected a non-nil elaboration tree, diags=%v", collab.Diag.Diags)
	require.Len(t, block.Genmaps, 1)

	lit, ok := block.Genmaps[0].Value.(*design.Literal)
	require.True(t, ok, "expected genmap value to be a literal, got %T", block.Genmaps[0].Value)
	require.Equal(t, int64(16), lit.Int, "expected WIDTH genmap value 16")

	require.Len(t, collab.Diag.Warnings, 1, "expected exactly one warning for the unused override")
	require.Contains(t, collab.Diag.Warnings[0].Message, "UNUSED")
}
