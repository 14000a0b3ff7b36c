package elaborate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sunholo/vhdlelab/internal/design"
	"github.com/sunholo/vhdlelab/internal/library"
)

// spec.md §8 scenario 1: "Library contains work.foo-rtl (mtime 10) and
// work.foo-tb (mtime 20), both Arch of entity foo. elab on entity foo
// picks foo-tb."
func TestChooseArchPicksLatestMTime(t *testing.T) {
	collab := newTestCollab()
	idents := collab.Idents
	fooName := idents.Intern("foo")
	lib := collab.Library.(*library.InMemory)

	rtl := &design.Arch{Node: design.Node{At: design.Pos{File: "rtl.vhd", Line: 1}}, Name: idents.Intern("rtl"), Primary: fooName}
	tb := &design.Arch{Node: design.Node{At: design.Pos{File: "tb.vhd", Line: 1}}, Name: idents.Intern("tb"), Primary: fooName}

	lib.Add(&library.Unit{Library: "work", Name: "foo-rtl", Kind: design.KArch, MTime: 10, Obj: rtl})
	lib.Add(&library.Unit{Library: "work", Name: "foo-tb", Kind: design.KArch, MTime: 20, Obj: tb})

	ctx := Root0(collab, nil)
	arch, ok := ctx.ChooseArch("work", "foo")
	require.True(t, ok)
	require.Same(t, tb, arch, "expected foo-tb chosen by higher mtime")
}

// spec.md §8 scenario 1 continued: "If both have mtime 20 and reside
// in different files, a warning is emitted and the first-encountered
// is kept."
func TestChooseArchCrossFileTieWarnsAndKeepsFirst(t *testing.T) {
	collab := newTestCollab()
	idents := collab.Idents
	fooName := idents.Intern("foo")
	lib := collab.Library.(*library.InMemory)

	first := &design.Arch{Node: design.Node{At: design.Pos{File: "a.vhd", Line: 5}}, Name: idents.Intern("a"), Primary: fooName}
	second := &design.Arch{Node: design.Node{At: design.Pos{File: "b.vhd", Line: 5}}, Name: idents.Intern("b"), Primary: fooName}

	lib.Add(&library.Unit{Library: "work", Name: "foo-a", Kind: design.KArch, MTime: 20, Obj: first})
	lib.Add(&library.Unit{Library: "work", Name: "foo-b", Kind: design.KArch, MTime: 20, Obj: second})

	ctx := Root0(collab, nil)
	arch, ok := ctx.ChooseArch("work", "foo")
	require.True(t, ok)
	require.Same(t, first, arch, "expected first-encountered architecture kept")
	require.Len(t, collab.Diag.Warnings, 1, "expected exactly one warning on cross-file mtime tie")
}

// Same-mtime, same-file tie breaks on the later line number.
func TestChooseArchSameFileTieBreaksOnLine(t *testing.T) {
	collab := newTestCollab()
	idents := collab.Idents
	fooName := idents.Intern("foo")
	lib := collab.Library.(*library.InMemory)

	earlier := &design.Arch{Node: design.Node{At: design.Pos{File: "both.vhd", Line: 3}}, Name: idents.Intern("a"), Primary: fooName}
	later := &design.Arch{Node: design.Node{At: design.Pos{File: "both.vhd", Line: 30}}, Name: idents.Intern("b"), Primary: fooName}

	lib.Add(&library.Unit{Library: "work", Name: "foo-a", Kind: design.KArch, MTime: 20, Obj: earlier})
	lib.Add(&library.Unit{Library: "work", Name: "foo-b", Kind: design.KArch, MTime: 20, Obj: later})

	ctx := Root0(collab, nil)
	arch, ok := ctx.ChooseArch("work", "foo")
	require.True(t, ok)
	require.Same(t, later, arch, "expected later-line architecture chosen on same-file tie")
	require.Empty(t, collab.Diag.Warnings, "expected no warning on a same-file tie")
}
