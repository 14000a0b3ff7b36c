package elaborate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sunholo/vhdlelab/internal/design"
)

// spec.md §8 scenario 2: "Component c with ports (a,b); entity e with
// ports (a,b,extra) where extra has no default. Binding fails with a
// diagnostic naming extra, e, and c."
func TestBindEntityGenericsAndPortsPortCountMismatch(t *testing.T) {
	collab := newTestCollab()
	idents := collab.Idents
	stdLogic := &design.Scalar{Name: "std_logic", Fam: design.FamilyEnum}

	mkPort := func(name string) *design.Port {
		return &design.Port{Name: idents.Intern(name), Dir: design.DirIn, Typ: stdLogic}
	}

	comp := &design.Component{Name: idents.Intern("c"), Ports: []*design.Port{mkPort("a"), mkPort("b")}}
	ent := &design.Entity{Name: idents.Intern("e"), Ports: []*design.Port{mkPort("a"), mkPort("b"), mkPort("extra")}}
	arch := &design.Arch{Name: idents.Intern("rtl"), Primary: ent.Name, Entity: ent}

	ctx := Root0(collab, nil)
	_, ok := ctx.bindEntityGenericsAndPorts(comp, ent, arch)
	require.False(t, ok, "expected binding to fail on port count mismatch")
	require.Len(t, collab.Diag.Diags, 1)

	d := collab.Diag.Diags[0]
	require.Equal(t, "BND002", d.Code)
	for _, want := range []string{"extra", "e", "c"} {
		require.Contains(t, d.Message, want)
	}
}

// A constrained output port with no component counterpart binds Open
// rather than failing (spec.md §4.3.1 default-binding Open-port rule).
func TestBindEntityGenericsAndPortsOutputDefaultsOpen(t *testing.T) {
	collab := newTestCollab()
	idents := collab.Idents
	stdLogic := &design.Scalar{Name: "std_logic", Fam: design.FamilyEnum}

	aPort := &design.Port{Name: idents.Intern("a"), Dir: design.DirIn, Typ: stdLogic}
	outPort := &design.Port{Name: idents.Intern("q"), Dir: design.DirOut, Typ: stdLogic}

	comp := &design.Component{Name: idents.Intern("c"), Ports: []*design.Port{aPort}}
	ent := &design.Entity{Name: idents.Intern("e"), Ports: []*design.Port{aPort, outPort}}
	arch := &design.Arch{Name: idents.Intern("rtl"), Primary: ent.Name, Entity: ent}

	ctx := Root0(collab, nil)
	binding, ok := ctx.bindEntityGenericsAndPorts(comp, ent, arch)
	require.True(t, ok, "expected binding to succeed, diags=%v", collab.Diag.Diags)
	require.Len(t, binding.Params, 2)
	require.Equal(t, design.POpen, binding.Params[1].PKind, "expected unconnected output port to bind Open")
}
