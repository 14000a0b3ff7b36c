package elaborate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sunholo/vhdlelab/internal/design"
)

// spec.md §8 scenario 4: "Component c with an input port clk of type
// std_logic, bound to a Verilog module whose matching input port is of
// type logic. The bound param wraps the component's clk reference in a
// to_stdlogic_from_logic ConvFunc."
func TestMixedBindCoercesInputPort(t *testing.T) {
	collab := newTestCollab()
	idents := collab.Idents
	stdLogic := &design.Scalar{Name: "std_logic", Fam: design.FamilyEnum}
	vLogic := &design.VerilogType{Name: "logic"}

	clk := idents.Intern("clk")
	compPort := &design.Port{Name: clk, Dir: design.DirIn, Typ: stdLogic}
	comp := &design.Component{Name: idents.Intern("c"), Ports: []*design.Port{compPort}}

	modPort := &design.VPort{Ident: clk, Ident2: clk, Dir: design.DirIn, Typ: vLogic}
	mod := &design.VerilogModule{Ident: idents.Intern("m"), Ports: []*design.VPort{modPort}}

	ctx := Root0(collab, nil)
	binding, ok := ctx.MixedBind(comp, mod)
	require.True(t, ok, "expected mixed binding to succeed, diags=%v", collab.Diag.Diags)
	require.Len(t, binding.Params, 1)

	conv, ok := binding.Params[0].Value.(*design.ConvFunc)
	require.True(t, ok, "expected param value to be a ConvFunc, got %T", binding.Params[0].Value)
	require.Equal(t, "to_stdlogic_from_logic", conv.FuncName)

	ref, ok := conv.Arg.(*design.Ref)
	require.True(t, ok, "expected ConvFunc to wrap a Ref, got %T", conv.Arg)
	require.Same(t, compPort, ref.To, "expected ConvFunc to wrap a Ref to the component port")
}

// An unmatched component port (no Verilog port shares its ident2) fails
// the binding with a diagnostic naming the component port.
func TestMixedBindUnmatchedComponentPortFails(t *testing.T) {
	collab := newTestCollab()
	idents := collab.Idents
	stdLogic := &design.Scalar{Name: "std_logic", Fam: design.FamilyEnum}

	compPort := &design.Port{Name: idents.Intern("rst"), Dir: design.DirIn, Typ: stdLogic}
	comp := &design.Component{Name: idents.Intern("c"), Ports: []*design.Port{compPort}}
	mod := &design.VerilogModule{Ident: idents.Intern("m")}

	ctx := Root0(collab, nil)
	_, ok := ctx.MixedBind(comp, mod)
	require.False(t, ok, "expected mixed binding to fail on unmatched component port")
	require.Len(t, collab.Diag.Diags, 1)
	require.Equal(t, "BND006", collab.Diag.Diags[0].Code)
}
