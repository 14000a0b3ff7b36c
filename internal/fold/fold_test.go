package fold

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sunholo/vhdlelab/internal/design"
	"github.com/sunholo/vhdlelab/internal/ident"
)

var testTable = ident.NewTable()

func TestFoldLiteral(t *testing.T) {
	d := NewDefault(nil)
	v, ok := d.TryFold(&design.Literal{LKind: design.LInt, Int: 7})
	require.True(t, ok)
	require.Equal(t, int64(7), v.Int)
}

func TestFoldRefFromEnv(t *testing.T) {
	env := NewEnv()
	genvar := testTable.Intern("i")
	env.Bind(genvar, Value{Kind: VInt, Int: 3})

	d := NewDefault(env)
	v, ok := d.TryFold(&design.Ref{Name: genvar})
	require.True(t, ok)
	require.Equal(t, int64(3), v.Int)
}

func TestFoldRefEnumLiteral(t *testing.T) {
	enum := &design.Scalar{Name: "state_t", Fam: design.FamilyEnum, Literals: []string{"idle", "busy"}}
	busy := testTable.Intern("busy")
	d := NewDefault(nil)
	v, ok := d.TryFold(&design.Ref{Name: busy, Typ: enum})
	require.True(t, ok)
	require.Equal(t, VEnum, v.Kind)
	require.Equal(t, 1, v.EnumPos)
}

func TestFoldBinOpComparison(t *testing.T) {
	d := NewDefault(nil)
	expr := &design.BinOp{
		Op:    "<",
		Left:  &design.Literal{Int: 2},
		Right: &design.Literal{Int: 5},
	}
	v, ok := d.TryFold(expr)
	require.True(t, ok)
	require.Equal(t, VBool, v.Kind)
	require.True(t, v.Bool)
}

func TestFoldAttrHighLow(t *testing.T) {
	idxType := &design.Scalar{Name: "idx", Fam: design.FamilyEnum, Literals: []string{"a", "b", "c"}}
	arrType := &design.Array{Elem: idxType, Index: []design.Type{idxType}}
	ref := &design.Ref{Name: testTable.Intern("sig"), Typ: arrType}

	d := NewDefault(nil)
	high, ok := d.TryFold(&design.Attr{Prefix: ref, Name: "high"})
	require.True(t, ok)
	require.Equal(t, int64(2), high.Int)

	low, ok := d.TryFold(&design.Attr{Prefix: ref, Name: "low"})
	require.True(t, ok)
	require.Equal(t, int64(0), low.Int)

	length, ok := d.TryFold(&design.Attr{Prefix: ref, Name: "length"})
	require.True(t, ok)
	require.Equal(t, int64(3), length.Int)
}

func TestEvalCaseMatchesOthersLast(t *testing.T) {
	d := NewDefault(nil)
	alts := []design.CaseAlt{
		{Choices: []design.Object{&design.Literal{Int: 1}}},
		{IsOthers: true},
	}
	idx, ok := d.EvalCase(Value{Kind: VInt, Int: 2}, alts)
	require.True(t, ok, "expected others branch")
	require.Equal(t, 1, idx)

	idx, ok = d.EvalCase(Value{Kind: VInt, Int: 1}, alts)
	require.True(t, ok, "expected first branch")
	require.Equal(t, 0, idx)
}

func TestMustFoldPanicsOnUnresolved(t *testing.T) {
	d := NewDefault(nil)
	require.Panics(t, func() {
		d.MustFold(&design.Ref{Name: testTable.Intern("undefined")})
	})
}
