package driveranalysis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sunholo/vhdlelab/internal/design"
	"github.com/sunholo/vhdlelab/internal/ident"
)

var tbl = ident.NewTable()

func TestAnalyseInstanceTracksOutputDriver(t *testing.T) {
	entity := &design.Entity{
		Name: tbl.Intern("adder"),
		Ports: []*design.Port{
			{Name: tbl.Intern("a"), Dir: design.DirIn},
			{Name: tbl.Intern("sum"), Dir: design.DirOut},
		},
	}
	inst := &design.Instance{
		Label:    tbl.Intern("u1"),
		Resolved: entity,
		Params: []*design.Param{
			{PKind: design.PPos, Pos_: 0, Value: &design.Ref{Name: tbl.Intern("x")}},
			{PKind: design.PPos, Pos_: 1, Value: &design.Ref{Name: tbl.Intern("y")}},
		},
	}

	ds := Default{}.Analyse([]design.Object{inst})
	require.True(t, ds.Contains("y"), "expected y to be driven, got %v", ds.Names())
	require.False(t, ds.Contains("x"), "did not expect x (an input) to be driven")
}

func TestAnalyseRecursesIntoForGenerate(t *testing.T) {
	entity := &design.Entity{
		Name: tbl.Intern("buf"),
		Ports: []*design.Port{
			{Name: tbl.Intern("o"), Dir: design.DirOut},
		},
	}
	inst := &design.Instance{
		Resolved: entity,
		Params: []*design.Param{
			{PKind: design.PPos, Pos_: 0, Value: &design.Ref{Name: tbl.Intern("z")}},
		},
	}
	fg := &design.ForGenerate{Body: []design.Object{inst}}

	ds := Default{}.Analyse([]design.Object{fg})
	require.True(t, ds.Contains("z"), "expected z to be driven via nested generate, got %v", ds.Names())
}

func TestUnionMerges(t *testing.T) {
	a := NewDriverSet()
	a.Add("p")
	b := NewDriverSet()
	b.Add("q")
	a.Union(b)
	require.True(t, a.Contains("p") && a.Contains("q"), "expected union of both, got %v", a.Names())
}
