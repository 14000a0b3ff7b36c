package inspect

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sunholo/vhdlelab/internal/design"
	"github.com/sunholo/vhdlelab/internal/ident"
)

func buildSampleTree() *design.Block {
	idents := ident.NewTable()
	stdLogic := &design.Scalar{Name: "std_logic", Fam: design.FamilyEnum}
	clk := &design.Port{Name: idents.Intern("clk"), Dir: design.DirIn, Typ: stdLogic}

	child := &design.Block{
		Name: "u0", InstName: "u0", Dotted: "top.u0",
		Ports:  []*design.Port{clk},
		Params: []*design.Param{{Value: &design.Open{Typ: stdLogic}}},
	}
	return &design.Block{Name: "top", Dotted: "top", Children: []*design.Block{child}}
}

func TestSessionListAndCd(t *testing.T) {
	root := buildSampleTree()
	s := New(root)

	var out bytes.Buffer
	s.list(&out)
	require.Contains(t, out.String(), "u0", "expected :ls to list child")

	out.Reset()
	s.cd("u0", &out)
	require.Equal(t, "u0", s.current.Name, "expected to descend into u0")
	require.Contains(t, s.prompt(), "top.u0", "expected prompt to show the current dotted path")

	out.Reset()
	s.cd("..", &out)
	require.Equal(t, "top", s.current.Name, "expected :cd .. to return to root")

	out.Reset()
	s.cd("nonexistent", &out)
	require.Contains(t, out.String(), "no child block named", "expected an error for an unknown child label")
}

func TestSessionPortsShowsDirectionAndValue(t *testing.T) {
	root := buildSampleTree()
	s := New(root)
	s.cd("u0", &bytes.Buffer{})

	var out bytes.Buffer
	s.showPorts(&out)
	require.Contains(t, out.String(), "clk")
	require.Contains(t, out.String(), "in")
}

func TestSessionTreePrintsEveryBlock(t *testing.T) {
	root := buildSampleTree()
	s := New(root)

	var out bytes.Buffer
	s.printTree(&out, root, "")
	require.Contains(t, out.String(), "top")
	require.Contains(t, out.String(), "u0")
}
