package design

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sunholo/vhdlelab/internal/ident"
)

func TestCopierBreaksSharing(t *testing.T) {
	tbl := ident.NewTable()
	intTyp := &Scalar{Name: "integer", Fam: FamilyInteger}

	entity := &Entity{
		Node: Node{K: KEntity},
		Name: tbl.Intern("foo"),
		Generics: []*Generic{
			{Node: Node{K: KGeneric}, Name: tbl.Intern("WIDTH"), Typ: intTyp, HasIdent_: true},
		},
		Ports: []*Port{
			{Node: Node{K: KPort}, Name: tbl.Intern("clk"), Typ: intTyp},
		},
	}

	c := &Copier{}
	clone := c.Copy(entity).(*Entity)

	require.NotSame(t, entity, clone, "expected a fresh Entity pointer")
	require.NotSame(t, entity.Generics[0], clone.Generics[0], "expected a fresh Generic pointer")
	require.NotSame(t, entity.Ports[0], clone.Ports[0], "expected a fresh Port pointer")
	// Identifiers remain interned (shared by pointer) across the copy.
	require.Same(t, entity.Name, clone.Name, "expected identifier to remain interned")
}

func TestCopierForGenerateBody(t *testing.T) {
	tbl := ident.NewTable()
	fg := &ForGenerate{
		Node:   Node{K: KForGenerate},
		Label:  tbl.Intern("gen"),
		Genvar: tbl.Intern("i"),
		Low:    &Literal{Node: Node{K: KLiteral}, LKind: LInt, Int: 1},
		High:   &Literal{Node: Node{K: KLiteral}, LKind: LInt, Int: 3},
		Body: []Object{
			&Instance{Node: Node{K: KInstance}, Label: tbl.Intern("u1")},
		},
	}
	c := &Copier{}
	clone := c.Copy(fg).(*ForGenerate)
	require.NotSame(t, fg.Body[0], clone.Body[0], "expected body statements to be copied")
}
