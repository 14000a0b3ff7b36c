package modcache

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sunholo/vhdlelab/internal/design"
	"github.com/sunholo/vhdlelab/internal/ident"
)

func TestGetIsIdempotent(t *testing.T) {
	c := New()
	mod := &design.VerilogModule{Ident: ident.NewTable().Intern("adder")}

	calls := 0
	build := func(m *design.VerilogModule) (any, *design.Block, *design.VerilogWrap) {
		calls++
		return "shape", &design.Block{Name: "adder"}, &design.VerilogWrap{Back: m}
	}

	e1 := c.Get(mod, build)
	e2 := c.Get(mod, build)

	require.Equal(t, 1, calls, "expected builder called once")
	require.Same(t, e1, e2, "expected same cached entry on repeated Get")
	require.Equal(t, 1, c.Len(), "expected 1 cached module")
}

func TestFreeRejectsFurtherGet(t *testing.T) {
	c := New()
	mod := &design.VerilogModule{Ident: ident.NewTable().Intern("m")}
	c.Get(mod, func(m *design.VerilogModule) (any, *design.Block, *design.VerilogWrap) {
		return nil, nil, nil
	})
	c.Free()

	require.Panics(t, func() {
		c.Get(mod, func(m *design.VerilogModule) (any, *design.Block, *design.VerilogWrap) {
			return nil, nil, nil
		})
	}, "expected panic after Free")
}

func TestDistinctModulesCachedSeparately(t *testing.T) {
	c := New()
	tbl := ident.NewTable()
	modA := &design.VerilogModule{Ident: tbl.Intern("a")}
	modB := &design.VerilogModule{Ident: tbl.Intern("b")}

	build := func(m *design.VerilogModule) (any, *design.Block, *design.VerilogWrap) {
		return m.Ident.String(), nil, nil
	}

	ea := c.Get(modA, build)
	eb := c.Get(modB, build)
	require.NotEqual(t, ea.Shape, eb.Shape, "expected distinct shapes for distinct modules")
	require.Equal(t, 2, c.Len(), "expected 2 cached modules")
}
