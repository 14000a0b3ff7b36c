package ident

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInternIsPointerStable(t *testing.T) {
	tbl := NewTable()
	a := tbl.Intern("CLK")
	b := tbl.Intern("CLK")
	require.Same(t, a, b, "expected same pointer for repeated intern")
}

func TestInternNormalizesUnicode(t *testing.T) {
	tbl := NewTable()
	// "café" in NFC vs NFD should intern to the same identifier.
	nfc := tbl.Intern("café")
	nfd := tbl.Intern("café")
	require.Same(t, nfc, nfd, "expected NFC/NFD spellings to intern identically")
}

func TestEqualFold(t *testing.T) {
	tbl := NewTable()
	a := tbl.Intern("Clk")
	b := tbl.Intern("CLK")
	require.True(t, EqualFold(a, b), "expected case-insensitive equality")
	require.False(t, EqualFold(a, tbl.Intern("rst")), "expected distinct identifiers to differ")
}

func TestPathGrammarMonotone(t *testing.T) {
	tbl := NewTable()
	root := Root()
	top := root.Label(tbl.Intern("top"))
	u1 := top.Primary(tbl.Intern("u1"), tbl.Intern("rtl")).Label(tbl.Intern("u1"))

	require.True(t, HasPrefix(root, top), "top should extend root")
	require.Equal(t, ":top", top.InstName)
	require.Equal(t, "top", top.Dotted)
	_ = u1
}

func TestIndexedGenerateLabel(t *testing.T) {
	tbl := NewTable()
	gen := Root().Label(tbl.Intern("top")).Indexed(tbl.Intern("gen"), 3)
	require.Equal(t, ":top:gen(3)", gen.InstName)
	require.Equal(t, "top.gen(3)", gen.Dotted)
}
