package library

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sunholo/vhdlelab/internal/design"
)

func TestFindRoundTrip(t *testing.T) {
	m := NewInMemory()
	m.Add(&Unit{Library: "work", Name: "foo-rtl", Kind: design.KArch, MTime: 10})

	u, ok := m.Find("work.foo-rtl")
	require.True(t, ok, "expected to find unit")
	require.Equal(t, int64(10), u.MTime)

	_, ok = m.Find("work.missing")
	require.False(t, ok, "expected no match for missing unit")
}

func TestAllUnitsDeterministicOrder(t *testing.T) {
	m := NewInMemory()
	m.Add(&Unit{Library: "work", Name: "foo-rtl", Kind: design.KArch, MTime: 10})
	m.Add(&Unit{Library: "work", Name: "foo-tb", Kind: design.KArch, MTime: 20})
	m.Add(&Unit{Library: "other", Name: "bar-rtl", Kind: design.KArch, MTime: 5})

	units := m.AllUnits("work")
	require.Len(t, units, 2)
	require.Equal(t, "foo-rtl", units[0].Name)
	require.Equal(t, "foo-tb", units[1].Name)
}

func TestStripEntityName(t *testing.T) {
	require.Equal(t, "foo", StripEntityName("foo-rtl"))
	require.Equal(t, "foo", StripEntityName("foo"))
}
