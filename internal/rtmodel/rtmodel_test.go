package rtmodel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushPopStrictlyNested(t *testing.T) {
	root := NewRoot()
	u1 := root.Push("top:u1", "top.u1")
	u2 := u1.Push("top:u1:u2", "top.u1.u2")

	require.Equal(t, 2, u2.Depth())
	require.Len(t, u1.Children(), 1, "expected one live child")

	u2.SetBlob("drivers-for-u2")
	blob := u2.Pop()
	require.Equal(t, "drivers-for-u2", blob)
	require.Empty(t, u1.Children(), "expected child removed after pop")
	require.True(t, u2.Finalized(), "expected u2 finalized after pop")
}

func TestPopTwicePanics(t *testing.T) {
	root := NewRoot()
	u1 := root.Push("top:u1", "top.u1")
	u1.Pop()

	require.Panics(t, func() { u1.Pop() }, "expected panic on double pop")
}

func TestSiblingScopesIndependent(t *testing.T) {
	root := NewRoot()
	a := root.Push("top:a", "top.a")
	b := root.Push("top:b", "top.b")

	a.SetBlob(1)
	b.SetBlob(2)

	require.Equal(t, 1, a.Blob())
	require.Equal(t, 2, b.Blob())
	require.Len(t, root.Children(), 2)
}
