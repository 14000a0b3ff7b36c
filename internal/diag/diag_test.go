package diag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngineGatesOnErrors(t *testing.T) {
	e := NewEngine()
	require.False(t, e.HasErrors(), "fresh engine should have no errors")
	e.Error(BND002, "foo.vhd:3:1", "port count mismatch for %s", "extra")
	require.True(t, e.HasErrors(), "expected HasErrors after recording an error")
	require.Equal(t, BND002, e.Diags[0].Code)
}

func TestHintStackUnwinds(t *testing.T) {
	e := NewEngine()
	e.PushHint(InstanceHint("u1"))
	e.Error(BND001, "", "boom")
	require.Len(t, e.Diags[0].Hints, 1, "expected one hint on the diagnostic")

	e.PopHint()
	e.Error(BND001, "", "boom again")
	require.Empty(t, e.Diags[1].Hints, "expected no hints after pop")
}

func TestFatalPanicsWithFatalError(t *testing.T) {
	e := NewEngine()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		fe, ok := r.(*FatalError)
		require.True(t, ok, "expected *FatalError, got %T", r)
		require.Equal(t, STR002, fe.Code)
	}()
	e.Fatal(STR002, "", "maximum instantiation depth of 127 reached")
}

func TestErrorCodeRegistryPhases(t *testing.T) {
	require.True(t, IsBindingError(BND001), "BND001 should be a binding error")
	require.True(t, IsStructuralError(STR002), "STR002 should be a structural error")
	require.True(t, IsFatalTrace(FAT001), "FAT001 should be a fatal trace")
	require.False(t, IsBindingError(STR002), "STR002 should not be classified as binding")
}
