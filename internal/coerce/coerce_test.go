package coerce

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMixedTableInputBind(t *testing.T) {
	c, ok := Mixed.Lookup(Logic(), StdLogic())
	require.True(t, ok, "expected logic->std_logic conversion")
	require.Equal(t, "to_stdlogic_from_logic", c.FuncName)
}

func TestMixedTableOutputBind(t *testing.T) {
	c, ok := Mixed.Lookup(StdULogic(), NetValue())
	require.True(t, ok, "expected std_ulogic->net_value conversion")
	require.True(t, c.Result.Equal(NetValue()), "unexpected result type: %s", c.Result)
}

func TestMixedTableUnmatchedPairFails(t *testing.T) {
	_, ok := Mixed.Lookup(StdLogic(), StdULogic())
	require.False(t, ok, "expected no conversion between two VHDL types in the mixed table")
}

func TestVerilogVerilogArrayConversions(t *testing.T) {
	c, ok := VerilogVerilog.Lookup(NetArray(), LogicArray())
	require.True(t, ok, "expected net_array->logic_array conversion")
	require.Equal(t, "logic_array_from_net_array", c.FuncName)

	_, ok = VerilogVerilog.Lookup(WireArray(), NetArray())
	require.False(t, ok, "wire_array->net_array is not a direct table entry")
}

func TestTableResolvesOnce(t *testing.T) {
	// Lookup triggers ensure(); calling it twice must not rebuild or
	// change results (spec.md's "resolved once ... matched by type
	// equality" contract).
	first, _ := Mixed.Lookup(Logic(), StdLogic())
	second, _ := Mixed.Lookup(Logic(), StdLogic())
	require.Equal(t, first.FuncName, second.FuncName, "table rebuilt between lookups")
}
