// Package coerce implements the static VHDL<->Verilog and Verilog<->Verilog
// coercion tables described in spec.md §4.3/§6. Each table is a registry of
// conversion functions keyed by symbolic type names, resolved once to
// canonical design.Type handles behind a sync.Once the first time it is
// consulted — the same "resolve once, memoize locally" shape the design
// notes (spec.md §9) prescribe in place of the source's process-wide
// INIT_ONCE globals, and the pattern the teacher uses for its
// DictionaryRegistry of class instances.
package coerce

import (
	"sync"

	"github.com/sunholo/vhdlelab/internal/design"
)

// Conversion is one entry: the function to wrap the value in, and its
// result type.
type Conversion struct {
	FuncName string
	Result   design.Type
}

// Table resolves (from, to) type-name pairs to a Conversion.
type Table struct {
	once    sync.Once
	build   func() map[key]Conversion
	entries map[key]Conversion
}

type key struct{ From, To string }

func newTable(build func() map[key]Conversion) *Table {
	return &Table{build: build}
}

func (t *Table) ensure() {
	t.once.Do(func() { t.entries = t.build() })
}

// Lookup resolves a conversion for (fromType -> toType), matched by type
// name equality, as spec.md §4.3 "Coercion tables" requires: "Unmatched
// pairs yield binding errors (not silent)."
func (t *Table) Lookup(from, to design.Type) (Conversion, bool) {
	t.ensure()
	c, ok := t.entries[key{From: from.String(), To: to.String()}]
	return c, ok
}

var stdLogic = &design.Scalar{Name: "std_logic", Fam: design.FamilyEnum}
var stdULogic = &design.Scalar{Name: "std_ulogic", Fam: design.FamilyEnum}
var vLogic = &design.VerilogType{Name: "logic"}
var vNetValue = &design.VerilogType{Name: "net_value"}
var vWireArray = &design.VerilogType{Name: "wire_array"}
var vNetArray = &design.VerilogType{Name: "net_array"}
var vLogicArray = &design.VerilogType{Name: "logic_array"}

// Mixed is the VHDL-component-to-Verilog-module coercion table
// (spec.md §4.3.3): input ports find a VHDL->Verilog conversion, output
// ports a Verilog->VHDL conversion.
var Mixed = newTable(func() map[key]Conversion {
	return map[key]Conversion{
		// input bind: component (VHDL) value flows into a Verilog input port.
		{From: vLogic.String(), To: stdLogic.String()}:    {FuncName: "to_stdlogic_from_logic", Result: stdLogic},
		{From: vNetValue.String(), To: stdLogic.String()}: {FuncName: "to_stdlogic_from_net_value", Result: stdLogic},
		// output bind: Verilog output port value flows into the component (VHDL) port.
		{From: stdULogic.String(), To: vLogic.String()}:    {FuncName: "to_logic_from_stdulogic", Result: vLogic},
		{From: stdULogic.String(), To: vNetValue.String()}: {FuncName: "to_net_value_from_stdulogic", Result: vNetValue},
	}
})

// VerilogVerilog is the Verilog-instance-into-Verilog-module coercion table
// (spec.md §4.3.4): arrays and scalar variants between logic, net value,
// wire array, net array, logic array.
var VerilogVerilog = newTable(func() map[key]Conversion {
	return map[key]Conversion{
		{From: vNetValue.String(), To: vLogic.String()}: {FuncName: "logic_from_net_value", Result: vLogic},
		{From: vLogic.String(), To: vNetValue.String()}: {FuncName: "net_value_from_logic", Result: vNetValue},

		{From: vNetArray.String(), To: vLogicArray.String()}:  {FuncName: "logic_array_from_net_array", Result: vLogicArray},
		{From: vLogicArray.String(), To: vNetArray.String()}:  {FuncName: "net_array_from_logic_array", Result: vNetArray},
		{From: vWireArray.String(), To: vLogicArray.String()}: {FuncName: "logic_array_from_wire_array", Result: vLogicArray},
		{From: vLogicArray.String(), To: vWireArray.String()}: {FuncName: "wire_array_from_logic_array", Result: vWireArray},
	}
})

// StdLogic / StdULogic / Logic / NetValue / WireArray / NetArray / LogicArray
// export the canonical type handles so callers (binding builders) can
// classify a design.Type before calling Lookup.
func StdLogic() *design.Scalar        { return stdLogic }
func StdULogic() *design.Scalar       { return stdULogic }
func Logic() *design.VerilogType      { return vLogic }
func NetValue() *design.VerilogType   { return vNetValue }
func WireArray() *design.VerilogType  { return vWireArray }
func NetArray() *design.VerilogType   { return vNetArray }
func LogicArray() *design.VerilogType { return vLogicArray }
