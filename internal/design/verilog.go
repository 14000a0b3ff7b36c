package design

import (
	"fmt"

	"github.com/sunholo/vhdlelab/internal/ident"
)

// VKind tags Verilog-side nodes. Disjoint from Kind by construction: nothing
// ever compares a Kind to a VKind, and VObject is a distinct interface from
// Object, so the two sum types cannot be mixed up at compile time.
type VKind string

const (
	VModule   VKind = "V_MODULE"
	VModInst  VKind = "V_MOD_INST"
	VPortDecl VKind = "V_PORT_DECL"
	VRef      VKind = "V_REF"
	VStmt     VKind = "V_STMT" // catch-all for statements copied through verbatim
)

// VObject is any Verilog-side node.
type VObject interface {
	Pos() Pos
	VKind() VKind
	vobject()
	fmt.Stringer
}

// VNode is embedded by every concrete VObject.
type VNode struct {
	At Pos
	K  VKind
}

func (n VNode) Pos() Pos    { return n.At }
func (n VNode) VKind() VKind { return n.K }
func (VNode) vobject()      {}

// VerilogModule is a top-level Verilog module definition.
type VerilogModule struct {
	VNode
	Ident *ident.Ident // case-sensitive module name
	Ports []*VPort
}

func (m *VerilogModule) String() string { return "module " + m.Ident.String() }

// VPort is a Verilog module port declaration. Index within Module.Ports is
// significant: it also indexes the synthetic VHDL Block's port list built
// by the module cache (spec.md §4.3.3).
type VPort struct {
	VNode
	Ident  *ident.Ident // the Verilog formal name
	Ident2 *ident.Ident // the cross-language (VHDL-facing) name to match against a component port
	Dir    Direction
	Typ    Type
}

func (p *VPort) String() string { return p.Ident.String() }

// VModuleInst is a Verilog module instantiation statement.
type VModuleInst struct {
	VNode
	Label      *ident.Ident
	ModuleName *ident.Ident // case-sensitive, must match VerilogModule.Ident exactly
	Conns      []*VConn
}

func (i *VModuleInst) String() string { return i.Label.String() + " : " + i.ModuleName.String() }

// VConn is one positional connection in a Verilog instantiation
// (spec.md §4.3.4).
type VConn struct {
	SignalName *ident.Ident
}

// VRefNode is a reference to a declaration or port inside a Verilog module
// body, resolved against the enclosing output block (spec.md §4.3.4).
type VRefNode struct {
	VNode
	Name *ident.Ident
	Typ  Type
}

func (r *VRefNode) String() string { return r.Name.String() }

// VStmtNode is any other Verilog statement, copied through verbatim by the
// recursor (spec.md §4.6 "Verilog statement": "Otherwise copy the wrapped
// statement through").
type VStmtNode struct {
	VNode
	Payload string
}

func (s *VStmtNode) String() string { return "vstmt:" + s.Payload }

// VerilogWrap is the VHDL-side wrapper Object carrying a Verilog node, the
// bridge the recursor dispatches on (spec.md §4.6 "Verilog statement").
type VerilogWrap struct {
	Node
	Ident   *ident.Ident
	Wrapped VObject
	Back    *VerilogModule // back-pointer to the owning module, when Wrapped is a module-level construct
}

func (v *VerilogWrap) String() string { return "verilog(" + v.Wrapped.String() + ")" }
