// Package design models the tagged-sum design tree elaboration consumes
// from the (external) tree builder and mutates in place: VHDL units,
// declarations and statements, plus a disjoint Verilog node set. The
// pattern — a common embedded Node carrying identity and position, a
// private marker method closing the sum type, exhaustive switches at every
// consumer — mirrors how the teacher's Core ANF tree is built.
package design

import (
	"fmt"

	"github.com/sunholo/vhdlelab/internal/ident"
)

// Kind tags every VHDL-side Object. Kept as a string enum (rather than an
// int iota) so diagnostic output never needs a separate kind->name table.
type Kind string

const (
	KEntity        Kind = "Entity"
	KArch          Kind = "Arch"
	KConfiguration Kind = "Configuration"
	KBlockConfig   Kind = "BlockConfig"
	KPackage       Kind = "Package"
	KPackBody      Kind = "PackBody"
	KPackInst      Kind = "PackInst"
	KComponent     Kind = "Component"
	KInstance      Kind = "Instance"
	KBinding       Kind = "Binding"
	KSpec          Kind = "Spec"
	KParam         Kind = "Param"
	KRef           Kind = "Ref"
	KOpen          Kind = "Open"
	KLiteral       Kind = "Literal"
	KString        Kind = "String"
	KAggregate     Kind = "Aggregate"
	KTypeRef       Kind = "TypeRef"
	KConvFunc      Kind = "ConvFunc"
	KBlock         Kind = "Block"
	KVerilogWrap   Kind = "Verilog"
	KGeneric       Kind = "Generic"
	KPort          Kind = "Port"
	KDecl          Kind = "Decl"
	KHier          Kind = "Hier"
	KProcess       Kind = "Process"
	KPSLDirective  Kind = "PSLDirective"
	KForGenerate   Kind = "ForGenerate"
	KIfGenerate    Kind = "IfGenerate"
	KCaseGenerate  Kind = "CaseGenerate"
	KAttr          Kind = "Attr"
	KBinOp         Kind = "BinOp"
)

// Object is any VHDL-side design tree node.
type Object interface {
	Pos() Pos
	Kind() Kind
	object()
	fmt.Stringer
}

// Node is embedded by every concrete Object; it carries identity and
// location the way the teacher's CoreNode does for Core ANF nodes.
type Node struct {
	At Pos
	K  Kind
}

func (n Node) Pos() Pos   { return n.At }
func (n Node) Kind() Kind { return n.K }
func (Node) object()      {}

// Class distinguishes entity/component/configuration binding classes
// (spec.md §4.3.1: "Class must match exactly").
type Class int

const (
	ClassEntity Class = iota
	ClassComponent
	ClassConfiguration
)

// Direction is a port's mode.
type Direction int

const (
	DirIn Direction = iota
	DirOut
	DirInout
)

// Entity is a VHDL entity interface declaration.
type Entity struct {
	Node
	Name     *ident.Ident
	Generics []*Generic
	Ports    []*Port
}

func (e *Entity) String() string { return "entity " + e.Name.String() }

// Arch is a named architecture body of some primary entity.
type Arch struct {
	Node
	Name    *ident.Ident
	Primary *ident.Ident // entity name, used by prefix[1]
	Entity  *Entity
	Decls   []Object
	Stmts   []Object
	// GlobalFlags mirrors source-level pragmas/attributes that must survive
	// copying verbatim (spec.md §4.6.3 step 2: "the copy must reuse the
	// same global-flag union as the input").
	GlobalFlags uint32
}

func (a *Arch) String() string { return fmt.Sprintf("architecture %s of %s", a.Name, a.Primary) }

// Configuration wraps a single top-level BlockConfig (spec.md Open
// Question: "ndecls == 1" is asserted for explicit bindings with more than
// one decl; anything else is a diagnostic, not silent).
type Configuration struct {
	Node
	Name    *ident.Ident
	Of      *ident.Ident // entity being configured
	Root    *BlockConfig
}

func (c *Configuration) String() string { return "configuration " + c.Name.String() }

// BlockConfig selects an architecture (Ref) and carries nested Specs for
// component configuration (spec.md §4.6.2 step 1).
type BlockConfig struct {
	Node
	Label *ident.Ident // block/generate label this config applies to, "" for root
	Ref   *Arch
	Specs []*Spec
}

func (b *BlockConfig) String() string { return "block configuration " + b.Label.String() }

// Spec is one component-configuration-specification inside a BlockConfig
// (spec.md §4.6.2 step 1, §6 "Configuration semantics").
type Spec struct {
	Node
	ComponentIdent *ident.Ident // ident2: component kind being configured
	InstanceLabel  *ident.Ident // nil + All==true means ALL; nil + All==false means "others"
	All            bool
	Binding        *Binding
}

func (s *Spec) String() string { return "for " + s.ComponentIdent.String() }

// Package, PackBody, PackInst are opaque beyond what generics/fixup needs:
// an ordered declaration list (sub-generics, subprograms, types) so package
// generics can be walked in lockstep (spec.md §4.5).
type Package struct {
	Node
	Name  *ident.Ident
	Decls []Object
}

func (p *Package) String() string { return "package " + p.Name.String() }

type PackBody struct {
	Node
	Of *Package
}

func (p *PackBody) String() string { return "package body " + p.Of.Name.String() }

// PackInst is a package instantiated from a package generic template.
type PackInst struct {
	Node
	Name     *ident.Ident
	Template *Package
	Genmaps  []*Param
}

func (p *PackInst) String() string { return "package instance " + p.Name.String() }

// Component is a local re-declaration of an entity interface.
type Component struct {
	Node
	Name     *ident.Ident
	Generics []*Generic
	Ports    []*Port
}

func (c *Component) String() string { return "component " + c.Name.String() }

// Instance is a component/entity/configuration instantiation statement.
type Instance struct {
	Node
	Label    *ident.Ident
	Class    Class
	RefName  *ident.Ident // name as written, before resolution
	Resolved Object       // Entity | Arch | Component | Configuration, once bound
	Spec     *Spec        // explicit binding indication on the instance itself, if any
	Genmaps  []*Param
	Params   []*Param
}

func (i *Instance) String() string { return i.Label.String() + " : " + i.RefName.String() }

// Binding is the record built fresh by every binding-builder call (spec.md
// §4.3) and discarded once threaded through elab_ports/elab_generics.
type Binding struct {
	Node
	Ident   *ident.Ident
	Ref     Object // Arch for VHDL, *VerilogWrap for mixed/Verilog bindings
	Class   Class
	Genmaps []*Param
	Params  []*Param
}

func (b *Binding) String() string { return "binding " + b.Ident.String() }

// ParamKind distinguishes positional, named, and open actuals.
type ParamKind int

const (
	PPos ParamKind = iota
	PNamed
	POpen
)

// Param is one genmap or port-map entry.
type Param struct {
	Node
	PKind ParamKind
	Pos_  int          // position, meaningful for PPos
	Name  *ident.Ident // formal name, meaningful for PNamed
	Value Object
}

func (p *Param) String() string {
	switch p.PKind {
	case PPos:
		return fmt.Sprintf("param[%d]=%s", p.Pos_, p.Value)
	case PNamed:
		return fmt.Sprintf("param(%s)=%s", p.Name, p.Value)
	default:
		return "open"
	}
}

// Ref is a name reference to some formal/declaration.
type Ref struct {
	Node
	Name *ident.Ident
	To   Object
	Typ  Type
}

func (r *Ref) String() string { return r.Name.String() }

// Open is an unconnected actual.
type Open struct {
	Node
	Typ Type
}

func (o *Open) String() string { return "open" }

// LitKind distinguishes literal value shapes.
type LitKind int

const (
	LInt LitKind = iota
	LPhysical
	LReal
)

// Literal is a scalar constant value.
type Literal struct {
	Node
	LKind LitKind
	Int   int64
	Real  float64
	Unit  *ident.Ident // physical unit, meaningful when LKind == LPhysical
	Typ   Type
}

func (l *Literal) String() string {
	switch l.LKind {
	case LReal:
		return fmt.Sprintf("%g", l.Real)
	case LPhysical:
		return fmt.Sprintf("%d %s", l.Int, l.Unit)
	default:
		return fmt.Sprintf("%d", l.Int)
	}
}

// String_ is a character-array literal (named String_ to avoid clashing
// with fmt.Stringer / the builtin string type).
type String_ struct {
	Node
	Elements []*Ref // one Ref per character literal, in order
	Typ      Type   // the computed constrained subtype
}

func (s *String_) String() string {
	out := ""
	for _, e := range s.Elements {
		out += e.Name.String()
	}
	return out
}

// Aggregate is an aggregate expression; kept opaque (elements are Objects)
// since elaboration only needs to fold or copy it, never interpret it.
type Aggregate struct {
	Node
	Elements []Object
	Typ      Type
}

func (a *Aggregate) String() string { return "aggregate" }

// TypeRef denotes a reference to a type (used for type generics).
type TypeRef struct {
	Node
	Name *ident.Ident
	Typ  Type
}

func (t *TypeRef) String() string { return t.Name.String() }

// ConvFunc wraps a value with a VHDL<->Verilog coercion function
// application (spec.md §4.3.3/§4.3.4).
type ConvFunc struct {
	Node
	FuncName string
	Arg      Object
	Result   Type
}

func (c *ConvFunc) String() string { return c.FuncName + "(" + c.Arg.String() + ")" }

// Generic is a formal generic parameter of an entity/component/package.
type Generic struct {
	Node
	Name    *ident.Ident
	Typ     Type
	Default Object // nil if none
	HasIdent_ bool   // false for anonymous sub-generics synthesized from GTypeArray
}

func (g *Generic) String() string { return g.Name.String() }

// HasIdent reports whether this generic was written with an explicit name,
// as opposed to an anonymous element/index sub-generic synthesized for a
// GTYPE_ARRAY formal (spec.md §4.5).
func (g *Generic) HasIdent() bool { return g.HasIdent_ }

// Port is a formal port of an entity/component.
type Port struct {
	Node
	Name    *ident.Ident
	Name2   *ident.Ident // Verilog-side identifier (ident2), used by mixed binding
	Dir     Direction
	Typ     Type
	Default Object // nil if none
}

func (p *Port) String() string { return p.Name.String() }

// Block is the elaboration *output* node: every pushed scope creates
// exactly one, owning its declarations/ports/genmaps/statement children for
// the lifetime of the output tree (spec.md §3 Lifecycles).
type Block struct {
	Node
	Name     string // "elab_path ':' label"
	InstName string
	Dotted   string
	Ports    []*Port // shared by identity with the entity's port list
	Decls    []Object
	Genmaps  []*Param // resolved generic actuals, aligned to Ports' owning entity's Generics
	Params   []*Param // resolved port actuals, aligned to Ports
	Stmts    []Object
	Children []*Block
}

func (b *Block) String() string { return "block " + b.Name }

// Hier is the declaration pushed into the output block on scope-push
// (spec.md §4.7).
type Hier struct {
	Node
	SourceKind Kind
	InstName   string
	Dotted     string
}

func (h *Hier) String() string { return "hier " + h.InstName }

// Process / PSLDirective are copied into the output block verbatim after
// lowering; elaboration does not descend into them (spec.md §4.6
// "Process, PSL").
type Process struct {
	Node
	Label *ident.Ident
	Body  Object
}

func (p *Process) String() string { return "process" }

type PSLDirective struct {
	Node
	Label *ident.Ident
	Body  Object
}

func (p *PSLDirective) String() string { return "psl directive" }

// ForGenerate / IfGenerate / CaseGenerate are the three generate-statement
// shapes (spec.md §4.6 "Generate statements").
type ForGenerate struct {
	Node
	Label *ident.Ident
	Genvar *ident.Ident
	Low, High Object // range bounds, possibly T'LOW/T'HIGH attribute refs
	Body  []Object
}

func (f *ForGenerate) String() string { return "for " + f.Genvar.String() + " generate" }

type IfGenerate struct {
	Node
	Label      *ident.Ident
	Conds      []Object // one condition per branch
	Bodies     [][]Object
	ElseBody   []Object // nil if no else
	HasElse    bool
}

func (f *IfGenerate) String() string { return "if generate" }

type CaseAlt struct {
	Choices []Object
	IsOthers bool
	Body    []Object
}

type CaseGenerate struct {
	Node
	Label     *ident.Ident
	Selector  Object
	Alts      []CaseAlt
}

func (f *CaseGenerate) String() string { return "case generate" }

// Attr is a type/object attribute reference such as T'LOW or T'HIGH,
// the only non-literal, non-reference expression shape the constant
// folder needs to understand for generate ranges and bounds (spec.md
// §4.6 "for-generate range, possibly an attribute of the index subtype").
type Attr struct {
	Node
	Prefix Object
	Name   string // "low", "high", "length", "range", ...
	Typ    Type
}

func (a *Attr) String() string { return a.Prefix.String() + "'" + a.Name }

// BinOp is a scalar binary operation over already-folded operands,
// the minimal expression shape a generate condition or case selector
// needs beyond plain literals/references (spec.md §4.6 "if-generate
// condition", "case-generate selector").
type BinOp struct {
	Node
	Op    string // "=", "/=", "<", "<=", ">", ">=", "+", "-"
	Left  Object
	Right Object
	Typ   Type
}

func (b *BinOp) String() string { return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right) }
