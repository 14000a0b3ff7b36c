package design

import "fmt"

// Family classifies a Type for the purposes of generic-override text
// parsing (spec.md §4.4) and coercion-table lookups (spec.md §4.3,
// Appendix table in §6).
type Family int

const (
	FamilyEnum Family = iota
	FamilyInteger
	FamilyPhysical
	FamilyReal
	FamilyCharArray
	FamilyArray
	FamilyRecord
	FamilyAccess
	FamilyPackage
	FamilySubprogram
)

func (f Family) String() string {
	switch f {
	case FamilyEnum:
		return "enum"
	case FamilyInteger:
		return "integer"
	case FamilyPhysical:
		return "physical"
	case FamilyReal:
		return "real"
	case FamilyCharArray:
		return "char_array"
	case FamilyArray:
		return "array"
	case FamilyRecord:
		return "record"
	case FamilyAccess:
		return "access"
	case FamilyPackage:
		return "package"
	case FamilySubprogram:
		return "subprogram"
	default:
		return "unknown"
	}
}

// Type is the minimal static-type representation elaboration needs: enough
// to check generic/port type compatibility, drive generic-override parsing,
// and key coercion-table lookups. Full VHDL/Verilog type semantics belong to
// the (external) tree builder and type checker; this is a narrow projection.
type Type interface {
	Family() Family
	String() string
	// Equal reports strict type equality as required for generic and port
	// matching (spec.md §4.3.1: "require type equality; mismatches are
	// diagnostic errors, not warnings").
	Equal(Type) bool
	// Constrained reports whether the type is fully constrained, used by
	// the default-binding Open-port rule (spec.md §4.3.1).
	Constrained() bool
}

// Scalar covers enum, integer, physical and real types.
type Scalar struct {
	Name     string
	Fam      Family
	Literals []string // enum literals, in declared order; nil otherwise
}

func (s *Scalar) Family() Family     { return s.Fam }
func (s *Scalar) String() string     { return s.Name }
func (s *Scalar) Constrained() bool  { return true }
func (s *Scalar) Equal(o Type) bool {
	other, ok := o.(*Scalar)
	return ok && other.Name == s.Name && other.Fam == s.Fam
}

// EnumLiteral returns the index of name within the scalar's literal list,
// or -1. Used by override-text parsing (spec.md §4.4) to build a Ref to the
// matching enum literal.
func (s *Scalar) EnumLiteral(name string) int {
	for i, l := range s.Literals {
		if l == name {
			return i
		}
	}
	return -1
}

// Array is an array type: element type plus one index type per dimension.
// A CharArray (e.g. STRING) is an Array of a character enum.
type Array struct {
	Elem        Type
	Index       []Type
	constrained bool
}

func (a *Array) Family() Family {
	if sc, ok := a.Elem.(*Scalar); ok && sc.Fam == FamilyEnum && isCharacterEnum(sc) {
		return FamilyCharArray
	}
	return FamilyArray
}
func (a *Array) String() string {
	return fmt.Sprintf("array(%s)", a.Elem.String())
}
func (a *Array) Constrained() bool { return a.constrained }
func (a *Array) Equal(o Type) bool {
	other, ok := o.(*Array)
	if !ok || !a.Elem.Equal(other.Elem) || len(a.Index) != len(other.Index) {
		return false
	}
	for i := range a.Index {
		if !a.Index[i].Equal(other.Index[i]) {
			return false
		}
	}
	return true
}

// NewConstrainedArray builds a fully constrained array type, e.g. the
// synthesized subtype of a character-array generic override actual
// (spec.md §4.4 "character array -> String built of character Refs with
// subtype computed from the actual element sequence").
func NewConstrainedArray(elem Type, length int) *Array {
	return &Array{
		Elem:        elem,
		Index:       []Type{&Scalar{Name: "natural_range", Fam: FamilyInteger}},
		constrained: length >= 0,
	}
}

func isCharacterEnum(s *Scalar) bool { return s.Name == "character" }

// PackageType is the type-level stand-in for a package generic's formal
// interface: an ordered list of named sub-generics (spec.md §4.5).
type PackageType struct {
	Name  string
	Subgenerics []*SubGeneric
}

// SubGeneric describes one sub-generic declared inside a formal package,
// used by instance fixup to walk formal and actual packages in lockstep
// (spec.md §4.5).
type SubGeneric struct {
	Name string
	Kind SubGenericKind
	Type Type // meaningful when Kind == SubGenericType
}

type SubGenericKind int

const (
	SubGenericValue SubGenericKind = iota
	SubGenericType
	SubGenericSubprogram
)

func (p *PackageType) Family() Family    { return FamilyPackage }
func (p *PackageType) String() string    { return "package " + p.Name }
func (p *PackageType) Constrained() bool { return true }
func (p *PackageType) Equal(o Type) bool {
	other, ok := o.(*PackageType)
	return ok && other.Name == p.Name
}

// Subprogram is the type-level stand-in for a subprogram generic's formal
// signature.
type Subprogram struct {
	Name   string
	Params []Type
	Return Type // nil for procedures
}

func (s *Subprogram) Family() Family    { return FamilySubprogram }
func (s *Subprogram) String() string    { return "subprogram " + s.Name }
func (s *Subprogram) Constrained() bool { return true }
func (s *Subprogram) Equal(o Type) bool {
	other, ok := o.(*Subprogram)
	return ok && other.Name == s.Name
}

// GTypeArray marks a type-generic formal whose actual must itself be an
// array type, so instance fixup can recurse into its anonymous element and
// index sub-generics (spec.md §4.5, GTYPE_ARRAY).
type GTypeArray struct {
	Name        string
	ElemFormal  Type // anonymous sub-generic, HasIdent() == false
	IndexFormal []Type
}

func (g *GTypeArray) Family() Family    { return FamilyArray }
func (g *GTypeArray) String() string    { return "type " + g.Name }
func (g *GTypeArray) Constrained() bool { return false }
func (g *GTypeArray) Equal(o Type) bool {
	other, ok := o.(*GTypeArray)
	return ok && other.Name == g.Name
}

// VerilogType identifies the small fixed set of Verilog net/value types the
// coercion tables key on (spec.md §6).
type VerilogType struct {
	Name string // "logic", "net_value", "wire_array", "net_array", "logic_array"
}

func (v *VerilogType) Family() Family    { return FamilyInteger }
func (v *VerilogType) String() string    { return v.Name }
func (v *VerilogType) Constrained() bool { return true }
func (v *VerilogType) Equal(o Type) bool {
	other, ok := o.(*VerilogType)
	return ok && other.Name == v.Name
}
