package elaborate

import (
	"fmt"

	"github.com/sunholo/vhdlelab/internal/design"
)

// Fixup is the substitution mapping built once per instantiation (spec.md
// §4.5): type generics substitute the formal's actual type everywhere a
// TypeRef names the formal (recursing into a GTYPE_ARRAY formal's
// anonymous element/index sub-generics), subprogram generics substitute
// the actual Ref's target for the formal's declaration, and package
// generics substitute the actual package declaration for the formal,
// carrying a per-sub-generic mapping one level deep (see the Open
// Question decision in DESIGN.md: nested package generics are resolved a
// single level only).
type Fixup struct {
	Types       map[string]design.Type
	Subprograms map[string]design.Object
	Packages    map[string]*design.Package
}

func NewFixup() *Fixup {
	return &Fixup{
		Types:       map[string]design.Type{},
		Subprograms: map[string]design.Object{},
		Packages:    map[string]*design.Package{},
	}
}

// BuildFixup walks formals against the already-resolved genmap param list
// in lockstep, producing the substitution mapping (spec.md §4.5). A
// genmap whose formal is package-family but whose actual value carries no
// sub-generic actuals (a bare Ref to a non-generic package) substitutes
// only the package itself, not its contents.
func (c *Ctx) BuildFixup(formals []*design.Generic, genmaps []*design.Param) *Fixup {
	fx := NewFixup()
	for i, g := range formals {
		if i >= len(genmaps) {
			continue
		}
		val := genmaps[i].Value
		switch fam := g.Typ.(type) {
		case *design.GTypeArray:
			fixupTypeArray(fx, g, val)
		case *design.Subprogram:
			if ref, ok := val.(*design.Ref); ok {
				fx.Subprograms[g.Name.String()] = ref.To
			}
		case *design.PackageType:
			fixupPackage(fx, g, fam, val)
		default:
			if tr, ok := val.(*design.TypeRef); ok {
				fx.Types[g.Name.String()] = tr.Typ
			}
		}
	}
	return fx
}

func fixupTypeArray(fx *Fixup, g *design.Generic, val design.Object) {
	tr, ok := val.(*design.TypeRef)
	if !ok {
		return
	}
	fx.Types[g.Name.String()] = tr.Typ
	arr, ok := tr.Typ.(*design.Array)
	if !ok {
		return
	}
	fx.Types[g.Name.String()+".element"] = arr.Elem
	for i, idxTyp := range arr.Index {
		fx.Types[indexSubName(g.Name.String(), i)] = idxTyp
	}
}

func indexSubName(formal string, i int) string {
	return fmt.Sprintf("%s.index[%d]", formal, i)
}

// fixupPackage substitutes the formal package with its actual (a bare Ref
// to a non-generic package, or a PackInst whose Template/Genmaps supply
// one level of sub-generic actuals). Sub-generics that are themselves
// package-family are deliberately not descended into further.
func fixupPackage(fx *Fixup, g *design.Generic, fam *design.PackageType, val design.Object) {
	var actualPkg *design.Package
	var subActuals []*design.Param
	switch a := val.(type) {
	case *design.Ref:
		if pkg, ok := a.To.(*design.Package); ok {
			actualPkg = pkg
		}
	case *design.PackInst:
		actualPkg = a.Template
		subActuals = a.Genmaps
	}
	if actualPkg == nil {
		return
	}
	fx.Packages[g.Name.String()] = actualPkg
	for i, sg := range fam.Subgenerics {
		if i >= len(subActuals) || sg.Kind != design.SubGenericType {
			continue
		}
		if tr, ok := subActuals[i].Value.(*design.TypeRef); ok {
			fx.Types[g.Name.String()+"."+sg.Name] = tr.Typ
		}
	}
}

// Apply rewrites every TypeRef/Ref naming a fixed-up formal within objs,
// in place, mirroring Copier's exhaustive-by-kind recursion (spec.md
// §4.5: fixup is applied to the copied architecture exactly once).
// Opaque statement bodies (Process, PSLDirective) are left untouched:
// fixup only needs to reach declarations and the expressions that
// reference formals directly, never interprets process bodies.
func (fx *Fixup) Apply(objs []design.Object) {
	for _, o := range objs {
		fx.applyOne(o)
	}
}

func (fx *Fixup) applyOne(o design.Object) {
	switch n := o.(type) {
	case *design.TypeRef:
		if t, ok := fx.Types[n.Name.String()]; ok {
			n.Typ = t
		}
	case *design.Ref:
		name := n.Name.String()
		if sub, ok := fx.Subprograms[name]; ok {
			n.To = sub
		}
		if pkg, ok := fx.Packages[name]; ok {
			n.To = pkg
		}
	case *design.Generic:
		fx.applyOne(n.Default)
	case *design.Port:
		fx.applyOne(n.Default)
	case *design.Param:
		fx.applyOne(n.Value)
	case *design.Instance:
		fx.Apply(toObjects(n.Genmaps))
		fx.Apply(toObjects(n.Params))
	case *design.Binding:
		fx.Apply(toObjects(n.Genmaps))
		fx.Apply(toObjects(n.Params))
	case *design.Arch:
		fx.Apply(n.Decls)
		fx.Apply(n.Stmts)
	case *design.PackInst:
		fx.Apply(toObjects(n.Genmaps))
	case *design.ConvFunc:
		fx.applyOne(n.Arg)
	case *design.Attr:
		fx.applyOne(n.Prefix)
	case *design.BinOp:
		fx.applyOne(n.Left)
		fx.applyOne(n.Right)
	case *design.Aggregate:
		fx.Apply(n.Elements)
	case *design.ForGenerate:
		fx.applyOne(n.Low)
		fx.applyOne(n.High)
		fx.Apply(n.Body)
	case *design.IfGenerate:
		fx.Apply(n.Conds)
		for _, b := range n.Bodies {
			fx.Apply(b)
		}
		fx.Apply(n.ElseBody)
	case *design.CaseGenerate:
		fx.applyOne(n.Selector)
		for _, a := range n.Alts {
			fx.Apply(a.Choices)
			fx.Apply(a.Body)
		}
	}
}

func toObjects(params []*design.Param) []design.Object {
	out := make([]design.Object, len(params))
	for i, p := range params {
		out[i] = p
	}
	return out
}
