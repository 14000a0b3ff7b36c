package elaborate

import (
	"strings"

	"github.com/sunholo/vhdlelab/internal/design"
	"github.com/sunholo/vhdlelab/internal/ident"
	"github.com/sunholo/vhdlelab/internal/library"
)

// DefaultBind implements VHDL default binding (spec.md §4.3.1): LRM 93
// §5.2.2 with the synthesis-tool relaxation of accepting the first
// library-wide match for an unqualified component name. workingLibrary is
// the current working library searched first.
func (c *Ctx) DefaultBind(comp *design.Component, workingLibrary string) (*design.Binding, bool) {
	u, ok := c.Collab.Library.Find(workingLibrary + "." + strings.ToLower(comp.Name.String()))
	if !ok {
		for _, candidate := range c.Collab.Library.AllUnits(workingLibrary) {
			if strings.EqualFold(library.StripEntityName(candidate.Name), comp.Name.String()) {
				u = candidate
				ok = true
				break
			}
		}
	}
	if !ok {
		c.Collab.Diag.Error("BND001", comp.Pos().String(), "no default binding found for component %q", comp.Name)
		return nil, false
	}

	switch obj := u.Obj.(type) {
	case *design.VerilogModule:
		return c.MixedBind(comp, obj)
	case *design.Entity:
		arch, ok := c.ChooseArch(workingLibrary, obj.Name.String())
		if !ok {
			c.Collab.Diag.Fatal("BND001", comp.Pos().String(), "no architecture found for entity %q", obj.Name)
		}
		return c.bindEntityGenericsAndPorts(comp, obj, arch)
	case *design.Arch:
		return c.bindEntityGenericsAndPorts(comp, obj.Entity, obj)
	default:
		c.Collab.Diag.Error("BND001", comp.Pos().String(), "default binding target %q is neither an entity nor a Verilog module", comp.Name)
		return nil, false
	}
}

// bindEntityGenericsAndPorts matches every entity generic/port to its
// component counterpart by case-insensitive identifier (spec.md
// §4.3.1).
func (c *Ctx) bindEntityGenericsAndPorts(comp *design.Component, ent *design.Entity, arch *design.Arch) (*design.Binding, bool) {
	ok := true
	genmaps := make([]*design.Param, 0, len(ent.Generics))
	for i, eg := range ent.Generics {
		cg := findGeneric(comp.Generics, eg.Name)
		switch {
		case cg != nil && eg.Typ.Family() == design.FamilyPackage:
			genmaps = append(genmaps, &design.Param{PKind: design.PPos, Pos_: i, Value: &design.Ref{Name: cg.Name, To: cg, Typ: cg.Typ}})
		case cg != nil:
			if !eg.Typ.Equal(cg.Typ) {
				c.Collab.Diag.Error("BND004", eg.Pos().String(), "generic %q: type mismatch between entity %q and component %q", eg.Name, ent.Name, comp.Name)
				ok = false
				continue
			}
			genmaps = append(genmaps, &design.Param{PKind: design.PPos, Pos_: i, Value: &design.Ref{Name: cg.Name, To: cg, Typ: cg.Typ}})
		case eg.Default != nil:
			// A literal default is reused verbatim; any other default is
			// carried as Open.
			val := eg.Default
			if _, isLit := val.(*design.Literal); !isLit {
				val = &design.Open{Typ: eg.Typ}
			}
			genmaps = append(genmaps, &design.Param{PKind: design.PPos, Pos_: i, Value: val})
		default:
			c.Collab.Diag.Error("BND003", eg.Pos().String(), "generic %q has no component counterpart and no default", eg.Name)
			ok = false
		}
	}

	params := make([]*design.Param, 0, len(ent.Ports))
	for i, ep := range ent.Ports {
		cp := findPort(comp.Ports, ep.Name)
		switch {
		case cp != nil:
			if !ep.Typ.Equal(cp.Typ) {
				c.Collab.Diag.Error("BND004", ep.Pos().String(), "port %q: type mismatch between entity %q and component %q", ep.Name, ent.Name, comp.Name)
				ok = false
				continue
			}
			params = append(params, &design.Param{PKind: design.PPos, Pos_: i, Value: &design.Ref{Name: cp.Name, To: cp, Typ: cp.Typ}})
		case ep.Default != nil || (ep.Dir == design.DirOut && ep.Typ.Constrained()):
			params = append(params, &design.Param{PKind: design.POpen, Pos_: i})
		default:
			c.Collab.Diag.Error("BND002", ep.Pos().String(), "port %q of entity %q has no component counterpart %q", ep.Name, ent.Name, comp.Name)
			ok = false
		}
	}

	if !ok {
		return nil, false
	}
	return &design.Binding{Ident: ent.Name, Ref: arch, Class: design.ClassEntity, Genmaps: genmaps, Params: params}, true
}

func findGeneric(gens []*design.Generic, name *ident.Ident) *design.Generic {
	for _, g := range gens {
		if ident.EqualFold(g.Name, name) {
			return g
		}
	}
	return nil
}

func findPort(ports []*design.Port, name *ident.Ident) *design.Port {
	for _, p := range ports {
		if ident.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}
