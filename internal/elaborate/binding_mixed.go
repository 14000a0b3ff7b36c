package elaborate

import (
	"github.com/sunholo/vhdlelab/internal/coerce"
	"github.com/sunholo/vhdlelab/internal/design"
	"github.com/sunholo/vhdlelab/internal/ident"
)

// MixedBind implements VHDL-component-to-Verilog-module binding
// (spec.md §4.3.3): iterate the module's ports in source order, match
// each against the component port whose identifier equals the Verilog
// port's Ident2, coerce input/output ports through the static tables,
// and report any unmatched component port afterward.
func (c *Ctx) MixedBind(comp *design.Component, mod *design.VerilogModule) (*design.Binding, bool) {
	matched := make([]bool, len(comp.Ports))
	params := make([]*design.Param, 0, len(mod.Ports))
	haveNamed := false
	ok := true

	for _, vp := range mod.Ports {
		cp, idx := findPortByIdent2(comp.Ports, vp.Ident2)
		if cp == nil {
			c.Collab.Diag.Error("CNS002", vp.Pos().String(), "component %q has no port matching Verilog port %q (ident2 %q)", comp.Name, vp.Ident, vp.Ident2)
			ok = false
			continue
		}
		matched[idx] = true

		compRef := &design.Ref{Name: cp.Name, To: cp, Typ: cp.Typ}

		if vp.Dir == design.DirIn {
			conv, found := coerce.Mixed.Lookup(vp.Typ, cp.Typ)
			if !found {
				c.Collab.Diag.Error("BND005", vp.Pos().String(), "no VHDL<-Verilog coercion from %s to %s for port %q", vp.Typ, cp.Typ, vp.Ident)
				ok = false
				continue
			}
			conv_ := &design.ConvFunc{FuncName: conv.FuncName, Arg: compRef, Result: conv.Result}
			if !haveNamed {
				params = append(params, &design.Param{PKind: design.PPos, Pos_: len(params), Value: conv_})
			} else {
				params = append(params, &design.Param{PKind: design.PNamed, Name: vp.Ident, Value: conv_})
			}
		} else {
			conv, found := coerce.Mixed.Lookup(cp.Typ, vp.Typ)
			if !found {
				c.Collab.Diag.Error("BND005", vp.Pos().String(), "no Verilog<-VHDL coercion from %s to %s for port %q", cp.Typ, vp.Typ, vp.Ident)
				ok = false
				continue
			}
			conv_ := &design.ConvFunc{FuncName: conv.FuncName, Arg: compRef, Result: conv.Result}
			params = append(params, &design.Param{PKind: design.PNamed, Name: vp.Ident, Value: conv_})
			haveNamed = true
		}
	}

	for i, cp := range comp.Ports {
		if !matched[i] {
			c.Collab.Diag.Error("BND006", cp.Pos().String(), "component port %q of %q has no corresponding Verilog module port", cp.Name, comp.Name)
			ok = false
		}
	}

	if !ok {
		return nil, false
	}
	return &design.Binding{
		Ident: mod.Ident,
		Ref:   &design.VerilogWrap{Ident: mod.Ident, Wrapped: mod, Back: mod},
		Class: design.ClassEntity,
		Params: params,
	}, true
}

func findPortByIdent2(ports []*design.Port, ident2 *ident.Ident) (*design.Port, int) {
	for i, p := range ports {
		if p.Name2 != nil && p.Name2.String() == ident2.String() {
			return p, i
		}
	}
	return nil, -1
}
