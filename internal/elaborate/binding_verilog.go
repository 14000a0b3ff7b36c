package elaborate

import (
	"github.com/sunholo/vhdlelab/internal/coerce"
	"github.com/sunholo/vhdlelab/internal/design"
)

// VerilogBind implements Verilog-instance-into-Verilog-module binding
// (spec.md §4.3.4): each positional connection resolves its signal
// against the enclosing output block's ports then its declarations;
// matching types emit a plain positional parameter, mismatched types
// look up a Verilog<->Verilog coercion, and direction decides which
// side (declaration or port) the coercion wraps.
func (c *Ctx) VerilogBind(mod *design.VerilogModule, conns []*design.VConn, outBlock *design.Block) (*design.Binding, bool) {
	if len(conns) != len(mod.Ports) {
		c.Collab.Diag.Error("BND002", mod.Pos().String(), "port count mismatch instantiating module %q: %d connections, %d ports", mod.Ident, len(conns), len(mod.Ports))
		return nil, false
	}

	params := make([]*design.Param, 0, len(conns))
	haveNamed := false
	ok := true

	for i, conn := range conns {
		port := mod.Ports[i]
		sigTyp, sigRef := c.resolveOutputSignal(outBlock, conn)

		if sigTyp != nil && port.Typ != nil && sigTyp.Equal(port.Typ) {
			if !haveNamed {
				params = append(params, &design.Param{PKind: design.PPos, Pos_: i, Value: sigRef})
			} else {
				params = append(params, &design.Param{PKind: design.PNamed, Name: port.Ident, Value: sigRef})
			}
			continue
		}

		var from, to design.Type
		if port.Dir == design.DirIn {
			from, to = sigTyp, port.Typ
		} else {
			from, to = port.Typ, sigTyp
		}
		conv, found := coerce.VerilogVerilog.Lookup(from, to)
		if !found {
			c.Collab.Diag.Error("BND005", port.Pos().String(), "no Verilog<->Verilog coercion from %s to %s for port %q", from, to, port.Ident)
			ok = false
			continue
		}
		wrapped := &design.ConvFunc{FuncName: conv.FuncName, Arg: sigRef, Result: conv.Result}
		params = append(params, &design.Param{PKind: design.PNamed, Name: port.Ident, Value: wrapped})
		haveNamed = true
	}

	if !ok {
		return nil, false
	}
	return &design.Binding{
		Ident:  mod.Ident,
		Ref:    &design.VerilogWrap{Ident: mod.Ident, Wrapped: mod, Back: mod},
		Class:  design.ClassEntity,
		Params: params,
	}, true
}

// resolveOutputSignal finds conn's named signal among outBlock's ports
// then its decls (spec.md §4.3.4). Neither found is a fatal trace: the
// tree builder guarantees every Verilog connection names a resolvable
// signal, so a miss here indicates a core invariant violation, not user
// input.
func (c *Ctx) resolveOutputSignal(outBlock *design.Block, conn *design.VConn) (design.Type, design.Object) {
	for _, p := range outBlock.Ports {
		if p.Name.String() == conn.SignalName.String() {
			return p.Typ, &design.Ref{Name: p.Name, To: p, Typ: p.Typ}
		}
	}
	for _, d := range outBlock.Decls {
		if p, ok := d.(*design.Port); ok && p.Name.String() == conn.SignalName.String() {
			return p.Typ, &design.Ref{Name: p.Name, To: p, Typ: p.Typ}
		}
	}
	c.Collab.Diag.Fatal("FAT001", conn.SignalName.String(), "signal %q not found among output block ports or declarations", conn.SignalName)
	return nil, nil
}
