package elaborate

import (
	"github.com/sunholo/vhdlelab/internal/design"
	"github.com/sunholo/vhdlelab/internal/diag"
)

// ElaborateDecls copies every non-statement declaration through into
// c.Out.Decls unchanged; elaboration does not interpret declarations
// beyond the generics/ports already threaded through ResolveGenerics and
// resolvePorts (spec.md §4.6.3 step 3: "elaborate decls ... in the
// prescribed two-phase order").
func (c *Ctx) ElaborateDecls(decls []design.Object) {
	c.Out.Decls = append(c.Out.Decls, decls...)
}

// ElaborateStmts is the mutually recursive statement dispatcher (spec.md
// §4.6): instances recurse through binding/generics/fixup, the three
// generate shapes expand per generate.go, Process/PSLDirective are
// copied verbatim into c.Out.Stmts with no descent and no lowering step
// of their own, and a VerilogWrap'd
// statement dispatches to the Verilog path.
func (c *Ctx) ElaborateStmts(stmts []design.Object) {
	for _, s := range stmts {
		switch n := s.(type) {
		case *design.Instance:
			c.ElaborateInstance(n)
		case *design.ForGenerate:
			c.ExpandForGenerate(n)
		case *design.IfGenerate:
			c.ExpandIfGenerate(n)
		case *design.CaseGenerate:
			c.ExpandCaseGenerate(n)
		case *design.Process, *design.PSLDirective:
			c.Out.Stmts = append(c.Out.Stmts, s)
		case *design.VerilogWrap:
			c.ElaborateVerilogStmt(n)
		default:
			c.Out.Stmts = append(c.Out.Stmts, s)
		}
	}
}

// ElaborateInstance implements instance dispatch (spec.md §4.6.1): the
// depth limit is checked before any further recursion, then control goes
// to whichever of the four kinds Resolved names.
func (c *Ctx) ElaborateInstance(inst *design.Instance) {
	if !c.CheckDepth() {
		return
	}

	switch resolved := inst.Resolved.(type) {
	case *design.Component:
		c.elaborateComponentInstance(inst, resolved)
	case *design.Entity:
		arch, ok := c.ChooseArch(c.workingLibrary(), resolved.Name.String())
		if !ok {
			c.Collab.Diag.Fatal("BND001", inst.Pos().String(), "no architecture found for entity %q", resolved.Name)
			return
		}
		c.elaborateArchitectureInstance(inst, &design.Binding{
			Ident: resolved.Name, Ref: arch, Class: design.ClassEntity,
			Genmaps: inst.Genmaps, Params: inst.Params,
		})
	case *design.Arch:
		c.elaborateArchitectureInstance(inst, &design.Binding{
			Ident: resolved.Name, Ref: resolved, Class: design.ClassEntity,
			Genmaps: inst.Genmaps, Params: inst.Params,
		})
	case *design.Configuration:
		binding, ok := c.ExplicitBind(nil, resolved)
		if !ok {
			return
		}
		binding.Genmaps, binding.Params = inst.Genmaps, inst.Params
		c.elaborateArchitectureInstance(inst, binding)
	default:
		c.Collab.Diag.Fatal("FAT001", inst.Pos().String(), "instance %q resolves to an unreachable design kind", inst.Label)
	}
}

// workingLibrary is a placeholder for the current working-library name;
// default binding and direct entity instantiation both search "work" absent
// an explicit library clause on the tree (spec.md §4.3.1's synthesis
// relaxation assumes a single working library per run).
func (c *Ctx) workingLibrary() string { return "work" }

// elaborateComponentInstance implements component elaboration (spec.md
// §4.6.2): locate the applicable Spec in the enclosing BlockConfig,
// derive the binding explicitly or by default, then recurse as an
// architecture instance.
func (c *Ctx) elaborateComponentInstance(inst *design.Instance, comp *design.Component) {
	spec := FindSpec(c.Config, comp.Name, inst.Label)

	var binding *design.Binding
	var ok bool
	if spec != nil {
		binding, ok = c.ExplicitBind(spec, nil)
	} else {
		binding, ok = c.DefaultBind(comp, c.workingLibrary())
	}
	if !ok {
		return
	}

	// The binding's own Genmaps/Params (built against the component's
	// formals) are the actuals for this instance; inst.Genmaps/Params (the
	// instance's own actuals against the component) are threaded through
	// them positionally, since component formals and entity formals are
	// matched 1:1 by bindEntityGenericsAndPorts.
	binding.Genmaps = overlayActuals(binding.Genmaps, inst.Genmaps)
	binding.Params = overlayActuals(binding.Params, inst.Params)

	c.elaborateArchitectureInstance(inst, binding)
}

// overlayActuals replaces each formal's Ref-to-component-formal value
// with the instance's own actual for that component formal, when one was
// supplied (component instantiation's genmap/port-map targets the
// component's interface, not the entity's, so the entity-aligned list
// binding carries must be re-resolved one level through the instance's
// own actuals before use).
func overlayActuals(entityAligned []*design.Param, instActuals []*design.Param) []*design.Param {
	if len(instActuals) == 0 {
		return entityAligned
	}
	out := make([]*design.Param, len(entityAligned))
	for i, p := range entityAligned {
		ref, isRef := p.Value.(*design.Ref)
		if !isRef {
			out[i] = p
			continue
		}
		if actual := paramFor(instActuals, i, ref.Name); actual != nil {
			out[i] = &design.Param{PKind: p.PKind, Pos_: p.Pos_, Name: p.Name, Value: actual}
			continue
		}
		out[i] = p
	}
	return out
}

// elaborateArchitectureInstance implements architecture elaboration
// (spec.md §4.6.3): pick the label, copy the architecture, push scope,
// resolve generics, apply fixup, match ports, elaborate decls then
// stmts, compute drivers, and lower.
func (c *Ctx) elaborateArchitectureInstance(inst *design.Instance, binding *design.Binding) {
	arch, ok := binding.Ref.(*design.Arch)
	if !ok {
		// A mixed/Verilog binding's Ref is a *design.VerilogWrap; the
		// Verilog side has no architecture body to recurse into.
		return
	}

	child := c.ChildLabel(inst.Label).WithArch(arch.Primary, arch.Name)
	if !child.CheckDepth() {
		return
	}

	copier := &design.Copier{}
	copiedArch := copier.Copy(arch).(*design.Arch)

	child.PushScope(design.KInstance)
	defer child.PopScope()

	// A plain architecture body carries no configuration of its own in
	// this tree shape (BlockConfig.Specs bind directly to architectures,
	// never to a nested BlockConfig); only the root driver and an
	// explicit Configuration instantiation ever populate Config.
	child.Config = nil

	genParams := child.ResolveGenerics(copiedArch.Entity.Generics, binding, child.Env, child.Path.Dotted)
	child.Out.Genmaps = genParams

	fx := child.BuildFixup(copiedArch.Entity.Generics, genParams)
	fx.Apply(copiedArch.Decls)
	fx.Apply(copiedArch.Stmts)

	child.Out.Ports = copiedArch.Entity.Ports
	child.Out.Params = child.resolvePorts(copiedArch.Entity.Ports, binding)

	if !child.Gate() {
		return
	}
	child.ElaborateDecls(copiedArch.Decls)
	if !child.Gate() {
		return
	}
	child.ElaborateStmts(copiedArch.Stmts)

	child.Drivers = child.Collab.Drivers.Analyse(copiedArch.Stmts)

	if !child.Gate() {
		return
	}
	if child.Collab.Lowerer != nil {
		child.Collab.Diag.PushHint(diag.InstanceHint(inst.Label.String()))
		defer child.Collab.Diag.PopHint()
		lowered, err := child.Collab.Lowerer.Lower(child.Path.Dotted, child.Out)
		if err == nil {
			child.Lowered = lowered
		}
	}
}

// resolvePorts builds the positional port-actual list aligned to formals,
// mirroring ResolveGenerics' positional/named lookup but without generic
// defaulting or override consumption (spec.md §4.3: ports have no
// override table).
func (c *Ctx) resolvePorts(formals []*design.Port, binding *design.Binding) []*design.Param {
	out := make([]*design.Param, len(formals))
	for i, p := range formals {
		val := paramFor(binding.Params, i, p.Name)
		if val == nil {
			val = &design.Open{Typ: p.Typ}
		}
		out[i] = &design.Param{PKind: design.PPos, Pos_: i, Value: val}
	}
	return out
}

// ElaborateVerilogStmt implements the Verilog-statement case (spec.md
// §4.6 "Verilog statement"): a V_MOD_INST resolves its module by
// qualified name, verifies the case-sensitive ident2 match, fetches the
// module-cache entry, and binds via VerilogBind; any other wrapped
// statement copies through verbatim.
func (c *Ctx) ElaborateVerilogStmt(wrap *design.VerilogWrap) {
	inst, ok := wrap.Wrapped.(*design.VModuleInst)
	if !ok {
		c.Out.Stmts = append(c.Out.Stmts, wrap)
		return
	}

	u, found := c.Collab.Library.Find(c.workingLibrary() + "." + inst.ModuleName.String())
	if !found {
		c.Collab.Diag.Error("BND001", inst.Pos().String(), "no Verilog module found for instance %q", inst.Label)
		return
	}
	mod, ok := u.Obj.(*design.VerilogModule)
	if !ok {
		c.Collab.Diag.Error("BND001", inst.Pos().String(), "library unit %q is not a Verilog module", inst.ModuleName)
		return
	}
	if mod.Ident.String() != inst.ModuleName.String() {
		c.Collab.Diag.Error("CNS001", inst.Pos().String(), "Verilog module identifier %q does not case-sensitively match %q", inst.ModuleName, mod.Ident)
		return
	}

	// Memoise the module's lowered shape across every instance of it
	// (spec.md §2 "Module cache"): the Entry itself is not consulted
	// further here, the builder's side effect of running at most once
	// per module is the point.
	c.Collab.ModCache.Get(mod, func(m *design.VerilogModule) (any, *design.Block, *design.VerilogWrap) {
		var shape any
		if c.Collab.Lowerer != nil {
			shape, _ = c.Collab.Lowerer.LowerModule(m)
		}
		return shape, nil, nil
	})

	binding, ok := c.VerilogBind(mod, inst.Conns, c.Out)
	if !ok {
		return
	}

	child := c.ChildLabel(inst.Label)
	child.PushScope(design.KVerilogWrap)
	child.Out.Params = binding.Params
	child.PopScope()
}
