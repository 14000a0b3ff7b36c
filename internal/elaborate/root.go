package elaborate

import "github.com/sunholo/vhdlelab/internal/design"

// ElaborateRoot implements both root drivers (spec.md §4.8): a VHDL root
// (Entity/Arch/Configuration) builds a top-level binding from defaults
// and overrides alone, leaves every port Open, and elaborates as an
// architecture; a Verilog root resolves its module-cache entry and
// elaborates with a null binding. Both seed a fresh Ctx with an empty
// path (Root0), and both free the module cache, warn on unused generic
// overrides, and flush the top-level lowered unit once elaboration
// returns.
func ElaborateRoot(collab *Collaborators, root design.Object) *design.Block {
	seed := Root0(collab, root)
	var final *Ctx

	switch n := root.(type) {
	case *design.VerilogModule:
		final = elaborateVerilogRoot(seed, n)
	case *design.Entity, *design.Arch, *design.Configuration:
		final = elaborateVHDLRoot(seed, root)
	default:
		collab.Diag.Error("STR001", root.Pos().String(), "unsupported top-level unit kind")
		final = seed
		final.Out = &design.Block{Name: "root"}
	}

	collab.ModCache.Free()
	for _, name := range collab.Overrides.Unused() {
		collab.Diag.Warn("GEX003", "", "generic value for %s not used", name)
	}
	if final.Lowered != nil {
		collab.Registry.Flush(final.Lowered.Name)
	}

	// spec.md §7 "Propagation policy": "The driver returns a null
	// elaboration tree iff any error was recorded."
	if collab.Diag.HasErrors() {
		return nil
	}
	return final.Out
}

// elaborateVHDLRoot resolves the top-level Entity/Arch/Configuration to
// an architecture, then runs the same generics/fixup/ports/decls/stmts
// sequence as an ordinary architecture instance (spec.md §4.6.3), minus
// an enclosing Instance: every port is left Open (spec.md §4.8 "Open
// ports"), and the binding's own genmaps come only from entity-generic
// defaults and the override table, never from an instance actual.
func elaborateVHDLRoot(ctx *Ctx, root design.Object) *Ctx {
	var arch *design.Arch
	var genmaps, params []*design.Param
	var rootConfig *design.BlockConfig

	switch n := root.(type) {
	case *design.Entity:
		a, ok := ctx.ChooseArch(ctx.workingLibrary(), n.Name.String())
		if !ok {
			ctx.Collab.Diag.Fatal("BND001", n.Pos().String(), "no architecture found for top-level entity %q", n.Name)
			ctx.Out = &design.Block{Name: "root"}
			return ctx
		}
		arch = a
	case *design.Arch:
		arch = n
	case *design.Configuration:
		binding, ok := ctx.ExplicitBind(nil, n)
		if !ok {
			ctx.Out = &design.Block{Name: "root"}
			return ctx
		}
		a, ok2 := binding.Ref.(*design.Arch)
		if !ok2 {
			ctx.Out = &design.Block{Name: "root"}
			return ctx
		}
		arch, genmaps, params = a, binding.Genmaps, binding.Params
		rootConfig = n.Root
	}

	ctx = ctx.WithArch(arch.Primary, arch.Name)
	copier := &design.Copier{}
	copiedArch := copier.Copy(arch).(*design.Arch)

	ctx.PushScope(design.KArch)
	ctx.Config = rootConfig // nil unless an explicit top-level Configuration supplied one

	rootBinding := &design.Binding{Ident: arch.Primary, Ref: arch, Class: design.ClassEntity, Genmaps: genmaps, Params: params}
	genParams := ctx.ResolveGenerics(copiedArch.Entity.Generics, rootBinding, ctx.Env, ctx.Path.Dotted)
	ctx.Out.Genmaps = genParams

	fx := ctx.BuildFixup(copiedArch.Entity.Generics, genParams)
	fx.Apply(copiedArch.Decls)
	fx.Apply(copiedArch.Stmts)

	ctx.Out.Ports = copiedArch.Entity.Ports
	openParams := make([]*design.Param, len(copiedArch.Entity.Ports))
	for i, p := range copiedArch.Entity.Ports {
		openParams[i] = &design.Param{PKind: design.POpen, Pos_: i, Value: &design.Open{Typ: p.Typ}}
	}
	ctx.Out.Params = openParams

	ctx.ElaborateDecls(copiedArch.Decls)
	ctx.ElaborateStmts(copiedArch.Stmts)

	ctx.Drivers = ctx.Collab.Drivers.Analyse(copiedArch.Stmts)
	if ctx.Collab.Lowerer != nil {
		if lowered, err := ctx.Collab.Lowerer.Lower(ctx.Path.Dotted, ctx.Out); err == nil {
			ctx.Lowered = lowered
		}
	}
	return ctx
}

// elaborateVerilogRoot resolves the top-level module's cache entry and
// builds a bare output block (no ports, genmaps or decls); a Verilog
// root has no VHDL-side binding/generics/decls to resolve (spec.md §4.8
// "Verilog root": "elaborate with a null binding").
func elaborateVerilogRoot(ctx *Ctx, mod *design.VerilogModule) *Ctx {
	ctx.PushScope(design.KVerilogWrap)

	var shape any
	if ctx.Collab.Lowerer != nil {
		shape, _ = ctx.Collab.Lowerer.LowerModule(mod)
	}
	ctx.Collab.ModCache.Get(mod, func(m *design.VerilogModule) (any, *design.Block, *design.VerilogWrap) {
		return shape, nil, nil
	})

	return ctx
}
