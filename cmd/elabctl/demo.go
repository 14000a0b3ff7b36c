package main

import (
	"github.com/sunholo/vhdlelab/internal/design"
	"github.com/sunholo/vhdlelab/internal/elaborate"
	"github.com/sunholo/vhdlelab/internal/ident"
	"github.com/sunholo/vhdlelab/internal/library"
)

// demoDesign is the synthetic entity/arch/generic/port/for-generate/
// instance tree elabctl runs against, standing in for a real front end:
// a "counter" entity with a WIDTH generic and a for-generate loop that
// instantiates WIDTH+1 copies (i in 0 to WIDTH) of a one-bit "bitcell"
// component, each bound
// by default binding to a bitcell entity/architecture also registered in
// the working library. No VHDL/Verilog source is parsed anywhere here.
type demoDesign struct {
	idents *ident.Table
	top    *design.Entity
	lib    *library.InMemory
}

func buildDemoDesign() *demoDesign {
	idents := ident.NewTable()
	lib := library.NewInMemory()

	integer := &design.Scalar{Name: "integer", Fam: design.FamilyInteger}
	stdLogic := &design.Scalar{Name: "std_logic", Fam: design.FamilyEnum}

	bitEnt := &design.Entity{
		Name: idents.Intern("bitcell"),
		Ports: []*design.Port{
			{Name: idents.Intern("d"), Dir: design.DirIn, Typ: stdLogic},
			{Name: idents.Intern("q"), Dir: design.DirOut, Typ: stdLogic},
		},
	}
	bitArch := &design.Arch{Name: idents.Intern("rtl"), Primary: bitEnt.Name, Entity: bitEnt}
	lib.Add(&library.Unit{Library: "work", Name: "bitcell-rtl", Kind: design.KArch, MTime: 1, Obj: bitArch})

	bitComp := &design.Component{
		Name:  idents.Intern("bitcell"),
		Ports: bitEnt.Ports,
	}

	width := &design.Generic{
		Name:      idents.Intern("WIDTH"),
		Typ:       integer,
		Default:   &design.Literal{LKind: design.LInt, Int: 8, Typ: integer},
		HasIdent_: true,
	}

	counterEnt := &design.Entity{
		Name:     idents.Intern("counter"),
		Generics: []*design.Generic{width},
		Ports: []*design.Port{
			{Name: idents.Intern("clk"), Dir: design.DirIn, Typ: stdLogic},
			{Name: idents.Intern("rst"), Dir: design.DirIn, Typ: stdLogic},
			{Name: idents.Intern("q"), Dir: design.DirOut, Typ: stdLogic},
		},
	}

	genvar := idents.Intern("i")
	bitInst := &design.Instance{
		Label:    idents.Intern("cell"),
		Class:    design.ClassComponent,
		RefName:  bitComp.Name,
		Resolved: bitComp,
		Params: []*design.Param{
			{PKind: design.PPos, Pos_: 0, Value: &design.Ref{Name: counterEnt.Ports[0].Name, To: counterEnt.Ports[0], Typ: stdLogic}},
			{PKind: design.PPos, Pos_: 1, Value: &design.Open{Typ: stdLogic}},
		},
	}
	forGen := &design.ForGenerate{
		Label:  idents.Intern("bits"),
		Genvar: genvar,
		Low:    &design.Literal{LKind: design.LInt, Int: 0, Typ: integer},
		High:   &design.Ref{Name: width.Name, To: width, Typ: integer},
		Body:   []design.Object{bitInst},
	}

	counterArch := &design.Arch{
		Name:    idents.Intern("rtl"),
		Primary: counterEnt.Name,
		Entity:  counterEnt,
		Decls:   []design.Object{bitComp},
		Stmts:   []design.Object{forGen},
	}
	lib.Add(&library.Unit{Library: "work", Name: "counter-rtl", Kind: design.KArch, MTime: 1, Obj: counterArch})

	return &demoDesign{idents: idents, top: counterEnt, lib: lib}
}

// collaborators builds the same combination of reference collaborators
// ElaborateRoot's own tests wire, seeded from this design's library and
// identifier table, with cfg layered on top (depth cap, merged
// overrides).
func (d *demoDesign) collaborators(cfg *cliConfig) *elaborate.Collaborators {
	collab := newDefaultCollaborators(d.idents, d.lib)
	collab.DepthCap = cfg.depthCap
	for _, ov := range cfg.overrides {
		collab.Overrides.Set(ov.name, ov.value)
	}
	return collab
}
