package design

// Copier deep-copies a design subtree so that a freshly instantiated unit
// shares no mutable node with its template, breaking sharing between
// instances (spec.md §1(e), §4.6.2 step 3, §4.6.3 step 2). The recursive
// rebuild-by-type-switch here mirrors the teacher's dictionary-elaboration
// pass over Core ANF: walk every node kind explicitly, recurse into
// children, and return a freshly allocated node of the same shape.
//
// Sharing is broken by allocation alone: every case below returns a new
// node, so two instances copied from the same template Arch never alias a
// mutable field. There is no separate identifier-renaming pass because the
// tree has no subprogram-declaration Object to rename (*design.Subprogram
// is a Type, the stand-in for a subprogram-generic formal, not a
// declaration node) — see DESIGN.md.
type Copier struct{}

// Copy deep-copies any Object. Unknown kinds are a fatal-trace: an
// unreachable case here indicates a missing clone rule for a node kind that
// can legitimately appear inside an architecture/entity/package body, which
// is a programmer error in this core, not user input (spec.md §7 "Fatal
// traces").
func (c *Copier) Copy(o Object) Object {
	if o == nil {
		return nil
	}
	switch n := o.(type) {
	case *Entity:
		return &Entity{Node: n.Node, Name: n.Name, Generics: c.copyGenerics(n.Generics), Ports: c.copyPorts(n.Ports)}
	case *Arch:
		return &Arch{
			Node: n.Node, Name: n.Name, Primary: n.Primary,
			Entity: n.Entity, // entity identity is not duplicated by the architecture copier
			Decls:  c.copyList(n.Decls), Stmts: c.copyList(n.Stmts),
			GlobalFlags: n.GlobalFlags,
		}
	case *Configuration:
		return &Configuration{Node: n.Node, Name: n.Name, Of: n.Of, Root: c.Copy(n.Root).(*BlockConfig)}
	case *BlockConfig:
		specs := make([]*Spec, len(n.Specs))
		for i, s := range n.Specs {
			specs[i] = c.Copy(s).(*Spec)
		}
		return &BlockConfig{Node: n.Node, Label: n.Label, Ref: n.Ref, Specs: specs}
	case *Spec:
		var b *Binding
		if n.Binding != nil {
			b = c.Copy(n.Binding).(*Binding)
		}
		return &Spec{Node: n.Node, ComponentIdent: n.ComponentIdent, InstanceLabel: n.InstanceLabel, All: n.All, Binding: b}
	case *Package:
		return &Package{Node: n.Node, Name: n.Name, Decls: c.copyList(n.Decls)}
	case *PackBody:
		return &PackBody{Node: n.Node, Of: n.Of}
	case *PackInst:
		return &PackInst{Node: n.Node, Name: n.Name, Template: n.Template, Genmaps: c.copyParams(n.Genmaps)}
	case *Component:
		return &Component{Node: n.Node, Name: n.Name, Generics: c.copyGenerics(n.Generics), Ports: c.copyPorts(n.Ports)}
	case *Instance:
		return &Instance{
			Node: n.Node, Label: n.Label, Class: n.Class, RefName: n.RefName, Resolved: n.Resolved,
			Spec: n.Spec, Genmaps: c.copyParams(n.Genmaps), Params: c.copyParams(n.Params),
		}
	case *Binding:
		return &Binding{Node: n.Node, Ident: n.Ident, Ref: n.Ref, Class: n.Class, Genmaps: c.copyParams(n.Genmaps), Params: c.copyParams(n.Params)}
	case *Param:
		return &Param{Node: n.Node, PKind: n.PKind, Pos_: n.Pos_, Name: n.Name, Value: c.Copy(n.Value)}
	case *Ref:
		return &Ref{Node: n.Node, Name: n.Name, To: n.To, Typ: n.Typ}
	case *Open:
		return &Open{Node: n.Node, Typ: n.Typ}
	case *Literal:
		return &Literal{Node: n.Node, LKind: n.LKind, Int: n.Int, Real: n.Real, Unit: n.Unit, Typ: n.Typ}
	case *String_:
		els := make([]*Ref, len(n.Elements))
		for i, e := range n.Elements {
			els[i] = c.Copy(e).(*Ref)
		}
		return &String_{Node: n.Node, Elements: els, Typ: n.Typ}
	case *Aggregate:
		return &Aggregate{Node: n.Node, Elements: c.copyList(n.Elements), Typ: n.Typ}
	case *TypeRef:
		return &TypeRef{Node: n.Node, Name: n.Name, Typ: n.Typ}
	case *ConvFunc:
		return &ConvFunc{Node: n.Node, FuncName: n.FuncName, Arg: c.Copy(n.Arg), Result: n.Result}
	case *Generic:
		var def Object
		if n.Default != nil {
			def = c.Copy(n.Default)
		}
		return &Generic{Node: n.Node, Name: n.Name, Typ: n.Typ, Default: def, HasIdent_: n.HasIdent_}
	case *Port:
		var def Object
		if n.Default != nil {
			def = c.Copy(n.Default)
		}
		return &Port{Node: n.Node, Name: n.Name, Name2: n.Name2, Dir: n.Dir, Typ: n.Typ, Default: def}
	case *Process:
		return &Process{Node: n.Node, Label: n.Label, Body: n.Body}
	case *PSLDirective:
		return &PSLDirective{Node: n.Node, Label: n.Label, Body: n.Body}
	case *ForGenerate:
		return &ForGenerate{Node: n.Node, Label: n.Label, Genvar: n.Genvar, Low: c.Copy(n.Low), High: c.Copy(n.High), Body: c.copyList(n.Body)}
	case *IfGenerate:
		bodies := make([][]Object, len(n.Bodies))
		for i, b := range n.Bodies {
			bodies[i] = c.copyList(b)
		}
		return &IfGenerate{Node: n.Node, Label: n.Label, Conds: c.copyList(n.Conds), Bodies: bodies, ElseBody: c.copyList(n.ElseBody), HasElse: n.HasElse}
	case *CaseGenerate:
		alts := make([]CaseAlt, len(n.Alts))
		for i, a := range n.Alts {
			alts[i] = CaseAlt{Choices: c.copyList(a.Choices), IsOthers: a.IsOthers, Body: c.copyList(a.Body)}
		}
		return &CaseGenerate{Node: n.Node, Label: n.Label, Selector: c.Copy(n.Selector), Alts: alts}
	case *VerilogWrap:
		return &VerilogWrap{Node: n.Node, Ident: n.Ident, Wrapped: n.Wrapped, Back: n.Back}
	case *Attr:
		return &Attr{Node: n.Node, Prefix: c.Copy(n.Prefix), Name: n.Name, Typ: n.Typ}
	case *BinOp:
		return &BinOp{Node: n.Node, Op: n.Op, Left: c.Copy(n.Left), Right: c.Copy(n.Right), Typ: n.Typ}
	default:
		panic("design: Copier.Copy: unreachable design kind in copier")
	}
}

func (c *Copier) copyList(in []Object) []Object {
	if in == nil {
		return nil
	}
	out := make([]Object, len(in))
	for i, o := range in {
		out[i] = c.Copy(o)
	}
	return out
}

func (c *Copier) copyGenerics(in []*Generic) []*Generic {
	if in == nil {
		return nil
	}
	out := make([]*Generic, len(in))
	for i, g := range in {
		out[i] = c.Copy(g).(*Generic)
	}
	return out
}

func (c *Copier) copyPorts(in []*Port) []*Port {
	if in == nil {
		return nil
	}
	out := make([]*Port, len(in))
	for i, p := range in {
		out[i] = c.Copy(p).(*Port)
	}
	return out
}

func (c *Copier) copyParams(in []*Param) []*Param {
	if in == nil {
		return nil
	}
	out := make([]*Param, len(in))
	for i, p := range in {
		out[i] = c.Copy(p).(*Param)
	}
	return out
}
