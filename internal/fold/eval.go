package fold

import "github.com/sunholo/vhdlelab/internal/design"

// Default is the reference Folder: a small recursive evaluator over
// literal, reference, attribute and binary-operator nodes, sufficient
// for generate ranges/conditions/case choices and scalar generics
// (spec.md §4.6) without modeling VHDL's full expression grammar.
type Default struct {
	Env *Env
}

// NewDefault creates a Default folder over env. A nil env is treated as
// an empty one.
func NewDefault(env *Env) *Default {
	if env == nil {
		env = NewEnv()
	}
	return &Default{Env: env}
}

func (d *Default) TryFold(obj design.Object) (Value, bool) {
	if obj == nil {
		return Value{}, false
	}
	switch n := obj.(type) {
	case *design.Literal:
		return d.foldLiteral(n)
	case *design.Ref:
		return d.foldRef(n)
	case *design.Attr:
		return d.foldAttr(n)
	case *design.BinOp:
		return d.foldBinOp(n)
	case *design.Open:
		return Value{}, false
	default:
		return Value{}, false
	}
}

func (d *Default) foldLiteral(n *design.Literal) (Value, bool) {
	switch n.LKind {
	case design.LReal:
		return Value{Kind: VReal, Real: n.Real}, true
	case design.LPhysical:
		return Value{Kind: VInt, Int: n.Int}, true
	default:
		return Value{Kind: VInt, Int: n.Int}, true
	}
}

func (d *Default) foldRef(n *design.Ref) (Value, bool) {
	// An unresolved name (no binding site yet, e.g. a genvar or a
	// deferred constant) is looked up in the environment; a resolved
	// reference recurses into whatever it points at.
	if v, ok := d.Env.Lookup(n.Name); ok {
		return v, true
	}
	if lit, ok := n.To.(*design.Literal); ok {
		return d.foldLiteral(lit)
	}
	if gen, ok := n.To.(*design.Generic); ok && gen.Default != nil {
		return d.TryFold(gen.Default)
	}
	if sc, ok := n.Typ.(interface{ EnumLiteral(string) int }); ok {
		if pos := sc.EnumLiteral(n.Name.String()); pos >= 0 {
			return Value{Kind: VEnum, EnumPos: pos, EnumLit: n.Name.String()}, true
		}
	}
	return Value{}, false
}

func (d *Default) foldAttr(n *design.Attr) (Value, bool) {
	prefixType, ok := typeOf(n.Prefix)
	if !ok {
		return Value{}, false
	}
	arr, ok := prefixType.(*design.Array)
	if !ok || len(arr.Index) == 0 {
		return Value{}, false
	}
	bounds, ok := scalarBounds(arr.Index[0])
	if !ok {
		return Value{}, false
	}
	switch n.Name {
	case "low":
		return Value{Kind: VInt, Int: bounds[0]}, true
	case "high":
		return Value{Kind: VInt, Int: bounds[1]}, true
	case "length":
		return Value{Kind: VInt, Int: bounds[1] - bounds[0] + 1}, true
	default:
		return Value{}, false
	}
}

func (d *Default) foldBinOp(n *design.BinOp) (Value, bool) {
	l, ok := d.TryFold(n.Left)
	if !ok {
		return Value{}, false
	}
	r, ok := d.TryFold(n.Right)
	if !ok {
		return Value{}, false
	}
	switch n.Op {
	case "=":
		return Value{Kind: VBool, Bool: l.Equal(r)}, true
	case "/=":
		return Value{Kind: VBool, Bool: !l.Equal(r)}, true
	case "<":
		return Value{Kind: VBool, Bool: l.AsInt() < r.AsInt()}, true
	case "<=":
		return Value{Kind: VBool, Bool: l.AsInt() <= r.AsInt()}, true
	case ">":
		return Value{Kind: VBool, Bool: l.AsInt() > r.AsInt()}, true
	case ">=":
		return Value{Kind: VBool, Bool: l.AsInt() >= r.AsInt()}, true
	case "+":
		return Value{Kind: VInt, Int: l.AsInt() + r.AsInt()}, true
	case "-":
		return Value{Kind: VInt, Int: l.AsInt() - r.AsInt()}, true
	default:
		return Value{}, false
	}
}

func (d *Default) MustFold(obj design.Object) Value {
	v, ok := d.TryFold(obj)
	if !ok {
		panic(&FoldError{Obj: obj})
	}
	return v
}

// EvalCase matches selector against each alternative's choices in
// order; an IsOthers alternative matches unconditionally and must be
// last (spec.md §4.6 "case-generate" mirrors VHDL's case-statement
// choice rules).
func (d *Default) EvalCase(selector Value, alts []design.CaseAlt) (int, bool) {
	for i, alt := range alts {
		if alt.IsOthers {
			return i, true
		}
		for _, choice := range alt.Choices {
			v, ok := d.TryFold(choice)
			if ok && v.Equal(selector) {
				return i, true
			}
		}
	}
	return 0, false
}

// typeOf extracts the static Type carried by a design.Object, where one
// is present (the narrow set this package needs to inspect for
// attributes).
func typeOf(obj design.Object) (design.Type, bool) {
	switch n := obj.(type) {
	case *design.Ref:
		return n.Typ, n.Typ != nil
	case *design.TypeRef:
		return n.Typ, n.Typ != nil
	case *design.Literal:
		return n.Typ, n.Typ != nil
	default:
		return nil, false
	}
}

// scalarBounds returns [low, high] for an index subtype, when it is a
// Scalar carrying an enumeration literal list (its bounds are position
// 0 and len-1) — the only index-subtype shape this reference folder
// resolves attributes against.
func scalarBounds(t design.Type) ([2]int64, bool) {
	sc, ok := t.(*design.Scalar)
	if !ok || len(sc.Literals) == 0 {
		return [2]int64{}, false
	}
	return [2]int64{0, int64(len(sc.Literals) - 1)}, true
}
