package elaborate

import (
	"strconv"

	"github.com/sunholo/vhdlelab/internal/design"
	"github.com/sunholo/vhdlelab/internal/fold"
	"github.com/sunholo/vhdlelab/internal/ident"
)

// ResolveGenerics implements generic resolution (spec.md §4.4): walks
// formals in order, applies the positional-actual / default / override
// priority, eagerly folds scalar-typed Ref actuals, and
// records every literal result into c.Generics for the later global
// simplifier substitution pass.
func (c *Ctx) ResolveGenerics(formals []*design.Generic, bind *design.Binding, env *fold.Env, qualifiedPrefix string) []*design.Param {
	c.Generics = make(map[*design.Generic]fold.Value, len(formals))
	out := make([]*design.Param, len(formals))

	for i, g := range formals {
		val := genericActual(bind, i, g.Name)
		if val == nil && g.Default != nil {
			val = g.Default
		}

		qualName := qualifiedPrefix + "." + g.Name.String()
		if text, found := c.Collab.Overrides.Consume(qualName); found {
			parsed, ok := c.parseOverrideText(g.Typ, text)
			if ok {
				val = parsed
			} else {
				c.Collab.Diag.Error("GEX003", g.Pos().String(), "generic %q: override value %q cannot be parsed for its type %s", g.Name, text, g.Typ)
			}
		}

		val = c.tryFoldScalar(val, env)

		out[i] = &design.Param{PKind: design.PPos, Pos_: i, Value: val}

		if lit, ok := val.(*design.Literal); ok {
			if v, ok2 := fold.NewDefault(env).TryFold(lit); ok2 {
				c.Generics[g] = v
			}
		}
	}
	return out
}

// genericActual looks up the actual bound to formal position i / name
// among bind's genmaps, accepting either positional or named
// association (spec.md §4.4: a direct entity/architecture instantiation
// may use either, while a binding derived by the component binding
// builders is always positional).
func genericActual(bind *design.Binding, i int, name *ident.Ident) design.Object {
	if bind == nil {
		return nil
	}
	return paramFor(bind.Genmaps, i, name)
}

func paramFor(params []*design.Param, index int, name *ident.Ident) design.Object {
	for _, p := range params {
		switch p.PKind {
		case design.PPos:
			if p.Pos_ == index {
				return p.Value
			}
		case design.PNamed:
			if name != nil && ident.EqualFold(p.Name, name) {
				return p.Value
			}
		}
	}
	return nil
}

// tryFoldScalar eagerly folds a scalar-typed Ref actual via
// the folder, replacing it with the resulting Literal on success
// (spec.md §4.4: "A P_REF/... value whose type is scalar is eagerly
// folded ... On success the map is replaced with the folded literal.
// An Open/enum-literal is kept as-is.").
func (c *Ctx) tryFoldScalar(val design.Object, env *fold.Env) design.Object {
	switch val.(type) {
	case *design.Open, *design.Literal, nil:
		return val
	}
	ref, isRef := val.(*design.Ref)
	if !isRef || ref.Typ == nil {
		return val
	}
	switch ref.Typ.Family() {
	case design.FamilyInteger, design.FamilyPhysical, design.FamilyReal:
	case design.FamilyEnum:
		if sc, ok := ref.Typ.(*design.Scalar); ok && ref.To == nil && sc.EnumLiteral(ref.Name.String()) >= 0 {
			return val
		}
	default:
		return val
	}
	v, ok := c.Collab.Folder.TryFold(val)
	if !ok {
		return val
	}
	return valueToLiteral(v, ref.Typ)
}

func valueToLiteral(v fold.Value, typ design.Type) *design.Literal {
	switch v.Kind {
	case fold.VReal:
		return &design.Literal{LKind: design.LReal, Real: v.Real, Typ: typ}
	default:
		return &design.Literal{LKind: design.LInt, Int: v.AsInt(), Typ: typ}
	}
}

// parseOverrideText implements the override-text grammar (spec.md
// §4.4 "Generic override text parsing"): the formal's type family
// decides the produced node kind. All other type families are
// rejected.
func (c *Ctx) parseOverrideText(typ design.Type, text string) (design.Object, bool) {
	switch typ.Family() {
	case design.FamilyEnum:
		sc, ok := typ.(*design.Scalar)
		if !ok {
			return nil, false
		}
		pos := sc.EnumLiteral(text)
		if pos < 0 {
			return nil, false
		}
		return &design.Ref{Name: c.Collab.Idents.Intern(text), Typ: typ}, true
	case design.FamilyInteger:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, false
		}
		return &design.Literal{LKind: design.LInt, Int: n, Typ: typ}, true
	case design.FamilyPhysical:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, false
		}
		return &design.Literal{LKind: design.LPhysical, Int: n, Typ: typ}, true
	case design.FamilyReal:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, false
		}
		return &design.Literal{LKind: design.LReal, Real: f, Typ: typ}, true
	case design.FamilyCharArray:
		return c.parseCharArrayOverride(typ, text)
	default:
		return nil, false
	}
}

// parseCharArrayOverride builds a String_ of per-character Refs against
// the array's element enum, computing the constrained subtype from the
// actual character sequence's length (spec.md §4.4: "character array ->
// String_ built of character Refs with subtype computed from the actual
// element sequence").
func (c *Ctx) parseCharArrayOverride(typ design.Type, text string) (design.Object, bool) {
	arr, ok := typ.(*design.Array)
	if !ok {
		return nil, false
	}
	elemSc, ok := arr.Elem.(*design.Scalar)
	if !ok {
		return nil, false
	}

	elems := make([]*design.Ref, len(text))
	for i := 0; i < len(text); i++ {
		lit := text[i : i+1]
		if elemSc.EnumLiteral(lit) < 0 {
			return nil, false
		}
		elems[i] = &design.Ref{Name: c.Collab.Idents.Intern(lit), Typ: arr.Elem}
	}
	return &design.String_{Elements: elems, Typ: design.NewConstrainedArray(arr.Elem, len(text))}, true
}
