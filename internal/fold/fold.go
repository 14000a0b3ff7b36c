// Package fold implements the narrow constant-folding interface
// elaboration consumes (spec.md §2/§4.6): enough to resolve generate
// ranges, if-generate conditions, case-generate selectors/choices and
// scalar generic actuals to concrete values, without modeling VHDL's
// full expression language. Modeled on the teacher's internal/types
// constraint/instance evaluation style: a small typed value plus a
// recursive evaluator keyed by node shape, not a general interpreter.
package fold

import (
	"fmt"

	"github.com/sunholo/vhdlelab/internal/design"
	"github.com/sunholo/vhdlelab/internal/ident"
)

// ValueKind tags the shape of a folded Value.
type ValueKind int

const (
	VInt ValueKind = iota
	VReal
	VBool
	VEnum
)

// Value is a folded scalar constant.
type Value struct {
	Kind    ValueKind
	Int     int64
	Real    float64
	Bool    bool
	EnumPos int    // index into the enum type's literal list, meaningful when Kind == VEnum
	EnumLit string // the literal spelling, for diagnostics
}

func (v Value) String() string {
	switch v.Kind {
	case VReal:
		return fmt.Sprintf("%g", v.Real)
	case VBool:
		return fmt.Sprintf("%t", v.Bool)
	case VEnum:
		return v.EnumLit
	default:
		return fmt.Sprintf("%d", v.Int)
	}
}

// Equal reports value equality used by EvalCase choice matching.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case VReal:
		return v.Real == o.Real
	case VBool:
		return v.Bool == o.Bool
	case VEnum:
		return v.EnumPos == o.EnumPos
	default:
		return v.Int == o.Int
	}
}

// AsInt reports v as an integer bound, for genvar ranges and array
// indices; enum positions and booleans (false=0, true=1) convert too.
func (v Value) AsInt() int64 {
	switch v.Kind {
	case VBool:
		if v.Bool {
			return 1
		}
		return 0
	case VEnum:
		return int64(v.EnumPos)
	case VReal:
		return int64(v.Real)
	default:
		return v.Int
	}
}

// Folder is the interface elaboration depends on (spec.md §2: "Constant
// folder ... narrow interface (TryFold, MustFold, EvalCase)").
type Folder interface {
	// TryFold attempts to reduce obj to a scalar constant, returning
	// false if it depends on something not yet bound (an unresolved
	// reference, an as-yet-unfolded generic).
	TryFold(obj design.Object) (Value, bool)
	// MustFold folds obj or panics with a *FoldError; callers that know
	// obj must already be foldable (a generate range after generics are
	// resolved) use this to avoid threading an ok bool everywhere.
	MustFold(obj design.Object) Value
	// EvalCase matches selector against alts in order, honoring an
	// "others" alternative last, and returns the index of the first
	// match plus true, or false if none matches and there is no others
	// (spec.md §4.6 "case-generate").
	EvalCase(selector Value, alts []design.CaseAlt) (int, bool)
}

// FoldError reports a failed MustFold; elaboration's diagnostic engine
// converts this into a structured, phase-coded error at the call site
// rather than this package depending on internal/diag directly.
type FoldError struct {
	Obj design.Object
}

func (e *FoldError) Error() string {
	return fmt.Sprintf("fold: cannot reduce %s to a constant value", e.Obj)
}

// Env binds names (genvars, already-resolved generics, deferred
// constants) to folded values for the duration of one fold call chain.
// A fresh Env is pushed per generate body the way a genvar's binding is
// scoped to its own generate statement (spec.md §4.6).
type Env struct {
	parent *Env
	values map[*ident.Ident]Value
}

// NewEnv creates a root environment with no parent.
func NewEnv() *Env { return &Env{} }

// Push creates a child environment that falls back to e for lookups not
// found locally, the way a nested for-generate's genvar shadows an
// outer one without losing access to outer bindings.
func (e *Env) Push() *Env { return &Env{parent: e} }

// Bind records id = v in this environment.
func (e *Env) Bind(id *ident.Ident, v Value) {
	if e.values == nil {
		e.values = make(map[*ident.Ident]Value)
	}
	e.values[id] = v
}

// Lookup resolves id, searching outward through parent environments.
func (e *Env) Lookup(id *ident.Ident) (Value, bool) {
	for cur := e; cur != nil; cur = cur.parent {
		if v, ok := cur.values[id]; ok {
			return v, true
		}
	}
	return Value{}, false
}
