// Package elaborate implements the elaboration core (spec.md §3-§4): the
// architecture chooser, the four binding builders, generic resolution,
// instance fixup, the mutually-recursive statement descent, and the two
// root drivers. Ctx is the record threaded down every recursive call,
// modeled on the teacher's internal/link linker state chained through a
// parent pointer, enriched here with the narrow external-collaborator
// handles spec.md §3 names.
package elaborate

import (
	"fmt"

	"github.com/sunholo/vhdlelab/internal/design"
	"github.com/sunholo/vhdlelab/internal/diag"
	"github.com/sunholo/vhdlelab/internal/driveranalysis"
	"github.com/sunholo/vhdlelab/internal/fold"
	"github.com/sunholo/vhdlelab/internal/ident"
	"github.com/sunholo/vhdlelab/internal/library"
	"github.com/sunholo/vhdlelab/internal/lower"
	"github.com/sunholo/vhdlelab/internal/modcache"
	"github.com/sunholo/vhdlelab/internal/override"
	"github.com/sunholo/vhdlelab/internal/rtmodel"
)

// MaxDepth is the hard recursion cap, limited by a downstream IR's
// type-index width (spec.md §3/§9: "Preserve it verbatim; do not rely
// on OS stack size for correctness").
const MaxDepth = 127

// Collaborators bundles every external, narrow-interface dependency a
// root driver wires once and every Ctx shares by reference (spec.md §3:
// "library, jit, registry, mir, model — external collaborators").
type Collaborators struct {
	Idents    *ident.Table
	Library   library.Manager
	Folder    fold.Folder
	Lowerer   lower.Lowerer
	Registry  *lower.Registry
	ModCache  *modcache.Cache
	Overrides *override.Table
	Drivers   driveranalysis.Analyser
	Diag      *diag.Engine

	// DepthCap overrides MaxDepth when positive, the config-file knob
	// spec.md's ambient configuration layer exposes for exercising the
	// depth guard without building 127 levels of instance nesting.
	DepthCap int
}

// Ctx is the elaboration context record (spec.md §3 "Elaboration
// Context"). Every field documented there has a home here; fields with
// no meaningful zero value at the root (scope, lowered) are nil until
// the corresponding push/build step runs.
type Ctx struct {
	Parent *Ctx // back-reference, never owning

	Collab *Collaborators

	// Out is the output block this context is populating.
	Out *design.Block
	// Root is the top-level object pointer for the whole elaboration run.
	Root design.Object

	// Inst is the instantiation statement driving this level, nil at the root.
	Inst *design.Instance
	// Config is the enclosing BlockConfig applicable at this level, if any.
	Config *design.BlockConfig

	Path ident.Path // InstName / Dotted, per spec.md §6 grammar

	Lowered *lower.LoweredUnit
	Scope   *rtmodel.Scope

	// Env is the lexical fold scope visible at this level: generate
	// statements push a child binding their genvar to the current
	// iteration value (spec.md §4.6 "Generate statements"), consulted by
	// Collab.Folder whenever an expression references a genvar.
	Env *fold.Env

	// Generics maps a formal generic to its folded constant value, once
	// resolved, present only at levels that introduced generics
	// (spec.md §3, §4.4: used by the global simplifier).
	Generics map[*design.Generic]fold.Value

	Drivers *driveranalysis.DriverSet

	Depth int
}

// Root0 creates the root Ctx for one elaboration run, with an empty
// path as spec.md §4.8 requires ("seed the context with an empty path").
func Root0(collab *Collaborators, root design.Object) *Ctx {
	return &Ctx{
		Collab: collab,
		Root:   root,
		Path:   ident.Root(),
		Env:    fold.NewEnv(),
	}
}

// ChildLabel creates a new context nested under c with a plain
// instance/block label (spec.md §6 grammar, ":" label), incrementing
// depth. Callers must check CheckDepth before recursing further.
func (c *Ctx) ChildLabel(label *ident.Ident) *Ctx {
	return &Ctx{
		Parent: c, Collab: c.Collab, Root: c.Root, Env: c.Env,
		Path: c.Path.Label(label), Depth: c.Depth + 1,
	}
}

// ChildIndexed creates a new context nested under c with a for-generate
// iteration label (spec.md §6 grammar, "(" index ")").
func (c *Ctx) ChildIndexed(label *ident.Ident, index int64) *Ctx {
	return &Ctx{
		Parent: c, Collab: c.Collab, Root: c.Root, Env: c.Env,
		Path: c.Path.Indexed(label, index), Depth: c.Depth + 1,
	}
}

// WithArch augments c's own path with the "@primary(arch)" suffix
// (spec.md §4.6.3 step 1: "augment the hierarchical path with
// @primary(arch)").
func (c *Ctx) WithArch(primary, arch *ident.Ident) *Ctx {
	next := *c
	next.Path = c.Path.Primary(primary, arch)
	return &next
}

// CheckDepth raises STR002 and returns false once c.Depth exceeds the
// effective cap — MaxDepth (spec.md §4.6 "Instance": "If the depth limit
// (127) is reached, emit a bounded-recursion error and stop."), or
// Collab.DepthCap when a config file lowers it for testing.
func (c *Ctx) CheckDepth() bool {
	limit := MaxDepth
	if c.Collab.DepthCap > 0 {
		limit = c.Collab.DepthCap
	}
	if c.Depth > limit {
		c.Collab.Diag.Error(diagDepthCode, "", "maximum instantiation depth of %d reached", limit)
		return false
	}
	return true
}

const diagDepthCode = "STR002"

// Gate reports whether elaboration should proceed to the next phase
// (spec.md §7 "Propagation policy": "a non-zero error count
// short-circuits the remaining phases").
func (c *Ctx) Gate() bool { return !c.Collab.Diag.HasErrors() }

// String renders the context's path for debugging/diagnostics.
func (c *Ctx) String() string {
	return fmt.Sprintf("ctx[%s]", c.Path.Dotted)
}
