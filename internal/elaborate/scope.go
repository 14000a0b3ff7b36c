package elaborate

import (
	"github.com/sunholo/vhdlelab/internal/design"
	"github.com/sunholo/vhdlelab/internal/driveranalysis"
	"github.com/sunholo/vhdlelab/internal/rtmodel"
)

// PushScope fills in the output Block, run-time Scope, and driver set for
// a context already positioned by ChildLabel/ChildIndexed/WithArch
// (spec.md §4.7): a Hier declaration documenting the new level is pushed
// into the parent's output block, a child Block is created and linked as
// one of the parent's Children, and a matching rtmodel.Scope is pushed
// under the parent's scope. c must not already have an Out.
func (c *Ctx) PushScope(sourceKind design.Kind) *Ctx {
	instName, dotted := c.Path.InstName, c.Path.Dotted

	// instName is already built incrementally as "elab_path ':' label"
	// (ident.Path.Label/Indexed append exactly that shape; design.go's
	// Block.Name doc comment describes this value, not a debug rendering
	// of the Ctx), so Name and InstName agree node-for-node.
	block := &design.Block{Name: instName, InstName: instName, Dotted: dotted}

	if c.Parent != nil && c.Parent.Out != nil {
		c.Parent.Out.Children = append(c.Parent.Out.Children, block)
		c.Parent.Out.Decls = append(c.Parent.Out.Decls, &design.Hier{
			SourceKind: sourceKind, InstName: instName, Dotted: dotted,
		})
	}
	c.Out = block

	switch {
	case c.Parent != nil && c.Parent.Scope != nil:
		c.Scope = c.Parent.Scope.Push(instName, dotted)
	default:
		c.Scope = rtmodel.NewRoot()
	}

	c.Drivers = driveranalysis.NewDriverSet()
	return c
}

// PopScope frees the scope's private run-time data, finalises its
// lowered unit, and drops the generics/driver maps (spec.md §4.7: "Pop
// frees the generics map and driver set, finalises the lowered unit via
// Registry.Finalize"). Strict nesting is enforced transitively by
// rtmodel.Scope.Pop, which panics on a double pop.
func (c *Ctx) PopScope() {
	if c.Scope != nil {
		c.Scope.Pop()
	}
	if c.Lowered != nil && c.Collab.Registry != nil {
		c.Collab.Registry.Finalize(c.Lowered.Name)
	}
	c.Generics = nil
	c.Drivers = nil
}
