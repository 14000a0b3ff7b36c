package elaborate

import (
	"github.com/sunholo/vhdlelab/internal/design"
	"github.com/sunholo/vhdlelab/internal/fold"
)

// ExpandForGenerate implements for-generate expansion (spec.md §4.6
// "Generate statements"): the range is evaluated via the folder against
// c's lexical Env (a non-static range records a continuable GEX001 error
// and expands nothing), one child block is
// created per integer in the range named "label(i)", a genvar -> i
// binding is installed in that child's Env, the child's output block
// carries the genvar's value as its own P_POS genmap (spec.md §8
// scenario 3), and the body is copied with design.Copier before being
// elaborated recursively.
func (c *Ctx) ExpandForGenerate(g *design.ForGenerate) {
	folder := fold.NewDefault(c.Env)
	lowV, lowOK := folder.TryFold(g.Low)
	highV, highOK := folder.TryFold(g.High)
	if !lowOK || !highOK {
		c.Collab.Diag.Error("GEX001", g.Pos().String(), "for-generate %q range is not statically foldable", g.Label)
		return
	}

	// low > high is the empty range (spec.md §8: "for-generate with
	// low > high expands to zero child blocks without error"); this tree
	// carries no separate to/downto marker, so a descending "N downto 0"
	// range must already arrive with low <= high from the tree builder.
	low, high := lowV.AsInt(), highV.AsInt()

	for i := low; i <= high; i++ {
		child := c.ChildIndexed(g.Label, i)
		if !child.CheckDepth() {
			return
		}
		child.Env = c.Env.Push()
		child.Env.Bind(g.Genvar, fold.Value{Kind: fold.VInt, Int: i})

		child.PushScope(design.KForGenerate)
		child.Out.Genmaps = []*design.Param{{PKind: design.PPos, Pos_: 0, Value: &design.Literal{LKind: design.LInt, Int: i}}}
		child.ElaborateStmts(copyBody(g.Body))
		child.PopScope()
	}
}

// ExpandIfGenerate implements if-generate expansion (spec.md §4.6):
// conditions are evaluated in order against c's Env, the first true
// branch is elaborated, and the else body (if any) is elaborated when no
// condition holds.
func (c *Ctx) ExpandIfGenerate(g *design.IfGenerate) {
	folder := fold.NewDefault(c.Env)

	for i, cond := range g.Conds {
		v, ok := folder.TryFold(cond)
		if !ok {
			c.Collab.Diag.Error("GEX002", g.Pos().String(), "if-generate %q condition is not statically foldable", g.Label)
			return
		}
		if v.Bool {
			child := c.ChildLabel(g.Label)
			if !child.CheckDepth() {
				return
			}
			child.PushScope(design.KIfGenerate)
			child.ElaborateStmts(copyBody(g.Bodies[i]))
			child.PopScope()
			return
		}
	}

	if g.HasElse {
		child := c.ChildLabel(g.Label)
		if !child.CheckDepth() {
			return
		}
		child.PushScope(design.KIfGenerate)
		child.ElaborateStmts(copyBody(g.ElseBody))
		child.PopScope()
	}
}

// ExpandCaseGenerate implements case-generate expansion (spec.md §4.6):
// the selector is folded and matched against the alternatives via
// EvalCase; no match (and no others) emits nothing, matching VHDL's
// case-generate semantics.
func (c *Ctx) ExpandCaseGenerate(g *design.CaseGenerate) {
	folder := fold.NewDefault(c.Env)
	sel, ok := folder.TryFold(g.Selector)
	if !ok {
		c.Collab.Diag.Error("GEX002", g.Pos().String(), "case-generate %q selector is not statically foldable", g.Label)
		return
	}

	idx, matched := folder.EvalCase(sel, g.Alts)
	if !matched {
		return
	}

	child := c.ChildLabel(g.Label)
	if !child.CheckDepth() {
		return
	}
	child.PushScope(design.KCaseGenerate)
	child.ElaborateStmts(copyBody(g.Alts[idx].Body))
	child.PopScope()
}

func copyBody(body []design.Object) []design.Object {
	copier := &design.Copier{}
	out := make([]design.Object, len(body))
	for i, o := range body {
		out[i] = copier.Copy(o)
	}
	return out
}
