package elaborate

import (
	"github.com/sunholo/vhdlelab/internal/design"
	"github.com/sunholo/vhdlelab/internal/ident"
)

// ExplicitBind implements VHDL explicit binding (spec.md §4.3.2):
// supplied by a Spec's own Binding, or derived from a Configuration by
// unwrapping its single root BlockConfig (depth-1 lookup: "the
// configuration's first declaration is its root BlockConfig, whose ref
// is the architecture"). Used as-is, no generic/port re-matching.
func (c *Ctx) ExplicitBind(spec *design.Spec, config *design.Configuration) (*design.Binding, bool) {
	if spec != nil && spec.Binding != nil {
		return spec.Binding, true
	}
	if config == nil {
		return nil, false
	}
	if config.Root == nil || config.Root.Ref == nil {
		// Open Question (spec.md §9): "ndecls == 1" is asserted for
		// T_CONFIGURATION explicit bindings; anything else (here, a
		// configuration with no usable root BlockConfig/architecture)
		// is a diagnostic, not a silent fallback.
		c.Collab.Diag.Error("STR005", config.Pos().String(), "configuration %q has no single bound architecture", config.Name)
		return nil, false
	}
	return &design.Binding{
		Ident: config.Of,
		Ref:   config.Root.Ref,
		Class: design.ClassConfiguration,
	}, true
}

// FindSpec locates the applicable Spec for an instance inside an
// enclosing BlockConfig (spec.md §4.6.2 step 1): matched by ident2
// (component kind) plus either the instance label, or "ALL"/absence of
// label matching any label without a more specific spec (spec.md §6
// "Configuration semantics": "a concrete label matches only itself,
// absence of ident matches any label that has no more specific spec").
func FindSpec(blockConfig *design.BlockConfig, componentIdent, instanceLabel *ident.Ident) *design.Spec {
	if blockConfig == nil {
		return nil
	}
	var exact, allMatch, anyMatch *design.Spec
	for _, s := range blockConfig.Specs {
		if !ident.EqualFold(s.ComponentIdent, componentIdent) {
			continue
		}
		switch {
		case s.InstanceLabel != nil && ident.EqualFold(s.InstanceLabel, instanceLabel):
			exact = s
		case s.All:
			allMatch = s
		case s.InstanceLabel == nil:
			anyMatch = s
		}
	}
	if exact != nil {
		return exact
	}
	if allMatch != nil {
		return allMatch
	}
	return anyMatch
}
