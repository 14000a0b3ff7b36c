package ident

import "fmt"

// Path builds the two hierarchical names carried on every elaboration
// context: inst_name (colon-separated, lowercase, used by simulation and
// diagnostics) and dotted (dot-separated, used for symbol mangling).
//
// Grammar (spec.md §6):
//
//	":" label ("(" index ")")? ("@" primary "(" arch ")")? (":" label ...)*
type Path struct {
	InstName string
	Dotted   string
}

// Root returns the empty path a root driver seeds its context with.
func Root() Path {
	return Path{}
}

// Label extends the path with a plain instance/block label, e.g. for
// component instances, processes, and PSL directives.
func (p Path) Label(label *Ident) Path {
	l := Lower(label)
	return Path{
		InstName: p.InstName + ":" + l,
		Dotted:   joinDotted(p.Dotted, l),
	}
}

// Indexed extends the path with a for-generate iteration label, e.g.
// "gen(3)".
func (p Path) Indexed(label *Ident, index int64) Path {
	l := fmt.Sprintf("%s(%d)", Lower(label), index)
	return Path{
		InstName: p.InstName + ":" + l,
		Dotted:   joinDotted(p.Dotted, l),
	}
}

// Primary extends the path with the "@primary(arch)" suffix used when an
// architecture is chosen for an instance or binding, as described in
// spec.md §4.6.3 step 1.
func (p Path) Primary(primary, arch *Ident) Path {
	suffix := fmt.Sprintf("@%s(%s)", Lower(primary), Lower(arch))
	return Path{
		InstName: p.InstName + suffix,
		Dotted:   p.Dotted, // the dotted (mangling) name does not carry @primary(arch)
	}
}

func joinDotted(prefix, label string) string {
	if prefix == "" {
		return label
	}
	return prefix + "." + label
}

// HasPrefix reports whether child was built by extending parent, honouring
// the invariant from spec.md §3: "every descendant path begins with its
// parent's path" (":"-terminated for inst_name, "."-terminated for dotted).
func HasPrefix(parent, child Path) bool {
	return hasSepPrefix(parent.InstName, child.InstName, ':') &&
		hasSepPrefix(parent.Dotted, child.Dotted, '.')
}

func hasSepPrefix(parent, child string, sep byte) bool {
	if parent == "" {
		return true
	}
	if len(child) <= len(parent) {
		return false
	}
	return child[:len(parent)] == parent && child[len(parent)] == sep
}
