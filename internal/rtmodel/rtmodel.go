// Package rtmodel implements the run-time scope model elaboration builds
// in lockstep with the design tree (spec.md §4.7): a strictly-nested
// Scope tree, one node per pushed hierarchy level, each carrying an
// opaque per-scope data blob private to whatever external collaborator
// (driver analysis, lowering) wants to stash scope-local state.
// Modeled on the teacher's internal/link nested-environment chains: a
// parent pointer, a local map, lookups walking outward.
package rtmodel

import "fmt"

// Scope is one node of the run-time model tree. Push creates a child
// under the current scope; Pop detaches it and returns its blob so the
// caller can finalise whatever that blob owns (spec.md §4.7: "Popping
// frees the generics hash, the driver set, and finalises the lowered
// unit with the unit registry").
type Scope struct {
	parent   *Scope
	children []*Scope
	instName string // hierarchical inst_name path, e.g. "top:u1:u2"
	dotted   string // mangling dotted name, e.g. "top.u1.u2"
	blob     any
	finalized bool
}

// NewRoot creates the single root scope for one elaboration run.
func NewRoot() *Scope {
	return &Scope{instName: "top", dotted: "top"}
}

// Push creates and attaches a child scope at the given path, matching
// the ident.Path the elaboration context carries for the same instance
// (spec.md §3/§6 path grammar; not re-validated here, just stored).
func (s *Scope) Push(instName, dotted string) *Scope {
	child := &Scope{parent: s, instName: instName, dotted: dotted}
	s.children = append(s.children, child)
	return child
}

// Pop detaches s from its parent and marks it finalized, returning the
// blob that had been stored on it. Popping the root scope is a no-op
// beyond marking it finalized (there is no parent to detach from).
func (s *Scope) Pop() any {
	if s.finalized {
		panic(fmt.Sprintf("rtmodel: scope %q popped twice", s.dotted))
	}
	s.finalized = true
	if s.parent != nil {
		s.parent.removeChild(s)
	}
	return s.blob
}

func (s *Scope) removeChild(child *Scope) {
	for i, c := range s.children {
		if c == child {
			s.children = append(s.children[:i], s.children[i+1:]...)
			return
		}
	}
}

// SetBlob stores the opaque per-scope payload (generics map, driver
// set, lowered-unit handle — whatever the caller needs to recover on
// Pop). Overwrites any previous blob.
func (s *Scope) SetBlob(blob any) { s.blob = blob }

// Blob returns the current per-scope payload.
func (s *Scope) Blob() any { return s.blob }

// InstName returns this scope's hierarchical instance-name path.
func (s *Scope) InstName() string { return s.instName }

// Dotted returns this scope's dotted mangling name.
func (s *Scope) Dotted() string { return s.dotted }

// Parent returns the enclosing scope, or nil at the root.
func (s *Scope) Parent() *Scope { return s.parent }

// Children returns the live (not yet popped) child scopes, in push
// order.
func (s *Scope) Children() []*Scope { return s.children }

// Finalized reports whether Pop has already been called on s.
func (s *Scope) Finalized() bool { return s.finalized }

// Depth walks up to the root counting hops, used by callers that want
// to cross-check the model's nesting depth against the elaboration
// context's own depth counter (spec.md §3's 127-deep recursion cap).
func (s *Scope) Depth() int {
	n := 0
	for cur := s.parent; cur != nil; cur = cur.parent {
		n++
	}
	return n
}
