// Package override implements the process-wide generic override table
// (spec.md §2.2, §4.4, §6): an ordered list of (qualified-name, textual
// value) pairs, consumed destructively during generic resolution.
package override

import "sync"

// Entry is one override pair, in the order it was added via the CLI
// surface (-gNAME=VALUE) or a config file.
type Entry struct {
	QualifiedName string
	Value         string
	consumed      bool
}

// Table is the additive/destructive override API described in spec.md §6:
// "an additive API (set_generic(name, value)) and a destructive
// consumption ordering: overrides are matched by the fully qualified name
// ... first match in insertion order wins."
//
// Guarded by a mutex only to document the process-wide contract (see
// SPEC_FULL.md §5); elaboration itself is single-threaded.
type Table struct {
	mu      sync.Mutex
	entries []*Entry
}

// New creates an empty override table.
func New() *Table { return &Table{} }

// Set adds an override pair. Matches spec.md's set_generic(name, value).
func (t *Table) Set(qualifiedName, value string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = append(t.entries, &Entry{QualifiedName: qualifiedName, Value: value})
}

// Consume finds and removes the first unconsumed entry whose qualified name
// matches, returning its textual value. Every consumption removes exactly
// one node (spec.md §3 invariant; §8 "no double-consumption, no silent
// drop").
func (t *Table) Consume(qualifiedName string) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, e := range t.entries {
		if !e.consumed && e.QualifiedName == qualifiedName {
			e.consumed = true
			t.entries = append(t.entries[:i:i], t.entries[i+1:]...)
			return e.Value, true
		}
	}
	return "", false
}

// Unused returns the qualified names of every entry never consumed, for the
// root-teardown "generic value for X not used" warning (spec.md §4.8, §8
// scenario 5).
func (t *Table) Unused() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	var out []string
	for _, e := range t.entries {
		if !e.consumed {
			out = append(out, e.QualifiedName)
		}
	}
	return out
}

// Len reports the number of entries still present (consumed entries are
// removed immediately, so this equals the unconsumed count).
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}
