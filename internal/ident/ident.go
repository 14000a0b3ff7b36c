// Package ident implements interned identifiers and the hierarchical path
// grammar used throughout elaboration.
package ident

import (
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"
)

// Ident is an interned identifier. Equality between two Idents minted by the
// same Table is pointer equality; Table guarantees one Ident per distinct
// normalized spelling.
type Ident struct {
	text string
}

// String returns the identifier's original (not case-folded) spelling.
func (id *Ident) String() string {
	if id == nil {
		return ""
	}
	return id.text
}

// Table interns identifiers. A Table is safe for concurrent use; the
// elaboration core itself is single-threaded (see design note on
// concurrency), but a Table may be shared with a concurrent inspector.
type Table struct {
	mu    sync.Mutex
	byKey map[string]*Ident
}

// NewTable creates an empty interning table.
func NewTable() *Table {
	return &Table{byKey: make(map[string]*Ident)}
}

// Intern returns the canonical *Ident for text, normalizing to NFC first so
// that Unicode-equivalent spellings always collide on the same pointer.
func (t *Table) Intern(text string) *Ident {
	norm := normalize(text)
	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.byKey[norm]; ok {
		return id
	}
	id := &Ident{text: text}
	t.byKey[norm] = id
	return id
}

func normalize(s string) string {
	b := []byte(s)
	if !norm.NFC.IsNormal(b) {
		b = norm.NFC.Bytes(b)
	}
	return string(b)
}

// EqualFold compares two identifiers case-insensitively without allocating.
// Per the VHDL LRM, identifier comparison ignores case; this is the single
// helper every binding algorithm uses instead of ad hoc strings.EqualFold
// calls, so that a future extended-identifier rule has one place to change.
func EqualFold(a, b *Ident) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return strings.EqualFold(a.text, b.text)
}

// Lower returns the LRM-mandated lowercase spelling used in hierarchical
// paths (inst_name). Every letter is lowercased, extended identifiers
// included.
func Lower(id *Ident) string {
	if id == nil {
		return ""
	}
	return strings.ToLower(id.text)
}
