// Package library implements the narrow library-manager interface
// elaboration depends on: finding design units by qualified name and
// enumerating units for the default-binding synthesis scan, each unit
// carrying a modification timestamp and source location exactly as
// spec.md §4.1/§4.3.1 requires. Modeled on the teacher's internal/module
// loader: an identity-keyed cache with deterministic enumeration order.
package library

import (
	"strings"
	"sync"

	"github.com/sunholo/vhdlelab/internal/design"
)

// Unit is one analysed design unit as the library manager hands it back:
// the object itself, plus the bookkeeping elaboration needs but which the
// tree builder does not carry on the Object (spec.md §4.1: "using library
// modification time with source-location tie-breaking").
type Unit struct {
	Library string // e.g. "work"
	Name    string // e.g. "foo-rtl", lowercase
	Kind    design.Kind
	MTime   int64 // logical modification time; higher is newer
	Obj     design.Object
}

// Manager is the library-manager interface elaboration consumes. A real
// implementation would back onto a persistent unit database; this package
// provides Manager plus an in-memory reference implementation.
type Manager interface {
	// Find looks up one unit by its exact qualified name
	// ("<library>.<unit-name>").
	Find(qualifiedName string) (*Unit, bool)
	// AllUnits returns every analysed unit of library, in a deterministic
	// (insertion) order, for lib_for_all scans (spec.md §4.3.1).
	AllUnits(library string) []*Unit
}

// InMemory is a reference Manager backed by a simple ordered map, safe for
// concurrent reads/writes the way the teacher's module.Loader cache is
// (sync.RWMutex-guarded).
type InMemory struct {
	mu    sync.RWMutex
	units map[string]*Unit // "<library>.<name>" -> unit
	order []string         // insertion order, for deterministic AllUnits
}

// NewInMemory creates an empty library manager.
func NewInMemory() *InMemory {
	return &InMemory{units: make(map[string]*Unit)}
}

// Add registers a unit, overwriting (re-analysing) any prior unit of the
// same qualified name.
func (m *InMemory) Add(u *Unit) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := qualify(u.Library, u.Name)
	if _, exists := m.units[key]; !exists {
		m.order = append(m.order, key)
	}
	m.units[key] = u
}

func qualify(library, name string) string {
	return strings.ToLower(library) + "." + strings.ToLower(name)
}

// Find implements Manager.
func (m *InMemory) Find(qualifiedName string) (*Unit, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.units[strings.ToLower(qualifiedName)]
	return u, ok
}

// AllUnits implements Manager, returning units of the given library in
// insertion order (library walks are deterministic per spec.md §5).
func (m *InMemory) AllUnits(library string) []*Unit {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*Unit
	lib := strings.ToLower(library)
	for _, key := range m.order {
		u := m.units[key]
		if strings.ToLower(u.Library) == lib {
			out = append(out, u)
		}
	}
	return out
}

// StripEntityName strips a unit name with "-" as separator down to its
// entity part, e.g. "foo-rtl" -> "foo", used by the architecture chooser
// to find every Arch of a given entity (spec.md §4.1).
func StripEntityName(unitName string) string {
	if i := strings.IndexByte(unitName, '-'); i >= 0 {
		return unitName[:i]
	}
	return unitName
}

