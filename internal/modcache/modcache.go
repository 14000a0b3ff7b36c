// Package modcache implements the process-wide Verilog module cache
// (spec.md §4.2): for each top-level Verilog module, lazily construct
// and memoise a {shape, block, wrap} triple. Idempotent — repeated
// Get calls for the same module return the same cached record — and
// owned by the root elaboration context, freed only at top-level
// teardown (spec.md §3/§5: "entries added as first-seen, never removed
// during elaboration ... freed only at top-level teardown").
package modcache

import (
	"sync"

	"github.com/sunholo/vhdlelab/internal/design"
)

// Entry is one memoised module-cache record.
type Entry struct {
	Mod   *design.VerilogModule
	Shape any // opaque lowering-IR handle, as returned by lower.LowerModule
	Block *design.Block
	Wrap  *design.VerilogWrap
}

// Builder constructs a fresh Entry for a module not yet seen. Callers
// supply this so modcache stays independent of internal/lower and
// internal/design's block-construction specifics.
type Builder func(mod *design.VerilogModule) (shape any, block *design.Block, wrap *design.VerilogWrap)

// Cache is the process-wide module cache, guarded by a mutex only to
// document the process-wide contract (SPEC_FULL.md §5); elaboration
// itself is single-threaded.
type Cache struct {
	mu      sync.Mutex
	entries map[*design.VerilogModule]*Entry
	order   []*design.VerilogModule
	freed   bool
}

// New creates an empty module cache.
func New() *Cache {
	return &Cache{entries: make(map[*design.VerilogModule]*Entry)}
}

// Get returns the cached Entry for mod, building it via build on first
// query (spec.md §4.2: "lazily construct and store"). Panics if called
// after Free — the cache is owned by the root context and must not
// outlive root teardown.
func (c *Cache) Get(mod *design.VerilogModule, build Builder) *Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.freed {
		panic("modcache: Get called after Free")
	}
	if e, ok := c.entries[mod]; ok {
		return e
	}
	shape, block, wrap := build(mod)
	e := &Entry{Mod: mod, Shape: shape, Block: block, Wrap: wrap}
	c.entries[mod] = e
	c.order = append(c.order, mod)
	return e
}

// Len reports the number of distinct modules cached so far.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Free releases every cached entry (spec.md §4.8: "free the module
// cache (the cache owns its entries)"), called once by the root driver
// after elaboration completes. A freed cache rejects further Get calls.
func (c *Cache) Free() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
	c.order = nil
	c.freed = true
}
