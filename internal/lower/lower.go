// Package lower implements the narrow lowering-pass interface
// elaboration depends on (spec.md §2: "Lower", "LowerModule"), plus a
// reference implementation producing a LoweredUnit registered in a
// Registry and finalised when its owning scope is popped (spec.md
// §4.7). Modeled on the teacher's internal/pipeline phase structure:
// a Config, a Result-shaped output, and per-phase timings recorded in
// milliseconds.
package lower

import (
	"sync"
	"time"

	"github.com/sunholo/vhdlelab/internal/design"
)

// Config mirrors the teacher's pipeline.Config shape, narrowed to the
// options this lowering pass actually has: whether to record phase
// timings (cheap to skip in hot test loops) and an optional hook
// called once per completed phase.
type Config struct {
	RecordTimings bool
	PhaseHook     func(phase string, elapsed time.Duration)
}

// LoweredUnit is the output of one Lower/LowerModule call: an opaque
// handle bound to the Registry it was registered in, finalised exactly
// once when its scope is popped (spec.md §3 "Scoped resources").
type LoweredUnit struct {
	Name         string
	Block        *design.Block
	PhaseTimings map[string]int64 // milliseconds, keyed by phase name
	finalized    bool
}

// Finalized reports whether Registry.Finalize has already run for this
// unit.
func (u *LoweredUnit) Finalized() bool { return u.finalized }

// Registry tracks every LoweredUnit produced during one elaboration
// run, so the root driver can flush the top-level unit at teardown
// (spec.md §4.8: "flush the top-level unit from the registry").
type Registry struct {
	mu    sync.Mutex
	units map[string]*LoweredUnit
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{units: make(map[string]*LoweredUnit)}
}

// Register records u under its own name. Registering a second unit
// under a name already present overwrites it (re-lowering, e.g. after
// a generic-resolution retry, is expected to replace the prior unit).
func (r *Registry) Register(u *LoweredUnit) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.units[u.Name] = u
}

// Finalize marks the named unit finalized in place, as required when
// its owning scope is popped (spec.md §4.7), without removing it from
// the registry.
func (r *Registry) Finalize(name string) (*LoweredUnit, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.units[name]
	if !ok {
		return nil, false
	}
	u.finalized = true
	return u, true
}

// Flush removes and returns the named unit, used once by the root
// driver at top-level teardown (spec.md §4.8).
func (r *Registry) Flush(name string) (*LoweredUnit, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.units[name]
	if ok {
		delete(r.units, name)
	}
	return u, ok
}

// Len reports how many units are currently registered.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.units)
}

// Lowerer is the interface elaboration consumes.
type Lowerer interface {
	// Lower produces a LoweredUnit for a VHDL output block, registering
	// it in the bound Registry under name.
	Lower(name string, block *design.Block) (*LoweredUnit, error)
	// LowerModule produces the opaque lowering-IR handle for a Verilog
	// module, used by internal/modcache's shape field.
	LowerModule(mod *design.VerilogModule) (any, error)
}

// Default is the reference Lowerer: it does no real IR generation (the
// genuine lowering pass is an external collaborator, out of scope per
// spec.md §1/§4), only phase bookkeeping and registry wiring, so that
// the elaboration core can be exercised and tested end to end without
// a real backend.
type Default struct {
	Registry *Registry
	Config   Config
}

// NewDefault creates a Default lowerer bound to reg.
func NewDefault(reg *Registry, cfg Config) *Default {
	return &Default{Registry: reg, Config: cfg}
}

func (d *Default) Lower(name string, block *design.Block) (*LoweredUnit, error) {
	timings := make(map[string]int64)
	d.timePhase(timings, "collect", func() {})
	d.timePhase(timings, "emit", func() {})

	u := &LoweredUnit{Name: name, Block: block, PhaseTimings: timings}
	d.Registry.Register(u)
	return u, nil
}

func (d *Default) LowerModule(mod *design.VerilogModule) (any, error) {
	return "lowered:" + mod.Ident.String(), nil
}

func (d *Default) timePhase(timings map[string]int64, phase string, fn func()) {
	start := time.Now()
	fn()
	elapsed := time.Since(start)
	if d.Config.RecordTimings {
		timings[phase] = elapsed.Milliseconds()
	}
	if d.Config.PhaseHook != nil {
		d.Config.PhaseHook(phase, elapsed)
	}
}
