// Package driveranalysis implements the narrow driver-analyser interface
// elaboration consumes (spec.md §2: "given a design body, returns its
// driver set"): walking a statement list and reporting which signals it
// drives, so elaboration can thread a DriverSet into the scope it is
// about to push and free on pop (spec.md §4.7). Modeled on the
// teacher's internal/types effects.go style of walking a body and
// accumulating a typed set.
package driveranalysis

import (
	"sort"

	"github.com/sunholo/vhdlelab/internal/design"
	"github.com/sunholo/vhdlelab/internal/ident"
)

// DriverSet is the set of signal names driven by a body.
type DriverSet struct {
	names map[string]bool
}

// NewDriverSet creates an empty set.
func NewDriverSet() *DriverSet { return &DriverSet{names: make(map[string]bool)} }

// Add records name as driven.
func (d *DriverSet) Add(name string) { d.names[name] = true }

// Contains reports whether name is driven.
func (d *DriverSet) Contains(name string) bool { return d.names[name] }

// Union merges other's entries into d.
func (d *DriverSet) Union(other *DriverSet) {
	for n := range other.names {
		d.names[n] = true
	}
}

// Names returns the driven signal names in sorted order, for
// deterministic diagnostics and tests.
func (d *DriverSet) Names() []string {
	out := make([]string, 0, len(d.names))
	for n := range d.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Len reports the number of distinct driven signals.
func (d *DriverSet) Len() int { return len(d.names) }

// Analyser is the interface elaboration depends on.
type Analyser interface {
	// Analyse walks body (an architecture's or generate block's
	// statement list) and returns the signals it drives.
	Analyse(body []design.Object) *DriverSet
}

// Default is the reference Analyser: it tracks signals connected to
// out/inout actuals on instantiation statements, and recurses into
// generate-statement bodies. Process and PSL-directive bodies are
// opaque Objects in this design tree (spec.md §4.6: copied verbatim,
// not descended into) — a full driver analyser would inspect their
// assignment targets too, but that is exactly the external-collaborator
// internals spec.md places out of scope for this core.
type Default struct{}

func (Default) Analyse(body []design.Object) *DriverSet {
	ds := NewDriverSet()
	analyseList(body, ds)
	return ds
}

func analyseList(body []design.Object, ds *DriverSet) {
	for _, obj := range body {
		analyseOne(obj, ds)
	}
}

func analyseOne(obj design.Object, ds *DriverSet) {
	switch n := obj.(type) {
	case *design.Instance:
		analyseInstance(n, ds)
	case *design.ForGenerate:
		analyseList(n.Body, ds)
	case *design.IfGenerate:
		for _, b := range n.Bodies {
			analyseList(b, ds)
		}
		if n.HasElse {
			analyseList(n.ElseBody, ds)
		}
	case *design.CaseGenerate:
		for _, alt := range n.Alts {
			analyseList(alt.Body, ds)
		}
	case *design.Block:
		analyseList(n.Stmts, ds)
	}
}

func analyseInstance(inst *design.Instance, ds *DriverSet) {
	ports := portsOf(inst.Resolved)
	if ports == nil {
		return
	}
	for _, p := range inst.Params {
		formal := matchFormal(p, ports)
		if formal == nil || formal.Dir == design.DirIn {
			continue
		}
		if ref, ok := p.Value.(*design.Ref); ok && ref.Name != nil {
			ds.Add(ref.Name.String())
		}
	}
}

func matchFormal(p *design.Param, ports []*design.Port) *design.Port {
	switch p.PKind {
	case design.PPos:
		if p.Pos_ >= 0 && p.Pos_ < len(ports) {
			return ports[p.Pos_]
		}
	case design.PNamed:
		for _, fp := range ports {
			if ident.EqualFold(fp.Name, p.Name) {
				return fp
			}
		}
	}
	return nil
}

// portsOf extracts the formal port list from whatever an Instance's
// Resolved binding target is.
func portsOf(resolved design.Object) []*design.Port {
	switch r := resolved.(type) {
	case *design.Entity:
		return r.Ports
	case *design.Component:
		return r.Ports
	case *design.Arch:
		if r.Entity != nil {
			return r.Entity.Ports
		}
	}
	return nil
}
