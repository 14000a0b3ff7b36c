package elaborate

import (
	"github.com/sunholo/vhdlelab/internal/diag"
	"github.com/sunholo/vhdlelab/internal/driveranalysis"
	"github.com/sunholo/vhdlelab/internal/fold"
	"github.com/sunholo/vhdlelab/internal/ident"
	"github.com/sunholo/vhdlelab/internal/library"
	"github.com/sunholo/vhdlelab/internal/lower"
	"github.com/sunholo/vhdlelab/internal/modcache"
	"github.com/sunholo/vhdlelab/internal/override"
)

// newTestCollab builds a Collaborators wired to the reference
// implementation of every narrow collaborator interface, the same
// combination a root driver wires in production, so elaborate's own
// tests exercise the real binding/generate/recurse code against real
// (if minimal) collaborators rather than hand-rolled mocks.
func newTestCollab() *Collaborators {
	reg := lower.NewRegistry()
	return &Collaborators{
		Idents:    ident.NewTable(),
		Library:   library.NewInMemory(),
		Folder:    fold.NewDefault(nil),
		Lowerer:   lower.NewDefault(reg, lower.Config{}),
		Registry:  reg,
		ModCache:  modcache.New(),
		Overrides: override.New(),
		Drivers:   driveranalysis.Default{},
		Diag:      diag.NewEngine(),
	}
}
