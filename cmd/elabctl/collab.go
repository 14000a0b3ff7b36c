package main

import (
	"github.com/sunholo/vhdlelab/internal/diag"
	"github.com/sunholo/vhdlelab/internal/driveranalysis"
	"github.com/sunholo/vhdlelab/internal/elaborate"
	"github.com/sunholo/vhdlelab/internal/fold"
	"github.com/sunholo/vhdlelab/internal/ident"
	"github.com/sunholo/vhdlelab/internal/library"
	"github.com/sunholo/vhdlelab/internal/lower"
	"github.com/sunholo/vhdlelab/internal/modcache"
	"github.com/sunholo/vhdlelab/internal/override"
)

// newDefaultCollaborators wires the reference implementation of every
// narrow collaborator interface elaborate.Collaborators needs, against a
// caller-supplied identifier table and library. This is the production
// wiring a real front end would also use, kept in one place so both the
// elaborate and inspect subcommands build it identically.
func newDefaultCollaborators(idents *ident.Table, lib library.Manager) *elaborate.Collaborators {
	reg := lower.NewRegistry()
	return &elaborate.Collaborators{
		Idents:    idents,
		Library:   lib,
		Folder:    fold.NewDefault(nil),
		Lowerer:   lower.NewDefault(reg, lower.Config{}),
		Registry:  reg,
		ModCache:  modcache.New(),
		Overrides: override.New(),
		Drivers:   driveranalysis.Default{},
		Diag:      diag.NewEngine(),
	}
}
