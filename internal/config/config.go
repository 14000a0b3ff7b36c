// Package config loads the YAML elaboration options a driver reads
// before building Collaborators: library search roots, the default
// top-level unit, a depth-cap override for testing, and generic
// overrides merged after whatever the CLI supplies (spec.md's
// "configuration file loading" ambient stack, modeled on the teacher's
// internal/eval_harness.LoadSpec YAML-via-os.ReadFile pattern).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Override is one generic override pair as written in a config file's
// overrides list, merged into the override.Table after any CLI
// --override NAME=VALUE flags, so a command-line value wins (spec.md §6:
// "an additive API").
type Override struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Config is the elaboration driver's file-backed option set.
type Config struct {
	// LibraryRoots are directories scanned for design units, in search
	// order; a real library.Manager implementation walks these, the
	// in-memory reference one ignores them.
	LibraryRoots []string `yaml:"library_roots"`
	// TopUnit names the default top-level entity/module when the CLI
	// invocation does not name one explicitly.
	TopUnit string `yaml:"top_unit"`
	// DepthCap overrides elaborate.MaxDepth when positive, letting a
	// test config exercise the depth guard without 127 levels of
	// nesting.
	DepthCap int `yaml:"depth_cap"`
	// Overrides is merged into the override.Table before elaboration
	// starts. override.Table.Consume is first-match-wins by insertion
	// order, so a CLI -gNAME=VALUE flag for the same name takes priority
	// over a config entry only if the driver Sets it first; this
	// package's own Load does not decide that ordering, the driver does.
	Overrides []Override `yaml:"overrides"`
}

// Load reads and parses a YAML config file. A missing TopUnit or empty
// LibraryRoots is not an error here — those are validated by the driver
// against the actual CLI invocation, not by the config loader itself.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Default returns the zero-value configuration a driver falls back to
// when no -config flag was given.
func Default() *Config { return &Config{} }
