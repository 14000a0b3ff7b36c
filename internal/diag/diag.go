package diag

import (
	"fmt"
	"strings"
)

// Diagnostic is one recorded error or warning.
type Diagnostic struct {
	Code     string
	Message  string
	Pos      string // formatted source location; kept as a string to avoid an import cycle with design
	Hints    []string
	Fatal    bool
}

func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", d.Code, d.Message)
	if d.Pos != "" {
		fmt.Fprintf(&b, " (%s)", d.Pos)
	}
	for _, h := range d.Hints {
		fmt.Fprintf(&b, "\n  %s", h)
	}
	return b.String()
}

// Engine accumulates diagnostics and implements the "gate" propagation
// policy from spec.md §7: most errors are continuable and recorded, a
// non-zero error count short-circuits later phases, and a hint stack is
// pushed around lowering so any diagnostic raised there carries a
// "while elaborating instance <label>" note.
type Engine struct {
	Diags    []Diagnostic
	Warnings []Diagnostic
	hints    []string
}

// NewEngine creates an empty diagnostic engine.
func NewEngine() *Engine { return &Engine{} }

// Error records a continuable error, decorating it with the current hint
// stack (in push order, outermost first).
func (e *Engine) Error(code, pos, format string, args ...interface{}) {
	e.Diags = append(e.Diags, Diagnostic{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
		Hints:   e.snapshotHints(),
	})
}

// Warn records a warning, which never gates subsequent phases.
func (e *Engine) Warn(code, pos, format string, args ...interface{}) {
	e.Warnings = append(e.Warnings, Diagnostic{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	})
}

// Fatal panics with a FatalError, to be recovered only at a root driver
// boundary. Fatal traces terminate elaboration immediately (spec.md §7);
// a depth-cap breach is recorded through Error instead.
func (e *Engine) Fatal(code, pos, format string, args ...interface{}) {
	panic(&FatalError{Diagnostic: Diagnostic{
		Code: code, Message: fmt.Sprintf(format, args...), Pos: pos, Hints: e.snapshotHints(), Fatal: true,
	}})
}

// FatalError is the panic payload used by Engine.Fatal.
type FatalError struct{ Diagnostic }

func (f *FatalError) Error() string { return f.Diagnostic.String() }

// HasErrors reports whether any continuable error has been recorded. Every
// phase gate in the recursor (elaborate's Ctx.Gate) checks this before
// proceeding (spec.md §7:
// "a non-zero error count short-circuits the remaining phases").
func (e *Engine) HasErrors() bool { return len(e.Diags) > 0 }

// PushHint pushes a diagnostic hint (e.g. "while elaborating instance u1").
// Callers must pair every push with a deferred PopHint so hints unwind on
// every exit path, including panics (spec.md §5 "Shared resources").
func (e *Engine) PushHint(hint string) { e.hints = append(e.hints, hint) }

// PopHint pops the most recently pushed hint.
func (e *Engine) PopHint() {
	if len(e.hints) > 0 {
		e.hints = e.hints[:len(e.hints)-1]
	}
}

func (e *Engine) snapshotHints() []string {
	if len(e.hints) == 0 {
		return nil
	}
	out := make([]string, len(e.hints))
	copy(out, e.hints)
	return out
}

// InstanceHint formats the "while elaborating instance <label>" hint
// (spec.md §7 "Hints").
func InstanceHint(label string) string {
	return fmt.Sprintf("while elaborating instance %s", label)
}
