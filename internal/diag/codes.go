// Package diag provides the centralized error-code taxonomy for the
// elaboration core, in the same phase-prefixed, AI-friendly style as the
// teacher's internal/errors package.
package diag

// Error code constants, grouped by the five kinds spec.md §7 names:
// binding, static-evaluation, structural, consistency, and fatal-trace.
const (
	// ============================================================
	// Binding errors (BND###)
	// ============================================================

	BND001 = "BND001" // unresolved component/entity reference
	BND002 = "BND002" // port count mismatch
	BND003 = "BND003" // generic count / identity mismatch
	BND004 = "BND004" // type mismatch between formal and actual
	BND005 = "BND005" // missing coercion for a cross-language port pair
	BND006 = "BND006" // unmatched component port after mixed binding
	BND007 = "BND007" // binding class mismatch (entity vs component vs configuration)
	BND008 = "BND008" // missing default for unconnected formal

	// ============================================================
	// Static-evaluation errors (GEX###)
	// ============================================================

	GEX001 = "GEX001" // non-static generate range
	GEX002 = "GEX002" // non-static generate condition
	GEX003 = "GEX003" // non-foldable scalar generic actual

	// ============================================================
	// Structural errors (STR###)
	// ============================================================

	STR001 = "STR001" // unsupported top-level unit kind
	STR002 = "STR002" // maximum instantiation depth exceeded
	STR003 = "STR003" // unconstrained top-level port without connection
	STR004 = "STR004" // top-level generic without default or override
	STR005 = "STR005" // unsupported explicit-binding form (ndecls != 1)

	// ============================================================
	// Consistency errors (CNS###)
	// ============================================================

	CNS001 = "CNS001" // Verilog module identifier mismatch in library
	CNS002 = "CNS002" // missing port in cross-language component

	// ============================================================
	// Fatal traces (FAT###)
	// ============================================================

	FAT001 = "FAT001" // unreachable tree-kind case
	FAT002 = "FAT002" // scope push/pop obligation violated
)

// Info describes one error code's phase/category/description, exactly the
// shape the teacher registers for PAR/MOD/LDR/... codes.
type Info struct {
	Code        string
	Phase       string
	Category    string
	Description string
}

// Registry maps every known code to its Info.
var Registry = map[string]Info{
	BND001: {BND001, "binding", "resolution", "Unresolved component or entity reference"},
	BND002: {BND002, "binding", "port", "Port count mismatch"},
	BND003: {BND003, "binding", "generic", "Generic count or identity mismatch"},
	BND004: {BND004, "binding", "type", "Type mismatch between formal and actual"},
	BND005: {BND005, "binding", "coercion", "Missing cross-language coercion"},
	BND006: {BND006, "binding", "port", "Unmatched component port"},
	BND007: {BND007, "binding", "class", "Binding class mismatch"},
	BND008: {BND008, "binding", "default", "Missing default for unconnected formal"},

	GEX001: {GEX001, "generate", "static", "Non-static generate range"},
	GEX002: {GEX002, "generate", "static", "Non-static generate condition"},
	GEX003: {GEX003, "generic", "fold", "Non-foldable scalar generic actual"},

	STR001: {STR001, "structure", "unit", "Unsupported top-level unit kind"},
	STR002: {STR002, "structure", "depth", "Maximum instantiation depth exceeded"},
	STR003: {STR003, "structure", "port", "Unconstrained top-level port without connection"},
	STR004: {STR004, "structure", "generic", "Top-level generic without default or override"},
	STR005: {STR005, "structure", "configuration", "Unsupported explicit binding form"},

	CNS001: {CNS001, "consistency", "module", "Verilog module identifier mismatch in library"},
	CNS002: {CNS002, "consistency", "port", "Missing port in cross-language component"},

	FAT001: {FAT001, "fatal", "trace", "Unreachable tree-kind case"},
	FAT002: {FAT002, "fatal", "scope", "Scope obligation violated"},
}

// Lookup returns the Info for a code.
func Lookup(code string) (Info, bool) {
	info, ok := Registry[code]
	return info, ok
}

func hasPhase(code, phase string) bool {
	info, ok := Lookup(code)
	return ok && info.Phase == phase
}

func IsBindingError(code string) bool    { return hasPhase(code, "binding") }
func IsGenerateError(code string) bool   { return hasPhase(code, "generate") }
func IsStructuralError(code string) bool { return hasPhase(code, "structure") }
func IsConsistencyError(code string) bool { return hasPhase(code, "consistency") }
func IsFatalTrace(code string) bool      { return hasPhase(code, "fatal") }
