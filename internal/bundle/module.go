// Package bundle implements the three-stage build pipeline: source
// loading, boundary stripping, and bundle assembly. Modules are treated
// as opaque text apart from their import/export boundary syntax; the
// concatenated result is wrapped in a scope-isolating closure so that
// cross-module linkage happens through shared lexical scope, in the
// caller-supplied order.
package bundle

// ModuleSpec identifies one module within the ordered build list.
type ModuleSpec struct {
	// Index is the module's position in the configured order. Order is
	// semantically binding: a module may only reference symbols defined
	// by modules with a lower index.
	Index int

	// Path is the module's path relative to the project root.
	Path string
}

// ModuleSource is a ModuleSpec paired with its raw text content, or an
// absent marker when the file did not exist at build time. Sources live
// for one build invocation and are never cached across runs.
type ModuleSource struct {
	ModuleSpec

	// Content is the raw module text. Empty when Absent.
	Content string

	// Absent reports that the file was missing at load time. Absent
	// modules are skipped by the assembler.
	Absent bool
}

// Specs builds the ordered ModuleSpec list for a set of relative paths.
// Duplicate paths are kept; they produce duplicate bundle entries.
func Specs(paths []string) []ModuleSpec {
	specs := make([]ModuleSpec, len(paths))
	for i, p := range paths {
		specs[i] = ModuleSpec{Index: i, Path: p}
	}
	return specs
}
