package bundle

import (
	"fmt"
	"regexp"
	"strings"
)

// Severity classifies a lint issue.
type Severity string

// Issue severities. Errors mean the produced bundle would fail at load
// time; warnings mean the stripper will pass boundary syntax through
// unmodified.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one lint finding, located by module path and line.
type Issue struct {
	Path     string
	Line     int
	Severity Severity
	Message  string
}

// Because all modules share one closure scope, an import is only
// satisfiable when some earlier module defines the symbol. Lint makes
// that implicit dependency edge checkable at build time instead of
// surfacing as a load-time reference error.
var (
	declRe          = regexp.MustCompile(`(?m)^[ \t]*(?:export\s+)?(?:const|let|var|function|class)\s+([A-Za-z_$][A-Za-z0-9_$]*)`)
	namedImportRe   = regexp.MustCompile(`import\s+\{([^}]*)\}\s+from\s+['"][^'"]+['"]`)
	defaultImportRe = regexp.MustCompile(`import\s+(\w+)\s+from\s+['"][^'"]+['"]`)

	// Boundary forms none of the rewrite rules recognize. The build
	// passes these through silently and the bundle breaks at load time.
	unrecognizedForms = []struct {
		re   *regexp.Regexp
		what string
	}{
		{regexp.MustCompile(`import\s*\*\s*as\s+\w+`), "namespace import"},
		{regexp.MustCompile(`export\s+\{[^}]*\}\s+from\s+['"]`), "re-export"},
		{regexp.MustCompile(`export\s*\*\s*from`), "wildcard re-export"},
		{regexp.MustCompile(`\bimport\s*\(`), "dynamic import"},
	}
)

// Lint verifies that every imported symbol is defined by a module
// earlier in the configured order, and flags boundary syntax the
// stripper does not recognize. Absent modules are skipped. Analysis is
// textual; module bodies stay opaque beyond declaration headers.
func Lint(sources []ModuleSource) []Issue {
	var issues []Issue

	// First pass: which module first defines each top-level symbol.
	firstDefined := make(map[string]int)
	for _, src := range sources {
		if src.Absent {
			continue
		}
		for _, m := range declRe.FindAllStringSubmatch(src.Content, -1) {
			name := m[1]
			if _, ok := firstDefined[name]; !ok {
				firstDefined[name] = src.Index
			}
		}
	}

	// Second pass: check each module's imports against earlier modules.
	for _, src := range sources {
		if src.Absent {
			continue
		}

		for _, loc := range namedImportRe.FindAllStringSubmatchIndex(src.Content, -1) {
			line := lineAt(src.Content, loc[0])
			symbols := src.Content[loc[2]:loc[3]]
			for _, raw := range strings.Split(symbols, ",") {
				name := strings.TrimSpace(raw)
				if name == "" {
					continue
				}
				if strings.Contains(name, " as ") {
					issues = append(issues, Issue{
						Path:     src.Path,
						Line:     line,
						Severity: SeverityWarning,
						Message:  fmt.Sprintf("import alias %q is not supported; the alias binding will not exist in the bundle", name),
					})
					continue
				}
				issues = append(issues, checkImport(src, name, line, firstDefined)...)
			}
		}

		for _, loc := range defaultImportRe.FindAllStringSubmatchIndex(src.Content, -1) {
			line := lineAt(src.Content, loc[0])
			name := src.Content[loc[2]:loc[3]]
			issues = append(issues, checkImport(src, name, line, firstDefined)...)
		}

		for _, form := range unrecognizedForms {
			for _, loc := range form.re.FindAllStringIndex(src.Content, -1) {
				issues = append(issues, Issue{
					Path:     src.Path,
					Line:     lineAt(src.Content, loc[0]),
					Severity: SeverityWarning,
					Message:  fmt.Sprintf("%s is not rewritten by the bundler and will fail when the bundle loads", form.what),
				})
			}
		}
	}

	return issues
}

// HasErrors reports whether any issue is error severity.
func HasErrors(issues []Issue) bool {
	for _, is := range issues {
		if is.Severity == SeverityError {
			return true
		}
	}
	return false
}

// checkImport validates one imported symbol against the modules that
// precede src in the configured order.
func checkImport(src ModuleSource, name string, line int, firstDefined map[string]int) []Issue {
	def, ok := firstDefined[name]
	if ok && def < src.Index {
		return nil
	}

	msg := fmt.Sprintf("symbol %q is not defined by any configured module", name)
	if ok {
		msg = fmt.Sprintf("symbol %q is defined by a later module (position %d); move its module before %s", name, def, src.Path)
		if def == src.Index {
			msg = fmt.Sprintf("symbol %q is imported by the module that defines it", name)
		}
	}

	return []Issue{{
		Path:     src.Path,
		Line:     line,
		Severity: SeverityError,
		Message:  msg,
	}}
}

// lineAt returns the 1-based line number of a byte offset.
func lineAt(text string, offset int) int {
	return 1 + strings.Count(text[:offset], "\n")
}
