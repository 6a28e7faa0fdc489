package bundle

import "regexp"

// RewriteRule is one class of boundary syntax to strip or rewrite.
// Rules operate on disjoint syntactic categories, so application order
// is fixed but later rules never re-match text an earlier rule produced.
type RewriteRule struct {
	// Name identifies the syntactic category the rule covers.
	Name string

	pattern     *regexp.Regexp
	replacement string
}

// Apply runs the rule's single pass over the text.
func (r RewriteRule) Apply(text string) string {
	return r.pattern.ReplaceAllString(text, r.replacement)
}

// boundaryRules is the fixed, ordered rule set. The `;?\s*\n?` tail
// matches the trailing terminator and any same-line gap, so an import
// sharing a line with following code deletes only the import. Boundary
// forms outside these categories (namespace imports, re-exports,
// dynamic imports) pass through unmodified; `bundlekit vet` flags them.
var boundaryRules = []RewriteRule{
	{
		Name:        "named-import",
		pattern:     regexp.MustCompile(`import\s+\{[^}]*\}\s+from\s+['"][^'"]+['"];?\s*\n?`),
		replacement: "",
	},
	{
		Name:        "default-import",
		pattern:     regexp.MustCompile(`import\s+\w+\s+from\s+['"][^'"]+['"];?\s*\n?`),
		replacement: "",
	},
	{
		Name:        "named-export",
		pattern:     regexp.MustCompile(`export\s+\{[^}]*\};?\s*\n?`),
		replacement: "",
	},
	{
		Name:        "default-export",
		pattern:     regexp.MustCompile(`export\s+default\s+\w+;?\s*\n?`),
		replacement: "",
	},
	{
		Name:        "exported-class",
		pattern:     regexp.MustCompile(`export\s+class\s+`),
		replacement: "class ",
	},
	{
		Name:        "exported-function",
		pattern:     regexp.MustCompile(`export\s+function\s+`),
		replacement: "function ",
	},
	{
		Name:        "exported-const",
		pattern:     regexp.MustCompile(`export\s+const\s+`),
		replacement: "const ",
	},
}

// Rules returns the fixed boundary rule set in application order.
func Rules() []RewriteRule {
	return boundaryRules
}

// Strip removes all recognized module-boundary syntax from one module's
// text. Import and export statements are deleted with their trailing
// line terminator; exported declarations keep the declaration and lose
// only the export qualifier, becoming scope-local bindings in the final
// closure. Everything else is left byte-identical, so text containing
// no boundary syntax is returned unchanged.
func Strip(text string) string {
	for _, rule := range boundaryRules {
		text = rule.Apply(text)
	}
	return text
}
