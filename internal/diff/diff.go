// Package diff produces unified diffs between bundle artifacts, used by
// `bundlekit build --diff` to show what changed against the previous
// artifact before it is overwritten.
package diff

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// defaultContext is the number of context lines in unified hunks.
const defaultContext = 3

// Unified produces a classic unified patch for a↦b
// (---/+++ headers, @@ hunks, lines prefixed with ' ', '-', '+').
// An empty return means the inputs are identical.
func Unified(aName, bName string, a, b []byte) (string, error) {
	u := difflib.UnifiedDiff{
		A:        splitLinesKeepNL(string(a)),
		B:        splitLinesKeepNL(string(b)),
		FromFile: aName,
		ToFile:   bName,
		Context:  defaultContext,
	}
	return difflib.GetUnifiedDiffString(u)
}

// splitLinesKeepNL splits into lines keeping newline characters, which
// produces better unified hunks. A file not ending in a newline keeps
// its last chunk bare, which is fine for unified output.
func splitLinesKeepNL(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.SplitAfter(s, "\n")
}
