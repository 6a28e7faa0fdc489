package bundle

import (
	"fmt"
	"os"
	"strings"
)

// Wrapper and layout literals. The bundle opens a strict-mode,
// self-invoking closure so no module binding leaks into the global
// namespace and the bundle cannot be loaded twice into the same scope.
const (
	openingWrapper = "(function() {\n  'use strict';\n\n"
	closingWrapper = "})();\n"
	indentUnit     = "  "
)

// Assemble concatenates the stripped module texts into the final bundle.
// Absent modules are skipped. Each present module is preceded by a
// provenance marker naming its source path, indented by one unit per
// non-blank line (blank lines are kept verbatim, avoiding trailing
// whitespace), and followed by one blank separator line. The output is
// a pure function of the present sources: identical inputs produce
// byte-identical bundles.
func Assemble(sources []ModuleSource) []byte {
	var b strings.Builder
	b.WriteString(openingWrapper)

	for _, src := range sources {
		if src.Absent {
			continue
		}

		b.WriteString(fmt.Sprintf("%s// ===== %s =====\n", indentUnit, src.Path))

		body := Strip(src.Content)
		for _, line := range strings.Split(body, "\n") {
			if strings.TrimSpace(line) != "" {
				b.WriteString(indentUnit)
				b.WriteString(line)
			}
			b.WriteString("\n")
		}

		b.WriteString("\n")
	}

	b.WriteString(closingWrapper)
	return []byte(b.String())
}

// WriteArtifact writes the bundle to the output path by direct
// overwrite. A write failure is fatal to the build; no artifact is
// produced.
func WriteArtifact(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing bundle %s: %w", path, err)
	}
	return nil
}
