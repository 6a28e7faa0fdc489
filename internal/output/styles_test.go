package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCheckmark(t *testing.T) {
	got := FormatCheckmark("content-bundle.js (128 bytes)")
	assert.Contains(t, got, "✔")
	assert.Contains(t, got, "content-bundle.js (128 bytes)")
}

func TestFormatIssueLine(t *testing.T) {
	got := FormatIssueLine(SeverityError, "src/b.js", 3, "symbol not defined")
	assert.Contains(t, got, "error")
	assert.Contains(t, got, "src/b.js:3")
	assert.Contains(t, got, "symbol not defined")
}

func TestFormatModuleLine(t *testing.T) {
	t.Run("pads short paths to align status", func(t *testing.T) {
		got := FormatModuleLine("a.js", "ok")
		assert.True(t, strings.HasSuffix(got, "ok"))
		assert.Contains(t, got, "a.js")
	})

	t.Run("keeps minimum gap for long paths", func(t *testing.T) {
		long := strings.Repeat("x", minModuleColumnWidth+10) + ".js"
		got := FormatModuleLine(long, "ok")
		assert.Contains(t, got, long+"  ok")
	})
}

func TestSeverityStyleUnknown(t *testing.T) {
	// Unknown severities render unstyled.
	assert.Equal(t, "hm", SeverityStyle("notice").Render("hm"))
}
