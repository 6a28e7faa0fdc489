package bundle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeModule(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadModules(t *testing.T) {
	t.Run("loads files whole in list order", func(t *testing.T) {
		root := t.TempDir()
		writeModule(t, root, "src/a.js", "const A = 1;\n")
		writeModule(t, root, "src/b.js", "const B = 2;\n")

		sources, err := LoadModules(root, []string{"src/a.js", "src/b.js"})
		require.NoError(t, err)
		require.Len(t, sources, 2)

		assert.Equal(t, 0, sources[0].Index)
		assert.Equal(t, "src/a.js", sources[0].Path)
		assert.Equal(t, "const A = 1;\n", sources[0].Content)
		assert.False(t, sources[0].Absent)

		assert.Equal(t, 1, sources[1].Index)
		assert.Equal(t, "const B = 2;\n", sources[1].Content)
	})

	t.Run("missing file yields absent source and continues", func(t *testing.T) {
		root := t.TempDir()
		writeModule(t, root, "a.js", "const A = 1;\n")

		sources, err := LoadModules(root, []string{"a.js", "missing.js", "a.js"})
		require.NoError(t, err)
		require.Len(t, sources, 3)

		assert.False(t, sources[0].Absent)
		assert.True(t, sources[1].Absent)
		assert.Empty(t, sources[1].Content)
		assert.False(t, sources[2].Absent)
	})

	t.Run("duplicate paths are loaded twice", func(t *testing.T) {
		root := t.TempDir()
		writeModule(t, root, "a.js", "tick();\n")

		sources, err := LoadModules(root, []string{"a.js", "a.js"})
		require.NoError(t, err)
		require.Len(t, sources, 2)
		assert.Equal(t, sources[0].Content, sources[1].Content)
		assert.NotEqual(t, sources[0].Index, sources[1].Index)
	})
}
