package bundle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildProject(t *testing.T) (string, Options) {
	t.Helper()
	root := t.TempDir()
	writeModule(t, root, "src/a.js", "export const X = 1;\n")
	writeModule(t, root, "src/b.js", "import { X } from './a.js';\nconsole.log(X);\n")

	return root, Options{
		Root:       root,
		Modules:    []string{"src/a.js", "src/b.js"},
		OutputPath: filepath.Join(root, "content-bundle.js"),
	}
}

func TestBuild(t *testing.T) {
	t.Run("writes artifact and reports size", func(t *testing.T) {
		_, opts := buildProject(t)

		result, err := Build(opts)
		require.NoError(t, err)

		written, err := os.ReadFile(opts.OutputPath)
		require.NoError(t, err)
		assert.Equal(t, result.Bundle, written)
		assert.Equal(t, len(written), result.Size)
		assert.Equal(t, 2, result.Loaded)
		assert.Empty(t, result.Missing)
	})

	t.Run("no boundary keyword survives in the artifact", func(t *testing.T) {
		_, opts := buildProject(t)

		result, err := Build(opts)
		require.NoError(t, err)

		text := string(result.Bundle)
		assert.Contains(t, text, "const X = 1;")
		assert.Contains(t, text, "console.log(X);")
		assert.NotContains(t, text, "import")
		assert.NotContains(t, text, "export")
	})

	t.Run("byte-identical output on rerun", func(t *testing.T) {
		_, opts := buildProject(t)

		first, err := Build(opts)
		require.NoError(t, err)
		second, err := Build(opts)
		require.NoError(t, err)

		assert.Equal(t, first.Bundle, second.Bundle)
		assert.Equal(t, first.Size, second.Size)
	})

	t.Run("order sensitivity is reflected in output structure", func(t *testing.T) {
		root, opts := buildProject(t)

		forward, err := Build(opts)
		require.NoError(t, err)
		text := string(forward.Bundle)
		assert.Less(t, strings.Index(text, "const X = 1;"), strings.Index(text, "console.log(X);"))

		reversed := Options{
			Root:       root,
			Modules:    []string{"src/b.js", "src/a.js"},
			OutputPath: opts.OutputPath,
		}
		backward, err := Build(reversed)
		require.NoError(t, err)
		text = string(backward.Bundle)
		// Still well-formed text, but the reference now precedes the definition.
		assert.Greater(t, strings.Index(text, "const X = 1;"), strings.Index(text, "console.log(X);"))
	})

	t.Run("missing module is skipped with the rest bundled in order", func(t *testing.T) {
		root, _ := buildProject(t)
		opts := Options{
			Root:       root,
			Modules:    []string{"src/a.js", "src/missing.js", "src/b.js"},
			OutputPath: filepath.Join(root, "content-bundle.js"),
		}

		result, err := Build(opts)
		require.NoError(t, err)

		assert.Equal(t, []string{"src/missing.js"}, result.Missing)
		assert.Equal(t, 2, result.Loaded)

		text := string(result.Bundle)
		assert.NotContains(t, text, "missing.js")
		assert.Less(t, strings.Index(text, "src/a.js"), strings.Index(text, "src/b.js"))
	})

	t.Run("dry run does not write the artifact", func(t *testing.T) {
		_, opts := buildProject(t)
		opts.DryRun = true

		result, err := Build(opts)
		require.NoError(t, err)
		assert.NotEmpty(t, result.Bundle)

		_, err = os.Stat(opts.OutputPath)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("unwritable output path is fatal", func(t *testing.T) {
		root, opts := buildProject(t)
		opts.OutputPath = filepath.Join(root, "no-such-dir", "bundle.js")

		_, err := Build(opts)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "writing bundle")
	})

	t.Run("empty module list is rejected", func(t *testing.T) {
		root := t.TempDir()
		_, err := Build(Options{
			Root:       root,
			Modules:    nil,
			OutputPath: filepath.Join(root, "out.js"),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "module list is empty")
	})
}
