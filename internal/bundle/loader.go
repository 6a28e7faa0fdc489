package bundle

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bundlekit/cli/internal/output"
)

// LoadModules reads each module's full text from disk, in list order.
// A missing file yields an absent ModuleSource and a warning; the load
// continues with the remaining modules. Any other read error is fatal.
// Files are read whole or not at all; there are no retries.
func LoadModules(root string, paths []string) ([]ModuleSource, error) {
	sources := make([]ModuleSource, 0, len(paths))

	for _, spec := range Specs(paths) {
		fullPath := filepath.Join(root, spec.Path)

		output.Info("processing", "path", spec.Path)

		data, err := os.ReadFile(fullPath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				output.Warn("file not found", "path", spec.Path)
				sources = append(sources, ModuleSource{ModuleSpec: spec, Absent: true})
				continue
			}
			return nil, fmt.Errorf("reading module %s: %w", spec.Path, err)
		}

		sources = append(sources, ModuleSource{ModuleSpec: spec, Content: string(data)})
	}

	return sources, nil
}
