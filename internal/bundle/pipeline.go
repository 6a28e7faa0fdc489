package bundle

import (
	"fmt"

	"github.com/bundlekit/cli/internal/output"
)

// Options configures one build invocation.
type Options struct {
	// Root is the project root all module paths are relative to.
	Root string

	// Modules is the ordered module path list. Order is trusted.
	Modules []string

	// OutputPath is the artifact destination.
	OutputPath string

	// DryRun assembles the bundle without writing the artifact.
	DryRun bool
}

// Validate checks the options before a build.
func (o Options) Validate() error {
	if o.Root == "" {
		return fmt.Errorf("project root is required")
	}
	if o.OutputPath == "" {
		return fmt.Errorf("output path is required")
	}
	if len(o.Modules) == 0 {
		return fmt.Errorf("module list is empty — configure modules in bundle.yaml")
	}
	return nil
}

// Result describes a completed build.
type Result struct {
	// Bundle is the assembled artifact text.
	Bundle []byte

	// OutputPath is where the artifact was (or would be) written.
	OutputPath string

	// Size is the artifact's byte size.
	Size int

	// Missing lists configured paths that did not exist at build time.
	Missing []string

	// Loaded counts the modules that were present and bundled.
	Loaded int
}

// Build runs the pipeline: load each module in order, strip boundary
// syntax, assemble the closure-wrapped bundle, and write the artifact.
//
// Phase sequence:
//  1. LOAD:     LoadModules() — missing files warn and are skipped
//  2. ASSEMBLE: Assemble() — strip + concatenate + wrap
//  3. WRITE:    WriteArtifact() — direct overwrite; failure is fatal
//
// Per-module failures never abort the run; a write failure does.
func Build(opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	sources, err := LoadModules(opts.Root, opts.Modules)
	if err != nil {
		return nil, err
	}

	res := &Result{OutputPath: opts.OutputPath}
	for _, src := range sources {
		if src.Absent {
			res.Missing = append(res.Missing, src.Path)
		} else {
			res.Loaded++
		}
	}

	res.Bundle = Assemble(sources)
	res.Size = len(res.Bundle)

	if opts.DryRun {
		output.Debug("dry run, skipping artifact write", "path", opts.OutputPath)
		return res, nil
	}

	if err := WriteArtifact(opts.OutputPath, res.Bundle); err != nil {
		return nil, err
	}

	output.Debug("bundle written",
		"path", res.OutputPath,
		"bytes", res.Size,
		"modules", res.Loaded,
		"missing", len(res.Missing),
	)

	return res, nil
}
