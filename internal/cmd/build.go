package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bundlekit/cli/internal/bundle"
	"github.com/bundlekit/cli/internal/diff"
	"github.com/bundlekit/cli/internal/output"
)

// Build command flags
var (
	buildOutputFlag string
	buildDiffFlag   bool
	buildDryRunFlag bool
)

// NewBuildCmd creates the build command.
func NewBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [path]",
		Short: "Bundle the configured modules into the output artifact",
		Long: `Bundle the configured modules into a single IIFE artifact.

This command reads each module listed in bundle.yaml in order, strips
import/export boundary syntax, concatenates the results inside a
strict-mode self-invoking closure, and writes the artifact. Missing
modules are skipped with a warning; the build continues.

Arguments:
  path    Path to project root (default: current directory)

Examples:
  # Build the project in the current directory
  bundlekit build

  # Build a specific project with a custom artifact path
  bundlekit build ./extension -o dist/content-bundle.js

  # Show a unified diff against the previous artifact
  bundlekit build --diff

  # Assemble without writing the artifact
  bundlekit build --dry-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBuild,
	}

	cmd.Flags().StringVarP(&buildOutputFlag, "output", "o", "",
		"Artifact path relative to the project root (default: from config)")
	cmd.Flags().BoolVar(&buildDiffFlag, "diff", false,
		"Print a unified diff against the previous artifact")
	cmd.Flags().BoolVar(&buildDryRunFlag, "dry-run", false,
		"Assemble the bundle without writing the artifact")

	return cmd
}

// runBuild executes the build command.
func runBuild(cmd *cobra.Command, args []string) error {
	root, cfg, err := loadProject(cmd, args)
	if err != nil {
		return err
	}

	outputPath := cfg.Output
	if buildOutputFlag != "" {
		outputPath = buildOutputFlag
	}
	outputPath = filepath.Join(root, outputPath)

	// Previous artifact content, read before the overwrite.
	var previous []byte
	if buildDiffFlag {
		previous, _ = os.ReadFile(outputPath)
	}

	result, err := bundle.Build(bundle.Options{
		Root:       root,
		Modules:    cfg.Modules,
		OutputPath: outputPath,
		DryRun:     buildDryRunFlag,
	})
	if err != nil {
		return &ExitError{Code: ExitGeneralError, Err: err}
	}

	if buildDiffFlag {
		patch, err := diff.Unified(outputPath, outputPath, previous, result.Bundle)
		if err != nil {
			return &ExitError{Code: ExitGeneralError, Err: fmt.Errorf("diffing artifact: %w", err)}
		}
		if patch == "" {
			output.Println(output.StyleDim.Render("artifact unchanged"))
		} else {
			output.Print(patch)
		}
	}

	summary := fmt.Sprintf("%s (%d bytes, %d modules)", result.OutputPath, result.Size, result.Loaded)
	if buildDryRunFlag {
		summary += " [dry run]"
	}
	output.Println(output.FormatCheckmark(summary))

	return nil
}
