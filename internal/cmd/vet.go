package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bundlekit/cli/internal/bundle"
	"github.com/bundlekit/cli/internal/output"
)

// NewVetCmd creates the vet command.
func NewVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet [path]",
		Short: "Check module order and boundary syntax without building",
		Long: `Validate the configured module list without writing an artifact.

Because bundled modules share one closure scope, a module may only
reference symbols defined by modules listed before it. Vet verifies
every imported symbol resolves to an earlier module and flags boundary
syntax the bundler does not rewrite (namespace imports, re-exports,
dynamic imports), which would otherwise only surface when the bundle
fails to load.

Arguments:
  path    Path to project root (default: current directory)

Examples:
  # Vet the project in the current directory
  bundlekit vet

  # Vet a specific project
  bundlekit vet ./extension`,
		Args: cobra.MaximumNArgs(1),
		RunE: runVet,
	}
}

// runVet executes the vet command.
func runVet(cmd *cobra.Command, args []string) error {
	root, cfg, err := loadProject(cmd, args)
	if err != nil {
		return err
	}

	if len(cfg.Modules) == 0 {
		return &ExitError{
			Code: ExitGeneralError,
			Err:  fmt.Errorf("module list is empty — configure modules in bundle.yaml"),
		}
	}

	sources, err := bundle.LoadModules(root, cfg.Modules)
	if err != nil {
		return &ExitError{Code: ExitGeneralError, Err: err}
	}

	issues := bundle.Lint(sources)
	for _, is := range issues {
		output.Println(output.FormatIssueLine(string(is.Severity), is.Path, is.Line, is.Message))
	}

	if bundle.HasErrors(issues) {
		return &ExitError{
			Code:    ExitLintError,
			Err:     fmt.Errorf("%d lint issue(s)", len(issues)),
			Printed: true,
		}
	}

	// Per-module status lines
	for _, src := range sources {
		status := "ok"
		if src.Absent {
			status = "missing"
		}
		output.Println(output.FormatModuleLine(src.Path, status))
	}

	summary := fmt.Sprintf("%d modules valid", len(cfg.Modules))
	if len(issues) > 0 {
		summary = fmt.Sprintf("%d modules valid (%d warnings)", len(cfg.Modules), len(issues))
	}
	output.Println(output.FormatCheckmark(summary))

	return nil
}
