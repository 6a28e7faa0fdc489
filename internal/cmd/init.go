package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bundlekit/cli/internal/config"
	berrors "github.com/bundlekit/cli/internal/errors"
	"github.com/bundlekit/cli/internal/output"
)

var initForceFlag bool

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Create a starter bundle.yaml",
		Long: `Create a starter bundle.yaml in the project root.

The generated file contains the default artifact path, the development
server port, and a placeholder module list to edit.

Arguments:
  path    Path to project root (default: current directory)

Examples:
  # Initialize the current directory
  bundlekit init

  # Overwrite an existing config
  bundlekit init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}

	cmd.Flags().BoolVarP(&initForceFlag, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

// runInit executes the init command.
func runInit(cmd *cobra.Command, args []string) error {
	root := projectRoot(args)
	configFile := filepath.Join(root, config.DefaultConfigName)

	if _, err := os.Stat(configFile); err == nil && !initForceFlag {
		return &berrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: configFile,
			Hint:     "Use --force to overwrite the existing configuration.",
			Cause:    berrors.ErrValidation,
		}
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return berrors.Wrap(berrors.ErrPermission, "could not create project directory")
	}

	doc, err := config.DefaultConfig().MarshalDocument()
	if err != nil {
		return err
	}

	if err := os.WriteFile(configFile, doc, 0o644); err != nil {
		return berrors.Wrap(berrors.ErrPermission, "could not write bundle.yaml")
	}

	output.Println("Configuration initialized at " + configFile)
	output.Println("")
	output.Println("Next: list your modules under 'modules:' in load order,")
	output.Println("then run 'bundlekit build'.")

	return nil
}
