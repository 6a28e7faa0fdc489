// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bundlekit/cli/internal/output"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool
)

// NewRootCmd creates the root command for the BundleKit CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bundlekit",
		Short: "Bundle content-script modules into a single IIFE file",
		Long: `BundleKit concatenates an ordered list of JavaScript modules into a
single self-contained, immediately-invoked bundle, for environments
that cannot load module files (browser-extension content scripts).

Import/export boundary syntax is stripped; module bodies are left
untouched. Cross-module linkage happens through the shared closure
scope, so the configured module order is semantically binding.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (env: BUNDLE_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")

	// Add subcommands
	rootCmd.AddCommand(NewBuildCmd())
	rootCmd.AddCommand(NewVetCmd())
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewServeCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging from global flags. Project config
// may refine the timestamp setting later, in loadProject.
func initializeGlobals(cmd *cobra.Command) error {
	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	}

	output.SetupLogging(logCfg)
	return nil
}
