package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bundlekit/cli/internal/config"
	berrors "github.com/bundlekit/cli/internal/errors"
	"github.com/bundlekit/cli/internal/output"
)

// projectRoot resolves the project root from positional args.
func projectRoot(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// loadProject resolves the project root and loads its configuration.
// Precedence: flags > environment > bundle.yaml > defaults.
func loadProject(cmd *cobra.Command, args []string) (string, *config.Config, error) {
	root := projectRoot(args)

	if _, err := os.Stat(root); os.IsNotExist(err) {
		return "", nil, berrors.NewNotFoundError(
			fmt.Sprintf("project root does not exist: %s", root),
			root,
			"Pass the project directory as the first argument.",
		)
	}

	configFile := config.GetConfigFile(configFlag, root)
	cfg, err := config.NewLoader().LoadWithDefaults(configFile)
	if err != nil {
		return "", nil, err
	}

	// Timestamp precedence: flag (if explicitly set) > config > default.
	if !cmd.Flags().Changed("timestamps") && cfg.Log.Timestamps != nil {
		output.SetupLogging(output.LogConfig{
			Verbose:    verboseFlag,
			Timestamps: cfg.Log.Timestamps,
		})
	}

	output.Debug("project loaded",
		"root", root,
		"config", configFile,
		"modules", len(cfg.Modules),
	)

	return root, cfg, nil
}
