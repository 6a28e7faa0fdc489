package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bundlekit/cli/internal/server"
)

var servePortFlag int

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [path]",
		Short: "Serve the project root for development",
		Long: `Serve the project root as static files for development.

Every response carries cache-disabling headers so the served bundle is
never stale while iterating. Stop with Ctrl+C.

Arguments:
  path    Path to project root (default: current directory)

Examples:
  # Serve the current directory on the configured port
  bundlekit serve

  # Serve on a specific port
  bundlekit serve ./extension --port 8080`,
		Args: cobra.MaximumNArgs(1),
		RunE: runServe,
	}

	cmd.Flags().IntVar(&servePortFlag, "port", 0,
		"Port to bind (default: from config)")

	return cmd
}

// runServe executes the serve command.
func runServe(cmd *cobra.Command, args []string) error {
	root, cfg, err := loadProject(cmd, args)
	if err != nil {
		return err
	}

	port := cfg.Serve.Port
	if servePortFlag != 0 {
		port = servePortFlag
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Options{Root: root, Port: port})
	if err := srv.ListenAndServe(ctx); err != nil {
		return &ExitError{Code: ExitGeneralError, Err: err}
	}

	return nil
}
