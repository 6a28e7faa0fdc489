// Package server provides the development file server. It serves the
// project root as static files with cache-disabling headers on every
// response, so the served bundle is never stale during iterative
// development.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bundlekit/cli/internal/output"
)

// shutdownTimeout bounds graceful shutdown after the context is done.
const shutdownTimeout = 5 * time.Second

// Options configures the development server.
type Options struct {
	// Root is the directory served as static files.
	Root string

	// Port is the TCP port to bind on all interfaces.
	Port int
}

// Server is the development static-file server.
type Server struct {
	opts Options
	http *http.Server
}

// New creates a development server for the given options.
func New(opts Options) *Server {
	s := &Server{opts: opts}
	s.http = &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the server's HTTP handler: a file server over the
// project root with no-cache headers unconditionally applied.
func (s *Server) Handler() http.Handler {
	files := http.FileServer(http.Dir(s.opts.Root))
	return noCache(files)
}

// ListenAndServe serves until the context is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		errCh <- s.http.ListenAndServe()
	}()

	output.Info("serving project root",
		"root", s.opts.Root,
		"url", fmt.Sprintf("http://localhost:%d/", s.opts.Port),
	)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("dev server: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	}
}

// noCache wraps a handler so every response disables client caching.
func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}
