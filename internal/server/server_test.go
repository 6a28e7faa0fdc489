package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerServesProjectRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "content-bundle.js"),
		[]byte("(function() {\n})();\n"), 0o644))

	srv := New(Options{Root: root, Port: 5000})
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/content-bundle.js")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandlerDisablesCaching(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"),
		[]byte("<html></html>"), 0o644))

	srv := New(Options{Root: root, Port: 5000})
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	// Cache-disabling headers are unconditional: present on hits and misses.
	for _, path := range []string{"/index.html", "/missing.js"} {
		resp, err := http.Get(ts.URL + path)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, "no-cache, no-store, must-revalidate", resp.Header.Get("Cache-Control"), path)
		assert.Equal(t, "no-cache", resp.Header.Get("Pragma"), path)
		assert.Equal(t, "0", resp.Header.Get("Expires"), path)
	}
}
