package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "content-bundle.js", cfg.Output)
	assert.Equal(t, 5000, cfg.Serve.Port)
	assert.NotEmpty(t, cfg.Modules)
}

func TestWithDefaults(t *testing.T) {
	t.Run("fills unset fields", func(t *testing.T) {
		cfg := (&Config{}).WithDefaults()
		assert.Equal(t, DefaultOutput, cfg.Output)
		assert.Equal(t, DefaultServePort, cfg.Serve.Port)
	})

	t.Run("keeps set fields", func(t *testing.T) {
		cfg := (&Config{Output: "dist/bundle.js", Serve: ServeConfig{Port: 8080}}).WithDefaults()
		assert.Equal(t, "dist/bundle.js", cfg.Output)
		assert.Equal(t, 8080, cfg.Serve.Port)
	})
}

func TestConfigMerge(t *testing.T) {
	t.Run("merge overwrites non-empty values", func(t *testing.T) {
		base := &Config{
			Output:  "base.js",
			Modules: []string{"a.js"},
		}
		other := &Config{
			Output: "other.js",
			Serve:  ServeConfig{Port: 9000},
		}

		base.Merge(other)

		assert.Equal(t, "other.js", base.Output)
		assert.Equal(t, []string{"a.js"}, base.Modules)
		assert.Equal(t, 9000, base.Serve.Port)
	})

	t.Run("merge with nil does nothing", func(t *testing.T) {
		base := &Config{Output: "base.js"}

		base.Merge(nil)

		assert.Equal(t, "base.js", base.Output)
	})
}

func TestConfigIsEmpty(t *testing.T) {
	t.Run("empty config", func(t *testing.T) {
		cfg := &Config{}
		assert.True(t, cfg.IsEmpty())
	})

	t.Run("non-empty config", func(t *testing.T) {
		cfg := &Config{Output: "bundle.js"}
		assert.False(t, cfg.IsEmpty())
	})
}

func TestMarshalDocument(t *testing.T) {
	doc, err := DefaultConfig().MarshalDocument()
	require.NoError(t, err)

	// Leading usage comment, then a document that round-trips.
	assert.Contains(t, string(doc), "# BundleKit project configuration.")

	var cfg Config
	require.NoError(t, yaml.Unmarshal(doc, &cfg))
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, DefaultServePort, cfg.Serve.Port)
	assert.Equal(t, []string{"src/main.js"}, cfg.Modules)
}
