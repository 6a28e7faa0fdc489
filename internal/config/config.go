// Package config provides configuration loading and management.
package config

import (
	"gopkg.in/yaml.v3"
)

// DefaultOutput is the artifact path used when the config does not set one.
const DefaultOutput = "content-bundle.js"

// DefaultServePort is the development server port used when unset.
const DefaultServePort = 5000

// ServeConfig contains development server settings.
type ServeConfig struct {
	// Port is the TCP port the development server binds to.
	// Env: BUNDLE_PORT, Default: 5000
	Port int `yaml:"port,omitempty"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: false. Override with --timestamps flag.
	Timestamps *bool `yaml:"timestamps,omitempty"`
}

// Config represents the BundleKit project configuration.
// Loaded from bundle.yaml in the project root.
type Config struct {
	// Output is the bundle artifact path, relative to the project root.
	// Env: BUNDLE_OUTPUT, Default: content-bundle.js
	Output string `yaml:"output,omitempty"`

	// Modules is the ordered list of module paths relative to the project
	// root. Order is trusted: a module may only reference symbols defined
	// by modules listed before it. Duplicates are included verbatim.
	Modules []string `yaml:"modules"`

	// Serve contains development server settings.
	Serve ServeConfig `yaml:"serve,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `bundlekit init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Output:  DefaultOutput,
		Modules: []string{"src/main.js"},
		Serve: ServeConfig{
			Port: DefaultServePort,
		},
	}
}

// WithDefaults returns a copy of the config with defaults applied to
// unset fields.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.Output == "" {
		out.Output = DefaultOutput
	}
	if out.Serve.Port == 0 {
		out.Serve.Port = DefaultServePort
	}
	return &out
}

// Merge overwrites this config's fields with non-empty values from other.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Output != "" {
		c.Output = other.Output
	}
	if len(other.Modules) > 0 {
		c.Modules = other.Modules
	}
	if other.Serve.Port != 0 {
		c.Serve.Port = other.Serve.Port
	}
	if other.Log.Timestamps != nil {
		c.Log.Timestamps = other.Log.Timestamps
	}
}

// IsEmpty reports whether the config has no values set.
func (c *Config) IsEmpty() bool {
	return c.Output == "" && len(c.Modules) == 0 && c.Serve.Port == 0 && c.Log.Timestamps == nil
}

// configHeader is prepended to generated config files.
const configHeader = `# BundleKit project configuration.
#
# modules lists the source files to bundle, in load order. Order is
# semantically binding: a module may only reference symbols defined by
# modules listed before it. Paths not found at build time are skipped
# with a warning.
`

// MarshalDocument renders the config as a bundle.yaml document with a
// leading usage comment.
func (c *Config) MarshalDocument() ([]byte, error) {
	body, err := yaml.Marshal(c)
	if err != nil {
		return nil, err
	}
	return append([]byte(configHeader), body...), nil
}
