package config

import (
	"os"
	"path/filepath"
)

// DefaultConfigName is the config file name expected in the project root.
const DefaultConfigName = "bundle.yaml"

// GetConfigFile returns the config file path for a project root.
// Precedence: explicit flag value, BUNDLE_CONFIG, <root>/bundle.yaml.
func GetConfigFile(flagValue, root string) string {
	if flagValue != "" {
		return flagValue
	}
	if envPath := os.Getenv("BUNDLE_CONFIG"); envPath != "" {
		return envPath
	}
	return filepath.Join(root, DefaultConfigName)
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// Handle ~username (not supported, return as-is)
	return path, nil
}
