package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigPath returns the defaults file location.
// Priority order:
//  1. TREELS_CONFIG environment variable (if set)
//  2. <user config dir>/treels/config.yaml ($XDG_CONFIG_HOME or ~/.config on Linux)
//
// The file is not required to exist.
func DefaultConfigPath() (string, error) {
	if path := os.Getenv("TREELS_CONFIG"); path != "" {
		return path, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config directory: %w", err)
	}

	return filepath.Join(dir, "treels", "config.yaml"), nil
}
