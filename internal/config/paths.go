package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "entitle"

// ConfigDir returns the directory holding the config file.
// ENTITLE_CONFIG_DIR overrides the XDG location; tests rely on this.
func ConfigDir() string {
	if v := os.Getenv("ENTITLE_CONFIG_DIR"); v != "" {
		return v
	}
	return filepath.Join(xdg.ConfigHome, appName)
}

func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.toml")
}
