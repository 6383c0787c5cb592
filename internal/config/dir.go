// Package config locates the OpenMW configuration directories and the
// layer file that orders them.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the per-user OpenMW configuration directory.
//
// Resolution:
//   - $OPENMW_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/openmw if set (respects XDG on any platform)
//   - ~/Documents/My Games/OpenMW on Windows
//   - ~/Library/Preferences/openmw on macOS
//   - ~/.config/openmw elsewhere
func Dir() string {
	if dir := os.Getenv("OPENMW_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "openmw")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(home, "Documents", "My Games", "OpenMW")
	case "darwin":
		return filepath.Join(home, "Library", "Preferences", "openmw")
	default:
		return filepath.Join(home, ".config", "openmw")
	}
}

// GlobalDir returns the system-wide OpenMW configuration directory, or ""
// where the platform has none.
func GlobalDir() string {
	if dir := os.Getenv("OPENMW_GLOBAL_CONFIG"); dir != "" {
		return dir
	}
	if runtime.GOOS == "windows" {
		return ""
	}
	return "/etc/openmw"
}
