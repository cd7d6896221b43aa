// Package paths resolves where linkage keeps its configuration and its
// data (the commit database). Overrides follow the usual precedence:
// command-line flag, then environment, then the platform default.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultDataDirName is the working-directory-relative data directory used
// when nothing else is configured.
const DefaultDataDirName = ".linkage-db"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "LINKAGE_CONFIG_DIR"
	EnvDataDir   = "LINKAGE_DATA_DIR"
)

// DefaultConfigDir returns the platform default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/linkage (fallback ~/.config/linkage)
// macOS:   ~/Library/Application Support/linkage
// Windows: %APPDATA%/linkage
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "linkage"), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "linkage"), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "linkage"), nil
}

// DefaultDataDir returns the platform default data directory.
//
// Linux:   $XDG_DATA_HOME/linkage (fallback ~/.local/share/linkage)
// macOS and Windows: same as the config directory.
func DefaultDataDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "linkage"), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", "linkage"), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "linkage"), nil
}

// ResolveConfigDir returns the configuration directory: flag, then
// LINKAGE_CONFIG_DIR, then the platform default. Relative overrides are
// made absolute.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory: flag, then the configured
// value, then LINKAGE_DATA_DIR, then $(CWD)/.linkage-db. Relative
// overrides are made absolute.
func ResolveDataDir(flag, configured string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configured != "" {
		return filepath.Abs(configured)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}
