// Package paths resolves configuration and data file locations for
// camflow: the config directory holding preferences and the default
// project document, and the data directory holding the project history.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// File names inside the config and data directories.
const (
	PreferencesFileName    = "preferences.conf"
	DefaultProjectFileName = "default_project.yml"
	HistoryFileName        = "history.db"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "CAMFLOW_CONFIG_DIR"
	EnvDataDir   = "CAMFLOW_DATA_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/camflow (fallback ~/.config/camflow)
// macOS:   ~/Library/Application Support/camflow
// Windows: %APPDATA%/camflow
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "camflow"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "camflow"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "camflow"), nil
	}
}

// DefaultDataDir returns the platform-specific default data directory.
//
// Linux:   $XDG_DATA_HOME/camflow (fallback ~/.local/share/camflow)
// macOS:   ~/Library/Application Support/camflow
// Windows: %APPDATA%/camflow
func DefaultDataDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "camflow"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", "camflow"), nil
	default:
		// macOS and Windows: same as config dir.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "camflow"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > CAMFLOW_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory following the precedence
// chain: flag > CAMFLOW_DATA_DIR env > DefaultDataDir().
func ResolveDataDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultDataDir()
}

// PreferencesPath returns the location of the preferences file inside
// the given config directory.
func PreferencesPath(configDir string) string {
	return filepath.Join(configDir, PreferencesFileName)
}

// DefaultProjectPath returns the location of the default project
// document inside the given config directory.
func DefaultProjectPath(configDir string) string {
	return filepath.Join(configDir, DefaultProjectFileName)
}

// HistoryPath returns the location of the project history database
// inside the given data directory.
func HistoryPath(dataDir string) string {
	return filepath.Join(dataDir, HistoryFileName)
}
