// Package paths resolves configuration file locations for the figmeta CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// ConfigFileNames are the file names probed, in order, when no explicit
// config path is given.
var ConfigFileNames = []string{"figmeta.yaml", "figmeta.yml"}

// EnvConfigFile overrides the configuration file location.
const EnvConfigFile = "FIGMETA_CONFIG"

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
// Linux:   $XDG_CONFIG_HOME/figmeta (fallback ~/.config/figmeta)
// macOS:   ~/Library/Application Support/figmeta
// Windows: %APPDATA%/figmeta
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "figmeta"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "figmeta"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "figmeta"), nil
	}
}

// ResolveConfigFile returns the configuration file path following the
// precedence chain: flag > FIGMETA_CONFIG env > srcdir probe > platform
// config dir probe.
//
// A probe only matches a file that exists; the returned path may be empty,
// meaning no configuration file applies and built-in defaults are used.
func ResolveConfigFile(flag, srcdir string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigFile); env != "" {
		return filepath.Abs(env)
	}
	if path := probe(srcdir); path != "" {
		return filepath.Abs(path)
	}

	configDir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	if path := probe(configDir); path != "" {
		return path, nil
	}
	return "", nil
}

// probe returns the first config file name that exists in dir.
func probe(dir string) string {
	if dir == "" {
		return ""
	}
	for _, name := range ConfigFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
