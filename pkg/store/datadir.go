package store

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultFileName is the store file name used when no path is configured.
const DefaultFileName = "goals_actions.json"

// DefaultDataDir returns the OS-appropriate default data directory for nower.
//
//   - macOS:   ~/Library/Application Support/nower
//   - Linux:   $XDG_DATA_HOME/nower (fallback ~/.local/share/nower)
//   - Windows: %LOCALAPPDATA%\nower (fallback %APPDATA%\nower)
func DefaultDataDir() string {
	return defaultDataDirForOS(runtime.GOOS)
}

// DefaultPath returns the default store file path inside DefaultDataDir.
func DefaultPath() string {
	return filepath.Join(DefaultDataDir(), DefaultFileName)
}

func defaultDataDirForOS(goos string) string {
	home, _ := os.UserHomeDir()

	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "nower")
	case "windows":
		if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
			return filepath.Join(dir, "nower")
		}
		if dir := os.Getenv("APPDATA"); dir != "" {
			return filepath.Join(dir, "nower")
		}
		return filepath.Join(home, "nower")
	default: // linux, freebsd, etc.
		if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
			return filepath.Join(dir, "nower")
		}
		return filepath.Join(home, ".local", "share", "nower")
	}
}
