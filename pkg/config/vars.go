package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "gncode"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gncode by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/gncode by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gncode/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gncode/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// CorrectionsFilePath returns the full path to corrections.yaml,
// the curated correction table and block-list.
func CorrectionsFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "corrections.yaml")
}

// OverridesFilePath returns the full path to overrides.yaml,
// the curated code override table.
func OverridesFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "overrides.yaml")
}

// RegistryCacheFilePath returns the path of the gob snapshot with
// registry responses from previous runs.
func RegistryCacheFilePath(homeDir string) string {
	return filepath.Join(CacheDir(homeDir), "registry.gob")
}
