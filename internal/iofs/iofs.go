// Package iofs prepares the application's directories and default
// configuration files on first run.
package iofs

import (
	_ "embed"
	"os"

	"github.com/gnames/gncode/pkg/config"
)

//go:embed config.yaml
var ConfigYAML string

//go:embed corrections.yaml
var CorrectionsYAML string

//go:embed overrides.yaml
var OverridesYAML string

// EnsureDirs creates the config, cache and log directories when they
// are missing.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.CacheDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the embedded default config.yaml to the
// config directory unless the user already has one.
func EnsureConfigFile(homeDir string) error {
	return ensureFile(config.ConfigFilePath(homeDir), ConfigYAML)
}

// EnsureCorrectionsFile writes the embedded corrections.yaml template
// unless the user already curates one.
func EnsureCorrectionsFile(homeDir string) error {
	return ensureFile(config.CorrectionsFilePath(homeDir), CorrectionsYAML)
}

// EnsureOverridesFile writes the embedded overrides.yaml template
// unless the user already curates one.
func EnsureOverridesFile(homeDir string) error {
	return ensureFile(config.OverridesFilePath(homeDir), OverridesYAML)
}

func ensureFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return CopyFileError(path, err)
	}

	return nil
}
