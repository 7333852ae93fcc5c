package iofs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gncode/internal/iofs"
	"github.com/gnames/gncode/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirs(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, iofs.EnsureDirs(home))

	for _, dir := range []string{
		config.ConfigDir(home),
		config.CacheDir(home),
		config.LogDir(home),
	} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// Idempotent on existing dirs.
	assert.NoError(t, iofs.EnsureDirs(home))
}

func TestEnsureFilesDoNotClobber(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, iofs.EnsureDirs(home))

	// User-curated corrections survive a re-run.
	path := config.CorrectionsFilePath(home)
	require.NoError(t,
		os.WriteFile(path, []byte("corrections: {}\n"), 0644))
	require.NoError(t, iofs.EnsureCorrectionsFile(home))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "corrections: {}\n", string(data))
}

func TestEnsureFilesWriteTemplates(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, iofs.EnsureDirs(home))
	require.NoError(t, iofs.EnsureConfigFile(home))
	require.NoError(t, iofs.EnsureCorrectionsFile(home))
	require.NoError(t, iofs.EnsureOverridesFile(home))

	for _, path := range []string{
		config.ConfigFilePath(home),
		config.CorrectionsFilePath(home),
		config.OverridesFilePath(home),
	} {
		data, err := os.ReadFile(path)
		require.NoError(t, err, filepath.Base(path))
		assert.NotEmpty(t, data, filepath.Base(path))
	}
}
