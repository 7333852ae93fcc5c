package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gnames/gncode/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "gncode"),
		},
		{
			msg: "cache dir",
			fn:  config.CacheDir,
			res: filepath.Join(tempHome, ".cache", "gncode"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "gncode", "logs"),
		},
		{
			msg: "corrections file",
			fn:  config.CorrectionsFilePath,
			res: filepath.Join(tempHome, ".config", "gncode", "corrections.yaml"),
		},
		{
			msg: "registry cache file",
			fn:  config.RegistryCacheFilePath,
			res: filepath.Join(tempHome, ".cache", "gncode", "registry.gob"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		// Registry defaults
		assert.Equal(t,
			"https://verifier.globalnames.org/api/v1", cfg.Registry.URL)
		assert.Equal(t, 100, cfg.Registry.BatchSize)

		// Database defaults
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "gncode", cfg.Database.Database)
		assert.Equal(t, "disable", cfg.Database.SSLMode)

		// Codes defaults
		assert.Equal(t, "zoological", cfg.Codes.NomenclaturalCode)

		// Log defaults
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		// JobsNumber defaults to CPU count
		assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	})
}

func TestOptions(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptRegistryURL("http://localhost:8080/api/v1/"),
		config.OptRegistryBatchSize(50),
		config.OptDatabaseHost("db.example.org"),
		config.OptNomenclaturalCode("botanical"),
		config.OptLogLevel("debug"),
		config.OptJobsNumber(4),
	})

	// Trailing slash is trimmed so path joining stays predictable.
	assert.Equal(t, "http://localhost:8080/api/v1", cfg.Registry.URL)
	assert.Equal(t, 50, cfg.Registry.BatchSize)
	assert.Equal(t, "db.example.org", cfg.Database.Host)
	assert.Equal(t, "botanical", cfg.Codes.NomenclaturalCode)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 4, cfg.JobsNumber)
}

func TestOptionsRejectInvalid(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptRegistryBatchSize(0),
		config.OptDatabaseHost("   "),
		config.OptNomenclaturalCode("bacterial"),
		config.OptLogLevel("chatty"),
	})

	// Invalid values are ignored; config keeps its defaults.
	assert.Equal(t, 100, cfg.Registry.BatchSize)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "zoological", cfg.Codes.NomenclaturalCode)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestToOptionsRoundTrip(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptRegistryURL("http://localhost:8080"),
		config.OptDatabaseDatabase("warehouse"),
		config.OptResolveInputPath("names.csv"),
		config.OptHomeDir("/home/surveyor"),
	})

	clone := config.New()
	clone.Update(cfg.ToOptions())

	// Persistent fields survive the round trip.
	assert.Equal(t, cfg.Registry, clone.Registry)
	assert.Equal(t, cfg.Database, clone.Database)
	assert.Equal(t, cfg.Log, clone.Log)

	// Runtime-only fields do not.
	assert.Empty(t, clone.Resolve.InputPath)
	assert.Empty(t, clone.HomeDir)
}
