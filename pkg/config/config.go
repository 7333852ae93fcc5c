// Package config provides configuration management for GNcode.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via
// gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Registry: url, batch_size
//   - Database: host, port, user, password, database, ssl_mode
//   - Codes: nomenclatural_code
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Resolve.InputPath, OutputPath, SQLitePath, ToDB, NoCache
//     (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNCODE_ prefix with underscores for nesting:
//
//	GNCODE_REGISTRY_URL=https://verifier.globalnames.org/api/v1
//	GNCODE_DATABASE_HOST=localhost
//	GNCODE_LOG_LEVEL=info
//	GNCODE_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete GNcode configuration.
type Config struct {
	// Registry holds settings for the taxonomic registry lookups.
	Registry RegistryConfig `mapstructure:"registry" yaml:"registry"`

	// Database contains PostgreSQL connection settings for the
	// optional warehouse load.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Codes contains settings for taxon code derivation.
	Codes CodesConfig `mapstructure:"codes" yaml:"codes"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// Resolve contains settings specific to the resolve command.
	Resolve ResolveConfig `mapstructure:"resolve" yaml:"resolve"`

	// JobsNumber is the number of concurrent workers for registry
	// batches and name parsing. Defaults to the number of CPU threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories
	// reside. It is set by the CLI during init; there is no default.
	HomeDir string
}

// RegistryConfig contains settings for the external taxonomic
// name-matching registry.
type RegistryConfig struct {
	// URL is the base URL of the registry's verification API.
	URL string `mapstructure:"url" yaml:"url"`

	// BatchSize is the maximum number of names per lookup request.
	// The registry rejects larger batches.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`
}

// CodesConfig contains settings for taxon code derivation.
type CodesConfig struct {
	// NomenclaturalCode selects the parsing rules for accepted names.
	// Valid values: "zoological", "botanical".
	NomenclaturalCode string `mapstructure:"nomenclatural_code" yaml:"nomenclatural_code"`
}

// ResolveConfig contains settings specific to the resolve command.
// All fields are runtime-only and come from CLI flags.
type ResolveConfig struct {
	// InputPath is the CSV file with raw field-recorded names.
	InputPath string `mapstructure:"-" yaml:"-"`

	// OutputPath is where the resolved CSV table is written.
	OutputPath string `mapstructure:"-" yaml:"-"`

	// SQLitePath, when set, writes the output table into a local
	// SQLite file as well.
	SQLitePath string `mapstructure:"-" yaml:"-"`

	// ToDB loads the output table into the PostgreSQL warehouse.
	ToDB bool `mapstructure:"-" yaml:"-"`

	// NoCache bypasses the registry response snapshot on disk.
	NoCache bool `mapstructure:"-" yaml:"-"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Registry: RegistryConfig{
			URL:       "https://verifier.globalnames.org/api/v1",
			BatchSize: 100, // request-size limit of the verification API
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Database: "gncode",
			SSLMode:  "disable",
		},
		Codes: CodesConfig{
			NomenclaturalCode: "zoological",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
