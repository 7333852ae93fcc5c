// Package gncode defines the pure contracts between the CLI and the
// I/O implementations in internal/io*.
package gncode

import (
	"context"

	"github.com/gnames/gncode/pkg/config"
	"github.com/gnames/gncode/pkg/taxon"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// Version is set by build flags.
	Version = "dev"
	// Build is the build timestamp, set by build flags.
	Build string
)

// Verifier resolves normalized names against the authoritative
// taxonomic registry. Implementations batch the names to respect the
// registry's request-size limits and return one Match per input name,
// in input order. A name the registry does not know comes back with
// zero candidates, never as an error.
type Verifier interface {
	Verify(ctx context.Context, names []string) ([]taxon.Match, error)
}

// Resolver runs the whole pipeline: read raw names, normalize, match
// against the registry, resolve duplicates, assign codes, and write
// the output artifacts. Configuration is provided at construction.
type Resolver interface {
	Resolve(ctx context.Context) error
}

// SchemaManager manages the warehouse schema for resolved taxon
// codes. It uses GORM AutoMigrate, so creation is idempotent.
type SchemaManager interface {
	// Create creates the output tables and applies collation settings
	// for correct scientific name sorting.
	Create(ctx context.Context) error
}

// Operator defines basic database management operations. It provides
// connection lifecycle management and exposes the pgxpool.Pool so
// higher-level components can run their specialized SQL (CopyFrom for
// bulk inserts) internally.
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(ctx context.Context, cfg *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any tables in the public
	// schema. Used to decide whether schema creation should prompt.
	HasTables(ctx context.Context) (bool, error)

	// DropAllTables drops all tables in the public schema.
	DropAllTables(ctx context.Context) error
}
