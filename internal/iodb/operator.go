// Package iodb implements database operations using pgxpool.
// This is an impure I/O package that implements contracts
// defined in pkg/.
package iodb

import (
	"context"
	"fmt"

	"github.com/gnames/gncode/pkg/config"
	"github.com/gnames/gncode/pkg/gncode"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxOperator implements gncode.Operator using pgxpool for
// connection pooling.
type pgxOperator struct {
	pool *pgxpool.Pool
}

// NewPgxOperator creates a new database operator (without connecting).
func NewPgxOperator() gncode.Operator {
	return &pgxOperator{}
}

// Connect establishes a connection pool to PostgreSQL. Uses sensible
// hardcoded pool settings that work well for most use cases.
func (p *pgxOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
		cfg.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	// A one-shot batch loader needs few connections.
	poolConfig.MaxConns = 4
	poolConfig.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	p.pool = pool
	return nil
}

// Close closes the database connection pool.
func (p *pgxOperator) Close() error {
	if p.pool != nil {
		p.pool.Close()
		p.pool = nil
	}
	return nil
}

// Pool returns the underlying pgxpool.Pool.
func (p *pgxOperator) Pool() *pgxpool.Pool {
	return p.pool
}

// TableExists checks if a table exists in the public schema.
func (p *pgxOperator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	if p.pool == nil {
		return false, NotConnectedError()
	}

	q := `
SELECT EXISTS (
	SELECT FROM information_schema.tables
	WHERE table_schema = 'public' AND table_name = $1
)`
	var exists bool
	if err := p.pool.QueryRow(ctx, q, tableName).Scan(&exists); err != nil {
		return false, TableCheckError(tableName, err)
	}

	return exists, nil
}

// HasTables checks if the database has any tables in the public
// schema.
func (p *pgxOperator) HasTables(ctx context.Context) (bool, error) {
	if p.pool == nil {
		return false, NotConnectedError()
	}

	q := `
SELECT EXISTS (
	SELECT FROM information_schema.tables
	WHERE table_schema = 'public'
)`
	var exists bool
	if err := p.pool.QueryRow(ctx, q).Scan(&exists); err != nil {
		return false, TableCheckError("public schema", err)
	}

	return exists, nil
}

// DropAllTables drops all tables in the public schema. Used during
// schema initialization when overwriting existing data.
func (p *pgxOperator) DropAllTables(ctx context.Context) error {
	if p.pool == nil {
		return NotConnectedError()
	}

	q := `
SELECT tablename FROM pg_tables
WHERE schemaname = 'public'`
	rows, err := p.pool.Query(ctx, q)
	if err != nil {
		return DropTablesError(err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return DropTablesError(err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return DropTablesError(err)
	}

	for _, name := range tables {
		drop := fmt.Sprintf("DROP TABLE IF EXISTS %q CASCADE", name)
		if _, err := p.pool.Exec(ctx, drop); err != nil {
			return DropTablesError(err)
		}
	}

	return nil
}
