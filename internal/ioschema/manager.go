// Package ioschema implements the SchemaManager contract for the
// output warehouse. This is an impure I/O package that wraps GORM
// AutoMigrate functionality.
package ioschema

import (
	"context"
	"fmt"

	"github.com/gnames/gncode/pkg/gncode"
	"github.com/gnames/gncode/pkg/schema"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// manager implements the gncode.SchemaManager interface using GORM
// AutoMigrate.
type manager struct {
	operator gncode.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op gncode.Operator) gncode.SchemaManager {
	return &manager{operator: op}
}

// Create creates the output tables using GORM AutoMigrate. Also
// applies collation settings for correct scientific name sorting.
func (m *manager) Create(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	db := stdlib.OpenDBFromPool(pool)

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: db}),
		&gorm.Config{},
	)
	if err != nil {
		return GORMConnectionError(err)
	}

	if err := schema.Migrate(gormDB); err != nil {
		return CreateSchemaError(err)
	}

	if err := m.setCollation(ctx); err != nil {
		return err
	}

	return nil
}

// setCollation sets "C" collation on name columns. This is critical
// for correct sorting and comparison of scientific names.
func (m *manager) setCollation(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	type columnDef struct {
		table, column string
		varchar       int
	}

	columns := []columnDef{
		{"taxon_codes", "taxon_name", 255},
		{"taxon_codes", "accepted_name", 255},
	}

	for _, c := range columns {
		q := fmt.Sprintf(
			`ALTER TABLE %q ALTER COLUMN %q TYPE varchar(%d) COLLATE "C"`,
			c.table, c.column, c.varchar,
		)
		if _, err := pool.Exec(ctx, q); err != nil {
			return CollationError(c.table, c.column, err)
		}
	}

	return nil
}
