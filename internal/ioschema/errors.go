package ioschema

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gncode/pkg/errcode"
)

// NotConnectedError creates an error for schema operations attempted
// before a database connection was established.
func NotConnectedError() error {
	msg := `Schema operation attempted without a database connection

<em>How to fix:</em>
  1. Check PostgreSQL is running and reachable
  2. Review the <em>database</em> section of config.yaml`

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// GORMConnectionError creates an error for a failed GORM attachment
// to the existing connection pool.
func GORMConnectionError(err error) error {
	msg := `Cannot open a GORM connection to the database

<em>How to fix:</em>
  1. Check PostgreSQL accepts connections with the configured
     credentials
  2. Review the <em>database</em> section of config.yaml`

	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("cannot open GORM connection: %w", err),
	}
}

// CreateSchemaError creates an error for a failed AutoMigrate run.
func CreateSchemaError(err error) error {
	msg := `Cannot create the output tables

<em>Possible causes:</em>
  - The database user cannot create tables
  - Tables from an older version conflict with the current schema

<em>How to fix:</em>
  1. Check the database user has CREATE privileges
  2. Run <em>gncode create --force</em> to drop old tables first`

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("cannot create schema: %w", err),
	}
}

// CollationError creates an error for a failed collation change on a
// name column.
func CollationError(table, column string, err error) error {
	msg := `Cannot set "C" collation for <em>%s.%s</em>

Name columns use "C" collation for deterministic sorting.

<em>How to fix:</em>
  1. Check the database user owns the table
  2. Or run the ALTER TABLE statement manually as a superuser`

	vars := []any{table, column}

	return &gn.Error{
		Code: errcode.SchemaCollationError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("cannot set collation for %s.%s: %w",
			table, column, err),
	}
}
