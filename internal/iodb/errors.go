package iodb

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gncode/pkg/errcode"
)

// NotConnectedError creates an error for when a database operation is
// attempted without a connection.
func NotConnectedError() error {
	msg := "Database operation attempted without connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// ConnectionError creates an error for connection failures.
func ConnectionError(
	host string,
	port int,
	database, user string,
	err error,
) error {
	msg := `Cannot connect to PostgreSQL

<em>Host:</em> %s:%d
<em>Database:</em> %s
<em>User:</em> %s

<em>Possible causes:</em>
  - PostgreSQL is not running
  - Wrong credentials or database name
  - Network/firewall issues

<em>How to fix:</em>
  1. Check PostgreSQL is running and reachable
  2. Review the <em>database</em> section of config.yaml
  3. Try connecting with psql using the same settings`

	vars := []any{host, port, database, user}

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot connect to database: %w", err),
	}
}

// TableCheckError creates an error for failed table existence checks.
func TableCheckError(table string, err error) error {
	msg := "Cannot check for table <em>%s</em>"
	vars := []any{table}

	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot check table %s: %w", table, err),
	}
}

// DropTablesError creates an error for failed table drops.
func DropTablesError(err error) error {
	msg := `Cannot drop existing tables

<em>How to fix:</em>
  1. Check the database user owns the tables
  2. Check for open connections holding locks`

	return &gn.Error{
		Code: errcode.DBDropTableError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("cannot drop tables: %w", err),
	}
}

// InsertError creates an error for failed bulk inserts.
func InsertError(table string, err error) error {
	msg := `Cannot load rows into <em>%s</em>

<em>Possible causes:</em>
  - Schema out of date (run 'gncode create')
  - Insufficient permissions

<em>How to fix:</em>
  1. Run <em>gncode create</em> to update the schema
  2. Check the database user can INSERT`

	vars := []any{table}

	return &gn.Error{
		Code: errcode.DBInsertError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot insert into %s: %w", table, err),
	}
}
