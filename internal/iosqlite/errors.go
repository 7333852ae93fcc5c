package iosqlite

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gncode/pkg/errcode"
)

// OpenError creates an error for a SQLite file that cannot be opened
// or created.
func OpenError(path string, err error) error {
	msg := `Cannot open SQLite file <em>%s</em>

<em>How to fix:</em>
  1. Check the directory exists and is writable
  2. Check the file is not locked by another program`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.SQLiteOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot open sqlite file %s: %w", path, err),
	}
}

// WriteError creates an error for failed writes to the SQLite file.
func WriteError(path string, err error) error {
	msg := `Cannot write the output table to <em>%s</em>

<em>How to fix:</em>
  1. Check free disk space and file permissions
  2. Remove the file and run the resolver again to rebuild it`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.SQLiteWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write to sqlite file %s: %w", path, err),
	}
}
