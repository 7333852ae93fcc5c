package iofs

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gncode/pkg/errcode"
)

// CreateDirError creates an error for when an application directory
// cannot be created.
func CreateDirError(dir string, err error) error {
	msg := `Cannot create directory <em>%s</em>

<em>Possible causes:</em>
  - Missing permissions in the parent directory
  - Parent path is a file, not a directory

<em>How to fix:</em>
  1. Check permissions of the parent directory
  2. Remove conflicting files`

	vars := []any{dir}

	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot create dir: %w", err),
	}
}

// CopyFileError creates an error for when a default configuration
// file cannot be written.
func CopyFileError(path string, err error) error {
	msg := "Cannot write file <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.CopyFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write file: %w", err),
	}
}

// ReadFileError creates an error for when a configuration file cannot
// be read or parsed.
func ReadFileError(path string, err error) error {
	msg := `Cannot read file <em>%s</em>

<em>How to fix:</em>
  1. Check that the file exists and is readable
  2. Check the YAML syntax if it was edited by hand`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read file: %w", err),
	}
}
