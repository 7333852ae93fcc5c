package iocsv

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gncode/pkg/errcode"
)

// OpenError creates an error for when a CSV file cannot be opened or
// created.
func OpenError(path string, err error) error {
	msg := `Cannot open <em>%s</em>

<em>How to fix:</em>
  1. Check the path is correct
  2. Check file permissions`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.InputOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot open %s: %w", path, err),
	}
}

// ParseError creates an error for malformed CSV input.
func ParseError(path string, err error) error {
	msg := `Cannot parse <em>%s</em> as CSV

<em>Possible causes:</em>
  - Unbalanced quotes in a field
  - File is not CSV (spreadsheet export gone wrong)

<em>How to fix:</em>
  1. Re-export the species list as plain CSV
  2. Check the reported line for stray quotes`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.InputParseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot parse %s: %w", path, err),
	}
}

// EmptyError creates an error for input with no usable names.
func EmptyError(path string) error {
	msg := `No taxon names found in <em>%s</em>

<em>How to fix:</em>
  1. Check that the file has a <em>taxon</em> column or names in the
     first column
  2. Check that data rows are not empty`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.InputEmptyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("no names in %s", path),
	}
}

// WriteError creates an error for output that cannot be written.
func WriteError(path string, err error) error {
	msg := "Cannot write output table <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.ResolveOutputError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write %s: %w", path, err),
	}
}
