package ioresolve

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gncode/pkg/errcode"
)

// CorrectionsError creates an error for a corrections file that
// cannot be read, parsed or validated.
func CorrectionsError(path string, err error) error {
	msg := `Cannot use corrections file <em>%s</em>

<em>How to fix:</em>
  1. Check the YAML syntax of the file
  2. Run <em>gncode check</em> to see the exact problem
  3. Delete the file to regenerate the default template`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.CorrectionsConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("bad corrections file %s: %w", path, err),
	}
}

// OverridesError creates an error for an overrides file that cannot
// be read, parsed or validated.
func OverridesError(path string, err error) error {
	msg := `Cannot use overrides file <em>%s</em>

<em>How to fix:</em>
  1. Check the YAML syntax of the file
  2. Make sure no two names claim the same code
  3. Run <em>gncode check</em> to see the exact problem`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.OverridesConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("bad overrides file %s: %w", path, err),
	}
}

// CodeAssignError creates an error for input data from which unique
// codes cannot be derived.
func CodeAssignError(err error) error {
	msg := `Cannot assign unique taxon codes

Two taxa collide on the same code even after truncation extension,
or an override clashes with another entry.

<em>How to fix:</em>
  1. Pin an explicit code for one of the colliding names in the
     overrides file
  2. Run the resolver again`

	return &gn.Error{
		Code: errcode.ResolveCodeAssignError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("cannot assign codes: %w", err),
	}
}
