package ioregistry

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gncode/pkg/errcode"
)

// RequestError creates an error for when a registry request cannot be
// built or sent.
func RequestError(err error) error {
	msg := `Cannot reach the taxonomic registry

<em>Possible causes:</em>
  - No network connection
  - Registry URL is wrong or the service is down

<em>How to fix:</em>
  1. Check the <em>registry.url</em> setting
  2. Re-run when the registry is reachable; cached names are reused`

	return &gn.Error{
		Code: errcode.RegistryRequestError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("registry request failed: %w", err),
	}
}

// StatusError creates an error for a non-200 registry response.
func StatusError(url string, status int, body string) error {
	msg := `Registry returned an unexpected status

<em>URL:</em> %s
<em>Status:</em> %d

<em>How to fix:</em>
  1. Check the <em>registry.url</em> setting points at the API root
  2. Lower <em>registry.batch_size</em> if the service rejects large requests`

	vars := []any{url, status}

	return &gn.Error{
		Code: errcode.RegistryStatusError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("registry returned %d: %s",
			status, body),
	}
}

// ResponseError creates an error for a registry response that cannot
// be interpreted.
func ResponseError(err error) error {
	msg := `Cannot interpret the registry response

<em>Possible causes:</em>
  - The URL points at a different service
  - Registry API changed

<em>How to fix:</em>
  1. Check the <em>registry.url</em> setting
  2. Update gncode if the registry API version moved`

	return &gn.Error{
		Code: errcode.RegistryResponseError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("registry response: %w", err),
	}
}
