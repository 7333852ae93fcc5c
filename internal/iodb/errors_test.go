package iodb

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gncode/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNotConnectedError verifies error structure.
func TestNotConnectedError(t *testing.T) {
	err := NotConnectedError()

	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
	assert.NotEmpty(t, gnErr.Msg)
	assert.Contains(t, gnErr.Err.Error(), "not connected")
}

// TestConnectionError verifies error structure.
func TestConnectionError(t *testing.T) {
	cause := errors.New("connection refused")
	err := ConnectionError("localhost", 5432, "gncode", "postgres", cause)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.DBConnectionError, gnErr.Code)
	assert.Len(t, gnErr.Vars, 4)
	assert.Equal(t, "localhost", gnErr.Vars[0])
	assert.ErrorIs(t, gnErr.Err, cause)
}

// TestInsertError verifies error structure.
func TestInsertError(t *testing.T) {
	cause := errors.New("permission denied")
	err := InsertError("taxon_codes", cause)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.DBInsertError, gnErr.Code)
	assert.Len(t, gnErr.Vars, 1)
	assert.Contains(t, gnErr.Err.Error(), "taxon_codes")
}
