package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var testT *testing.T

// SetT binds the current test; call it first in every test using NoErr or Err.
func SetT(t *testing.T) {
	testT = t
}

// NoErr unwraps a (value, error) result, failing the bound test on error.
func NoErr[T any](v T, err error) T {
	require.NoError(testT, err)
	return v
}

// Err discards the value of a result and returns its error, failing the bound test if it is nil.
func Err[T any](_ T, err error) error {
	require.Error(testT, err)
	return err
}
