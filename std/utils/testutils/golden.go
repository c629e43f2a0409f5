package utils

import (
	"encoding/hex"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Golden returns a goldie instance reading testdata/golden/<name>.golden.
// Run the tests with -update to rewrite the fixtures.
func Golden(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

// AssertGoldenHex compares the hex encoding of wire against a golden file.
func AssertGoldenHex(t *testing.T, name string, wire []byte) {
	t.Helper()
	Golden(t).Assert(t, name, []byte(hex.EncodeToString(wire)))
}
