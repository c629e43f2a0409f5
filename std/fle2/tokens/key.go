package tokens

import (
	"crypto/sha256"
	"fmt"
	"io"

	enc "github.com/zjkmxy/fle2/std/encoding"
	"golang.org/x/crypto/hkdf"
)

// KeyMaterialSize is the size of a data key: encryption key, MAC key, token key.
const KeyMaterialSize = 96

var hkdfInfo = []byte("fle2 development data key")

// TokenKey returns the token key part of a data key.
func TokenKey(keyMaterial []byte) ([]byte, error) {
	if len(keyMaterial) != KeyMaterialSize {
		return nil, enc.ErrFormat{Msg: fmt.Sprintf("key material must be %d bytes, got %d", KeyMaterialSize, len(keyMaterial))}
	}
	return keyMaterial[2*TokenSize:], nil
}

// KeyFromSeed deterministically expands seed into a data key.
// The result is only suitable for tests and tooling.
func KeyFromSeed(seed []byte, salt []byte) ([]byte, error) {
	if len(seed) == 0 {
		return nil, enc.ErrFormat{Msg: "seed must not be empty"}
	}
	r := hkdf.New(sha256.New, seed, salt, hkdfInfo)
	key := make([]byte, KeyMaterialSize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, enc.ErrUnexpected{Err: err}
	}
	return key, nil
}
