// Package tokens derives the queryable encryption tokens carried by find payloads.
//
// All tokens are HMAC-SHA256 chains rooted at the 32 byte token key of a data key:
//
//	CollectionsLevel1Token          = HMAC(K, 1)
//	ServerDataEncryptionLevel1Token = HMAC(K, 3)
//	EDCToken                        = HMAC(CollectionsLevel1Token, 1)
//	ESCToken                        = HMAC(CollectionsLevel1Token, 2)
//	ECCToken                        = HMAC(CollectionsLevel1Token, 3)
//	xDerivedFromDataToken           = HMAC(xToken, v)
//	xDerivedFromDataTokenAndCounter = HMAC(xDerivedFromDataToken, u)
//
// Integers are encoded as 64 bit little endian.
package tokens

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	enc "github.com/zjkmxy/fle2/std/encoding"
	"golang.org/x/exp/constraints"
)

// TokenSize is the size of every derived token.
const TokenSize = sha256.Size

func uint64LE[T constraints.Integer](v T) []byte {
	return binary.LittleEndian.AppendUint64(make([]byte, 0, 8), uint64(v))
}

func hmacSha256(key []byte, data []byte) ([]byte, error) {
	if len(key) != TokenSize {
		return nil, enc.ErrFormat{Msg: fmt.Sprintf("token key must be %d bytes, got %d", TokenSize, len(key))}
	}
	mac := hmac.New(sha256.New, key)
	if _, err := mac.Write(data); err != nil {
		return nil, enc.ErrUnexpected{Err: err}
	}
	return mac.Sum(nil), nil
}

func CollectionsLevel1Token(tokenKey []byte) ([]byte, error) {
	return hmacSha256(tokenKey, uint64LE(1))
}

func ServerDataEncryptionLevel1Token(tokenKey []byte) ([]byte, error) {
	return hmacSha256(tokenKey, uint64LE(3))
}

func EDCToken(collectionsLevel1 []byte) ([]byte, error) {
	return hmacSha256(collectionsLevel1, uint64LE(1))
}

func ESCToken(collectionsLevel1 []byte) ([]byte, error) {
	return hmacSha256(collectionsLevel1, uint64LE(2))
}

func ECCToken(collectionsLevel1 []byte) ([]byte, error) {
	return hmacSha256(collectionsLevel1, uint64LE(3))
}

// DerivedFromData binds an EDC, ESC or ECC token to a value.
func DerivedFromData(token []byte, value []byte) ([]byte, error) {
	return hmacSha256(token, value)
}

// DerivedFromDataAndCounter binds a DerivedFromData token to a contention counter.
func DerivedFromDataAndCounter(derived []byte, counter uint64) ([]byte, error) {
	return hmacSha256(derived, uint64LE(counter))
}
