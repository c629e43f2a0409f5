package qe

import (
	"encoding/hex"
	"fmt"

	enc "github.com/zjkmxy/fle2/std/encoding"
	"github.com/zjkmxy/fle2/std/fle2/tokens"
)

// FindRangeRequest is the YAML input of find-range.
// Exactly one of key and seed must be given.
type FindRangeRequest struct {
	// Key is the hex encoded 96 byte data key.
	Key string `json:"key"`
	// Seed derives a development data key instead of Key.
	Seed string `json:"seed"`
	// Edges of the queried range, in query order.
	Edges []string `json:"edges"`
	// Counter the edge tokens are bound to.
	Counter uint64 `json:"counter"`
	// MaxContentionCounter is passed to the server unchanged.
	MaxContentionCounter int64 `json:"max_contention_counter"`
}

// KeyMaterial resolves the data key of the request.
func (r *FindRangeRequest) KeyMaterial() ([]byte, error) {
	switch {
	case r.Key != "" && r.Seed != "":
		return nil, enc.ErrFormat{Msg: "key and seed are mutually exclusive"}
	case r.Key != "":
		key, err := hex.DecodeString(r.Key)
		if err != nil {
			return nil, enc.ErrFormat{Msg: fmt.Sprintf("invalid key: %v", err)}
		}
		return key, nil
	case r.Seed != "":
		return tokens.KeyFromSeed([]byte(r.Seed), nil)
	default:
		return nil, enc.ErrFormat{Msg: "one of key or seed is required"}
	}
}

// Args converts the request to derivation arguments.
func (r *FindRangeRequest) Args() (tokens.FindRangeArgs, error) {
	km, err := r.KeyMaterial()
	if err != nil {
		return tokens.FindRangeArgs{}, err
	}
	tk, err := tokens.TokenKey(km)
	if err != nil {
		return tokens.FindRangeArgs{}, err
	}
	return tokens.FindRangeArgs{
		TokenKey:             tk,
		Edges:                r.Edges,
		Counter:              r.Counter,
		MaxContentionCounter: r.MaxContentionCounter,
	}, nil
}
