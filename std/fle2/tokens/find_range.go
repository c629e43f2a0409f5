package tokens

import (
	enc "github.com/zjkmxy/fle2/std/encoding"
	"github.com/zjkmxy/fle2/std/fle2"
)

// FindRangeArgs are the inputs to BuildFindRangePayload.
type FindRangeArgs struct {
	// TokenKey is the 32 byte token key of the index key.
	TokenKey []byte
	// Edges are the edges covering the queried range, in query order.
	Edges []string
	// Counter is the contention counter the edge tokens are bound to.
	Counter uint64
	// MaxContentionCounter is copied to the payload as is.
	MaxContentionCounter int64
}

// EdgeTokens derives the token set of one edge.
// On error nothing is left allocated.
func EdgeTokens(collectionsLevel1 []byte, edge string, counter uint64) (etc fle2.EdgeFindTokenSet, err error) {
	defer func() {
		if err != nil {
			etc.EdcDerivedToken.Release()
			etc.EscDerivedToken.Release()
			etc.EccDerivedToken.Release()
			etc = fle2.EdgeFindTokenSet{}
		}
	}()

	derive := func(root func([]byte) ([]byte, error)) (*enc.Buffer, error) {
		token, err := root(collectionsLevel1)
		if err != nil {
			return nil, err
		}
		derived, err := DerivedFromData(token, []byte(edge))
		if err != nil {
			return nil, err
		}
		withCounter, err := DerivedFromDataAndCounter(derived, counter)
		if err != nil {
			return nil, err
		}
		return enc.NewBuffer(withCounter), nil
	}

	if etc.EdcDerivedToken, err = derive(EDCToken); err != nil {
		return
	}
	if etc.EscDerivedToken, err = derive(ESCToken); err != nil {
		return
	}
	if etc.EccDerivedToken, err = derive(ECCToken); err != nil {
		return
	}
	return etc, nil
}

// BuildFindRangePayload derives a complete find payload for the given edges.
// The caller owns the result and must Release it.
func BuildFindRangePayload(args FindRangeArgs) (*fle2.FindRangePayload, error) {
	p := fle2.NewFindRangePayload()
	ok := false
	defer func() {
		if !ok {
			p.Release()
		}
	}()

	cl1, err := CollectionsLevel1Token(args.TokenKey)
	if err != nil {
		return nil, err
	}
	for _, edge := range args.Edges {
		etc, err := EdgeTokens(cl1, edge, args.Counter)
		if err != nil {
			return nil, err
		}
		p.AppendEdge(etc)
	}

	server, err := ServerDataEncryptionLevel1Token(args.TokenKey)
	if err != nil {
		return nil, err
	}
	p.SetServerEncryptionToken(enc.NewBuffer(server))
	p.SetMaxContentionCounter(args.MaxContentionCounter)

	ok = true
	return p, nil
}
