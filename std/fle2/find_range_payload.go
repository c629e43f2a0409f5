package fle2

import (
	enc "github.com/zjkmxy/fle2/std/encoding"
)

// FindRangePayload is the client generated payload to query a range indexed field.
//
// It is serialized as a BSON document of the form:
//
//	g: array<EdgeFindTokenSet> // Array of Edges
//	e: <binary>                // ServerDataEncryptionLevel1Token
//	cm: <int64>                // Queryable Encryption max counter
//
// and sent prefixed with BlobSubtypeFindRangePayload, see Marshal.
// The payload owns all of its buffers; Release frees them together.
type FindRangePayload struct {
	EdgeFindTokenSets     []EdgeFindTokenSet // g
	ServerEncryptionToken *enc.Buffer        // e
	MaxContentionCounter  int64              // cm
}

// EdgeFindTokenSet holds the tokens of one edge of the queried range.
// Once appended to a FindRangePayload it is owned by that payload.
type EdgeFindTokenSet struct {
	EdcDerivedToken *enc.Buffer // d
	EscDerivedToken *enc.Buffer // s
	EccDerivedToken *enc.Buffer // c
}

func (etc *EdgeFindTokenSet) release() {
	etc.EdcDerivedToken.Release()
	etc.EscDerivedToken.Release()
	etc.EccDerivedToken.Release()
}

// NewFindRangePayload returns an initialized, empty payload.
func NewFindRangePayload() *FindRangePayload {
	p := &FindRangePayload{}
	p.Init()
	return p
}

// Init resets p to an empty payload: no edges, an empty server token and a zero counter.
// Buffers p held before are released first.
func (p *FindRangePayload) Init() {
	if p == nil {
		panic("fle2: Init on nil FindRangePayload")
	}
	p.Release()
	*p = FindRangePayload{
		EdgeFindTokenSets: make([]EdgeFindTokenSet, 0),
	}
}

// AppendEdge appends etc to the edges and takes ownership of its buffers.
// Duplicates are kept.
func (p *FindRangePayload) AppendEdge(etc EdgeFindTokenSet) {
	if p == nil {
		panic("fle2: AppendEdge on nil FindRangePayload")
	}
	p.EdgeFindTokenSets = append(p.EdgeFindTokenSets, etc)
}

// SetServerEncryptionToken takes ownership of token, releasing any previous one.
func (p *FindRangePayload) SetServerEncryptionToken(token *enc.Buffer) {
	if p == nil {
		panic("fle2: SetServerEncryptionToken on nil FindRangePayload")
	}
	if p.ServerEncryptionToken != token {
		p.ServerEncryptionToken.Release()
	}
	p.ServerEncryptionToken = token
}

// SetMaxContentionCounter sets cm. Any value is accepted.
func (p *FindRangePayload) SetMaxContentionCounter(cm int64) {
	if p == nil {
		panic("fle2: SetMaxContentionCounter on nil FindRangePayload")
	}
	p.MaxContentionCounter = cm
}

// Release frees the server token and every edge's tokens, then drops the edges.
// It is a no-op on a nil or zero valued payload, and on a second call.
func (p *FindRangePayload) Release() {
	if p == nil {
		return
	}
	p.ServerEncryptionToken.Release()
	// Free all EdgeFindTokenSet entries.
	for i := range p.EdgeFindTokenSets {
		p.EdgeFindTokenSets[i].release()
	}
	p.EdgeFindTokenSets = nil
}
