package fle2

import (
	"fmt"

	"github.com/zjkmxy/fle2/std/bson"
	enc "github.com/zjkmxy/fle2/std/encoding"
)

// ErrSerialize reports the field at which the document writer failed.
type ErrSerialize struct {
	Field string
	Err   error
}

func (e *ErrSerialize) Error() string {
	return fmt.Sprintf("fle2: failed to serialize %s: %v", e.Field, e.Err)
}

func (e *ErrSerialize) Unwrap() error {
	return e.Err
}

// Serialize writes the payload document into w.
//
// Edges are written in insertion order under the keys "0", "1", ...
// The first writer error aborts serialization; nothing is written after it
// and w is left as is. Empty tokens are not rejected.
func (p *FindRangePayload) Serialize(w bson.Writer) error {
	if p == nil {
		panic("fle2: Serialize on nil FindRangePayload")
	}
	if w == nil {
		panic("fle2: Serialize into nil writer")
	}

	fail := func(field string, err error) error {
		return &ErrSerialize{Field: field, Err: err}
	}

	// Append "g" array of EdgeTokenSets.
	if err := w.BeginArray("g"); err != nil {
		return fail("g", err)
	}

	gIndex := uint32(0)
	for i := range p.EdgeFindTokenSets {
		etc := &p.EdgeFindTokenSets[i]
		key := bson.IndexKey(gIndex)
		gIndex++

		if err := w.BeginDocument(key); err != nil {
			return fail("g."+key, err)
		}
		for _, field := range []struct {
			name  string
			token *enc.Buffer
		}{
			{"d", etc.EdcDerivedToken},
			{"s", etc.EscDerivedToken},
			{"c", etc.EccDerivedToken},
		} {
			if err := field.token.AppendTo(w, field.name); err != nil {
				return fail("g."+key+"."+field.name, err)
			}
		}
		if err := w.EndDocument(); err != nil {
			return fail("g."+key, err)
		}
	}

	if err := w.EndArray(); err != nil {
		return fail("g", err)
	}

	if err := p.ServerEncryptionToken.AppendTo(w, "e"); err != nil {
		return fail("e", err)
	}
	if err := w.AppendInt64("cm", p.MaxContentionCounter); err != nil {
		return fail("cm", err)
	}

	return nil
}
