package fle2

import (
	"fmt"

	"github.com/zjkmxy/fle2/std/bson"
	enc "github.com/zjkmxy/fle2/std/encoding"
)

// BlobSubtype is the leading byte identifying an encrypted payload on the wire.
type BlobSubtype uint8

const (
	BlobSubtypeFLE1EncryptionPlaceholder     BlobSubtype = 0
	BlobSubtypeFLE1DeterministicEncrypted    BlobSubtype = 1
	BlobSubtypeFLE1RandomEncrypted           BlobSubtype = 2
	BlobSubtypeEncryptionPlaceholder         BlobSubtype = 3
	BlobSubtypeInsertUpdatePayload           BlobSubtype = 4
	BlobSubtypeFindEqualityPayload           BlobSubtype = 5
	BlobSubtypeUnindexedEncryptedValue       BlobSubtype = 6
	BlobSubtypeIndexedEqualityEncryptedValue BlobSubtype = 7
	BlobSubtypeIndexedRangeEncryptedValue    BlobSubtype = 9
	BlobSubtypeFindRangePayload              BlobSubtype = 10
)

func (t BlobSubtype) String() string {
	switch t {
	case BlobSubtypeFLE1EncryptionPlaceholder:
		return "FLE1EncryptionPlaceholder"
	case BlobSubtypeFLE1DeterministicEncrypted:
		return "FLE1DeterministicEncryptedValue"
	case BlobSubtypeFLE1RandomEncrypted:
		return "FLE1RandomEncryptedValue"
	case BlobSubtypeEncryptionPlaceholder:
		return "FLE2EncryptionPlaceholder"
	case BlobSubtypeInsertUpdatePayload:
		return "FLE2InsertUpdatePayload"
	case BlobSubtypeFindEqualityPayload:
		return "FLE2FindEqualityPayload"
	case BlobSubtypeUnindexedEncryptedValue:
		return "FLE2UnindexedEncryptedValue"
	case BlobSubtypeIndexedEqualityEncryptedValue:
		return "FLE2IndexedEqualityEncryptedValue"
	case BlobSubtypeIndexedRangeEncryptedValue:
		return "FLE2IndexedRangeEncryptedValue"
	case BlobSubtypeFindRangePayload:
		return "FLE2FindRangePayload"
	default:
		return fmt.Sprintf("BlobSubtype(%d)", uint8(t))
	}
}

// MarshalWire serializes the payload into a new document and frames it with
// BlobSubtypeFindRangePayload. The returned wire is the tag followed by the document.
func (p *FindRangePayload) MarshalWire(opts ...bson.Option) (enc.Wire, error) {
	b := bson.NewBuilder(opts...)
	if err := p.Serialize(b); err != nil {
		return nil, err
	}
	doc, err := b.Document()
	if err != nil {
		return nil, err
	}
	return enc.Wire{{byte(BlobSubtypeFindRangePayload)}, doc}, nil
}

// Marshal is like MarshalWire but returns a single contiguous buffer,
// which is the form sent to the server.
func (p *FindRangePayload) Marshal(opts ...bson.Option) ([]byte, error) {
	wire, err := p.MarshalWire(opts...)
	if err != nil {
		return nil, err
	}
	return wire.Join(), nil
}
