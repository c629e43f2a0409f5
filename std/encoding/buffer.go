package encoding

import (
	"go.mongodb.org/mongo-driver/bson/bsontype"

	"github.com/zjkmxy/fle2/std/types/sync_pool"
)

// BinaryAppender is the part of a document writer a Buffer needs.
type BinaryAppender interface {
	AppendBinary(name string, subtype byte, data []byte) error
}

// storage for token bytes. Released buffers are zeroed before they are pooled.
var bufferPool = sync_pool.New(
	func() *[]byte {
		b := make([]byte, 0, 32)
		return &b
	},
	func(b *[]byte) { *b = (*b)[:0] },
	func(b *[]byte) { clear(*b) },
)

// Buffer is an exclusively owned byte buffer holding derived token material.
// A nil *Buffer behaves as an empty, released buffer.
type Buffer struct {
	data *[]byte
}

// NewBuffer copies b into a new owned buffer.
func NewBuffer(b []byte) *Buffer {
	data := bufferPool.Get()
	*data = append(*data, b...)
	return &Buffer{data: data}
}

// Bytes returns the buffer contents. The slice is only valid until Release.
func (b *Buffer) Bytes() []byte {
	if b == nil || b.data == nil {
		return nil
	}
	return *b.data
}

// Len returns the number of bytes held.
func (b *Buffer) Len() int {
	return len(b.Bytes())
}

// IsEmpty reports whether the buffer holds no bytes.
func (b *Buffer) IsEmpty() bool {
	return b.Len() == 0
}

// AppendTo appends the buffer as a generic binary field named name.
func (b *Buffer) AppendTo(w BinaryAppender, name string) error {
	return w.AppendBinary(name, bsontype.BinaryGeneric, b.Bytes())
}

// Release zeroes the contents and gives the storage back.
// Releasing a nil or already released buffer does nothing.
func (b *Buffer) Release() {
	if b == nil || b.data == nil {
		return
	}
	bufferPool.Put(b.data)
	b.data = nil
}
