package bson

import (
	"strings"

	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// MaxDocumentSize is the default size limit, matching the server's.
const MaxDocumentSize = 16 * 1024 * 1024

type frameKind uint8

const (
	frameDocument frameKind = iota
	frameArray
)

type frame struct {
	kind  frameKind
	start int32
}

// Builder is a Writer producing a single BSON document in memory.
// It is not safe for concurrent use.
type Builder struct {
	buf     []byte
	stack   []frame
	maxSize int
	done    bool
}

type Option func(*Builder)

// WithMaxSize limits the finished document to n bytes. n <= 0 disables the limit.
func WithMaxSize(n int) Option {
	return func(b *Builder) {
		b.maxSize = n
	}
}

// NewBuilder starts an empty top level document.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{maxSize: MaxDocumentSize}
	for _, opt := range opts {
		opt(b)
	}

	var start int32
	start, b.buf = bsoncore.AppendDocumentStart(make([]byte, 0, 256))
	b.stack = append(b.stack, frame{kind: frameDocument, start: start})
	return b
}

// Depth returns the number of open frames, including the top level.
func (b *Builder) Depth() int {
	return len(b.stack)
}

// Len returns the size the document would have if all open frames were closed now.
func (b *Builder) Len() int {
	return len(b.buf) + len(b.stack)
}

func (b *Builder) writable(name string) error {
	if b.done {
		return ErrInvalidState
	}
	if strings.IndexByte(name, 0) >= 0 {
		return ErrInvalidKey
	}
	return nil
}

// commit accepts next as the new buffer unless it exceeds the size limit.
// extraFrames is the number of frames next opens.
func (b *Builder) commit(next []byte, extraFrames int) error {
	size := len(next) + len(b.stack) + extraFrames
	if b.maxSize > 0 && size > b.maxSize {
		b.buf = next[:len(b.buf)]
		return ErrDocumentTooLarge{Size: size, Max: b.maxSize}
	}
	b.buf = next
	return nil
}

func (b *Builder) begin(name string, kind frameKind) error {
	if err := b.writable(name); err != nil {
		return err
	}

	var start int32
	var next []byte
	if kind == frameArray {
		start, next = bsoncore.AppendArrayElementStart(b.buf, name)
	} else {
		start, next = bsoncore.AppendDocumentElementStart(b.buf, name)
	}
	if err := b.commit(next, 1); err != nil {
		return err
	}

	b.stack = append(b.stack, frame{kind: kind, start: start})
	return nil
}

func (b *Builder) BeginArray(name string) error {
	return b.begin(name, frameArray)
}

func (b *Builder) BeginDocument(name string) error {
	return b.begin(name, frameDocument)
}

func (b *Builder) AppendBinary(name string, subtype byte, data []byte) error {
	if err := b.writable(name); err != nil {
		return err
	}
	return b.commit(bsoncore.AppendBinaryElement(b.buf, name, subtype, data), 0)
}

func (b *Builder) AppendInt64(name string, v int64) error {
	if err := b.writable(name); err != nil {
		return err
	}
	return b.commit(bsoncore.AppendInt64Element(b.buf, name, v), 0)
}

func (b *Builder) end(kind frameKind) (err error) {
	// the top level frame is only closed by Document
	if b.done || len(b.stack) < 2 {
		return ErrInvalidState
	}
	top := b.stack[len(b.stack)-1]
	if top.kind != kind {
		return ErrInvalidState
	}

	if kind == frameArray {
		b.buf, err = bsoncore.AppendArrayEnd(b.buf, top.start)
	} else {
		b.buf, err = bsoncore.AppendDocumentEnd(b.buf, top.start)
	}
	if err != nil {
		return err
	}

	b.stack = b.stack[:len(b.stack)-1]
	return nil
}

func (b *Builder) EndDocument() error {
	return b.end(frameDocument)
}

func (b *Builder) EndArray() error {
	return b.end(frameArray)
}

// Document closes the top level and returns the finished document.
// It fails if a nested frame is still open. Subsequent calls return the same document.
func (b *Builder) Document() (bsoncore.Document, error) {
	if b.done {
		return bsoncore.Document(b.buf), nil
	}
	if len(b.stack) != 1 {
		return nil, ErrInvalidState
	}

	buf, err := bsoncore.AppendDocumentEnd(b.buf, b.stack[0].start)
	if err != nil {
		return nil, err
	}
	b.buf = buf
	b.stack = b.stack[:0]
	b.done = true
	return bsoncore.Document(b.buf), nil
}
