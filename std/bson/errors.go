package bson

import (
	"errors"
	"fmt"
)

// ErrInvalidState is returned when a call does not fit the current frame,
// e.g. ending an array while a document is open, or writing after Document.
var ErrInvalidState = errors.New("bson: invalid writer state")

// ErrInvalidKey is returned for field names BSON cannot represent.
var ErrInvalidKey = errors.New("bson: field name contains a NUL byte")

type ErrDocumentTooLarge struct {
	Size int
	Max  int
}

func (e ErrDocumentTooLarge) Error() string {
	return fmt.Sprintf("bson: document size %d exceeds limit %d", e.Size, e.Max)
}
