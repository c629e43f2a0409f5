package encoding

// Wire is a sequence of byte slices sent back to back.
// It lets a frame header and a document body be emitted without copying.
type Wire [][]byte

// Join copies the wire into one contiguous slice.
func (w Wire) Join() []byte {
	switch len(w) {
	case 0:
		return []byte{}
	case 1:
		return w[0]
	}

	b := make([]byte, 0, w.Length())
	for _, v := range w {
		b = append(b, v...)
	}
	return b
}

// Length returns the total number of bytes.
func (w Wire) Length() int {
	n := 0
	for _, v := range w {
		n += len(v)
	}
	return n
}
