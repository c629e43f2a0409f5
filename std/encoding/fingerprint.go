package encoding

import (
	"github.com/cespare/xxhash"
)

// Fingerprint returns a non-cryptographic digest of b.
// It is meant to correlate token material in logs without printing it.
func Fingerprint(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// FingerprintAll digests a sequence of buffers as if they were concatenated.
func FingerprintAll(bufs ...*Buffer) uint64 {
	h := xxhash.New()
	for _, b := range bufs {
		h.Write(b.Bytes())
	}
	return h.Sum64()
}
