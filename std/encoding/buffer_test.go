package encoding_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/bsontype"

	enc "github.com/zjkmxy/fle2/std/encoding"
	tu "github.com/zjkmxy/fle2/std/utils/testutils"
)

type recordingAppender struct {
	name    string
	subtype byte
	data    []byte
	err     error
}

func (r *recordingAppender) AppendBinary(name string, subtype byte, data []byte) error {
	r.name, r.subtype, r.data = name, subtype, append([]byte{}, data...)
	return r.err
}

func TestBufferCopies(t *testing.T) {
	tu.SetT(t)

	src := []byte{1, 2, 3}
	b := enc.NewBuffer(src)
	defer b.Release()

	src[0] = 9
	require.Equal(t, []byte{1, 2, 3}, b.Bytes())
	require.Equal(t, 3, b.Len())
	require.False(t, b.IsEmpty())
}

func TestBufferRelease(t *testing.T) {
	tu.SetT(t)

	b := enc.NewBuffer([]byte("secret token"))
	view := b.Bytes()
	b.Release()

	require.True(t, b.IsEmpty())
	require.Nil(t, b.Bytes())
	require.Equal(t, make([]byte, len("secret token")), view)

	// released twice, and nil
	b.Release()
	var nilb *enc.Buffer
	nilb.Release()
	require.Equal(t, 0, nilb.Len())
}

func TestBufferEmpty(t *testing.T) {
	tu.SetT(t)

	b := enc.NewBuffer(nil)
	defer b.Release()
	require.True(t, b.IsEmpty())
	require.Equal(t, 0, b.Len())
}

func TestBufferAppendTo(t *testing.T) {
	tu.SetT(t)

	b := enc.NewBuffer([]byte{0xde, 0xad})
	defer b.Release()

	r := &recordingAppender{}
	require.NoError(t, b.AppendTo(r, "d"))
	require.Equal(t, "d", r.name)
	require.Equal(t, bsontype.BinaryGeneric, r.subtype)
	require.Equal(t, []byte{0xde, 0xad}, r.data)

	// nil buffers append as empty binaries
	var nilb *enc.Buffer
	require.NoError(t, nilb.AppendTo(r, "e"))
	require.Equal(t, "e", r.name)
	require.Empty(t, r.data)

	// writer errors are returned untouched
	r.err = enc.ErrFormat{Msg: "full"}
	require.Equal(t, r.err, b.AppendTo(r, "s"))
}

func TestFingerprint(t *testing.T) {
	tu.SetT(t)

	a := enc.NewBuffer([]byte("ab"))
	b := enc.NewBuffer([]byte("cd"))
	defer a.Release()
	defer b.Release()

	require.Equal(t, enc.Fingerprint([]byte("abcd")), enc.FingerprintAll(a, b))
	require.NotEqual(t, enc.Fingerprint([]byte("abcd")), enc.FingerprintAll(b, a))
	require.Equal(t, enc.Fingerprint(nil), enc.FingerprintAll(nil))
}

func TestWireJoin(t *testing.T) {
	tu.SetT(t)

	require.Equal(t, []byte{}, enc.Wire{}.Join())
	require.Equal(t, []byte{1, 2}, enc.Wire{{1, 2}}.Join())

	w := enc.Wire{{1}, {}, {2, 3}}
	require.Equal(t, 3, w.Length())
	require.Equal(t, []byte{1, 2, 3}, w.Join())
}
