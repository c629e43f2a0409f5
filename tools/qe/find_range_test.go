package qe

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"

	"github.com/zjkmxy/fle2/std/bson"
	tu "github.com/zjkmxy/fle2/std/utils/testutils"
)

func writeRequest(t *testing.T, content string) string {
	file := filepath.Join(t.TempDir(), "query.yml")
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))
	return file
}

const seedRequest = `
seed: test-seed
edges:
  - root
  - "0"
  - "10"
counter: 0
max_contention_counter: 8
`

func TestFindRangeHex(t *testing.T) {
	tu.SetT(t)

	fr := FindRange{format: "hex", maxSize: bson.MaxDocumentSize}
	out := &bytes.Buffer{}
	require.NoError(t, fr.Execute(out, writeRequest(t, seedRequest)))

	wire := tu.NoErr(hex.DecodeString(strings.TrimSpace(out.String())))
	require.Equal(t, byte(10), wire[0])

	doc := bsoncore.Document(wire[1:])
	require.NoError(t, doc.Validate())
	require.Len(t, tu.NoErr(doc.Lookup("g").Array().Values()), 3)
	require.Equal(t, int64(8), doc.Lookup("cm").Int64())

	// deterministic for the same request
	again := &bytes.Buffer{}
	require.NoError(t, fr.Execute(again, writeRequest(t, seedRequest)))
	require.Equal(t, out.String(), again.String())
}

func TestFindRangeFormats(t *testing.T) {
	tu.SetT(t)

	file := writeRequest(t, seedRequest)

	out := &bytes.Buffer{}
	fr := FindRange{format: "ejson", maxSize: bson.MaxDocumentSize}
	require.NoError(t, fr.Execute(out, file))
	require.Contains(t, out.String(), `"$binary"`)
	require.Contains(t, out.String(), `"subType":"06"`)

	out.Reset()
	fr.format = "base64"
	require.NoError(t, fr.Execute(out, file))
	require.True(t, strings.HasPrefix(out.String(), "C"))

	fr.format = "pem"
	require.Error(t, fr.Execute(out, file))
}

func TestFindRangeMaxSize(t *testing.T) {
	tu.SetT(t)

	fr := FindRange{format: "hex", maxSize: 64}
	err := fr.Execute(&bytes.Buffer{}, writeRequest(t, seedRequest))
	require.ErrorAs(t, err, &bson.ErrDocumentTooLarge{})
}

func TestFindRangeRequestKey(t *testing.T) {
	tu.SetT(t)

	key := strings.Repeat("ab", 96)
	req := FindRangeRequest{Key: key, Edges: []string{"1"}}
	args := tu.NoErr(req.Args())
	require.Equal(t, bytes.Repeat([]byte{0xab}, 32), args.TokenKey)
	require.Equal(t, []string{"1"}, args.Edges)

	tu.Err((&FindRangeRequest{}).KeyMaterial())
	tu.Err((&FindRangeRequest{Key: key, Seed: "x"}).KeyMaterial())
	tu.Err((&FindRangeRequest{Key: "zz"}).KeyMaterial())
	tu.Err((&FindRangeRequest{Key: "abcd"}).Args())
}

func TestFindRangeUnknownField(t *testing.T) {
	tu.SetT(t)

	fr := FindRange{format: "hex"}
	require.Error(t, fr.Execute(&bytes.Buffer{}, writeRequest(t, "seed: x\nbogus: 1\n")))
}
