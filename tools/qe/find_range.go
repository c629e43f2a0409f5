package qe

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	mbson "go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zjkmxy/fle2/std/bson"
	enc "github.com/zjkmxy/fle2/std/encoding"
	"github.com/zjkmxy/fle2/std/fle2/tokens"
	"github.com/zjkmxy/fle2/std/log"
	"github.com/zjkmxy/fle2/std/utils/toolutils"
)

// binary subtype of encrypted values in a command
const binarySubtypeEncrypted byte = 0x06

type FindRange struct {
	format  string
	maxSize int
	summary bool
}

func CmdFindRange() *cobra.Command {
	fr := FindRange{}

	cmd := &cobra.Command{
		GroupID: "payload",
		Use:     "find-range REQUEST-FILE",
		Short:   "Build a range find payload",
		Long: `Build a range find payload from a YAML request.

The request names a data key (hex) or a seed, the edges to
query and the contention counters. The framed payload is
written to stdout.`,
		Args: cobra.ExactArgs(1),
		Example: `  fle2 find-range query.yml
  fle2 find-range query.yml --format ejson
  fle2 find-range query.yml --summary > payload.hex`,
		Run: fr.run,
	}

	cmd.Flags().StringVar(&fr.format, "format", "hex", "Output format: hex, base64 or ejson")
	cmd.Flags().IntVar(&fr.maxSize, "max-size", bson.MaxDocumentSize, "Maximum document size in bytes")
	cmd.Flags().BoolVar(&fr.summary, "summary", false, "Print a payload summary to stderr")
	return cmd
}

func (fr *FindRange) String() string {
	return "find-range"
}

func (fr *FindRange) run(cmd *cobra.Command, args []string) {
	if err := fr.Execute(cmd.OutOrStdout(), args[0]); err != nil {
		log.Fatal(fr, "Unable to build payload", "err", err)
	}
}

// Execute builds the payload described by the request file and writes it to w.
func (fr *FindRange) Execute(w io.Writer, file string) error {
	req := FindRangeRequest{}
	if err := toolutils.ReadYaml(&req, file); err != nil {
		return err
	}
	args, err := req.Args()
	if err != nil {
		return err
	}

	payload, err := tokens.BuildFindRangePayload(args)
	if err != nil {
		return err
	}
	defer payload.Release()

	wire, err := payload.Marshal(bson.WithMaxSize(fr.maxSize))
	if err != nil {
		return err
	}

	log.Debug(fr, "Built payload",
		"edges", len(payload.EdgeFindTokenSets),
		"size", len(wire),
		"fingerprint", fmt.Sprintf("%016x", enc.Fingerprint(wire)))

	if fr.summary {
		p := toolutils.StatusPrinter{File: os.Stderr, Padding: 12}
		p.Print("edges", len(payload.EdgeFindTokenSets))
		p.Print("counter", args.Counter)
		p.Print("cm", payload.MaxContentionCounter)
		p.Print("size", len(wire))
		p.Print("server", fmt.Sprintf("%016x", enc.FingerprintAll(payload.ServerEncryptionToken)))
		p.Print("fingerprint", fmt.Sprintf("%016x", enc.Fingerprint(wire)))
	}

	out, err := fr.encode(wire)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func (fr *FindRange) encode(wire []byte) (string, error) {
	switch fr.format {
	case "hex":
		return hex.EncodeToString(wire), nil
	case "base64":
		return base64.StdEncoding.EncodeToString(wire), nil
	case "ejson":
		doc := mbson.D{{Key: "payload", Value: primitive.Binary{Subtype: binarySubtypeEncrypted, Data: wire}}}
		out, err := mbson.MarshalExtJSON(doc, true, false)
		if err != nil {
			return "", err
		}
		return string(out), nil
	default:
		return "", fmt.Errorf("unknown output format: %s", fr.format)
	}
}
