package qe

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjkmxy/fle2/std/fle2/tokens"
	"github.com/zjkmxy/fle2/std/log"
)

type Keygen struct {
	salt string
}

func CmdKeygen() *cobra.Command {
	kg := Keygen{}

	cmd := &cobra.Command{
		GroupID: "key",
		Use:     "keygen SEED",
		Short:   "Derive a development data key from a seed",
		Long: `Derive a 96 byte data key from a seed with HKDF-SHA256.

The key is deterministic and must only be used for testing.`,
		Args:    cobra.ExactArgs(1),
		Example: `  fle2 keygen my-test-seed --salt tenant-a`,
		Run:     kg.run,
	}

	cmd.Flags().StringVar(&kg.salt, "salt", "", "HKDF salt")
	return cmd
}

func (kg *Keygen) String() string {
	return "keygen"
}

func (kg *Keygen) run(cmd *cobra.Command, args []string) {
	key, err := tokens.KeyFromSeed([]byte(args[0]), []byte(kg.salt))
	if err != nil {
		log.Fatal(kg, "Unable to derive key", "err", err)
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(key))
}
