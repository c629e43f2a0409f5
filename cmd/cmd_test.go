package cmd

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjkmxy/fle2/std/fle2/tokens"
	"github.com/zjkmxy/fle2/std/log"
	tu "github.com/zjkmxy/fle2/std/utils/testutils"
)

func execute(t *testing.T, args ...string) string {
	out := &bytes.Buffer{}
	CmdFle2.SetOut(out)
	CmdFle2.SetArgs(args)
	require.NoError(t, CmdFle2.Execute())
	return out.String()
}

func TestKeygen(t *testing.T) {
	tu.SetT(t)

	key := tu.NoErr(hex.DecodeString(strings.TrimSpace(execute(t, "keygen", "seed", "--salt", "s"))))
	require.Equal(t, tu.NoErr(tokens.KeyFromSeed([]byte("seed"), []byte("s"))), key)
}

func TestLogLevelFlag(t *testing.T) {
	tu.SetT(t)

	prev := log.Default().Level()
	defer log.Default().SetLevel(prev)

	execute(t, "keygen", "seed", "--log-level", "debug")
	require.Equal(t, log.LevelDebug, log.Default().Level())

	CmdFle2.SetArgs([]string{"keygen", "seed", "--log-level", "loud"})
	CmdFle2.SetErr(&bytes.Buffer{})
	require.Error(t, CmdFle2.Execute())
}
