package log_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjkmxy/fle2/std/log"
	tu "github.com/zjkmxy/fle2/std/utils/testutils"
)

type tag struct{}

func (tag) String() string { return "find-range" }

func TestParseLevel(t *testing.T) {
	tu.SetT(t)

	require.Equal(t, log.LevelTrace, tu.NoErr(log.ParseLevel("TRACE")))
	require.Equal(t, log.LevelDebug, tu.NoErr(log.ParseLevel("debug")))
	require.Equal(t, log.LevelFatal, tu.NoErr(log.ParseLevel("FATAL")))
	tu.Err(log.ParseLevel("LOUD"))

	require.Equal(t, "WARN", log.LevelWarn.String())
	require.Equal(t, "UNKNOWN", log.Level(3).String())
}

func TestLoggerLevel(t *testing.T) {
	tu.SetT(t)

	out := &bytes.Buffer{}
	l := log.NewText(out)
	require.Equal(t, log.LevelInfo, l.Level())

	l.Debug(nil, "hidden")
	require.Empty(t, out.String())

	l.Info(tag{}, "Built payload", "edges", 3)
	require.Contains(t, out.String(), "level=INFO")
	require.Contains(t, out.String(), "tag=find-range")
	require.Contains(t, out.String(), "edges=3")

	prev := l.SetLevel(log.LevelError)
	require.Equal(t, log.LevelInfo, prev)
	out.Reset()
	l.Warn(nil, "hidden")
	require.Empty(t, out.String())
}

func TestLoggerJson(t *testing.T) {
	tu.SetT(t)

	out := &bytes.Buffer{}
	l := log.NewJson(out)
	l.Error("tag", "failed")
	require.Contains(t, out.String(), `"level":"ERROR"`)
	require.Contains(t, out.String(), `"tag":"tag"`)
}

func TestSetDefault(t *testing.T) {
	tu.SetT(t)

	out := &bytes.Buffer{}
	prev := log.SetDefault(log.NewText(out))
	defer log.SetDefault(prev)

	log.Info(nil, "hello")
	require.Contains(t, out.String(), "msg=hello")
	require.False(t, log.HasTrace())
}
