package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerText(t *testing.T) {
	var buf bytes.Buffer
	l := Logger(&buf, false, slog.LevelInfo)

	l.Debug("hidden")
	l.Info("shown", "k", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `msg=shown`)
	assert.Contains(t, out, "k=1")
}

func TestLoggerJSONWithContext(t *testing.T) {
	var buf bytes.Buffer
	l := Logger(&buf, true, slog.LevelDebug)

	ctx := AppendCtx(context.Background(), slog.String("app", "unmult"))
	ctx = AppendCtx(ctx, slog.Int("run", 2))
	l.DebugContext(ctx, "hello")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "unmult", rec["app"])
	assert.EqualValues(t, 2, rec["run"])
}

func TestLoggerWithAttrsKeepsContext(t *testing.T) {
	var buf bytes.Buffer
	l := Logger(&buf, false, slog.LevelInfo).With("component", "apply").WithGroup("g")

	l.InfoContext(AppendCtx(context.Background(), slog.String("file", "a.png")), "done")

	out := buf.String()
	assert.Contains(t, out, "component=apply")
	assert.Contains(t, out, "a.png")
}

func TestAppendCtxDoesNotAlias(t *testing.T) {
	base := AppendCtx(context.Background(), slog.String("a", "1"))
	left := AppendCtx(base, slog.String("b", "2"))
	right := AppendCtx(base, slog.String("c", "3"))

	assert.Len(t, left.Value(ctxKey{}), 2)
	assert.Len(t, right.Value(ctxKey{}), 2)
	assert.Equal(t, "b", left.Value(ctxKey{}).([]slog.Attr)[1].Key)
	assert.Equal(t, "c", right.Value(ctxKey{}).([]slog.Attr)[1].Key)
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"Warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	got, err := ParseLevel("loud")
	assert.Error(t, err)
	assert.Equal(t, slog.LevelInfo, got)
}

func TestFileWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unmult.log")
	w := FileWriter(path, 1, 2)

	l := Logger(w, false, slog.LevelInfo)
	l.Info("to file")
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}
