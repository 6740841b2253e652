package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerStampsComponent(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelDebug, Component: "api", Writer: &buf})
	l.Info("request", "path", "/auth/me")
	require.Contains(t, buf.String(), "component=api")
	require.Contains(t, buf.String(), "path=/auth/me")

	buf.Reset()
	l.WithComponent("tui").Warn("boom")
	require.Contains(t, buf.String(), "component=tui")
}

func TestLevelFiltering(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelWarn, Writer: &buf})
	l.Info("hidden")
	require.Empty(t, buf.String())
	l.Warn("shown")
	require.Contains(t, buf.String(), "shown")
}

func TestOpenFileAppends(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "budget-tui.log")
	l, closeFn, err := OpenFile(path, slog.LevelInfo)
	require.NoError(t, err)
	l.Info("first")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "first")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	require.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	require.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}
