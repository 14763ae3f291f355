package logging

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestWithEnvOverridesConfig(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogSink, "stderr")
	t.Setenv(EnvLogMaxMB, "42")

	cfg := Config{Level: "info", Sink: "file", Format: "json"}.WithEnv()
	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "stderr", cfg.Sink)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 42, cfg.MaxSizeMB)
}

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "findbar.log")
	logger, closeFn, err := New(Config{Sink: "file", File: path, Format: "json", Level: "debug"}, "findbar")
	require.NoError(t, err)

	logger.Debug("payload ignored", slog.String("reason", "empty"))
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(data, &rec))
	assert.Equal(t, "payload ignored", rec["msg"])
	assert.Equal(t, "findbar", rec["app"])
	assert.Equal(t, "empty", rec["reason"])
}

func TestNewRejectsUnknownSinkAndFormat(t *testing.T) {
	_, _, err := New(Config{Sink: "syslog"}, "")
	assert.Error(t, err)

	_, _, err = New(Config{Sink: "none", Format: "xml"}, "")
	assert.Error(t, err)
}

func TestNoneSinkDiscards(t *testing.T) {
	logger, closeFn, err := New(Config{Sink: "none"}, "")
	require.NoError(t, err)
	logger.Info("dropped")
	assert.NoError(t, closeFn())
}
