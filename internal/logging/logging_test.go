package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"INFO", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestNew_BufferDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := New(Config{Level: "debug", Output: &buf})
	require.NoError(t, err)
	defer closeFn()

	logger.Debug("loaded graph", "nodes", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "loaded graph", entry["msg"])
	assert.EqualValues(t, 3, entry["nodes"])
}

func TestNew_TextFormatAndLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New(Config{Level: "warn", Format: FormatText, Output: &buf})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "node", 100)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.Contains(out, "msg=shown"), out)
	assert.Contains(t, out, "node=100")
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "graphptol.log")
	logger, closeFn, err := New(Config{File: path})
	require.NoError(t, err)

	logger.Info("session started")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"session started"`)
}

func TestNew_BadLevel(t *testing.T) {
	_, closeFn, err := New(Config{Level: "chatty"})
	assert.Error(t, err)
	assert.NoError(t, closeFn())
}

func TestNew_Discard(t *testing.T) {
	logger, _, err := New(Config{Discard: true})
	require.NoError(t, err)
	logger.Error("nobody hears this")
}
