package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/reshetovitsme/telewaves/internal/shared/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"chatty":  slog.LevelInfo,
	}

	for in, want := range tests {
		assert.Equal(t, want, logging.ParseLevel(in), in)
	}
}

func TestNewWithWritersFansOut(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	logger := logging.NewWithWriters("info", &out, &errOut)

	logger.Debug("hidden")
	logger.Info("Logged in", "account", "Test (@tester)")
	logger.Error("Failed to download file", "file_name", "song.mp3")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "Logged in")
	assert.Contains(t, out.String(), "Failed to download file")

	require.NotEmpty(t, errOut.Bytes())
	var entry map[string]any
	require.NoError(t, json.Unmarshal(errOut.Bytes(), &entry))
	assert.Equal(t, "Failed to download file", entry["msg"])
	assert.Equal(t, "song.mp3", entry["file_name"])
}
