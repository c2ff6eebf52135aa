package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, expected := range tests {
		assert.Equal(t, expected, ParseLevel(in), in)
	}
}

func TestNewSlogJSON(t *testing.T) {
	var buf bytes.Buffer
	log := Component(NewSlog(SlogConfig{Level: "info", Format: "json", Output: &buf}), "search")

	log.Debug("hidden")
	log.Info("photos found", "count", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "photos found", entry["msg"])
	assert.Equal(t, "search", entry["component"])
	assert.EqualValues(t, 3, entry["count"])
	assert.NotEmpty(t, entry["time"])
}

func TestNewSlogText(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlog(SlogConfig{Level: "warn", Format: "text", Output: &buf})

	log.Info("hidden")
	log.Warn("geocoding failed")

	assert.Contains(t, buf.String(), "geocoding failed")
	assert.NotContains(t, buf.String(), "hidden")
}
