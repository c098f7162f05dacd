package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"unigo/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("whatever"))
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(config.Log{Level: "warn", Format: "text"}, &buf)

	log.Info("hidden")
	log.Warn("shown", "steps", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "steps=3")
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(config.Log{Level: "info", Format: "json"}, &buf)
	log.Info("scene loaded", "scene", "Main")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "scene loaded", rec["msg"])
	assert.Equal(t, "Main", rec["scene"])
}
