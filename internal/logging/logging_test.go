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

	"portfolioapi/internal/config"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, closer := New(config.LogConfig{Level: "info", Format: "json"}, &buf)
	defer closer.Close()

	WithComponent(l, "blog").Info("partition created", slog.String("lang", "es"))
	l.Debug("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "partition created", rec["msg"])
	assert.Equal(t, "blog", rec["component"])
	assert.Equal(t, "es", rec["lang"])
	assert.Equal(t, "portfolioapi", rec["app"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	l, _ := New(config.LogConfig{Level: "debug", Format: "text"}, &buf)

	l.Debug("visible", slog.Int("n", 3))
	assert.Contains(t, buf.String(), "msg=visible")
	assert.Contains(t, buf.String(), "n=3")
}

func TestNew_RotatedFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "api.log")
	l, closer := New(config.LogConfig{Level: "warn", File: path}, &buf)

	l.Info("dropped")
	l.Warn("kept", slog.String("component", "contact"))
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"kept"`)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, buf.String(), `"msg":"kept"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}
