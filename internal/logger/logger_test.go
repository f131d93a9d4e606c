package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"DEBUG", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"nonsense", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), tt.in)
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatConsole, ParseFormat("console"))
	assert.Equal(t, FormatConsole, ParseFormat(""))
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New("info", FormatJSON, &buf)
	l.Named(ComponentSession).Info("hello", zap.String("k", "v"))
	l.Debug("hidden")
	require.NoError(t, l.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "session", entry["component"])
	assert.Equal(t, "v", entry["k"])
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	l := New("debug", FormatConsole, &buf)
	l.Debug("visible")
	require.NoError(t, l.Sync())
	assert.Contains(t, buf.String(), " | DEBUG | ")
	assert.Contains(t, buf.String(), "visible")
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvLevel, "error")
	t.Setenv(EnvFormat, "json")

	var buf bytes.Buffer
	l := FromEnv(&buf)
	l.Warn("dropped")
	l.Error("kept")
	require.NoError(t, l.Sync())

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, `"msg":"kept"`)
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quizzy.log")
	l, closeFn, err := OpenFile(path, "info", FormatJSON)
	require.NoError(t, err)
	l.Info("to file")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}
