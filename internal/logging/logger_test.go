package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   slog.Level
		wantOK bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"off", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
		if ok {
			assert.Equal(t, tt.want, got, tt.in)
		}
	}

	_, _, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewWithFile_JSONSink(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithFile(slog.LevelError, &buf)

	logger.Info("Run halted", "error", "none", "steps", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "Run halted", record["msg"])
	assert.Equal(t, "none", record["err"], "error key is standardized")
	assert.EqualValues(t, 3, record["steps"])
}
