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

	"github.com/ekisa-team/voxlingo/internal/env"
)

func TestNew_ProductionJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(env.Production, WithWriter(&buf))

	log.Debug("Hidden")
	log.Info("Translation stored", "translation_id", 7)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "Translation stored", rec["msg"])
	assert.Equal(t, float64(7), rec["translation_id"])
}

func TestNew_DevelopmentText(t *testing.T) {
	var buf bytes.Buffer
	log := New(env.Development, WithWriter(&buf))

	log.Debug("Voice resolved", "voice_id", "abc")

	assert.Contains(t, buf.String(), "Voice resolved")
	assert.Contains(t, buf.String(), "abc")
}

func TestNew_FileSink(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "voxlingo.log")

	log := New(env.Production,
		WithWriter(&buf),
		WithLogToFile(true),
		WithLogFile(path),
	).With("component", "test")

	log.Warn("History unavailable")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"History unavailable"`)
	assert.Contains(t, string(data), `"component":"test"`)
	assert.Contains(t, buf.String(), "History unavailable")
}
