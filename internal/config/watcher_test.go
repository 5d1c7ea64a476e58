package config

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_Reload(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: v1\nspeech:\n  fallback: webspeech\n"), 0o644))

	var got atomic.Pointer[Config]
	w, err := NewWatcher(path, schemaPath, func(cfg *Config, err error) {
		if err == nil {
			got.Store(cfg)
		}
	})
	require.NoError(t, err)
	defer w.Close()

	assert.Equal(t, SpeechFallbackWebSpeech, w.Snapshot().Speech.Fallback)

	require.NoError(t, os.WriteFile(path, []byte("version: v1\nspeech:\n  fallback: tone\n"), 0o644))

	require.Eventually(t, func() bool {
		cfg := got.Load()
		return cfg != nil && cfg.Speech.Fallback == SpeechFallbackTone
	}, 5*time.Second, 50*time.Millisecond)

	assert.Equal(t, SpeechFallbackTone, w.Snapshot().Speech.Fallback)
	assert.GreaterOrEqual(t, w.ReloadCount(), uint32(1))
}

func TestWatcher_InitialLoadFails(t *testing.T) {
	_, err := NewWatcher("testdata/invalid.yaml", schemaPath, func(*Config, error) {})
	assert.Error(t, err)
}
