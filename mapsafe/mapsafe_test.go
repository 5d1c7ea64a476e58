package mapsafe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	m := map[string]any{
		"voice_id":          "abc",
		"stability":         0.75,
		"similarity_boost":  1,
		"seed":              42.9,
		"use_speaker_boost": false,
		"labels":            []string{"a"},
		"wrong":             "0.5",
	}

	assert.Equal(t, "abc", Get(m, "voice_id", ""))
	assert.Equal(t, 0.75, Get(m, "stability", 0.5))
	assert.Equal(t, 1.0, Get(m, "similarity_boost", 0.5))
	assert.Equal(t, 42, Get(m, "seed", 0))
	assert.False(t, Get(m, "use_speaker_boost", true))
	assert.Equal(t, []string{"a"}, Get(m, "labels", []string(nil)))

	// Missing keys and mismatched types yield the default.
	assert.Equal(t, 0.5, Get(m, "wrong", 0.5))
	assert.Equal(t, "fallback", Get(m, "missing", "fallback"))
	assert.True(t, Get[bool](nil, "anything", true))
}
