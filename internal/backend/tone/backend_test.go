package tone

import (
	"context"
	"encoding/binary"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekisa-team/voxlingo/internal/backend"
	"github.com/ekisa-team/voxlingo/internal/wav"
)

func TestDuration_Clamped(t *testing.T) {
	tests := []struct {
		length int
		want   float64
	}{
		{0, 2},
		{5, 2},
		{20, 2},
		{25, 2.5},
		{60, 6},
		{100, 10},
		{5000, 10},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, Duration(strings.Repeat("a", tt.length)), 1e-9, "length %d", tt.length)
	}
}

func TestSynthesize_DataLengthMatchesDuration(t *testing.T) {
	b := NewBackend()

	for _, length := range []int{1, 25, 40, 77, 500} {
		text := strings.Repeat("x", length)

		resp, err := b.Synthesize(context.Background(), &backend.Request{Input: strings.NewReader(text)})
		require.NoError(t, err)

		audio, err := io.ReadAll(resp.Output)
		require.NoError(t, err)

		dataLen := int(binary.LittleEndian.Uint32(audio[40:44]))
		expected := int(Duration(text)*SampleRate+0.5) * 2

		assert.Equal(t, expected, dataLen, "length %d", length)
		assert.Equal(t, len(audio)-wav.HeaderSize, dataLen)
		assert.Equal(t, uint32(dataLen+36), binary.LittleEndian.Uint32(audio[4:8]))
		assert.Equal(t, int64(len(audio)), resp.Metadata.OutputBytes)
		assert.Equal(t, "audio/wav", resp.Metadata.MimeType)
		assert.Equal(t, backend.BackendProviderTone, resp.Metadata.Provider)
	}
}

func TestSynthesize_Deterministic(t *testing.T) {
	b := NewBackend()

	read := func() []byte {
		resp, err := b.Synthesize(context.Background(), &backend.Request{Input: strings.NewReader("Hola mundo")})
		require.NoError(t, err)
		data, err := io.ReadAll(resp.Output)
		require.NoError(t, err)
		return data
	}

	assert.Equal(t, read(), read())
}

func TestSynthesize_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewBackend().Synthesize(ctx, &backend.Request{Input: strings.NewReader("hi")})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEstimateSpokenDuration(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("word ", 175))

	assert.Equal(t, 60.0, EstimateSpokenDuration(text, 1))
	assert.Equal(t, 30.0, EstimateSpokenDuration(text, 2))
	assert.Equal(t, 0.7, EstimateSpokenDuration("Hello there", 1))
	assert.Equal(t, 0.0, EstimateSpokenDuration("123 456", 1))
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 2, WordCount("Hello, world!"))
	assert.Equal(t, 3, WordCount("it's a well-known"))
}
