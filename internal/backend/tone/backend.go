// Package tone implements a placeholder speech backend that renders a sine
// tone sized to the input text. It is used when no real TTS provider output
// is wanted.
package tone

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"time"
	"unicode"

	"github.com/ekisa-team/voxlingo/internal/backend"
	"github.com/ekisa-team/voxlingo/internal/wav"
)

const (
	// SampleRate of generated audio in Hz.
	SampleRate = 44100

	// Frequency of the tone in Hz (A4).
	Frequency = 440.0

	// Amplitude as a fraction of full scale.
	Amplitude = 0.3

	// MinDuration and MaxDuration bound the tone length in seconds.
	MinDuration = 2.0
	MaxDuration = 10.0

	// SecondsPerByte scales text length to tone length.
	SecondsPerByte = 0.1

	// WordsPerMinute is the assumed speaking rate for duration estimates.
	WordsPerMinute = 175.0
)

// Backend implements backend.Backend with a generated sine tone.
type Backend struct{}

var _ backend.Backend = (*Backend)(nil)

// NewBackend creates a new tone backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Provider returns the backend identifier.
func (b *Backend) Provider() backend.BackendProvider {
	return backend.BackendProviderTone
}

// Synthesize renders a WAV tone whose length depends on the input text.
// Voice parameters are not applied to the audio.
func (b *Backend) Synthesize(ctx context.Context, req *backend.Request) (*backend.Response, error) {
	text, err := io.ReadAll(req.Input)
	if err != nil {
		return nil, fmt.Errorf("tone: failed to read input: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	duration := Duration(string(text))
	samples := wav.Sine(SampleRate, SampleCount(string(text)), Frequency, Amplitude)
	audio := wav.EncodeInt16(SampleRate, 1, samples)

	return &backend.Response{
		Output: bytes.NewReader(audio),
		Metadata: &backend.ResponseMetadata{
			Provider:    b.Provider(),
			MimeType:    wav.MimeType,
			Extension:   "wav",
			Timestamp:   time.Now(),
			OutputBytes: int64(len(audio)),
			BackendSpecific: map[string]any{
				"tone_seconds": duration,
				"sample_rate":  SampleRate,
				"frequency":    Frequency,
			},
		},
	}, nil
}

// Close cleans up resources. The tone backend holds none.
func (b *Backend) Close() error {
	return nil
}

// Duration returns the tone length in seconds for text:
// clamp(len(text) * 0.1, 2, 10).
func Duration(text string) float64 {
	return math.Max(MinDuration, math.Min(MaxDuration, float64(len(text))*SecondsPerByte))
}

// SampleCount returns the number of mono samples rendered for text.
func SampleCount(text string) int {
	return int(math.Round(SampleRate * Duration(text)))
}

// EstimateSpokenDuration estimates how long text takes to speak at speed,
// in seconds rounded to one decimal.
func EstimateSpokenDuration(text string, speed float64) float64 {
	if speed <= 0 {
		speed = 1
	}
	minutes := float64(WordCount(text)) / WordsPerMinute / speed
	return math.Round(minutes*60*10) / 10
}

// WordCount counts runs of letters, apostrophes and hyphens.
func WordCount(text string) int {
	n := 0
	inWord := false
	for _, r := range text {
		if unicode.IsLetter(r) || r == '\'' || r == '-' {
			if !inWord {
				n++
				inWord = true
			}
			continue
		}
		inWord = false
	}
	return n
}
