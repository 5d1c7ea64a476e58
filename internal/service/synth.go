package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/ekisa-team/voxlingo/internal/backend"
	"github.com/ekisa-team/voxlingo/internal/backend/tone"
	"github.com/ekisa-team/voxlingo/internal/blob"
	"github.com/ekisa-team/voxlingo/internal/voice"
)

// StoredAudio is a synthesized file written to the blob store.
type StoredAudio struct {
	FileName string
	Path     string
	URL      string
	MimeType string
	VoiceID  string
	Size     int64

	// Duration is the estimated spoken duration in seconds. Only the
	// placeholder synthesizer reports it.
	Duration float64
}

// VoiceSettings tunes the neural provider.
type VoiceSettings struct {
	Stability       float64
	SimilarityBoost float64
	Style           float64
	SpeakerBoost    bool
}

// DefaultVoiceSettings returns the provider defaults.
func DefaultVoiceSettings() VoiceSettings {
	return VoiceSettings{Stability: 0.5, SimilarityBoost: 0.5, Style: 0, SpeakerBoost: true}
}

// VoiceParams describes the requested voice. The placeholder synthesizer
// records them in the file name only.
type VoiceParams struct {
	Language string
	Gender   voice.Gender
	Speed    float64
	Pitch    float64
}

// Synthesizer renders speech through a registered backend and stores the
// audio under the blob store's audio directory.
type Synthesizer struct {
	backends *backend.Registry
	blobs    blob.Store
	now      func() time.Time
}

// NewSynthesizer creates a new Synthesizer.
func NewSynthesizer(backends *backend.Registry, blobs blob.Store) *Synthesizer {
	return &Synthesizer{
		backends: backends,
		blobs:    blobs,
		now:      time.Now,
	}
}

// Neural synthesizes text with the ElevenLabs backend. The file name mixes
// in the current time so repeated requests never collide.
func (s *Synthesizer) Neural(ctx context.Context, text, voiceID string, settings VoiceSettings) (*StoredAudio, error) {
	params := map[string]any{
		backend.ParamVoiceID:         voiceID,
		backend.ParamStability:       settings.Stability,
		backend.ParamSimilarityBoost: settings.SimilarityBoost,
		backend.ParamStyle:           settings.Style,
		backend.ParamSpeakerBoost:    settings.SpeakerBoost,
	}

	audio, meta, err := s.synthesize(ctx, backend.BackendProviderElevenLabs, text, params)
	if err != nil {
		return nil, err
	}

	resolved := meta.VoiceID
	if resolved == "" {
		resolved = voiceID
	}

	name := "elevenlabs_" + digest(text, resolved, strconv.FormatInt(s.now().Unix(), 10)) + ".mp3"
	return s.store(ctx, name, audio, meta.MimeType, resolved)
}

// Placeholder renders a tone for text. Identical inputs produce the same
// file name.
func (s *Synthesizer) Placeholder(ctx context.Context, text string, p VoiceParams) (*StoredAudio, error) {
	params := map[string]any{
		backend.ParamLanguage: p.Language,
		backend.ParamGender:   string(p.Gender),
		backend.ParamSpeed:    p.Speed,
		backend.ParamPitch:    p.Pitch,
	}

	audio, meta, err := s.synthesize(ctx, backend.BackendProviderTone, text, params)
	if err != nil {
		return nil, err
	}

	stored, err := s.store(ctx, withWAVExtension(PlaceholderFileName(text, p)), audio, meta.MimeType, "")
	if err != nil {
		return nil, err
	}

	stored.Duration = tone.EstimateSpokenDuration(text, p.Speed)
	return stored, nil
}

// PlaceholderFileName derives the deterministic placeholder file name.
func PlaceholderFileName(text string, p VoiceParams) string {
	return "tts_" + digest(text, p.Language, string(p.Gender), formatFloat(p.Speed), formatFloat(p.Pitch)) + ".wav"
}

func (s *Synthesizer) synthesize(ctx context.Context, provider backend.BackendProvider, text string, params map[string]any) ([]byte, *backend.ResponseMetadata, error) {
	b, ok := s.backends.Get(provider)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", backend.ErrNotFound, provider)
	}

	resp, err := b.Synthesize(ctx, &backend.Request{
		Input:      strings.NewReader(text),
		Parameters: params,
	})
	if err != nil {
		return nil, nil, err
	}

	audio, err := io.ReadAll(resp.Output)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s output: %w", provider, err)
	}

	meta := resp.Metadata
	if meta == nil {
		meta = &backend.ResponseMetadata{Provider: provider}
	}
	return audio, meta, nil
}

// store writes audio unless the caller has gone away.
func (s *Synthesizer) store(ctx context.Context, name string, audio []byte, mimeType, voiceID string) (*StoredAudio, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := blob.AudioKey(name)
	size, err := s.blobs.Put(key, audio)
	if err != nil {
		return nil, err
	}

	return &StoredAudio{
		FileName: name,
		Path:     key,
		URL:      s.blobs.URL(key),
		MimeType: mimeType,
		VoiceID:  voiceID,
		Size:     size,
	}, nil
}

func digest(parts ...string) string {
	sum := md5.Sum([]byte(strings.Join(parts, "")))
	return hex.EncodeToString(sum[:])
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func withWAVExtension(name string) string {
	return strings.TrimSuffix(name, path.Ext(name)) + ".wav"
}
