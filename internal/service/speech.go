package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ekisa-team/voxlingo/internal/backend/elevenlabs"
	"github.com/ekisa-team/voxlingo/internal/store"
	"github.com/ekisa-team/voxlingo/internal/voice"
)

// FallbackMode selects what happens when neural synthesis is not used.
type FallbackMode string

const (
	// FallbackWebSpeech leaves synthesis to the browser.
	FallbackWebSpeech FallbackMode = "webspeech"

	// FallbackTone renders a placeholder WAV tone.
	FallbackTone FallbackMode = "tone"
)

// Provider names reported in SpeechResult.
const (
	ProviderElevenLabs = "elevenlabs"
	ProviderWebSpeech  = "webspeech"
	ProviderTone       = "tone"
)

// Voice type recorded for neural audio files.
const VoiceTypeElevenLabs = "elevenlabs"

const (
	minSimilarityBoost = 0.1
	maxSimilarityBoost = 1.0
)

// SpeechRequest is a validated speech generation request.
type SpeechRequest struct {
	TranslationID *int64
	Text          string
	Language      string
	Gender        voice.Gender
	VoiceID       string
	Speed         float64
	Pitch         float64
	UseElevenLabs bool
}

// SpeechResult describes how speech was produced.
type SpeechResult struct {
	// Audio is nil for FallbackWebSpeech.
	Audio *StoredAudio

	// AudioFileID is set when the neural audio was recorded in history.
	AudioFileID *int64

	Provider    string
	Persistence Persistence
}

// SpeechOptions configures the Speech service.
type SpeechOptions struct {
	// NeuralEnabled is the provider capability computed at startup.
	NeuralEnabled bool
	Fallback      FallbackMode
}

// Speech is a service abstraction for text-to-speech.
type Speech struct {
	synth        *Synthesizer
	voices       *voice.Catalog
	translations store.TranslationRepository
	audio        store.AudioFileRepository
	opts         SpeechOptions
}

// NewSpeech creates a new Speech service.
func NewSpeech(synth *Synthesizer, voices *voice.Catalog, translations store.TranslationRepository, audio store.AudioFileRepository, opts SpeechOptions) *Speech {
	if opts.Fallback == "" {
		opts.Fallback = FallbackWebSpeech
	}

	return &Speech{
		synth:        synth,
		voices:       voices,
		translations: translations,
		audio:        audio,
		opts:         opts,
	}
}

// NeuralEnabled reports whether the neural provider is configured.
func (s *Speech) NeuralEnabled() bool {
	return s.opts.NeuralEnabled
}

// CheckTranslation reports ErrTranslationNotFound when id does not exist.
// A database outage skips the check.
func (s *Speech) CheckTranslation(ctx context.Context, id int64) error {
	ok, err := s.translations.Exists(ctx, id)
	if err != nil {
		slog.Warn("Skipping translation check, history unavailable", "error", err, "translation_id", id)
		return nil
	}
	if !ok {
		return ErrTranslationNotFound
	}
	return nil
}

// Generate produces speech for req. The neural provider is used when
// requested and configured; otherwise the fallback mode applies.
func (s *Speech) Generate(ctx context.Context, req SpeechRequest) (*SpeechResult, error) {
	if req.TranslationID != nil {
		if err := s.CheckTranslation(ctx, *req.TranslationID); err != nil {
			return nil, err
		}
	}

	if req.UseElevenLabs && s.opts.NeuralEnabled {
		return s.generateNeural(ctx, req)
	}

	switch s.opts.Fallback {
	case FallbackTone:
		audio, err := s.synth.Placeholder(ctx, req.Text, VoiceParams{
			Language: req.Language,
			Gender:   req.Gender,
			Speed:    req.Speed,
			Pitch:    req.Pitch,
		})
		if err != nil {
			slog.Error("Placeholder synthesis failed", "error", err)
			return nil, fmt.Errorf("%w: %w", ErrSpeechFailed, err)
		}
		return &SpeechResult{Provider: ProviderTone, Audio: audio}, nil
	default:
		return &SpeechResult{Provider: ProviderWebSpeech}, nil
	}
}

func (s *Speech) generateNeural(ctx context.Context, req SpeechRequest) (*SpeechResult, error) {
	voiceID := s.voices.Resolve(req.VoiceID, req.Language, req.Gender)

	settings := DefaultVoiceSettings()
	// Legacy mapping: the requested speed drives similarity_boost, not the
	// playback rate.
	settings.SimilarityBoost = clamp(req.Speed, minSimilarityBoost, maxSimilarityBoost)

	audio, err := s.synth.Neural(ctx, req.Text, voiceID, settings)
	if err != nil {
		attrs := []any{"error", err, "voice_id", voiceID, "text_length", len(req.Text)}
		var perr *elevenlabs.Error
		if errors.As(err, &perr) {
			attrs = append(attrs, "status", perr.StatusCode, "credentials_present", perr.CredentialsPresent)
		}
		slog.Error("Neural speech generation failed", attrs...)
		return nil, fmt.Errorf("%w: %w", ErrSpeechFailed, err)
	}

	out := &SpeechResult{Provider: ProviderElevenLabs, Audio: audio}
	if req.TranslationID == nil {
		return out, nil
	}

	size := audio.Size
	row := &store.AudioFile{
		TranslationID: *req.TranslationID,
		FilePath:      audio.Path,
		FileName:      audio.FileName,
		VoiceType:     VoiceTypeElevenLabs,
		VoiceGender:   string(req.Gender),
		VoiceSpeed:    req.Speed,
		VoicePitch:    req.Pitch,
		FileSize:      &size,
		MimeType:      audio.MimeType,
	}
	if err := s.audio.Create(ctx, row); err != nil {
		slog.Warn("Failed to record audio file", "error", err, "path", audio.Path)
		out.Persistence = attempted(err)
		return out, nil
	}

	out.AudioFileID = &row.ID
	out.Persistence = attempted(nil)
	return out, nil
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
