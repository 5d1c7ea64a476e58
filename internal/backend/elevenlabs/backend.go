// Package elevenlabs implements backend.Backend against the ElevenLabs
// text-to-speech HTTP API.
package elevenlabs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ekisa-team/voxlingo/internal/backend"
	"github.com/ekisa-team/voxlingo/internal/voice"
	"github.com/ekisa-team/voxlingo/mapsafe"
)

const (
	// DefaultBaseURL is the public ElevenLabs API root.
	DefaultBaseURL = "https://api.elevenlabs.io/v1"

	// DefaultModelID is the synthesis model requested when none is configured.
	DefaultModelID = "eleven_monolingual_v1"

	// DefaultTimeout bounds a single synthesis call.
	DefaultTimeout = 30 * time.Second

	// MimeType of audio returned by the API.
	MimeType = "audio/mpeg"

	maxErrorBody = 512
)

// Default voice settings.
const (
	DefaultStability       = 0.5
	DefaultSimilarityBoost = 0.5
	DefaultStyle           = 0.0
	DefaultSpeakerBoost    = true
)

// Options configures the backend. APIKey is read once at startup; an empty
// key leaves the backend unconfigured.
type Options struct {
	BaseURL string
	APIKey  string
	ModelID string
	Timeout time.Duration
}

// Error describes a failed synthesis call.
type Error struct {
	Err                error
	VoiceID            string
	Body               string
	StatusCode         int
	CredentialsPresent bool
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString("elevenlabs: synthesis failed")
	if e.StatusCode != 0 {
		fmt.Fprintf(&sb, ": status %d", e.StatusCode)
	}
	if e.Err != nil {
		fmt.Fprintf(&sb, ": %v", e.Err)
	}
	fmt.Fprintf(&sb, " (voice_id=%s, credentials=%t)", e.VoiceID, e.CredentialsPresent)
	if e.Body != "" {
		fmt.Fprintf(&sb, ": %s", e.Body)
	}
	return sb.String()
}

// Unwrap returns the underlying transport error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// ProviderVoice is a voice returned by the /voices endpoint.
type ProviderVoice struct {
	Labels     map[string]string `json:"labels,omitempty"`
	VoiceID    string            `json:"voice_id"`
	Name       string            `json:"name"`
	Category   string            `json:"category,omitempty"`
	PreviewURL string            `json:"preview_url,omitempty"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	UseSpeakerBoost bool    `json:"use_speaker_boost"`
}

type synthesisRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

// Backend implements backend.Backend for ElevenLabs.
type Backend struct {
	http    *resty.Client
	apiKey  string
	modelID string
}

var _ backend.Backend = (*Backend)(nil)

// New creates a new ElevenLabs backend.
func New(opts Options) *Backend {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.ModelID == "" {
		opts.ModelID = DefaultModelID
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	c := resty.New().
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetTimeout(opts.Timeout)

	return &Backend{
		http:    c,
		apiKey:  strings.TrimSpace(opts.APIKey),
		modelID: opts.ModelID,
	}
}

// Provider returns the backend identifier.
func (b *Backend) Provider() backend.BackendProvider {
	return backend.BackendProviderElevenLabs
}

// Configured reports whether an API key was supplied.
func (b *Backend) Configured() bool {
	return b.apiKey != ""
}

// Synthesize converts the request text to MP3 audio.
func (b *Backend) Synthesize(ctx context.Context, req *backend.Request) (*backend.Response, error) {
	p := req.Parameters
	voiceID := mapsafe.Get(p, backend.ParamVoiceID, "")
	if voiceID == "" {
		voiceID = voice.DefaultVoiceID
	}

	if !b.Configured() {
		return nil, &Error{Err: backend.ErrNotConfigured, VoiceID: voiceID}
	}

	text, err := io.ReadAll(req.Input)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs: failed to read input: %w", err)
	}

	body := synthesisRequest{
		Text:    string(text),
		ModelID: b.modelID,
		VoiceSettings: voiceSettings{
			Stability:       mapsafe.Get(p, backend.ParamStability, DefaultStability),
			SimilarityBoost: mapsafe.Get(p, backend.ParamSimilarityBoost, DefaultSimilarityBoost),
			Style:           mapsafe.Get(p, backend.ParamStyle, DefaultStyle),
			UseSpeakerBoost: mapsafe.Get(p, backend.ParamSpeakerBoost, DefaultSpeakerBoost),
		},
	}

	resp, err := b.http.R().
		SetContext(ctx).
		SetHeader("xi-api-key", b.apiKey).
		SetHeader("Accept", MimeType).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/text-to-speech/" + url.PathEscape(voiceID))
	if err != nil {
		return nil, &Error{Err: err, VoiceID: voiceID, CredentialsPresent: true}
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &Error{
			StatusCode:         resp.StatusCode(),
			VoiceID:            voiceID,
			CredentialsPresent: true,
			Body:               truncate(strings.TrimSpace(resp.String()), maxErrorBody),
		}
	}

	audio := resp.Body()
	return &backend.Response{
		Output: bytes.NewReader(audio),
		Metadata: &backend.ResponseMetadata{
			Provider:    b.Provider(),
			VoiceID:     voiceID,
			MimeType:    MimeType,
			Extension:   "mp3",
			Timestamp:   time.Now(),
			OutputBytes: int64(len(audio)),
			BackendSpecific: map[string]any{
				"model_id":    b.modelID,
				"duration_ms": resp.Time().Milliseconds(),
			},
		},
	}, nil
}

// ListVoices returns the voices available to the configured account.
func (b *Backend) ListVoices(ctx context.Context) ([]ProviderVoice, error) {
	if !b.Configured() {
		return nil, backend.ErrNotConfigured
	}

	var out struct {
		Voices []ProviderVoice `json:"voices"`
	}
	resp, err := b.http.R().
		SetContext(ctx).
		SetHeader("xi-api-key", b.apiKey).
		SetHeader("Accept", "application/json").
		SetResult(&out).
		Get("/voices")
	if err != nil {
		return nil, fmt.Errorf("elevenlabs: list voices: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("elevenlabs: list voices: %s: %s", resp.Status(), truncate(resp.String(), maxErrorBody))
	}
	return out.Voices, nil
}

// Close cleans up resources.
func (b *Backend) Close() error {
	b.http.GetClient().CloseIdleConnections()
	return nil
}

// IsNotConfigured reports whether err was caused by a missing API key.
func IsNotConfigured(err error) bool {
	return errors.Is(err, backend.ErrNotConfigured)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
