package backend

import (
	"context"
	"io"
	"time"
)

// BackendProvider is a string identifier for a speech backend.
type BackendProvider string

const (
	// BackendProviderElevenLabs is the ElevenLabs neural TTS API.
	BackendProviderElevenLabs BackendProvider = "elevenlabs"

	// BackendProviderTone is the local placeholder tone generator.
	BackendProviderTone BackendProvider = "tone"
)

// Parameter keys understood by speech backends.
const (
	ParamVoiceID         = "voice_id"
	ParamStability       = "stability"
	ParamSimilarityBoost = "similarity_boost"
	ParamStyle           = "style"
	ParamSpeakerBoost    = "use_speaker_boost"
	ParamLanguage        = "language"
	ParamGender          = "gender"
	ParamSpeed           = "speed"
	ParamPitch           = "pitch"
)

// Backend defines the core interface for all speech backends.
type Backend interface {
	// Provider returns the backend identifier.
	Provider() BackendProvider

	// Synthesize renders the request text and returns the complete audio.
	Synthesize(ctx context.Context, req *Request) (*Response, error)

	// Close cleans up resources.
	Close() error
}

// Request encapsulates all parameters for a synthesis call.
type Request struct {
	// Input is the text to speak.
	Input io.Reader

	// Parameters contains backend-specific synthesis parameters.
	Parameters map[string]any
}

// Response contains the result of a synthesis call.
type Response struct {
	// Output is the encoded audio.
	Output io.Reader

	// Metadata contains backend-specific information.
	Metadata *ResponseMetadata
}

// ResponseMetadata contains metadata about the response.
type ResponseMetadata struct {
	Timestamp       time.Time       `json:"timestamp"`
	BackendSpecific map[string]any  `json:"backend_specific"`
	Provider        BackendProvider `json:"provider"`
	VoiceID         string          `json:"voice_id,omitempty"`
	MimeType        string          `json:"mime_type"`
	Extension       string          `json:"extension"`
	OutputBytes     int64           `json:"output_bytes"`
}
