package config

import (
	"time"

	"github.com/ekisa-team/voxlingo/internal/voice"
)

// SpeechFallback selects the behaviour when neural speech is not used.
type SpeechFallback string

const (
	// SpeechFallbackWebSpeech delegates playback to the browser.
	SpeechFallbackWebSpeech SpeechFallback = "webspeech"

	// SpeechFallbackTone renders a placeholder WAV tone.
	SpeechFallbackTone SpeechFallback = "tone"
)

// Config holds the main configuration for the application.
type Config struct {
	Version     string            `json:"version"               yaml:"version"`
	Server      ServerConfig      `json:"server,omitempty"      yaml:"server,omitempty"`
	Storage     StorageConfig     `json:"storage,omitempty"     yaml:"storage,omitempty"`
	Translation TranslationConfig `json:"translation,omitempty" yaml:"translation,omitempty"`
	ElevenLabs  ElevenLabsConfig  `json:"elevenlabs,omitempty"  yaml:"elevenlabs,omitempty"`
	Speech      SpeechConfig      `json:"speech,omitempty"      yaml:"speech,omitempty"`
	Voices      voice.Table       `json:"voices,omitempty"      yaml:"voices,omitempty"`
}

// ServerConfig holds listener settings.
type ServerConfig struct {
	HTTPPort                 int `json:"http_port,omitempty"                   yaml:"http_port,omitempty"`
	GRPCPort                 int `json:"grpc_port,omitempty"                   yaml:"grpc_port,omitempty"`
	ReadHeaderTimeoutSeconds int `json:"read_header_timeout_seconds,omitempty" yaml:"read_header_timeout_seconds,omitempty"`
}

// ReadHeaderTimeout returns the HTTP read header timeout.
func (s ServerConfig) ReadHeaderTimeout() time.Duration {
	return time.Duration(s.ReadHeaderTimeoutSeconds) * time.Second
}

// StorageConfig holds the history database and audio file locations.
// Relative paths are resolved against DataDir.
type StorageConfig struct {
	DataDir      string `json:"data_dir,omitempty"      yaml:"data_dir,omitempty"`
	DatabasePath string `json:"database_path,omitempty" yaml:"database_path,omitempty"`
	PublicDir    string `json:"public_dir,omitempty"    yaml:"public_dir,omitempty"`
	PublicURL    string `json:"public_url,omitempty"    yaml:"public_url,omitempty"`
}

// TranslationConfig configures the translation provider.
type TranslationConfig struct {
	BaseURL        string `json:"base_url,omitempty"        yaml:"base_url,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty"`
}

// Timeout returns the per-call timeout.
func (t TranslationConfig) Timeout() time.Duration {
	return time.Duration(t.TimeoutSeconds) * time.Second
}

// ElevenLabsConfig configures the neural speech provider. An empty APIKey
// disables it.
type ElevenLabsConfig struct {
	BaseURL        string `json:"base_url,omitempty"        yaml:"base_url,omitempty"`
	APIKey         string `json:"api_key,omitempty"         yaml:"api_key,omitempty"`
	ModelID        string `json:"model_id,omitempty"        yaml:"model_id,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty"`
}

// Timeout returns the per-call timeout.
func (e ElevenLabsConfig) Timeout() time.Duration {
	return time.Duration(e.TimeoutSeconds) * time.Second
}

// SpeechConfig holds speech generation settings.
type SpeechConfig struct {
	Fallback SpeechFallback `json:"fallback,omitempty" yaml:"fallback,omitempty"`
}
