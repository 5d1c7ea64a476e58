package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ekisa-team/voxlingo/internal/backend/elevenlabs"
	"github.com/ekisa-team/voxlingo/internal/service"
	"github.com/ekisa-team/voxlingo/internal/voice"
)

type (
	GenerateSpeechRequestDTO struct {
		Text          string  `json:"text" minLength:"1" maxLength:"5000"`
		Language      string  `json:"language" minLength:"2" maxLength:"2"`
		Gender        string  `json:"gender" enum:"male,female"`
		Speed         float64 `json:"speed,omitempty" minimum:"0.25" maximum:"2" default:"1"`
		Pitch         float64 `json:"pitch,omitempty" minimum:"-20" maximum:"20" default:"0"`
		TranslationID *int64  `json:"translation_id,omitempty" nullable:"true" minimum:"1"`
		UseElevenLabs bool    `json:"use_elevenlabs,omitempty"`
		VoiceID       string  `json:"voice_id,omitempty" maxLength:"64"`
	}

	GenerateSpeechResponseDTO struct {
		Success          bool     `json:"success"`
		Provider         string   `json:"provider"`
		Message          string   `json:"message,omitempty"`
		UseWebSpeech     bool     `json:"use_web_speech,omitempty"`
		Text             string   `json:"text"`
		Language         string   `json:"language,omitempty"`
		Gender           string   `json:"gender,omitempty"`
		Speed            *float64 `json:"speed,omitempty"`
		Pitch            *float64 `json:"pitch,omitempty"`
		FileName         string   `json:"filename,omitempty"`
		FilePath         string   `json:"filepath,omitempty"`
		URL              string   `json:"url,omitempty"`
		FileSize         *int64   `json:"file_size,omitempty"`
		MimeType         string   `json:"mime_type,omitempty"`
		VoiceID          string   `json:"voice_id,omitempty"`
		Duration         *float64 `json:"duration,omitempty"`
		AudioFileID      *int64   `json:"audio_file_id,omitempty"`
		StoragePersisted *bool    `json:"storage_persisted,omitempty"`
	}

	VoiceOptionsResponseDTO struct {
		Success bool          `json:"success"`
		Voices  []voice.Voice `json:"voices"`
	}

	ProviderVoicesResponseDTO struct {
		Success bool                       `json:"success"`
		Voices  []elevenlabs.ProviderVoice `json:"voices"`
		Message string                     `json:"message,omitempty"`
	}
)

type (
	GenerateSpeechInput struct {
		Body GenerateSpeechRequestDTO
	}

	GenerateSpeechOutput struct {
		Body GenerateSpeechResponseDTO
	}

	VoiceOptionsInput struct {
		Language string `query:"language" default:"en" minLength:"2" maxLength:"2"`
		Gender   string `query:"gender" default:"female" enum:"male,female"`
	}

	VoiceOptionsOutput struct {
		Body VoiceOptionsResponseDTO
	}

	ProviderVoicesOutput struct {
		Body ProviderVoicesResponseDTO
	}
)

// VoiceLister lists the voices available at the speech provider.
type VoiceLister interface {
	ListVoices(ctx context.Context) ([]elevenlabs.ProviderVoice, error)
}

// SpeechHandler handles HTTP requests for speech generation.
type SpeechHandler struct {
	service *service.Speech
	voices  *voice.Catalog
	lister  VoiceLister
}

// NewSpeechHandler creates a new SpeechHandler instance.
func NewSpeechHandler(api huma.API, service *service.Speech, voices *voice.Catalog, lister VoiceLister) *SpeechHandler {
	h := &SpeechHandler{
		service: service,
		voices:  voices,
		lister:  lister,
	}

	huma.Register(api, huma.Operation{
		OperationID:   "generate-speech",
		Method:        http.MethodPost,
		Path:          "/api/generate-speech",
		Summary:       "Generate speech from text",
		Tags:          []string{"speech"},
		DefaultStatus: http.StatusOK,
	}, h.handleGenerateSpeech)

	huma.Register(api, huma.Operation{
		OperationID: "voice-options",
		Method:      http.MethodGet,
		Path:        "/api/voice-options",
		Summary:     "List neural voices for a language and gender",
		Tags:        []string{"speech"},
	}, h.handleVoiceOptions)

	huma.Register(api, huma.Operation{
		OperationID: "provider-voices",
		Method:      http.MethodGet,
		Path:        "/api/provider-voices",
		Summary:     "List voices reported by the speech provider",
		Tags:        []string{"speech"},
	}, h.handleProviderVoices)

	return h
}

// handleGenerateSpeech handles the generate-speech operation.
func (h *SpeechHandler) handleGenerateSpeech(ctx context.Context, input *GenerateSpeechInput) (*GenerateSpeechOutput, error) {
	in := input.Body

	slog.Info("Speech generation request",
		"use_elevenlabs", in.UseElevenLabs,
		"elevenlabs_configured", h.service.NeuralEnabled(),
		"language", in.Language,
		"gender", in.Gender,
	)

	res, err := h.service.Generate(ctx, service.SpeechRequest{
		TranslationID: in.TranslationID,
		Text:          in.Text,
		Language:      in.Language,
		Gender:        voice.Gender(in.Gender),
		VoiceID:       in.VoiceID,
		Speed:         in.Speed,
		Pitch:         in.Pitch,
		UseElevenLabs: in.UseElevenLabs,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTranslationNotFound):
			return nil, fieldError("translation_id", msgTranslationIDInvalid, *in.TranslationID)
		case in.UseElevenLabs && h.service.NeuralEnabled():
			return nil, huma.Error500InternalServerError(msgNeuralSpeechFailed, err)
		default:
			return nil, huma.Error500InternalServerError(msgSpeechFailed, err)
		}
	}

	body := GenerateSpeechResponseDTO{
		Success:  true,
		Provider: res.Provider,
		Text:     in.Text,
	}

	switch res.Provider {
	case service.ProviderWebSpeech:
		body.Message = msgWebSpeech
		body.UseWebSpeech = true
		body.Language = in.Language
		body.Gender = in.Gender
		body.Speed = ptr(in.Speed)
		body.Pitch = ptr(in.Pitch)
	default:
		a := res.Audio
		body.FileName = a.FileName
		body.FilePath = a.Path
		body.URL = a.URL
		body.FileSize = ptr(a.Size)
		body.MimeType = a.MimeType
		body.VoiceID = a.VoiceID
		if res.Provider == service.ProviderTone {
			body.Duration = ptr(a.Duration)
		}
	}

	body.AudioFileID = res.AudioFileID
	if res.Persistence.Degraded() {
		body.StoragePersisted = ptr(false)
	}

	return &GenerateSpeechOutput{Body: body}, nil
}

// handleVoiceOptions handles the voice-options operation.
func (h *SpeechHandler) handleVoiceOptions(_ context.Context, input *VoiceOptionsInput) (*VoiceOptionsOutput, error) {
	voices := h.voices.Options(input.Language, voice.Gender(input.Gender))
	if voices == nil {
		voices = []voice.Voice{}
	}

	return &VoiceOptionsOutput{
		Body: VoiceOptionsResponseDTO{Success: true, Voices: voices},
	}, nil
}

// handleProviderVoices handles the provider-voices operation. Failures
// degrade to an empty list.
func (h *SpeechHandler) handleProviderVoices(ctx context.Context, _ *struct{}) (*ProviderVoicesOutput, error) {
	body := ProviderVoicesResponseDTO{Success: true, Voices: []elevenlabs.ProviderVoice{}}

	if h.lister == nil {
		body.Message = msgProviderVoicesMissing
		return &ProviderVoicesOutput{Body: body}, nil
	}

	voices, err := h.lister.ListVoices(ctx)
	if err != nil {
		if !elevenlabs.IsNotConfigured(err) {
			slog.Error("Failed to list provider voices", "error", err)
		}
		body.Message = msgProviderVoicesMissing
		return &ProviderVoicesOutput{Body: body}, nil
	}

	body.Voices = voices
	return &ProviderVoicesOutput{Body: body}, nil
}
