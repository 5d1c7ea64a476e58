package http

import (
	"time"

	"github.com/ekisa-team/voxlingo/internal/store"
)

type (
	// TranslationDTO is a history entry.
	TranslationDTO struct {
		ID             int64          `json:"id"`
		OriginalText   string         `json:"original_text"`
		SourceLanguage string         `json:"source_language"`
		TargetLanguage string         `json:"target_language"`
		TranslatedText string         `json:"translated_text"`
		IPAddress      *string        `json:"ip_address"`
		CreatedAt      time.Time      `json:"created_at"`
		UpdatedAt      time.Time      `json:"updated_at"`
		AudioFiles     []AudioFileDTO `json:"audio_files"`
	}

	// AudioFileDTO is an audio file attached to a history entry.
	AudioFileDTO struct {
		ID            int64     `json:"id"`
		TranslationID int64     `json:"translation_id"`
		FilePath      string    `json:"file_path"`
		FileName      string    `json:"file_name"`
		VoiceType     string    `json:"voice_type"`
		VoiceGender   string    `json:"voice_gender"`
		VoiceSpeed    float64   `json:"voice_speed"`
		VoicePitch    float64   `json:"voice_pitch"`
		FileSize      *int64    `json:"file_size"`
		FileSizeHuman string    `json:"file_size_human"`
		MimeType      string    `json:"mime_type"`
		CreatedAt     time.Time `json:"created_at"`
		UpdatedAt     time.Time `json:"updated_at"`
	}
)

func toTranslationDTO(t *store.Translation) TranslationDTO {
	out := TranslationDTO{
		ID:             t.ID,
		OriginalText:   t.OriginalText,
		SourceLanguage: t.SourceLanguage,
		TargetLanguage: t.TargetLanguage,
		TranslatedText: t.TranslatedText,
		IPAddress:      t.IPAddress,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
		AudioFiles:     make([]AudioFileDTO, 0, len(t.AudioFiles)),
	}

	for i := range t.AudioFiles {
		a := &t.AudioFiles[i]
		out.AudioFiles = append(out.AudioFiles, AudioFileDTO{
			ID:            a.ID,
			TranslationID: a.TranslationID,
			FilePath:      a.FilePath,
			FileName:      a.FileName,
			VoiceType:     a.VoiceType,
			VoiceGender:   a.VoiceGender,
			VoiceSpeed:    a.VoiceSpeed,
			VoicePitch:    a.VoicePitch,
			FileSize:      a.FileSize,
			FileSizeHuman: a.FileSizeHuman(),
			MimeType:      a.MimeType,
			CreatedAt:     a.CreatedAt,
			UpdatedAt:     a.UpdatedAt,
		})
	}

	return out
}

func toTranslationDTOs(items []*store.Translation) []TranslationDTO {
	out := make([]TranslationDTO, 0, len(items))
	for _, t := range items {
		out = append(out, toTranslationDTO(t))
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
