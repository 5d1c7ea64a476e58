package http

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ekisa-team/voxlingo/internal/language"
)

type (
	LanguagesResponseDTO struct {
		Success      bool              `json:"success"`
		Languages    map[string]string `json:"languages"`
		Popular      map[string]string `json:"popular"`
		TTSLanguages map[string]string `json:"tts_languages"`
	}

	LanguagesOutput struct {
		Body LanguagesResponseDTO
	}
)

// RegisterLanguages registers the languages operation.
func RegisterLanguages(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "languages",
		Method:      http.MethodGet,
		Path:        "/api/languages",
		Summary:     "List supported languages",
		Tags:        []string{"translation"},
	}, func(context.Context, *struct{}) (*LanguagesOutput, error) {
		return &LanguagesOutput{
			Body: LanguagesResponseDTO{
				Success:      true,
				Languages:    language.Supported(),
				Popular:      language.Popular(),
				TTSLanguages: language.TTS(),
			},
		}, nil
	})
}
