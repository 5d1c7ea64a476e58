package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ekisa-team/voxlingo/internal/service"
)

type (
	TranslateRequestDTO struct {
		Text           string `json:"text" minLength:"1" maxLength:"5000"`
		TargetLanguage string `json:"target_language" minLength:"2" maxLength:"2"`
		SourceLanguage string `json:"source_language,omitempty" maxLength:"4" default:"auto"`
	}

	TranslateResponseDTO struct {
		Success          bool   `json:"success"`
		OriginalText     string `json:"original_text"`
		TranslatedText   string `json:"translated_text"`
		SourceLanguage   string `json:"source_language"`
		TargetLanguage   string `json:"target_language"`
		DetectedSource   string `json:"detected_source,omitempty"`
		TranslationID    *int64 `json:"translation_id"`
		StoragePersisted *bool  `json:"storage_persisted,omitempty"`
		Message          string `json:"message,omitempty"`
	}

	TranslateBatchRequestDTO struct {
		Texts          []string `json:"texts" minItems:"1" maxItems:"50"`
		TargetLanguage string   `json:"target_language" minLength:"2" maxLength:"2"`
		SourceLanguage string   `json:"source_language,omitempty" maxLength:"4" default:"auto"`
	}

	TranslateBatchItemDTO struct {
		Success        bool   `json:"success"`
		OriginalText   string `json:"original_text"`
		TranslatedText string `json:"translated_text,omitempty"`
		SourceLanguage string `json:"source_language,omitempty"`
		Error          string `json:"error,omitempty"`
	}

	TranslateBatchResponseDTO struct {
		Success      bool                    `json:"success"`
		Translations []TranslateBatchItemDTO `json:"translations"`
	}

	DetectLanguageRequestDTO struct {
		Text string `json:"text" minLength:"1" maxLength:"5000"`
	}

	DetectLanguageResponseDTO struct {
		Success  bool   `json:"success"`
		Language string `json:"language"`
	}
)

type (
	TranslateInput struct {
		Body TranslateRequestDTO
	}

	TranslateOutput struct {
		Body TranslateResponseDTO
	}

	TranslateBatchInput struct {
		Body TranslateBatchRequestDTO
	}

	TranslateBatchOutput struct {
		Body TranslateBatchResponseDTO
	}

	DetectLanguageInput struct {
		Body DetectLanguageRequestDTO
	}

	DetectLanguageOutput struct {
		Body DetectLanguageResponseDTO
	}
)

// TranslateHandler handles HTTP requests for translation.
type TranslateHandler struct {
	service *service.Translations
}

// NewTranslateHandler creates a new TranslateHandler instance.
func NewTranslateHandler(api huma.API, service *service.Translations) *TranslateHandler {
	h := &TranslateHandler{service: service}

	huma.Register(api, huma.Operation{
		OperationID:   "translate",
		Method:        http.MethodPost,
		Path:          "/api/translate",
		Summary:       "Translate text and record it in history",
		Tags:          []string{"translation"},
		DefaultStatus: http.StatusOK,
	}, h.handleTranslate)

	huma.Register(api, huma.Operation{
		OperationID:   "translate-batch",
		Method:        http.MethodPost,
		Path:          "/api/translate-batch",
		Summary:       "Translate several texts with one language pair",
		Tags:          []string{"translation"},
		DefaultStatus: http.StatusOK,
	}, h.handleTranslateBatch)

	huma.Register(api, huma.Operation{
		OperationID:   "detect-language",
		Method:        http.MethodPost,
		Path:          "/api/detect-language",
		Summary:       "Detect the language of a text",
		Tags:          []string{"translation"},
		DefaultStatus: http.StatusOK,
	}, h.handleDetectLanguage)

	return h
}

// handleTranslate handles the translate operation.
func (h *TranslateHandler) handleTranslate(ctx context.Context, input *TranslateInput) (*TranslateOutput, error) {
	res, err := h.service.Translate(ctx, service.TranslateRequest{
		Text:           input.Body.Text,
		TargetLanguage: input.Body.TargetLanguage,
		SourceLanguage: input.Body.SourceLanguage,
		IPAddress:      ClientIPFrom(ctx),
	})
	if err != nil {
		return nil, translateError(err)
	}

	body := TranslateResponseDTO{
		Success:        true,
		OriginalText:   res.OriginalText,
		TranslatedText: res.TranslatedText,
		SourceLanguage: res.SourceLanguage,
		TargetLanguage: res.TargetLanguage,
		DetectedSource: res.SourceLanguage,
		TranslationID:  res.TranslationID,
	}
	if res.Persistence.Degraded() {
		body.StoragePersisted = ptr(false)
		body.Message = msgTranslationNotStored
	}

	return &TranslateOutput{Body: body}, nil
}

// handleTranslateBatch handles the translate-batch operation.
func (h *TranslateHandler) handleTranslateBatch(ctx context.Context, input *TranslateBatchInput) (*TranslateBatchOutput, error) {
	items, err := h.service.TranslateBatch(ctx, input.Body.Texts, input.Body.TargetLanguage, input.Body.SourceLanguage)
	if err != nil {
		return nil, translateError(err)
	}

	out := make([]TranslateBatchItemDTO, len(items))
	for i, item := range items {
		out[i] = TranslateBatchItemDTO{OriginalText: input.Body.Texts[i]}
		if item.Err != nil {
			out[i].Error = msgTranslationFailed
			continue
		}
		out[i].Success = true
		out[i].TranslatedText = item.Result.TranslatedText
		out[i].SourceLanguage = item.Result.SourceLanguage
	}

	return &TranslateBatchOutput{
		Body: TranslateBatchResponseDTO{Success: true, Translations: out},
	}, nil
}

// handleDetectLanguage handles the detect-language operation.
func (h *TranslateHandler) handleDetectLanguage(ctx context.Context, input *DetectLanguageInput) (*DetectLanguageOutput, error) {
	return &DetectLanguageOutput{
		Body: DetectLanguageResponseDTO{
			Success:  true,
			Language: h.service.DetectLanguage(ctx, input.Body.Text),
		},
	}, nil
}

func translateError(err error) error {
	switch {
	case errors.Is(err, service.ErrUnsupportedSourceLanguage):
		return huma.Error400BadRequest(msgSourceNotSupported, err)
	case errors.Is(err, service.ErrUnsupportedTargetLanguage):
		return huma.Error400BadRequest(msgTargetNotSupported, err)
	default:
		return huma.Error500InternalServerError(msgTranslationFailed, err)
	}
}
