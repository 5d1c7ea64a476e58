package http

import (
	"errors"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// Messages returned to clients.
const (
	msgValidationFailed      = "The given data was invalid."
	msgSourceNotSupported    = "Source language not supported"
	msgTargetNotSupported    = "Target language not supported"
	msgTranslationFailed     = "Translation failed. Please try again."
	msgNeuralSpeechFailed    = "Eleven Labs speech generation failed. Please try again."
	msgSpeechFailed          = "Speech generation failed. Please try again."
	msgTranslationNotFound   = "Translation not found"
	msgDeleteFailed          = "Failed to delete translation"
	msgAudioNotFound         = "Audio file not found"
	msgDownloadFailed        = "Download failed"
	msgTranslationIDInvalid  = "The selected translation id is invalid."
	msgHistoryUnavailable    = "History is temporarily unavailable while the database is offline."
	msgTranslationNotStored  = "Translation succeeded but history is unavailable right now."
	msgWebSpeech             = "Using Web Speech API for playback"
	msgTranslationDeleted    = "Translation deleted successfully"
	msgProviderVoicesMissing = "Voice list is unavailable right now."
)

// ErrorEnvelope is the error body of every failed request.
type ErrorEnvelope struct {
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"error"`
	Success bool                `json:"success"`
	status  int
}

// Error implements the error interface.
func (e *ErrorEnvelope) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError.
func (e *ErrorEnvelope) GetStatus() int {
	return e.status
}

func init() {
	huma.NewError = newError
}

// newError builds an ErrorEnvelope. Validation details become per-field
// messages; other errors are causes and are never shown to clients.
func newError(status int, msg string, errs ...error) huma.StatusError {
	e := &ErrorEnvelope{status: status, Message: msg}

	for _, err := range errs {
		var detail *huma.ErrorDetail
		if !errors.As(err, &detail) {
			continue
		}

		field := fieldName(detail.Location)
		if e.Errors == nil {
			e.Errors = make(map[string][]string)
		}
		e.Errors[field] = append(e.Errors[field], detail.Message)
	}

	return e
}

// fieldName turns a huma location such as "body.text" into "text".
func fieldName(location string) string {
	for _, prefix := range []string{"body.", "query.", "path.", "header."} {
		if rest, ok := strings.CutPrefix(location, prefix); ok {
			return rest
		}
	}
	if location == "" {
		return "body"
	}
	return location
}

// fieldError reports a single invalid field with status 422.
func fieldError(field, msg string, value any) error {
	return huma.Error422UnprocessableEntity(msgValidationFailed, &huma.ErrorDetail{
		Location: "body." + field,
		Message:  msg,
		Value:    value,
	})
}
