package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ekisa-team/voxlingo/internal/language"
	"github.com/ekisa-team/voxlingo/internal/store"
	"github.com/ekisa-team/voxlingo/internal/translate"
)

// Translator translates text through an external provider.
type Translator interface {
	Translate(ctx context.Context, text, target, source string) (*translate.Result, error)
	TranslateBatch(ctx context.Context, texts []string, target, source string) []translate.BatchItem
	DetectLanguage(ctx context.Context, text string) string
}

var _ Translator = (*translate.Client)(nil)

// TranslateRequest is a validated translation request.
type TranslateRequest struct {
	Text           string
	TargetLanguage string
	SourceLanguage string
	IPAddress      string
}

// TranslateResult is a completed translation and the outcome of recording
// it in history.
type TranslateResult struct {
	translate.Result

	// TranslationID is nil when the history row could not be written.
	TranslationID *int64
	Persistence   Persistence
}

// Translations is a service abstraction for translating text.
type Translations struct {
	translator   Translator
	translations store.TranslationRepository
}

// NewTranslations creates a new Translations service.
func NewTranslations(translator Translator, translations store.TranslationRepository) *Translations {
	return &Translations{
		translator:   translator,
		translations: translations,
	}
}

// Translate checks the language pair, translates the text and records the
// result. A storage failure never fails the translation.
func (s *Translations) Translate(ctx context.Context, req TranslateRequest) (*TranslateResult, error) {
	source := req.SourceLanguage
	if source == "" {
		source = language.Auto
	}
	if err := checkLanguages(source, req.TargetLanguage); err != nil {
		return nil, err
	}

	res, err := s.translator.Translate(ctx, req.Text, req.TargetLanguage, source)
	if err != nil {
		slog.Error("Translation failed", "error", err, "target", req.TargetLanguage, "source", source)
		return nil, fmt.Errorf("%w: %w", ErrTranslationFailed, err)
	}

	row := &store.Translation{
		OriginalText:   res.OriginalText,
		SourceLanguage: res.SourceLanguage,
		TargetLanguage: res.TargetLanguage,
		TranslatedText: res.TranslatedText,
	}
	if req.IPAddress != "" {
		ip := req.IPAddress
		row.IPAddress = &ip
	}

	out := &TranslateResult{Result: *res}
	if err := s.translations.Create(ctx, row); err != nil {
		slog.Warn("Failed to record translation", "error", err)
		out.Persistence = attempted(err)
		return out, nil
	}

	out.TranslationID = &row.ID
	out.Persistence = attempted(nil)
	return out, nil
}

// TranslateBatch translates each text with the same language pair. Items
// are not recorded in history.
func (s *Translations) TranslateBatch(ctx context.Context, texts []string, target, source string) ([]translate.BatchItem, error) {
	if source == "" {
		source = language.Auto
	}
	if err := checkLanguages(source, target); err != nil {
		return nil, err
	}

	return s.translator.TranslateBatch(ctx, texts, target, source), nil
}

// DetectLanguage returns the detected language of text, falling back to
// language.Fallback.
func (s *Translations) DetectLanguage(ctx context.Context, text string) string {
	return s.translator.DetectLanguage(ctx, text)
}

func checkLanguages(source, target string) error {
	if source != language.Auto && !language.IsSupported(source) {
		return ErrUnsupportedSourceLanguage
	}
	if !language.IsSupported(target) {
		return ErrUnsupportedTargetLanguage
	}
	return nil
}
