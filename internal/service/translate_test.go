package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ekisa-team/voxlingo/internal/store"
	"github.com/ekisa-team/voxlingo/internal/translate"
)

func TestTranslations_Translate(t *testing.T) {
	tr := new(MockTranslator)
	repo := new(MockTranslationRepo)
	svc := NewTranslations(tr, repo)

	tr.On("Translate", mock.Anything, "Hello", "es", "auto").Return(&translate.Result{
		OriginalText:   "Hello",
		TranslatedText: "Hola",
		SourceLanguage: "en",
		TargetLanguage: "es",
	}, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(row *store.Translation) bool {
		return row.OriginalText == "Hello" && row.TranslatedText == "Hola" &&
			row.IPAddress != nil && *row.IPAddress == "10.0.0.1"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*store.Translation).ID = 7
	}).Return(nil)

	res, err := svc.Translate(context.Background(), TranslateRequest{
		Text:           "Hello",
		TargetLanguage: "es",
		IPAddress:      "10.0.0.1",
	})
	require.NoError(t, err)

	assert.Equal(t, "Hola", res.TranslatedText)
	assert.Equal(t, "en", res.SourceLanguage)
	require.NotNil(t, res.TranslationID)
	assert.Equal(t, int64(7), *res.TranslationID)
	assert.True(t, res.Persistence.Persisted())

	tr.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestTranslations_UnsupportedLanguage(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		target  string
		wantErr error
	}{
		{name: "target", source: "auto", target: "xx", wantErr: ErrUnsupportedTargetLanguage},
		{name: "source", source: "zz", target: "es", wantErr: ErrUnsupportedSourceLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := new(MockTranslator)
			repo := new(MockTranslationRepo)
			svc := NewTranslations(tr, repo)

			_, err := svc.Translate(context.Background(), TranslateRequest{
				Text:           "Hello",
				TargetLanguage: tt.target,
				SourceLanguage: tt.source,
			})
			assert.ErrorIs(t, err, tt.wantErr)

			tr.AssertNotCalled(t, "Translate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestTranslations_StorageFailureKeepsResult(t *testing.T) {
	tr := new(MockTranslator)
	repo := new(MockTranslationRepo)
	svc := NewTranslations(tr, repo)

	tr.On("Translate", mock.Anything, "Hello", "fr", "en").Return(&translate.Result{
		OriginalText:   "Hello",
		TranslatedText: "Bonjour",
		SourceLanguage: "en",
		TargetLanguage: "fr",
	}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(store.ErrUnavailable)

	res, err := svc.Translate(context.Background(), TranslateRequest{
		Text:           "Hello",
		TargetLanguage: "fr",
		SourceLanguage: "en",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bonjour", res.TranslatedText)
	assert.Nil(t, res.TranslationID)
	assert.True(t, res.Persistence.Degraded())
	assert.ErrorIs(t, res.Persistence.Err, store.ErrUnavailable)
}

func TestTranslations_ProviderFailure(t *testing.T) {
	tr := new(MockTranslator)
	repo := new(MockTranslationRepo)
	svc := NewTranslations(tr, repo)

	tr.On("Translate", mock.Anything, "Hello", "de", "auto").Return(nil, errors.New("boom"))

	_, err := svc.Translate(context.Background(), TranslateRequest{Text: "Hello", TargetLanguage: "de"})
	assert.ErrorIs(t, err, ErrTranslationFailed)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTranslations_TranslateBatch(t *testing.T) {
	tr := new(MockTranslator)
	svc := NewTranslations(tr, new(MockTranslationRepo))

	items := []translate.BatchItem{
		{Result: &translate.Result{TranslatedText: "Hola"}},
		{Err: translate.ErrEmptyText},
	}
	tr.On("TranslateBatch", mock.Anything, []string{"Hello", ""}, "es", "auto").Return(items)

	got, err := svc.TranslateBatch(context.Background(), []string{"Hello", ""}, "es", "")
	require.NoError(t, err)
	assert.Equal(t, items, got)

	_, err = svc.TranslateBatch(context.Background(), []string{"Hello"}, "xx", "")
	assert.ErrorIs(t, err, ErrUnsupportedTargetLanguage)
}

func TestTranslations_DetectLanguage(t *testing.T) {
	tr := new(MockTranslator)
	svc := NewTranslations(tr, new(MockTranslationRepo))

	tr.On("DetectLanguage", mock.Anything, "Bonjour").Return("fr")

	assert.Equal(t, "fr", svc.DetectLanguage(context.Background(), "Bonjour"))
}
