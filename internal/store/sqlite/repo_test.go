package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekisa-team/voxlingo/internal/store"
)

func newTestRepos(t *testing.T) (*TranslationRepo, *AudioFileRepo) {
	t.Helper()

	db, err := Init(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewTranslationRepo(db), NewAudioFileRepo(db)
}

func createTranslation(t *testing.T, repo *TranslationRepo, text string) *store.Translation {
	t.Helper()

	ip := "127.0.0.1"
	tr := &store.Translation{
		OriginalText:   text,
		SourceLanguage: "en",
		TargetLanguage: "es",
		TranslatedText: text + " (es)",
		IPAddress:      &ip,
	}
	require.NoError(t, repo.Create(context.Background(), tr))
	return tr
}

func createAudio(t *testing.T, repo *AudioFileRepo, translationID int64, name string) *store.AudioFile {
	t.Helper()

	size := int64(2048)
	a := &store.AudioFile{
		TranslationID: translationID,
		FilePath:      "audio/" + name,
		FileName:      name,
		VoiceType:     "elevenlabs",
		VoiceGender:   "female",
		VoiceSpeed:    1.0,
		VoicePitch:    0,
		FileSize:      &size,
		MimeType:      "audio/mpeg",
	}
	require.NoError(t, repo.Create(context.Background(), a))
	return a
}

func TestTranslationRepo_CreateAndGet(t *testing.T) {
	translations, audio := newTestRepos(t)
	ctx := context.Background()

	tr := createTranslation(t, translations, "Hello")
	assert.NotZero(t, tr.ID)
	assert.False(t, tr.CreatedAt.IsZero())

	createAudio(t, audio, tr.ID, "elevenlabs_a.mp3")

	got, err := translations.Get(ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello", got.OriginalText)
	assert.Equal(t, "Hello (es)", got.TranslatedText)
	require.NotNil(t, got.IPAddress)
	assert.Equal(t, "127.0.0.1", *got.IPAddress)
	assert.True(t, tr.CreatedAt.Equal(got.CreatedAt))
	require.Len(t, got.AudioFiles, 1)
	assert.Equal(t, "elevenlabs_a.mp3", got.AudioFiles[0].FileName)

	_, err = translations.Get(ctx, tr.ID+100)
	assert.ErrorIs(t, err, store.ErrNotFound)

	ok, err := translations.Exists(ctx, tr.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = translations.Exists(ctx, tr.ID+100)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTranslationRepo_ListNewestFirst(t *testing.T) {
	translations, audio := newTestRepos(t)
	ctx := context.Background()

	first := createTranslation(t, translations, "one")
	second := createTranslation(t, translations, "two")
	third := createTranslation(t, translations, "three")
	createAudio(t, audio, second.ID, "elevenlabs_b.mp3")

	page, err := translations.List(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, third.ID, page[0].ID)
	assert.Equal(t, second.ID, page[1].ID)
	assert.Empty(t, page[0].AudioFiles)
	assert.Len(t, page[1].AudioFiles, 1)

	page, err = translations.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, first.ID, page[0].ID)

	n, err := translations.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestTranslationRepo_DeleteCascades(t *testing.T) {
	translations, audio := newTestRepos(t)
	ctx := context.Background()

	tr := createTranslation(t, translations, "Hello")
	a1 := createAudio(t, audio, tr.ID, "elevenlabs_a.mp3")
	a2 := createAudio(t, audio, tr.ID, "elevenlabs_b.mp3")

	require.NoError(t, translations.Delete(ctx, tr.ID))

	_, err := audio.Get(ctx, a1.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = audio.Get(ctx, a2.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, translations.Delete(ctx, tr.ID), store.ErrNotFound)
}

func TestAudioFileRepo_RequiresTranslation(t *testing.T) {
	_, audio := newTestRepos(t)

	err := audio.Create(context.Background(), &store.AudioFile{
		TranslationID: 999,
		FilePath:      "audio/x.mp3",
		FileName:      "x.mp3",
		VoiceType:     "elevenlabs",
		VoiceGender:   "male",
		MimeType:      "audio/mpeg",
	})
	assert.Error(t, err)
}

func TestRepos_Unavailable(t *testing.T) {
	translations := NewTranslationRepo(nil)
	audio := NewAudioFileRepo(nil)
	ctx := context.Background()

	assert.ErrorIs(t, translations.Create(ctx, &store.Translation{}), store.ErrUnavailable)
	_, err := translations.List(ctx, 20, 0)
	assert.ErrorIs(t, err, store.ErrUnavailable)
	_, err = translations.Count(ctx)
	assert.ErrorIs(t, err, store.ErrUnavailable)
	_, err = audio.Get(ctx, 1)
	assert.ErrorIs(t, err, store.ErrUnavailable)
}
