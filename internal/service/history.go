package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ekisa-team/voxlingo/internal/blob"
	"github.com/ekisa-team/voxlingo/internal/store"
)

// Paging limits for List.
const (
	DefaultPerPage = 20
	MaxPerPage     = 50
	RecentLimit    = 10
)

// Page is one page of translation history.
type Page struct {
	Items       []*store.Translation
	CurrentPage int
	PerPage     int
	Total       int
	LastPage    int
	Persistence Persistence
}

// History is a service abstraction over stored translations and audio.
type History struct {
	translations store.TranslationRepository
	audio        store.AudioFileRepository
	blobs        blob.Store
}

// NewHistory creates a new History service.
func NewHistory(translations store.TranslationRepository, audio store.AudioFileRepository, blobs blob.Store) *History {
	return &History{
		translations: translations,
		audio:        audio,
		blobs:        blobs,
	}
}

// List returns a page of translations, newest first. A database error
// yields an empty page with a degraded Persistence.
func (h *History) List(ctx context.Context, page, perPage int) *Page {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	perPage = min(perPage, MaxPerPage)
	page = max(page, 1)

	out := &Page{
		Items:       []*store.Translation{},
		CurrentPage: page,
		PerPage:     perPage,
		LastPage:    1,
	}

	total, err := h.translations.Count(ctx)
	if err != nil {
		slog.Warn("Failed to count translations", "error", err)
		out.Persistence = attempted(err)
		return out
	}

	items, err := h.translations.List(ctx, perPage, (page-1)*perPage)
	if err != nil {
		slog.Warn("Failed to list translations", "error", err)
		out.Persistence = attempted(err)
		return out
	}

	out.Items = items
	out.Total = total
	out.LastPage = max(1, (total+perPage-1)/perPage)
	out.Persistence = attempted(nil)
	return out
}

// Recent returns up to n of the newest translations, or none when the
// database is unreachable.
func (h *History) Recent(ctx context.Context, n int) []*store.Translation {
	items, err := h.translations.List(ctx, n, 0)
	if err != nil {
		slog.Warn("Failed to load recent translations", "error", err)
		return []*store.Translation{}
	}
	return items
}

// Delete removes a translation. Its audio blobs are removed before the row.
func (h *History) Delete(ctx context.Context, id int64) error {
	t, err := h.translations.Get(ctx, id)
	if err != nil {
		return err
	}

	for _, a := range t.AudioFiles {
		if !h.blobs.Exists(a.FilePath) {
			continue
		}
		if err := h.blobs.Delete(a.FilePath); err != nil {
			return fmt.Errorf("failed to delete audio %s: %w", a.FilePath, err)
		}
	}

	return h.translations.Delete(ctx, id)
}

// OpenAudio opens the stored audio for an audio file record. The caller
// must close the returned reader.
func (h *History) OpenAudio(ctx context.Context, id int64) (*store.AudioFile, io.ReadCloser, int64, error) {
	a, err := h.audio.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, 0, ErrAudioNotFound
		}
		return nil, nil, 0, err
	}

	rc, size, err := h.blobs.Open(a.FilePath)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) || errors.Is(err, blob.ErrInvalidKey) {
			return nil, nil, 0, ErrAudioNotFound
		}
		return nil, nil, 0, err
	}

	return a, rc, size, nil
}
