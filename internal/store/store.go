// Package store defines the translation history records and the
// repositories that persist them.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Error definitions for the store package.
var (
	ErrNotFound    = errors.New("record not found")
	ErrUnavailable = errors.New("database unavailable")
)

// Translation is one completed translation request.
type Translation struct {
	CreatedAt      time.Time
	UpdatedAt      time.Time
	IPAddress      *string
	OriginalText   string
	SourceLanguage string
	TargetLanguage string
	TranslatedText string
	AudioFiles     []AudioFile
	ID             int64
}

// AudioFile is a stored audio blob produced for a translation.
type AudioFile struct {
	CreatedAt     time.Time
	UpdatedAt     time.Time
	FileSize      *int64
	FilePath      string
	FileName      string
	VoiceType     string
	VoiceGender   string
	MimeType      string
	VoiceSpeed    float64
	VoicePitch    float64
	ID            int64
	TranslationID int64
}

// FileSizeHuman formats FileSize using binary units, e.g. "1.5 KB".
func (a *AudioFile) FileSizeHuman() string {
	if a.FileSize == nil || *a.FileSize == 0 {
		return "Unknown"
	}

	units := []string{"B", "KB", "MB", "GB"}
	size := float64(*a.FileSize)
	unit := 0
	for size >= 1024 && unit < len(units)-1 {
		size /= 1024
		unit++
	}

	return fmt.Sprintf("%s %s", trimFloat(size), units[unit])
}

// TranslationRepository persists translations.
type TranslationRepository interface {
	// Create inserts t and sets its ID and timestamps.
	Create(ctx context.Context, t *Translation) error

	// Get returns the translation with its audio files.
	Get(ctx context.Context, id int64) (*Translation, error)

	// Exists reports whether a translation with id exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// List returns translations newest first, each with its audio files.
	List(ctx context.Context, limit, offset int) ([]*Translation, error)

	// Count returns the total number of translations.
	Count(ctx context.Context) (int, error)

	// Delete removes the translation. Its audio file rows cascade.
	Delete(ctx context.Context, id int64) error
}

// AudioFileRepository persists audio file records.
type AudioFileRepository interface {
	// Create inserts a and sets its ID and timestamps.
	Create(ctx context.Context, a *AudioFile) error

	// Get returns the audio file record with id.
	Get(ctx context.Context, id int64) (*AudioFile, error)
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	for s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
