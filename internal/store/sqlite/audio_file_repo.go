package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/ekisa-team/voxlingo/internal/store"
)

var audioFileColumns = []string{
	"id", "translation_id", "file_path", "file_name", "voice_type", "voice_gender",
	"voice_speed", "voice_pitch", "file_size", "mime_type", "created_at", "updated_at",
}

// AudioFileRepo stores audio file records in the audio_files table.
type AudioFileRepo struct{ *Repo }

var _ store.AudioFileRepository = (*AudioFileRepo)(nil)

// NewAudioFileRepo creates an AudioFileRepo.
func NewAudioFileRepo(db *sql.DB) *AudioFileRepo { return &AudioFileRepo{NewRepo(db)} }

// Create inserts a.
func (r *AudioFileRepo) Create(ctx context.Context, a *store.AudioFile) error {
	if err := r.available(); err != nil {
		return err
	}

	now := time.Now()
	q := r.SQ.Insert("audio_files").
		Columns("translation_id", "file_path", "file_name", "voice_type", "voice_gender", "voice_speed", "voice_pitch", "file_size", "mime_type", "created_at", "updated_at").
		Values(a.TranslationID, a.FilePath, a.FileName, a.VoiceType, a.VoiceGender, a.VoiceSpeed, a.VoicePitch, a.FileSize, a.MimeType, formatTime(now), formatTime(now))
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert audio file: %w", err)
	}

	res, err := r.DB.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("insert audio file: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert audio file: %w", err)
	}

	a.ID = id
	a.CreatedAt = now.UTC().Truncate(time.Microsecond)
	a.UpdatedAt = a.CreatedAt
	return nil
}

// Get returns the audio file with id.
func (r *AudioFileRepo) Get(ctx context.Context, id int64) (*store.AudioFile, error) {
	if err := r.available(); err != nil {
		return nil, err
	}

	sqlStr, args, err := r.SQ.Select(audioFileColumns...).From("audio_files").
		Where(sq.Eq{"id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select audio file: %w", err)
	}

	a, err := scanAudioFile(r.DB.QueryRowContext(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("select audio file %d: %w", id, err)
	}
	return a, nil
}

// listByTranslations returns audio files grouped by translation id, oldest first.
func (r *AudioFileRepo) listByTranslations(ctx context.Context, ids []int64) (map[int64][]store.AudioFile, error) {
	sqlStr, args, err := r.SQ.Select(audioFileColumns...).From("audio_files").
		Where(sq.Eq{"translation_id": ids}).OrderBy("created_at", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list audio files: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list audio files: %w", err)
	}
	defer rows.Close()

	out := make(map[int64][]store.AudioFile, len(ids))
	for rows.Next() {
		a, err := scanAudioFile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan audio file: %w", err)
		}
		out[a.TranslationID] = append(out[a.TranslationID], *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list audio files: %w", err)
	}
	return out, nil
}

func scanAudioFile(row rowScanner) (*store.AudioFile, error) {
	var (
		a                store.AudioFile
		size             sql.NullInt64
		created, updated string
	)
	if err := row.Scan(&a.ID, &a.TranslationID, &a.FilePath, &a.FileName, &a.VoiceType, &a.VoiceGender,
		&a.VoiceSpeed, &a.VoicePitch, &size, &a.MimeType, &created, &updated); err != nil {
		return nil, err
	}
	if size.Valid {
		v := size.Int64
		a.FileSize = &v
	}
	a.CreatedAt = parseTime(created)
	a.UpdatedAt = parseTime(updated)
	return &a, nil
}
