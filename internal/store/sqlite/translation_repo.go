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

var translationColumns = []string{
	"id", "original_text", "source_language", "target_language",
	"translated_text", "ip_address", "created_at", "updated_at",
}

// TranslationRepo stores translations in the translations table.
type TranslationRepo struct {
	*Repo
	audio *AudioFileRepo
}

var _ store.TranslationRepository = (*TranslationRepo)(nil)

// NewTranslationRepo creates a TranslationRepo.
func NewTranslationRepo(db *sql.DB) *TranslationRepo {
	return &TranslationRepo{Repo: NewRepo(db), audio: NewAudioFileRepo(db)}
}

// Create inserts t.
func (r *TranslationRepo) Create(ctx context.Context, t *store.Translation) error {
	if err := r.available(); err != nil {
		return err
	}

	now := time.Now()
	q := r.SQ.Insert("translations").
		Columns("original_text", "source_language", "target_language", "translated_text", "ip_address", "created_at", "updated_at").
		Values(t.OriginalText, t.SourceLanguage, t.TargetLanguage, t.TranslatedText, t.IPAddress, formatTime(now), formatTime(now))
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert translation: %w", err)
	}

	res, err := r.DB.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("insert translation: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert translation: %w", err)
	}

	t.ID = id
	t.CreatedAt = now.UTC().Truncate(time.Microsecond)
	t.UpdatedAt = t.CreatedAt
	return nil
}

// Get returns the translation with id and its audio files.
func (r *TranslationRepo) Get(ctx context.Context, id int64) (*store.Translation, error) {
	if err := r.available(); err != nil {
		return nil, err
	}

	sqlStr, args, err := r.SQ.Select(translationColumns...).From("translations").
		Where(sq.Eq{"id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select translation: %w", err)
	}

	t, err := scanTranslation(r.DB.QueryRowContext(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("select translation %d: %w", id, err)
	}

	files, err := r.audio.listByTranslations(ctx, []int64{t.ID})
	if err != nil {
		return nil, err
	}
	t.AudioFiles = files[t.ID]
	return t, nil
}

// Exists reports whether id exists.
func (r *TranslationRepo) Exists(ctx context.Context, id int64) (bool, error) {
	if err := r.available(); err != nil {
		return false, err
	}

	sqlStr, args, err := r.SQ.Select("1").From("translations").Where(sq.Eq{"id": id}).Limit(1).ToSql()
	if err != nil {
		return false, fmt.Errorf("build exists translation: %w", err)
	}

	var n int
	err = r.DB.QueryRowContext(ctx, sqlStr, args...).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("exists translation %d: %w", id, err)
	}
	return true, nil
}

// List returns a page of translations, newest first.
func (r *TranslationRepo) List(ctx context.Context, limit, offset int) ([]*store.Translation, error) {
	if err := r.available(); err != nil {
		return nil, err
	}

	sqlStr, args, err := r.SQ.Select(translationColumns...).From("translations").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).Offset(uint64(offset)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list translations: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}
	defer rows.Close()

	var (
		out []*store.Translation
		ids []int64
	)
	for rows.Next() {
		t, err := scanTranslation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan translation: %w", err)
		}
		out = append(out, t)
		ids = append(ids, t.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}
	if len(ids) == 0 {
		return out, nil
	}

	files, err := r.audio.listByTranslations(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, t := range out {
		t.AudioFiles = files[t.ID]
	}
	return out, nil
}

// Count returns the number of translations.
func (r *TranslationRepo) Count(ctx context.Context) (int, error) {
	if err := r.available(); err != nil {
		return 0, err
	}

	sqlStr, args, err := r.SQ.Select("COUNT(*)").From("translations").ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count translations: %w", err)
	}

	var n int
	if err := r.DB.QueryRowContext(ctx, sqlStr, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count translations: %w", err)
	}
	return n, nil
}

// Delete removes the translation with id.
func (r *TranslationRepo) Delete(ctx context.Context, id int64) error {
	if err := r.available(); err != nil {
		return err
	}

	sqlStr, args, err := r.SQ.Delete("translations").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete translation: %w", err)
	}

	res, err := r.DB.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("delete translation %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete translation %d: %w", id, err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTranslation(row rowScanner) (*store.Translation, error) {
	var (
		t                store.Translation
		ip               sql.NullString
		created, updated string
	)
	if err := row.Scan(&t.ID, &t.OriginalText, &t.SourceLanguage, &t.TargetLanguage, &t.TranslatedText, &ip, &created, &updated); err != nil {
		return nil, err
	}
	if ip.Valid {
		v := ip.String
		t.IPAddress = &v
	}
	t.CreatedAt = parseTime(created)
	t.UpdatedAt = parseTime(updated)
	return &t, nil
}
