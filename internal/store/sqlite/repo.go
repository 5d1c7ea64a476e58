package sqlite

import (
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/ekisa-team/voxlingo/internal/store"
)

// timeLayout has a fixed width so text ordering matches time ordering.
const timeLayout = "2006-01-02 15:04:05.000000"

// Repo provides a base for Squirrel-based repositories. A nil DB makes every
// call fail with store.ErrUnavailable.
type Repo struct {
	DB *sql.DB
	SQ sq.StatementBuilderType
}

// NewRepo creates a Repo over db.
func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db, SQ: sq.StatementBuilder}
}

func (r *Repo) available() error {
	if r.DB == nil {
		return store.ErrUnavailable
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, _ := time.ParseInLocation(timeLayout, s, time.UTC)
	return t
}
