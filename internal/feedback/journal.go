// Package feedback stores visitor feedback submissions locally.
package feedback

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Validation errors surfaced to the submitting form.
var (
	ErrEmptyMessage  = errors.New("feedback message must not be empty")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

// Entry is one feedback submission.
type Entry struct {
	ID        string
	Name      string
	Category  string
	Rating    int
	Message   string
	CreatedAt time.Time
}

// Journal appends feedback entries to a SQLite database in the profile
// directory. Entries are immutable once written.
type Journal struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open opens (or creates) the journal at dbPath.
// Use ":memory:" for tests.
func Open(dbPath string) (*Journal, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open feedback database: %w", err)
	}

	j := &Journal{db: db}
	if err := j.initialize(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return j, nil
}

func (j *Journal) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS feedback (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		rating INTEGER NOT NULL,
		message TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_feedback_created_at ON feedback(created_at);
	`
	_, err := j.db.Exec(schema)
	return err
}

// Submit validates and appends an entry, returning it with its assigned id
// and timestamp.
func (j *Journal) Submit(ctx context.Context, e Entry) (Entry, error) {
	if strings.TrimSpace(e.Message) == "" {
		return Entry{}, ErrEmptyMessage
	}
	if e.Rating < 1 || e.Rating > 5 {
		return Entry{}, ErrInvalidRating
	}

	e.ID = uuid.NewString()
	e.CreatedAt = time.Now()

	j.mu.Lock()
	defer j.mu.Unlock()

	_, err := j.db.ExecContext(ctx,
		"INSERT INTO feedback (id, name, category, rating, message, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		e.ID, e.Name, e.Category, e.Rating, e.Message, e.CreatedAt.Unix(),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("insert feedback: %w", err)
	}
	return e, nil
}

// List returns all entries, newest first.
func (j *Journal) List(ctx context.Context) ([]Entry, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	rows, err := j.db.QueryContext(ctx,
		"SELECT id, name, category, rating, message, created_at FROM feedback ORDER BY created_at DESC, id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("query feedback: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt int64
		if err := rows.Scan(&e.ID, &e.Name, &e.Category, &e.Rating, &e.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("scan feedback row: %w", err)
		}
		e.CreatedAt = time.Unix(createdAt, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close releases the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}
