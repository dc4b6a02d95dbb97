package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/pixil98/dogtown/internal/notes"
)

// timeLayout is fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store keeps notes in a local sqlite database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open creates the database file and its schema if they do not exist.
func Open(path string, opts ...StoreOpt) (*Store, error) {
	if path == "" {
		return nil, errors.New("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &Store{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS notes (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			is_pinned INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS notes_user ON notes(user_id);`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	return nil
}

func (s *Store) List(ctx context.Context, ownerID string) ([]notes.Note, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,user_id,title,content,is_pinned,created_at,updated_at FROM notes
		 WHERE user_id=? ORDER BY is_pinned DESC, updated_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("querying notes: %w", err)
	}
	defer rows.Close()

	out := []notes.Note{}
	for rows.Next() {
		var (
			n                notes.Note
			created, updated string
		)
		if err := rows.Scan(&n.ID, &n.OwnerID, &n.Title, &n.Body, &n.Pinned, &created, &updated); err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}
		if n.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, fmt.Errorf("note %s created_at: %w", n.ID, err)
		}
		if n.UpdatedAt, err = time.Parse(timeLayout, updated); err != nil {
			return nil, fmt.Errorf("note %s updated_at: %w", n.ID, err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading notes: %w", err)
	}
	return out, nil
}

func (s *Store) Insert(ctx context.Context, ownerID string, d notes.Draft) error {
	now := s.now().UTC().Format(timeLayout)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO notes(id,user_id,title,content,is_pinned,created_at,updated_at) VALUES(?,?,?,?,0,?,?)`,
		uuid.NewString(), ownerID, d.Title, d.Body, now, now)
	if err != nil {
		return fmt.Errorf("inserting note: %w", err)
	}
	return nil
}

func (s *Store) Update(ctx context.Context, id string, d notes.Draft, at time.Time) error {
	return s.exec(ctx, id,
		`UPDATE notes SET title=?, content=?, updated_at=? WHERE id=?`,
		d.Title, d.Body, at.UTC().Format(timeLayout), id)
}

func (s *Store) SetPinned(ctx context.Context, id string, pinned bool) error {
	return s.exec(ctx, id, `UPDATE notes SET is_pinned=? WHERE id=?`, pinned, id)
}

func (s *Store) Delete(ctx context.Context, id string) error {
	return s.exec(ctx, id, `DELETE FROM notes WHERE id=?`, id)
}

// exec runs a statement that must touch exactly the row id.
func (s *Store) exec(ctx context.Context, id, query string, args ...any) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("writing note %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("writing note %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("note %s: %w", id, notes.ErrNotFound)
	}
	return nil
}
