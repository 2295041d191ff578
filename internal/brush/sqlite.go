//go:build sqlite

package brush

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/google/uuid"
	errgo "gopkg.in/errgo.v1"

	_ "modernc.org/sqlite"
)

const defaultStoreKind = "sqlite"

// SQLiteStore keeps brushes in a SQLite database, one row per brush with the
// pattern held in plaintext format.
type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func newSQLiteStore(ctx context.Context, path string) (Store, error) {
	s := NewSQLiteStore(path)
	if err := s.Init(ctx); err != nil {
		return nil, errgo.Mask(err)
	}
	return s, nil
}

// Init opens the database and creates the schema. It is idempotent.
func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errgo.New("sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return errgo.Notef(err, "open %s", s.path)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return errgo.Notef(err, "ping %s", s.path)
	}
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS brushes (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			pattern TEXT NOT NULL
		)
	`); err != nil {
		_ = db.Close()
		return errgo.Notef(err, "create brushes table")
	}
	logger.Infof("opened brush store %s", s.path)
	s.db = db
	return nil
}

func (s *SQLiteStore) Save(ctx context.Context, b *Brush) (string, error) {
	if b == nil {
		return "", errgo.WithCausef(nil, ErrEmptyPattern, "cannot save nil brush")
	}
	db, err := s.getDB()
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	_, err = db.ExecContext(ctx, `
		INSERT INTO brushes (id, name, width, height, pattern)
		VALUES (?, ?, ?, ?, ?)
	`, id, b.Name, b.Width(), b.Height(), Format(b))
	if err != nil {
		return "", errgo.Notef(err, "save brush %q", b.Name)
	}
	return id, nil
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (*Brush, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, false, err
	}
	var name, pattern string
	err = db.QueryRowContext(ctx, `SELECT name, pattern FROM brushes WHERE id = ?`, id).Scan(&name, &pattern)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, errgo.Notef(err, "get brush %s", id)
	}
	b, err := ParsePlaintext(name, pattern)
	if err != nil {
		return nil, false, errgo.Notef(err, "decode brush %s", id)
	}
	return b, true, nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]Record, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, `SELECT id, name, width, height FROM brushes ORDER BY name, id`)
	if err != nil {
		return nil, errgo.Notef(err, "list brushes")
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Name, &r.Width, &r.Height); err != nil {
			return nil, errgo.Notef(err, "scan brush record")
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errgo.Mask(err)
	}
	return out, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}
	res, err := db.ExecContext(ctx, `DELETE FROM brushes WHERE id = ?`, id)
	if err != nil {
		return errgo.Notef(err, "delete brush %s", id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errgo.Mask(err)
	}
	if n == 0 {
		return errgo.WithCausef(nil, ErrNotFound, "brush %q not found", id)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, errgo.New("sqlite store not initialized")
	}
	return s.db, nil
}
