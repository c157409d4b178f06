package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/fundlens/fundlens/internal/core/domain"
)

// schema holds the cursor table. A CHECK on the id keeps the table a
// single row.
const schema = `
CREATE TABLE IF NOT EXISTS ingest_cursor (
	id         INTEGER PRIMARY KEY CHECK (id = 1),
	iso        TEXT NOT NULL,
	updated_at TEXT NOT NULL
);`

// Store persists the ingestion cursor in a local SQLite database. It
// implements the driven.CursorStore port.
type Store struct {
	db *sql.DB
}

// NewStore creates a cursor store at the specified data directory.
// If dataDir is empty, defaults to ~/.fundlens/data/fundlens.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".fundlens", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "fundlens.db")

	// WAL mode for concurrent readers during a run
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Load returns the stored cursor, or the empty string when no cursor
// has been saved yet.
func (s *Store) Load(ctx context.Context) (string, error) {
	var iso string
	err := s.db.QueryRowContext(ctx, `SELECT iso FROM ingest_cursor WHERE id = 1`).Scan(&iso)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load cursor: %w", err)
	}
	return iso, nil
}

// Save replaces the stored cursor.
func (s *Store) Save(ctx context.Context, iso string) error {
	if iso == "" {
		return fmt.Errorf("%w: empty cursor", domain.ErrConfiguration)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO ingest_cursor (id, iso, updated_at) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET iso = excluded.iso, updated_at = excluded.updated_at`,
		iso, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save cursor: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
