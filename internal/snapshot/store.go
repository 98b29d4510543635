package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store is an open snapshot database.
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// Open creates or opens the snapshot database at path and applies migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// Foreign key enforcement is per connection in SQLite.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path, now: time.Now}
	if err := store.applyMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Stats summarises a snapshot.
type Stats struct {
	Movies     int    `json:"movies"`
	TVShows    int    `json:"tv_shows"`
	Accounts   int    `json:"accounts"`
	Rentals    int    `json:"rentals"`
	Purchases  int    `json:"purchases"`
	ExportedAt string `json:"exported_at,omitempty"`
}

// Stats counts the rows in each table.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	rows, err := s.db.QueryContext(ctx, `SELECT kind, COUNT(1) FROM content GROUP BY kind`)
	if err != nil {
		return Stats{}, fmt.Errorf("content stats: %w", err)
	}
	for rows.Next() {
		var kind string
		var count int
		if err := rows.Scan(&kind, &count); err != nil {
			rows.Close()
			return Stats{}, err
		}
		switch kind {
		case "Movie":
			stats.Movies = count
		case "TVShow":
			stats.TVShows = count
		}
	}
	if err := rows.Close(); err != nil {
		return Stats{}, err
	}

	counts := []struct {
		table string
		dest  *int
	}{
		{"accounts", &stats.Accounts},
		{"rentals", &stats.Rentals},
		{"purchases", &stats.Purchases},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM "+c.table).Scan(c.dest); err != nil {
			return Stats{}, fmt.Errorf("%s stats: %w", c.table, err)
		}
	}

	var exportedAt sql.NullString
	err = s.db.QueryRowContext(ctx, `SELECT value FROM snapshot_meta WHERE key = 'exported_at'`).Scan(&exportedAt)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return Stats{}, fmt.Errorf("snapshot meta: %w", err)
	}
	stats.ExportedAt = exportedAt.String
	return stats, nil
}
