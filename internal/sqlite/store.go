package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store errors.
var (
	ErrCommitNotFound = errors.New("commit not found")
	ErrNoCommits      = errors.New("no commits on branch")
)

// Store is a commit-history database.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the commit database at the given path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open commit store: %w", err)
	}
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("init commit store schema: %w", err)
		}
	}
	return &Store{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
