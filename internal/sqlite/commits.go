package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/kinematics-lab/linkage/pkg/types"
)

// Payload is the design snapshot a commit carries. The mechanism expression
// is stored as text; the remaining parts are YAML-encoded blobs.
type Payload struct {
	Mechanism  string
	LinkColors map[string]string
	Storage    [][]string
	Inputs     []types.Variable
	Paths      map[string]types.Path
}

// Commit is one history entry. Previous is empty for a branch's first
// commit.
type Commit struct {
	ID          string
	Previous    string
	Branch      string
	Author      string
	Date        time.Time
	Description string
	Payload     Payload
}

// Save appends a commit to a branch. The author and branch are created on
// first use, the previous commit is the branch head, and the commit ID is
// a fresh UUIDv7. Returns the new commit's ID.
func (s *Store) Save(branch, author, description string, p Payload) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("save commit: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("save commit: %w", err)
	}
	defer tx.Rollback()

	authorID, err := internName(tx, "authors", "author_id", author)
	if err != nil {
		return "", err
	}
	branchID, err := internName(tx, "branches", "branch_id", branch)
	if err != nil {
		return "", err
	}

	// UUIDv7 ids sort by creation time, so the head is the largest id.
	// The date column is display data; RFC3339Nano strings do not sort.
	var previous sql.NullString
	err = tx.QueryRow(
		`SELECT commit_id FROM commits WHERE branch_id = ? ORDER BY commit_id DESC LIMIT 1`,
		branchID,
	).Scan(&previous.String)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// first commit on the branch
	case err != nil:
		return "", fmt.Errorf("save commit: %w", err)
	default:
		previous.Valid = true
	}

	colors, err := yaml.Marshal(p.LinkColors)
	if err != nil {
		return "", fmt.Errorf("save commit: %w", err)
	}
	storage, err := yaml.Marshal(p.Storage)
	if err != nil {
		return "", fmt.Errorf("save commit: %w", err)
	}
	inputs, err := yaml.Marshal(p.Inputs)
	if err != nil {
		return "", fmt.Errorf("save commit: %w", err)
	}
	paths, err := yaml.Marshal(p.Paths)
	if err != nil {
		return "", fmt.Errorf("save commit: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO commits (commit_id, previous_id, branch_id, author_id, date, description,
		                      mechanism, link_colors, storage, input_data, path_data)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id.String(), previous, branchID, authorID,
		time.Now().UTC().Format(time.RFC3339Nano), description,
		p.Mechanism, colors, storage, inputs, paths,
	)
	if err != nil {
		return "", fmt.Errorf("save commit: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("save commit: %w", err)
	}
	return id.String(), nil
}

// Get returns the commit with the given ID.
func (s *Store) Get(id string) (Commit, error) {
	return s.scanCommit(
		`SELECT c.commit_id, c.previous_id, b.name, a.name, c.date, c.description,
		        c.mechanism, c.link_colors, c.storage, c.input_data, c.path_data
		 FROM commits c
		 JOIN branches b ON b.branch_id = c.branch_id
		 JOIN authors a ON a.author_id = c.author_id
		 WHERE c.commit_id = ?`,
		ErrCommitNotFound, id)
}

// Latest returns the head commit of a branch.
func (s *Store) Latest(branch string) (Commit, error) {
	return s.scanCommit(
		`SELECT c.commit_id, c.previous_id, b.name, a.name, c.date, c.description,
		        c.mechanism, c.link_colors, c.storage, c.input_data, c.path_data
		 FROM commits c
		 JOIN branches b ON b.branch_id = c.branch_id
		 JOIN authors a ON a.author_id = c.author_id
		 WHERE b.name = ?
		 ORDER BY c.commit_id DESC LIMIT 1`,
		ErrNoCommits, branch)
}

// Log returns every commit, newest first.
func (s *Store) Log() ([]Commit, error) {
	rows, err := s.db.Query(
		`SELECT c.commit_id, c.previous_id, b.name, a.name, c.date, c.description,
		        c.mechanism, c.link_colors, c.storage, c.input_data, c.path_data
		 FROM commits c
		 JOIN branches b ON b.branch_id = c.branch_id
		 JOIN authors a ON a.author_id = c.author_id
		 ORDER BY c.commit_id DESC`)
	if err != nil {
		return nil, fmt.Errorf("log commits: %w", err)
	}
	defer rows.Close()

	var out []Commit
	for rows.Next() {
		c, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Authors returns the known author names in order.
func (s *Store) Authors() ([]string, error) {
	return s.names(`SELECT name FROM authors ORDER BY name`)
}

// Branches returns the known branch names in order.
func (s *Store) Branches() ([]string, error) {
	return s.names(`SELECT name FROM branches ORDER BY name`)
}

func (s *Store) names(query string) ([]string, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list names: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

// internName finds or creates a named row and returns its ID.
func internName(tx *sql.Tx, table, idColumn, name string) (string, error) {
	var id string
	err := tx.QueryRow(
		fmt.Sprintf(`SELECT %s FROM %s WHERE name = ?`, idColumn, table), name,
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("intern %s: %w", table, err)
	}
	fresh, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("intern %s: %w", table, err)
	}
	if _, err := tx.Exec(
		fmt.Sprintf(`INSERT INTO %s (%s, name) VALUES (?, ?)`, table, idColumn),
		fresh.String(), name,
	); err != nil {
		return "", fmt.Errorf("intern %s: %w", table, err)
	}
	return fresh.String(), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *Store) scanCommit(query string, notFound error, args ...any) (Commit, error) {
	c, err := scanRow(s.db.QueryRow(query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return Commit{}, notFound
	}
	return c, err
}

func scanRow(row rowScanner) (Commit, error) {
	var (
		c        Commit
		previous sql.NullString
		date     string
		colors   []byte
		storage  []byte
		inputs   []byte
		paths    []byte
	)
	err := row.Scan(&c.ID, &previous, &c.Branch, &c.Author, &date, &c.Description,
		&c.Payload.Mechanism, &colors, &storage, &inputs, &paths)
	if err != nil {
		return Commit{}, err
	}
	c.Previous = previous.String
	if c.Date, err = time.Parse(time.RFC3339Nano, date); err != nil {
		return Commit{}, fmt.Errorf("scan commit date: %w", err)
	}
	if err := yaml.Unmarshal(colors, &c.Payload.LinkColors); err != nil {
		return Commit{}, fmt.Errorf("scan commit payload: %w", err)
	}
	if err := yaml.Unmarshal(storage, &c.Payload.Storage); err != nil {
		return Commit{}, fmt.Errorf("scan commit payload: %w", err)
	}
	if err := yaml.Unmarshal(inputs, &c.Payload.Inputs); err != nil {
		return Commit{}, fmt.Errorf("scan commit payload: %w", err)
	}
	if err := yaml.Unmarshal(paths, &c.Payload.Paths); err != nil {
		return Commit{}, fmt.Errorf("scan commit payload: %w", err)
	}
	return c, nil
}
