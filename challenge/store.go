// Package challenge - SQLite persistence.
package challenge

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ragrwal1/CSE-355-Final-Project-SP25/dfa"
	"github.com/ragrwal1/CSE-355-Final-Project-SP25/regexgen"
)

// ErrNotFound is returned by Load and Delete for an unknown challenge ID.
var ErrNotFound = errors.New("challenge: not found")

// Store persists challenges in a single SQLite table.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and bootstraps the schema.
// Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("challenge: open database: %w", err)
	}
	// One pooled connection at most: a second connection to a ":memory:"
	// path would see a fresh, empty database.
	db.SetMaxOpenConns(1)

	st := &Store{db: db}
	if err := st.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("challenge: migrate: %w", err)
	}
	return st, nil
}

// migrate creates the schema if it does not exist.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS challenges (
		id TEXT PRIMARY KEY,
		created_at INTEGER NOT NULL,
		alphabet TEXT NOT NULL,
		min_length INTEGER NOT NULL,
		max_length INTEGER NOT NULL,
		precision REAL NOT NULL,
		stability REAL NOT NULL,
		weights TEXT NOT NULL,
		patterns TEXT NOT NULL,
		machine TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_challenges_created ON challenges(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// storedWeights is the JSON view of the weight vector, decoupled from the
// core struct so the column format cannot drift with a rename there.
type storedWeights struct {
	Literal float64 `json:"literal"`
	Star    float64 `json:"star"`
	Union   float64 `json:"union"`
	Concat  float64 `json:"concat"`
}

// Save inserts the challenge, replacing any existing row with the same ID.
// A nil machine persists as NULL.
func (s *Store) Save(ctx context.Context, c *Challenge) error {
	weights, err := json.Marshal(storedWeights{
		Literal: c.Weights.Literal,
		Star:    c.Weights.Star,
		Union:   c.Weights.Union,
		Concat:  c.Weights.Concat,
	})
	if err != nil {
		return fmt.Errorf("challenge: encode weights: %w", err)
	}
	patterns, err := json.Marshal(c.Patterns)
	if err != nil {
		return fmt.Errorf("challenge: encode patterns: %w", err)
	}
	var machine any
	if c.Machine != nil {
		raw, err := json.Marshal(c.Machine)
		if err != nil {
			return fmt.Errorf("challenge: encode machine: %w", err)
		}
		machine = string(raw)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO challenges
		 (id, created_at, alphabet, min_length, max_length, precision, stability, weights, patterns, machine)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.CreatedAt.UnixNano(), c.Config.Alphabet,
		c.Config.MinLength, c.Config.MaxLength,
		c.Config.Precision, c.Config.StabilityThreshold,
		string(weights), string(patterns), machine,
	)
	if err != nil {
		return fmt.Errorf("challenge: save %s: %w", c.ID, err)
	}
	return nil
}

// Load fetches one challenge by ID.
func (s *Store) Load(ctx context.Context, id string) (*Challenge, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, alphabet, min_length, max_length, precision, stability, weights, patterns, machine
		 FROM challenges WHERE id = ?`, id)

	c, err := scanChallenge(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("challenge: load %s: %w", id, err)
	}
	return c, nil
}

// List returns challenges newest first. A non-positive limit returns all.
func (s *Store) List(ctx context.Context, limit int) ([]*Challenge, error) {
	query := `SELECT id, created_at, alphabet, min_length, max_length, precision, stability, weights, patterns, machine
	          FROM challenges ORDER BY created_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("challenge: list: %w", err)
	}
	defer rows.Close()

	var out []*Challenge
	for rows.Next() {
		c, err := scanChallenge(rows)
		if err != nil {
			return nil, fmt.Errorf("challenge: list: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("challenge: list: %w", err)
	}
	return out, nil
}

// Delete removes one challenge by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM challenges WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("challenge: delete %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("challenge: delete %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanChallenge decodes one row, rebuilding the machine through its
// validating JSON decoder.
func scanChallenge(row rowScanner) (*Challenge, error) {
	var (
		c         Challenge
		createdNs int64
		weights   string
		patterns  string
		machine   sql.NullString
	)
	err := row.Scan(&c.ID, &createdNs, &c.Config.Alphabet,
		&c.Config.MinLength, &c.Config.MaxLength,
		&c.Config.Precision, &c.Config.StabilityThreshold,
		&weights, &patterns, &machine)
	if err != nil {
		return nil, err
	}
	c.CreatedAt = time.Unix(0, createdNs).UTC()

	var sw storedWeights
	if err := json.Unmarshal([]byte(weights), &sw); err != nil {
		return nil, fmt.Errorf("decode weights: %w", err)
	}
	c.Weights = regexgen.Weights{
		Literal: sw.Literal,
		Star:    sw.Star,
		Union:   sw.Union,
		Concat:  sw.Concat,
	}
	if err := json.Unmarshal([]byte(patterns), &c.Patterns); err != nil {
		return nil, fmt.Errorf("decode patterns: %w", err)
	}
	if machine.Valid {
		var m dfa.DFA
		if err := json.Unmarshal([]byte(machine.String), &m); err != nil {
			return nil, fmt.Errorf("decode machine: %w", err)
		}
		c.Machine = &m
	}
	return &c, nil
}
