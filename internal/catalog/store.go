// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists command entries in a single-table SQLite
// database and exposes the typed queries the search pipeline consumes.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/meshintel/commandbrain/pkg/types"
)

// ErrExists is returned by Insert when an entry with the same name is
// already stored.
var ErrExists = errors.New("entry already exists")

// ErrNotFound is returned by update operations targeting a name that is
// not in the catalog.
var ErrNotFound = errors.New("entry not found")

// Store manages the catalog SQLite database.
type Store struct {
	db   *sql.DB
	path string
}

// Create opens (creating if necessary) the catalog database at path and
// ensures the schema exists.
func Create(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	s, err := open(path)
	if err != nil {
		return nil, err
	}
	if err := s.createSchema(); err != nil {
		s.db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Open opens an existing catalog database. A missing file is an error:
// the caller is expected to tell the user to run setup first.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("catalog database %s not found: run \"cb setup\" first", path)
		}
		return nil, fmt.Errorf("checking database: %w", err)
	}
	return open(path)
}

func open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// DB exposes the underlying connection for the interactive SQL shell.
// Application code goes through the typed methods.
func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS commands (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			category TEXT NOT NULL,
			description TEXT NOT NULL,
			usage TEXT,
			examples TEXT,
			related_commands TEXT,
			notes TEXT,
			tags TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_commands_name ON commands(name)`,
		`CREATE INDEX IF NOT EXISTS idx_commands_category ON commands(category)`,
		`CREATE INDEX IF NOT EXISTS idx_commands_tags ON commands(tags)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

const entryColumns = `id, name, category, description,
	COALESCE(usage, ''), COALESCE(examples, ''), COALESCE(related_commands, ''),
	COALESCE(notes, ''), COALESCE(tags, '')`

func scanEntry(row interface{ Scan(...any) error }) (types.Entry, error) {
	var e types.Entry
	err := row.Scan(&e.ID, &e.Name, &e.Category, &e.Description,
		&e.Usage, &e.Examples, &e.RelatedCommands, &e.Notes, &e.Tags)
	return e, err
}

// Insert stores a new entry. Name, category, and description are
// required; a duplicate name yields ErrExists.
func (s *Store) Insert(ctx context.Context, e types.Entry) error {
	if e.Name == "" || e.Category == "" || e.Description == "" {
		return fmt.Errorf("entry requires name, category, and description")
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO commands (name, category, description, usage, examples, related_commands, notes, tags)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Name, e.Category, e.Description, e.Usage, e.Examples, e.RelatedCommands, e.Notes, e.Tags,
	)
	if err != nil {
		var serr sqlite3.Error
		if errors.As(err, &serr) && serr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return fmt.Errorf("%q: %w", e.Name, ErrExists)
		}
		return fmt.Errorf("inserting entry %q: %w", e.Name, err)
	}
	return nil
}

// Seed bulk-loads entries with insert-or-ignore semantics and returns
// how many rows were actually inserted. Existing names are left alone.
func (s *Store) Seed(ctx context.Context, entries []types.Entry) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO commands (name, category, description, usage, examples, related_commands, notes, tags)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing seed insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, e := range entries {
		res, err := stmt.ExecContext(ctx,
			e.Name, e.Category, e.Description, e.Usage, e.Examples, e.RelatedCommands, e.Notes, e.Tags)
		if err != nil {
			return inserted, fmt.Errorf("seeding entry %q: %w", e.Name, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return inserted, fmt.Errorf("committing seed: %w", err)
	}
	return inserted, nil
}

// GetByName returns the entry with the exact (case-sensitive) name, or
// ErrNotFound.
func (s *Store) GetByName(ctx context.Context, name string) (types.Entry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+entryColumns+` FROM commands WHERE name = ?`, name)
	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Entry{}, fmt.Errorf("%q: %w", name, ErrNotFound)
		}
		return types.Entry{}, fmt.Errorf("looking up %q: %w", name, err)
	}
	return e, nil
}

// updatableColumns whitelists the fields user-driven updates may touch.
var updatableColumns = map[types.Column]string{
	types.ColExamples: "examples",
	types.ColNotes:    "notes",
	types.ColTags:     "tags",
}

// UpdateFields sets the given columns on the named entry. Only
// examples, notes, and tags are updatable; anything else is rejected.
func (s *Store) UpdateFields(ctx context.Context, name string, fields map[types.Column]string) error {
	if len(fields) == 0 {
		return nil
	}

	var sets []string
	var args []any
	for _, col := range []types.Column{types.ColExamples, types.ColNotes, types.ColTags} {
		v, ok := fields[col]
		if !ok {
			continue
		}
		sets = append(sets, updatableColumns[col]+" = ?")
		args = append(args, v)
	}
	if len(sets) != len(fields) {
		return fmt.Errorf("only examples, notes, and tags are updatable")
	}

	args = append(args, name)
	res, err := s.db.ExecContext(ctx,
		`UPDATE commands SET `+strings.Join(sets, ", ")+` WHERE name = ?`, args...)
	if err != nil {
		return fmt.Errorf("updating %q: %w", name, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return nil
}

// AppendTags merges newTags into the named entry's tag field. Tags
// already present (case-insensitive, comma-token comparison) are not
// appended again, so repeated enrichment runs are idempotent. Returns
// whether the stored field changed.
func (s *Store) AppendTags(ctx context.Context, name, newTags string) (bool, error) {
	e, err := s.GetByName(ctx, name)
	if err != nil {
		return false, err
	}

	existing := make(map[string]bool)
	for _, tok := range strings.Split(e.Tags, ",") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok != "" {
			existing[tok] = true
		}
	}

	var added []string
	for _, tok := range strings.Split(newTags, ",") {
		trimmed := strings.TrimSpace(tok)
		if trimmed == "" || existing[strings.ToLower(trimmed)] {
			continue
		}
		existing[strings.ToLower(trimmed)] = true
		added = append(added, trimmed)
	}
	if len(added) == 0 {
		return false, nil
	}

	combined := strings.Join(added, ", ")
	if e.Tags != "" {
		combined = e.Tags + ", " + combined
	}

	if err := s.UpdateFields(ctx, name, map[types.Column]string{types.ColTags: combined}); err != nil {
		return false, err
	}
	return true, nil
}
