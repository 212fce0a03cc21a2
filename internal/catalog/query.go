// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/meshintel/commandbrain/pkg/types"
)

// columnNames maps the typed column identifiers to SQL identifiers.
// Query text is assembled only from this table, never from caller input.
var columnNames = map[types.Column]string{
	types.ColName:        "name",
	types.ColCategory:    "category",
	types.ColDescription: "description",
	types.ColExamples:    "examples",
	types.ColRelated:     "related_commands",
	types.ColNotes:       "notes",
	types.ColTags:        "tags",
}

// likePattern wraps a substring in wildcards. SQLite LIKE is
// case-insensitive for ASCII, matching the search contract.
func likePattern(substr string) string {
	return "%" + substr + "%"
}

// QueryByColumn returns entries whose column contains substr, ordered
// by name.
func (s *Store) QueryByColumn(ctx context.Context, col types.Column, substr string) ([]types.Entry, error) {
	sqlCol, ok := columnNames[col]
	if !ok {
		return nil, fmt.Errorf("unknown column %q", col)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+entryColumns+` FROM commands WHERE `+sqlCol+` LIKE ? ORDER BY name`,
		likePattern(substr))
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", sqlCol, err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

// QueryAnyColumn returns entries where any of the given columns
// contains substr, ordered by name.
func (s *Store) QueryAnyColumn(ctx context.Context, cols []types.Column, substr string) ([]types.Entry, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("no columns given")
	}

	var preds []string
	var args []any
	for _, col := range cols {
		sqlCol, ok := columnNames[col]
		if !ok {
			return nil, fmt.Errorf("unknown column %q", col)
		}
		preds = append(preds, sqlCol+" LIKE ?")
		args = append(args, likePattern(substr))
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+entryColumns+` FROM commands WHERE `+strings.Join(preds, " OR ")+` ORDER BY name`,
		args...)
	if err != nil {
		return nil, fmt.Errorf("querying columns: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

// ListNames returns every entry name in ascending order.
func (s *Store) ListNames(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM commands ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// CategoryCount pairs a category label with its entry count.
type CategoryCount struct {
	Category string
	Count    int
}

// Categories returns the distinct categories with entry counts, ordered
// by category.
func (s *Store) Categories(ctx context.Context) ([]CategoryCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT category, COUNT(*) FROM commands GROUP BY category ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var out []CategoryCount
	for rows.Next() {
		var cc CategoryCount
		if err := rows.Scan(&cc.Category, &cc.Count); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		out = append(out, cc)
	}
	return out, rows.Err()
}

// Stats summarizes the catalog.
type Stats struct {
	Entries    int
	Categories int
}

// CountStats returns entry and category totals.
func (s *Store) CountStats(ctx context.Context) (Stats, error) {
	var st Stats
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COUNT(DISTINCT category) FROM commands`,
	).Scan(&st.Entries, &st.Categories); err != nil {
		return Stats{}, fmt.Errorf("counting entries: %w", err)
	}
	return st, nil
}

// All returns the full catalog ordered by name, for export.
func (s *Store) All(ctx context.Context) ([]types.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+entryColumns+` FROM commands ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

func collectEntries(rows *sql.Rows) ([]types.Entry, error) {
	var entries []types.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
