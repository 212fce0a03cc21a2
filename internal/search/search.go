// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search implements the catalog search pipeline: query expansion
// against the entry store, relevance scoring, ranking with pagination,
// and the suggestion fallbacks shown when a search comes up empty.
//
// Every function here is a pure transformation of its inputs plus store
// reads; the package keeps no state between calls.
package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/meshintel/commandbrain/pkg/types"
)

// Store is the narrow read interface the search pipeline consumes. The
// catalog package provides the SQLite-backed implementation; tests use
// in-memory stubs.
type Store interface {
	// QueryByColumn returns entries whose column contains substr,
	// case-insensitive, wildcards on both ends, ordered by name.
	QueryByColumn(ctx context.Context, col types.Column, substr string) ([]types.Entry, error)

	// QueryAnyColumn returns entries where any of the columns contains
	// substr (OR semantics), ordered by name.
	QueryAnyColumn(ctx context.Context, cols []types.Column, substr string) ([]types.Entry, error)

	// ListNames returns every entry name, ordered.
	ListNames(ctx context.Context) ([]string, error)
}

// Mode restricts which fields a query expands against.
type Mode string

const (
	ModeAll         Mode = "all"
	ModeName        Mode = "name"
	ModeCategory    Mode = "category"
	ModeTags        Mode = "tags"
	ModeDescription Mode = "description"
)

// ParseMode maps a user-supplied --type value to a Mode. Unknown or
// empty values fall back to ModeAll rather than failing.
func ParseMode(s string) Mode {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeName:
		return ModeName
	case ModeCategory:
		return ModeCategory
	case ModeTags:
		return ModeTags
	case ModeDescription:
		return ModeDescription
	default:
		return ModeAll
	}
}

// Request holds one search invocation's parameters. PerPage must already
// be clamped by the caller (ClampPerPage); Page is 1-based.
type Request struct {
	Term    string
	Mode    Mode
	Page    int
	PerPage int
}

// Result is the ranked, paginated outcome surfaced to the display layer.
type Result struct {
	// Entries is the requested page of scored results.
	Entries []types.ScoredEntry

	// Total counts all candidates before paging.
	Total int

	// Page and PerPage echo the request.
	Page    int
	PerPage int

	// Related holds "also try" suggestions from the taxonomy (or derived
	// from the candidates when the taxonomy has no match).
	Related []string

	// DidYouMean holds fuzzy name suggestions, populated only when the
	// search matched nothing.
	DidYouMean []string
}

// Run executes the search pipeline: expand, score, sort, page, suggest.
// A search matching zero entries is not an error; Total is 0 and
// DidYouMean carries close name matches.
func Run(ctx context.Context, st Store, topics []types.Topic, req Request) (Result, error) {
	candidates, err := Expand(ctx, st, req.Term, req.Mode)
	if err != nil {
		return Result{}, fmt.Errorf("expanding query: %w", err)
	}

	page, total := RankAndPage(candidates, req.Term, req.Page, req.PerPage)

	res := Result{
		Entries: page,
		Total:   total,
		Page:    req.Page,
		PerPage: req.PerPage,
		Related: RelatedSearches(req.Term, topics, candidates),
	}

	if total == 0 {
		names, err := st.ListNames(ctx)
		if err != nil {
			return Result{}, fmt.Errorf("listing names for suggestions: %w", err)
		}
		res.DidYouMean = SuggestNames(req.Term, names, 0)
	}

	return res, nil
}
