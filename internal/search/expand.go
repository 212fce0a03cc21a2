// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/meshintel/commandbrain/pkg/types"
)

// allModeColumns are the fields the broad any-of query matches in
// ModeAll.
var allModeColumns = []types.Column{
	types.ColName,
	types.ColDescription,
	types.ColTags,
	types.ColRelated,
	types.ColCategory,
}

// perWordColumns are the fields each individual word of a multi-word
// phrase is matched against during supplemental expansion.
var perWordColumns = []types.Column{
	types.ColName,
	types.ColDescription,
	types.ColTags,
	types.ColCategory,
}

// Expand issues the pattern queries for term under the given mode and
// returns the merged candidate set, deduplicated by entry ID. Scoring
// happens afterward; Expand itself imposes no ranking.
//
// In ModeAll a multi-word term additionally queries each word on its
// own, recovering entries where no single field contains the whole
// phrase.
func Expand(ctx context.Context, st Store, term string, mode Mode) ([]types.Entry, error) {
	switch mode {
	case ModeName:
		return st.QueryByColumn(ctx, types.ColName, term)
	case ModeCategory:
		return st.QueryByColumn(ctx, types.ColCategory, term)
	case ModeTags:
		return st.QueryByColumn(ctx, types.ColTags, term)
	case ModeDescription:
		return st.QueryAnyColumn(ctx, []types.Column{types.ColDescription, types.ColNotes}, term)
	}

	entries, err := st.QueryAnyColumn(ctx, allModeColumns, term)
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]bool, len(entries))
	for _, e := range entries {
		seen[e.ID] = true
	}

	words := queryWords(strings.ToLower(strings.TrimSpace(term)))
	if len(words) < 2 {
		return entries, nil
	}

	for _, w := range words {
		matches, err := st.QueryAnyColumn(ctx, perWordColumns, w)
		if err != nil {
			return nil, fmt.Errorf("querying word %q: %w", w, err)
		}
		for _, e := range matches {
			if !seen[e.ID] {
				seen[e.ID] = true
				entries = append(entries, e)
			}
		}
	}

	return entries, nil
}
