// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"sort"

	"github.com/meshintel/commandbrain/pkg/types"
)

// Page size bounds enforced by ClampPerPage.
const (
	MinPerPage = 5
	MaxPerPage = 25
)

// ClampPerPage forces a requested page size into [MinPerPage, MaxPerPage].
// Callers clamp before building a Request; RankAndPage trusts its input.
func ClampPerPage(n int) int {
	if n < MinPerPage {
		return MinPerPage
	}
	if n > MaxPerPage {
		return MaxPerPage
	}
	return n
}

// RankAndPage scores every candidate for term, sorts by score descending
// with ties broken by name ascending, and slices out the 1-based page.
// The second return value is the total candidate count before paging.
// An out-of-range page yields an empty slice, never an error.
func RankAndPage(candidates []types.Entry, term string, page, perPage int) ([]types.ScoredEntry, int) {
	scored := make([]types.ScoredEntry, len(candidates))
	for i, e := range candidates {
		scored[i] = types.ScoredEntry{Entry: e, Score: Score(e, term)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Name < scored[j].Name
	})

	total := len(scored)
	if page < 1 {
		page = 1
	}
	start := (page - 1) * perPage
	if perPage <= 0 || start >= total {
		return nil, total
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return scored[start:end], total
}
