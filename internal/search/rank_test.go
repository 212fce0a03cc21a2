// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"testing"

	"github.com/meshintel/commandbrain/pkg/types"
)

func TestClampPerPage(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-3, MinPerPage},
		{0, MinPerPage},
		{4, MinPerPage},
		{5, 5},
		{10, 10},
		{25, 25},
		{26, MaxPerPage},
		{1000, MaxPerPage},
	}
	for _, tt := range tests {
		if got := ClampPerPage(tt.in); got != tt.want {
			t.Errorf("ClampPerPage(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRankAndPageOrdering(t *testing.T) {
	candidates := []types.Entry{
		{Name: "ripgrep"}, // substring
		{Name: "grep"},    // exact
		{Name: "pgrep"},   // substring, ties with ripgrep
		{Name: "awk", Description: "Pattern scanning like grep"}, // description only
	}

	page, total := RankAndPage(candidates, "grep", 1, 10)

	if total != 4 {
		t.Fatalf("total = %d, want 4", total)
	}
	want := []string{"grep", "pgrep", "ripgrep", "awk"}
	for i, name := range want {
		if page[i].Name != name {
			t.Errorf("page[%d] = %q, want %q", i, page[i].Name, name)
		}
	}
	if page[0].Score <= page[2].Score {
		t.Errorf("exact match score %d should exceed substring score %d",
			page[0].Score, page[2].Score)
	}
}

func TestRankAndPagePaging(t *testing.T) {
	var candidates []types.Entry
	for _, n := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		candidates = append(candidates, types.Entry{Name: n})
	}

	page1, total := RankAndPage(candidates, "xyz", 1, 5)
	if total != 7 || len(page1) != 5 {
		t.Fatalf("page 1: total = %d, len = %d, want 7, 5", total, len(page1))
	}

	page2, _ := RankAndPage(candidates, "xyz", 2, 5)
	if len(page2) != 2 {
		t.Fatalf("page 2: len = %d, want 2", len(page2))
	}
	if page1[0].Name == page2[0].Name {
		t.Errorf("pages overlap at %q", page1[0].Name)
	}

	// Out-of-range pages report the total but return nothing.
	page9, total := RankAndPage(candidates, "xyz", 9, 5)
	if len(page9) != 0 || total != 7 {
		t.Errorf("page 9: len = %d, total = %d, want 0, 7", len(page9), total)
	}
}

func TestRankAndPageEmptyCandidates(t *testing.T) {
	page, total := RankAndPage(nil, "anything", 1, 10)
	if len(page) != 0 || total != 0 {
		t.Errorf("len = %d, total = %d, want 0, 0", len(page), total)
	}
}
