// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"strings"
	"testing"

	"github.com/meshintel/commandbrain/pkg/types"
)

func TestScoreNameTiers(t *testing.T) {
	tests := []struct {
		name  string
		entry types.Entry
		term  string
		want  int
	}{
		{
			name:  "exact name match",
			entry: types.Entry{Name: "grep"},
			term:  "grep",
			want:  weightNameExact,
		},
		{
			name:  "name substring match",
			entry: types.Entry{Name: "ripgrep"},
			term:  "grep",
			want:  weightNameSubstring,
		},
		{
			name:  "query word equals name",
			entry: types.Entry{Name: "tar"},
			term:  "extract tar",
			want:  weightNameWord,
		},
		{
			name:  "no name relation",
			entry: types.Entry{Name: "ls"},
			term:  "grep",
			want:  0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.entry, tt.term); got != tt.want {
				t.Errorf("Score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreCategoryNormalization(t *testing.T) {
	tests := []struct {
		name  string
		entry types.Entry
		term  string
		want  int
	}{
		{
			name:  "hyphenated category matches spaced term exactly",
			entry: types.Entry{Category: "file-operations"},
			term:  "file operations",
			want:  weightCategoryExact,
		},
		{
			name:  "underscored category matches too",
			entry: types.Entry{Category: "file_operations"},
			term:  "file operations",
			want:  weightCategoryExact,
		},
		{
			name:  "category contained in term",
			entry: types.Entry{Category: "network"},
			term:  "networking",
			want:  weightCategoryPartial,
		},
		{
			name:  "query word inside category",
			entry: types.Entry{Category: "text-processing"},
			term:  "log processing",
			want:  weightCategoryWord,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.entry, tt.term); got != tt.want {
				t.Errorf("Score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreTagSplit(t *testing.T) {
	// Term in the first 120 characters of the tag field earns the core
	// weight; the same term past the split earns the extended weight.
	core := types.Entry{Tags: "port scan, network"}
	if got := Score(core, "port scan"); got != weightCoreTagsPhrase {
		t.Errorf("core tag phrase: Score = %d, want %d", got, weightCoreTagsPhrase)
	}

	ext := types.Entry{Tags: strings.Repeat("x", coreTagsLen) + "port scan"}
	if got := Score(ext, "port scan"); got != weightExtTagsPhrase {
		t.Errorf("extended tag phrase: Score = %d, want %d", got, weightExtTagsPhrase)
	}

	extWord := types.Entry{Tags: strings.Repeat("x", coreTagsLen) + "network scan"}
	if got := Score(extWord, "port scan"); got != weightExtTagsWord {
		t.Errorf("extended tag word: Score = %d, want %d", got, weightExtTagsWord)
	}
}

func TestScoreTagSplitCountsCharacters(t *testing.T) {
	// 60 two-byte runes plus the phrase is 69 characters, well inside the
	// core window even though it exceeds it in bytes.
	e := types.Entry{Tags: strings.Repeat("é", 60) + "port scan"}
	if got := Score(e, "port scan"); got != weightCoreTagsPhrase {
		t.Errorf("multibyte core tags: Score = %d, want %d", got, weightCoreTagsPhrase)
	}
}

func TestScoreDescriptionLeadBonus(t *testing.T) {
	leading := types.Entry{Description: "scan ports on a network"}
	if got := Score(leading, "scan"); got != weightDescriptionPhrase+weightDescriptionLeading {
		t.Errorf("leading phrase: Score = %d, want %d",
			got, weightDescriptionPhrase+weightDescriptionLeading)
	}

	late := types.Entry{Description: "this utility is mostly used by operators to scan things"}
	if got := Score(late, "scan"); got != weightDescriptionPhrase {
		t.Errorf("late phrase: Score = %d, want %d", got, weightDescriptionPhrase)
	}
}

func TestScoreLowerFields(t *testing.T) {
	notes := types.Entry{Notes: "use scan mode for bulk runs"}
	if got := Score(notes, "scan"); got != weightNotesPhrase {
		t.Errorf("notes phrase: Score = %d, want %d", got, weightNotesPhrase)
	}

	related := types.Entry{RelatedCommands: "nmap, masscan"}
	if got := Score(related, "nmap"); got != weightRelatedPhrase {
		t.Errorf("related phrase: Score = %d, want %d", got, weightRelatedPhrase)
	}
}

func TestScoreAccumulatesAcrossFields(t *testing.T) {
	e := types.Entry{
		Name:        "masscan",
		Category:    "port-scanning",
		Description: "Fast TCP port scanner",
		Tags:        "scan, fast",
	}
	// name substring + category partial + core tag phrase +
	// description phrase with lead bonus
	want := weightNameSubstring + weightCategoryPartial +
		weightCoreTagsPhrase + weightDescriptionPhrase + weightDescriptionLeading
	if got := Score(e, "scan"); got != want {
		t.Errorf("Score = %d, want %d", got, want)
	}
}

func TestScoreExactNameOutranksMentions(t *testing.T) {
	// An entry named after the term beats entries that merely mention it
	// in their tags, description, notes, or related commands.
	exact := types.Entry{Name: "nmap"}
	mention := types.Entry{
		Name:            "masscan",
		Category:        "scanning",
		Description:     "companion scanner for nmap",
		Tags:            "nmap helper",
		Notes:           "pairs with nmap",
		RelatedCommands: "nmap",
	}
	if Score(exact, "nmap") <= Score(mention, "nmap") {
		t.Errorf("exact name (%d) should outrank mentions (%d)",
			Score(exact, "nmap"), Score(mention, "nmap"))
	}
}

func TestScoreOddInputsDoNotPanic(t *testing.T) {
	entries := []types.Entry{
		{},
		{Name: "grep", Category: "text", Description: "d", Tags: "t", Notes: "n"},
	}
	for _, e := range entries {
		for _, term := range []string{"", "   ", "a", "multi word query here"} {
			_ = Score(e, term)
		}
	}
}
