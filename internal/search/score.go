// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"strings"

	"github.com/meshintel/commandbrain/pkg/types"
)

// coreTagsLen splits an entry's tag field into the hand-authored "core"
// prefix and the "extended" slang suffix appended by enrichment. Core
// tags outweigh extended ones. Measured in characters, not bytes, so
// the split never lands inside a multibyte rune.
const coreTagsLen = 120

// Field weights. Name hits dominate: an exact name match outweighs any
// single lower-field hit several times over.
const (
	weightNameExact     = 100
	weightNameSubstring = 60
	weightNameWord      = 55

	weightCategoryExact   = 45
	weightCategoryPartial = 30
	weightCategoryWord    = 20

	weightCoreTagsPhrase = 35
	weightCoreTagsWord   = 25

	weightDescriptionPhrase  = 20
	weightDescriptionLeading = 10
	weightDescriptionWord    = 10

	weightExtTagsPhrase = 12
	weightExtTagsWord   = 6

	weightNotesPhrase = 8
	weightNotesWord   = 4

	weightRelatedPhrase = 5
)

// descriptionLeadWindow is the first-occurrence index below which a
// description phrase match earns the leading bonus.
const descriptionLeadWindow = 40

var categoryNormalizer = strings.NewReplacer("-", " ", "_", " ")

// Score computes the relevance of entry e for the raw search term. All
// field clauses accumulate into one total; within a single field the
// exact/substring/word checks are mutually exclusive. Pure and
// non-panicking for any input, including an empty term.
func Score(e types.Entry, term string) int {
	t := strings.ToLower(strings.TrimSpace(term))
	words := queryWords(t)

	score := 0

	name := strings.ToLower(e.Name)
	switch {
	case name == t:
		score += weightNameExact
	case strings.Contains(name, t):
		score += weightNameSubstring
	default:
		for _, w := range words {
			if w == name {
				score += weightNameWord
				break
			}
		}
	}

	category := strings.ToLower(categoryNormalizer.Replace(e.Category))
	switch {
	case category == "":
		// no category, no category credit
	case category == t:
		score += weightCategoryExact
	case strings.Contains(category, t) || strings.Contains(t, category):
		score += weightCategoryPartial
	default:
		if anyWordIn(category, words) {
			score += weightCategoryWord
		}
	}

	tags := strings.ToLower(e.Tags)
	coreTags, extTags := tags, ""
	if runes := []rune(tags); len(runes) > coreTagsLen {
		coreTags, extTags = string(runes[:coreTagsLen]), string(runes[coreTagsLen:])
	}
	if strings.Contains(coreTags, t) {
		score += weightCoreTagsPhrase
	} else if anyWordIn(coreTags, words) {
		score += weightCoreTagsWord
	}

	description := strings.ToLower(e.Description)
	if idx := strings.Index(description, t); idx >= 0 {
		score += weightDescriptionPhrase
		if idx < descriptionLeadWindow {
			score += weightDescriptionLeading
		}
	} else if anyWordIn(description, words) {
		score += weightDescriptionWord
	}

	if extTags != "" {
		if strings.Contains(extTags, t) {
			score += weightExtTagsPhrase
		} else if anyWordIn(extTags, words) {
			score += weightExtTagsWord
		}
	}

	notes := strings.ToLower(e.Notes)
	if strings.Contains(notes, t) {
		score += weightNotesPhrase
	} else if anyWordIn(notes, words) {
		score += weightNotesWord
	}

	if strings.Contains(strings.ToLower(e.RelatedCommands), t) {
		score += weightRelatedPhrase
	}

	return score
}

// queryWords splits a normalized term on whitespace, discarding tokens
// of length <= 1.
func queryWords(t string) []string {
	var words []string
	for _, w := range strings.Fields(t) {
		if len(w) > 1 {
			words = append(words, w)
		}
	}
	return words
}

// anyWordIn reports whether any query word of length > 2 is contained
// in the field text.
func anyWordIn(field string, words []string) bool {
	for _, w := range words {
		if len(w) > 2 && strings.Contains(field, w) {
			return true
		}
	}
	return false
}
