// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/meshintel/commandbrain/pkg/types"
)

const (
	// defaultSuggestions caps the did-you-mean list.
	defaultSuggestions = 5

	// similarityCutoff is the minimum sequence-similarity ratio for a
	// name to qualify as a did-you-mean suggestion.
	similarityCutoff = 0.6

	// maxRelated caps the "also try" list.
	maxRelated = 8

	// dynamicCandidateWindow bounds how many candidates feed the dynamic
	// related-search fallback.
	dynamicCandidateWindow = 20

	// dynamicTagTokens is how many leading tag tokens each candidate
	// contributes to the dynamic fallback.
	dynamicTagTokens = 3
)

// SuggestNames returns up to n entry names whose similarity to term is
// at least similarityCutoff, most similar first. n <= 0 uses the
// default cap. Intended for the zero-result path only.
func SuggestNames(term string, names []string, n int) []string {
	if n <= 0 {
		n = defaultSuggestions
	}

	t := strings.ToLower(strings.TrimSpace(term))
	if t == "" || len(names) == 0 {
		return nil
	}
	termSeq := strings.Split(t, "")

	type match struct {
		name  string
		ratio float64
	}
	var matches []match
	for _, name := range names {
		m := difflib.NewMatcher(termSeq, strings.Split(strings.ToLower(name), ""))
		if r := m.Ratio(); r >= similarityCutoff {
			matches = append(matches, match{name: name, ratio: r})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].ratio > matches[j].ratio
	})

	if len(matches) > n {
		matches = matches[:n]
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.name
	}
	return out
}

// RelatedSearches resolves "also try" suggestions for term. Resolution
// order: exact taxonomy match (key or alias), partial taxonomy matches,
// then a dynamic fallback derived from the candidates' categories and
// leading tag tokens. The result never contains the term itself, is
// deduplicated case-insensitively, and is capped at maxRelated. An
// empty topics table or empty candidate set degrades gracefully.
func RelatedSearches(term string, topics []types.Topic, candidates []types.Entry) []string {
	t := strings.ToLower(strings.TrimSpace(term))
	if t == "" {
		return nil
	}

	for _, topic := range topics {
		if topicEquals(topic, t) {
			return dedupCap(topic.Related, t, maxRelated)
		}
	}

	var partial []string
	for _, topic := range topics {
		if topicPartial(topic, t) {
			partial = append(partial, topic.Related...)
		}
	}
	if len(partial) > 0 {
		return dedupCap(partial, t, maxRelated)
	}

	return dynamicRelated(t, candidates)
}

// topicEquals reports whether t equals the topic key or any alias,
// case-insensitively.
func topicEquals(topic types.Topic, t string) bool {
	if strings.ToLower(topic.Key) == t {
		return true
	}
	for _, a := range topic.Aliases {
		if strings.ToLower(a) == t {
			return true
		}
	}
	return false
}

// topicPartial reports whether t is a substring of, or contains, the
// topic key or any alias.
func topicPartial(topic types.Topic, t string) bool {
	key := strings.ToLower(topic.Key)
	if strings.Contains(key, t) || strings.Contains(t, key) {
		return true
	}
	for _, a := range topic.Aliases {
		alias := strings.ToLower(a)
		if strings.Contains(alias, t) || strings.Contains(t, alias) {
			return true
		}
	}
	return false
}

// dynamicRelated derives suggestions from the candidates' normalized
// categories and their first few tag tokens.
func dynamicRelated(t string, candidates []types.Entry) []string {
	if len(candidates) > dynamicCandidateWindow {
		candidates = candidates[:dynamicCandidateWindow]
	}

	var out []string
	seen := map[string]bool{t: true}

	add := func(s string) {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if s == "" || seen[key] || len(out) >= maxRelated {
			return
		}
		seen[key] = true
		out = append(out, s)
	}

	for _, e := range candidates {
		add(strings.ToLower(categoryNormalizer.Replace(e.Category)))
	}
	for _, e := range candidates {
		tokens := strings.Split(e.Tags, ",")
		if len(tokens) > dynamicTagTokens {
			tokens = tokens[:dynamicTagTokens]
		}
		for _, tok := range tokens {
			add(strings.ToLower(tok))
		}
	}

	return out
}

// dedupCap removes duplicates and the search term itself, preserving
// order, capped at max.
func dedupCap(in []string, t string, max int) []string {
	var out []string
	seen := map[string]bool{t: true}
	for _, s := range in {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if s == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
		if len(out) >= max {
			break
		}
	}
	return out
}
