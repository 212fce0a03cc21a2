// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the commandbrain catalog.
package types

// Entry is one searchable catalog record describing a command-line tool.
// Name is unique across the catalog; Category and Description are never
// empty for a stored entry.
type Entry struct {
	// ID is the surrogate key assigned by the store at creation.
	ID int64 `json:"id" yaml:"id"`

	// Name is the command or tool name, e.g. "nmap".
	Name string `json:"name" yaml:"name"`

	// Category is a free-text grouping label, e.g. "Network-Scanning".
	Category string `json:"category" yaml:"category"`

	// Description is a one-line summary of what the command does.
	Description string `json:"description" yaml:"description"`

	// Usage is an optional syntax string, e.g. "nmap [options] target".
	Usage string `json:"usage,omitempty" yaml:"usage,omitempty"`

	// Examples holds newline-separated literal invocations.
	Examples string `json:"examples,omitempty" yaml:"examples,omitempty"`

	// RelatedCommands is comma-separated free text naming similar tools.
	RelatedCommands string `json:"related_commands,omitempty" yaml:"related_commands,omitempty"`

	// Notes holds free-text tips and caveats.
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`

	// Tags is comma-separated free text. The hand-authored prefix is the
	// "core" portion; slang terms appended by enrichment follow it.
	Tags string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// ScoredEntry pairs an Entry with its relevance score for one query.
// It is ephemeral: computed per search, never persisted.
type ScoredEntry struct {
	Entry `yaml:",inline"`

	// Score orders results; higher is more relevant.
	Score int `json:"score" yaml:"score"`
}

// Column identifies a searchable text column of the catalog table.
// The store maps these to SQL identifiers; callers never pass raw
// column names.
type Column string

const (
	ColName        Column = "name"
	ColCategory    Column = "category"
	ColDescription Column = "description"
	ColExamples    Column = "examples"
	ColRelated     Column = "related_commands"
	ColNotes       Column = "notes"
	ColTags        Column = "tags"
)

// Topic is one taxonomy record: a canonical topic key, its aliases, and
// the related-search strings shown when the topic is searched. Lookups
// over keys and aliases are case-insensitive.
type Topic struct {
	Key     string   `json:"key" yaml:"key"`
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Related []string `json:"related" yaml:"related"`
}
