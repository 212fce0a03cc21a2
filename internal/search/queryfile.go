// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/meshintel/commandbrain/pkg/types"
)

// QueryFile is the on-disk representation of a search and its results.
// A search can be saved to a file and reviewed later without re-running
// it against the catalog.
type QueryFile struct {
	Query   QueryParams         `yaml:"query"`
	Results []types.ScoredEntry `yaml:"results"`
	Summary QuerySummary        `yaml:"summary"`
}

// QueryParams stores the search parameters in a serializable form.
type QueryParams struct {
	Term    string `yaml:"term"`
	Mode    string `yaml:"mode"`
	Page    int    `yaml:"page"`
	PerPage int    `yaml:"per_page"`
}

// QuerySummary stores result statistics and a timestamp.
type QuerySummary struct {
	Total      int       `yaml:"total"`
	Related    []string  `yaml:"related,omitempty"`
	DidYouMean []string  `yaml:"did_you_mean,omitempty"`
	Timestamp  time.Time `yaml:"timestamp"`
}

// WriteQueryFile saves a search request and its result page to a YAML file.
func WriteQueryFile(path string, req Request, res Result) error {
	qf := QueryFile{
		Query: QueryParams{
			Term:    req.Term,
			Mode:    string(req.Mode),
			Page:    req.Page,
			PerPage: req.PerPage,
		},
		Results: res.Entries,
		Summary: QuerySummary{
			Total:      res.Total,
			Related:    res.Related,
			DidYouMean: res.DidYouMean,
			Timestamp:  time.Now(),
		},
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved search from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}
