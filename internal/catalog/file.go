// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/meshintel/commandbrain/pkg/types"
)

// File is the on-disk YAML representation of a catalog dump, used by
// the import and export commands.
type File struct {
	Exported time.Time     `yaml:"exported"`
	Count    int           `yaml:"count"`
	Entries  []types.Entry `yaml:"entries"`
}

// WriteFile dumps entries to a YAML catalog file at path.
func WriteFile(path string, entries []types.Entry) error {
	f := File{
		Exported: time.Now(),
		Count:    len(entries),
		Entries:  entries,
	}
	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("marshaling catalog file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadFile loads a catalog file from path and validates its entries.
func ReadFile(path string) ([]types.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}

	for i, e := range f.Entries {
		if e.Name == "" || e.Category == "" || e.Description == "" {
			return nil, fmt.Errorf("entry %d: name, category, and description are required", i+1)
		}
	}
	return f.Entries, nil
}
