// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"path/filepath"
	"testing"

	"github.com/meshintel/commandbrain/pkg/types"
)

func TestQueryFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.yaml")

	req := Request{Term: "port scan", Mode: ModeAll, Page: 1, PerPage: 10}
	res := Result{
		Entries: []types.ScoredEntry{
			{Entry: types.Entry{ID: 2, Name: "nmap", Category: "Network-Scanning",
				Description: "Network exploration and port scanning tool"}, Score: 89},
		},
		Total:   2,
		Page:    1,
		PerPage: 10,
		Related: []string{"service detection"},
	}

	if err := WriteQueryFile(path, req, res); err != nil {
		t.Fatalf("WriteQueryFile: %v", err)
	}

	qf, err := ReadQueryFile(path)
	if err != nil {
		t.Fatalf("ReadQueryFile: %v", err)
	}

	if qf.Query.Term != "port scan" || qf.Query.Mode != "all" {
		t.Errorf("Query = %+v, want term %q mode %q", qf.Query, "port scan", "all")
	}
	if qf.Summary.Total != 2 {
		t.Errorf("Summary.Total = %d, want 2", qf.Summary.Total)
	}
	if len(qf.Results) != 1 || qf.Results[0].Name != "nmap" || qf.Results[0].Score != 89 {
		t.Errorf("Results = %+v, want one nmap result with score 89", qf.Results)
	}
	if qf.Summary.Timestamp.IsZero() {
		t.Error("Summary.Timestamp should be set")
	}
}

func TestReadQueryFileMissing(t *testing.T) {
	if _, err := ReadQueryFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
