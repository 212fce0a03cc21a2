// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/meshintel/commandbrain/internal/catalog"
	"github.com/meshintel/commandbrain/internal/search"
	"github.com/meshintel/commandbrain/pkg/types"
)

func testPrinter() (*Printer, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewPrinter(Config{Out: &buf, Colored: false}), &buf
}

func sampleResult() search.Result {
	return search.Result{
		Entries: []types.ScoredEntry{
			{Entry: types.Entry{Name: "nmap", Category: "Network-Scanning",
				Description: "Network exploration and port scanning tool",
				Usage:       "nmap [options] target",
				Examples:    "nmap -sV 192.168.1.0/24\nnmap -p- -T4 10.0.0.5",
				Notes:       "-sV detects service versions"}, Score: 89},
			{Entry: types.Entry{Name: "masscan", Category: "Network-Scanning",
				Description: "Very fast Internet-scale port scanner"}, Score: 75},
		},
		Total:   2,
		Page:    1,
		PerPage: 10,
		Related: []string{"service detection", "host discovery"},
	}
}

func TestShort(t *testing.T) {
	p, buf := testPrinter()
	p.Short(sampleResult())
	out := buf.String()

	if !strings.Contains(out, "Found 2 command(s), showing 1-2 (page 1):") {
		t.Errorf("missing result header in:\n%s", out)
	}
	for _, want := range []string{"nmap", "[Network-Scanning]", "masscan", "Also try: service detection, host discovery"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Usage:") {
		t.Error("short view should not print usage")
	}
}

func TestShortPageTwoHeader(t *testing.T) {
	p, buf := testPrinter()
	res := sampleResult()
	res.Page = 2
	res.PerPage = 5
	res.Total = 7
	p.Short(res)

	if !strings.Contains(buf.String(), "Found 7 command(s), showing 6-7 (page 2):") {
		t.Errorf("wrong page header in:\n%s", buf.String())
	}
}

func TestDetailed(t *testing.T) {
	p, buf := testPrinter()
	p.Detailed(sampleResult())
	out := buf.String()

	for _, want := range []string{"Usage:", "nmap [options] target", "Examples:",
		"$ nmap -sV 192.168.1.0/24", "Notes:", "-sV detects service versions"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q in:\n%s", want, out)
		}
	}
}

func TestExamplesOnly(t *testing.T) {
	p, buf := testPrinter()
	p.ExamplesOnly(sampleResult())
	out := buf.String()

	if !strings.Contains(out, "$ nmap -p- -T4 10.0.0.5") {
		t.Errorf("output missing example in:\n%s", out)
	}
	if !strings.Contains(out, "(No examples available)") {
		t.Errorf("entries without examples should say so:\n%s", out)
	}
	if strings.Contains(out, "port scanning tool") {
		t.Error("examples view should not print descriptions")
	}
}

func TestNoResults(t *testing.T) {
	p, buf := testPrinter()
	suggestions := []types.Entry{
		{Name: "grep", Description: "Search text using patterns"},
	}
	p.NoResults("grpe", suggestions, []string{"text processing"})
	out := buf.String()

	for _, want := range []string{`No commands found for "grpe".`, "Did you mean:",
		"grep - Search text using patterns", "Try: cb grep", "Also try: text processing"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q in:\n%s", want, out)
		}
	}
}

func TestNoResultsWithoutSuggestions(t *testing.T) {
	p, buf := testPrinter()
	p.NoResults("zzzznotfound", nil, nil)
	out := buf.String()

	if !strings.Contains(out, `No commands found for "zzzznotfound".`) {
		t.Errorf("missing message in:\n%s", out)
	}
	if strings.Contains(out, "Did you mean") {
		t.Error("no suggestions should mean no did-you-mean block")
	}
}

func TestCategoriesAndStats(t *testing.T) {
	p, buf := testPrinter()
	p.Categories([]catalog.CategoryCount{
		{Category: "Network-Scanning", Count: 2},
		{Category: "Text-Processing", Count: 11},
	})
	p.Stats(catalog.Stats{Entries: 64, Categories: 12}, "/home/u/.commandbrain.db")
	out := buf.String()

	for _, want := range []string{"Network-Scanning (2 commands)", "Text-Processing (11 commands)",
		"Total commands: 64", "Categories:     12", "/home/u/.commandbrain.db"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q in:\n%s", want, out)
		}
	}
}

func TestDump(t *testing.T) {
	p, buf := testPrinter()
	p.Dump([]types.Entry{
		{Name: "grep", Category: "Text-Processing", Description: "Search text using patterns"},
		{Name: "masscan", Category: "Network-Scanning", Description: "Very fast port scanner"},
		{Name: "nmap", Category: "Network-Scanning", Description: "Network exploration tool"},
		{Name: "sed", Category: "Text-Processing", Description: "Stream editor"},
	})
	out := buf.String()

	for _, want := range []string{"Complete Command Reference",
		"=== Network-Scanning ===", "=== Text-Processing ===",
		"masscan - Very fast port scanner", "sed - Stream editor",
		"Total: 4 commands"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q in:\n%s", want, out)
		}
	}
	// Categories come out sorted.
	if strings.Index(out, "Network-Scanning") > strings.Index(out, "Text-Processing") {
		t.Error("categories not sorted")
	}
}

func TestCompare(t *testing.T) {
	p, buf := testPrinter()
	a := types.Entry{Name: "nmap", Description: "Port scanner",
		Examples: "nmap -sV host\nnmap -p- host\nnmap -sn net", Notes: "Accurate but slower"}
	b := types.Entry{Name: "masscan", Description: "Fast scanner",
		RelatedCommands: "nmap, zmap"}
	p.Compare(a, b)
	out := buf.String()

	for _, want := range []string{"Comparing nmap vs masscan", "Key Differences:",
		"Accurate but slower", "From masscan: nmap, zmap", "(not specified)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q in:\n%s", want, out)
		}
	}
	// Only the first two examples appear.
	if strings.Contains(out, "nmap -sn net") {
		t.Error("compare should cap examples at two per entry")
	}
}

func TestWorkflowViews(t *testing.T) {
	p, buf := testPrinter()
	w := types.Workflow{
		Name: "recon", Title: "Network Reconnaissance",
		Description: "Map a target network.",
		Steps: []types.WorkflowStep{
			{Command: "nmap -sn 10.0.0.0/24", Purpose: "Find live hosts",
				LookFor: "Hosts reported as up", Tips: "Skip ports on the first pass"},
		},
	}
	p.WorkflowList([]types.Workflow{w})
	p.Workflow(w)
	out := buf.String()

	for _, want := range []string{"Available Workflows:", "recon - Map a target network.",
		"Step 1:", "$ nmap -sn 10.0.0.0/24", "Purpose: Find live hosts",
		"Look for: Hosts reported as up", "Tip: Skip ports on the first pass"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "(MISSING)") {
		t.Errorf("format artifact in output:\n%s", out)
	}
}
