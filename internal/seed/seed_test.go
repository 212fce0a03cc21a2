// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package seed

import (
	"testing"

	"github.com/meshintel/commandbrain/internal/search"
	"github.com/meshintel/commandbrain/pkg/types"
)

func TestEntriesAreWellFormed(t *testing.T) {
	entries := Entries()
	if len(entries) < 60 {
		t.Fatalf("only %d entries, want the full built-in catalog", len(entries))
	}

	seen := make(map[string]bool)
	for _, e := range entries {
		if e.Name == "" || e.Category == "" || e.Description == "" {
			t.Errorf("entry %q missing identity fields", e.Name)
		}
		if seen[e.Name] {
			t.Errorf("duplicate entry name %q", e.Name)
		}
		seen[e.Name] = true
	}

	for _, name := range []string{"ls", "grep", "tar", "ssh", "nmap", "hydra", "wireshark"} {
		if !seen[name] {
			t.Errorf("expected built-in entry %q", name)
		}
	}
}

func TestSlangTagsReferenceRealEntries(t *testing.T) {
	byName := make(map[string]bool)
	for _, e := range Entries() {
		byName[e.Name] = true
	}
	for name := range SlangTags {
		if !byName[name] {
			t.Errorf("slang tags for %q, which is not in the built-in catalog", name)
		}
	}
}

func findEntry(t *testing.T, name string) types.Entry {
	t.Helper()
	for _, e := range Entries() {
		if e.Name == name {
			return e
		}
	}
	t.Fatalf("entry %q not found", name)
	return types.Entry{}
}

func TestPortScanRanking(t *testing.T) {
	// "port scan" should surface nmap ahead of masscan: nmap carries the
	// phrase in its tags while masscan only matches per word.
	nmap := search.Score(findEntry(t, "nmap"), "port scan")
	masscan := search.Score(findEntry(t, "masscan"), "port scan")
	if nmap <= masscan {
		t.Errorf("nmap score %d should exceed masscan score %d for %q",
			nmap, masscan, "port scan")
	}
}

func TestExactNameWinsOverMentions(t *testing.T) {
	target := search.Score(findEntry(t, "nmap"), "nmap")
	if target < 100 {
		t.Fatalf("nmap self-score = %d, want >= 100", target)
	}
	for _, e := range Entries() {
		if e.Name == "nmap" {
			continue
		}
		if s := search.Score(e, "nmap"); s >= target {
			t.Errorf("%q scores %d for %q, should be below %d", e.Name, s, "nmap", target)
		}
	}
}
