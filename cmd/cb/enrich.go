// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/meshintel/commandbrain/internal/catalog"
	"github.com/meshintel/commandbrain/internal/seed"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Append purpose-based slang tags to catalog entries",
	Long: `Enrich appends student-friendly slang and purpose keywords to the tag
field of known entries, so searches like "crack password" or "where am i"
find the right commands. Tags already present are not appended again;
re-running enrich is a no-op.`,
	RunE: runEnrich,
}

func runEnrich(cmd *cobra.Command, args []string) error {
	st, err := catalog.Open(databasePath())
	if err != nil {
		return err
	}
	defer st.Close()

	names := make([]string, 0, len(seed.SlangTags))
	for name := range seed.SlangTags {
		names = append(names, name)
	}
	sort.Strings(names)

	ctx := cmd.Context()
	var enhanced, unchanged, missing int
	for _, name := range names {
		changed, err := st.AppendTags(ctx, name, seed.SlangTags[name])
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			fmt.Printf("  - skipped %s (not in catalog)\n", name)
			missing++
		case err != nil:
			return fmt.Errorf("enriching %s: %w", name, err)
		case changed:
			fmt.Printf("  + enriched %s\n", name)
			enhanced++
		default:
			unchanged++
		}
	}

	fmt.Printf("\nenriched: %d, already up to date: %d, missing: %d\n", enhanced, unchanged, missing)
	return nil
}

func init() {
	rootCmd.AddCommand(enrichCmd)
}
