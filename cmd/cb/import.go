// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meshintel/commandbrain/internal/catalog"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import entries from a YAML catalog file",
	Long: `Import loads entries from a YAML file produced by "cb export" (or
written by hand). Entries whose name is already in the catalog are
skipped, so imports never overwrite local changes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := catalog.ReadFile(args[0])
		if err != nil {
			return err
		}

		st, err := catalog.Open(databasePath())
		if err != nil {
			return err
		}
		defer st.Close()

		inserted, err := st.Seed(cmd.Context(), entries)
		if err != nil {
			return err
		}

		fmt.Printf("Imported %d of %d entries (%d already present)\n",
			inserted, len(entries), len(entries)-inserted)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
