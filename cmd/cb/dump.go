// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/meshintel/commandbrain/internal/catalog"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "List every catalog entry grouped by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := catalog.Open(databasePath())
		if err != nil {
			return err
		}
		defer st.Close()

		entries, err := st.All(cmd.Context())
		if err != nil {
			return err
		}

		newPrinter().Dump(entries)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
