// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/meshintel/commandbrain/internal/catalog"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := catalog.Open(databasePath())
		if err != nil {
			return err
		}
		defer st.Close()

		counts, err := st.CountStats(cmd.Context())
		if err != nil {
			return err
		}

		newPrinter().Stats(counts, st.Path())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
