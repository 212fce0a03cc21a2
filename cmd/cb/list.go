// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/meshintel/commandbrain/internal/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog categories with entry counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := catalog.Open(databasePath())
		if err != nil {
			return err
		}
		defer st.Close()

		categories, err := st.Categories(cmd.Context())
		if err != nil {
			return err
		}

		newPrinter().Categories(categories)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
