// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meshintel/commandbrain/internal/catalog"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export the catalog to a YAML file",
	Args:  cobra.ExactArgs(1),
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

		if err := catalog.WriteFile(args[0], entries); err != nil {
			return err
		}

		fmt.Printf("Exported %d entries to %s\n", len(entries), args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
