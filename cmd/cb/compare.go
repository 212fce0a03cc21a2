// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/meshintel/commandbrain/internal/catalog"
)

var compareCmd = &cobra.Command{
	Use:   "compare <command1> <command2>",
	Short: "Compare two catalog entries side by side",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := catalog.Open(databasePath())
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		a, err := st.GetByName(ctx, args[0])
		if err != nil {
			return err
		}
		b, err := st.GetByName(ctx, args[1])
		if err != nil {
			return err
		}

		newPrinter().Compare(a, b)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
