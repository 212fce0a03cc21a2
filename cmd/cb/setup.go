// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meshintel/commandbrain/internal/catalog"
	"github.com/meshintel/commandbrain/internal/seed"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the catalog database and load the built-in entries",
	Long: `Setup creates the catalog database (default ~/.commandbrain.db),
ensures the schema exists, and loads the built-in catalog of shell
commands and security tools. Entries already present are left
untouched, so setup is safe to re-run.`,
	RunE: runSetup,
}

func runSetup(cmd *cobra.Command, args []string) error {
	path := databasePath()

	st, err := catalog.Create(path)
	if err != nil {
		return err
	}
	defer st.Close()

	inserted, err := st.Seed(cmd.Context(), seed.Entries())
	if err != nil {
		return fmt.Errorf("seeding catalog: %w", err)
	}

	fmt.Printf("Catalog ready at %s (%d new entries loaded)\n", path, inserted)
	fmt.Println("Run \"cb enrich\" to add purpose-based search tags.")
	return nil
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
