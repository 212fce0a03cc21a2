// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meshintel/commandbrain/internal/catalog"
	"github.com/meshintel/commandbrain/pkg/types"
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new entry to the catalog",
	Long: `Add stores a new command entry. Name, --category, and --description
are required; the remaining fields are optional and can be filled in
later with "cb update".`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	e := types.Entry{Name: args[0]}
	e.Category, _ = cmd.Flags().GetString("category")
	e.Description, _ = cmd.Flags().GetString("description")
	e.Usage, _ = cmd.Flags().GetString("usage")
	e.Examples, _ = cmd.Flags().GetString("examples")
	e.RelatedCommands, _ = cmd.Flags().GetString("related")
	e.Notes, _ = cmd.Flags().GetString("notes")
	e.Tags, _ = cmd.Flags().GetString("tags")

	if e.Category == "" || e.Description == "" {
		return fmt.Errorf("--category and --description are required")
	}

	st, err := catalog.Open(databasePath())
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Insert(cmd.Context(), e); err != nil {
		if errors.Is(err, catalog.ErrExists) {
			return fmt.Errorf("%q is already in the catalog; use \"cb update\" to change it", e.Name)
		}
		return err
	}

	fmt.Printf("Added %s [%s]\n", e.Name, e.Category)
	return nil
}

func init() {
	addCmd.Flags().StringP("category", "c", "", "entry category (required)")
	addCmd.Flags().String("description", "", "what the command does (required)")
	addCmd.Flags().String("usage", "", "usage synopsis")
	addCmd.Flags().String("examples", "", "newline-separated example invocations")
	addCmd.Flags().String("related", "", "comma-separated related commands")
	addCmd.Flags().String("notes", "", "free-form notes")
	addCmd.Flags().String("tags", "", "comma-separated search tags")
	rootCmd.AddCommand(addCmd)
}
