// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meshintel/commandbrain/internal/catalog"
	"github.com/meshintel/commandbrain/pkg/types"
)

var updateCmd = &cobra.Command{
	Use:   "update <name>",
	Short: "Update the examples, notes, or tags of an entry",
	Long: `Update replaces the examples, notes, or tags field of an existing
entry. Identity fields (name, category, description) are fixed at add
time. Use --append-tags to merge tags instead of replacing them.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	name := args[0]

	st, err := catalog.Open(databasePath())
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()

	if appendTags, _ := cmd.Flags().GetString("append-tags"); appendTags != "" {
		changed, err := st.AppendTags(ctx, name, appendTags)
		if err != nil {
			return err
		}
		if changed {
			fmt.Printf("Updated tags on %s\n", name)
		} else {
			fmt.Printf("%s already has those tags\n", name)
		}
		return nil
	}

	fields := make(map[types.Column]string)
	if cmd.Flags().Changed("examples") {
		fields[types.ColExamples], _ = cmd.Flags().GetString("examples")
	}
	if cmd.Flags().Changed("notes") {
		fields[types.ColNotes], _ = cmd.Flags().GetString("notes")
	}
	if cmd.Flags().Changed("tags") {
		fields[types.ColTags], _ = cmd.Flags().GetString("tags")
	}
	if len(fields) == 0 {
		return fmt.Errorf("nothing to update: pass --examples, --notes, --tags, or --append-tags")
	}

	if err := st.UpdateFields(ctx, name, fields); err != nil {
		return err
	}

	fmt.Printf("Updated %s (%d field(s))\n", name, len(fields))
	return nil
}

func init() {
	updateCmd.Flags().String("examples", "", "replace the examples field")
	updateCmd.Flags().String("notes", "", "replace the notes field")
	updateCmd.Flags().String("tags", "", "replace the tags field")
	updateCmd.Flags().String("append-tags", "", "merge comma-separated tags into the existing set")
	rootCmd.AddCommand(updateCmd)
}
