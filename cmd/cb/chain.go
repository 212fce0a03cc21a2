// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meshintel/commandbrain/internal/workflow"
)

var chainCmd = &cobra.Command{
	Use:   "chain [workflow]",
	Short: "Show step-by-step workflow guides",
	Long: `Chain prints a guided sequence of commands for a common task, with
the purpose of each step and what to look for in its output. Run
without arguments to list the available workflows.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := newPrinter()

		if len(args) == 0 {
			p.WorkflowList(workflow.All())
			return nil
		}

		w, ok := workflow.Find(args[0])
		if !ok {
			names := make([]string, 0, len(workflow.All()))
			for _, w := range workflow.All() {
				names = append(names, w.Name)
			}
			return fmt.Errorf("unknown workflow %q (available: %s)", args[0], strings.Join(names, ", "))
		}

		p.Workflow(w)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chainCmd)
}
