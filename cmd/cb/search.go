// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meshintel/commandbrain/internal/catalog"
	"github.com/meshintel/commandbrain/internal/search"
	"github.com/meshintel/commandbrain/internal/taxonomy"
	"github.com/meshintel/commandbrain/pkg/types"
)

// defaultPerPage applies when neither the flag nor config sets a page size.
const defaultPerPage = 10

var searchCmd = &cobra.Command{
	Use:   "search <terms...>",
	Short: "Search the catalog by keyword, category, tag, or purpose",
	Long: `Search expands the query against the catalog, ranks matches by a
weighted field score (name hits outrank category, tag, and description
hits), and pages through the results.

Multi-word queries also match per word, so "port scan" finds entries
even when no single field contains the whole phrase. Searches matching
nothing get fuzzy "did you mean" name suggestions; taxonomy topics add
"also try" hints.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

// addSearchFlags registers the search flag set. The root command shares
// it so "cb -d grep" works without the search subcommand.
func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("type", "t", "all", "restrict matching: all, name, category, tags, description")
	cmd.Flags().Int("page", 1, "result page (1-based)")
	cmd.Flags().Int("per-page", 0, "results per page (clamped to 5-25; 0 = config default)")
	cmd.Flags().BoolP("detailed", "d", false, "show full records")
	cmd.Flags().BoolP("examples", "e", false, "show examples only (quick reference)")
	cmd.Flags().Bool("json", false, "output results as JSON")
	cmd.Flags().String("save", "", "save the query and results to a YAML file")
}

func runSearch(cmd *cobra.Command, args []string) error {
	term := strings.Join(args, " ")
	if strings.TrimSpace(term) == "" {
		return fmt.Errorf("search term is empty")
	}

	typeFlag, _ := cmd.Flags().GetString("type")
	mode := search.ParseMode(typeFlag)
	if mode == search.ModeAll && typeFlag != "" && !strings.EqualFold(typeFlag, "all") {
		fmt.Fprintf(os.Stderr, "warning: unknown search type %q, searching all fields\n", typeFlag)
	}

	page, _ := cmd.Flags().GetInt("page")
	if page < 1 {
		page = 1
	}
	perPage, _ := cmd.Flags().GetInt("per-page")
	if perPage == 0 {
		perPage = viper.GetInt("search.per_page")
	}
	if perPage == 0 {
		perPage = defaultPerPage
	}
	perPage = search.ClampPerPage(perPage)

	st, err := catalog.Open(databasePath())
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()
	req := search.Request{Term: term, Mode: mode, Page: page, PerPage: perPage}

	res, err := search.Run(ctx, st, taxonomy.Topics(), req)
	if err != nil {
		return err
	}

	if save, _ := cmd.Flags().GetString("save"); save != "" {
		if err := search.WriteQueryFile(save, req, res); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved search to %s\n", save)
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	p := newPrinter()

	if res.Total == 0 {
		var suggestions []types.Entry
		for _, name := range res.DidYouMean {
			if e, err := st.GetByName(ctx, name); err == nil {
				suggestions = append(suggestions, e)
			}
		}
		p.NoResults(term, suggestions, res.Related)
		return nil
	}

	detailed, _ := cmd.Flags().GetBool("detailed")
	examplesOnly, _ := cmd.Flags().GetBool("examples")
	switch {
	case examplesOnly:
		p.ExamplesOnly(res)
	case detailed:
		p.Detailed(res)
	default:
		p.Short(res)
	}
	return nil
}

func init() {
	addSearchFlags(searchCmd)
	rootCmd.AddCommand(searchCmd)
}
