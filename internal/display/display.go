// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package display renders search results, workflow guides, and catalog
// listings for the terminal. All color state lives in the Printer
// built at startup; nothing here reads globals.
package display

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/meshintel/commandbrain/internal/catalog"
	"github.com/meshintel/commandbrain/internal/search"
	"github.com/meshintel/commandbrain/pkg/types"
)

// Config controls where and how the Printer writes.
type Config struct {
	Out     io.Writer
	Colored bool
}

// Printer formats terminal output. Construct with NewPrinter.
type Printer struct {
	out io.Writer

	name     func(format string, a ...interface{}) string
	category func(format string, a ...interface{}) string
	label    func(format string, a ...interface{}) string
	example  func(format string, a ...interface{}) string
	hint     func(format string, a ...interface{}) string
	warn     func(format string, a ...interface{}) string
	rule     func(format string, a ...interface{}) string
}

// NewPrinter builds a Printer from cfg.
func NewPrinter(cfg Config) *Printer {
	return &Printer{
		out:      cfg.Out,
		name:     sprintf(cfg.Colored, color.FgCyan, color.Bold),
		category: sprintf(cfg.Colored, color.FgYellow),
		label:    sprintf(cfg.Colored, color.Bold),
		example:  sprintf(cfg.Colored, color.FgGreen),
		hint:     sprintf(cfg.Colored, color.FgCyan),
		warn:     sprintf(cfg.Colored, color.FgYellow),
		rule:     sprintf(cfg.Colored, color.FgBlue),
	}
}

func sprintf(enabled bool, attrs ...color.Attribute) func(format string, a ...interface{}) string {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.SprintfFunc()
}

// resultHeader prints the "showing X-Y of N" line for a result page.
func (p *Printer) resultHeader(res search.Result) {
	first := (res.Page-1)*res.PerPage + 1
	last := first + len(res.Entries) - 1
	if len(res.Entries) == 0 {
		first = 0
		last = 0
	}
	fmt.Fprintf(p.out, "\n%s\n\n",
		p.label("Found %d command(s), showing %d-%d (page %d):", res.Total, first, last, res.Page))
}

// Short renders the default list view: name, category, description.
func (p *Printer) Short(res search.Result) {
	p.resultHeader(res)
	for _, e := range res.Entries {
		fmt.Fprintf(p.out, "%s %s\n", p.name("%s", e.Name), p.category("[%s]", e.Category))
		fmt.Fprintf(p.out, "  %s\n\n", e.Description)
	}
	p.related(res.Related)
}

// Detailed renders the full record for each result.
func (p *Printer) Detailed(res search.Result) {
	p.resultHeader(res)
	for i, e := range res.Entries {
		if i > 0 {
			fmt.Fprintf(p.out, "\n%s\n\n", p.rule("%s", strings.Repeat("-", 70)))
		}
		fmt.Fprintf(p.out, "%s %s\n", p.name("%s", e.Name), p.category("[%s]", e.Category))
		fmt.Fprintf(p.out, "%s %s\n", p.label("Description:"), e.Description)

		if e.Usage != "" {
			fmt.Fprintf(p.out, "\n%s\n  %s\n", p.label("Usage:"), e.Usage)
		}
		if e.Examples != "" {
			fmt.Fprintf(p.out, "\n%s\n", p.label("Examples:"))
			for _, ex := range strings.Split(e.Examples, "\n") {
				fmt.Fprintf(p.out, "  %s %s\n", p.example("$"), ex)
			}
		}
		if e.RelatedCommands != "" {
			fmt.Fprintf(p.out, "\n%s %s\n", p.label("Related Commands:"), p.hint("%s", e.RelatedCommands))
		}
		if e.Notes != "" {
			fmt.Fprintf(p.out, "\n%s\n  %s\n", p.label("Notes:"), e.Notes)
		}
		if e.Tags != "" {
			fmt.Fprintf(p.out, "\n%s %s\n", p.label("Tags:"), e.Tags)
		}
	}
	p.related(res.Related)
}

// ExamplesOnly renders the quick-reference view: just usage and examples.
func (p *Printer) ExamplesOnly(res search.Result) {
	p.resultHeader(res)
	for i, e := range res.Entries {
		if i > 0 {
			fmt.Fprintf(p.out, "%s\n\n", p.rule("%s", strings.Repeat("-", 50)))
		}
		fmt.Fprintf(p.out, "%s\n", p.name("%s", e.Name))
		if e.Usage != "" {
			fmt.Fprintf(p.out, "  %s %s\n", p.label("Usage:"), e.Usage)
		}
		if e.Examples != "" {
			for _, ex := range strings.Split(e.Examples, "\n") {
				if strings.TrimSpace(ex) == "" {
					continue
				}
				fmt.Fprintf(p.out, "  %s %s\n", p.example("$"), ex)
			}
		} else {
			fmt.Fprintf(p.out, "  %s\n", p.warn("(No examples available)"))
		}
		fmt.Fprintln(p.out)
	}
	p.related(res.Related)
}

// NoResults renders the empty-result message with did-you-mean
// suggestions. Each suggestion carries its description for context.
func (p *Printer) NoResults(term string, suggestions []types.Entry, related []string) {
	fmt.Fprintf(p.out, "%s\n", p.warn("No commands found for %q.", term))

	if len(suggestions) > 0 {
		fmt.Fprintf(p.out, "\n%s\n", p.hint("Did you mean:"))
		for _, s := range suggestions {
			desc := s.Description
			if len(desc) > 60 {
				desc = desc[:57] + "..."
			}
			fmt.Fprintf(p.out, "  %s - %s\n", p.example("%s", s.Name), desc)
		}
		fmt.Fprintf(p.out, "\n%s cb %s\n", p.label("Try:"), suggestions[0].Name)
	}

	p.related(related)
}

func (p *Printer) related(related []string) {
	if len(related) == 0 {
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", p.hint("Also try:"), strings.Join(related, ", "))
}

// Categories renders the category listing with entry counts.
func (p *Printer) Categories(categories []catalog.CategoryCount) {
	fmt.Fprintf(p.out, "\n%s\n\n", p.label("Available Categories:"))
	for _, c := range categories {
		fmt.Fprintf(p.out, "  %s (%d commands)\n", p.hint("%s", c.Category), c.Count)
	}
	fmt.Fprintln(p.out)
}

// Dump renders the entire catalog grouped by category, with a grand
// total at the end. Entries keep the store's name order within each
// group.
func (p *Printer) Dump(entries []types.Entry) {
	grouped := make(map[string][]types.Entry)
	var categories []string
	for _, e := range entries {
		if _, ok := grouped[e.Category]; !ok {
			categories = append(categories, e.Category)
		}
		grouped[e.Category] = append(grouped[e.Category], e)
	}
	sort.Strings(categories)

	fmt.Fprintf(p.out, "\n%s\n", p.label("Complete Command Reference"))
	for _, cat := range categories {
		fmt.Fprintf(p.out, "\n%s\n", p.category("=== %s ===", cat))
		for _, e := range grouped[cat] {
			fmt.Fprintf(p.out, "  %s - %s\n", p.name("%s", e.Name), e.Description)
		}
	}
	fmt.Fprintf(p.out, "\n%s\n", p.label("Total: %d commands", len(entries)))
}

// Stats renders catalog statistics.
func (p *Printer) Stats(st catalog.Stats, dbPath string) {
	fmt.Fprintf(p.out, "\n%s\n\n", p.label("Catalog Statistics"))
	fmt.Fprintf(p.out, "  Total commands: %s\n", p.hint("%d", st.Entries))
	fmt.Fprintf(p.out, "  Categories:     %s\n", p.hint("%d", st.Categories))
	fmt.Fprintf(p.out, "  Database:       %s\n\n", p.hint("%s", dbPath))
}

// Compare renders two entries side by side.
func (p *Printer) Compare(a, b types.Entry) {
	fmt.Fprintf(p.out, "\n%s %s %s %s\n\n",
		p.label("Comparing"), p.name("%s", a.Name), p.label("vs"), p.name("%s", b.Name))
	fmt.Fprintf(p.out, "%s\n\n", p.rule("%s", strings.Repeat("=", 70)))

	fmt.Fprintf(p.out, "%s\n", p.label("Description:"))
	fmt.Fprintf(p.out, "  %s %s\n", p.name("%s:", a.Name), a.Description)
	fmt.Fprintf(p.out, "  %s %s\n\n", p.name("%s:", b.Name), b.Description)

	fmt.Fprintf(p.out, "%s\n", p.label("Usage:"))
	fmt.Fprintf(p.out, "  %s %s\n", p.name("%s:", a.Name), orUnspecified(a.Usage))
	fmt.Fprintf(p.out, "  %s %s\n\n", p.name("%s:", b.Name), orUnspecified(b.Usage))

	fmt.Fprintf(p.out, "%s\n", p.label("Examples:"))
	p.compareExamples(a)
	p.compareExamples(b)
	fmt.Fprintln(p.out)

	if a.Notes != "" || b.Notes != "" {
		fmt.Fprintf(p.out, "%s\n", p.label("Key Differences:"))
		if a.Notes != "" {
			fmt.Fprintf(p.out, "  %s %s\n", p.name("%s:", a.Name), a.Notes)
		}
		if b.Notes != "" {
			fmt.Fprintf(p.out, "  %s %s\n", p.name("%s:", b.Name), b.Notes)
		}
		fmt.Fprintln(p.out)
	}

	fmt.Fprintf(p.out, "%s\n", p.label("See also:"))
	if a.RelatedCommands != "" {
		fmt.Fprintf(p.out, "  From %s: %s\n", a.Name, p.hint("%s", a.RelatedCommands))
	}
	if b.RelatedCommands != "" {
		fmt.Fprintf(p.out, "  From %s: %s\n", b.Name, p.hint("%s", b.RelatedCommands))
	}
	fmt.Fprintln(p.out)
}

func (p *Printer) compareExamples(e types.Entry) {
	if e.Examples == "" {
		return
	}
	fmt.Fprintf(p.out, "  %s\n", p.name("%s:", e.Name))
	examples := strings.Split(e.Examples, "\n")
	if len(examples) > 2 {
		examples = examples[:2]
	}
	for _, ex := range examples {
		if strings.TrimSpace(ex) == "" {
			continue
		}
		fmt.Fprintf(p.out, "    %s %s\n", p.example("$"), ex)
	}
}

func orUnspecified(s string) string {
	if s == "" {
		return "(not specified)"
	}
	return s
}

// WorkflowList renders the available workflows.
func (p *Printer) WorkflowList(workflows []types.Workflow) {
	fmt.Fprintf(p.out, "\n%s\n\n", p.label("Available Workflows:"))
	for _, w := range workflows {
		fmt.Fprintf(p.out, "  %s - %s\n", p.name("%s", w.Name), w.Description)
	}
	fmt.Fprintf(p.out, "\n%s cb chain <name>\n\n", p.label("Run:"))
}

// Workflow renders one workflow guide step by step.
func (p *Printer) Workflow(w types.Workflow) {
	fmt.Fprintf(p.out, "\n%s\n", p.label("%s", w.Title))
	fmt.Fprintf(p.out, "%s\n\n", w.Description)

	for i, step := range w.Steps {
		fmt.Fprintf(p.out, "%s %s\n", p.label("Step %d:", i+1), p.example("$ %s", step.Command))
		fmt.Fprintf(p.out, "  %s %s\n", p.label("Purpose:"), step.Purpose)
		if step.LookFor != "" {
			fmt.Fprintf(p.out, "  %s %s\n", p.label("Look for:"), step.LookFor)
		}
		if step.Tips != "" {
			fmt.Fprintf(p.out, "  %s\n", p.hint("Tip: %s", step.Tips))
		}
		fmt.Fprintln(p.out)
	}
}
