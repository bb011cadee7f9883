package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/cultistcircle/circlebot/internal/selector"
)

// RenderEmbed writes an Embed as plain terminal text.
func RenderEmbed(w io.Writer, e *Embed) {
	title := color.New(color.FgCyan, color.Bold)
	label := color.New(color.FgYellow)
	dim := color.New(color.Faint)

	title.Fprintln(w, e.Title)
	if e.URL != "" {
		dim.Fprintln(w, e.URL)
	}
	if e.Descr != "" {
		fmt.Fprintln(w, e.Descr)
	}
	for _, f := range e.Fields {
		// Markdown bold markers are chat-transport syntax.
		value := strings.ReplaceAll(f.Value, "**", "")
		if strings.Contains(value, "\n") {
			label.Fprintf(w, "%s:\n", f.Name)
			fmt.Fprintln(w, value)
		} else {
			label.Fprintf(w, "%s: ", f.Name)
			fmt.Fprintln(w, value)
		}
	}
	if e.Footer != "" {
		dim.Fprintln(w, e.Footer)
	}
}

// SelectionTable renders the chosen multiset as a table, one row per
// distinct item.
func SelectionTable(w io.Writer, sel *selector.Selection) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Count", "Item", "Value", "Cost", "Trader"}),
	)
	for _, p := range sel.Picks {
		row := []string{
			fmt.Sprintf("x%d", p.Count),
			p.Candidate.Name,
			roubles(p.Candidate.Value),
			roubles(p.Candidate.Cost),
			p.Candidate.Trader,
		}
		_ = table.Append(row)
	}
	_ = table.Render()

	fmt.Fprintf(w, "\nTotal value: %s | Total cost: %s\n", roubles(sel.TotalValue), roubles(sel.TotalCost))
}
