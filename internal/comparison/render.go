package comparison

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type styles struct {
	header   lipgloss.Style
	analyzer lipgloss.Style
	category lipgloss.Style
	value    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")),
		analyzer: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14")),
		category: r.NewStyle().
			Foreground(lipgloss.Color("12")),
		value: r.NewStyle().
			Foreground(lipgloss.Color("10")),
	}
}

// Render writes the result as an aligned table. With color false no escape
// sequences are written.
func (res *Result) Render(w io.Writer, color bool) error {
	renderer := lipgloss.NewRenderer(w)
	if !color {
		renderer.SetColorProfile(termenv.Ascii)
	}
	s := newStyles(renderer)

	for _, a := range res.Analyzers {
		if _, err := fmt.Fprintf(w, "Analyzer: %s. Cards: %s. Hand Size: %s. Possible Hands: %s.\n",
			s.analyzer.Render(a.Name), Count(a.DeckSize), Count(a.HandSize), Count(a.Shapes)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprint(tw, s.header.Render("Category"))
	for _, a := range res.Analyzers {
		fmt.Fprintf(tw, "\t%s", s.header.Render(a.Name))
	}
	fmt.Fprint(tw, "\n")

	for _, row := range res.Rows {
		fmt.Fprint(tw, s.category.Render(row.Category))
		for _, cell := range row.Cells {
			fmt.Fprintf(tw, "\t%s", s.value.Render(cell))
		}
		fmt.Fprint(tw, "\n")
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\n%d categories in %v\n", len(res.Rows), res.Elapsed.Truncate(time.Millisecond))
	return err
}
