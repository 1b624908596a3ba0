package widgets

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Table is a read-only grid. Column widths are fixed by Widths; the last
// column takes whatever is left.
type Table struct {
	Headers []string
	Widths  []int
	Rows    [][]string
}

func (t Table) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(t.Headers) == 0 {
		return "No data"
	}
	cols := make([]table.Column, len(t.Headers))
	used := 0
	for i, h := range t.Headers {
		w := len(h) + 2
		if i < len(t.Widths) {
			w = t.Widths[i]
		}
		if i == len(t.Headers)-1 {
			w = max(w, width-used-2*len(t.Headers))
		}
		cols[i] = table.Column{Title: h, Width: w}
		used += w
	}
	rows := make([]table.Row, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = table.Row(r)
	}
	m := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithHeight(min(height, len(rows)+1)),
		table.WithWidth(width),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	styles.Selected = lipgloss.NewStyle()
	m.SetStyles(styles)
	return strings.TrimRight(m.View(), "\n")
}
