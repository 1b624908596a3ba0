package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// List renders rows with a cursor marker, scrolling to keep Cursor visible.
type List struct {
	Title    string
	Items    []string
	Cursor   int
	Empty    string
	Selected lipgloss.Style
}

func (l List) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	rows := make([]string, 0, height)
	if l.Title != "" {
		rows = append(rows, l.Title)
	}
	if len(l.Items) == 0 {
		if l.Empty != "" {
			rows = append(rows, l.Empty)
		}
		return strings.Join(rows, "\n")
	}
	visible := max(1, height-len(rows))
	start := 0
	if l.Cursor >= visible {
		start = l.Cursor - visible + 1
	}
	for i := start; i < len(l.Items) && len(rows) < height; i++ {
		line := "  " + l.Items[i]
		if i == l.Cursor {
			line = l.Selected.Render("> " + l.Items[i])
		}
		rows = append(rows, padRight(line, width))
	}
	return strings.Join(rows, "\n")
}
