package widgets

import "github.com/charmbracelet/lipgloss"

// Box is a rounded card with a title line.
type Box struct {
	Title       string
	Content     string
	BorderColor lipgloss.Color
}

func (b Box) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	style := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(width - 2)
	if height > 2 {
		style = style.Height(height - 2)
	}
	if b.BorderColor != "" {
		style = style.BorderForeground(b.BorderColor)
	}
	body := b.Content
	if b.Title != "" {
		body = lipgloss.NewStyle().Bold(true).Render(b.Title) + "\n" + body
	}
	return style.Render(body)
}
