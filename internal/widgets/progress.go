package widgets

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/basket/internal/progress"
)

// ProgressBar draws a horizontal bar filled to Percent, which is clamped to
// [0,100] for drawing only. The label shows the unclamped value.
type ProgressBar struct {
	Percent   float64
	Fill      lipgloss.Color
	ShowLabel bool
}

func (p ProgressBar) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	label := ""
	if p.ShowLabel {
		label = fmt.Sprintf(" %3.0f%%", p.Percent)
	}
	barW := max(1, width-len(label))
	filled := int(math.Round(progress.Clamp(p.Percent) / 100 * float64(barW)))
	fill := strings.Repeat("█", filled)
	if p.Fill != "" {
		fill = lipgloss.NewStyle().Foreground(p.Fill).Render(fill)
	}
	return fill + strings.Repeat("░", barW-filled) + label
}
