// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing helpers (cards, bars, stacks, tables, popup overlay)
//
// Not allowed here:
// - key handling, app state transitions, or knowledge of lists and budgets
package widgets

// Widget renders itself into a width x height cell area.
type Widget interface {
	Render(width, height int) string
}

// Text is a Widget that renders a fixed string.
type Text string

func (t Text) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return fitCanvas(string(t), width, height)
}

// Func adapts a render function to Widget.
type Func func(width, height int) string

func (f Func) Render(width, height int) string { return f(width, height) }
