package tui

import "github.com/charmbracelet/lipgloss"

type palette struct {
	text    lipgloss.Color
	muted   lipgloss.Color
	border  lipgloss.Color
	accent  lipgloss.Color
	success lipgloss.Color
	warning lipgloss.Color
	danger  lipgloss.Color
	surface lipgloss.Color
}

var (
	lightPalette = palette{
		text:    "#111827",
		muted:   "#6B7280",
		border:  "#E5E7EB",
		accent:  "#6366F1",
		success: "#10B981",
		warning: "#F59E0B",
		danger:  "#EF4444",
		surface: "#F3F4F6",
	}
	darkPalette = palette{
		text:    "#F9FAFB",
		muted:   "#9CA3AF",
		border:  "#374151",
		accent:  "#818CF8",
		success: "#34D399",
		warning: "#FBBF24",
		danger:  "#F87171",
		surface: "#1F2937",
	}
)

// tabColors follow each tab's icon colour.
var tabColors = map[tab]lipgloss.Color{
	tabLists:    "#059669",
	tabBudget:   "#D97706",
	tabScan:     "#2563EB",
	tabAlerts:   "#DC2626",
	tabSettings: "#7C3AED",
}

type styles struct {
	palette
	title     lipgloss.Style
	muted     lipgloss.Style
	selected  lipgloss.Style
	done      lipgloss.Style
	activeTab lipgloss.Style
	tab       lipgloss.Style
	badge     lipgloss.Style
	status    lipgloss.Style
	statusErr lipgloss.Style
	good      lipgloss.Style
	bad       lipgloss.Style
	warn      lipgloss.Style
}

func newStyles(dark bool) styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}
	return styles{
		palette:   p,
		title:     lipgloss.NewStyle().Bold(true).Underline(true).Foreground(p.text),
		muted:     lipgloss.NewStyle().Foreground(p.muted),
		selected:  lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		done:      lipgloss.NewStyle().Foreground(p.muted).Strikethrough(true),
		activeTab: lipgloss.NewStyle().Bold(true).Padding(0, 1).Background(p.surface),
		tab:       lipgloss.NewStyle().Foreground(p.muted).Padding(0, 1),
		badge:     lipgloss.NewStyle().Foreground(p.danger).Bold(true),
		status:    lipgloss.NewStyle().Foreground(p.success),
		statusErr: lipgloss.NewStyle().Foreground(p.danger),
		good:      lipgloss.NewStyle().Foreground(p.success),
		bad:       lipgloss.NewStyle().Foreground(p.danger),
		warn:      lipgloss.NewStyle().Foreground(p.warning),
	}
}
