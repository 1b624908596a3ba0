package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/basket/internal/notify"
	"github.com/jask/basket/internal/widgets"
)

func (a *App) selectedNotification() (notify.Notification, bool) {
	if a.alertCursor < 0 || a.alertCursor >= len(a.feed.Items) {
		return notify.Notification{}, false
	}
	return a.feed.Items[a.alertCursor], true
}

func (a *App) handleAlertsAction(action Action) (tea.Model, tea.Cmd) {
	switch action {
	case actionUp:
		a.alertCursor = moveCursor(a.alertCursor, -1, len(a.feed.Items))
	case actionDown:
		a.alertCursor = moveCursor(a.alertCursor, 1, len(a.feed.Items))
	case actionSelect:
		if n, ok := a.selectedNotification(); ok && !n.Read {
			return a, a.markReadCmd(n.ID)
		}
	case actionReadAll:
		if a.feed.Unread > 0 {
			return a, a.markAllReadCmd()
		}
	case actionDelete:
		if n, ok := a.selectedNotification(); ok {
			return a, a.deleteNotificationCmd(n.ID)
		}
	}
	return a, nil
}

func typeIcon(t notify.Type) string {
	switch t {
	case notify.TypeReminder:
		return "⏰"
	case notify.TypeShared:
		return "👥"
	case notify.TypeSuggestion:
		return "💡"
	case notify.TypeAlert:
		return "🏷"
	}
	return "•"
}

func (a *App) renderAlerts() string {
	header := a.styles.title.Render("Notifications")
	if a.feed.Unread > 0 {
		header += "  " + a.styles.badge.Render(fmt.Sprintf("%d unread", a.feed.Unread))
	}
	rows := make([]string, 0, len(a.feed.Items))
	for _, n := range a.feed.Items {
		title := n.Title
		if !n.Read {
			title = a.styles.badge.Render("● ") + lipgloss.NewStyle().Bold(true).Render(title)
		}
		rows = append(rows, fmt.Sprintf("%s %s  %s  %s", typeIcon(n.Type), title,
			a.styles.muted.Render(n.Message), a.styles.muted.Render(n.Time)))
	}
	list := widgets.List{
		Items:    rows,
		Cursor:   a.alertCursor,
		Empty:    a.styles.muted.Render("You're all caught up."),
		Selected: a.styles.selected,
	}
	return strings.Join([]string{header, "", list.Render(a.bodyWidth(), a.bodyHeight(2))}, "\n")
}
