package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/basket/internal/scan"
)

func (a *App) loadLists() tea.Cmd {
	return func() tea.Msg {
		lists, err := a.services.Lists.All(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return listsMsg(lists)
	}
}

func (a *App) loadFeed() tea.Cmd {
	prefs := a.settings.Notify()
	return func() tea.Msg {
		feed, err := a.services.Notifications.Feed(a.ctx, prefs)
		if err != nil {
			return errMsg{err}
		}
		return feedMsg(feed)
	}
}

func (a *App) loadOverview() tea.Cmd {
	return func() tea.Msg {
		ov, err := a.services.Budget.Overview(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return overviewMsg(ov)
	}
}

func (a *App) loadStores() tea.Cmd {
	return func() tea.Msg {
		stores, err := a.services.Shopping.ListStores(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return storesMsg(stores)
	}
}

// loadSuggestions refreshes the tips for the open list, matched against the
// add-item input while it is open.
func (a *App) loadSuggestions() tea.Cmd {
	if a.current.ID == "" || !a.settings.Suggestions {
		a.suggestions = nil
		return nil
	}
	l := a.current
	query := ""
	if a.modal == modalInput && a.inputFor == inputAddItem {
		query = a.input.Value()
	}
	return func() tea.Msg {
		out, err := a.services.Suggestions.For(a.ctx, l, query)
		if err != nil {
			return errMsg{err}
		}
		return suggestionsMsg(out)
	}
}

func (a *App) openListCmd(id string) tea.Cmd {
	return func() tea.Msg {
		l, err := a.services.Lists.Get(a.ctx, id)
		if err != nil {
			return errMsg{err}
		}
		return listMsg(l)
	}
}

func (a *App) createListCmd(name string, shared bool) tea.Cmd {
	return func() tea.Msg {
		l, ok, err := a.services.Lists.CreateList(a.ctx, name, shared)
		if err != nil {
			return errMsg{err}
		}
		if !ok {
			return nil
		}
		return createdMsg(l)
	}
}

func (a *App) deleteListCmd(id string) tea.Cmd {
	return func() tea.Msg {
		if err := a.services.Lists.DeleteList(a.ctx, id); err != nil {
			return errMsg{err}
		}
		return deletedMsg(id)
	}
}

func (a *App) addItemCmd(listID, name string) tea.Cmd {
	return func() tea.Msg {
		res, err := a.services.Lists.AddItem(a.ctx, listID, name)
		if err != nil {
			return errMsg{err}
		}
		return addedMsg(res)
	}
}

func (a *App) toggleItemCmd(listID, itemID string) tea.Cmd {
	return func() tea.Msg {
		l, err := a.services.Lists.ToggleItem(a.ctx, listID, itemID)
		if err != nil {
			return errMsg{err}
		}
		return listMsg(l)
	}
}

func (a *App) editItemCmd(listID, itemID, name string) tea.Cmd {
	return func() tea.Msg {
		l, err := a.services.Lists.EditItem(a.ctx, listID, itemID, name)
		if err != nil {
			return errMsg{err}
		}
		return listMsg(l)
	}
}

func (a *App) deleteItemCmd(listID, itemID string) tea.Cmd {
	return func() tea.Msg {
		l, err := a.services.Lists.DeleteItem(a.ctx, listID, itemID)
		if err != nil {
			return errMsg{err}
		}
		return listMsg(l)
	}
}

func (a *App) quantityCmd(listID, itemID string, delta int) tea.Cmd {
	return func() tea.Msg {
		l, err := a.services.Lists.SetQuantity(a.ctx, listID, itemID, delta)
		if err != nil {
			return errMsg{err}
		}
		return listMsg(l)
	}
}

func (a *App) dismissSuggestionCmd(id string) tea.Cmd {
	return func() tea.Msg {
		if err := a.services.Suggestions.Dismiss(a.ctx, id); err != nil {
			return errMsg{err}
		}
		return statusMsg("suggestion dismissed")
	}
}

func (a *App) markReadCmd(id string) tea.Cmd {
	prefs := a.settings.Notify()
	return func() tea.Msg {
		if err := a.services.Notifications.MarkRead(a.ctx, id); err != nil {
			return errMsg{err}
		}
		feed, err := a.services.Notifications.Feed(a.ctx, prefs)
		if err != nil {
			return errMsg{err}
		}
		return feedMsg(feed)
	}
}

func (a *App) markAllReadCmd() tea.Cmd {
	prefs := a.settings.Notify()
	return func() tea.Msg {
		if err := a.services.Notifications.MarkAllRead(a.ctx); err != nil {
			return errMsg{err}
		}
		feed, err := a.services.Notifications.Feed(a.ctx, prefs)
		if err != nil {
			return errMsg{err}
		}
		return feedMsg(feed)
	}
}

func (a *App) deleteNotificationCmd(id string) tea.Cmd {
	prefs := a.settings.Notify()
	return func() tea.Msg {
		if err := a.services.Notifications.Delete(a.ctx, id); err != nil {
			return errMsg{err}
		}
		feed, err := a.services.Notifications.Feed(a.ctx, prefs)
		if err != nil {
			return errMsg{err}
		}
		return feedMsg(feed)
	}
}

func (a *App) resetCmd() tea.Cmd {
	return func() tea.Msg {
		if err := a.services.Maintenance.Reset(a.ctx); err != nil {
			return errMsg{err}
		}
		return resetMsg{}
	}
}

// handoffCmd runs a clipboard or opener action and reports ok as status.
func handoffCmd(fn func() error, ok string) tea.Cmd {
	return func() tea.Msg {
		if err := fn(); err != nil {
			return errMsg{err}
		}
		return statusMsg(ok)
	}
}

func (a *App) tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func scanCooldown() tea.Cmd {
	return tea.Tick(scan.Cooldown, func(t time.Time) tea.Msg { return scanExpiredMsg(t) })
}
