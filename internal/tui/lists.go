package tui

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/basket/internal/grocery"
	"github.com/jask/basket/internal/widgets"
)

func (a *App) visibleLists() []grocery.GroceryList {
	return grocery.FilterLists(a.lists, a.search.Value(), a.filter)
}

func (a *App) selectedList() (grocery.GroceryList, bool) {
	visible := a.visibleLists()
	if a.listCursor < 0 || a.listCursor >= len(visible) {
		return grocery.GroceryList{}, false
	}
	return visible[a.listCursor], true
}

func (a *App) handleListsAction(action Action) (tea.Model, tea.Cmd) {
	switch action {
	case actionUp:
		a.listCursor = moveCursor(a.listCursor, -1, len(a.visibleLists()))
	case actionDown:
		a.listCursor = moveCursor(a.listCursor, 1, len(a.visibleLists()))
	case actionSearch:
		a.searching = true
		return a, a.search.Focus()
	case actionFilter:
		a.filterCursor = max(0, slices.Index(grocery.Filters, a.filter))
		a.modal = modalFilter
	case actionNewList:
		return a, a.openInput(inputNewList, "List name...", "")
	case actionSelect:
		l, ok := a.selectedList()
		if !ok {
			return a, nil
		}
		a.openDetail(l)
		return a, a.loadSuggestions()
	case actionDelete:
		l, ok := a.selectedList()
		if !ok {
			return a, nil
		}
		id := l.ID
		a.openConfirm("Delete List",
			"Are you sure you want to delete this list? This action cannot be undone.",
			func() tea.Cmd { return a.deleteListCmd(id) })
	case actionShop:
		l, ok := a.selectedList()
		if !ok {
			return a, nil
		}
		a.openDetail(l)
		return a, a.startShopping()
	}
	return a, nil
}

func (a *App) openDetail(l grocery.GroceryList) {
	if a.current.ID != l.ID {
		a.itemCursor, a.shopCursor = 0, 0
	}
	a.current = l
	a.view = viewDetail
}

func (a *App) handleSearchAction(action Action) (tea.Model, tea.Cmd) {
	switch action {
	case actionCancel:
		a.search.Reset()
	}
	a.searching = false
	a.search.Blur()
	a.listCursor = clampCursor(a.listCursor, len(a.visibleLists()))
	return a, nil
}

func (a *App) handleFilterAction(action Action) (tea.Model, tea.Cmd) {
	switch action {
	case actionUp:
		a.filterCursor = moveCursor(a.filterCursor, -1, len(grocery.Filters))
	case actionDown:
		a.filterCursor = moveCursor(a.filterCursor, 1, len(grocery.Filters))
	case actionSelect:
		a.filter = grocery.Filters[a.filterCursor]
		a.listCursor = 0
		a.modal = modalNone
	case actionCancel:
		a.modal = modalNone
	}
	return a, nil
}

func (a *App) renderLists() string {
	visible := a.visibleLists()
	rows := make([]string, 0, len(visible))
	for _, l := range visible {
		rows = append(rows, a.listRow(l))
	}

	header := a.styles.title.Render("My Lists")
	sub := fmt.Sprintf("%d lists", len(visible))
	if a.filter != grocery.FilterAll {
		sub += " · " + a.filter.Label()
	}
	search := a.styles.muted.Render("/ Search lists...")
	if a.searching || a.search.Value() != "" {
		search = a.search.View()
	}

	empty := "No lists yet. Press n to create one."
	if a.search.Value() != "" || a.filter != grocery.FilterAll {
		empty = "No lists match."
	}
	list := widgets.List{
		Items:    rows,
		Cursor:   a.listCursor,
		Empty:    a.styles.muted.Render(empty),
		Selected: a.styles.selected,
	}
	return strings.Join([]string{
		header + "  " + a.styles.muted.Render(sub),
		search,
		"",
		list.Render(a.bodyWidth(), a.bodyHeight(4)),
	}, "\n")
}

func (a *App) listRow(l grocery.GroceryList) string {
	done, total, pct := grocery.Progress(l)
	bar := widgets.ProgressBar{Percent: pct, Fill: a.styles.success}.Render(12, 1)
	kind := "personal"
	if l.Shared {
		kind = "shared"
	}
	name := l.Name
	if grocery.IsCompleted(l) {
		name = a.styles.done.Render(name)
	}
	return fmt.Sprintf("%s  %s  %d/%d items  %s  %s",
		name, bar, done, total,
		a.styles.muted.Render(kind), a.styles.muted.Render(l.Date))
}

func (a *App) renderFilterPicker() string {
	counts := grocery.CountByFilter(a.lists)
	var b strings.Builder
	b.WriteString(a.styles.title.Render("Filter Lists"))
	for i, f := range grocery.Filters {
		line := fmt.Sprintf("%s (%d)", f.Label(), counts[f])
		if f == a.filter {
			line += " ✓"
		}
		if i == a.filterCursor {
			line = a.styles.selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString("\n" + line)
	}
	return b.String()
}

func (a *App) bodyWidth() int {
	if a.width <= 0 {
		return 100
	}
	return a.width
}

// bodyHeight is the room left for the body after the header, status and
// footer lines, less reserved lines of screen chrome.
func (a *App) bodyHeight(reserved int) int {
	if a.height <= 0 {
		return 20
	}
	return max(3, a.height-6-reserved)
}
