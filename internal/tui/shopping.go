package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/basket/internal/grocery"
	"github.com/jask/basket/internal/shopping"
	"github.com/jask/basket/internal/widgets"
)

// startShopping resumes a running trip for the open list, or asks for a
// store first.
func (a *App) startShopping() tea.Cmd {
	if a.sessionList == a.current.ID && !a.session.Started.IsZero() {
		a.session.Start(a.session.Store, a.now())
		a.view = viewShopping
		return a.startTicking()
	}
	a.view = viewStorePicker
	return a.loadStores()
}

func (a *App) startTicking() tea.Cmd {
	if a.ticking {
		return nil
	}
	a.ticking = true
	return a.tick()
}

func (a *App) handleStorePickerAction(action Action) (tea.Model, tea.Cmd) {
	switch action {
	case actionUp:
		a.storeCursor = moveCursor(a.storeCursor, -1, len(a.stores))
	case actionDown:
		a.storeCursor = moveCursor(a.storeCursor, 1, len(a.stores))
	case actionBack:
		a.view = viewDetail
	case actionSelect:
		if a.storeCursor >= len(a.stores) {
			return a, nil
		}
		a.session = shopping.Session{}
		a.session.Start(a.stores[a.storeCursor], a.now())
		a.sessionList = a.current.ID
		a.routed = false
		a.shopCursor = 0
		a.view = viewShopping
		return a, a.startTicking()
	}
	return a, nil
}

func (a *App) shoppingGroups() []shopping.Group {
	if a.routed {
		return shopping.RouteOrder(a.current.Items)
	}
	return shopping.GroupByCategory(a.current.Items)
}

// shoppingItems flattens the groups in on-screen order.
func (a *App) shoppingItems() []grocery.ListItem {
	var out []grocery.ListItem
	for _, g := range a.shoppingGroups() {
		out = append(out, g.Items...)
	}
	return out
}

func (a *App) handleShoppingAction(action Action) (tea.Model, tea.Cmd) {
	items := a.shoppingItems()
	var selected *grocery.ListItem
	if a.shopCursor >= 0 && a.shopCursor < len(items) {
		selected = &items[a.shopCursor]
	}
	id := a.current.ID
	switch action {
	case actionUp:
		a.shopCursor = moveCursor(a.shopCursor, -1, len(items))
	case actionDown:
		a.shopCursor = moveCursor(a.shopCursor, 1, len(items))
	case actionToggle:
		if selected != nil {
			return a, a.toggleItemCmd(id, selected.ID)
		}
	case actionQtyUp:
		if selected != nil {
			return a, a.quantityCmd(id, selected.ID, 1)
		}
	case actionQtyDown:
		if selected != nil {
			return a, a.quantityCmd(id, selected.ID, -1)
		}
	case actionRoute:
		a.routed = !a.routed
		a.shopCursor = 0
		if a.routed {
			a.setStatus("route optimised by aisle")
		} else {
			a.setStatus("grouped by priority")
		}
	case actionFinish:
		sum := a.session.Finish(a.current.Items, a.now())
		a.summary = &sum
		a.sessionList = ""
		a.modal = modalSummary
	case actionBack:
		a.session.Pause()
		a.view = viewDetail
	}
	return a, nil
}

func (a *App) renderStorePicker() string {
	rows := make([]string, 0, len(a.stores))
	mark := a.cfg.UI.CurrencySymbol
	if mark == "" {
		mark = "€"
	}
	for _, s := range a.stores {
		row := fmt.Sprintf("%s  %s · %s · ★ %.1f · %s",
			s.Name, s.Distance, s.EstimatedTime, s.Rating, s.PriceLevel.Symbol(mark))
		if s.Savings > 0 {
			row += a.styles.good.Render(fmt.Sprintf("  save %d%%", s.Savings))
		}
		if len(s.Features) > 0 {
			row += "  " + a.styles.muted.Render(strings.Join(s.Features, ", "))
		}
		rows = append(rows, row)
	}
	list := widgets.List{
		Items:    rows,
		Cursor:   a.storeCursor,
		Empty:    a.styles.muted.Render("Loading stores..."),
		Selected: a.styles.selected,
	}
	return a.styles.title.Render("Choose a store") + "  " + a.styles.muted.Render(a.current.Name) +
		"\n\n" + list.Render(a.bodyWidth(), a.bodyHeight(2))
}

func (a *App) renderShopping() string {
	items := a.current.Items
	est := shopping.EstimatedTotal(items)
	actual := shopping.ActualTotal(items)
	header := fmt.Sprintf("%s  %s  %s",
		a.styles.title.Render(a.session.Store.Name),
		a.styles.muted.Render(a.current.Name),
		a.session.Elapsed(a.now()))
	totals := fmt.Sprintf("%d/%d collected · %s / %s",
		shopping.Collected(items), len(items), a.money(actual), a.money(est))
	if a.session.Store.Savings > 0 {
		totals += a.styles.good.Render(fmt.Sprintf(" · save ~%s", a.money(a.session.ExpectedSavings(actual))))
	}

	var rows []string
	cursor := 0
	i := 0
	for _, g := range a.shoppingGroups() {
		title := fmt.Sprintf("%s (%d/%d)", titleCaser.String(g.Category), g.Checked(), len(g.Items))
		if g.Aisle != "" {
			title += " · " + g.Aisle
		}
		rows = append(rows, a.styles.muted.Render(title))
		for _, it := range g.Items {
			if i == a.shopCursor {
				cursor = len(rows)
			}
			rows = append(rows, "  "+a.shoppingRow(it))
			i++
		}
	}
	list := widgets.List{
		Items:    rows,
		Cursor:   cursor,
		Empty:    a.styles.muted.Render("Nothing to buy."),
		Selected: a.styles.selected,
	}
	return header + "\n" + totals + "\n\n" + list.Render(a.bodyWidth(), a.bodyHeight(3))
}

func (a *App) shoppingRow(it grocery.ListItem) string {
	name := it.Name
	if it.Checked {
		name = a.styles.done.Render(name)
	}
	row := fmt.Sprintf("%s %s x%d", checkbox(it.Checked), name, it.Qty())
	if it.EstimatedPrice > 0 {
		row += "  " + a.money(it.LineTotal())
	}
	switch it.Priority {
	case grocery.PriorityHigh:
		row += " " + a.styles.bad.Render("!")
	case grocery.PriorityMedium:
		row += " " + a.styles.warn.Render("·")
	}
	return row
}

func (a *App) renderSummary() string {
	if a.summary == nil {
		return ""
	}
	s := a.summary
	lines := []string{
		a.styles.title.Render("Shopping complete!"),
		fmt.Sprintf("Collected  %d of %d items", s.Collected, s.Total),
		fmt.Sprintf("Spent      %s", a.money(s.Spent)),
		fmt.Sprintf("Saved      %s", a.styles.good.Render(a.money(s.Saved))),
		fmt.Sprintf("Time       %s", s.Elapsed),
		"",
		"[enter] Done",
	}
	return strings.Join(lines, "\n")
}
