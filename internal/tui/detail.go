package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/basket/internal/grocery"
	"github.com/jask/basket/internal/share"
	"github.com/jask/basket/internal/suggest"
	"github.com/jask/basket/internal/widgets"
)

func (a *App) displayedItems() []grocery.ListItem {
	return grocery.DisplayOrder(a.current.Items)
}

func (a *App) selectedItem() (grocery.ListItem, bool) {
	items := a.displayedItems()
	if a.itemCursor < 0 || a.itemCursor >= len(items) {
		return grocery.ListItem{}, false
	}
	return items[a.itemCursor], true
}

func (a *App) handleDetailAction(action Action) (tea.Model, tea.Cmd) {
	id := a.current.ID
	switch action {
	case actionUp:
		a.itemCursor = moveCursor(a.itemCursor, -1, len(a.current.Items))
	case actionDown:
		a.itemCursor = moveCursor(a.itemCursor, 1, len(a.current.Items))
	case actionBack:
		a.closeList()
	case actionToggle:
		if it, ok := a.selectedItem(); ok {
			return a, a.toggleItemCmd(id, it.ID)
		}
	case actionAdd:
		return a, tea.Batch(a.openInput(inputAddItem, "Add an item...", ""), a.loadSuggestions())
	case actionEdit:
		if it, ok := a.selectedItem(); ok {
			cmd := a.openInput(inputEditItem, "Item name", it.Name)
			a.editingID = it.ID
			return a, cmd
		}
	case actionDelete:
		if it, ok := a.selectedItem(); ok {
			itemID := it.ID
			a.openConfirm("Delete Item",
				fmt.Sprintf("Remove %q from this list?", it.Name),
				func() tea.Cmd { return a.deleteItemCmd(id, itemID) })
		}
	case actionShop:
		return a, a.startShopping()
	case actionShare:
		link := share.ListURL(a.cfg.Share.BaseURL, id)
		return a, handoffCmd(func() error { return a.opts.Handoff.CopyLink(link) }, "share link copied")
	case actionMail:
		link := share.MailtoURL(a.cfg.Share.BaseURL, id)
		return a, handoffCmd(func() error { return a.opts.Handoff.Open(link) }, "opening mail")
	case actionFindStores:
		return a, a.findStoresCmd()
	case actionAddSuggestion:
		if len(a.suggestions) > 0 {
			return a, a.addItemCmd(id, a.suggestions[0].Item)
		}
	case actionDismiss:
		if len(a.suggestions) > 0 {
			sid := a.suggestions[0].ID
			a.suggestions = suggest.Dismiss(a.suggestions, sid)
			return a, a.dismissSuggestionCmd(sid)
		}
	}
	return a, nil
}

// findStoresCmd opens directions to the nearest store.
func (a *App) findStoresCmd() tea.Cmd {
	goos := a.opts.GOOS
	return func() tea.Msg {
		stores, err := a.services.Shopping.ListStores(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		if len(stores) == 0 {
			return statusMsg("no stores nearby")
		}
		nearest := stores[0]
		link := share.MapsURL(goos, nearest.Name+", magasin le plus proche")
		if err := a.opts.Handoff.Open(link); err != nil {
			return errMsg{err}
		}
		return statusMsg(fmt.Sprintf("directions to %s (%s)", nearest.Name, nearest.Distance))
	}
}

func (a *App) renderDetail() string {
	l := a.current
	done, total, pct := grocery.Progress(l)
	kind := "Personal"
	if l.Shared {
		kind = "Shared"
	}
	lines := []string{
		a.styles.title.Render(l.Name) + "  " + a.styles.muted.Render(kind+" · "+l.Date),
		fmt.Sprintf("%s  %d of %d completed",
			widgets.ProgressBar{Percent: pct, Fill: a.styles.success, ShowLabel: true}.Render(30, 1),
			done, total),
		"",
	}

	items := a.displayedItems()
	rows := make([]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, a.itemRow(it))
	}
	tips := a.renderSuggestionStrip()
	reserved := len(lines)
	if tips != "" {
		reserved += strings.Count(tips, "\n") + 2
	}
	list := widgets.List{
		Items:    rows,
		Cursor:   a.itemCursor,
		Empty:    a.styles.muted.Render("No items yet. Press a to add one."),
		Selected: a.styles.selected,
	}
	lines = append(lines, list.Render(a.bodyWidth(), a.bodyHeight(reserved)))
	if tips != "" {
		lines = append(lines, "", tips)
	}
	return strings.Join(lines, "\n")
}

func (a *App) itemRow(it grocery.ListItem) string {
	name := it.Name
	if it.Checked {
		name = a.styles.done.Render(name)
	}
	row := checkbox(it.Checked) + " " + name
	if it.Quantity > 1 {
		row += fmt.Sprintf(" x%d", it.Quantity)
	}
	var meta []string
	if it.Category != "" {
		meta = append(meta, titleCaser.String(it.Category))
	}
	if it.EstimatedPrice > 0 {
		meta = append(meta, a.money(it.LineTotal()))
	}
	if len(meta) > 0 {
		row += "  " + a.styles.muted.Render(strings.Join(meta, " · "))
	}
	return row
}

func (a *App) renderSuggestionStrip() string {
	if !a.settings.Suggestions || len(a.suggestions) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(a.styles.muted.Render("Smart suggestions"))
	for i, s := range a.suggestions {
		if i == 3 {
			break
		}
		price := a.money(s.DiscountedPrice())
		if s.Discount > 0 {
			price += a.styles.good.Render(fmt.Sprintf(" -%d%%", s.Discount))
		}
		marker := "  "
		if i == 0 {
			marker = "+ "
		}
		fmt.Fprintf(&b, "\n%s%s  [%s] %s  %s", marker, s.Item, s.Reason.Label(), price,
			a.styles.muted.Render(fmt.Sprintf("%d%% · %s", s.Confidence, s.Details)))
	}
	return b.String()
}
