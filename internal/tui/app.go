package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/basket/internal/config"
	"github.com/jask/basket/internal/grocery"
	"github.com/jask/basket/internal/prefs"
	"github.com/jask/basket/internal/scan"
	"github.com/jask/basket/internal/service"
	"github.com/jask/basket/internal/share"
	"github.com/jask/basket/internal/shopping"
	"github.com/jask/basket/internal/suggest"
	"github.com/jask/basket/internal/widgets"
)

// App ties together views.
type App struct {
	ctx      context.Context
	services Services
	opts     Options
	cfg      config.Config
	keys     *KeyRegistry
	help     help.Model
	styles   styles
	width    int
	height   int

	tab    tab
	view   listView
	modal  modalState
	status string
	isErr  bool

	// lists tab
	lists        []grocery.GroceryList
	listCursor   int
	search       textinput.Model
	searching    bool
	filter       grocery.Filter
	filterCursor int
	current      grocery.GroceryList
	itemCursor   int
	suggestions  []suggest.Suggestion

	// shopping mode
	stores      []shopping.Store
	storeCursor int
	session     shopping.Session
	sessionList string
	routed      bool
	ticking     bool
	shopCursor  int
	summary     *shopping.Summary

	// modals
	input     textinput.Model
	inputFor  inputPurpose
	newShared bool
	editingID string
	confirm   confirmation

	// other tabs
	overview       service.Overview
	feed           service.Feed
	alertCursor    int
	settings       prefs.Settings
	settingsCursor int
	profileOpen    bool
	profileCursor  int
	profileField   profileField
	cardBalance    float64
}

// Services are the session store operations the screens call.
type Services struct {
	Lists         *service.ListService
	Notifications *service.NotificationService
	Suggestions   *service.SuggestionService
	Budget        *service.BudgetService
	Shopping      *service.ShoppingService
	Maintenance   *service.MaintenanceService
}

// Options carry the pieces that touch the outside world.
type Options struct {
	Settings     prefs.Settings
	SaveSettings func(prefs.Settings) error
	SaveProfile  func(config.ProfileConfig) error
	Scanner      *scan.Scanner
	Handoff      *share.Handoff
	GOOS         string
	Now          func() time.Time
	StartTab     string
	Filter       grocery.Filter
}

type tab int

const (
	tabLists tab = iota
	tabBudget
	tabScan
	tabAlerts
	tabSettings
)

var tabNames = []string{"Lists", "Budget", "Scan", "Alerts", "Settings"}

// ParseTab maps a tab name such as "budget" to its tab.
func ParseTab(name string) (tab, bool) {
	for i, n := range tabNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return tab(i), true
		}
	}
	return tabLists, false
}

type listView string

const (
	viewOverview    listView = "overview"
	viewDetail      listView = "detail"
	viewStorePicker listView = "storePicker"
	viewShopping    listView = "shopping"
)

type modalState string

const (
	modalNone    modalState = ""
	modalFilter  modalState = "filter"
	modalInput   modalState = "input"
	modalConfirm modalState = "confirm"
	modalSummary modalState = "summary"
)

type inputPurpose string

const (
	inputNewList  inputPurpose = "newList"
	inputAddItem  inputPurpose = "addItem"
	inputEditItem inputPurpose = "editItem"
	inputCapture  inputPurpose = "capture"
	inputProfile  inputPurpose = "profile"
)

type confirmation struct {
	title string
	body  string
	yes   func() tea.Cmd
	no    func() tea.Cmd
}

func New(ctx context.Context, cfg config.Config, services Services, opts Options) *App {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Scanner == nil {
		opts.Scanner = scan.New(nil)
	}
	if opts.Handoff == nil {
		opts.Handoff = share.NewHandoff()
	}
	if opts.GOOS == "" {
		opts.GOOS = opts.Handoff.GOOS
	}
	search := textinput.New()
	search.Placeholder = "Search lists..."
	search.Prompt = "/ "
	input := textinput.New()
	input.CharLimit = 80

	a := &App{
		ctx:         ctx,
		services:    services,
		opts:        opts,
		cfg:         cfg,
		keys:        NewKeyRegistry(),
		help:        help.New(),
		search:      search,
		input:       input,
		filter:      grocery.FilterAll,
		settings:    opts.Settings,
		cardBalance: cfg.Profile.CardBalance,
		view:        viewOverview,
	}
	if t, ok := ParseTab(opts.StartTab); ok {
		a.tab = t
	}
	if opts.Filter != "" {
		a.filter = opts.Filter
	}
	a.applyTheme()
	return a
}

func (a *App) applyTheme() {
	a.styles = newStyles(a.settings.DarkMode || a.cfg.UI.Theme == "dark")
}

func (a *App) now() time.Time { return a.opts.Now() }

func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.loadLists(), a.loadFeed(), a.loadOverview()}
	if a.tab == tabScan {
		cmds = append(cmds, a.enterScan())
	}
	return tea.Batch(cmds...)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
	case tea.KeyMsg:
		return a.handleKey(m)
	case listsMsg:
		a.lists = []grocery.GroceryList(m)
		a.listCursor = clampCursor(a.listCursor, len(a.visibleLists()))
		if a.view != viewOverview {
			l, err := grocery.FindList(a.lists, a.current.ID)
			if err != nil {
				a.closeList()
				return a, nil
			}
			a.current = l
		}
	case createdMsg:
		l := grocery.GroceryList(m)
		a.lists = grocery.PrependList(a.lists, l)
		a.listCursor = max(0, slices.IndexFunc(a.visibleLists(), func(v grocery.GroceryList) bool { return v.ID == l.ID }))
		a.setStatus(fmt.Sprintf("created %q", l.Name))
	case deletedMsg:
		a.lists = grocery.DeleteList(a.lists, string(m))
		a.listCursor = clampCursor(a.listCursor, len(a.visibleLists()))
		if a.view != viewOverview && a.current.ID == string(m) {
			a.closeList()
		}
	case listMsg:
		a.setCurrent(grocery.GroceryList(m))
		return a, a.loadSuggestions()
	case addedMsg:
		a.setCurrent(m.List)
		switch {
		case !m.Added:
		case m.Similar != nil:
			a.setStatus(fmt.Sprintf("added; %q is already on this list", m.Similar.Name))
		default:
			a.setStatus("item added")
		}
		return a, a.loadSuggestions()
	case suggestionsMsg:
		a.suggestions = []suggest.Suggestion(m)
	case storesMsg:
		a.stores = []shopping.Store(m)
		a.storeCursor = clampCursor(a.storeCursor, len(a.stores))
	case overviewMsg:
		a.overview = service.Overview(m)
	case feedMsg:
		a.feed = service.Feed(m)
		a.alertCursor = clampCursor(a.alertCursor, len(a.feed.Items))
	case statusMsg:
		a.setStatus(string(m))
	case errMsg:
		a.status = "error: " + m.Error()
		a.isErr = true
	case tickMsg:
		a.ticking = false
		if a.session.Active() && a.view == viewShopping {
			return a, a.startTicking()
		}
	case scanExpiredMsg:
		a.opts.Scanner.Expire(time.Time(m))
	case resetMsg:
		a.closeList()
		a.session = shopping.Session{}
		a.sessionList = ""
		a.listCursor, a.alertCursor = 0, 0
		a.setStatus("session reset")
		return a, tea.Batch(a.loadLists(), a.loadFeed(), a.loadOverview())
	}
	return a, nil
}

func (a *App) setStatus(s string) {
	a.status = s
	a.isErr = false
}

func (a *App) setCurrent(l grocery.GroceryList) {
	a.current = l
	a.itemCursor = clampCursor(a.itemCursor, len(l.Items))
	a.shopCursor = clampCursor(a.shopCursor, len(l.Items))
	for i := range a.lists {
		if a.lists[i].ID == l.ID {
			a.lists[i] = l
		}
	}
}

func (a *App) closeList() {
	a.view = viewOverview
	a.current = grocery.GroceryList{}
	a.itemCursor, a.shopCursor = 0, 0
	a.suggestions = nil
}

func clampCursor(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}

func moveCursor(cursor, delta, n int) int {
	return clampCursor(cursor+delta, n)
}

func (a *App) scope() string {
	switch a.modal {
	case modalConfirm:
		return scopeConfirm
	case modalInput:
		return scopeInput
	case modalFilter:
		return scopeFilter
	case modalSummary:
		return scopeSummary
	}
	if a.searching {
		return scopeSearch
	}
	switch a.tab {
	case tabBudget:
		return scopeBudget
	case tabScan:
		return scopeScan
	case tabAlerts:
		return scopeAlerts
	case tabSettings:
		if a.profileOpen {
			return scopeProfile
		}
		return scopeSettings
	}
	switch a.view {
	case viewDetail:
		return scopeDetail
	case viewStorePicker:
		return scopeStorePicker
	case viewShopping:
		return scopeShopping
	}
	return scopeLists
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}
	scope := a.scope()
	b := a.keys.Lookup(m.String(), scope)

	switch scope {
	case scopeSearch:
		if b == nil {
			var cmd tea.Cmd
			a.search, cmd = a.search.Update(m)
			a.listCursor = clampCursor(a.listCursor, len(a.visibleLists()))
			return a, cmd
		}
		return a.handleSearchAction(b.Action)
	case scopeInput:
		if b == nil {
			var cmd tea.Cmd
			a.input, cmd = a.input.Update(m)
			if a.inputFor == inputAddItem {
				return a, tea.Batch(cmd, a.loadSuggestions())
			}
			return a, cmd
		}
		return a.handleInputAction(b.Action)
	}
	if b == nil {
		return a, nil
	}

	switch b.Action {
	case actionQuit:
		return a, tea.Quit
	case actionNextTab:
		return a, a.switchTab((a.tab + 1) % tab(len(tabNames)))
	case actionPrevTab:
		return a, a.switchTab((a.tab + tab(len(tabNames)) - 1) % tab(len(tabNames)))
	case actionGoLists:
		return a, a.switchTab(tabLists)
	case actionGoBudget:
		return a, a.switchTab(tabBudget)
	case actionGoScan:
		return a, a.switchTab(tabScan)
	case actionGoAlerts:
		return a, a.switchTab(tabAlerts)
	case actionGoSettings:
		return a, a.switchTab(tabSettings)
	}

	switch scope {
	case scopeConfirm:
		return a.handleConfirmAction(b.Action)
	case scopeFilter:
		return a.handleFilterAction(b.Action)
	case scopeSummary:
		a.modal = modalNone
		a.summary = nil
		a.view = viewDetail
		return a, nil
	case scopeLists:
		return a.handleListsAction(b.Action)
	case scopeDetail:
		return a.handleDetailAction(b.Action)
	case scopeStorePicker:
		return a.handleStorePickerAction(b.Action)
	case scopeShopping:
		return a.handleShoppingAction(b.Action)
	case scopeScan:
		return a.handleScanAction(b.Action)
	case scopeAlerts:
		return a.handleAlertsAction(b.Action)
	case scopeSettings:
		return a.handleSettingsAction(b.Action)
	case scopeProfile:
		return a.handleProfileAction(b.Action)
	}
	return a, nil
}

func (a *App) switchTab(t tab) tea.Cmd {
	a.tab = t
	a.profileOpen = false
	switch t {
	case tabBudget:
		return a.loadOverview()
	case tabAlerts:
		return a.loadFeed()
	case tabScan:
		return a.enterScan()
	}
	return nil
}

func (a *App) openConfirm(title, body string, yes func() tea.Cmd) {
	a.confirm = confirmation{title: title, body: body, yes: yes}
	a.modal = modalConfirm
}

func (a *App) handleConfirmAction(action Action) (tea.Model, tea.Cmd) {
	c := a.confirm
	a.modal = modalNone
	a.confirm = confirmation{}
	switch action {
	case actionConfirm:
		if c.yes != nil {
			return a, c.yes()
		}
	case actionCancel:
		if c.no != nil {
			return a, c.no()
		}
	}
	return a, nil
}

func (a *App) openInput(purpose inputPurpose, placeholder, value string) tea.Cmd {
	a.inputFor = purpose
	a.input.Reset()
	a.input.Placeholder = placeholder
	a.input.SetValue(value)
	a.input.CursorEnd()
	a.newShared = false
	a.modal = modalInput
	return a.input.Focus()
}

func (a *App) closeInput() {
	a.modal = modalNone
	a.input.Blur()
	a.editingID = ""
}

func (a *App) handleInputAction(action Action) (tea.Model, tea.Cmd) {
	switch action {
	case actionCancel:
		a.closeInput()
		if a.inputFor == inputAddItem {
			return a, a.loadSuggestions()
		}
		return a, nil
	case actionShared:
		if a.inputFor == inputNewList {
			a.newShared = !a.newShared
		}
		return a, nil
	}

	value := a.input.Value()
	purpose, editing := a.inputFor, a.editingID
	a.closeInput()
	switch purpose {
	case inputNewList:
		return a, a.createListCmd(value, a.newShared)
	case inputAddItem:
		return a, a.addItemCmd(a.current.ID, value)
	case inputEditItem:
		return a, a.editItemCmd(a.current.ID, editing, value)
	case inputCapture:
		return a, a.capture(value)
	case inputProfile:
		return a, a.updateProfile(a.profileField, value)
	}
	return a, nil
}

func (a *App) View() string {
	header := a.renderTabs()
	var body string
	switch a.tab {
	case tabBudget:
		body = a.renderBudget()
	case tabScan:
		body = a.renderScan()
	case tabAlerts:
		body = a.renderAlerts()
	case tabSettings:
		body = a.renderSettings()
	default:
		switch a.view {
		case viewDetail:
			body = a.renderDetail()
		case viewStorePicker:
			body = a.renderStorePicker()
		case viewShopping:
			body = a.renderShopping()
		default:
			body = a.renderLists()
		}
	}

	status := ""
	if a.status != "" {
		if a.isErr {
			status = a.styles.statusErr.Render(a.status)
		} else {
			status = a.styles.status.Render(a.status)
		}
	}
	footer := a.help.ShortHelpView(a.keys.HelpBindings(a.scope()))
	base := lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", status, footer)

	if a.modal == modalNone {
		return base
	}
	popup := a.renderModal()
	if a.width <= 0 || a.height <= 0 {
		return base + "\n\n" + popup
	}
	return widgets.RenderPopup(base, popup, a.width, a.height, a.styles.accent)
}

func (a *App) renderTabs() string {
	parts := []string{a.styles.title.Render("basket")}
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if tab(i) == tabAlerts && a.settings.Push && a.feed.Unread > 0 {
			label += " " + a.styles.badge.Render(fmt.Sprintf("(%d)", a.feed.Unread))
		}
		if tab(i) == a.tab {
			parts = append(parts, a.styles.activeTab.Foreground(tabColors[tab(i)]).Render(label))
		} else {
			parts = append(parts, a.styles.tab.Render(label))
		}
	}
	bar := strings.Join(parts, " ")
	if layout := a.cfg.UI.DateFormat; layout != "" {
		bar += "  " + a.styles.muted.Render(a.now().Format(layout))
	}
	return bar
}

func (a *App) renderModal() string {
	switch a.modal {
	case modalConfirm:
		return a.styles.title.Render(a.confirm.title) + "\n" + a.confirm.body + "\n\n[y] Yes  [n] No"
	case modalFilter:
		return a.renderFilterPicker()
	case modalSummary:
		return a.renderSummary()
	case modalInput:
		var title string
		switch a.inputFor {
		case inputNewList:
			title = "Create New List"
		case inputAddItem:
			title = "Add Item"
		case inputEditItem:
			title = "Edit Item"
		case inputCapture:
			title = "Scan Barcode"
		case inputProfile:
			title = "Edit " + profileFieldLabels[a.profileField]
		}
		out := a.styles.title.Render(title) + "\n" + a.input.View()
		if a.inputFor == inputNewList {
			out += fmt.Sprintf("\n%s Share with family  [tab] toggle", checkbox(a.newShared))
		}
		if a.inputFor == inputAddItem && len(a.suggestions) > 0 {
			out += "\n" + a.styles.muted.Render("Suggestions: "+suggestionNames(a.suggestions, 3))
		}
		return out + "\n[enter] Save  [esc] Cancel"
	}
	return ""
}

func suggestionNames(ss []suggest.Suggestion, n int) string {
	names := make([]string, 0, n)
	for i := 0; i < len(ss) && i < n; i++ {
		names = append(names, ss[i].Item)
	}
	return strings.Join(names, ", ")
}
