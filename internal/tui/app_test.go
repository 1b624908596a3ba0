package tui

import (
	"context"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/basket/internal/config"
	"github.com/jask/basket/internal/database"
	"github.com/jask/basket/internal/database/repository"
	"github.com/jask/basket/internal/grocery"
	"github.com/jask/basket/internal/prefs"
	"github.com/jask/basket/internal/scan"
	"github.com/jask/basket/internal/service"
	"github.com/jask/basket/internal/share"
)

var fixedNow = time.UnixMilli(1718438400000).UTC()

// cmdTimeout drops commands that wait on timers, like the shopping clock
// and the scan cooldown.
const cmdTimeout = 500 * time.Millisecond

type harness struct {
	t        *testing.T
	app      *App
	copied   []string
	opened   []string
	saved    []prefs.Settings
	profiles []config.ProfileConfig
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	db, err := database.OpenSession(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := config.Config{
		UI:      config.UIConfig{Currency: "EUR", CurrencySymbol: "€"},
		Share:   config.ShareConfig{BaseURL: share.DefaultBaseURL},
		Budget:  config.BudgetConfig{Total: 500, LastMonthSpent: 280, SavingsGoal: 150, CurrentSavings: 95},
		Profile: config.ProfileConfig{FirstName: "John", LastName: "Doe", CardBalance: 250},
	}
	now := func() time.Time { return fixedNow }
	services := Services{
		Lists:         &service.ListService{Lists: repository.NewListRepo(db), Now: now},
		Notifications: &service.NotificationService{Notifications: repository.NewNotificationRepo(db)},
		Suggestions:   &service.SuggestionService{Suggestions: repository.NewSuggestionRepo(db)},
		Budget:        &service.BudgetService{Budget: repository.NewBudgetRepo(db), Config: cfg.Budget},
		Shopping:      &service.ShoppingService{Stores: repository.NewStoreRepo(db)},
		Maintenance:   &service.MaintenanceService{DB: db},
	}

	h := &harness{t: t}
	handoff := &share.Handoff{
		GOOS: "linux",
		Copy: func(text string) error {
			h.copied = append(h.copied, text)
			return nil
		},
		Start: func(cmd *exec.Cmd) error {
			h.opened = append(h.opened, cmd.Args[len(cmd.Args)-1])
			return nil
		},
	}
	h.app = New(ctx, cfg, services, Options{
		Settings: prefs.Defaults(),
		SaveSettings: func(s prefs.Settings) error {
			h.saved = append(h.saved, s)
			return nil
		},
		SaveProfile: func(p config.ProfileConfig) error {
			h.profiles = append(h.profiles, p)
			return nil
		},
		Scanner: scan.New(nil),
		Handoff: handoff,
		Now:     now,
	})
	h.app.input.Cursor.SetMode(cursor.CursorStatic)
	h.app.search.Cursor.SetMode(cursor.CursorStatic)
	h.run(h.app.Init(), 0)
	return h
}

func runCmd(cmd tea.Cmd) tea.Msg {
	out := make(chan tea.Msg, 1)
	go func() { out <- cmd() }()
	select {
	case msg := <-out:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

func (h *harness) run(cmd tea.Cmd, depth int) {
	h.t.Helper()
	if cmd == nil {
		return
	}
	if depth > 16 {
		h.t.Fatal("command chain exceeded max depth")
	}
	switch msg := runCmd(cmd).(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			h.run(c, depth+1)
		}
	default:
		_, next := h.app.Update(msg)
		h.run(next, depth+1)
	}
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func (h *harness) press(keys ...string) {
	h.t.Helper()
	for _, k := range keys {
		_, cmd := h.app.Update(keyMsg(k))
		h.run(cmd, 0)
	}
}

func (h *harness) typeText(s string) {
	h.t.Helper()
	for _, r := range s {
		if r == ' ' {
			h.press("space")
			continue
		}
		h.press(string(r))
	}
}

func (h *harness) listNames() []string {
	names := make([]string, 0, len(h.app.lists))
	for _, l := range h.app.lists {
		names = append(names, l.Name)
	}
	return names
}

func (h *harness) storedList(id string) grocery.GroceryList {
	h.t.Helper()
	l, err := h.app.services.Lists.Get(h.app.ctx, id)
	require.NoError(h.t, err)
	return l
}

// storedNames reads the list names back from the session store.
func (h *harness) storedNames() []string {
	h.t.Helper()
	lists, err := h.app.services.Lists.All(h.app.ctx)
	require.NoError(h.t, err)
	names := make([]string, len(lists))
	for i, l := range lists {
		names[i] = l.Name
	}
	return names
}

func weeklyID() string { return database.FixtureLists()[0].ID }

func itemNames(items []grocery.ListItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestInitLoadsSession(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, []string{"Weekly Groceries", "Courses de la semaine", "BBQ Weekend", "Party Supplies"}, h.listNames())
	require.Equal(t, 2, h.app.feed.Unread)
	require.Len(t, h.app.overview.Categories, 4)
	require.Equal(t, tabLists, h.app.tab)
}

func TestCreateListIgnoresBlankName(t *testing.T) {
	h := newHarness(t)

	h.press("n")
	require.Equal(t, modalInput, h.app.modal)
	h.typeText("  ")
	h.press("enter")
	require.Equal(t, modalNone, h.app.modal)
	require.Len(t, h.app.lists, 4)

	h.press("n")
	h.typeText("Dinner party")
	h.press("tab", "enter")
	require.Len(t, h.app.lists, 5)
	require.Equal(t, "Dinner party", h.app.lists[0].Name)
	require.True(t, h.app.lists[0].Shared)
	require.Equal(t, 0, h.app.listCursor)
	require.Contains(t, h.app.status, "Dinner party")
	require.Equal(t, h.storedNames(), h.listNames())
}

func TestDeleteListNeedsConfirmation(t *testing.T) {
	h := newHarness(t)

	h.press("d")
	require.Equal(t, modalConfirm, h.app.modal)
	require.Contains(t, h.app.View(), "cannot be undone")
	h.press("n")
	require.Equal(t, modalNone, h.app.modal)
	require.Len(t, h.app.lists, 4)

	h.press("d", "esc")
	require.Len(t, h.app.lists, 4)

	h.press("d", "y")
	require.Equal(t, []string{"Courses de la semaine", "BBQ Weekend", "Party Supplies"}, h.listNames())
	require.Equal(t, h.storedNames(), h.listNames())
}

func TestConfirmSwallowsTabSwitch(t *testing.T) {
	h := newHarness(t)
	h.press("d", "2", "q")
	require.Equal(t, tabLists, h.app.tab)
	require.Equal(t, modalConfirm, h.app.modal)
}

func TestSearchAndFilter(t *testing.T) {
	h := newHarness(t)

	h.press("/")
	require.True(t, h.app.searching)
	h.typeText("bbq")
	require.Len(t, h.app.visibleLists(), 1)
	h.press("enter")
	require.False(t, h.app.searching)
	require.Equal(t, "bbq", h.app.search.Value())
	require.Len(t, h.app.visibleLists(), 1)

	h.press("/", "esc")
	require.Empty(t, h.app.search.Value())
	require.Len(t, h.app.visibleLists(), 4)

	h.press("f")
	require.Equal(t, modalFilter, h.app.modal)
	require.Contains(t, h.app.renderFilterPicker(), "Shared Lists (2)")
	h.press("j", "j", "enter")
	require.Equal(t, grocery.FilterPersonal, h.app.filter)
	require.Equal(t, []string{"Courses de la semaine", "Party Supplies"}, itemNamesOfLists(h.app.visibleLists()))

	h.press("f", "j", "enter")
	require.Equal(t, grocery.FilterCompleted, h.app.filter)
	require.Equal(t, []string{"Party Supplies"}, itemNamesOfLists(h.app.visibleLists()))
}

func itemNamesOfLists(ls []grocery.GroceryList) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.Name
	}
	return out
}

func TestDetailToggleAndAdd(t *testing.T) {
	h := newHarness(t)

	h.press("enter")
	require.Equal(t, viewDetail, h.app.view)
	require.Equal(t, weeklyID(), h.app.current.ID)
	require.Equal(t, []string{"Bread", "Butter", "Cheese", "Milk", "Eggs"}, itemNames(h.app.displayedItems()))

	h.press("space")
	stored := h.storedList(weeklyID())
	i := slices.IndexFunc(stored.Items, func(it grocery.ListItem) bool { return it.ID == h.app.current.Items[2].ID })
	require.GreaterOrEqual(t, i, 0)
	bread := stored.Items[i]
	require.Equal(t, "Bread", bread.Name)
	require.True(t, bread.Checked)
	require.Equal(t, []string{"Butter", "Cheese", "Milk", "Eggs", "Bread"}, itemNames(h.app.displayedItems()))

	h.press("a")
	h.typeText("Chese")
	h.press("enter")
	require.Len(t, h.app.current.Items, 6)
	require.Equal(t, "Chese", h.app.current.Items[5].Name)
	require.Contains(t, h.app.status, `"Cheese"`)
	require.Len(t, h.storedList(weeklyID()).Items, 6)

	h.press("a", "enter")
	require.Len(t, h.app.current.Items, 6)
}

func TestEditItem(t *testing.T) {
	h := newHarness(t)
	h.press("enter", "e")
	require.Equal(t, "Bread", h.app.input.Value())
	h.typeText(" rolls")
	h.press("enter")
	require.Equal(t, "Bread rolls", h.app.displayedItems()[0].Name)
	require.Equal(t, "Bread rolls", h.storedList(weeklyID()).Items[2].Name)
}

func TestDeleteItemCancelKeepsItem(t *testing.T) {
	h := newHarness(t)
	h.press("enter", "d")
	require.Equal(t, modalConfirm, h.app.modal)
	h.press("esc")
	require.Len(t, h.storedList(weeklyID()).Items, 5)

	h.press("d", "y")
	require.Equal(t, []string{"Milk", "Eggs", "Butter", "Cheese"}, itemNames(h.storedList(weeklyID()).Items))
}

func TestSuggestionsStrip(t *testing.T) {
	h := newHarness(t)
	h.press("enter")
	require.NotEmpty(t, h.app.suggestions)
	top := h.app.suggestions[0]
	require.Equal(t, "Lait Bio", top.Item)

	h.press("x")
	require.NotEqual(t, top.ID, h.app.suggestions[0].ID)
	h.run(h.app.loadSuggestions(), 0)
	for _, s := range h.app.suggestions {
		require.NotEqual(t, top.ID, s.ID)
	}

	next := h.app.suggestions[0].Item
	h.press("+")
	require.Contains(t, itemNames(h.app.current.Items), next)
	for _, s := range h.app.suggestions {
		require.NotEqual(t, next, s.Item)
	}
}

func TestShareAndHandoff(t *testing.T) {
	h := newHarness(t)
	h.press("enter", "S")
	require.Equal(t, []string{share.ListURL(share.DefaultBaseURL, weeklyID())}, h.copied)
	require.Equal(t, "share link copied", h.app.status)

	h.press("m")
	require.Len(t, h.opened, 1)
	require.True(t, strings.HasPrefix(h.opened[0], "mailto:"))

	h.press("F")
	require.Len(t, h.opened, 2)
	require.Equal(t, share.MapsURL("linux", "Lidl, magasin le plus proche"), h.opened[1])
	require.Contains(t, h.app.status, "Lidl")
}

func TestShoppingFinishSummary(t *testing.T) {
	h := newHarness(t)
	h.press("j", "s")
	require.Equal(t, viewStorePicker, h.app.view)
	require.Len(t, h.app.stores, 4)
	require.Equal(t, "Lidl", h.app.stores[0].Name)

	h.press("enter")
	require.Equal(t, viewShopping, h.app.view)
	require.True(t, h.app.session.Active())
	require.Equal(t, "Lait", h.app.shoppingItems()[0].Name)

	h.press("space")
	require.True(t, h.app.shoppingItems()[0].Checked)
	require.Contains(t, h.app.View(), "1/8 collected")

	h.press("+")
	require.Equal(t, 3, h.app.shoppingItems()[0].Quantity)
	h.press("-", "-", "-", "-")
	require.Equal(t, 1, h.app.shoppingItems()[0].Quantity)
	h.press("+")
	require.Contains(t, h.app.View(), "save ~"+formatMoney(0.36, "EUR"))

	h.press("F")
	require.Equal(t, modalSummary, h.app.modal)
	require.NotNil(t, h.app.summary)
	require.Equal(t, 1, h.app.summary.Collected)
	require.Equal(t, 8, h.app.summary.Total)
	require.InDelta(t, 2.40, h.app.summary.Spent, 1e-9)
	require.InDelta(t, 0.36, h.app.summary.Saved, 1e-9)
	require.Equal(t, "0:00", h.app.summary.Elapsed)
	require.False(t, h.app.session.Active())

	h.press("enter")
	require.Equal(t, modalNone, h.app.modal)
	require.Equal(t, viewDetail, h.app.view)
}

func TestShoppingBackResumesSession(t *testing.T) {
	h := newHarness(t)
	h.press("j", "s", "j", "enter")
	require.Equal(t, "Carrefour", h.app.session.Store.Name)

	h.press("esc")
	require.Equal(t, viewDetail, h.app.view)
	require.False(t, h.app.session.Active())

	h.press("s")
	require.Equal(t, viewShopping, h.app.view)
	require.Equal(t, "Carrefour", h.app.session.Store.Name)

	h.press("r")
	require.True(t, h.app.routed)
	require.Equal(t, "Lait", h.app.shoppingItems()[0].Name)
}

func TestScanPermissionAndCapture(t *testing.T) {
	h := newHarness(t)
	h.press("3")
	require.Equal(t, tabScan, h.app.tab)
	require.Equal(t, modalConfirm, h.app.modal)

	h.press("y")
	require.Equal(t, scan.PermissionGranted, h.app.opts.Scanner.Permission)

	h.press("t", "c")
	require.True(t, h.app.opts.Scanner.Torch)
	require.Equal(t, scan.FacingFront, h.app.opts.Scanner.Facing)

	h.press("enter")
	require.Equal(t, modalInput, h.app.modal)
	h.typeText("4006381333931")
	h.press("enter")
	require.Equal(t, "scanned EAN-13: 4006381333931", h.app.status)
	require.True(t, h.app.opts.Scanner.Scanned)
	require.Contains(t, h.app.View(), "Scanned!")

	h.press("enter")
	h.typeText("4006381333931")
	h.press("enter")
	require.Contains(t, h.app.status, "rescan")

	h.press("r")
	require.False(t, h.app.opts.Scanner.Scanned)

	h.press("enter")
	h.typeText("4006381333932")
	h.press("enter")
	require.True(t, h.app.isErr)
}

func TestScanPermissionDenied(t *testing.T) {
	h := newHarness(t)
	h.press("3", "n")
	require.Equal(t, scan.PermissionDenied, h.app.opts.Scanner.Permission)
	require.Contains(t, h.app.View(), "No access to camera")

	h.press("enter")
	require.Equal(t, modalConfirm, h.app.modal)
}

func TestAlertsMarkReadAndDelete(t *testing.T) {
	h := newHarness(t)
	h.press("4")
	require.Len(t, h.app.feed.Items, 4)

	h.press("enter")
	require.Equal(t, 1, h.app.feed.Unread)
	require.True(t, h.app.feed.Items[0].Read)

	h.press("A")
	require.Equal(t, 0, h.app.feed.Unread)

	h.press("d")
	require.Len(t, h.app.feed.Items, 3)
	require.Equal(t, "2", h.app.feed.Items[0].ID)
}

func TestSettingsTogglesFilterAlerts(t *testing.T) {
	h := newHarness(t)
	require.Contains(t, h.app.renderTabs(), "(2)")

	h.press("5", "j", "j", "space")
	require.False(t, h.app.settings.Reminders)
	require.Len(t, h.app.feed.Items, 3)
	require.Equal(t, 1, h.app.feed.Unread)
	require.NotEmpty(t, h.saved)
	require.False(t, h.saved[len(h.saved)-1].Reminders)

	h.press("k", "space")
	require.False(t, h.app.settings.Push)
	require.NotContains(t, h.app.renderTabs(), "(1)")

	h.press("k", "space")
	require.True(t, h.app.settings.DarkMode)
	require.Equal(t, darkPalette, h.app.styles.palette)
}

func TestProfileTopUpStaysInMemory(t *testing.T) {
	h := newHarness(t)
	h.press("5", "j", "j", "j", "j", "j", "enter")
	require.True(t, h.app.profileOpen)
	require.Contains(t, h.app.View(), "John Doe")

	// first top-up row sits below the five profile fields
	h.press("j", "j", "j", "j", "j", "j", "enter")
	require.InDelta(t, 300, h.app.cardBalance, 1e-9)
	require.InDelta(t, 250, h.app.cfg.Profile.CardBalance, 1e-9)
	require.Empty(t, h.profiles)

	h.press("esc")
	require.False(t, h.app.profileOpen)
}

func TestTopUpNotRestoredAfterRestart(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("HOME", t.TempDir())
	h.app.opts.SaveProfile = func(p config.ProfileConfig) error { return config.SaveProfile(path, p) }

	h.press("5", "j", "j", "j", "j", "j", "enter")
	h.press("j", "j", "j", "j", "j", "enter")
	require.InDelta(t, 275, h.app.cardBalance, 1e-9)

	// saving an edited field writes the file; the balance must not ride along
	h.press("k", "k", "k", "k", "k", "enter")
	h.typeText("x")
	h.press("enter")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "Johnx", cfg.Profile.FirstName)
	require.InDelta(t, 250, cfg.Profile.CardBalance, 1e-9)
}

func TestProfileEditSaveAndCancel(t *testing.T) {
	h := newHarness(t)
	h.press("5", "j", "j", "j", "j", "j", "enter")

	h.press("j", "enter")
	require.Equal(t, modalInput, h.app.modal)
	require.Equal(t, "Doe", h.app.input.Value())
	h.typeText("-Smith")
	h.press("esc")
	require.Equal(t, modalNone, h.app.modal)
	require.Equal(t, "Doe", h.app.cfg.Profile.LastName)
	require.Empty(t, h.profiles)

	h.press("enter")
	h.app.input.SetValue("Martin")
	h.press("enter")
	require.Equal(t, "Martin", h.app.cfg.Profile.LastName)
	require.Equal(t, "profile updated", h.app.status)
	require.Len(t, h.profiles, 1)
	require.Equal(t, "Martin", h.profiles[0].LastName)
	require.Contains(t, h.app.View(), "John Martin")

	h.press("enter")
	h.app.input.SetValue("   ")
	h.press("enter")
	require.Equal(t, "Martin", h.app.cfg.Profile.LastName)
	require.Len(t, h.profiles, 1)
}

func TestResetRestoresFixtures(t *testing.T) {
	h := newHarness(t)
	h.press("d", "y")
	require.Len(t, h.app.lists, 3)

	h.press("5", "X")
	require.Equal(t, modalConfirm, h.app.modal)
	h.press("n")
	require.Len(t, h.app.lists, 3)

	h.press("X", "y")
	require.Len(t, h.app.lists, 4)
	require.Equal(t, "session reset", h.app.status)
}

func TestViewRendersEveryTab(t *testing.T) {
	h := newHarness(t)
	_, _ = h.app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	want := map[tab]string{
		tabLists:    "My Lists",
		tabBudget:   "Monthly budget",
		tabAlerts:   "Notifications",
		tabSettings: "Smart suggestions",
	}
	for tb, text := range want {
		h.app.tab = tb
		require.Contains(t, h.app.View(), text, tabNames[tb])
	}

	h.press("3")
	view := h.app.View()
	require.Contains(t, view, "Camera Access")
}

func TestBudgetCardsFollowWidth(t *testing.T) {
	h := newHarness(t)
	h.press("2")
	sameLine := func() bool {
		for _, line := range strings.Split(h.app.renderBudget(), "\n") {
			if strings.Contains(line, "Monthly budget") && strings.Contains(line, "Savings goal") {
				return true
			}
		}
		return false
	}

	_, _ = h.app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	require.True(t, sameLine())
	week := h.app.overview.Weeks[0]
	require.Contains(t, h.app.renderBudget(), week.Week+" "+h.app.money(week.Amount))

	_, _ = h.app.Update(tea.WindowSizeMsg{Width: 60, Height: 40})
	require.False(t, sameLine())
	require.Contains(t, h.app.renderBudget(), "Savings goal")
}

func TestParseTab(t *testing.T) {
	got, ok := ParseTab("Budget")
	require.True(t, ok)
	require.Equal(t, tabBudget, got)

	_, ok = ParseTab("recipes")
	require.False(t, ok)
}

func TestStartTabOption(t *testing.T) {
	a := New(context.Background(), config.Config{}, Services{}, Options{StartTab: "alerts"})
	require.Equal(t, tabAlerts, a.tab)
}

func TestStartFilterOption(t *testing.T) {
	a := New(context.Background(), config.Config{}, Services{}, Options{Filter: grocery.FilterShared})
	require.Equal(t, grocery.FilterShared, a.filter)

	a = New(context.Background(), config.Config{}, Services{}, Options{})
	require.Equal(t, grocery.FilterAll, a.filter)
}
