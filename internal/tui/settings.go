package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/basket/internal/config"
	"github.com/jask/basket/internal/prefs"
	"github.com/jask/basket/internal/widgets"
)

type settingRow int

const (
	rowDarkMode settingRow = iota
	rowPush
	rowReminders
	rowShared
	rowSuggestions
	rowProfile
	rowReset
)

var settingLabels = []string{
	rowDarkMode:    "Dark mode",
	rowPush:        "Push notifications",
	rowReminders:   "Shopping reminders",
	rowShared:      "Shared list updates",
	rowSuggestions: "Smart suggestions",
	rowProfile:     "Profile",
	rowReset:       "Reset session",
}

var topUps = []float64{25, 50, 100}

type profileField int

const (
	fieldFirstName profileField = iota
	fieldLastName
	fieldEmail
	fieldPhone
	fieldAddress
)

var profileFieldLabels = []string{
	fieldFirstName: "First name",
	fieldLastName:  "Last name",
	fieldEmail:     "Email",
	fieldPhone:     "Phone",
	fieldAddress:   "Address",
}

func profileValue(p config.ProfileConfig, f profileField) string {
	switch f {
	case fieldFirstName:
		return p.FirstName
	case fieldLastName:
		return p.LastName
	case fieldEmail:
		return p.Email
	case fieldPhone:
		return p.Phone
	case fieldAddress:
		return p.Address
	}
	return ""
}

func (a *App) toggleSetting(row settingRow) tea.Cmd {
	s := &a.settings
	switch row {
	case rowDarkMode:
		s.DarkMode = !s.DarkMode
		a.applyTheme()
	case rowPush:
		s.Push = !s.Push
	case rowReminders:
		s.Reminders = !s.Reminders
	case rowShared:
		s.Shared = !s.Shared
	case rowSuggestions:
		s.Suggestions = !s.Suggestions
		if !s.Suggestions {
			a.suggestions = nil
		}
	default:
		return nil
	}
	return tea.Batch(a.saveSettingsCmd(*s), a.loadFeed())
}

func (a *App) saveSettingsCmd(s prefs.Settings) tea.Cmd {
	save := a.opts.SaveSettings
	if save == nil {
		return nil
	}
	return func() tea.Msg {
		if err := save(s); err != nil {
			return errMsg{fmt.Errorf("save settings: %w", err)}
		}
		return nil
	}
}

func (a *App) saveProfileCmd(p config.ProfileConfig) tea.Cmd {
	save := a.opts.SaveProfile
	if save == nil {
		return nil
	}
	return func() tea.Msg {
		if err := save(p); err != nil {
			return errMsg{fmt.Errorf("save profile: %w", err)}
		}
		return nil
	}
}

func (a *App) handleSettingsAction(action Action) (tea.Model, tea.Cmd) {
	row := settingRow(a.settingsCursor)
	switch action {
	case actionUp:
		a.settingsCursor = moveCursor(a.settingsCursor, -1, len(settingLabels))
	case actionDown:
		a.settingsCursor = moveCursor(a.settingsCursor, 1, len(settingLabels))
	case actionToggle:
		return a, a.toggleSetting(row)
	case actionSelect:
		switch row {
		case rowProfile:
			a.profileOpen = true
			a.profileCursor = 0
		case rowReset:
			a.confirmReset()
		default:
			return a, a.toggleSetting(row)
		}
	case actionReset:
		a.confirmReset()
	}
	return a, nil
}

func (a *App) confirmReset() {
	a.openConfirm("Reset Session",
		"Restore the sample lists, alerts and budget? Your changes will be lost.",
		a.resetCmd)
}

// Profile rows are the editable fields followed by the top-up amounts.
func (a *App) handleProfileAction(action Action) (tea.Model, tea.Cmd) {
	rows := len(profileFieldLabels) + len(topUps)
	switch action {
	case actionUp:
		a.profileCursor = moveCursor(a.profileCursor, -1, rows)
	case actionDown:
		a.profileCursor = moveCursor(a.profileCursor, 1, rows)
	case actionSelect:
		if a.profileCursor < len(profileFieldLabels) {
			f := profileField(a.profileCursor)
			a.profileField = f
			return a, a.openInput(inputProfile, profileFieldLabels[f], profileValue(a.cfg.Profile, f))
		}
		amount := topUps[a.profileCursor-len(profileFieldLabels)]
		a.cardBalance += amount
		a.setStatus(fmt.Sprintf("added %s to your card", a.money(amount)))
	case actionBack:
		a.profileOpen = false
	}
	return a, nil
}

// updateProfile stores value in field f. A blank value leaves the field as is.
func (a *App) updateProfile(f profileField, value string) tea.Cmd {
	value = strings.TrimSpace(value)
	if value == "" || value == profileValue(a.cfg.Profile, f) {
		return nil
	}
	p := &a.cfg.Profile
	switch f {
	case fieldFirstName:
		p.FirstName = value
	case fieldLastName:
		p.LastName = value
	case fieldEmail:
		p.Email = value
	case fieldPhone:
		p.Phone = value
	case fieldAddress:
		p.Address = value
	}
	a.setStatus("profile updated")
	return a.saveProfileCmd(*p)
}

func (a *App) renderSettings() string {
	if a.profileOpen {
		return a.renderProfile()
	}
	s := a.settings
	values := map[settingRow]bool{
		rowDarkMode:    s.DarkMode,
		rowPush:        s.Push,
		rowReminders:   s.Reminders,
		rowShared:      s.Shared,
		rowSuggestions: s.Suggestions,
	}
	rows := make([]string, len(settingLabels))
	for i, label := range settingLabels {
		row := settingRow(i)
		switch row {
		case rowProfile:
			rows[i] = label + "  " + a.styles.muted.Render(a.fullName())
		case rowReset:
			rows[i] = a.styles.bad.Render(label)
		default:
			rows[i] = checkbox(values[row]) + " " + label
		}
	}
	list := widgets.List{
		Items:    rows,
		Cursor:   a.settingsCursor,
		Selected: a.styles.selected,
	}
	return a.styles.title.Render("Settings") + "\n\n" + list.Render(a.bodyWidth(), len(rows))
}

func (a *App) fullName() string {
	p := a.cfg.Profile
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

func (a *App) renderProfile() string {
	rows := make([]string, 0, len(profileFieldLabels)+len(topUps))
	for i, label := range profileFieldLabels {
		rows = append(rows, fmt.Sprintf("%-11s %s", label, profileValue(a.cfg.Profile, profileField(i))))
	}
	for _, v := range topUps {
		rows = append(rows, "Top up "+a.money(v))
	}
	card := widgets.Box{
		Title:       "Shopping card",
		Content:     fmt.Sprintf("Available balance  %s", a.money(a.cardBalance)),
		BorderColor: tabColors[tabSettings],
	}.Render(min(a.bodyWidth(), 48), 4)

	list := widgets.List{
		Items:    rows,
		Cursor:   a.profileCursor,
		Selected: a.styles.selected,
	}
	return strings.Join([]string{
		a.styles.title.Render("Profile") + "  " + a.styles.muted.Render(a.fullName()),
		"",
		card,
		list.Render(a.bodyWidth(), len(rows)),
	}, "\n")
}
