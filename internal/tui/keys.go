package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type Action string

type Binding struct {
	Action Action
	Keys   []string
	Help   string
	Scopes []string
}

type KeyRegistry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
}

const (
	scopeGlobal      = "global"
	scopeLists       = "lists"
	scopeSearch      = "search"
	scopeFilter      = "filter"
	scopeDetail      = "detail"
	scopeStorePicker = "store_picker"
	scopeShopping    = "shopping"
	scopeBudget      = "budget"
	scopeScan        = "scan"
	scopeAlerts      = "alerts"
	scopeSettings    = "settings"
	scopeProfile     = "profile"
	scopeInput       = "input"
	scopeConfirm     = "confirm"
	scopeSummary     = "summary"
)

const (
	actionQuit          Action = "quit"
	actionNextTab       Action = "next_tab"
	actionPrevTab       Action = "prev_tab"
	actionGoLists       Action = "go_lists"
	actionGoBudget      Action = "go_budget"
	actionGoScan        Action = "go_scan"
	actionGoAlerts      Action = "go_alerts"
	actionGoSettings    Action = "go_settings"
	actionNavigate      Action = "navigate"
	actionUp            Action = "up"
	actionDown          Action = "down"
	actionSelect        Action = "select"
	actionBack          Action = "back"
	actionSearch        Action = "search"
	actionFilter        Action = "filter"
	actionNewList       Action = "new_list"
	actionDelete        Action = "delete"
	actionShop          Action = "shop"
	actionAdd           Action = "add"
	actionToggle        Action = "toggle"
	actionEdit          Action = "edit"
	actionShare         Action = "share"
	actionMail          Action = "mail"
	actionFindStores    Action = "find_stores"
	actionAddSuggestion Action = "add_suggestion"
	actionDismiss       Action = "dismiss"
	actionQtyUp         Action = "qty_up"
	actionQtyDown       Action = "qty_down"
	actionRoute         Action = "route"
	actionFinish        Action = "finish"
	actionTorch         Action = "torch"
	actionFlip          Action = "flip"
	actionCapture       Action = "capture"
	actionRearm         Action = "rearm"
	actionReadAll       Action = "read_all"
	actionReset         Action = "reset"
	actionConfirm       Action = "confirm"
	actionCancel        Action = "cancel"
	actionShared        Action = "shared"
)

func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	reg := func(scope string, action Action, keys []string, help string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help, Scopes: []string{scope}})
	}
	nav := func(scope string) {
		reg(scope, actionNavigate, []string{"j/k"}, "navigate")
		reg(scope, actionUp, []string{"k", "up"}, "up")
		reg(scope, actionDown, []string{"j", "down"}, "down")
	}

	// Global fallback lookup.
	reg(scopeGlobal, actionQuit, []string{"q", "ctrl+c"}, "quit")
	reg(scopeGlobal, actionNextTab, []string{"tab"}, "next tab")
	reg(scopeGlobal, actionPrevTab, []string{"shift+tab"}, "prev tab")
	reg(scopeGlobal, actionGoLists, []string{"1"}, "lists")
	reg(scopeGlobal, actionGoBudget, []string{"2"}, "budget")
	reg(scopeGlobal, actionGoScan, []string{"3"}, "scan")
	reg(scopeGlobal, actionGoAlerts, []string{"4"}, "alerts")
	reg(scopeGlobal, actionGoSettings, []string{"5"}, "settings")

	nav(scopeLists)
	reg(scopeLists, actionSelect, []string{"enter"}, "open")
	reg(scopeLists, actionSearch, []string{"/"}, "search")
	reg(scopeLists, actionFilter, []string{"f"}, "filter")
	reg(scopeLists, actionNewList, []string{"n"}, "new list")
	reg(scopeLists, actionDelete, []string{"d"}, "delete")
	reg(scopeLists, actionShop, []string{"s"}, "shop")

	reg(scopeSearch, actionConfirm, []string{"enter"}, "done")
	reg(scopeSearch, actionCancel, []string{"esc"}, "clear")

	nav(scopeFilter)
	reg(scopeFilter, actionSelect, []string{"enter"}, "apply")
	reg(scopeFilter, actionCancel, []string{"esc"}, "close")

	nav(scopeDetail)
	reg(scopeDetail, actionToggle, []string{"space"}, "check")
	reg(scopeDetail, actionAdd, []string{"a"}, "add item")
	reg(scopeDetail, actionEdit, []string{"e"}, "edit")
	reg(scopeDetail, actionDelete, []string{"d"}, "delete")
	reg(scopeDetail, actionShop, []string{"s"}, "shop")
	reg(scopeDetail, actionShare, []string{"S"}, "copy link")
	reg(scopeDetail, actionMail, []string{"m"}, "email")
	reg(scopeDetail, actionFindStores, []string{"F"}, "stores")
	reg(scopeDetail, actionAddSuggestion, []string{"+"}, "add tip")
	reg(scopeDetail, actionDismiss, []string{"x"}, "dismiss tip")
	reg(scopeDetail, actionBack, []string{"esc"}, "back")

	nav(scopeStorePicker)
	reg(scopeStorePicker, actionSelect, []string{"enter"}, "start")
	reg(scopeStorePicker, actionBack, []string{"esc"}, "back")

	nav(scopeShopping)
	reg(scopeShopping, actionToggle, []string{"space"}, "check")
	reg(scopeShopping, actionQtyUp, []string{"+", "="}, "qty +")
	reg(scopeShopping, actionQtyDown, []string{"-"}, "qty -")
	reg(scopeShopping, actionRoute, []string{"r"}, "route")
	reg(scopeShopping, actionFinish, []string{"F"}, "finish")
	reg(scopeShopping, actionBack, []string{"esc"}, "back")

	reg(scopeScan, actionCapture, []string{"enter"}, "scan")
	reg(scopeScan, actionTorch, []string{"t"}, "torch")
	reg(scopeScan, actionFlip, []string{"c"}, "flip")
	reg(scopeScan, actionRearm, []string{"r"}, "rescan")

	nav(scopeAlerts)
	reg(scopeAlerts, actionSelect, []string{"enter"}, "mark read")
	reg(scopeAlerts, actionReadAll, []string{"A"}, "mark all read")
	reg(scopeAlerts, actionDelete, []string{"d"}, "delete")

	nav(scopeSettings)
	reg(scopeSettings, actionToggle, []string{"space"}, "toggle")
	reg(scopeSettings, actionSelect, []string{"enter"}, "open")
	reg(scopeSettings, actionReset, []string{"X"}, "reset session")

	nav(scopeProfile)
	reg(scopeProfile, actionSelect, []string{"enter"}, "edit / top up")
	reg(scopeProfile, actionBack, []string{"esc"}, "back")

	reg(scopeInput, actionConfirm, []string{"enter"}, "save")
	reg(scopeInput, actionShared, []string{"tab"}, "shared")
	reg(scopeInput, actionCancel, []string{"esc"}, "cancel")

	reg(scopeConfirm, actionConfirm, []string{"y"}, "yes")
	reg(scopeConfirm, actionCancel, []string{"n", "esc"}, "no")

	reg(scopeSummary, actionConfirm, []string{"enter", "esc"}, "close")

	return r
}

func (r *KeyRegistry) Register(b Binding) {
	if r == nil {
		return
	}
	for _, scope := range b.Scopes {
		scope = strings.TrimSpace(scope)
		if scope == "" || len(b.Keys) == 0 {
			continue
		}
		if _, ok := r.indexByScope[scope]; !ok {
			r.indexByScope[scope] = make(map[string]*Binding)
		}
		normKeys := normalizeKeyList(b.Keys)
		if len(normKeys) == 0 || r.scopeHasAnyKey(scope, normKeys) {
			continue
		}

		copyBinding := b
		copyBinding.Keys = normKeys
		copyBinding.Scopes = []string{scope}
		r.bindingsByScope[scope] = append(r.bindingsByScope[scope], &copyBinding)
		for _, k := range copyBinding.Keys {
			r.indexByScope[scope][k] = &copyBinding
		}
	}
}

func (r *KeyRegistry) BindingsForScope(scope string) []Binding {
	if r == nil {
		return nil
	}
	items := r.bindingsByScope[scope]
	out := make([]Binding, 0, len(items))
	for _, b := range items {
		out = append(out, *b)
	}
	return out
}

// Lookup finds the binding for keyName in scope, falling back to global.
// Modal scopes do not fall back, so a modal swallows tab switches.
func (r *KeyRegistry) Lookup(keyName, scope string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	keyName = normalizeKeyName(keyName)
	if b := r.lookupInScope(keyName, scope); b != nil {
		return b
	}
	if scope != scopeGlobal && !modalScope(scope) {
		if b := r.lookupInScope(keyName, scopeGlobal); b != nil {
			return b
		}
	}
	return nil
}

// HelpBindings builds the footer entries for scope. The j/k, up and down
// bindings collapse into the single "navigate" hint.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	items := r.BindingsForScope(scope)
	if !modalScope(scope) && scope != scopeGlobal {
		items = append(items, r.BindingsForScope(scopeGlobal)...)
	}
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		if b.Action == actionUp || b.Action == actionDown {
			continue
		}
		switch b.Action {
		case actionGoLists, actionGoBudget, actionGoScan, actionGoAlerts, actionGoSettings:
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

func modalScope(scope string) bool {
	switch scope {
	case scopeSearch, scopeFilter, scopeInput, scopeConfirm, scopeSummary:
		return true
	}
	return false
}

func (r *KeyRegistry) lookupInScope(keyName, scope string) *Binding {
	if scope == "" {
		return nil
	}
	lookup, ok := r.indexByScope[scope]
	if !ok {
		return nil
	}
	return lookup[keyName]
}

func (r *KeyRegistry) scopeHasAnyKey(scope string, keys []string) bool {
	lookup := r.indexByScope[scope]
	for _, k := range keys {
		if _, exists := lookup[k]; exists {
			return true
		}
	}
	return false
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	trimmed := strings.TrimSpace(k)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) == 1 {
		ch := trimmed[0]
		if ch >= 'A' && ch <= 'Z' {
			// Preserve single uppercase rune so uppercase/lowercase bindings
			// can be distinct actions within the same scope.
			return trimmed
		}
	}
	s := strings.ToLower(trimmed)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	s = strings.ReplaceAll(s, "spacebar", "space")
	return s
}
