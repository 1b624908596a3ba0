// Package notify models the alerts feed.
package notify

// Type classifies a notification.
type Type string

const (
	TypeReminder   Type = "reminder"
	TypeShared     Type = "shared"
	TypeSuggestion Type = "suggestion"
	TypeAlert      Type = "alert"
)

// Notification is one entry in the alerts feed. Read is its only state.
type Notification struct {
	ID         string
	Type       Type
	Title      string
	Message    string
	Time       string
	Read       bool
	Actionable bool
}

// Prefs gates which notification types are shown.
type Prefs struct {
	Reminders   bool
	Shared      bool
	Suggestions bool
}

// AllowAll shows every type.
var AllowAll = Prefs{Reminders: true, Shared: true, Suggestions: true}

// Allows reports whether t is enabled. Price alerts are always shown.
func (p Prefs) Allows(t Type) bool {
	switch t {
	case TypeReminder:
		return p.Reminders
	case TypeShared:
		return p.Shared
	case TypeSuggestion:
		return p.Suggestions
	default:
		return true
	}
}

// MarkRead marks the notification with id as read.
func MarkRead(ns []Notification, id string) []Notification {
	out := make([]Notification, len(ns))
	for i, n := range ns {
		if n.ID == id {
			n.Read = true
		}
		out[i] = n
	}
	return out
}

// MarkAllRead marks every notification as read.
func MarkAllRead(ns []Notification) []Notification {
	out := make([]Notification, len(ns))
	for i, n := range ns {
		n.Read = true
		out[i] = n
	}
	return out
}

// Delete removes the notification with id.
func Delete(ns []Notification, id string) []Notification {
	out := make([]Notification, 0, len(ns))
	for _, n := range ns {
		if n.ID != id {
			out = append(out, n)
		}
	}
	return out
}

// UnreadCount counts unread notifications.
func UnreadCount(ns []Notification) int {
	c := 0
	for _, n := range ns {
		if !n.Read {
			c++
		}
	}
	return c
}

// Visible filters ns down to the types p allows.
func Visible(ns []Notification, p Prefs) []Notification {
	out := make([]Notification, 0, len(ns))
	for _, n := range ns {
		if p.Allows(n.Type) {
			out = append(out, n)
		}
	}
	return out
}
