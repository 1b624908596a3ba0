package notify

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func feed() []Notification {
	return []Notification{
		{ID: "1", Type: TypeReminder, Title: "Shopping Reminder"},
		{ID: "2", Type: TypeShared, Title: "List Updated"},
		{ID: "3", Type: TypeSuggestion, Title: "Smart Suggestion", Read: true},
		{ID: "4", Type: TypeAlert, Title: "Price Alert", Read: true},
	}
}

func TestMarkRead(t *testing.T) {
	ns := feed()
	require.Equal(t, 2, UnreadCount(ns))

	got := MarkRead(ns, "1")
	require.True(t, got[0].Read)
	require.Equal(t, 1, UnreadCount(got))
	require.Equal(t, 2, UnreadCount(ns), "input untouched")

	require.Equal(t, 2, UnreadCount(MarkRead(ns, "missing")))
}

func TestMarkAllRead(t *testing.T) {
	require.Zero(t, UnreadCount(MarkAllRead(feed())))
}

func TestDelete(t *testing.T) {
	got := Delete(feed(), "2")
	require.Len(t, got, 3)
	require.Equal(t, 1, UnreadCount(got))
}

func TestVisibleHonoursPrefs(t *testing.T) {
	require.Len(t, Visible(feed(), AllowAll), 4)

	got := Visible(feed(), Prefs{Suggestions: true})
	require.Len(t, got, 2)
	require.Equal(t, "3", got[0].ID)
	require.Equal(t, "4", got[1].ID)
}
