package shopping

import (
	"time"

	"github.com/jask/basket/internal/grocery"
)

// Session tracks one trip in shopping mode.
type Session struct {
	Store   Store
	Started time.Time
	active  bool
}

// Summary is shown when a session finishes.
type Summary struct {
	Collected int
	Total     int
	Spent     float64
	Saved     float64
	Elapsed   string
}

// Start activates the session at store. The start time is only set the first
// time, matching a resumed trip.
func (s *Session) Start(store Store, now time.Time) {
	s.Store = store
	s.active = true
	if s.Started.IsZero() {
		s.Started = now
	}
}

// Active reports whether the session is running.
func (s *Session) Active() bool { return s.active }

// Pause leaves shopping mode without resetting the clock.
func (s *Session) Pause() { s.active = false }

// Elapsed formats the time since the session started.
func (s *Session) Elapsed(now time.Time) string {
	return FormatElapsed(s.Started, now)
}

// ExpectedSavings applies the store's savings rate to amount.
func (s *Session) ExpectedSavings(amount float64) float64 {
	return amount * float64(s.Store.Savings) / 100
}

// Finish ends the session and summarises it.
func (s *Session) Finish(items []grocery.ListItem, now time.Time) Summary {
	spent := ActualTotal(items)
	sum := Summary{
		Collected: Collected(items),
		Total:     len(items),
		Spent:     spent,
		Saved:     s.ExpectedSavings(spent),
		Elapsed:   s.Elapsed(now),
	}
	*s = Session{}
	return sum
}
