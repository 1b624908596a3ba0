package grocery

import (
	"strings"
	"time"

	"github.com/jask/basket/internal/progress"
)

// IsCompleted reports whether l has items and every item is checked.
func IsCompleted(l GroceryList) bool {
	if len(l.Items) == 0 {
		return false
	}
	for _, it := range l.Items {
		if !it.Checked {
			return false
		}
	}
	return true
}

// Progress returns the checked count, the item count and the completion
// percentage (0 for an empty list).
func Progress(l GroceryList) (done, total int, pct float64) {
	for _, it := range l.Items {
		if it.Checked {
			done++
		}
	}
	total = len(l.Items)
	return done, total, progress.Ratio(done, total)
}

// Partition splits items into pending and completed, keeping insertion order
// within each half.
func Partition(items []ListItem) (pending, completed []ListItem) {
	for _, it := range items {
		if it.Checked {
			completed = append(completed, it)
		} else {
			pending = append(pending, it)
		}
	}
	return pending, completed
}

// DisplayOrder is pending items followed by completed ones.
func DisplayOrder(items []ListItem) []ListItem {
	pending, completed := Partition(items)
	return append(pending, completed...)
}

// Matches reports whether l passes the search query and filter.
func Matches(l GroceryList, query string, f Filter) bool {
	if !strings.Contains(strings.ToLower(l.Name), strings.ToLower(query)) {
		return false
	}
	switch f {
	case FilterShared:
		return l.Shared
	case FilterPersonal:
		return !l.Shared
	case FilterCompleted:
		return IsCompleted(l)
	default:
		return true
	}
}

// FilterLists returns the lists whose name contains query, case-insensitively,
// and that satisfy f. Order is preserved.
func FilterLists(lists []GroceryList, query string, f Filter) []GroceryList {
	out := make([]GroceryList, 0, len(lists))
	for _, l := range lists {
		if Matches(l, query, f) {
			out = append(out, l)
		}
	}
	return out
}

// CountByFilter counts lists per filter, ignoring any search query.
func CountByFilter(lists []GroceryList) map[Filter]int {
	counts := make(map[Filter]int, len(Filters))
	for _, f := range Filters {
		counts[f] = len(FilterLists(lists, "", f))
	}
	return counts
}

// NewList builds an empty list. Callers check the trimmed name first; an
// empty name returns ok=false.
func NewList(existing []GroceryList, name string, shared bool, now time.Time) (GroceryList, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return GroceryList{}, false
	}
	taken := make(map[string]bool, len(existing))
	for _, l := range existing {
		taken[l.ID] = true
	}
	return GroceryList{
		ID:     NextID(taken, now),
		Name:   name,
		Items:  []ListItem{},
		Shared: shared,
		Date:   now.Format(DateLayout),
	}, true
}

// PrependList places l ahead of the existing lists, newest first.
func PrependList(lists []GroceryList, l GroceryList) []GroceryList {
	out := make([]GroceryList, 0, len(lists)+1)
	out = append(out, l)
	return append(out, lists...)
}

// DeleteList removes the list with id.
func DeleteList(lists []GroceryList, id string) []GroceryList {
	out := make([]GroceryList, 0, len(lists))
	for _, l := range lists {
		if l.ID != id {
			out = append(out, l)
		}
	}
	return out
}

// FindList returns the list with id.
func FindList(lists []GroceryList, id string) (GroceryList, error) {
	for _, l := range lists {
		if l.ID == id {
			return l, nil
		}
	}
	return GroceryList{}, ErrListNotFound
}
