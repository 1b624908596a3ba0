// Package shopping computes the shopping-mode view of a list: items grouped by
// store category in priority order, running totals and session timing.
package shopping

import (
	"fmt"
	"sort"
	"time"

	"github.com/jask/basket/internal/grocery"
)

// OtherCategory groups items that carry no category.
const OtherCategory = "Other"

// Group is one category section of the shopping view.
type Group struct {
	Category string
	Aisle    string
	Items    []grocery.ListItem
}

// MaxRank is the highest priority rank in the group.
func (g Group) MaxRank() int {
	best := 0
	for _, it := range g.Items {
		best = max(best, it.Priority.Rank())
	}
	return best
}

// Checked counts checked items in the group.
func (g Group) Checked() int {
	n := 0
	for _, it := range g.Items {
		if it.Checked {
			n++
		}
	}
	return n
}

func categoryOf(it grocery.ListItem) string {
	if it.Category == "" {
		return OtherCategory
	}
	return it.Category
}

// GroupByCategory groups items by category. Items inside a group are ordered
// by priority rank, highest first; groups are ordered by their highest item
// rank. Both sorts are stable, so ties keep first-seen order.
func GroupByCategory(items []grocery.ListItem) []Group {
	index := map[string]int{}
	var groups []Group
	for _, it := range items {
		cat := categoryOf(it)
		i, ok := index[cat]
		if !ok {
			i = len(groups)
			index[cat] = i
			aisle := it.Aisle
			if aisle == "" {
				aisle = AisleFor(cat)
			}
			groups = append(groups, Group{Category: cat, Aisle: aisle})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	for i := range groups {
		g := groups[i].Items
		sort.SliceStable(g, func(a, b int) bool { return g[a].Priority.Rank() > g[b].Priority.Rank() })
	}
	sort.SliceStable(groups, func(a, b int) bool { return groups[a].MaxRank() > groups[b].MaxRank() })
	return groups
}

// EstimatedTotal sums price times quantity over all items.
func EstimatedTotal(items []grocery.ListItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.LineTotal()
	}
	return sum
}

// ActualTotal sums price times quantity over checked items only.
func ActualTotal(items []grocery.ListItem) float64 {
	var sum float64
	for _, it := range items {
		if it.Checked {
			sum += it.LineTotal()
		}
	}
	return sum
}

// Collected counts checked items.
func Collected(items []grocery.ListItem) int {
	n := 0
	for _, it := range items {
		if it.Checked {
			n++
		}
	}
	return n
}

// FormatElapsed renders now-start as minutes:seconds with two-digit seconds.
// A zero start renders 0:00.
func FormatElapsed(start, now time.Time) string {
	if start.IsZero() {
		return "0:00"
	}
	secs := int(now.Sub(start) / time.Second)
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
