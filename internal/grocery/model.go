// Package grocery holds the list and item model plus the pure operations the
// screens apply to it: search and filter, progress, and replace-by-id edits.
package grocery

import (
	"errors"
	"fmt"
	"strings"
)

// DateLayout is the display format for a list's creation date.
const DateLayout = "Jan 2, 2006"

// ErrListNotFound is returned by lookups for an unknown list id.
var ErrListNotFound = errors.New("grocery: list not found")

// Priority is the shopping priority of an item. The zero value means unset.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank orders priorities for sorting. Unset ranks as low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}

// ListItem is a named entry within a list. Category, Aisle, Priority,
// EstimatedPrice and Quantity are optional; their zero values mean absent.
type ListItem struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Checked        bool     `json:"checked"`
	Category       string   `json:"category,omitempty"`
	Aisle          string   `json:"aisle,omitempty"`
	Priority       Priority `json:"priority,omitempty"`
	EstimatedPrice float64  `json:"estimated_price,omitempty"`
	Quantity       int      `json:"quantity,omitempty"`
}

// Qty returns the item quantity, treating an unset quantity as one.
func (i ListItem) Qty() int {
	if i.Quantity <= 0 {
		return 1
	}
	return i.Quantity
}

// LineTotal is price times quantity.
func (i ListItem) LineTotal() float64 {
	return i.EstimatedPrice * float64(i.Qty())
}

// GroceryList is a named, ordered collection of items, optionally shared.
type GroceryList struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Items  []ListItem `json:"items"`
	Shared bool       `json:"shared"`
	Date   string     `json:"date"`
}

// Filter selects which lists the lists screen shows.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterShared    Filter = "shared"
	FilterPersonal  Filter = "personal"
	FilterCompleted Filter = "completed"
)

// Filters lists every filter in picker order.
var Filters = []Filter{FilterAll, FilterShared, FilterPersonal, FilterCompleted}

// ParseFilter maps a name to a Filter. Empty input means all.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterShared, FilterPersonal, FilterCompleted:
		return f, nil
	default:
		return "", fmt.Errorf("unknown list filter %q", s)
	}
}

// Label is the picker label for f.
func (f Filter) Label() string {
	switch f {
	case FilterShared:
		return "Shared Lists"
	case FilterPersonal:
		return "Personal Lists"
	case FilterCompleted:
		return "Completed Lists"
	default:
		return "All Lists"
	}
}
