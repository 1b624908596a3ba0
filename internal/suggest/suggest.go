// Package suggest serves the "smart suggestions" strip on the list detail
// screen. Suggestions are fixture data; matching ranks them against what the
// user is typing.
package suggest

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Reason explains why an item is suggested.
type Reason string

const (
	ReasonFrequent   Reason = "frequent"
	ReasonSeasonal   Reason = "seasonal"
	ReasonRecipe     Reason = "recipe"
	ReasonRunningLow Reason = "running_low"
	ReasonTrending   Reason = "trending"
)

// Label is the chip text for r.
func (r Reason) Label() string {
	switch r {
	case ReasonFrequent:
		return "Fréquent"
	case ReasonSeasonal:
		return "Saisonnier"
	case ReasonRecipe:
		return "Recette"
	case ReasonRunningLow:
		return "Stock bas"
	case ReasonTrending:
		return "Tendance"
	default:
		return "Suggestion"
	}
}

// Suggestion is a candidate item.
type Suggestion struct {
	ID         string
	Item       string
	Reason     Reason
	Confidence int
	Details    string
	Price      float64
	Discount   int
}

// DiscountedPrice applies the percentage discount, if any.
func (s Suggestion) DiscountedPrice() float64 {
	if s.Discount <= 0 {
		return s.Price
	}
	return s.Price * (1 - float64(s.Discount)/100)
}

type source []Suggestion

func (s source) String(i int) string { return s[i].Item }
func (s source) Len() int            { return len(s) }

// Match ranks suggestions against query, best first. A blank query returns
// all suggestions in confidence order.
func Match(query string, all []Suggestion) []Suggestion {
	query = strings.TrimSpace(query)
	if query == "" {
		return ByConfidence(all)
	}
	matches := fuzzy.FindFrom(query, source(all))
	out := make([]Suggestion, 0, len(matches))
	for _, m := range matches {
		out = append(out, all[m.Index])
	}
	return out
}

// ByConfidence returns a copy sorted by confidence, highest first.
func ByConfidence(all []Suggestion) []Suggestion {
	out := append([]Suggestion(nil), all...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Confidence > out[j].Confidence })
	return out
}

// Dismiss drops the suggestion with id.
func Dismiss(all []Suggestion, id string) []Suggestion {
	out := make([]Suggestion, 0, len(all))
	for _, s := range all {
		if s.ID != id {
			out = append(out, s)
		}
	}
	return out
}

// Without drops suggestions whose item is already named in names,
// case-insensitively.
func Without(all []Suggestion, names []string) []Suggestion {
	have := make(map[string]bool, len(names))
	for _, n := range names {
		have[strings.ToLower(strings.TrimSpace(n))] = true
	}
	out := make([]Suggestion, 0, len(all))
	for _, s := range all {
		if !have[strings.ToLower(s.Item)] {
			out = append(out, s)
		}
	}
	return out
}
