package shopping

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jask/basket/internal/grocery"
)

// PriceLevel is a store's relative price bracket.
type PriceLevel string

const (
	PriceLow    PriceLevel = "low"
	PriceMedium PriceLevel = "medium"
	PriceHigh   PriceLevel = "high"
)

// Symbol renders the level as one to three currency marks.
func (p PriceLevel) Symbol(mark string) string {
	switch p {
	case PriceLow:
		return mark
	case PriceMedium:
		return strings.Repeat(mark, 2)
	default:
		return strings.Repeat(mark, 3)
	}
}

// Store is static reference data for the store picker.
type Store struct {
	ID            string
	Name          string
	Distance      string
	EstimatedTime string
	Rating        float64
	PriceLevel    PriceLevel
	Features      []string
	Savings       int
}

var aisles = map[string]string{
	"Produits Laitiers": "Rayon 1",
	"Fruits & Légumes":  "Rayon 2",
	"Boulangerie":       "Rayon 3",
	"Viande & Poisson":  "Rayon 4",
	"Épicerie":          "Rayon 5",
	"Surgelés":          "Rayon 6",
	"Boissons":          "Rayon 7",
	"Hygiène":           "Rayon 8",
}

// AisleFor returns the aisle label for a category, or "" when unknown.
func AisleFor(category string) string {
	return aisles[category]
}

func aisleNumber(aisle string) int {
	f := strings.Fields(aisle)
	if len(f) == 0 {
		return 1 << 30
	}
	n, err := strconv.Atoi(f[len(f)-1])
	if err != nil {
		return 1 << 30
	}
	return n
}

// RouteOrder lists the groups of items in aisle order. Groups without a
// known aisle come last in first-seen order.
func RouteOrder(items []grocery.ListItem) []Group {
	groups := GroupByCategory(items)
	sort.SliceStable(groups, func(a, b int) bool {
		return aisleNumber(groups[a].Aisle) < aisleNumber(groups[b].Aisle)
	})
	return groups
}
