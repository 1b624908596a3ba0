package shopping

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/basket/internal/grocery"
)

func tripItems() []grocery.ListItem {
	return []grocery.ListItem{
		{ID: "1", Name: "Lait", Category: "Produits Laitiers", Priority: grocery.PriorityHigh, EstimatedPrice: 1.20, Quantity: 2},
		{ID: "2", Name: "Bananes", Category: "Fruits & Légumes", Priority: grocery.PriorityMedium, EstimatedPrice: 2.50, Quantity: 1},
		{ID: "5", Name: "Riz basmati", Category: "Épicerie", Priority: grocery.PriorityLow, EstimatedPrice: 3.20, Quantity: 1},
		{ID: "9", Name: "Pommes", Category: "Fruits & Légumes", Priority: grocery.PriorityHigh, EstimatedPrice: 2.00},
		{ID: "10", Name: "Sel", Category: "Épicerie"},
	}
}

func TestEstimatedTotal(t *testing.T) {
	items := []grocery.ListItem{
		{ID: "1", EstimatedPrice: 1.20, Quantity: 2},
		{ID: "2", EstimatedPrice: 2.50, Quantity: 1},
	}
	require.InDelta(t, 4.90, EstimatedTotal(items), 1e-9)
	require.Zero(t, ActualTotal(items))
}

func TestCheckingAllItemsMatchesTotals(t *testing.T) {
	items := tripItems()
	for _, it := range items {
		items = grocery.ToggleItem(items, it.ID)
	}
	require.InDelta(t, EstimatedTotal(items), ActualTotal(items), 1e-9)
	require.Equal(t, len(items), Collected(items))
}

func TestActualTotalCountsCheckedOnly(t *testing.T) {
	items := grocery.ToggleItem(tripItems(), "1")
	require.InDelta(t, 2.40, ActualTotal(items), 1e-9)
}

func TestGroupByCategoryOrdering(t *testing.T) {
	groups := GroupByCategory(tripItems())
	require.Len(t, groups, 3)

	var cats []string
	for _, g := range groups {
		cats = append(cats, g.Category)
	}
	// Dairy and produce both peak at high; dairy was seen first.
	require.Equal(t, []string{"Produits Laitiers", "Fruits & Légumes", "Épicerie"}, cats)

	produce := groups[1]
	require.Equal(t, "Pommes", produce.Items[0].Name)
	require.Equal(t, "Bananes", produce.Items[1].Name)
	require.Equal(t, "Rayon 2", produce.Aisle)

	require.Equal(t, 1, groups[2].MaxRank())
}

func TestGroupByCategoryDefaultsToOther(t *testing.T) {
	groups := GroupByCategory([]grocery.ListItem{{ID: "1", Name: "Batteries"}})
	require.Len(t, groups, 1)
	require.Equal(t, OtherCategory, groups[0].Category)
	require.Empty(t, groups[0].Aisle)
}

func TestRouteOrderFollowsAisles(t *testing.T) {
	items := append(tripItems(), grocery.ListItem{ID: "11", Name: "Piles"})
	groups := RouteOrder(items)
	var cats []string
	for _, g := range groups {
		cats = append(cats, g.Category)
	}
	require.Equal(t, []string{"Produits Laitiers", "Fruits & Légumes", "Épicerie", OtherCategory}, cats)
}

func TestFormatElapsed(t *testing.T) {
	start := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		after time.Duration
		want  string
	}{
		{0, "0:00"},
		{5 * time.Second, "0:05"},
		{65 * time.Second, "1:05"},
		{12*time.Minute + 30*time.Second + 900*time.Millisecond, "12:30"},
		{-time.Second, "0:00"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, FormatElapsed(start, start.Add(tt.after)))
	}
	require.Equal(t, "0:00", FormatElapsed(time.Time{}, start))
}

func TestSessionFinishSummary(t *testing.T) {
	start := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	var s Session
	store := Store{ID: "1", Name: "Lidl", Savings: 15}
	s.Start(store, start)
	require.True(t, s.Active())

	s.Pause()
	s.Start(store, start.Add(time.Minute))
	require.Equal(t, start, s.Started, "resuming keeps the first start")

	items := grocery.ToggleItem(tripItems(), "1")
	sum := s.Finish(items, start.Add(3*time.Minute+7*time.Second))
	require.Equal(t, 1, sum.Collected)
	require.Equal(t, 5, sum.Total)
	require.InDelta(t, 2.40, sum.Spent, 1e-9)
	require.InDelta(t, 0.36, sum.Saved, 1e-9)
	require.Equal(t, "3:07", sum.Elapsed)
	require.False(t, s.Active())
	require.True(t, s.Started.IsZero())
}

func TestPriceLevelSymbol(t *testing.T) {
	require.Equal(t, "€", PriceLow.Symbol("€"))
	require.Equal(t, "€€", PriceMedium.Symbol("€"))
	require.Equal(t, "€€€", PriceHigh.Symbol("€"))
}
