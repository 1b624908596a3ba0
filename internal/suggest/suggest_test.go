package suggest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fixtures() []Suggestion {
	return []Suggestion{
		{ID: "1", Item: "Lait Bio", Reason: ReasonFrequent, Confidence: 95, Price: 1.45},
		{ID: "2", Item: "Fraises", Reason: ReasonSeasonal, Confidence: 80, Price: 3.20, Discount: 20},
		{ID: "3", Item: "Pâtes Complètes", Reason: ReasonRecipe, Confidence: 85, Price: 2.10},
		{ID: "4", Item: "Papier Toilette", Reason: ReasonRunningLow, Confidence: 90, Price: 8.50},
		{ID: "5", Item: "Avocat", Reason: ReasonTrending, Confidence: 75, Price: 1.80, Discount: 15},
	}
}

func names(ss []Suggestion) []string {
	var out []string
	for _, s := range ss {
		out = append(out, s.Item)
	}
	return out
}

func TestDiscountedPrice(t *testing.T) {
	all := fixtures()
	require.InDelta(t, 2.56, all[1].DiscountedPrice(), 1e-9)
	require.InDelta(t, 1.45, all[0].DiscountedPrice(), 1e-9)
}

func TestMatchBlankQueryOrdersByConfidence(t *testing.T) {
	got := Match("  ", fixtures())
	require.Equal(t, []string{"Lait Bio", "Papier Toilette", "Pâtes Complètes", "Fraises", "Avocat"}, names(got))
}

func TestMatchFuzzy(t *testing.T) {
	got := Match("frs", fixtures())
	require.NotEmpty(t, got)
	require.Equal(t, "Fraises", got[0].Item)

	require.Empty(t, Match("zzz", fixtures()))
}

func TestDismissAndWithout(t *testing.T) {
	got := Dismiss(fixtures(), "3")
	require.Len(t, got, 4)
	require.NotContains(t, names(got), "Pâtes Complètes")

	got = Without(fixtures(), []string{"avocat", " LAIT BIO "})
	require.Equal(t, []string{"Fraises", "Pâtes Complètes", "Papier Toilette"}, names(got))
}

func TestReasonLabel(t *testing.T) {
	require.Equal(t, "Stock bas", ReasonRunningLow.Label())
	require.Equal(t, "Suggestion", Reason("other").Label())
}
