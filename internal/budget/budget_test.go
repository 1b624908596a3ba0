package budget

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummaryPercentages(t *testing.T) {
	p := Plan{TotalBudget: 500, Spent: 320, LastMonthSpent: 280}
	s := p.Summary()
	require.InDelta(t, 64.0, s.SpentPercentage(), 1e-9)
	require.False(t, s.IsOverBudget())
	require.InDelta(t, 180.0, s.Remaining(), 1e-9)
	require.InDelta(t, 40.0, p.Trend(), 1e-9)
	require.True(t, p.SpendingUp())
}

func TestOverBudgetKeepsUnclampedPercentage(t *testing.T) {
	l := Line{Name: "Dining Out", Spent: 130, Budget: 100}
	require.True(t, l.IsOverBudget())
	require.InDelta(t, 130.0, l.SpentPercentage(), 1e-9)
	require.Equal(t, 100.0, l.BarPercentage())
	require.InDelta(t, -30.0, l.Remaining(), 1e-9)
}

func TestExactlyOnBudgetIsNotOver(t *testing.T) {
	l := Line{Spent: 100, Budget: 100}
	require.False(t, l.IsOverBudget())
	require.Equal(t, 100.0, l.BarPercentage())
}

func TestZeroBudget(t *testing.T) {
	l := Line{Spent: 10}
	require.Zero(t, l.SpentPercentage())
	require.True(t, l.IsOverBudget())
}

func TestSavings(t *testing.T) {
	p := Plan{SavingsGoal: 150, CurrentSavings: 95}
	require.InDelta(t, 63.333, p.SavingsProgress(), 0.001)
	require.InDelta(t, 55.0, p.SavingsLeft(), 1e-9)

	p.CurrentSavings = 200
	require.Zero(t, p.SavingsLeft())
}

func TestWeeklyHeights(t *testing.T) {
	weeks := []WeeklySpend{{"W1", 75}, {"W2", 85}, {"W3", 90}, {"W4", 70}}
	h := WeeklyHeights(weeks)
	require.Len(t, h, 4)
	require.Equal(t, 100.0, h[2])
	require.InDelta(t, 83.333, h[0], 0.001)
	require.Equal(t, []float64{}, WeeklyHeights(nil))
}

func TestCategoryAggregates(t *testing.T) {
	lines := []Line{
		{Name: "Groceries", Spent: 180, Budget: 250},
		{Name: "Dining Out", Spent: 110, Budget: 100},
		{Name: "Health", Spent: 30, Budget: 70},
	}
	require.InDelta(t, 320.0, TotalSpent(lines), 1e-9)
	over := OverBudget(lines)
	require.Len(t, over, 1)
	require.Equal(t, "Dining Out", over[0].Name)
}
