// Package budget aggregates spend against budget for the budget screen.
package budget

import (
	"github.com/jask/basket/internal/progress"
)

// Plan is the monthly budget with the figures the summary card shows.
type Plan struct {
	TotalBudget    float64
	Spent          float64
	LastMonthSpent float64
	SavingsGoal    float64
	CurrentSavings float64
}

// Line is spend versus budget for one scope: the whole month or a category.
type Line struct {
	Name   string
	Color  string
	Spent  float64
	Budget float64
}

// SpentPercentage is spent/budget*100, unclamped.
func (l Line) SpentPercentage() float64 { return progress.Percent(l.Spent, l.Budget) }

// BarPercentage is SpentPercentage clamped for a progress bar.
func (l Line) BarPercentage() float64 { return progress.Clamp(l.SpentPercentage()) }

// IsOverBudget reports spent > budget.
func (l Line) IsOverBudget() bool { return l.Spent > l.Budget }

// Remaining is budget minus spent; negative when over.
func (l Line) Remaining() float64 { return l.Budget - l.Spent }

// Summary is the whole-month line.
func (p Plan) Summary() Line {
	return Line{Name: "Monthly budget", Spent: p.Spent, Budget: p.TotalBudget}
}

// Trend is this month's spend minus last month's.
func (p Plan) Trend() float64 { return p.Spent - p.LastMonthSpent }

// SpendingUp reports whether spend grew month over month.
func (p Plan) SpendingUp() bool { return p.Trend() > 0 }

// SavingsProgress is the savings goal completion percentage, unclamped.
func (p Plan) SavingsProgress() float64 {
	return progress.Percent(p.CurrentSavings, p.SavingsGoal)
}

// SavingsLeft is what remains to reach the savings goal, never negative.
func (p Plan) SavingsLeft() float64 {
	return max(0, p.SavingsGoal-p.CurrentSavings)
}

// WeeklySpend is one bar of the weekly spending chart.
type WeeklySpend struct {
	Week   string
	Amount float64
}

// WeeklyHeights scales each week against the largest one, as percentages.
func WeeklyHeights(weeks []WeeklySpend) []float64 {
	var peak float64
	for _, w := range weeks {
		peak = max(peak, w.Amount)
	}
	out := make([]float64, len(weeks))
	for i, w := range weeks {
		out[i] = progress.Clamp(progress.Percent(w.Amount, peak))
	}
	return out
}

// TotalSpent sums category spend.
func TotalSpent(lines []Line) float64 {
	var sum float64
	for _, l := range lines {
		sum += l.Spent
	}
	return sum
}

// OverBudget returns the lines that exceed their budget.
func OverBudget(lines []Line) []Line {
	var out []Line
	for _, l := range lines {
		if l.IsOverBudget() {
			out = append(out, l)
		}
	}
	return out
}
