package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/basket/internal/budget"
	"github.com/jask/basket/internal/widgets"
)

// wideBudget is the body width from which the budget and savings cards sit
// side by side.
const wideBudget = 72

func (a *App) renderBudget() string {
	ov := a.overview
	width := min(a.bodyWidth(), 80)

	cards := []widgets.Widget{widgets.Func(a.budgetCard), widgets.Func(a.savingsCard)}
	var summary string
	if width >= wideBudget {
		summary = widgets.HStack{Widgets: cards, Ratios: []float64{3, 2}, Gap: 1}.Render(width, 7)
	} else {
		summary = widgets.VStack{Widgets: cards}.Render(width, 14)
	}

	parts := []string{
		a.styles.title.Render("Budget"),
		summary,
		a.styles.muted.Render("Weekly spending"),
		a.weeklySection(ov.Weeks, width),
		a.styles.muted.Render("Categories"),
		a.categoryLines(ov.Categories, width),
	}
	if over := budget.OverBudget(ov.Categories); len(over) > 0 {
		names := make([]string, len(over))
		for i, l := range over {
			names[i] = l.Name
		}
		parts = append(parts, a.styles.warn.Render("Over budget: "+strings.Join(names, ", ")))
	}
	parts = append(parts, a.styles.muted.Render("Recent transactions"), a.recentTable(width))
	return strings.Join(parts, "\n")
}

func (a *App) budgetCard(width, height int) string {
	plan := a.overview.Plan
	sum := plan.Summary()
	remaining := fmt.Sprintf("%s remaining", a.money(sum.Remaining()))
	fill := a.styles.success
	if sum.IsOverBudget() {
		remaining = a.styles.bad.Render(fmt.Sprintf("%s over budget", a.money(-sum.Remaining())))
		fill = a.styles.danger
	}
	trend := a.styles.good.Render(fmt.Sprintf("↓ %s less than last month", a.money(-plan.Trend())))
	if plan.SpendingUp() {
		trend = a.styles.bad.Render(fmt.Sprintf("↑ %s more than last month", a.money(plan.Trend())))
	}
	return widgets.Box{
		Title: "Monthly budget",
		Content: strings.Join([]string{
			fmt.Sprintf("%s of %s", a.money(sum.Spent), a.money(sum.Budget)),
			widgets.ProgressBar{Percent: sum.SpentPercentage(), Fill: fill, ShowLabel: true}.Render(width-6, 1),
			remaining,
			trend,
		}, "\n"),
		BorderColor: a.styles.border,
	}.Render(width, height)
}

func (a *App) savingsCard(width, height int) string {
	plan := a.overview.Plan
	return widgets.Box{
		Title: "Savings goal",
		Content: strings.Join([]string{
			fmt.Sprintf("%s of %s", a.money(plan.CurrentSavings), a.money(plan.SavingsGoal)),
			widgets.ProgressBar{Percent: plan.SavingsProgress(), Fill: a.styles.accent, ShowLabel: true}.Render(width-6, 1),
			fmt.Sprintf("%s to go", a.money(plan.SavingsLeft())),
		}, "\n"),
		BorderColor: a.styles.border,
	}.Render(width, height)
}

// weeklySection puts the bar chart next to a per-week amount legend.
func (a *App) weeklySection(weeks []budget.WeeklySpend, width int) string {
	if len(weeks) == 0 {
		return a.styles.muted.Render("No spending yet.")
	}
	amounts := make([]string, len(weeks))
	for i, w := range weeks {
		amounts[i] = a.styles.muted.Render(fmt.Sprintf("%s %s", w.Week, a.money(w.Amount)))
	}
	chart := widgets.Func(func(w, h int) string { return weeklyChart(weeks, w, h) })
	legend := widgets.Text(strings.Join(amounts, "\n"))
	return widgets.HStack{Widgets: []widgets.Widget{chart, legend}, Ratios: []float64{3, 1}, Gap: 2}.Render(width, 6)
}

func weeklyChart(weeks []budget.WeeklySpend, width, height int) string {
	heights := budget.WeeklyHeights(weeks)
	bc := barchart.New(width, height)
	style := lipgloss.NewStyle().Foreground(tabColors[tabBudget])
	for i, w := range weeks {
		bc.Push(barchart.BarData{
			Label:  w.Week,
			Values: []barchart.BarValue{{Name: w.Week, Value: heights[i], Style: style}},
		})
	}
	bc.Draw()
	return bc.View()
}

func (a *App) categoryLines(lines []budget.Line, width int) string {
	if len(lines) == 0 {
		return a.styles.muted.Render("No categories.")
	}
	nameWidth := 12
	for _, l := range lines {
		nameWidth = max(nameWidth, lipgloss.Width(l.Name)+1)
	}
	barWidth := max(10, width-nameWidth-24)
	rows := make([]string, 0, len(lines))
	for _, l := range lines {
		fill := lipgloss.Color(l.Color)
		if l.Color == "" {
			fill = a.styles.accent
		}
		amount := fmt.Sprintf("%s/%s", a.money(l.Spent), a.money(l.Budget))
		if l.IsOverBudget() {
			fill = a.styles.danger
			amount = a.styles.bad.Render(amount)
		}
		bar := widgets.ProgressBar{Percent: l.BarPercentage(), Fill: fill}.Render(barWidth, 1)
		rows = append(rows, fmt.Sprintf("%-*s %s %s", nameWidth, l.Name, bar, amount))
	}
	return strings.Join(rows, "\n")
}

func (a *App) recentTable(width int) string {
	rows := make([][]string, 0, len(a.overview.Recent))
	for _, t := range a.overview.Recent {
		rows = append(rows, []string{t.Store, t.Category, t.Date, a.money(t.Amount)})
	}
	if len(rows) == 0 {
		return a.styles.muted.Render("No transactions.")
	}
	return widgets.Table{
		Headers: []string{"Store", "Category", "Date", "Amount"},
		Widths:  []int{14, 14, 12, 10},
		Rows:    rows,
	}.Render(width, len(rows)+1)
}
