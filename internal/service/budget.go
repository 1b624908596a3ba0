package service

import (
	"context"
	"fmt"

	"github.com/jask/basket/internal/budget"
	"github.com/jask/basket/internal/config"
	"github.com/jask/basket/internal/database/repository"
)

// recentLimit is how many transactions the budget screen lists.
const recentLimit = 5

// BudgetService assembles the budget screen.
type BudgetService struct {
	Budget *repository.BudgetRepo
	Config config.BudgetConfig
}

// Overview is everything the budget screen renders.
type Overview struct {
	Plan       budget.Plan
	Categories []budget.Line
	Weeks      []budget.WeeklySpend
	Recent     []repository.Transaction
}

// Overview derives month spend from the category lines.
func (s *BudgetService) Overview(ctx context.Context) (Overview, error) {
	cats, err := s.Budget.Categories(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("load budget categories: %w", err)
	}
	lines := make([]budget.Line, 0, len(cats))
	for _, c := range cats {
		lines = append(lines, budget.Line{Name: c.Name, Color: c.Color, Spent: c.Spent, Budget: c.Budget})
	}
	rows, err := s.Budget.Weeks(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("load weekly spend: %w", err)
	}
	weeks := make([]budget.WeeklySpend, 0, len(rows))
	for _, w := range rows {
		weeks = append(weeks, budget.WeeklySpend{Week: w.Week, Amount: w.Amount})
	}
	recent, err := s.Budget.RecentTransactions(ctx, recentLimit)
	if err != nil {
		return Overview{}, fmt.Errorf("load transactions: %w", err)
	}
	return Overview{
		Plan: budget.Plan{
			TotalBudget:    s.Config.Total,
			Spent:          budget.TotalSpent(lines),
			LastMonthSpent: s.Config.LastMonthSpent,
			SavingsGoal:    s.Config.SavingsGoal,
			CurrentSavings: s.Config.CurrentSavings,
		},
		Categories: lines,
		Weeks:      weeks,
		Recent:     recent,
	}, nil
}
