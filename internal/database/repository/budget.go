package repository

import (
	"context"
	"database/sql"
)

// BudgetRepo handles budget categories, recent transactions and weekly spend.
type BudgetRepo struct{ db *sql.DB }

func NewBudgetRepo(db *sql.DB) *BudgetRepo { return &BudgetRepo{db: db} }

func (r *BudgetRepo) UpsertCategory(ctx context.Context, c BudgetCategory) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO budget_categories(id, name, spent, budget, color, sort_order)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 spent=excluded.spent,
	 budget=excluded.budget,
	 color=excluded.color,
	 sort_order=excluded.sort_order;
	`, c.ID, c.Name, c.Spent, c.Budget, c.Color, c.SortOrder)
	return err
}

func (r *BudgetRepo) Categories(ctx context.Context) ([]BudgetCategory, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, spent, budget, color, sort_order FROM budget_categories ORDER BY sort_order, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []BudgetCategory
	for rows.Next() {
		var c BudgetCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Spent, &c.Budget, &c.Color, &c.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *BudgetRepo) InsertTransaction(ctx context.Context, t Transaction) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO budget_transactions(id, store, amount, date, category, sort_order)
	VALUES (?, ?, ?, ?, ?, ?)`, t.ID, t.Store, t.Amount, t.Date, t.Category, t.SortOrder)
	return err
}

// RecentTransactions returns at most limit transactions, newest first.
func (r *BudgetRepo) RecentTransactions(ctx context.Context, limit int) ([]Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, store, amount, date, category, sort_order FROM budget_transactions ORDER BY sort_order LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Transaction
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.Store, &t.Amount, &t.Date, &t.Category, &t.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *BudgetRepo) UpsertWeek(ctx context.Context, w WeeklySpend) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO weekly_spend(week, amount, sort_order) VALUES (?, ?, ?)
	ON CONFLICT(week) DO UPDATE SET amount=excluded.amount, sort_order=excluded.sort_order;
	`, w.Week, w.Amount, w.SortOrder)
	return err
}

func (r *BudgetRepo) Weeks(ctx context.Context) ([]WeeklySpend, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT week, amount, sort_order FROM weekly_spend ORDER BY sort_order`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []WeeklySpend
	for rows.Next() {
		var w WeeklySpend
		if err := rows.Scan(&w.Week, &w.Amount, &w.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}
