package repository

// BudgetCategory represents a budget_categories row.
type BudgetCategory struct {
	ID        string
	Name      string
	Spent     float64
	Budget    float64
	Color     string
	SortOrder int
}

// Transaction represents a recent purchase shown on the budget screen.
type Transaction struct {
	ID        string
	Store     string
	Amount    float64
	Date      string
	Category  string
	SortOrder int
}

// WeeklySpend represents a weekly_spend row.
type WeeklySpend struct {
	Week      string
	Amount    float64
	SortOrder int
}

type scanner interface {
	Scan(dest ...any) error
}
