package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/basket/internal/database/repository"
	"github.com/jask/basket/internal/grocery"
	"github.com/jask/basket/internal/notify"
	"github.com/jask/basket/internal/shopping"
	"github.com/jask/basket/internal/suggest"
)

func fixtureID(kind, name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(kind+":"+name)).String()
}

func item(list, name string, checked bool) grocery.ListItem {
	return grocery.ListItem{ID: fixtureID("item", list+"/"+name), Name: name, Checked: checked}
}

func tripItem(name, category string, p grocery.Priority, price float64, qty int) grocery.ListItem {
	it := item("Courses de la semaine", name, false)
	it.Category = category
	it.Aisle = shopping.AisleFor(category)
	it.Priority = p
	it.EstimatedPrice = price
	it.Quantity = qty
	return it
}

// FixtureLists are the lists every session starts with, in display order.
func FixtureLists() []grocery.GroceryList {
	return []grocery.GroceryList{
		{
			ID:     fixtureID("list", "Weekly Groceries"),
			Name:   "Weekly Groceries",
			Shared: true,
			Date:   "Jun 15, 2025",
			Items: []grocery.ListItem{
				item("Weekly Groceries", "Milk", true),
				item("Weekly Groceries", "Eggs", true),
				item("Weekly Groceries", "Bread", false),
				item("Weekly Groceries", "Butter", false),
				item("Weekly Groceries", "Cheese", false),
			},
		},
		{
			ID:     fixtureID("list", "Courses de la semaine"),
			Name:   "Courses de la semaine",
			Shared: false,
			Date:   "Jun 14, 2025",
			Items: []grocery.ListItem{
				tripItem("Lait", "Produits Laitiers", grocery.PriorityHigh, 1.20, 2),
				tripItem("Bananes", "Fruits & Légumes", grocery.PriorityMedium, 2.50, 1),
				tripItem("Pain de mie", "Boulangerie", grocery.PriorityHigh, 1.80, 1),
				tripItem("Blanc de poulet", "Viande & Poisson", grocery.PriorityMedium, 6.90, 1),
				tripItem("Riz basmati", "Épicerie", grocery.PriorityLow, 3.20, 1),
				tripItem("Glace vanille", "Surgelés", grocery.PriorityLow, 4.50, 1),
				tripItem("Eau minérale", "Boissons", grocery.PriorityMedium, 2.80, 2),
				tripItem("Dentifrice", "Hygiène", grocery.PriorityLow, 3.50, 1),
			},
		},
		{
			ID:     fixtureID("list", "BBQ Weekend"),
			Name:   "BBQ Weekend",
			Shared: true,
			Date:   "Jun 12, 2025",
			Items: []grocery.ListItem{
				item("BBQ Weekend", "Burgers", false),
				item("BBQ Weekend", "Buns", true),
				item("BBQ Weekend", "Charcoal", false),
				item("BBQ Weekend", "Corn", false),
			},
		},
		{
			ID:     fixtureID("list", "Party Supplies"),
			Name:   "Party Supplies",
			Shared: false,
			Date:   "Jun 8, 2025",
			Items: []grocery.ListItem{
				item("Party Supplies", "Balloons", true),
				item("Party Supplies", "Paper Cups", true),
				item("Party Supplies", "Candles", true),
			},
		},
	}
}

// FixtureNotifications is the initial alerts feed.
func FixtureNotifications() []notify.Notification {
	return []notify.Notification{
		{ID: "1", Type: notify.TypeReminder, Title: "Shopping Reminder", Message: `Don't forget to pick up items from your "Weekly Groceries" list`, Time: "2 hours ago", Actionable: true},
		{ID: "2", Type: notify.TypeShared, Title: "List Updated", Message: `Sarah added 3 items to "BBQ Weekend" list`, Time: "4 hours ago"},
		{ID: "3", Type: notify.TypeSuggestion, Title: "Smart Suggestion", Message: "Based on your shopping history, you might need milk soon", Time: "1 day ago", Read: true, Actionable: true},
		{ID: "4", Type: notify.TypeAlert, Title: "Price Alert", Message: "Organic bananas are 20% off at Lidl this week", Time: "2 days ago", Read: true},
	}
}

// FixtureStores is the store picker reference data.
func FixtureStores() []shopping.Store {
	return []shopping.Store{
		{ID: "1", Name: "Lidl", Distance: "0.8 km", EstimatedTime: "15 min", Rating: 4.2, PriceLevel: shopping.PriceLow, Features: []string{"Meilleurs Prix", "Produits Frais", "Caisse Rapide"}, Savings: 15},
		{ID: "2", Name: "Carrefour", Distance: "1.2 km", EstimatedTime: "20 min", Rating: 4.5, PriceLevel: shopping.PriceMedium, Features: []string{"Large Sélection", "Bio", "Parking Gratuit"}, Savings: 8},
		{ID: "3", Name: "Auchan", Distance: "1.5 km", EstimatedTime: "25 min", Rating: 4.0, PriceLevel: shopping.PriceMedium, Features: []string{"Grand Magasin", "Vrac", "Électronique"}, Savings: 12},
		{ID: "4", Name: "Monoprix", Distance: "2.1 km", EstimatedTime: "30 min", Rating: 4.3, PriceLevel: shopping.PriceHigh, Features: []string{"Qualité Premium", "Centre Ville", "Mode & Alimentaire"}, Savings: 5},
	}
}

// FixtureSuggestions are the smart suggestions offered while editing a list.
func FixtureSuggestions() []suggest.Suggestion {
	return []suggest.Suggestion{
		{ID: "1", Item: "Lait Bio", Reason: suggest.ReasonFrequent, Confidence: 95, Details: "Vous en achetez chaque semaine", Price: 1.45},
		{ID: "2", Item: "Fraises", Reason: suggest.ReasonSeasonal, Confidence: 80, Details: "De saison et en promotion", Price: 3.20, Discount: 20},
		{ID: "3", Item: "Pâtes Complètes", Reason: suggest.ReasonRecipe, Confidence: 85, Details: "Pour votre recette sauvegardée", Price: 2.10},
		{ID: "4", Item: "Papier Toilette", Reason: suggest.ReasonRunningLow, Confidence: 90, Details: "Basé sur votre historique", Price: 8.50},
		{ID: "5", Item: "Avocat", Reason: suggest.ReasonTrending, Confidence: 75, Details: "Populaire cette semaine", Price: 1.80, Discount: 15},
	}
}

// FixtureBudget returns the category budgets, recent transactions and weekly
// spend for the budget screen.
func FixtureBudget() ([]repository.BudgetCategory, []repository.Transaction, []repository.WeeklySpend) {
	cats := []repository.BudgetCategory{
		{Name: "Groceries", Spent: 180, Budget: 250, Color: "#4F46E5"},
		{Name: "Dining Out", Spent: 60, Budget: 100, Color: "#F59E0B"},
		{Name: "Household", Spent: 50, Budget: 80, Color: "#10B981"},
		{Name: "Health", Spent: 30, Budget: 70, Color: "#EF4444"},
	}
	for i := range cats {
		cats[i].ID = fixtureID("budget", cats[i].Name)
		cats[i].SortOrder = i
	}
	txs := []repository.Transaction{
		{Store: "Lidl", Amount: 45.20, Date: "Jun 14, 2025", Category: "Groceries"},
		{Store: "Carrefour", Amount: 67.85, Date: "Jun 12, 2025", Category: "Groceries"},
		{Store: "Le Petit Bistro", Amount: 32.50, Date: "Jun 10, 2025", Category: "Dining Out"},
		{Store: "Pharmacie Centrale", Amount: 18.90, Date: "Jun 9, 2025", Category: "Health"},
		{Store: "Monoprix", Amount: 24.30, Date: "Jun 7, 2025", Category: "Household"},
	}
	for i := range txs {
		txs[i].ID = fixtureID("tx", fmt.Sprintf("%s/%s", txs[i].Store, txs[i].Date))
		txs[i].SortOrder = i
	}
	weeks := []repository.WeeklySpend{
		{Week: "Sem 1", Amount: 75},
		{Week: "Sem 2", Amount: 85},
		{Week: "Sem 3", Amount: 90},
		{Week: "Sem 4", Amount: 70},
	}
	for i := range weeks {
		weeks[i].SortOrder = i
	}
	return cats, txs, weeks
}

// SeedFixtures loads the session fixtures into an empty database.
// It is idempotent and safe to run on every startup.
func SeedFixtures(ctx context.Context, db *sql.DB) error {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM lists`).Scan(&n); err != nil {
		return fmt.Errorf("count lists: %w", err)
	}
	if n > 0 {
		return nil
	}

	lists := repository.NewListRepo(db)
	fixtures := FixtureLists()
	// Insert prepends, so walk backwards to keep display order.
	for i := len(fixtures) - 1; i >= 0; i-- {
		if err := lists.Insert(ctx, fixtures[i]); err != nil {
			return err
		}
	}

	notes := repository.NewNotificationRepo(db)
	for _, nt := range FixtureNotifications() {
		if err := notes.Insert(ctx, nt); err != nil {
			return fmt.Errorf("seed notification %s: %w", nt.ID, err)
		}
	}

	stores := repository.NewStoreRepo(db)
	for _, s := range FixtureStores() {
		if err := stores.Upsert(ctx, s); err != nil {
			return fmt.Errorf("seed store %s: %w", s.Name, err)
		}
	}

	sugs := repository.NewSuggestionRepo(db)
	for _, s := range FixtureSuggestions() {
		if err := sugs.Upsert(ctx, s); err != nil {
			return fmt.Errorf("seed suggestion %s: %w", s.Item, err)
		}
	}

	budgetRepo := repository.NewBudgetRepo(db)
	cats, txs, weeks := FixtureBudget()
	for _, c := range cats {
		if err := budgetRepo.UpsertCategory(ctx, c); err != nil {
			return fmt.Errorf("seed category %s: %w", c.Name, err)
		}
	}
	for _, t := range txs {
		if err := budgetRepo.InsertTransaction(ctx, t); err != nil {
			return fmt.Errorf("seed transaction %s: %w", t.Store, err)
		}
	}
	for _, w := range weeks {
		if err := budgetRepo.UpsertWeek(ctx, w); err != nil {
			return fmt.Errorf("seed week %s: %w", w.Week, err)
		}
	}
	return nil
}
