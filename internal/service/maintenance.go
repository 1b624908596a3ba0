package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/basket/internal/database"
)

// MaintenanceService houses destructive actions surfaced through the TUI.
type MaintenanceService struct {
	DB *sql.DB
}

// Reset wipes the session and reloads the fixtures. The schema stays intact so
// the app can continue running.
func (s *MaintenanceService) Reset(ctx context.Context) error {
	if s.DB == nil {
		return fmt.Errorf("maintenance: db not configured")
	}
	if err := database.WithTx(s.DB, func(tx *sql.Tx) error {
		tables := []string{
			"list_items",
			"lists",
			"notifications",
			"stores",
			"suggestions",
			"budget_transactions",
			"budget_categories",
			"weekly_spend",
		}
		for _, t := range tables {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+t); err != nil {
				return fmt.Errorf("reset table %s: %w", t, err)
			}
		}
		return nil
	}); err != nil {
		return err
	}
	return database.SeedFixtures(ctx, s.DB)
}
