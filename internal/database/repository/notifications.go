package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/basket/internal/notify"
)

// NotificationRepo handles the alerts feed.
type NotificationRepo struct{ db *sql.DB }

func NewNotificationRepo(db *sql.DB) *NotificationRepo { return &NotificationRepo{db: db} }

// Insert appends n to the end of the feed.
func (r *NotificationRepo) Insert(ctx context.Context, n notify.Notification) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO notifications(id, type, title, message, time, read, actionable, sort_order)
	VALUES (?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(sort_order), 0) + 1 FROM notifications));
	`, n.ID, string(n.Type), n.Title, n.Message, n.Time, n.Read, n.Actionable)
	return err
}

func (r *NotificationRepo) List(ctx context.Context) ([]notify.Notification, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, type, title, message, time, read, actionable FROM notifications ORDER BY sort_order`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []notify.Notification
	for rows.Next() {
		var n notify.Notification
		var typ string
		if err := rows.Scan(&n.ID, &typ, &n.Title, &n.Message, &n.Time, &n.Read, &n.Actionable); err != nil {
			return nil, err
		}
		n.Type = notify.Type(typ)
		out = append(out, n)
	}
	return out, rows.Err()
}

// Replace swaps the whole feed for ns, keeping the given order.
func (r *NotificationRepo) Replace(ctx context.Context, ns []notify.Notification) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM notifications`); err != nil {
		return fmt.Errorf("clear notifications: %w", err)
	}
	for pos, n := range ns {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO notifications(id, type, title, message, time, read, actionable, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?);
		`, n.ID, string(n.Type), n.Title, n.Message, n.Time, n.Read, n.Actionable, pos+1); err != nil {
			return fmt.Errorf("insert notification %s: %w", n.ID, err)
		}
	}
	return tx.Commit()
}
