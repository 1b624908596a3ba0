package repository

import (
	"context"
	"database/sql"

	"github.com/jask/basket/internal/suggest"
)

// SuggestionRepo handles smart suggestions.
type SuggestionRepo struct{ db *sql.DB }

func NewSuggestionRepo(db *sql.DB) *SuggestionRepo { return &SuggestionRepo{db: db} }

func (r *SuggestionRepo) Upsert(ctx context.Context, s suggest.Suggestion) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO suggestions(id, item, reason, confidence, details, price, discount)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 item=excluded.item,
	 reason=excluded.reason,
	 confidence=excluded.confidence,
	 details=excluded.details,
	 price=excluded.price,
	 discount=excluded.discount;
	`, s.ID, s.Item, string(s.Reason), s.Confidence, s.Details, s.Price, s.Discount)
	return err
}

// Active returns suggestions not dismissed this session, most confident first.
func (r *SuggestionRepo) Active(ctx context.Context) ([]suggest.Suggestion, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, item, reason, confidence, details, price, discount FROM suggestions WHERE dismissed = 0 ORDER BY confidence DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []suggest.Suggestion
	for rows.Next() {
		var s suggest.Suggestion
		var reason string
		if err := rows.Scan(&s.ID, &s.Item, &reason, &s.Confidence, &s.Details, &s.Price, &s.Discount); err != nil {
			return nil, err
		}
		s.Reason = suggest.Reason(reason)
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SuggestionRepo) Dismiss(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE suggestions SET dismissed = 1 WHERE id = ?`, id)
	return err
}
