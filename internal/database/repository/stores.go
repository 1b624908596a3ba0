package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jask/basket/internal/shopping"
)

// StoreRepo handles the store picker reference data.
type StoreRepo struct{ db *sql.DB }

func NewStoreRepo(db *sql.DB) *StoreRepo { return &StoreRepo{db: db} }

func (r *StoreRepo) Upsert(ctx context.Context, s shopping.Store) error {
	features, err := json.Marshal(s.Features)
	if err != nil {
		return fmt.Errorf("encode features: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
	INSERT INTO stores(id, name, distance, estimated_time, rating, price_level, features, savings)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 distance=excluded.distance,
	 estimated_time=excluded.estimated_time,
	 rating=excluded.rating,
	 price_level=excluded.price_level,
	 features=excluded.features,
	 savings=excluded.savings;
	`, s.ID, s.Name, s.Distance, s.EstimatedTime, s.Rating, string(s.PriceLevel), string(features), s.Savings)
	return err
}

// List returns stores nearest first.
func (r *StoreRepo) List(ctx context.Context) ([]shopping.Store, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, distance, estimated_time, rating, price_level, features, savings FROM stores ORDER BY CAST(distance AS REAL), name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []shopping.Store
	for rows.Next() {
		var s shopping.Store
		var level, features string
		if err := rows.Scan(&s.ID, &s.Name, &s.Distance, &s.EstimatedTime, &s.Rating, &level, &features, &s.Savings); err != nil {
			return nil, err
		}
		s.PriceLevel = shopping.PriceLevel(level)
		if err := json.Unmarshal([]byte(features), &s.Features); err != nil {
			return nil, fmt.Errorf("decode features of %s: %w", s.ID, err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
