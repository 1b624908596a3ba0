package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jask/basket/internal/grocery"
)

// ListRepo handles grocery lists and their items.
type ListRepo struct {
	db *sql.DB
}

func NewListRepo(db *sql.DB) *ListRepo { return &ListRepo{db: db} }

// Insert adds l ahead of every existing list.
func (r *ListRepo) Insert(ctx context.Context, l grocery.GroceryList) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
	INSERT INTO lists(id, name, shared, date, sort_order)
	VALUES (?, ?, ?, ?, (SELECT COALESCE(MIN(sort_order), 0) - 1 FROM lists));
	`, l.ID, l.Name, l.Shared, l.Date); err != nil {
		return fmt.Errorf("insert list %s: %w", l.ID, err)
	}
	if err := insertItems(ctx, tx, l.ID, l.Items); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *ListRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM lists WHERE id = ?`, id)
	return err
}

// ReplaceItems swaps the item set of a list, keeping the given order.
func (r *ListRepo) ReplaceItems(ctx context.Context, listID string, items []grocery.ListItem) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM list_items WHERE list_id = ?`, listID); err != nil {
		return fmt.Errorf("clear items of %s: %w", listID, err)
	}
	if err := insertItems(ctx, tx, listID, items); err != nil {
		return err
	}
	return tx.Commit()
}

func insertItems(ctx context.Context, tx *sql.Tx, listID string, items []grocery.ListItem) error {
	for pos, it := range items {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO list_items(list_id, id, position, name, checked, category, aisle, priority, estimated_price, quantity)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
		`, listID, it.ID, pos, it.Name, it.Checked, it.Category, it.Aisle, string(it.Priority), it.EstimatedPrice, it.Quantity); err != nil {
			return fmt.Errorf("insert item %s: %w", it.ID, err)
		}
	}
	return nil
}

// Get returns nil, nil when the list does not exist.
func (r *ListRepo) Get(ctx context.Context, id string) (*grocery.GroceryList, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, shared, date FROM lists WHERE id = ?`, id)
	l, err := scanList(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if l.Items, err = r.items(ctx, id); err != nil {
		return nil, err
	}
	return &l, nil
}

// List returns every list, newest first, with items loaded.
func (r *ListRepo) List(ctx context.Context) ([]grocery.GroceryList, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, shared, date FROM lists ORDER BY sort_order, rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []grocery.GroceryList
	for rows.Next() {
		l, err := scanList(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// the single connection must be free before the item queries run
	rows.Close()

	for i := range out {
		if out[i].Items, err = r.items(ctx, out[i].ID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *ListRepo) items(ctx context.Context, listID string) ([]grocery.ListItem, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, checked, category, aisle, priority, estimated_price, quantity
	FROM list_items WHERE list_id = ? ORDER BY position`, listID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []grocery.ListItem{}
	for rows.Next() {
		var it grocery.ListItem
		var priority string
		if err := rows.Scan(&it.ID, &it.Name, &it.Checked, &it.Category, &it.Aisle, &priority, &it.EstimatedPrice, &it.Quantity); err != nil {
			return nil, err
		}
		it.Priority = grocery.Priority(priority)
		items = append(items, it)
	}
	return items, rows.Err()
}

func scanList(s scanner) (grocery.GroceryList, error) {
	var l grocery.GroceryList
	err := s.Scan(&l.ID, &l.Name, &l.Shared, &l.Date)
	return l, err
}
