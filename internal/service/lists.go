package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jask/basket/internal/database/repository"
	"github.com/jask/basket/internal/grocery"
)

// ListService applies the grocery operations to the session store.
type ListService struct {
	Lists *repository.ListRepo
	// Now is the clock used for ids and dates; nil means time.Now.
	Now func() time.Time
}

// AddResult reports the outcome of AddItem.
type AddResult struct {
	List  grocery.GroceryList
	Added bool
	// Similar is set when the list already holds an item with a near
	// identical name. The new item is added regardless.
	Similar *grocery.ListItem
}

func (s *ListService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// All returns every list, newest first.
func (s *ListService) All(ctx context.Context) ([]grocery.GroceryList, error) {
	lists, err := s.Lists.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load lists: %w", err)
	}
	return lists, nil
}

// Get returns grocery.ErrListNotFound for an unknown id.
func (s *ListService) Get(ctx context.Context, id string) (grocery.GroceryList, error) {
	l, err := s.Lists.Get(ctx, id)
	if err != nil {
		return grocery.GroceryList{}, fmt.Errorf("load list %s: %w", id, err)
	}
	if l == nil {
		return grocery.GroceryList{}, grocery.ErrListNotFound
	}
	return *l, nil
}

// CreateList adds an empty list ahead of the others. A blank name creates
// nothing and reports false.
func (s *ListService) CreateList(ctx context.Context, name string, shared bool) (grocery.GroceryList, bool, error) {
	existing, err := s.All(ctx)
	if err != nil {
		return grocery.GroceryList{}, false, err
	}
	l, ok := grocery.NewList(existing, name, shared, s.now())
	if !ok {
		return grocery.GroceryList{}, false, nil
	}
	if err := s.Lists.Insert(ctx, l); err != nil {
		return grocery.GroceryList{}, false, fmt.Errorf("create list: %w", err)
	}
	return l, true, nil
}

// DeleteList removes a list and its items. Unknown ids are ignored.
func (s *ListService) DeleteList(ctx context.Context, id string) error {
	if err := s.Lists.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete list %s: %w", id, err)
	}
	return nil
}

// AddItem appends an item named name. Blank names leave the list unchanged.
func (s *ListService) AddItem(ctx context.Context, listID, name string) (AddResult, error) {
	l, err := s.Get(ctx, listID)
	if err != nil {
		return AddResult{}, err
	}
	res := AddResult{List: l}
	if strings.TrimSpace(name) == "" {
		return res, nil
	}
	if it, ok := similarItem(l.Items, name); ok {
		res.Similar = &it
	}
	items, added := grocery.AddItem(l.Items, name, s.now())
	if !added {
		return res, nil
	}
	if err := s.Lists.ReplaceItems(ctx, listID, items); err != nil {
		return AddResult{}, fmt.Errorf("add item: %w", err)
	}
	res.List.Items = items
	res.Added = true
	return res, nil
}

func (s *ListService) ToggleItem(ctx context.Context, listID, itemID string) (grocery.GroceryList, error) {
	return s.mutate(ctx, listID, func(items []grocery.ListItem) []grocery.ListItem {
		return grocery.ToggleItem(items, itemID)
	})
}

func (s *ListService) EditItem(ctx context.Context, listID, itemID, name string) (grocery.GroceryList, error) {
	return s.mutate(ctx, listID, func(items []grocery.ListItem) []grocery.ListItem {
		return grocery.EditItem(items, itemID, name)
	})
}

func (s *ListService) DeleteItem(ctx context.Context, listID, itemID string) (grocery.GroceryList, error) {
	return s.mutate(ctx, listID, func(items []grocery.ListItem) []grocery.ListItem {
		return grocery.DeleteItem(items, itemID)
	})
}

// SetQuantity moves an item's quantity by delta, never below one.
func (s *ListService) SetQuantity(ctx context.Context, listID, itemID string, delta int) (grocery.GroceryList, error) {
	return s.mutate(ctx, listID, func(items []grocery.ListItem) []grocery.ListItem {
		return grocery.SetQuantity(items, itemID, delta)
	})
}

func (s *ListService) mutate(ctx context.Context, listID string, op func([]grocery.ListItem) []grocery.ListItem) (grocery.GroceryList, error) {
	l, err := s.Get(ctx, listID)
	if err != nil {
		return grocery.GroceryList{}, err
	}
	l.Items = op(l.Items)
	if err := s.Lists.ReplaceItems(ctx, listID, l.Items); err != nil {
		return grocery.GroceryList{}, fmt.Errorf("update items of %s: %w", listID, err)
	}
	return l, nil
}
