package service

import (
	"context"
	"fmt"

	"github.com/jask/basket/internal/database/repository"
	"github.com/jask/basket/internal/shopping"
)

// ShoppingService supplies shopping mode with its reference data.
type ShoppingService struct {
	Stores *repository.StoreRepo
}

// ListStores returns the store picker entries, nearest first.
func (s *ShoppingService) ListStores(ctx context.Context) ([]shopping.Store, error) {
	stores, err := s.Stores.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stores: %w", err)
	}
	return stores, nil
}
