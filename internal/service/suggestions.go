package service

import (
	"context"
	"fmt"

	"github.com/jask/basket/internal/database/repository"
	"github.com/jask/basket/internal/grocery"
	"github.com/jask/basket/internal/suggest"
)

// SuggestionService offers smart suggestions for a list.
type SuggestionService struct {
	Suggestions *repository.SuggestionRepo
}

// For returns active suggestions the list does not already contain, ranked
// against query. A blank query ranks by confidence.
func (s *SuggestionService) For(ctx context.Context, l grocery.GroceryList, query string) ([]suggest.Suggestion, error) {
	active, err := s.Suggestions.Active(ctx)
	if err != nil {
		return nil, fmt.Errorf("load suggestions: %w", err)
	}
	names := make([]string, 0, len(l.Items))
	for _, it := range l.Items {
		names = append(names, it.Name)
	}
	return suggest.Match(query, suggest.Without(active, names)), nil
}

// Dismiss hides a suggestion for the rest of the session.
func (s *SuggestionService) Dismiss(ctx context.Context, id string) error {
	return s.Suggestions.Dismiss(ctx, id)
}
