package favorites

import (
	"context"
	"errors"

	"github.com/prasannardyy/Messmate/internal/dish"
)

var ErrEmptyItem = errors.New("item name is empty")

// Service keeps at most one favorite per dish-equivalence class. Entries
// are stored as the raw display strings the user tapped on, so the UI can
// render exactly what was saved.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, userID string) ([]string, error) {
	items, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []string{}
	}
	return items, nil
}

// Toggle removes the matching favorite if the item (or a variant of it) is
// already saved, and adds the item verbatim otherwise. Returns true when
// the item ended up favorited.
func (s *Service) Toggle(ctx context.Context, userID, item string) (bool, error) {
	if dish.Normalize(item) == "" {
		return false, ErrEmptyItem
	}

	current, err := s.repo.List(ctx, userID)
	if err != nil {
		return false, err
	}

	if match, ok := dish.MatchingFavorite(item, current); ok {
		return false, s.removeSimilar(ctx, userID, match, current)
	}

	return true, s.repo.Add(ctx, userID, item)
}

// Add saves the item unless an equivalent favorite already exists.
func (s *Service) Add(ctx context.Context, userID, item string) error {
	if dish.Normalize(item) == "" {
		return ErrEmptyItem
	}

	current, err := s.repo.List(ctx, userID)
	if err != nil {
		return err
	}
	if dish.HasSimilarFavorite(item, current) {
		return nil
	}
	return s.repo.Add(ctx, userID, item)
}

// Remove drops the exact entry along with any stored variant of it.
func (s *Service) Remove(ctx context.Context, userID, item string) error {
	current, err := s.repo.List(ctx, userID)
	if err != nil {
		return err
	}
	return s.removeSimilar(ctx, userID, item, current)
}

func (s *Service) removeSimilar(ctx context.Context, userID, item string, current []string) error {
	for _, fav := range current {
		if fav == item || dish.AreSimilar(fav, item) {
			if err := s.repo.Remove(ctx, userID, fav); err != nil {
				return err
			}
		}
	}
	return nil
}
