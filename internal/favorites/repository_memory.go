package favorites

import (
	"context"
	"sync"
)

type InMemoryRepository struct {
	mu    sync.RWMutex
	items map[string][]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{items: make(map[string][]string)}
}

func (r *InMemoryRepository) List(ctx context.Context, userID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.items[userID]))
	copy(out, r.items[userID])
	return out, nil
}

func (r *InMemoryRepository) Add(ctx context.Context, userID, item string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items[userID] {
		if existing == item {
			return nil
		}
	}
	r.items[userID] = append(r.items[userID], item)
	return nil
}

func (r *InMemoryRepository) Remove(ctx context.Context, userID, item string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.items[userID][:0]
	for _, existing := range r.items[userID] {
		if existing != item {
			kept = append(kept, existing)
		}
	}
	r.items[userID] = kept
	return nil
}
