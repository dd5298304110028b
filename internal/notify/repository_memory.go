package notify

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu   sync.RWMutex
	subs map[string]Subscription
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{subs: make(map[string]Subscription)}
}

func (r *InMemoryRepository) Save(ctx context.Context, sub *Subscription) error {
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}

	r.mu.Lock()
	r.subs[sub.ID] = *sub
	r.mu.Unlock()
	return nil
}

func (r *InMemoryRepository) DeleteByEndpoint(ctx context.Context, endpoint string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, sub := range r.subs {
		if sub.Endpoint == endpoint {
			delete(r.subs, id)
		}
	}
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Subscription, 0, len(r.subs))
	for _, sub := range r.subs {
		out = append(out, sub)
	}
	return out, nil
}
