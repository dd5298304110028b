package ratings

import (
	"context"
	"sync"
)

type InMemoryRepository struct {
	mu      sync.RWMutex
	records map[Key]Record
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{records: make(map[Key]Record)}
}

func (r *InMemoryRepository) Get(ctx context.Context, key Key) (*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[key]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *InMemoryRepository) Put(ctx context.Context, key Key, rec Record) error {
	r.mu.Lock()
	r.records[key] = rec
	r.mu.Unlock()
	return nil
}

func (r *InMemoryRepository) All(ctx context.Context) (map[Key]Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[Key]Record, len(r.records))
	for k, v := range r.records {
		out[k] = v
	}
	return out, nil
}
