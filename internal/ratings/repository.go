package ratings

import "context"

// Repository defines storage for rating records. Get returns (nil, nil)
// for an unknown key; missing ratings are not an error.
type Repository interface {
	Get(ctx context.Context, key Key) (*Record, error)
	Put(ctx context.Context, key Key, rec Record) error
	All(ctx context.Context) (map[Key]Record, error)
}
