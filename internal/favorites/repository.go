package favorites

import "context"

// Repository stores each user's favorite dishes as the raw display
// strings; equivalence is resolved in the service, not in storage.
type Repository interface {
	List(ctx context.Context, userID string) ([]string, error)
	Add(ctx context.Context, userID, item string) error
	Remove(ctx context.Context, userID, item string) error
}
