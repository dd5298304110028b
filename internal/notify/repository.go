package notify

import "context"

// Repository stores push subscriptions.
type Repository interface {
	Save(ctx context.Context, sub *Subscription) error
	DeleteByEndpoint(ctx context.Context, endpoint string) error
	List(ctx context.Context) ([]Subscription, error)
}
