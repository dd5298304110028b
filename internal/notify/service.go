package notify

import (
	"context"
	"errors"
	"log"
	"time"
)

var ErrMissingToken = errors.New("device token is required")

type Service struct {
	repo   Repository
	pusher Pusher
}

func NewService(repo Repository, pusher Pusher) *Service {
	return &Service{repo: repo, pusher: pusher}
}

// Subscribe registers a device with the push transport and stores the
// resulting endpoint.
func (s *Service) Subscribe(ctx context.Context, platform, token string, prefs Preferences) (*Subscription, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	endpoint, err := s.pusher.Register(ctx, platform, token)
	if err != nil {
		return nil, err
	}

	sub := &Subscription{
		Platform:    platform,
		Endpoint:    endpoint,
		Preferences: prefs,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.Save(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// Unsubscribe drops every subscription for the endpoint.
func (s *Service) Unsubscribe(ctx context.Context, endpoint string) error {
	if endpoint == "" {
		return ErrMissingToken
	}
	return s.repo.DeleteByEndpoint(ctx, endpoint)
}

// Broadcast sends a message to every subscriber the filter accepts and
// returns how many sends succeeded. Individual delivery failures are
// logged and skipped; one dead endpoint must not block the rest.
func (s *Service) Broadcast(ctx context.Context, msg Message, filter func(Preferences) bool) (int, error) {
	subs, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, sub := range subs {
		if filter != nil && !filter(sub.Preferences) {
			continue
		}
		if err := s.pusher.Send(ctx, sub.Endpoint, msg); err != nil {
			log.Printf("push failed id=%s: %v", sub.ID, err)
			continue
		}
		sent++
	}
	return sent, nil
}
