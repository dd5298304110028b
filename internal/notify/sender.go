package notify

import (
	"context"
	"log"
)

// Pusher abstracts the push transport. Register exchanges a device token
// for a durable endpoint; Send delivers one message to one endpoint.
type Pusher interface {
	Register(ctx context.Context, platform, token string) (string, error)
	Send(ctx context.Context, endpoint string, msg Message) error
}

// LogPusher is the development transport: registration is a pass-through
// and sends only log.
type LogPusher struct{}

func (LogPusher) Register(ctx context.Context, platform, token string) (string, error) {
	return token, nil
}

func (LogPusher) Send(ctx context.Context, endpoint string, msg Message) error {
	log.Printf("PUSH (log only) endpoint=%s title=%q body=%q", endpoint, msg.Title, msg.Body)
	return nil
}
