package messaging

import "context"

// PublisherInterface is the contract services use to emit portal events.
// Publishing is always best-effort; callers log failures and move on.
type PublisherInterface interface {
	Publish(ctx context.Context, routingKey string, eventData interface{}) error
	Close() error
}

var _ PublisherInterface = (*Publisher)(nil)
