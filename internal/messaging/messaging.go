package messaging

import "context"

// Publisher defines an interface for publishing domain events to a bus.
type Publisher interface {
	PublishEvent(ctx context.Context, topic string, key string, event any) error
}

// Subscriber defines an interface for subscribing to a topic.
type Subscriber interface {
	Consume(ctx context.Context, topic string, handler func(ctx context.Context, payload []byte) error)
}

// Topics used across the storefront.
const (
	TopicCartEvents   = "cart.events"
	TopicAuthEvents   = "auth.events"
	TopicOrdersPlaced = "orders.placed"
)
