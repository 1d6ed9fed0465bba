package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/luxeshop/storefront/internal/entity"
)

// Bus is an in-process event bus backed by Watermill's gochannel Pub/Sub.
// The storefront has no broker; everything that would be a "network" hop in
// a real deployment stays inside the process.
type Bus struct {
	pubsub *gochannel.GoChannel
}

// NewBus creates a new in-process bus.
func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		pubsub: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: 64},
			watermill.NewSlogLogger(logger),
		),
	}
}

func (b *Bus) PublishEvent(ctx context.Context, topic string, key string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	msg.Metadata.Set("key", key)
	if e, ok := event.(entity.Event); ok {
		msg.Metadata.Set("event_type", e.EventType())
	}

	return b.pubsub.Publish(topic, msg)
}

// Consume delivers every message on topic to handler until ctx is cancelled.
// Subscriptions must be set up before the first publish; gochannel does not
// replay.
func (b *Bus) Consume(ctx context.Context, topic string, handler func(ctx context.Context, payload []byte) error) {
	messages, err := b.pubsub.Subscribe(ctx, topic)
	if err != nil {
		slog.Error("Failed to subscribe", "topic", topic, "err", err)
		return
	}

	for msg := range messages {
		if err := handler(ctx, msg.Payload); err != nil {
			slog.Error("Error handling message", "topic", topic, "err", err)
		}
		msg.Ack()
	}
}

// Close shuts the bus down and closes all subscriber channels.
func (b *Bus) Close() error {
	return b.pubsub.Close()
}
