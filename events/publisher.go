package events

import (
	"context"
	"fmt"

	"blogger/eventbus"
)

// Publisher puts blog events on the blog topic of an event bus.
type Publisher struct {
	bus   eventbus.EventBus
	topic eventbus.Topic
}

func NewPublisher(bus eventbus.EventBus, topic eventbus.Topic) *Publisher {
	return &Publisher{bus: bus, topic: topic}
}

// PublishBlogEvent wraps evt in a bus envelope keyed by the event id.
func (p *Publisher) PublishBlogEvent(ctx context.Context, evt BlogEvent) error {
	msg, err := eventbus.NewJSONEvent(evt.ID, evt, 0)
	if err != nil {
		return err
	}
	if err := p.bus.Publish(ctx, p.topic.Base(), msg); err != nil {
		return fmt.Errorf("publish %s for blog %s: %w", evt.Type, evt.BlogID.Hex(), err)
	}
	return nil
}
