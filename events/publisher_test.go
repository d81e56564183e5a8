package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blogger/eventbus"
	"blogger/models"
)

type recordingBus struct {
	topics []string
	events []eventbus.Event
	err    error
}

func (b *recordingBus) Publish(_ context.Context, topic string, event eventbus.Event) error {
	if b.err != nil {
		return b.err
	}
	b.topics = append(b.topics, topic)
	b.events = append(b.events, event)
	return nil
}

func (b *recordingBus) Subscribe(context.Context, string, eventbus.Topic, eventbus.EventHandler) error {
	return nil
}

func (b *recordingBus) StartRetryReinjector(context.Context, string, eventbus.Topic) error {
	return nil
}

func (b *recordingBus) Close() {}

func TestPublisherWrapsBlogEvent(t *testing.T) {
	bus := &recordingBus{}
	pub := NewPublisher(bus, eventbus.TopicBlogEvents)

	blog := &models.Blog{ID: primitive.NewObjectID(), CreatedBy: primitive.NewObjectID(), Title: "Hello"}
	evt := NewBlogEvent(BlogCreated, blog)
	require.NoError(t, pub.PublishBlogEvent(context.Background(), evt))

	require.Len(t, bus.events, 1)
	assert.Equal(t, "blogger.blog.events", bus.topics[0])
	assert.Equal(t, evt.ID, bus.events[0].ID)
	assert.Equal(t, len(eventbus.RetryDelays), bus.events[0].MaxRetry)

	decoded, err := eventbus.DecodeJSON[BlogEvent](bus.events[0])
	require.NoError(t, err)
	assert.Equal(t, BlogCreated, decoded.Type)
	assert.Equal(t, blog.ID, decoded.BlogID)
	assert.Equal(t, blog.CreatedBy, decoded.CreatedBy)
	assert.Equal(t, "Hello", decoded.Title)
	assert.Equal(t, SourceAPI, decoded.Source)
}

func TestPublisherReportsBusFailure(t *testing.T) {
	bus := &recordingBus{err: errors.New("broker down")}
	pub := NewPublisher(bus, eventbus.TopicBlogEvents)

	err := pub.PublishBlogEvent(context.Background(), NewBlogEvent(BlogDeleted, &models.Blog{ID: primitive.NewObjectID()}))
	assert.ErrorContains(t, err, "broker down")
}
