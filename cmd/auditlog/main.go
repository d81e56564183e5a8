package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"blogger/config"
	"blogger/eventbus"
	"blogger/events"
	"blogger/logger"
)

// auditlog consumes blog lifecycle events and writes them to the structured
// log. Handler failures go through the retry topics and end in the DLQ.
func main() {
	config.InitApp()
	logger.Init(config.GetConfig().Logging.Level)
	logger.SetServiceName("blogger-auditlog")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	brokers, err := eventbus.GetBrokers()
	if err != nil {
		logger.Log.Errorf("%v", err)
		os.Exit(1)
	}
	if err := eventbus.EnsureTopics(brokers, eventbus.TopicBlogEvents, 3); err != nil {
		logger.Log.Errorf("failed to ensure eventbus topics: %v", err)
	}

	bus, err := eventbus.NewKafkaEventBus(brokers)
	if err != nil {
		logger.Log.Errorf("failed to create event bus: %v", err)
		os.Exit(1)
	}
	defer bus.Close()

	groupID := eventbus.GetGroupID() + "-auditlog"
	logger.Log.Info("starting auditlog consumer...")

	err = eventbus.SubscribeJSON(ctx, bus, groupID, eventbus.TopicBlogEvents, handleBlogEvent)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Log.Errorf("auditlog consumer error: %v", err)
		os.Exit(1)
	}
	logger.Log.Info("auditlog consumer stopped")
}

var errMalformedEvent = errors.New("malformed blog event")

func handleBlogEvent(_ context.Context, evt events.BlogEvent, meta eventbus.Event) error {
	switch evt.Type {
	case events.BlogCreated, events.BlogUpdated, events.BlogDeleted:
	default:
		// not a blog event: commit and move on
		logger.DebugWithFields("ignoring event", logger.Fields{"event_id": meta.ID, "event_type": string(evt.Type)})
		return nil
	}
	if evt.BlogID.IsZero() {
		return fmt.Errorf("%w: %s has no blog_id", errMalformedEvent, meta.ID)
	}

	logger.InfoWithFields("blog audit", logger.Fields{
		"event_id":   evt.ID,
		"event_type": string(evt.Type),
		"blog_id":    evt.BlogID.Hex(),
		"created_by": evt.CreatedBy.Hex(),
		"title":      evt.Title,
		"source":     evt.Source,
		"occurred":   evt.Timestamp,
		"retry":      meta.Retry,
	})
	return nil
}
