package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"blogger/config"
	"blogger/eventbus"
	"blogger/logger"
)

func main() {
	config.InitApp()
	// LOG_LEVEL wins over config.yaml for this worker
	logger.InitFromEnv("LOG_LEVEL", config.GetConfig().Logging.Level)
	logger.SetServiceName("blogger-retryworker")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	brokers, err := eventbus.GetBrokers()
	if err != nil {
		logger.Log.Errorf("%v", err)
		os.Exit(1)
	}
	for _, t := range eventbus.AllTopics {
		if err := eventbus.EnsureTopics(brokers, t, 3); err != nil {
			logger.Log.Errorf("failed to ensure eventbus topics for %s: %v", t.Base(), err)
		}
	}

	bus, err := eventbus.NewKafkaEventBus(brokers)
	if err != nil {
		logger.Log.Errorf("failed to create event bus: %v", err)
		os.Exit(1)
	}
	defer bus.Close()

	groupID := eventbus.GetGroupID() + "-retry-worker"
	logger.Log.Info("starting retry worker...")

	var wg sync.WaitGroup
	for _, t := range eventbus.AllTopics {
		topic := t
		wg.Add(1)
		go func() {
			defer wg.Done()
			topicGroupID := groupID + "-" + strings.ReplaceAll(topic.Base(), ".", "-")
			if err := bus.StartRetryReinjector(ctx, topicGroupID, topic); err != nil && !errors.Is(err, context.Canceled) {
				logger.Log.Errorf("retry reinjector error for %s: %v", topic.Base(), err)
			}
		}()
	}

	<-ctx.Done()
	logger.Log.Info("received shutdown signal, shutting down retry worker...")
	wg.Wait()
	logger.Log.Info("retry worker stopped")
}
