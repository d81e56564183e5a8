package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// RetryDelays lists the delay for each retry attempt (1-based).
var RetryDelays = []time.Duration{
	10 * time.Second,
	30 * time.Second,
	1 * time.Minute,
	5 * time.Minute,
	10 * time.Minute,
}

const retryInfix = ".retry."

// Topic derives the retry and DLQ topic names from a base topic.
type Topic struct {
	base string
}

func NewTopic(base string) Topic {
	return Topic{base: base}
}

func (t Topic) Base() string {
	return t.base
}

// DLQ returns the dead letter topic, e.g. blogger.blog.events.dlq.
func (t Topic) DLQ() string {
	return t.base + ".dlq"
}

// GetRetryTopics returns every delayed retry topic, e.g. blogger.blog.events.retry.10s.
func (t Topic) GetRetryTopics() []string {
	topics := make([]string, len(RetryDelays))
	for i, delay := range RetryDelays {
		topics[i] = t.base + retryInfix + delay.String()
	}
	return topics
}

// GetRetryTopic returns the topic for the given retry attempt (1-based).
func (t Topic) GetRetryTopic(retryCount int) (string, error) {
	if retryCount <= 0 || retryCount > len(RetryDelays) {
		return "", ErrMaxRetryExceeded
	}
	return t.base + retryInfix + RetryDelays[retryCount-1].String(), nil
}

// ParseRetryFromTopicName extracts the delay encoded after ".retry.".
// "blogger.blog.events.retry.1m0s" yields one minute.
func ParseRetryFromTopicName(name string) (time.Duration, bool) {
	idx := strings.LastIndex(name, retryInfix)
	if idx == -1 || idx+len(retryInfix) >= len(name) {
		return 0, false
	}
	d, err := time.ParseDuration(name[idx+len(retryInfix):])
	if err != nil || d <= 0 {
		return 0, false
	}
	return d, true
}

// Event is the message envelope written to Kafka.
type Event struct {
	ID        string          `json:"id"`
	Payload   json.RawMessage `json:"payload"`
	Retry     int             `json:"retry"` // attempts so far, starting at 0
	MaxRetry  int             `json:"max_retry"`
	LastError string          `json:"last_error,omitempty"`
}

type EventHandler func(ctx context.Context, event Event) error

// EventBus publishes events and runs consumers with retry scheduling.
type EventBus interface {
	Publish(ctx context.Context, topic string, event Event) error
	// Subscribe consumes the base topic and routes handler failures to
	// retry topics, then to the DLQ.
	Subscribe(ctx context.Context, groupID string, topic Topic, handler EventHandler) error
	// StartRetryReinjector moves due events from retry topics back to the base topic.
	StartRetryReinjector(ctx context.Context, groupID string, topic Topic) error
	Close()
}

var ErrMaxRetryExceeded = errors.New("max retry exceeded")

var ErrRetryScheduleFailed = errors.New("failed to schedule retry or dlq publish")

// nextDestination decides where a failed event goes: the next retry topic,
// or the DLQ once retries are exhausted.
func nextDestination(topic Topic, evt Event) (dest string, retry int, dlq bool, err error) {
	next := evt.Retry + 1
	if next > evt.MaxRetry {
		return topic.DLQ(), evt.Retry, true, nil
	}
	retryTopic, err := topic.GetRetryTopic(next)
	if errors.Is(err, ErrMaxRetryExceeded) {
		return topic.DLQ(), evt.Retry, true, nil
	}
	if err != nil {
		return "", 0, false, fmt.Errorf("%w: %v", ErrRetryScheduleFailed, err)
	}
	return retryTopic, next, false, nil
}
