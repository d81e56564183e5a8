package eventbus

import (
	"errors"

	"blogger/config"
)

var ErrNoBrokers = errors.New("kafka brokers are not configured (events.brokers or KAFKA_BOOTSTRAP_SERVERS)")

// GetBrokers returns the Kafka bootstrap servers from configuration.
func GetBrokers() (string, error) {
	v := config.GetConfig().Events.Brokers
	if v == "" {
		return "", ErrNoBrokers
	}
	return v, nil
}

// GetGroupID returns the base consumer group id. Workers append their own suffix.
func GetGroupID() string {
	if v := config.GetConfig().Events.GroupID; v != "" {
		return v
	}
	return "blogger"
}
