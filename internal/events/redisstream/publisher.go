// Package redisstream publishes regulatory events onto a Redis stream.
package redisstream

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"regledger/internal/events"
	"regledger/pkg/platform/sentinel"
)

// Publisher appends events to a stream named after the logical topic.
// The message key travels as a field so consumers can filter per rule even
// though Redis streams are not partitioned.
type Publisher struct {
	client *redis.Client
}

// New wraps an existing Redis client. The caller owns the client lifecycle.
func New(client *redis.Client) *Publisher {
	return &Publisher{client: client}
}

func (p *Publisher) Publish(ctx context.Context, topic, key string, event events.RegulatoryEvent) error {
	payload, err := event.Encode()
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	err = p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: topic,
		Values: map[string]any{
			"key":     key,
			"payload": payload,
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd to %s: %w: %w", topic, sentinel.ErrUnavailable, err)
	}
	return nil
}
