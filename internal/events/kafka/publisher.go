// Package kafka publishes regulatory events to a Kafka (or Redpanda) cluster.
package kafka

import (
	"context"
	"fmt"

	"github.com/twmb/franz-go/pkg/kgo"

	"regledger/internal/events"
	"regledger/pkg/platform/sentinel"
)

// Publisher produces regulatory events synchronously so a publish failure is
// visible to the caller before its response is written. Delivery guarantees
// beyond the produce acknowledgement belong to the cluster.
type Publisher struct {
	client *kgo.Client
}

// New connects to the given brokers. Callers own Close.
func New(brokers []string) (*Publisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	)
	if err != nil {
		return nil, fmt.Errorf("connect kafka: %w", err)
	}
	return &Publisher{client: client}, nil
}

// Publish produces one record keyed by the rule's business key.
func (p *Publisher) Publish(ctx context.Context, topic, key string, event events.RegulatoryEvent) error {
	payload, err := event.Encode()
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	record := &kgo.Record{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
	}
	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce to %s: %w: %w", topic, sentinel.ErrUnavailable, err)
	}
	return nil
}

func (p *Publisher) Close() {
	p.client.Close()
}
