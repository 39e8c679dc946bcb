// Package natspub publishes regulatory events over NATS core subjects.
package natspub

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"

	"regledger/internal/events"
	"regledger/pkg/platform/sentinel"
)

// Publisher maps the logical topic and message key onto a NATS subject of the
// form "<topic>.<key>" so consumers can subscribe to a single rule or the
// whole stream with a wildcard.
type Publisher struct {
	conn *nats.Conn
}

// New connects to the given NATS URL. Callers own Close.
func New(url string) (*Publisher, error) {
	conn, err := nats.Connect(url, nats.Name("regledger"))
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	return &Publisher{conn: conn}, nil
}

func (p *Publisher) Publish(ctx context.Context, topic, key string, event events.RegulatoryEvent) error {
	payload, err := event.Encode()
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	subject := topic
	if key != "" {
		subject = topic + "." + key
	}
	if err := p.conn.Publish(subject, payload); err != nil {
		return fmt.Errorf("publish to %s: %w: %w", subject, sentinel.ErrUnavailable, err)
	}
	return nil
}

func (p *Publisher) Close() {
	p.conn.Close()
}
