// Package memory provides an in-process event publisher for tests and
// single-node development boots.
package memory

import (
	"context"
	"sync"

	"regledger/internal/events"
)

// Published is one captured publish call.
type Published struct {
	Topic string
	Key   string
	Event events.RegulatoryEvent
}

// Publisher records events in order. FailWith makes every subsequent publish
// fail, which tests use to verify that publish failures never roll back a
// durable mutation.
type Publisher struct {
	mu        sync.Mutex
	published []Published
	failErr   error
}

func New() *Publisher {
	return &Publisher{}
}

func (p *Publisher) Publish(_ context.Context, topic, key string, event events.RegulatoryEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failErr != nil {
		return p.failErr
	}
	p.published = append(p.published, Published{Topic: topic, Key: key, Event: event})
	return nil
}

// Published returns a copy of everything captured so far.
func (p *Publisher) Published() []Published {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Published{}, p.published...)
}

// FailWith forces every subsequent Publish to return err. Pass nil to heal.
func (p *Publisher) FailWith(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failErr = err
}
