package memory

import (
	"context"
	"sync"

	"regledger/internal/audit"
)

// InMemoryStore keeps audit events in insertion order, grouped by rule.
type InMemoryStore struct {
	mu      sync.RWMutex
	ordered []audit.Event
	byRule  map[string][]audit.Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{byRule: make(map[string][]audit.Event)}
}

func (s *InMemoryStore) Append(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ordered = append(s.ordered, event)
	s.byRule[event.RuleID] = append(s.byRule[event.RuleID], event)
	return nil
}

func (s *InMemoryStore) ListByRule(_ context.Context, ruleID string) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]audit.Event{}, s.byRule[ruleID]...), nil
}

// ListRecent returns the most recent N events across all rules.
func (s *InMemoryStore) ListRecent(_ context.Context, limit int) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := len(s.ordered) - limit
	if start < 0 {
		start = 0
	}
	return append([]audit.Event{}, s.ordered[start:]...), nil
}
