package rule

import (
	"context"
	"sort"
	"strings"
	"sync"

	"regledger/internal/regulatory/models"
	"regledger/pkg/platform/sentinel"
)

// InMemory is the map-backed RuleStore used by unit tests and local boots.
// The mutex spans check-then-insert and validate-then-mutate sections, which
// is what makes CreateIfRuleIDAvailable and Execute safe under concurrency.
type InMemory struct {
	mu       sync.RWMutex
	byID     map[int64]*models.RegulatoryRule
	byRuleID map[string]int64
	nextID   int64
}

func NewInMemory() *InMemory {
	return &InMemory{
		byID:     make(map[int64]*models.RegulatoryRule),
		byRuleID: make(map[string]int64),
	}
}

func (s *InMemory) FindByID(_ context.Context, id int64) (*models.RegulatoryRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rule, ok := s.byID[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return copyOf(rule), nil
}

func (s *InMemory) FindByRuleID(_ context.Context, ruleID string) (*models.RegulatoryRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byRuleID[keyOf(ruleID)]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return copyOf(s.byID[id]), nil
}

func (s *InMemory) FindAll(_ context.Context) ([]*models.RegulatoryRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rules := make([]*models.RegulatoryRule, 0, len(s.byID))
	for _, rule := range s.byID {
		rules = append(rules, copyOf(rule))
	}
	sortByID(rules)
	return rules, nil
}

func (s *InMemory) FindByJurisdictionAndActive(_ context.Context, jurisdiction string, active bool) ([]*models.RegulatoryRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rules []*models.RegulatoryRule
	for _, rule := range s.byID {
		if rule.Jurisdiction == jurisdiction && rule.Active == active {
			rules = append(rules, copyOf(rule))
		}
	}
	sortByID(rules)
	return rules, nil
}

func (s *InMemory) CreateIfRuleIDAvailable(_ context.Context, rule *models.RegulatoryRule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := keyOf(rule.RuleID)
	if _, taken := s.byRuleID[key]; taken {
		return sentinel.ErrAlreadyUsed
	}

	s.nextID++
	rule.ID = s.nextID
	s.byID[rule.ID] = copyOf(rule)
	s.byRuleID[key] = rule.ID
	return nil
}

func (s *InMemory) Execute(_ context.Context, id int64,
	validate func(*models.RegulatoryRule) error,
	mutate func(*models.RegulatoryRule),
) (*models.RegulatoryRule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.byID[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}

	working := copyOf(stored)
	if err := validate(working); err != nil {
		return nil, err
	}
	mutate(working)

	s.byID[id] = copyOf(working)
	return working, nil
}

func keyOf(ruleID string) string {
	return strings.ToUpper(strings.TrimSpace(ruleID))
}

func copyOf(rule *models.RegulatoryRule) *models.RegulatoryRule {
	clone := *rule
	return &clone
}

func sortByID(rules []*models.RegulatoryRule) {
	sort.Slice(rules, func(i, j int) bool { return rules[i].ID < rules[j].ID })
}
