// Package service orchestrates the regulatory rule lifecycle: validation,
// business-key uniqueness, monotonic versioning, soft delete, and
// change-event emission.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"regledger/internal/audit"
	"regledger/internal/events"
	regmetrics "regledger/internal/regulatory/metrics"
	"regledger/internal/regulatory/models"
	"regledger/internal/regulatory/ports"
	dErrors "regledger/pkg/domain-errors"
	"regledger/pkg/platform/sentinel"
	"regledger/pkg/requestcontext"
)

// Service owns all rule mutations. Reads go straight to the store; writes
// additionally produce one audit record and one change event each.
type Service struct {
	rules     ports.RuleStore
	publisher ports.EventPublisher
	auditPub  ports.AuditPublisher
	metrics   *regmetrics.Metrics
	logger    *slog.Logger
	topic     string
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithPublisher(publisher ports.EventPublisher) Option {
	return func(s *Service) { s.publisher = publisher }
}

func WithAuditPublisher(publisher ports.AuditPublisher) Option {
	return func(s *Service) { s.auditPub = publisher }
}

func WithMetrics(m *regmetrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithTopic overrides the event channel; defaults to events.Topic.
func WithTopic(topic string) Option {
	return func(s *Service) { s.topic = topic }
}

func New(rules ports.RuleStore, opts ...Option) (*Service, error) {
	if rules == nil {
		return nil, fmt.Errorf("rule store is required")
	}

	svc := &Service{
		rules: rules,
		topic: events.Topic,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// GetRuleByID looks up a rule by surrogate ID. A missing rule is a normal
// outcome and returns (nil, nil); only malformed input or store failures are
// errors.
func (s *Service) GetRuleByID(ctx context.Context, id int64) (*models.RegulatoryRule, error) {
	if id <= 0 {
		return nil, dErrors.New(dErrors.CodeBadRequest, "rule id is required")
	}

	rule, err := s.rules.FindByID(ctx, id)
	if dErrors.Is(err, sentinel.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load rule")
	}
	return rule, nil
}

// GetAllRules returns every rule, soft-deleted ones included. Callers wanting
// only active rules filter explicitly, the same way reporting does.
func (s *Service) GetAllRules(ctx context.Context) ([]*models.RegulatoryRule, error) {
	rules, err := s.rules.FindAll(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list rules")
	}
	return rules, nil
}

// CreateRule validates the candidate, enforces business-key uniqueness, and
// persists it at version 1. The duplicate check covers soft-deleted rows too:
// a retired business key is never reissued.
func (s *Service) CreateRule(ctx context.Context, candidate models.RegulatoryRule) (*models.RegulatoryRule, error) {
	start := requestcontext.Now(ctx)

	rule, err := models.NewRule(candidate, start)
	if err != nil {
		return nil, err
	}

	if err := s.rules.CreateIfRuleIDAvailable(ctx, rule); err != nil {
		if dErrors.Is(err, sentinel.ErrAlreadyUsed) {
			return nil, dErrors.New(dErrors.CodeConflict,
				fmt.Sprintf("rule %q already exists", rule.RuleID))
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create rule")
	}

	s.recordMutation(ctx, audit.OperationCreate, rule, 0)
	s.publish(ctx, events.KindCreated, rule)
	if s.metrics != nil {
		s.metrics.RulesCreated.Inc()
		s.metrics.ObserveMutation(start)
	}
	return rule, nil
}

// UpdateRule applies the non-nil fields of patch onto the stored rule,
// bumping the version by one. The store holds the row's lock across
// validate-and-mutate so concurrent updates serialize.
func (s *Service) UpdateRule(ctx context.Context, id int64, patch models.RulePatch) (*models.RegulatoryRule, error) {
	if id <= 0 {
		return nil, dErrors.New(dErrors.CodeBadRequest, "rule id is required")
	}

	start := requestcontext.Now(ctx)
	var versionBefore int

	rule, err := s.rules.Execute(ctx, id,
		func(r *models.RegulatoryRule) error {
			versionBefore = r.Version
			return nil
		},
		func(r *models.RegulatoryRule) {
			patch.Apply(r)
			r.ApplyMutation(start)
		},
	)
	if err != nil {
		return nil, wrapRuleErr(err, "failed to update rule")
	}

	s.recordMutation(ctx, audit.OperationUpdate, rule, versionBefore)
	s.publish(ctx, events.KindUpdated, rule)
	if s.metrics != nil {
		s.metrics.RulesUpdated.Inc()
		s.metrics.ObserveMutation(start)
	}
	return rule, nil
}

// DeleteRule retires a rule without removing the row, so the audit trail
// stays queryable. The soft delete is itself a mutation: the version bumps
// and a deletion event is published.
func (s *Service) DeleteRule(ctx context.Context, id int64) (*models.RegulatoryRule, error) {
	if id <= 0 {
		return nil, dErrors.New(dErrors.CodeBadRequest, "rule id is required")
	}

	start := requestcontext.Now(ctx)
	var versionBefore int

	rule, err := s.rules.Execute(ctx, id,
		func(r *models.RegulatoryRule) error {
			versionBefore = r.Version
			return nil
		},
		func(r *models.RegulatoryRule) {
			r.ApplyRetirement(start)
		},
	)
	if err != nil {
		return nil, wrapRuleErr(err, "failed to delete rule")
	}

	s.recordMutation(ctx, audit.OperationDelete, rule, versionBefore)
	s.publish(ctx, events.KindDeleted, rule)
	if s.metrics != nil {
		s.metrics.RulesDeleted.Inc()
		s.metrics.ObserveMutation(start)
	}
	return rule, nil
}

// publish emits a change event for an already-durable mutation. Transport
// failure must not fail the mutation, but it is never swallowed either: it
// is logged and counted so downstream synchronization gaps are visible.
func (s *Service) publish(ctx context.Context, kind events.Kind, rule *models.RegulatoryRule) {
	if s.publisher == nil {
		return
	}

	event := events.New(kind, *rule, requestcontext.Now(ctx))
	if err := s.publisher.Publish(ctx, s.topic, rule.RuleID, event); err != nil {
		if s.metrics != nil {
			s.metrics.PublishFailures.Inc()
		}
		if s.logger != nil {
			s.logger.ErrorContext(ctx, "rule event publish failed",
				"rule_id", rule.RuleID,
				"kind", string(kind),
				"topic", s.topic,
				"error", err,
			)
		}
	}
}

func (s *Service) recordMutation(ctx context.Context, operation string, rule *models.RegulatoryRule, versionBefore int) {
	ports.LogAudit(ctx, s.logger, s.auditPub, audit.Event{
		Timestamp:     requestcontext.Now(ctx),
		Actor:         requestcontext.Actor(ctx),
		RuleID:        rule.RuleID,
		Operation:     operation,
		VersionBefore: versionBefore,
		VersionAfter:  rule.Version,
		RequestID:     requestcontext.RequestID(ctx),
	})
}

// wrapRuleErr translates store sentinels into coded errors. Errors already
// coded by a validate callback pass through unchanged.
func wrapRuleErr(err error, message string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "rule not found")
	}
	var de *dErrors.Error
	if errors.As(err, &de) {
		return err
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, message)
}
