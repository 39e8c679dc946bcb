// Package ports defines shared interfaces for the regulatory module.
// Interfaces live here so the service, handlers, and adapters depend on one
// contract instead of each other.
package ports

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks RuleStore,EventPublisher,AuditPublisher

import (
	"context"
	"log/slog"

	"regledger/internal/audit"
	"regledger/internal/events"
	"regledger/internal/regulatory/models"
	"regledger/pkg/requestcontext"
)

// RuleStore is the persistence contract for regulatory rules. Stores return
// pkg/platform/sentinel errors; the service translates them into coded
// domain errors.
type RuleStore interface {
	// FindByID returns the rule at the surrogate ID, soft-deleted or not.
	FindByID(ctx context.Context, id int64) (*models.RegulatoryRule, error)

	// FindByRuleID returns the rule carrying the business key, soft-deleted
	// or not. Must observe writes flushed within the caller's transaction.
	FindByRuleID(ctx context.Context, ruleID string) (*models.RegulatoryRule, error)

	// FindAll returns every row regardless of active status.
	FindAll(ctx context.Context) ([]*models.RegulatoryRule, error)

	// FindByJurisdictionAndActive returns rows matching both predicates.
	FindByJurisdictionAndActive(ctx context.Context, jurisdiction string, active bool) ([]*models.RegulatoryRule, error)

	// CreateIfRuleIDAvailable atomically checks the business key and inserts,
	// assigning the surrogate ID. Two concurrent creates with the same RuleID
	// must not both succeed; the loser gets sentinel.ErrAlreadyUsed.
	CreateIfRuleIDAvailable(ctx context.Context, rule *models.RegulatoryRule) error

	// Execute runs validate then mutate on the rule at id while holding the
	// row's lock (mutex or FOR UPDATE), then persists the result. Concurrent
	// mutations on one rule serialize here so each accepted write bumps the
	// version by exactly one.
	Execute(ctx context.Context, id int64,
		validate func(*models.RegulatoryRule) error,
		mutate func(*models.RegulatoryRule),
	) (*models.RegulatoryRule, error)
}

// EventPublisher pushes rule-change notifications to the configured message
// channel. A publish failure after a durable write is reported, never used
// to roll the write back.
type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, event events.RegulatoryEvent) error
}

// AuditPublisher records one structured audit event per accepted mutation.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// LogAudit writes a structured audit log line and forwards the event to the
// audit publisher when one is wired. Failures to audit are logged, not
// returned; the mutation has already been accepted.
func LogAudit(ctx context.Context, logger *slog.Logger, publisher AuditPublisher, event audit.Event) {
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}

	if logger != nil {
		logger.InfoContext(ctx, event.Operation,
			"rule_id", event.RuleID,
			"actor", event.Actor,
			"version_before", event.VersionBefore,
			"version_after", event.VersionAfter,
			"request_id", event.RequestID,
			"log_type", "audit",
		)
	}

	if publisher == nil {
		return
	}
	if err := publisher.Emit(ctx, event); err != nil && logger != nil {
		logger.ErrorContext(ctx, "audit emit failed",
			"rule_id", event.RuleID,
			"operation", event.Operation,
			"error", err,
		)
	}
}
