package audit

import (
	"context"
	"time"
)

// Event captures one rule mutation for the audit trail. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp     time.Time `json:"timestamp"`
	Actor         string    `json:"actor"`
	RuleID        string    `json:"rule_id"`
	Operation     string    `json:"operation"`
	VersionBefore int       `json:"version_before"`
	VersionAfter  int       `json:"version_after"`
	RequestID     string    `json:"request_id,omitempty"`
}

// Operations recorded by the regulatory service. One record per accepted
// mutation; reads and report generation are never audited.
const (
	OperationCreate = "rule_created"
	OperationUpdate = "rule_updated"
	OperationDelete = "rule_deleted"
)

// Store is the append-only persistence contract for audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByRule(ctx context.Context, ruleID string) ([]Event, error)
	ListRecent(ctx context.Context, limit int) ([]Event, error)
}
