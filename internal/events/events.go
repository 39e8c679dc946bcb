// Package events defines the rule-change notification model shared by the
// regulatory service and its transport adapters.
package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"regledger/internal/regulatory/models"
)

// Topic is the logical channel regulatory change events are published to.
// Messages are keyed by the affected rule's business key so consumers see
// per-rule ordering on partitioned transports.
const Topic = "regulatory-events"

// Kind tags what happened to the rule.
type Kind string

const (
	KindCreated Kind = "CREATED"
	KindUpdated Kind = "UPDATED"
	KindDeleted Kind = "DELETED"
)

// RegulatoryEvent is an immutable notification emitted once per successful
// create, update, or soft delete. Rule carries the post-mutation snapshot;
// for deletions that snapshot has Active=false and serves as the deletion
// marker.
type RegulatoryEvent struct {
	EventID   string                `json:"event_id"`
	Kind      Kind                  `json:"kind"`
	RuleID    string                `json:"rule_id"`
	Rule      models.RegulatoryRule `json:"rule"`
	Timestamp time.Time             `json:"timestamp"`
}

// New builds an event for the given post-mutation snapshot.
func New(kind Kind, rule models.RegulatoryRule, now time.Time) RegulatoryEvent {
	return RegulatoryEvent{
		EventID:   uuid.NewString(),
		Kind:      kind,
		RuleID:    rule.RuleID,
		Rule:      rule,
		Timestamp: now,
	}
}

// Encode serializes the event for the wire. All adapters share one format so
// consumers never care which transport delivered a message.
func (e RegulatoryEvent) Encode() ([]byte, error) {
	return json.Marshal(e)
}
