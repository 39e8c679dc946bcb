package models

import (
	"strings"
	"time"

	dErrors "regledger/pkg/domain-errors"
)

// RegulatoryRule is the versioned unit of regulatory truth.
//
// Invariants:
//   - RuleID is non-empty and immutable after creation
//   - RuleID is unique across all rows, soft-deleted ones included; a retired
//     business key is never reissued, so audit history stays unambiguous
//   - Version starts at 1 and increments by exactly 1 per accepted mutation,
//     including the mutation that performs the soft delete
//   - Rows are never physically deleted; Active=false marks retirement
type RegulatoryRule struct {
	ID            int64     `json:"id"`
	RuleID        string    `json:"rule_id"`
	Jurisdiction  string    `json:"jurisdiction"`
	Framework     string    `json:"framework"`
	Description   string    `json:"description"`
	Source        string    `json:"source"`
	EffectiveDate time.Time `json:"effective_date"`
	LastUpdated   time.Time `json:"last_updated"`
	Active        bool      `json:"active"`
	Version       int       `json:"version"`
}

// NewRule validates a candidate and returns it initialized for first
// persistence: Version 1, Active, LastUpdated pinned to now. The store
// assigns ID.
func NewRule(candidate RegulatoryRule, now time.Time) (*RegulatoryRule, error) {
	if err := validateRequired(candidate); err != nil {
		return nil, err
	}
	rule := candidate
	rule.ID = 0
	rule.RuleID = strings.TrimSpace(rule.RuleID)
	rule.Version = 1
	rule.Active = true
	rule.LastUpdated = now
	return &rule, nil
}

func validateRequired(r RegulatoryRule) error {
	for _, f := range []struct {
		name  string
		value string
	}{
		{"rule_id", r.RuleID},
		{"jurisdiction", r.Jurisdiction},
		{"framework", r.Framework},
		{"description", r.Description},
	} {
		if strings.TrimSpace(f.value) == "" {
			return dErrors.New(dErrors.CodeValidation, f.name+" is required")
		}
	}
	return nil
}

// RulePatch carries a partial update. Nil fields are left unchanged; RuleID
// and ID are not patchable.
type RulePatch struct {
	Jurisdiction  *string    `json:"jurisdiction,omitempty"`
	Framework     *string    `json:"framework,omitempty"`
	Description   *string    `json:"description,omitempty"`
	Source        *string    `json:"source,omitempty"`
	EffectiveDate *time.Time `json:"effective_date,omitempty"`
}

// Apply copies the patch's non-nil fields onto the rule. Versioning and
// timestamps are the caller's concern so Apply stays usable inside store
// Execute callbacks.
func (p RulePatch) Apply(r *RegulatoryRule) {
	if p.Jurisdiction != nil {
		r.Jurisdiction = *p.Jurisdiction
	}
	if p.Framework != nil {
		r.Framework = *p.Framework
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Source != nil {
		r.Source = *p.Source
	}
	if p.EffectiveDate != nil {
		r.EffectiveDate = *p.EffectiveDate
	}
}

// ApplyMutation bumps the version and refreshes the update timestamp. Every
// accepted write path funnels through here so the +1 invariant has a single
// owner.
func (r *RegulatoryRule) ApplyMutation(now time.Time) {
	r.Version++
	r.LastUpdated = now
}

// ApplyRetirement soft-deletes the rule. The row is retained for audit.
func (r *RegulatoryRule) ApplyRetirement(now time.Time) {
	r.Active = false
	r.ApplyMutation(now)
}
