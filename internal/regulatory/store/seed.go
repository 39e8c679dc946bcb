package store

import (
	"context"
	"time"

	"regledger/internal/regulatory/models"
	rulestore "regledger/internal/regulatory/store/rule"
)

// SeedRules loads a small, representative rule set into an in-memory store
// for local development boots. Errors are ignored on purpose: seeding an
// already-populated store is a no-op, not a failure.
func SeedRules(s *rulestore.InMemory) {
	now := time.Now()
	for _, r := range []models.RegulatoryRule{
		{
			RuleID:        "BASEL-US-001",
			Jurisdiction:  "US",
			Framework:     "Basel III",
			Description:   "Minimum common equity tier 1 capital ratio of 4.5% of risk-weighted assets.",
			Source:        "12 CFR 217.10",
			EffectiveDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			RuleID:        "MIFID-EU-014",
			Jurisdiction:  "EU",
			Framework:     "MiFID II",
			Description:   "Best execution reporting for investment firms executing client orders.",
			Source:        "Directive 2014/65/EU Art. 27",
			EffectiveDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			RuleID:        "GDPR-EU-032",
			Jurisdiction:  "EU",
			Framework:     "GDPR",
			Description:   "Security of processing: appropriate technical and organisational measures.",
			Source:        "Regulation (EU) 2016/679 Art. 32",
			EffectiveDate: time.Date(2024, 5, 25, 0, 0, 0, 0, time.UTC),
		},
	} {
		rule, err := models.NewRule(r, now)
		if err != nil {
			continue
		}
		_ = s.CreateIfRuleIDAvailable(context.Background(), rule)
	}
}
