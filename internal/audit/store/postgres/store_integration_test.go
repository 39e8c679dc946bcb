//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"regledger/internal/audit"
	auditpg "regledger/internal/audit/store/postgres"
	"regledger/pkg/testutil/containers"
)

const auditSchema = `
	CREATE TABLE IF NOT EXISTS audit_events (
	    id             BIGSERIAL PRIMARY KEY,
	    timestamp      TIMESTAMPTZ NOT NULL,
	    actor          TEXT NOT NULL,
	    rule_id        TEXT NOT NULL,
	    operation      TEXT NOT NULL,
	    version_before INTEGER NOT NULL,
	    version_after  INTEGER NOT NULL,
	    request_id     TEXT NOT NULL DEFAULT ''
	)`

type AuditStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *auditpg.Store
}

func TestAuditStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(AuditStoreSuite))
}

func (s *AuditStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.Require().NoError(s.postgres.Migrate(context.Background(), auditSchema))
	s.store = auditpg.New(s.postgres.DB)
}

func (s *AuditStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "audit_events"))
}

func (s *AuditStoreSuite) event(ruleID, operation string, versionAfter int, at time.Time) audit.Event {
	return audit.Event{
		Timestamp:     at,
		Actor:         "compliance-officer-7",
		RuleID:        ruleID,
		Operation:     operation,
		VersionBefore: versionAfter - 1,
		VersionAfter:  versionAfter,
		RequestID:     "req-1",
	}
}

func (s *AuditStoreSuite) TestAppendAndListByRule() {
	ctx := context.Background()
	base := time.Date(2024, 10, 1, 9, 0, 0, 0, time.UTC)

	s.Require().NoError(s.store.Append(ctx, s.event("BASEL-US-001", audit.OperationCreate, 1, base)))
	s.Require().NoError(s.store.Append(ctx, s.event("BASEL-US-001", audit.OperationUpdate, 2, base.Add(time.Hour))))
	s.Require().NoError(s.store.Append(ctx, s.event("MIFID-EU-014", audit.OperationCreate, 1, base.Add(2*time.Hour))))

	events, err := s.store.ListByRule(ctx, "BASEL-US-001")
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal(audit.OperationCreate, events[0].Operation)
	s.Equal(audit.OperationUpdate, events[1].Operation)
	s.Equal(0, events[0].VersionBefore)
	s.Equal(2, events[1].VersionAfter)
}

func (s *AuditStoreSuite) TestListRecent() {
	ctx := context.Background()
	base := time.Date(2024, 10, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		s.Require().NoError(s.store.Append(ctx,
			s.event("BASEL-US-001", audit.OperationUpdate, i+2, base.Add(time.Duration(i)*time.Minute))))
	}

	events, err := s.store.ListRecent(ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal(6, events[0].VersionAfter, "newest first")
	s.Equal(5, events[1].VersionAfter)
}
