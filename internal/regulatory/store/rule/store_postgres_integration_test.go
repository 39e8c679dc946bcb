//go:build integration

package rule_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"

	"regledger/internal/regulatory/models"
	rulestore "regledger/internal/regulatory/store/rule"
	"regledger/pkg/platform/sentinel"
	"regledger/pkg/testutil/containers"
)

const rulesSchema = `
	CREATE TABLE IF NOT EXISTS regulatory_rules (
	    id             BIGSERIAL PRIMARY KEY,
	    rule_id        TEXT NOT NULL,
	    jurisdiction   TEXT NOT NULL,
	    framework      TEXT NOT NULL,
	    description    TEXT NOT NULL,
	    source         TEXT NOT NULL DEFAULT '',
	    effective_date DATE NOT NULL,
	    last_updated   TIMESTAMPTZ NOT NULL,
	    active         BOOLEAN NOT NULL,
	    version        INTEGER NOT NULL
	)`

const rulesUniqueIndex = `
	CREATE UNIQUE INDEX IF NOT EXISTS regulatory_rules_rule_id_key
	    ON regulatory_rules (upper(rule_id))`

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *rulestore.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.Require().NoError(s.postgres.Migrate(context.Background(), rulesSchema, rulesUniqueIndex))
	s.store = rulestore.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "regulatory_rules"))
}

func newTestRule(ruleID string) *models.RegulatoryRule {
	return &models.RegulatoryRule{
		RuleID:        ruleID,
		Jurisdiction:  "US",
		Framework:     "Basel III",
		Description:   "Minimum capital adequacy ratio of 8%.",
		Source:        "Basel Committee on Banking Supervision",
		EffectiveDate: time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC),
		LastUpdated:   time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC),
		Active:        true,
		Version:       1,
	}
}

func (s *PostgresStoreSuite) TestCreateAndFind() {
	ctx := context.Background()
	rule := newTestRule("BASEL-US-001")

	s.Require().NoError(s.store.CreateIfRuleIDAvailable(ctx, rule))
	s.Positive(rule.ID, "insert assigns the surrogate id")

	found, err := s.store.FindByID(ctx, rule.ID)
	s.Require().NoError(err)
	s.Equal("BASEL-US-001", found.RuleID)
	s.Equal(1, found.Version)
	s.True(found.Active)

	found, err = s.store.FindByRuleID(ctx, "basel-us-001")
	s.Require().NoError(err)
	s.Equal(rule.ID, found.ID, "business key lookup is case-insensitive")
}

func (s *PostgresStoreSuite) TestFindMissing() {
	ctx := context.Background()

	_, err := s.store.FindByID(ctx, 9999)
	s.ErrorIs(err, sentinel.ErrNotFound)

	_, err = s.store.FindByRuleID(ctx, "NO-SUCH-RULE")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestDuplicateRuleID() {
	ctx := context.Background()

	s.Require().NoError(s.store.CreateIfRuleIDAvailable(ctx, newTestRule("BASEL-US-001")))

	err := s.store.CreateIfRuleIDAvailable(ctx, newTestRule("basel-US-001"))
	s.ErrorIs(err, sentinel.ErrAlreadyUsed, "unique index is case-insensitive")
}

func (s *PostgresStoreSuite) TestDuplicateCoversSoftDeletedRows() {
	ctx := context.Background()

	rule := newTestRule("MIFID-EU-014")
	s.Require().NoError(s.store.CreateIfRuleIDAvailable(ctx, rule))

	_, err := s.store.Execute(ctx, rule.ID,
		func(r *models.RegulatoryRule) error { return nil },
		func(r *models.RegulatoryRule) { r.ApplyRetirement(time.Now()) },
	)
	s.Require().NoError(err)

	err = s.store.CreateIfRuleIDAvailable(ctx, newTestRule("MIFID-EU-014"))
	s.ErrorIs(err, sentinel.ErrAlreadyUsed, "retired business keys are never reissued")
}

// TestConcurrentCreates verifies that racing creates on one business key
// resolve to exactly one success at the index, not in application code.
func (s *PostgresStoreSuite) TestConcurrentCreates() {
	ctx := context.Background()
	const goroutines = 50

	var wg sync.WaitGroup
	var successCount, conflictCount atomic.Int32

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.store.CreateIfRuleIDAvailable(ctx, newTestRule("RACE-US-001"))
			switch {
			case err == nil:
				successCount.Add(1)
			case errors.Is(err, sentinel.ErrAlreadyUsed):
				conflictCount.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(1), successCount.Load(), "exactly one create should succeed")
	s.Equal(int32(goroutines-1), conflictCount.Load())

	all, err := s.store.FindAll(ctx)
	s.Require().NoError(err)
	s.Len(all, 1)
}

// TestConcurrentMutations verifies FOR UPDATE serializes Execute callers: 25
// concurrent bumps land on version 26 with no lost updates.
func (s *PostgresStoreSuite) TestConcurrentMutations() {
	ctx := context.Background()
	rule := newTestRule("GDPR-EU-032")
	s.Require().NoError(s.store.CreateIfRuleIDAvailable(ctx, rule))

	var g errgroup.Group
	for i := 0; i < 25; i++ {
		g.Go(func() error {
			_, err := s.store.Execute(ctx, rule.ID,
				func(r *models.RegulatoryRule) error { return nil },
				func(r *models.RegulatoryRule) { r.ApplyMutation(time.Now()) },
			)
			return err
		})
	}
	s.Require().NoError(g.Wait())

	found, err := s.store.FindByID(ctx, rule.ID)
	s.Require().NoError(err)
	s.Equal(26, found.Version)
}

func (s *PostgresStoreSuite) TestExecuteValidationFailureLeavesRowUntouched() {
	ctx := context.Background()
	rule := newTestRule("BASEL-US-001")
	s.Require().NoError(s.store.CreateIfRuleIDAvailable(ctx, rule))

	wantErr := errors.New("rejected")
	_, err := s.store.Execute(ctx, rule.ID,
		func(r *models.RegulatoryRule) error { return wantErr },
		func(r *models.RegulatoryRule) { r.ApplyMutation(time.Now()) },
	)
	s.ErrorIs(err, wantErr)

	found, err := s.store.FindByID(ctx, rule.ID)
	s.Require().NoError(err)
	s.Equal(1, found.Version)
}

func (s *PostgresStoreSuite) TestExecuteMissingRule() {
	_, err := s.store.Execute(context.Background(), 4242,
		func(r *models.RegulatoryRule) error { return nil },
		func(r *models.RegulatoryRule) {},
	)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestFindByJurisdictionAndActive() {
	ctx := context.Background()

	us := newTestRule("BASEL-US-001")
	s.Require().NoError(s.store.CreateIfRuleIDAvailable(ctx, us))

	eu := newTestRule("MIFID-EU-014")
	eu.Jurisdiction = "EU"
	s.Require().NoError(s.store.CreateIfRuleIDAvailable(ctx, eu))

	retired := newTestRule("GDPR-US-032")
	s.Require().NoError(s.store.CreateIfRuleIDAvailable(ctx, retired))
	_, err := s.store.Execute(ctx, retired.ID,
		func(r *models.RegulatoryRule) error { return nil },
		func(r *models.RegulatoryRule) { r.ApplyRetirement(time.Now()) },
	)
	s.Require().NoError(err)

	active, err := s.store.FindByJurisdictionAndActive(ctx, "US", true)
	s.Require().NoError(err)
	s.Require().Len(active, 1)
	s.Equal("BASEL-US-001", active[0].RuleID)

	inactive, err := s.store.FindByJurisdictionAndActive(ctx, "US", false)
	s.Require().NoError(err)
	s.Require().Len(inactive, 1)
	s.Equal("GDPR-US-032", inactive[0].RuleID)
}
