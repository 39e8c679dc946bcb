package rule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"regledger/internal/regulatory/models"
	"regledger/pkg/platform/sentinel"
	txcontext "regledger/pkg/platform/tx"
)

// uniqueViolation is the Postgres error code raised when an insert hits the
// regulatory_rules_rule_id_key unique index.
const uniqueViolation = "23505"

// PostgresStore backs RuleStore with Postgres. Uniqueness of the business key
// is the index's job, not a check-then-insert in Go; Execute serializes rule
// mutations with SELECT ... FOR UPDATE.
//
// Expected schema:
//
//	CREATE TABLE regulatory_rules (
//	    id             BIGSERIAL PRIMARY KEY,
//	    rule_id        TEXT NOT NULL,
//	    jurisdiction   TEXT NOT NULL,
//	    framework      TEXT NOT NULL,
//	    description    TEXT NOT NULL,
//	    source         TEXT NOT NULL DEFAULT '',
//	    effective_date DATE NOT NULL,
//	    last_updated   TIMESTAMPTZ NOT NULL,
//	    active         BOOLEAN NOT NULL,
//	    version        INTEGER NOT NULL
//	);
//	CREATE UNIQUE INDEX regulatory_rules_rule_id_key
//	    ON regulatory_rules (upper(rule_id));
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *PostgresStore) querier(ctx context.Context) dbQuerier {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

const ruleColumns = `id, rule_id, jurisdiction, framework, description, source,
	effective_date, last_updated, active, version`

func (s *PostgresStore) FindByID(ctx context.Context, id int64) (*models.RegulatoryRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM regulatory_rules WHERE id = $1`
	return s.scanOne(s.querier(ctx).QueryRowContext(ctx, query, id))
}

func (s *PostgresStore) FindByRuleID(ctx context.Context, ruleID string) (*models.RegulatoryRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM regulatory_rules WHERE upper(rule_id) = upper($1)`
	return s.scanOne(s.querier(ctx).QueryRowContext(ctx, query, ruleID))
}

func (s *PostgresStore) FindAll(ctx context.Context) ([]*models.RegulatoryRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM regulatory_rules ORDER BY id`
	rows, err := s.querier(ctx).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query rules: %w", err)
	}
	defer rows.Close()
	return scanRules(rows)
}

func (s *PostgresStore) FindByJurisdictionAndActive(ctx context.Context, jurisdiction string, active bool) ([]*models.RegulatoryRule, error) {
	query := `SELECT ` + ruleColumns + `
		FROM regulatory_rules
		WHERE jurisdiction = $1 AND active = $2
		ORDER BY id`
	rows, err := s.querier(ctx).QueryContext(ctx, query, jurisdiction, active)
	if err != nil {
		return nil, fmt.Errorf("query rules by jurisdiction: %w", err)
	}
	defer rows.Close()
	return scanRules(rows)
}

func (s *PostgresStore) CreateIfRuleIDAvailable(ctx context.Context, rule *models.RegulatoryRule) error {
	query := `
		INSERT INTO regulatory_rules (
			rule_id, jurisdiction, framework, description, source,
			effective_date, last_updated, active, version
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := s.querier(ctx).QueryRowContext(ctx, query,
		rule.RuleID,
		rule.Jurisdiction,
		rule.Framework,
		rule.Description,
		rule.Source,
		rule.EffectiveDate,
		rule.LastUpdated,
		rule.Active,
		rule.Version,
	).Scan(&rule.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return sentinel.ErrAlreadyUsed
		}
		return fmt.Errorf("insert rule: %w", err)
	}
	return nil
}

func (s *PostgresStore) Execute(ctx context.Context, id int64,
	validate func(*models.RegulatoryRule) error,
	mutate func(*models.RegulatoryRule),
) (*models.RegulatoryRule, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `SELECT ` + ruleColumns + ` FROM regulatory_rules WHERE id = $1 FOR UPDATE`
	rule, err := s.scanOne(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}

	if err := validate(rule); err != nil {
		return nil, err
	}
	mutate(rule)

	update := `
		UPDATE regulatory_rules
		SET jurisdiction = $2, framework = $3, description = $4, source = $5,
		    effective_date = $6, last_updated = $7, active = $8, version = $9
		WHERE id = $1
	`
	_, err = tx.ExecContext(ctx, update,
		rule.ID,
		rule.Jurisdiction,
		rule.Framework,
		rule.Description,
		rule.Source,
		rule.EffectiveDate,
		rule.LastUpdated,
		rule.Active,
		rule.Version,
	)
	if err != nil {
		return nil, fmt.Errorf("update rule: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit rule mutation: %w", err)
	}
	return rule, nil
}

func (s *PostgresStore) scanOne(row *sql.Row) (*models.RegulatoryRule, error) {
	var rule models.RegulatoryRule
	err := row.Scan(
		&rule.ID,
		&rule.RuleID,
		&rule.Jurisdiction,
		&rule.Framework,
		&rule.Description,
		&rule.Source,
		&rule.EffectiveDate,
		&rule.LastUpdated,
		&rule.Active,
		&rule.Version,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan rule: %w", err)
	}
	return &rule, nil
}

func scanRules(rows *sql.Rows) ([]*models.RegulatoryRule, error) {
	var rules []*models.RegulatoryRule
	for rows.Next() {
		var rule models.RegulatoryRule
		err := rows.Scan(
			&rule.ID,
			&rule.RuleID,
			&rule.Jurisdiction,
			&rule.Framework,
			&rule.Description,
			&rule.Source,
			&rule.EffectiveDate,
			&rule.LastUpdated,
			&rule.Active,
			&rule.Version,
		)
		if err != nil {
			return nil, fmt.Errorf("scan rule: %w", err)
		}
		rules = append(rules, &rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rules: %w", err)
	}
	return rules, nil
}
