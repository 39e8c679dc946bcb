package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"regledger/internal/audit"
	txcontext "regledger/pkg/platform/tx"
)

// Store persists audit events to the audit_events table. Appends join the
// caller's transaction when one is in context so an audit record and the
// mutation it describes commit together.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

func (s *Store) Append(ctx context.Context, event audit.Event) error {
	query := `
		INSERT INTO audit_events (
			timestamp, actor, rule_id, operation,
			version_before, version_after, request_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		event.Timestamp,
		event.Actor,
		event.RuleID,
		event.Operation,
		event.VersionBefore,
		event.VersionAfter,
		event.RequestID,
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

func (s *Store) ListByRule(ctx context.Context, ruleID string) ([]audit.Event, error) {
	query := `
		SELECT timestamp, actor, rule_id, operation,
		       version_before, version_after, request_id
		FROM audit_events
		WHERE rule_id = $1
		ORDER BY timestamp ASC, version_after ASC
	`
	rows, err := s.db.QueryContext(ctx, query, ruleID)
	if err != nil {
		return nil, fmt.Errorf("query audit events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (s *Store) ListRecent(ctx context.Context, limit int) ([]audit.Event, error) {
	query := `
		SELECT timestamp, actor, rule_id, operation,
		       version_before, version_after, request_id
		FROM audit_events
		ORDER BY timestamp DESC
		LIMIT $1
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query audit events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func scanEvents(rows *sql.Rows) ([]audit.Event, error) {
	var events []audit.Event
	for rows.Next() {
		var event audit.Event
		err := rows.Scan(
			&event.Timestamp,
			&event.Actor,
			&event.RuleID,
			&event.Operation,
			&event.VersionBefore,
			&event.VersionAfter,
			&event.RequestID,
		)
		if err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return events, nil
}
