package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"regledger/internal/audit"
)

func event(ruleID, operation string, versionAfter int) audit.Event {
	return audit.Event{
		Timestamp:     time.Date(2024, 10, 1, 9, 0, 0, 0, time.UTC),
		Actor:         "compliance-officer-7",
		RuleID:        ruleID,
		Operation:     operation,
		VersionBefore: versionAfter - 1,
		VersionAfter:  versionAfter,
	}
}

func TestAppendAndListByRule(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	require.NoError(t, store.Append(ctx, event("BASEL-US-001", audit.OperationCreate, 1)))
	require.NoError(t, store.Append(ctx, event("MIFID-EU-014", audit.OperationCreate, 1)))
	require.NoError(t, store.Append(ctx, event("BASEL-US-001", audit.OperationUpdate, 2)))

	events, err := store.ListByRule(ctx, "BASEL-US-001")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, audit.OperationCreate, events[0].Operation)
	assert.Equal(t, audit.OperationUpdate, events[1].Operation)

	events, err = store.ListByRule(ctx, "UNKNOWN")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestListRecent(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	for i := 1; i <= 5; i++ {
		require.NoError(t, store.Append(ctx, event(fmt.Sprintf("RULE-%d", i), audit.OperationCreate, 1)))
	}

	events, err := store.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "RULE-4", events[0].RuleID)
	assert.Equal(t, "RULE-5", events[1].RuleID)

	events, err = store.ListRecent(ctx, 50)
	require.NoError(t, err)
	assert.Len(t, events, 5, "limit beyond size returns everything")
}

func TestConcurrentAppend(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	var g errgroup.Group
	for i := 0; i < 32; i++ {
		i := i
		g.Go(func() error {
			return store.Append(ctx, event(fmt.Sprintf("RULE-%d", i%4), audit.OperationUpdate, i+2))
		})
	}
	require.NoError(t, g.Wait())

	events, err := store.ListRecent(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, events, 32)
}
