package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollomarton/naplo/internal/domain"
	"github.com/hollomarton/naplo/internal/repository"
	"github.com/hollomarton/naplo/internal/testutil"
)

func newParamFixture(t *testing.T) (ParamService, repository.EntryRepo, repository.ParamRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	entries := repository.NewSQLiteEntryRepo(database)
	params := repository.NewSQLiteParamRepo(database)
	return NewParamService(entries, params), entries, params
}

func TestParamService_Backfill(t *testing.T) {
	svc, entries, params := newParamFixture(t)
	ctx := context.Background()
	day := testutil.Day(2025, time.May, 1)

	a := testutil.NewTestEntry(day, "a", testutil.WithCategory("Sport"),
		testutil.WithGoal("Maraton"), testutil.WithLabels("Klub", "tag", "friss"))
	b := testutil.NewTestEntry(day, "b", testutil.WithCategory("Sport"))
	c := testutil.NewTestEntry(day, "c", testutil.WithCategory("Munka"))
	for _, e := range []*domain.Entry{a, b, c} {
		require.NoError(t, entries.Create(ctx, e))
	}

	res, err := svc.Backfill(ctx)
	require.NoError(t, err)
	// Distinct values: Sport, Munka, Klub, tag, friss, Maraton.
	assert.Equal(t, 6, res.Seen)
	assert.Equal(t, 6, res.Created)

	cats, err := params.ListNames(ctx, domain.LabelCategory)
	require.NoError(t, err)
	assert.Equal(t, []string{"Munka", "Sport"}, cats)
}

func TestParamService_Backfill_Idempotent(t *testing.T) {
	svc, entries, _ := newParamFixture(t)
	ctx := context.Background()

	e := testutil.NewTestEntry(testutil.Day(2025, time.May, 1), "a",
		testutil.WithCategory("Sport"))
	require.NoError(t, entries.Create(ctx, e))

	first, err := svc.Backfill(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Created)

	second, err := svc.Backfill(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, second.Seen)
	assert.Equal(t, 0, second.Created, "second run creates nothing")
}

func TestParamService_Choices(t *testing.T) {
	svc, entries, _ := newParamFixture(t)
	ctx := context.Background()

	e := testutil.NewTestEntry(testutil.Day(2025, time.May, 1), "a",
		testutil.WithCategory("Sport"), testutil.WithGoal("Maraton"))
	require.NoError(t, entries.Create(ctx, e))
	_, err := svc.Backfill(ctx)
	require.NoError(t, err)

	choices, err := svc.Choices(ctx)
	require.NoError(t, err)
	assert.Len(t, choices, len(domain.AllLabelTypes), "every label type is present")
	assert.Equal(t, []string{"Sport"}, choices[domain.LabelCategory])
	assert.Equal(t, []string{"Maraton"}, choices[domain.LabelGoal])
	assert.Empty(t, choices[domain.LabelRole])
}
