package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollomarton/naplo/internal/domain"
	"github.com/hollomarton/naplo/internal/testutil"
)

func TestParamRepo_GetOrCreate(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteParamRepo(database)
	ctx := context.Background()

	created, err := repo.GetOrCreate(ctx, domain.LabelCategory, "Sport")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.GetOrCreate(ctx, domain.LabelCategory, "Sport")
	require.NoError(t, err)
	assert.False(t, created, "duplicates are silently absorbed")

	created, err = repo.GetOrCreate(ctx, domain.LabelGoal, "Sport")
	require.NoError(t, err)
	assert.True(t, created, "same name under another type is a new param")
}

func TestParamRepo_ListNames_Sorted(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteParamRepo(database)
	ctx := context.Background()

	for _, name := range []string{"Munka", "Alvás", "Sport"} {
		_, err := repo.GetOrCreate(ctx, domain.LabelCategory, name)
		require.NoError(t, err)
	}
	_, err := repo.GetOrCreate(ctx, domain.LabelEmotion, "nyugodt")
	require.NoError(t, err)

	names, err := repo.ListNames(ctx, domain.LabelCategory)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alvás", "Munka", "Sport"}, names)

	names, err = repo.ListNames(ctx, domain.LabelRole)
	require.NoError(t, err)
	assert.Empty(t, names)
}
