package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AlpianPPLG/workvibe/internal/mirror"
	"github.com/AlpianPPLG/workvibe/internal/models"
	"github.com/AlpianPPLG/workvibe/internal/services"
	"github.com/AlpianPPLG/workvibe/tests/testutil"
)

func TestPostgresMirror_Integration_SaveLoad(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	store := mirror.NewPostgres(tdb.DB)
	ctx := context.Background()

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	fixtures := testutil.NewFixtures()
	members := []models.Member{
		fixtures.Member(testutil.WithName("Jane")),
		fixtures.Member(testutil.Invited()),
	}
	require.NoError(t, store.Save(ctx, members))

	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "Jane", loaded[0].Name)
	assert.Equal(t, models.StatusInvited, loaded[1].Status)

	// Second save overwrites the slot
	require.NoError(t, store.Save(ctx, members[:1]))
	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}

func TestPostgresMirror_Integration_RosterHydration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	store := mirror.NewPostgres(tdb.DB)
	ctx := context.Background()

	svc := services.NewRosterService(ctx, store, zap.NewNop())
	added := svc.Add(ctx, models.Member{Name: "Jane", Email: "jane@example.com"})

	reloaded := services.NewRosterService(ctx, store, zap.NewNop())
	got, ok := reloaded.Get(ctx, added.ID)
	require.True(t, ok)
	assert.Equal(t, "Jane", got.Name)
}
