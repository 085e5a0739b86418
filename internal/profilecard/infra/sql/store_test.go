package sql_test

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/mobileheap/profilecard/internal/profilecard/domain"
	infrasql "github.com/mobileheap/profilecard/internal/profilecard/infra/sql"
)

const testSchema = `
CREATE TABLE profile (
	id text PRIMARY KEY,
	name text NOT NULL,
	bio text NOT NULL
);

CREATE TABLE follower (
	id integer PRIMARY KEY,
	name text NOT NULL,
	is_following integer NOT NULL DEFAULT 0
);
`

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(testSchema)
	require.NoError(t, err)
	return db
}

func TestProfileStore_FindStore(t *testing.T) {
	ctx := context.Background()
	store := infrasql.NewProfileStore(newTestDB(t))

	_, err := store.Find(ctx)
	require.ErrorIs(t, err, domain.ErrProfileNotFound)

	require.NoError(t, store.Store(ctx, domain.Profile{Name: "Kai", Bio: "climber"}))

	profile, err := store.Find(ctx)
	require.NoError(t, err)
	assert.Equal(t, &domain.Profile{Name: "Kai", Bio: "climber"}, profile)

	require.NoError(t, store.Store(ctx, domain.Profile{Name: "Kai", Bio: "alpinist"}))

	profile, err = store.Find(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alpinist", profile.Bio)
}

func TestFollowerStore_ListOrdersByID(t *testing.T) {
	ctx := context.Background()
	store := infrasql.NewFollowerStore(newTestDB(t))

	require.NoError(t, store.InsertBatch(ctx, []domain.Follower{
		{ID: 7, Name: "Bo", IsFollowing: true},
		{ID: 2, Name: "Noa", IsFollowing: false},
		{ID: 5, Name: "Ann", IsFollowing: false},
	}))

	followers, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Follower{
		{ID: 2, Name: "Noa", IsFollowing: false},
		{ID: 5, Name: "Ann", IsFollowing: false},
		{ID: 7, Name: "Bo", IsFollowing: true},
	}, followers)
}

func TestFollowerStore_FindUpdateDelete(t *testing.T) {
	ctx := context.Background()
	store := infrasql.NewFollowerStore(newTestDB(t))

	_, err := store.Find(ctx, 5)
	require.ErrorIs(t, err, domain.ErrFollowerNotFound)

	follower := domain.Follower{ID: 5, Name: "Ann", IsFollowing: false}
	require.NoError(t, store.Insert(ctx, follower))

	found, err := store.Find(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, &follower, found)

	follower.IsFollowing = true
	require.NoError(t, store.Update(ctx, follower))

	found, err = store.Find(ctx, 5)
	require.NoError(t, err)
	assert.True(t, found.IsFollowing)

	require.NoError(t, store.Delete(ctx, 5))
	_, err = store.Find(ctx, 5)
	require.ErrorIs(t, err, domain.ErrFollowerNotFound)
}

func TestFollowerStore_DeleteAllThenRepopulate(t *testing.T) {
	ctx := context.Background()
	store := infrasql.NewFollowerStore(newTestDB(t))

	require.NoError(t, store.InsertBatch(ctx, []domain.Follower{
		{ID: 1, Name: "Ann", IsFollowing: true},
		{ID: 2, Name: "Bo", IsFollowing: false},
	}))
	require.NoError(t, store.DeleteAll(ctx))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, store.InsertBatch(ctx, []domain.Follower{
		{ID: 9, Name: "Iris", IsFollowing: false},
	}))

	followers, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Follower{{ID: 9, Name: "Iris", IsFollowing: false}}, followers)
}

func TestFollowerStore_MaxIDAndCount(t *testing.T) {
	ctx := context.Background()
	store := infrasql.NewFollowerStore(newTestDB(t))

	maxID, err := store.MaxID(ctx)
	require.NoError(t, err)
	assert.Zero(t, maxID)

	require.NoError(t, store.InsertBatch(ctx, []domain.Follower{
		{ID: 3, Name: "Ann"},
		{ID: 41, Name: "Bo"},
	}))

	maxID, err = store.MaxID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(41), maxID)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestFollowerStore_UndoRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := infrasql.NewFollowerStore(newTestDB(t))

	removed := domain.Follower{ID: 5, Name: "Ann", IsFollowing: true}
	require.NoError(t, store.Insert(ctx, removed))
	require.NoError(t, store.Delete(ctx, removed.ID))
	require.NoError(t, store.Insert(ctx, removed))

	restored, err := store.Find(ctx, removed.ID)
	require.NoError(t, err)
	assert.Equal(t, &removed, restored)
}
