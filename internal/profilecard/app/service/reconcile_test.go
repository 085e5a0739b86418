package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mobileheap/profilecard/internal/profilecard/app/external"
	externalmock "github.com/mobileheap/profilecard/internal/profilecard/app/external/mock"
	"github.com/mobileheap/profilecard/internal/profilecard/app/service"
	"github.com/mobileheap/profilecard/internal/profilecard/domain"
	infrasql "github.com/mobileheap/profilecard/internal/profilecard/infra/sql"
	"github.com/mobileheap/profilecard/pkg/log"
	pkgsql "github.com/mobileheap/profilecard/pkg/sql"
)

const reconcileTestSchema = `
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

// End-to-end pass over real sqlite stores and a real transaction: bootstrap,
// toggle, destructive refresh, remove/undo and manual add against one store.
func TestCardService_ReconcilesLocalStateWithRemote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	db, err := pkgsql.NewDatabase(&pkgsql.Config{Path: ":memory:"}, log.NewStub())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close(context.Background()) })
	_, err = db.ExecContext(ctx, reconcileTestSchema)
	require.NoError(t, err)

	client := pkgsql.NewTransactionalClient(db)
	profileStore := infrasql.NewProfileStore(client)
	followerStore := infrasql.NewFollowerStore(client)

	directory := externalmock.NewDirectoryService(ctrl)
	directory.EXPECT().ListUsers(gomock.Any()).Return([]external.User{
		{ID: 5, Name: "Ann"},
		{ID: 7, Name: "Bo"},
	}, nil)

	var srv *service.CardService
	tx := pkgsql.NewTransaction(db, "profilecard", func() { srv.StoreCommitted() })
	srv = service.NewCardService(directory, tx, profileStore, followerStore, log.NewStub())

	// bootstrap on an empty store
	require.NoError(t, srv.EnsureInitialData(ctx))

	profile, err := srv.LoadProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProfile(), profile)

	followers, err := followerStore.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Follower{
		{ID: 5, Name: "Ann", IsFollowing: false},
		{ID: 7, Name: "Bo", IsFollowing: false},
	}, followers)

	// second bootstrap call must not touch existing data
	require.NoError(t, srv.EnsureInitialData(ctx))

	// double toggle returns the record to its original state
	require.NoError(t, srv.ToggleFollow(ctx, 5))
	found, err := followerStore.Find(ctx, 5)
	require.NoError(t, err)
	assert.True(t, found.IsFollowing)

	require.NoError(t, srv.ToggleFollow(ctx, 5))
	found, err = followerStore.Find(ctx, 5)
	require.NoError(t, err)
	assert.False(t, found.IsFollowing)

	// refresh replaces the whole set, local follow flags are lost
	require.NoError(t, srv.ToggleFollow(ctx, 7))
	directory.EXPECT().ListUsers(gomock.Any()).Return([]external.User{
		{ID: 5, Name: "Ann"},
		{ID: 7, Name: "Bo"},
		{ID: 9, Name: "Iris"},
	}, nil)
	require.NoError(t, srv.RefreshFromRemote(ctx))

	followers, err = followerStore.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Follower{
		{ID: 5, Name: "Ann", IsFollowing: false},
		{ID: 7, Name: "Bo", IsFollowing: false},
		{ID: 9, Name: "Iris", IsFollowing: false},
	}, followers)

	// remove then undo restores the exact record
	removed := domain.Follower{ID: 7, Name: "Bo", IsFollowing: false}
	require.NoError(t, srv.RemoveFollower(ctx, removed))
	require.NoError(t, srv.InsertFollower(ctx, removed))

	restored, err := followerStore.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, followers, restored)

	// manual add allocates one past the current max id
	created, err := srv.AddFollower(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.NewFollower(10), created)

	// saved profile survives a reload
	require.NoError(t, srv.SaveProfile(ctx, domain.Profile{Name: "Kai", Bio: "climber"}))
	profile, err = srv.LoadProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Profile{Name: "Kai", Bio: "climber"}, profile)
}

// The clear and the repopulate share one transaction: a refresh that fails
// between them must leave the previous follower set fully intact, never a
// committed empty one.
func TestCardService_RefreshFromRemote_KeepsPriorSetWhenReplaceFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	db, err := pkgsql.NewDatabase(&pkgsql.Config{Path: ":memory:"}, log.NewStub())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close(context.Background()) })
	_, err = db.ExecContext(ctx, reconcileTestSchema)
	require.NoError(t, err)

	client := pkgsql.NewTransactionalClient(db)
	profileStore := infrasql.NewProfileStore(client)
	followerStore := infrasql.NewFollowerStore(client)

	// duplicate remote ids violate the primary key during repopulate,
	// after the clear already ran inside the same transaction
	directory := externalmock.NewDirectoryService(ctrl)
	directory.EXPECT().ListUsers(gomock.Any()).Return([]external.User{
		{ID: 5, Name: "Ann"},
		{ID: 5, Name: "Ann again"},
	}, nil)

	tx := pkgsql.NewTransaction(db, "profilecard", nil)
	srv := service.NewCardService(directory, tx, profileStore, followerStore, log.NewStub())

	prior := []domain.Follower{
		{ID: 1, Name: "Noa", IsFollowing: true},
		{ID: 2, Name: "Iris", IsFollowing: false},
	}
	require.NoError(t, followerStore.InsertBatch(ctx, prior))

	require.Error(t, srv.RefreshFromRemote(ctx))

	followers, err := followerStore.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, prior, followers)
}
