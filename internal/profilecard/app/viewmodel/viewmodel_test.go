package viewmodel_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mobileheap/profilecard/internal/profilecard/app/viewmodel"
	viewmodelmock "github.com/mobileheap/profilecard/internal/profilecard/app/viewmodel/mock"
	"github.com/mobileheap/profilecard/internal/profilecard/domain"
	"github.com/mobileheap/profilecard/pkg/log"
	"github.com/mobileheap/profilecard/pkg/stream"
)

type stateRecorder struct {
	mu     sync.Mutex
	states []viewmodel.State
}

func (r *stateRecorder) record(state viewmodel.State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, state)
}

func (r *stateRecorder) snapshot() []viewmodel.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	states := make([]viewmodel.State, len(r.states))
	copy(states, r.states)
	return states
}

func awaitState(t *testing.T, vm *viewmodel.CardViewModel, matches func(viewmodel.State) bool) viewmodel.State {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		state := vm.State()
		if matches(state) {
			return state
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("expected view-model state was not reached")
	return viewmodel.State{}
}

func TestCardViewModel_Listen_RunsStartupProtocol(t *testing.T) {
	tests := []struct {
		name   string
		api    func(ctrl *gomock.Controller, updates stream.Publisher[[]domain.Follower]) *viewmodelmock.CardAPI
		expect func(t *testing.T, state viewmodel.State)
	}{
		{
			name: "loads_stored_profile",
			api: func(ctrl *gomock.Controller, updates stream.Publisher[[]domain.Follower]) *viewmodelmock.CardAPI {
				mock := viewmodelmock.NewCardAPI(ctrl)
				mock.EXPECT().ObserveFollowers().Return(updates.Subscribe())
				mock.EXPECT().EnsureInitialData(gomock.Any()).Return(nil)
				mock.EXPECT().LoadProfile(gomock.Any()).Return(domain.Profile{Name: "Kai", Bio: "climber"}, nil)
				return mock
			},
			expect: func(t *testing.T, state viewmodel.State) {
				assert.Equal(t, "Kai", state.Name)
				assert.Equal(t, "climber", state.Bio)
			},
		},
		{
			name: "falls_back_to_defaults_when_startup_fails",
			api: func(ctrl *gomock.Controller, updates stream.Publisher[[]domain.Follower]) *viewmodelmock.CardAPI {
				mock := viewmodelmock.NewCardAPI(ctrl)
				mock.EXPECT().ObserveFollowers().Return(updates.Subscribe())
				mock.EXPECT().EnsureInitialData(gomock.Any()).Return(errors.New("database locked"))
				return mock
			},
			expect: func(t *testing.T, state viewmodel.State) {
				assert.Equal(t, domain.DefaultProfileName, state.Name)
				assert.Equal(t, domain.DefaultProfileBio, state.Bio)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			updates := stream.NewPublisher[[]domain.Follower]()
			defer updates.Close()

			vm := viewmodel.New(tc.api(ctrl, updates), log.NewStub())

			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan struct{})
			go func() {
				defer close(done)
				_ = vm.Listen(ctx)
			}()
			defer func() {
				cancel()
				<-done
			}()

			state := awaitState(t, vm, func(state viewmodel.State) bool {
				return state.Name != ""
			})
			tc.expect(t, state)
			assert.True(t, state.IsLoading)
		})
	}
}

func TestCardViewModel_Listen_AppliesFollowerSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	updates := stream.NewPublisher[[]domain.Follower]()
	defer updates.Close()

	api := viewmodelmock.NewCardAPI(ctrl)
	api.EXPECT().ObserveFollowers().Return(updates.Subscribe())
	api.EXPECT().EnsureInitialData(gomock.Any()).Return(nil)
	api.EXPECT().LoadProfile(gomock.Any()).Return(domain.DefaultProfile(), nil)

	vm := viewmodel.New(api, log.NewStub())
	require.True(t, vm.State().IsLoading)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = vm.Listen(ctx)
	}()
	defer func() {
		cancel()
		<-done
	}()

	followers := []domain.Follower{
		{ID: 1, Name: "Ann", IsFollowing: true},
		{ID: 2, Name: "Bo", IsFollowing: false},
	}
	updates.Publish(followers)

	state := awaitState(t, vm, func(state viewmodel.State) bool {
		return !state.IsLoading
	})
	assert.Equal(t, followers, state.Followers)

	updates.Publish(nil)
	state = awaitState(t, vm, func(state viewmodel.State) bool {
		return len(state.Followers) == 0
	})
	assert.False(t, state.IsLoading)
}

func TestCardViewModel_SaveProfile_UpdatesCachedFields(t *testing.T) {
	tests := []struct {
		name   string
		api    func(ctrl *gomock.Controller) *viewmodelmock.CardAPI
		expect func(t *testing.T, vm *viewmodel.CardViewModel, err error)
	}{
		{
			name: "caches_saved_values",
			api: func(ctrl *gomock.Controller) *viewmodelmock.CardAPI {
				mock := viewmodelmock.NewCardAPI(ctrl)
				mock.EXPECT().SaveProfile(gomock.Any(), domain.Profile{Name: "Kai", Bio: "climber"}).Return(nil)
				return mock
			},
			expect: func(t *testing.T, vm *viewmodel.CardViewModel, err error) {
				require.NoError(t, err)
				state := vm.State()
				assert.Equal(t, "Kai", state.Name)
				assert.Equal(t, "climber", state.Bio)
			},
		},
		{
			name: "keeps_previous_values_on_error",
			api: func(ctrl *gomock.Controller) *viewmodelmock.CardAPI {
				mock := viewmodelmock.NewCardAPI(ctrl)
				mock.EXPECT().SaveProfile(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
				return mock
			},
			expect: func(t *testing.T, vm *viewmodel.CardViewModel, err error) {
				require.Error(t, err)
				state := vm.State()
				assert.Empty(t, state.Name)
				assert.Empty(t, state.Bio)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			vm := viewmodel.New(tc.api(ctrl), log.NewStub())
			err := vm.SaveProfile(context.Background(), "Kai", "climber")
			tc.expect(t, vm, err)
		})
	}
}

func TestCardViewModel_RefreshFromRemote_TogglesSyncingFlag(t *testing.T) {
	tests := []struct {
		name      string
		result    error
		expectErr bool
	}{
		{name: "resets_flag_on_success", result: nil, expectErr: false},
		{name: "resets_flag_on_error", result: errors.New("bad gateway"), expectErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			var vm *viewmodel.CardViewModel
			var syncingDuringCall bool

			api := viewmodelmock.NewCardAPI(ctrl)
			api.EXPECT().RefreshFromRemote(gomock.Any()).
				DoAndReturn(func(context.Context) error {
					syncingDuringCall = vm.State().IsSyncing
					return tc.result
				})

			recorder := &stateRecorder{}
			vm = viewmodel.New(api, log.NewStub(), viewmodel.WithChangeListener(recorder.record))

			err := vm.RefreshFromRemote(context.Background())
			if tc.expectErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			assert.True(t, syncingDuringCall)
			assert.False(t, vm.State().IsSyncing)

			states := recorder.snapshot()
			require.Len(t, states, 2)
			assert.True(t, states[0].IsSyncing)
			assert.False(t, states[1].IsSyncing)
		})
	}
}

func TestCardViewModel_UndoRemove_RestoresExactRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	removed := domain.Follower{ID: 5, Name: "Ann", IsFollowing: true}

	api := viewmodelmock.NewCardAPI(ctrl)
	api.EXPECT().RemoveFollower(gomock.Any(), removed).Return(nil)
	api.EXPECT().InsertFollower(gomock.Any(), removed).Return(nil)

	vm := viewmodel.New(api, log.NewStub())

	ctx := context.Background()
	require.NoError(t, vm.RemoveFollower(ctx, removed))
	require.NoError(t, vm.UndoRemove(ctx, removed))
}

func TestCardViewModel_Gestures_DelegateToService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	created := domain.NewFollower(8)

	api := viewmodelmock.NewCardAPI(ctrl)
	api.EXPECT().ToggleFollow(gomock.Any(), int64(5)).Return(nil)
	api.EXPECT().AddFollower(gomock.Any()).Return(created, nil)

	vm := viewmodel.New(api, log.NewStub())

	ctx := context.Background()
	require.NoError(t, vm.ToggleFollow(ctx, 5))

	follower, err := vm.AddFollower(ctx)
	require.NoError(t, err)
	assert.Equal(t, created, follower)
}
