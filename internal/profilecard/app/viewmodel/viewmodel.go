//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "CardAPI=CardAPI"
package viewmodel

import (
	"context"
	"sync"

	"github.com/mobileheap/profilecard/internal/profilecard/domain"
	"github.com/mobileheap/profilecard/pkg/log"
	"github.com/mobileheap/profilecard/pkg/stream"
	"github.com/mobileheap/profilecard/pkg/worker"
)

// CardAPI is the slice of the card service the view-model drives.
type CardAPI interface {
	ObserveFollowers() stream.Subscription[[]domain.Follower]
	EnsureInitialData(ctx context.Context) error
	LoadProfile(ctx context.Context) (domain.Profile, error)
	SaveProfile(ctx context.Context, profile domain.Profile) error
	RefreshFromRemote(ctx context.Context) error
	ToggleFollow(ctx context.Context, id int64) error
	RemoveFollower(ctx context.Context, follower domain.Follower) error
	InsertFollower(ctx context.Context, follower domain.Follower) error
	AddFollower(ctx context.Context) (domain.Follower, error)
}

// State is the presentation-facing snapshot. IsLoading holds until the first
// follower snapshot arrives, IsSyncing only during an explicit remote refresh.
type State struct {
	Name      string
	Bio       string
	Followers []domain.Follower
	IsLoading bool
	IsSyncing bool
}

type Option func(*CardViewModel)

// WithChangeListener registers a callback invoked after every state
// transition, outside the state lock.
func WithChangeListener(fn func(State)) Option {
	return func(vm *CardViewModel) {
		vm.onChange = fn
	}
}

// CardViewModel owns the session-scoped presentation state of one profile
// card screen. The follower list it republishes is a cache of the store's
// live read model, never an independent draft: every snapshot overwrites it.
type CardViewModel struct {
	api      CardAPI
	logger   log.Logger
	onChange func(State)

	mu        sync.RWMutex
	name      string
	bio       string
	followers []domain.Follower
	isLoading bool
	isSyncing bool
}

func New(api CardAPI, logger log.Logger, opts ...Option) *CardViewModel {
	vm := &CardViewModel{
		api:       api,
		logger:    logger,
		isLoading: true,
	}
	for _, opt := range opts {
		opt(vm)
	}
	return vm
}

func (vm *CardViewModel) State() State {
	vm.mu.RLock()
	defer vm.mu.RUnlock()

	followers := make([]domain.Follower, len(vm.followers))
	copy(followers, vm.followers)

	return State{
		Name:      vm.name,
		Bio:       vm.bio,
		Followers: followers,
		IsLoading: vm.isLoading,
		IsSyncing: vm.isSyncing,
	}
}

// Listen runs the startup protocol and consumes the live follower read model
// until the context ends. Runs once per view-model lifetime.
func (vm *CardViewModel) Listen(ctx context.Context) error {
	sub := vm.api.ObserveFollowers()
	defer sub.Close()

	startup := worker.NewFailSafeGroup(ctx)
	startup.Do(func(ctx context.Context) error {
		vm.loadInitialState(ctx)
		return nil
	})
	defer func() { _ = startup.Wait() }()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case followers, ok := <-sub.Updates():
			if !ok {
				return nil
			}
			vm.applyFollowers(followers)
		}
	}
}

func (vm *CardViewModel) ToggleFollow(ctx context.Context, id int64) error {
	return vm.api.ToggleFollow(ctx, id)
}

func (vm *CardViewModel) RemoveFollower(ctx context.Context, follower domain.Follower) error {
	return vm.api.RemoveFollower(ctx, follower)
}

// UndoRemove restores a just-removed follower by re-inserting the exact
// record the remove gesture carried, id and follow state included. The list
// may have changed shape during the undo window, so the restore is by value,
// never by position.
func (vm *CardViewModel) UndoRemove(ctx context.Context, follower domain.Follower) error {
	return vm.api.InsertFollower(ctx, follower)
}

func (vm *CardViewModel) AddFollower(ctx context.Context) (domain.Follower, error) {
	return vm.api.AddFollower(ctx)
}

func (vm *CardViewModel) SaveProfile(ctx context.Context, name, bio string) error {
	err := vm.api.SaveProfile(ctx, domain.Profile{Name: name, Bio: bio})
	if err != nil {
		return err
	}

	vm.mu.Lock()
	vm.name = name
	vm.bio = bio
	vm.mu.Unlock()
	vm.notifyChanged()
	return nil
}

// RefreshFromRemote sets the syncing flag for the call's duration, success
// or not, and hands the service's result back for user-facing reporting.
func (vm *CardViewModel) RefreshFromRemote(ctx context.Context) error {
	vm.setSyncing(true)
	defer vm.setSyncing(false)

	return vm.api.RefreshFromRemote(ctx)
}

func (vm *CardViewModel) loadInitialState(ctx context.Context) {
	var profile domain.Profile
	err := vm.api.EnsureInitialData(ctx)
	if err == nil {
		profile, err = vm.api.LoadProfile(ctx)
	}
	if err != nil {
		vm.logger.WithError(err).Warn(ctx, "profile startup load failed, falling back to defaults")
		profile = domain.DefaultProfile()
	}

	vm.mu.Lock()
	vm.name = profile.Name
	vm.bio = profile.Bio
	vm.mu.Unlock()
	vm.notifyChanged()
}

func (vm *CardViewModel) applyFollowers(followers []domain.Follower) {
	vm.mu.Lock()
	vm.followers = followers
	vm.isLoading = false
	vm.mu.Unlock()
	vm.notifyChanged()
}

func (vm *CardViewModel) setSyncing(isSyncing bool) {
	vm.mu.Lock()
	vm.isSyncing = isSyncing
	vm.mu.Unlock()
	vm.notifyChanged()
}

func (vm *CardViewModel) notifyChanged() {
	if vm.onChange != nil {
		vm.onChange(vm.State())
	}
}
