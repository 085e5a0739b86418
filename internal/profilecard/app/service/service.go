package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mobileheap/profilecard/internal/profilecard/app/external"
	"github.com/mobileheap/profilecard/internal/profilecard/domain"
	"github.com/mobileheap/profilecard/pkg/log"
	"github.com/mobileheap/profilecard/pkg/persistence"
	"github.com/mobileheap/profilecard/pkg/stream"
)

const lockAddFollower = "add_follower"

// CardService is the sole writer path to the store and the arbiter of how
// local and remote follower data are reconciled. Every committed write is
// followed by a fresh follower snapshot on the observed stream.
type CardService struct {
	directoryService external.DirectoryService
	tx               persistence.Transaction
	profileStore     domain.ProfileStore
	followerStore    domain.FollowerStore
	logger           log.Logger

	followerUpdates stream.Publisher[[]domain.Follower]
	changedChan     chan struct{}
}

func NewCardService(
	directoryService external.DirectoryService,
	tx persistence.Transaction,
	profileStore domain.ProfileStore,
	followerStore domain.FollowerStore,
	logger log.Logger,
) *CardService {
	return &CardService{
		directoryService: directoryService,
		tx:               tx,
		profileStore:     profileStore,
		followerStore:    followerStore,
		logger:           logger,
		followerUpdates:  stream.NewPublisher[[]domain.Follower](),
		changedChan:      make(chan struct{}, 1),
	}
}

// ObserveFollowers returns a live read model of the follower set ordered by
// id: the current snapshot, then a new one after every committed change.
func (s *CardService) ObserveFollowers() stream.Subscription[[]domain.Follower] {
	return s.followerUpdates.Subscribe()
}

// EnsureInitialData bootstraps an empty store: creates the default profile
// if none exists and attempts a remote sync when the follower set is empty.
// A failed remote sync is logged and swallowed, bootstrap never fails the
// application because of it.
func (s *CardService) EnsureInitialData(ctx context.Context) error {
	err := s.tx.WithinContext(ctx, func(ctx context.Context) error {
		_, err := s.profileStore.Find(ctx)
		if errors.Is(err, domain.ErrProfileNotFound) {
			err = s.profileStore.Store(ctx, domain.DefaultProfile())
			if err != nil {
				return fmt.Errorf("store default profile: %w", err)
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("find profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	count, err := s.followerStore.Count(ctx)
	if err != nil {
		return fmt.Errorf("count followers: %w", err)
	}
	if count > 0 {
		return nil
	}

	err = s.RefreshFromRemote(ctx)
	if err != nil {
		s.logger.WithError(err).Warn(ctx, "initial follower sync failed, continuing with empty set")
	}
	return nil
}

// LoadProfile returns the stored profile, falling back to the default pair
// when no record exists yet.
func (s *CardService) LoadProfile(ctx context.Context) (domain.Profile, error) {
	profile, err := s.profileStore.Find(ctx)
	if errors.Is(err, domain.ErrProfileNotFound) {
		return domain.DefaultProfile(), nil
	}
	if err != nil {
		return domain.Profile{}, fmt.Errorf("find profile: %w", err)
	}
	return *profile, nil
}

func (s *CardService) SaveProfile(ctx context.Context, profile domain.Profile) error {
	return s.tx.WithinContext(ctx, func(ctx context.Context) error {
		err := s.profileStore.Store(ctx, profile)
		if err != nil {
			return fmt.Errorf("store profile: %w", err)
		}
		return nil
	})
}

// RefreshFromRemote replaces the whole local follower set with the remote
// listing, every record reset to not-followed. This is a destructive full
// replace, not a merge: local follow flags and manual edits are lost. The
// replace runs in a single transaction, an interrupted refresh never leaves
// a half-empty set behind.
func (s *CardService) RefreshFromRemote(ctx context.Context) error {
	users, err := s.directoryService.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("list directory users: %w", err)
	}

	followers := make([]domain.Follower, 0, len(users))
	for _, user := range users {
		followers = append(followers, domain.Follower{
			ID:          user.ID,
			Name:        user.Name,
			IsFollowing: false,
		})
	}

	return s.tx.WithinContext(ctx, func(ctx context.Context) error {
		err := s.followerStore.DeleteAll(ctx)
		if err != nil {
			return fmt.Errorf("clear followers: %w", err)
		}
		if len(followers) == 0 {
			return nil
		}

		err = s.followerStore.InsertBatch(ctx, followers)
		if err != nil {
			return fmt.Errorf("insert followers: %w", err)
		}
		return nil
	})
}

// ToggleFollow flips the follow flag of the given follower. An unknown id is
// a silent no-op, not an error.
func (s *CardService) ToggleFollow(ctx context.Context, id int64) error {
	return s.tx.WithinContext(ctx, func(ctx context.Context) error {
		follower, err := s.followerStore.Find(ctx, id)
		if errors.Is(err, domain.ErrFollowerNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("find follower: %w", err)
		}

		follower.IsFollowing = !follower.IsFollowing
		err = s.followerStore.Update(ctx, *follower)
		if err != nil {
			return fmt.Errorf("update follower: %w", err)
		}
		return nil
	})
}

// RemoveFollower and InsertFollower are the undo pair: the presentation layer
// removes by value, keeps the removed record for the undo window and inserts
// the exact same record back when the user undoes.
func (s *CardService) RemoveFollower(ctx context.Context, follower domain.Follower) error {
	return s.tx.WithinContext(ctx, func(ctx context.Context) error {
		err := s.followerStore.Delete(ctx, follower.ID)
		if err != nil {
			return fmt.Errorf("delete follower: %w", err)
		}
		return nil
	})
}

func (s *CardService) InsertFollower(ctx context.Context, follower domain.Follower) error {
	return s.tx.WithinContext(ctx, func(ctx context.Context) error {
		err := s.followerStore.Insert(ctx, follower)
		if err != nil {
			return fmt.Errorf("insert follower: %w", err)
		}
		return nil
	})
}

// AddFollower creates a placeholder-named follower under the next free id.
func (s *CardService) AddFollower(ctx context.Context) (domain.Follower, error) {
	var created domain.Follower
	err := s.tx.WithinContext(ctx, func(ctx context.Context) error {
		maxID, err := s.followerStore.MaxID(ctx)
		if err != nil {
			return fmt.Errorf("get max follower id: %w", err)
		}

		created = domain.NewFollower(domain.NextFollowerID(maxID))
		err = s.followerStore.Insert(ctx, created)
		if err != nil {
			return fmt.Errorf("insert follower: %w", err)
		}
		return nil
	}, lockAddFollower)
	if err != nil {
		return domain.Follower{}, err
	}
	return created, nil
}

// StoreCommitted signals that a transaction committed; wired as the sql
// transaction onCommit hook. Non-blocking, consecutive commits collapse
// into one pending snapshot.
func (s *CardService) StoreCommitted() {
	select {
	case s.changedChan <- struct{}{}:
	default:
	}
}

// PublishFollowerSnapshots republishes the ordered follower set to observers
// after every committed change. Runs for the application lifetime.
func (s *CardService) PublishFollowerSnapshots(ctx context.Context) error {
	err := s.publishSnapshot(ctx)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			s.followerUpdates.Close()
			return ctx.Err()
		case <-s.changedChan:
			err = s.publishSnapshot(ctx)
			if err != nil {
				s.logger.WithError(err).Error(ctx, "failed to publish follower snapshot")
			}
		}
	}
}

func (s *CardService) publishSnapshot(ctx context.Context) error {
	followers, err := s.followerStore.List(ctx)
	if err != nil {
		return fmt.Errorf("list followers: %w", err)
	}

	s.followerUpdates.Publish(followers)
	return nil
}
