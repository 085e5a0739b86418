//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "FollowerStore=FollowerStore"
package domain

import (
	"context"
	"errors"
	"fmt"
)

var ErrFollowerNotFound = errors.New("follower not found")

type Follower struct {
	ID          int64
	Name        string
	IsFollowing bool
}

// NewFollower returns a manually added follower with a placeholder name.
func NewFollower(id int64) Follower {
	return Follower{
		ID:          id,
		Name:        fmt.Sprintf("Follower %d", id),
		IsFollowing: false,
	}
}

// NextFollowerID allocates the id for a manually added follower:
// one past the largest existing id, starting from 1 on an empty set.
func NextFollowerID(maxExistingID int64) int64 {
	if maxExistingID < 0 {
		maxExistingID = 0
	}
	return maxExistingID + 1
}

type FollowerStore interface {
	List(ctx context.Context) ([]Follower, error)
	Find(ctx context.Context, id int64) (*Follower, error)
	Insert(ctx context.Context, follower Follower) error
	InsertBatch(ctx context.Context, followers []Follower) error
	Update(ctx context.Context, follower Follower) error
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
	MaxID(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}
