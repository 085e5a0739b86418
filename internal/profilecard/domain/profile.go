//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "ProfileStore=ProfileStore"
package domain

import (
	"context"
	"errors"
)

var ErrProfileNotFound = errors.New("profile not found")

const (
	DefaultProfileName = "New User"
	DefaultProfileBio  = "No bio yet"
)

// Profile is the single card header record. Exactly one logical instance
// exists, stored under a constant key and replaced wholesale on save.
type Profile struct {
	Name string
	Bio  string
}

func DefaultProfile() Profile {
	return Profile{
		Name: DefaultProfileName,
		Bio:  DefaultProfileBio,
	}
}

type ProfileStore interface {
	Find(ctx context.Context) (*Profile, error)
	Store(ctx context.Context, profile Profile) error
}
