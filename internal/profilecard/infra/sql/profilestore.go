package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mobileheap/profilecard/internal/profilecard/domain"
	pkgsql "github.com/mobileheap/profilecard/pkg/sql"
)

// profileKey is the constant identity of the zero-or-one-row profile table.
const profileKey = "profile"

type profileStore struct {
	db pkgsql.Client
}

func NewProfileStore(db pkgsql.Client) domain.ProfileStore {
	return &profileStore{db: db}
}

func (s *profileStore) Find(ctx context.Context) (*domain.Profile, error) {
	query, args, err := sq.
		Select("name", "bio").
		From("profile").
		Where(sq.Eq{"id": profileKey}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql: %w", err)
	}

	var row sqlxProfile
	err = s.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return &domain.Profile{
		Name: row.Name,
		Bio:  row.Bio,
	}, nil
}

func (s *profileStore) Store(ctx context.Context, profile domain.Profile) error {
	query, args, err := sq.
		Insert("profile").
		Columns("id", "name", "bio").
		Values(profileKey, profile.Name, profile.Bio).
		Suffix(`on conflict (id) do update set
			name = excluded.name,
			bio = excluded.bio
		`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build sql: %w", err)
	}

	_, err = s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

type sqlxProfile struct {
	Name string `db:"name"`
	Bio  string `db:"bio"`
}
