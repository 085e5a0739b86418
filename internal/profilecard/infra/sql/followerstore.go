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

type followerStore struct {
	db pkgsql.Client
}

func NewFollowerStore(db pkgsql.Client) domain.FollowerStore {
	return &followerStore{db: db}
}

func (s *followerStore) List(ctx context.Context) ([]domain.Follower, error) {
	query, args, err := sq.
		Select("id", "name", "is_following").
		From("follower").
		OrderBy("id asc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql: %w", err)
	}

	var rows []sqlxFollower
	err = s.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select followers: %w", err)
	}

	result := make([]domain.Follower, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toDomain())
	}
	return result, nil
}

func (s *followerStore) Find(ctx context.Context, id int64) (*domain.Follower, error) {
	query, args, err := sq.
		Select("id", "name", "is_following").
		From("follower").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql: %w", err)
	}

	var row sqlxFollower
	err = s.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrFollowerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get follower: %w", err)
	}

	follower := row.toDomain()
	return &follower, nil
}

func (s *followerStore) Insert(ctx context.Context, follower domain.Follower) error {
	query, args, err := sq.
		Insert("follower").
		Columns("id", "name", "is_following").
		Values(follower.ID, follower.Name, follower.IsFollowing).
		ToSql()
	if err != nil {
		return fmt.Errorf("build sql: %w", err)
	}

	_, err = s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("insert follower: %w", err)
	}
	return nil
}

func (s *followerStore) InsertBatch(ctx context.Context, followers []domain.Follower) error {
	if len(followers) == 0 {
		return nil
	}

	qb := sq.
		Insert("follower").
		Columns("id", "name", "is_following")
	for _, follower := range followers {
		qb = qb.Values(follower.ID, follower.Name, follower.IsFollowing)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return fmt.Errorf("build sql: %w", err)
	}

	_, err = s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("insert followers: %w", err)
	}
	return nil
}

func (s *followerStore) Update(ctx context.Context, follower domain.Follower) error {
	query, args, err := sq.
		Update("follower").
		Set("name", follower.Name).
		Set("is_following", follower.IsFollowing).
		Where(sq.Eq{"id": follower.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build sql: %w", err)
	}

	_, err = s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update follower: %w", err)
	}
	return nil
}

func (s *followerStore) Delete(ctx context.Context, id int64) error {
	query, args, err := sq.
		Delete("follower").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build sql: %w", err)
	}

	_, err = s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete follower: %w", err)
	}
	return nil
}

func (s *followerStore) DeleteAll(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM follower")
	if err != nil {
		return fmt.Errorf("delete followers: %w", err)
	}
	return nil
}

func (s *followerStore) MaxID(ctx context.Context) (int64, error) {
	var maxID int64
	err := s.db.GetContext(ctx, &maxID, "SELECT COALESCE(MAX(id), 0) FROM follower")
	if err != nil {
		return 0, fmt.Errorf("get max follower id: %w", err)
	}
	return maxID, nil
}

func (s *followerStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM follower")
	if err != nil {
		return 0, fmt.Errorf("count followers: %w", err)
	}
	return count, nil
}

type sqlxFollower struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	IsFollowing bool   `db:"is_following"`
}

func (r sqlxFollower) toDomain() domain.Follower {
	return domain.Follower{
		ID:          r.ID,
		Name:        r.Name,
		IsFollowing: r.IsFollowing,
	}
}
