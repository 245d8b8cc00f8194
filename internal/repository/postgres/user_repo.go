package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vedran77/feedline/internal/database"
	"github.com/vedran77/feedline/internal/domain"
)

type UserRepo struct {
	pool  *pgxpool.Pool
	guard *database.Guard
}

func NewUserRepo(pool *pgxpool.Pool, guard *database.Guard) *UserRepo {
	return &UserRepo{pool: pool, guard: guard}
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, email, name, password_hash, status, post_ids, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	return r.guard.Do(ctx, func(ctx context.Context) error {
		_, err := r.pool.Exec(ctx, query,
			user.ID, user.Email, user.Name, user.PasswordHash,
			user.Status, user.PostIDs, user.CreatedAt, user.UpdatedAt,
		)
		return err
	})
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT id, email, name, password_hash, status, post_ids, created_at, updated_at FROM users WHERE id = $1", id)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT id, email, name, password_hash, status, post_ids, created_at, updated_at FROM users WHERE email = $1", email)
}

func (r *UserRepo) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users SET status = $1, post_ids = $2, updated_at = $3 WHERE id = $4`

	return r.guard.Do(ctx, func(ctx context.Context) error {
		_, err := r.pool.Exec(ctx, query, user.Status, user.PostIDs, user.UpdatedAt, user.ID)
		return err
	})
}

func (r *UserRepo) scanUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	var u domain.User
	found := false
	err := r.guard.Do(ctx, func(ctx context.Context) error {
		err := r.pool.QueryRow(ctx, query, arg).Scan(
			&u.ID, &u.Email, &u.Name, &u.PasswordHash,
			&u.Status, &u.PostIDs, &u.CreatedAt, &u.UpdatedAt,
		)
		// No rows is a valid outcome, not a store failure the
		// breaker should count.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &u, nil
}
