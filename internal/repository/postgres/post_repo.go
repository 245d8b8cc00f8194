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

type PostRepo struct {
	pool  *pgxpool.Pool
	guard *database.Guard
}

func NewPostRepo(pool *pgxpool.Pool, guard *database.Guard) *PostRepo {
	return &PostRepo{pool: pool, guard: guard}
}

func (r *PostRepo) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO posts (id, title, content, image_url, creator_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	return r.guard.Do(ctx, func(ctx context.Context) error {
		_, err := r.pool.Exec(ctx, query,
			post.ID, post.Title, post.Content, post.ImageRef,
			post.Creator.ID, post.CreatedAt, post.UpdatedAt,
		)
		return err
	})
}

func (r *PostRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	query := `
		SELECT p.id, p.title, p.content, p.image_url, p.creator_id, u.name, p.created_at, p.updated_at
		FROM posts p
		JOIN users u ON p.creator_id = u.id
		WHERE p.id = $1`

	var p domain.Post
	found := false
	err := r.guard.Do(ctx, func(ctx context.Context) error {
		err := r.pool.QueryRow(ctx, query, id).Scan(
			&p.ID, &p.Title, &p.Content, &p.ImageRef,
			&p.Creator.ID, &p.Creator.Name, &p.CreatedAt, &p.UpdatedAt,
		)
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
	return &p, nil
}

// ListPage pages the whole feed, newest first. The secondary sort on id
// keeps the order stable across repeated reads when created_at ties.
func (r *PostRepo) ListPage(ctx context.Context, offset, limit int) ([]domain.Post, int, error) {
	query := `
		SELECT p.id, p.title, p.content, p.image_url, p.creator_id, u.name, p.created_at, p.updated_at
		FROM posts p
		JOIN users u ON p.creator_id = u.id
		ORDER BY p.created_at DESC, p.id
		OFFSET $1 LIMIT $2`

	var posts []domain.Post
	var total int
	err := r.guard.Do(ctx, func(ctx context.Context) error {
		if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM posts`).Scan(&total); err != nil {
			return err
		}

		rows, err := r.pool.Query(ctx, query, offset, limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var p domain.Post
			if err := rows.Scan(
				&p.ID, &p.Title, &p.Content, &p.ImageRef,
				&p.Creator.ID, &p.Creator.Name, &p.CreatedAt, &p.UpdatedAt,
			); err != nil {
				return err
			}
			posts = append(posts, p)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *PostRepo) Update(ctx context.Context, post *domain.Post) error {
	query := `UPDATE posts SET title = $1, content = $2, image_url = $3, updated_at = $4 WHERE id = $5`

	return r.guard.Do(ctx, func(ctx context.Context) error {
		_, err := r.pool.Exec(ctx, query,
			post.Title, post.Content, post.ImageRef, post.UpdatedAt, post.ID,
		)
		return err
	})
}

func (r *PostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.guard.Do(ctx, func(ctx context.Context) error {
		_, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
		return err
	})
}
