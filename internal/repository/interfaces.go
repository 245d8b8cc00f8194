package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/vedran77/feedline/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// Update persists status, the owned-post index and updated_at.
	Update(ctx context.Context, user *domain.User) error
}

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	// ListPage returns up to limit posts ordered by created_at
	// descending starting at offset, plus the unfiltered total count.
	ListPage(ctx context.Context, offset, limit int) ([]domain.Post, int, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
}
