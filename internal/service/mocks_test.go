package service

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vedran77/feedline/internal/domain"
	"github.com/vedran77/feedline/internal/event"
)

// mockUserRepo is a hand-rolled mock of repository.UserRepository.
type mockUserRepo struct {
	CreateFunc     func(ctx context.Context, user *domain.User) error
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	UpdateFunc     func(ctx context.Context, user *domain.User) error

	updated []*domain.User
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) Update(ctx context.Context, user *domain.User) error {
	m.updated = append(m.updated, user)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

// mockPostRepo is a hand-rolled mock of repository.PostRepository.
type mockPostRepo struct {
	CreateFunc   func(ctx context.Context, post *domain.Post) error
	GetByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	ListPageFunc func(ctx context.Context, offset, limit int) ([]domain.Post, int, error)
	UpdateFunc   func(ctx context.Context, post *domain.Post) error
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error

	created []*domain.Post
	deleted []uuid.UUID
}

func (m *mockPostRepo) Create(ctx context.Context, post *domain.Post) error {
	m.created = append(m.created, post)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, post)
	}
	return nil
}

func (m *mockPostRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPostRepo) ListPage(ctx context.Context, offset, limit int) ([]domain.Post, int, error) {
	if m.ListPageFunc != nil {
		return m.ListPageFunc(ctx, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockPostRepo) Update(ctx context.Context, post *domain.Post) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, post)
	}
	return nil
}

func (m *mockPostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.deleted = append(m.deleted, id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// mockBus records published events.
type mockBus struct {
	PublishFunc func(ctx context.Context, evt *event.Event) error

	published []*event.Event
}

func (m *mockBus) Publish(ctx context.Context, evt *event.Event) error {
	m.published = append(m.published, evt)
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, evt)
	}
	return nil
}

// mockImages records scheduled deletions.
type mockImages struct {
	scheduled []string
}

func (m *mockImages) ScheduleDelete(ref string) {
	m.scheduled = append(m.scheduled, ref)
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
