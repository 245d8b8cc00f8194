package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vedran77/feedline/internal/auth"
	"github.com/vedran77/feedline/internal/domain"
	"github.com/vedran77/feedline/internal/event"
	"github.com/vedran77/feedline/internal/repository"
	"github.com/vedran77/feedline/pkg/validator"
)

// PageSize is the fixed feed page size.
const PageSize = 2

// ImageStore schedules image files for deletion. Deletion is
// best-effort and never blocks or fails the request that triggered it.
type ImageStore interface {
	ScheduleDelete(ref string)
}

// PostService coordinates every post mutation: it resolves the caller,
// enforces ownership, keeps the post row and the owner's post index in
// step, and publishes a change event once the writes are done.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	bus      event.Bus
	images   ImageStore
	log      *logrus.Logger
}

func NewPostService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	bus event.Bus,
	images ImageStore,
	log *logrus.Logger,
) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		bus:      bus,
		images:   images,
		log:      log,
	}
}

type PostInput struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageRef string `json:"image_url"`
}

type PostListResponse struct {
	Posts      []domain.Post `json:"posts"`
	TotalCount int           `json:"total_count"`
}

func (s *PostService) Create(ctx context.Context, caller auth.Result, input PostInput) (*domain.Post, error) {
	if !caller.Authenticated {
		return nil, ErrUnauthorized
	}

	if errs := validator.ValidatePost(input.Title, input.Content, input.ImageRef, false); errs.HasErrors() {
		return nil, &ValidationError{Fields: errs}
	}

	user, err := s.userRepo.GetByID(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("loading caller: %w", err)
	}
	if user == nil {
		// A credential naming a deleted user counts as
		// unauthenticated, not as a server error.
		return nil, ErrUnauthorized
	}

	now := time.Now()
	post := &domain.Post{
		ID:        uuid.New(),
		Title:     input.Title,
		Content:   input.Content,
		ImageRef:  input.ImageRef,
		Creator:   domain.Creator{ID: user.ID, Name: user.Name},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	user.AddPost(post.ID)
	user.UpdatedAt = now
	if err := s.userRepo.Update(ctx, user); err != nil {
		// The post row stays; rolling it back implicitly would be
		// worse than a stale index. No event until both writes land.
		s.log.WithError(err).WithFields(logrus.Fields{
			"post_id": post.ID,
			"user_id": user.ID,
		}).Error("post created but owner index update failed")
		return nil, fmt.Errorf("updating owner index: %w", err)
	}

	s.publish(ctx, event.NewPostEvent(event.ActionCreate, post))

	return post, nil
}

func (s *PostService) Update(ctx context.Context, caller auth.Result, id uuid.UUID, input PostInput) (*domain.Post, error) {
	if !caller.Authenticated {
		return nil, ErrUnauthorized
	}

	// An empty image ref on update keeps the stored image.
	if errs := validator.ValidatePost(input.Title, input.Content, input.ImageRef, true); errs.HasErrors() {
		return nil, &ValidationError{Fields: errs}
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading post: %w", err)
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.Creator.ID != caller.UserID {
		return nil, ErrNotPostOwner
	}

	if input.ImageRef != "" && input.ImageRef != post.ImageRef {
		s.images.ScheduleDelete(post.ImageRef)
		post.ImageRef = input.ImageRef
	}

	post.Title = input.Title
	post.Content = input.Content
	post.UpdatedAt = time.Now()

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("updating post: %w", err)
	}

	s.publish(ctx, event.NewPostEvent(event.ActionUpdate, post))

	return post, nil
}

func (s *PostService) Delete(ctx context.Context, caller auth.Result, id uuid.UUID) error {
	if !caller.Authenticated {
		return ErrUnauthorized
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("loading post: %w", err)
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.Creator.ID != caller.UserID {
		return ErrNotPostOwner
	}

	s.images.ScheduleDelete(post.ImageRef)

	if err := s.postRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting post: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, caller.UserID)
	if err == nil && user != nil {
		user.RemovePost(id)
		user.UpdatedAt = time.Now()
		err = s.userRepo.Update(ctx, user)
	}
	if err != nil {
		// The post row is gone; the index catches up later.
		s.log.WithError(err).WithFields(logrus.Fields{
			"post_id": id,
			"user_id": caller.UserID,
		}).Error("post deleted but owner index update failed")
	}

	s.publish(ctx, event.NewDeleteEvent(id))

	return nil
}

func (s *PostService) Get(ctx context.Context, caller auth.Result, id uuid.UUID) (*domain.Post, error) {
	if !caller.Authenticated {
		return nil, ErrUnauthorized
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading post: %w", err)
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	return post, nil
}

// List returns one feed page, newest first, plus the unfiltered total
// so clients can compute the page count. Pages past the end are empty,
// not an error.
func (s *PostService) List(ctx context.Context, caller auth.Result, page int) (*PostListResponse, error) {
	if !caller.Authenticated {
		return nil, ErrUnauthorized
	}

	if page < 1 {
		page = 1
	}

	posts, total, err := s.postRepo.ListPage(ctx, (page-1)*PageSize, PageSize)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}

	if posts == nil {
		posts = []domain.Post{}
	}

	return &PostListResponse{
		Posts:      posts,
		TotalCount: total,
	}, nil
}

// publish sends an event to the bus. Publish failures are logged and
// swallowed: notifications never fail the mutation they describe.
func (s *PostService) publish(ctx context.Context, evt *event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		s.log.WithError(err).WithField("action", evt.Action).Warn("publishing post event failed")
	}
}
