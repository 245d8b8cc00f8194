package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vedran77/feedline/internal/auth"
	"github.com/vedran77/feedline/internal/domain"
	"github.com/vedran77/feedline/internal/repository"
)

// defaultStatus is what every fresh account starts with.
const defaultStatus = "I am new!"

type AuthService struct {
	userRepo repository.UserRepository
	issuer   *auth.Issuer
}

func NewAuthService(userRepo repository.UserRepository, issuer *auth.Issuer) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		issuer:   issuer,
	}
}

type SignupInput struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token  string    `json:"token"`
	UserID uuid.UUID `json:"user_id"`
}

func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*domain.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
		Status:       defaultStatus,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return user, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCreds
	}

	if !auth.VerifyPassword(input.Password, user.PasswordHash) {
		return nil, ErrInvalidCreds
	}

	token, err := s.issuer.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginResponse{Token: token, UserID: user.ID}, nil
}

// GetUser returns the caller's own profile, status included.
func (s *AuthService) GetUser(ctx context.Context, caller auth.Result) (*domain.User, error) {
	if !caller.Authenticated {
		return nil, ErrUnauthorized
	}

	user, err := s.userRepo.GetByID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}

// UpdateStatus sets the caller's status to exactly the provided value.
func (s *AuthService) UpdateStatus(ctx context.Context, caller auth.Result, status string) (*domain.User, error) {
	if !caller.Authenticated {
		return nil, ErrUnauthorized
	}

	user, err := s.userRepo.GetByID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.Status = status
	user.UpdatedAt = time.Now()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("updating status: %w", err)
	}

	return user, nil
}
