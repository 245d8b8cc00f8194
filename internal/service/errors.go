package service

import (
	"errors"

	"github.com/vedran77/feedline/pkg/validator"
)

var (
	// ErrUnauthorized covers missing/invalid credentials and
	// credentials naming a user that no longer exists.
	ErrUnauthorized = errors.New("authentication required")

	ErrEmailTaken   = errors.New("email already taken")
	ErrInvalidCreds = errors.New("invalid email or password")
	ErrUserNotFound = errors.New("user not found")

	ErrPostNotFound = errors.New("post not found")
	ErrNotPostOwner = errors.New("only the post creator can perform this action")
)

// ValidationError reports every violated field of an input at once.
type ValidationError struct {
	Fields validator.ValidationErrors
}

func (e *ValidationError) Error() string {
	return "validation failed"
}
